package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/api/handlers"
)

func TestDashboardHandler_Get(t *testing.T) {
	clinic := newClinic(t)
	handler := handlers.NewDashboardHandler(clinic.Dashboard)

	seeded, err := clinic.Seeder.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	w := serve(handler.Get, http.MethodGet, "/api/dashboard", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.DashboardResponse](t, w)
	assert.Equal(t, 2, resp.Stats.TotalPatients)
	assert.Equal(t, 1, resp.Stats.PendingPayments)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "Ayşe Yılmaz", resp.Upcoming[0].PatientName)
	assert.Equal(t, time.Now().AddDate(0, 0, 1).Format("2006-01-02"), resp.Upcoming[0].Date)

	w = serve(handler.Get, http.MethodGet, "/api/dashboard?limit=-2", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
