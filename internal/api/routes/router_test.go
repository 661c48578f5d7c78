package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/api/routes"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

func newHandler(t *testing.T, origins ...string) http.Handler {
	t.Helper()

	clinic := services.NewClinic(records.NewCollections(storage.NewMemoryAdapter(), "physio_"))
	return routes.NewRouter(clinic, origins, nil).SetupRoutes()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	w := do(newHandler(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_PatientRoundTrip(t *testing.T) {
	h := newHandler(t)

	w := do(h, http.MethodPost, "/api/patients",
		`{"firstName":"Ayşe","lastName":"Yılmaz","phone":"0555 123 4567","diagnosis":"Bel fıtığı","totalSessions":12}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Patient
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = do(h, http.MethodPatch, "/api/patients/"+created.ID, `{"notes":"Düzenli"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/api/patients/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got entities.Patient
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Düzenli", got.Notes)

	w = do(h, http.MethodDelete, "/api/patients/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_StaticSegmentsWinOverIDs(t *testing.T) {
	h := newHandler(t)

	w := do(h, http.MethodGet, "/api/appointments/week?date=2024-06-12", "")
	require.Equal(t, http.StatusOK, w.Code)
	var week []entities.DaySchedule
	require.NoError(t, json.NewDecoder(w.Body).Decode(&week))
	assert.Len(t, week, 7)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/payments/totals", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/requests/counts", "").Code)
}

func TestRouter_MethodAndPathMismatches(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/unknown", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodPut, "/api/patients", "").Code)
}

func TestRouter_CORS(t *testing.T) {
	h := newHandler(t, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
