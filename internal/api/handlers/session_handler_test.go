package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/api/handlers"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

func TestSessionHandler_CreateBumpsCompletedSessions(t *testing.T) {
	clinic := newClinic(t)
	handler := handlers.NewSessionHandler(clinic.Sessions)

	patient, err := clinic.Patients.Create(context.Background(), entities.Patient{
		FirstName: "Ayşe", LastName: "Yılmaz", Phone: "1", Diagnosis: "Bel", TotalSessions: 12, CompletedSessions: 5,
	})
	require.NoError(t, err)

	body := `{"patientId":"` + patient.ID + `","sessionNumber":6,"date":"2024-06-12","duration":45,"treatmentNotes":"Germe","painLevel":4}`
	w := serve(handler.Create, http.MethodPost, "/api/sessions", body, "")
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode[entities.Session](t, w)
	require.NotNil(t, session.PainLevel)
	assert.Equal(t, 4, *session.PainLevel)

	updated, found, err := clinic.Patients.GetByID(context.Background(), patient.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 6, updated.CompletedSessions)

	w = serve(handler.List, http.MethodGet, "/api/sessions?patientId="+patient.ID, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.Session](t, w), 1)

	w = serve(handler.List, http.MethodGet, "/api/sessions?patientId=other", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]entities.Session](t, w))
}

func TestSessionHandler_CreateValidation(t *testing.T) {
	handler := handlers.NewSessionHandler(newClinic(t).Sessions)

	w := serve(handler.Create, http.MethodPost, "/api/sessions",
		`{"patientId":"p1","duration":45,"treatmentNotes":"x","painLevel":11}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "painLevel must be between 1 and 10", decode[map[string]string](t, w)["error"])
}

func TestSessionHandler_UpdateRejectsPainLevelOutOfRange(t *testing.T) {
	clinic := newClinic(t)
	handler := handlers.NewSessionHandler(clinic.Sessions)

	created := decode[entities.Session](t, serve(handler.Create, http.MethodPost, "/api/sessions",
		`{"patientId":"p1","date":"2024-06-12","duration":45,"treatmentNotes":"Germe","painLevel":4}`, ""))

	w := serve(handler.Update, http.MethodPatch, "/api/sessions/"+created.ID, `{"painLevel":42}`, created.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, found, err := clinic.Sessions.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, stored.PainLevel)
	assert.Equal(t, 4, *stored.PainLevel)
}
