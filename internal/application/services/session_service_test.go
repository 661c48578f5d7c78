package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

func TestSessionService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("increments completed sessions", func(t *testing.T) {
		clinic, _ := newClinic(t)
		patient := mustCreatePatient(t, clinic, "Ayşe", "Yılmaz", 10, 0)

		session, err := clinic.Sessions.Record(ctx, entities.Session{
			PatientID:      patient.ID,
			SessionNumber:  1,
			Date:           "2024-06-12",
			Duration:       45,
			TreatmentNotes: "Manuel terapi",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)

		refreshed, found, err := clinic.Patients.GetByID(ctx, patient.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1, refreshed.CompletedSessions)
	})

	t.Run("saving directly does not increment", func(t *testing.T) {
		clinic, _ := newClinic(t)
		patient := mustCreatePatient(t, clinic, "Ayşe", "Yılmaz", 10, 0)

		_, err := clinic.Sessions.Save(ctx, entities.Session{
			Base:           entities.NewBase(wednesday),
			PatientID:      patient.ID,
			TreatmentNotes: "Manuel terapi",
		})
		require.NoError(t, err)

		refreshed, _, err := clinic.Patients.GetByID(ctx, patient.ID)
		require.NoError(t, err)
		assert.Zero(t, refreshed.CompletedSessions)
	})

	t.Run("unknown patient still saves the session", func(t *testing.T) {
		clinic, _ := newClinic(t)

		session, err := clinic.Sessions.Record(ctx, entities.Session{
			PatientID:      "ghost",
			TreatmentNotes: "Manuel terapi",
		})
		require.NoError(t, err)

		_, found, err := clinic.Sessions.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("failed patient update leaves the session saved", func(t *testing.T) {
		sessionRepo := records.NewCollectionAdapter[entities.Session](storage.NewMemoryAdapter(), "physio_sessions")
		patients := new(MockPatientRepository)

		patient := entities.Patient{Base: entities.Base{ID: "p1"}, CompletedSessions: 4}
		patients.On("GetByID", mock.Anything, "p1").Return(patient, true, nil)
		patients.On("Update", mock.Anything, "p1", repositories.Patch{"completedSessions": 5}).
			Return(entities.Patient{}, true, errors.New("disk full"))

		service := services.NewSessionService(sessionRepo, patients)

		session, err := service.Record(ctx, entities.Session{
			PatientID:      "p1",
			TreatmentNotes: "Manuel terapi",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")

		stored, err := sessionRepo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, session.ID, stored[0].ID)
		patients.AssertExpectations(t)
	})
}

func TestSessionService_ListByPatient(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newClinic(t)

	for _, s := range []entities.Session{
		{PatientID: "a", Date: "2024-06-01", TreatmentNotes: "1"},
		{PatientID: "b", Date: "2024-06-05", TreatmentNotes: "2"},
		{PatientID: "a", Date: "2024-06-10", TreatmentNotes: "3"},
	} {
		_, err := clinic.Sessions.Record(ctx, s)
		require.NoError(t, err)
	}

	mine, err := clinic.Sessions.ListByPatient(ctx, "a")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2024-06-10", mine[0].Date)
	assert.Equal(t, "2024-06-01", mine[1].Date)

	all, err := clinic.Sessions.ListByPatient(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "2024-06-10", all[0].Date)
}
