package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// wednesday is 2024-06-12 09:00 local; its week runs 2024-06-10..16.
var wednesday = time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)

func fixedClock(t time.Time) services.Clock {
	return func() time.Time { return t }
}

func newClinic(t *testing.T) (*services.Clinic, repositories.Collections) {
	t.Helper()

	collections := records.NewCollections(storage.NewMemoryAdapter(), "physio_")
	clinic := services.NewClinic(collections)
	clinic.SetClock(fixedClock(wednesday))
	return clinic, collections
}

func mustCreatePatient(t *testing.T, clinic *services.Clinic, first, last string, total, completed int) entities.Patient {
	t.Helper()

	patient, err := clinic.Patients.Create(context.Background(), entities.Patient{
		FirstName:         first,
		LastName:          last,
		Phone:             "0555 000 0000",
		Diagnosis:         "Diz ağrısı",
		TotalSessions:     total,
		CompletedSessions: completed,
	})
	require.NoError(t, err)
	return patient
}

func mustCreateAppointment(t *testing.T, clinic *services.Clinic, patientID, date, start string, status entities.AppointmentStatus) entities.Appointment {
	t.Helper()

	appointment, err := clinic.Appointments.Create(context.Background(), entities.Appointment{
		PatientID: patientID,
		Date:      date,
		StartTime: start,
		EndTime:   "23:59",
		Status:    status,
	})
	require.NoError(t, err)
	return appointment
}

// MockPatientRepository is a testify mock of the patient collection
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) GetAll(ctx context.Context) ([]entities.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (entities.Patient, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Patient), args.Bool(1), args.Error(2)
}

func (m *MockPatientRepository) Save(ctx context.Context, record entities.Patient) (entities.Patient, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(entities.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, id string, patch repositories.Patch) (entities.Patient, bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(entities.Patient), args.Bool(1), args.Error(2)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
