package repositories

import (
	"context"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// RecordRepository is generic CRUD over one collection slot. Every call reads and
// rewrites the whole collection and looks records up by linear scan, which is only
// acceptable because a single clinic holds hundreds of records at most.
type RecordRepository[T entities.Record] interface {
	// GetAll returns every record in storage order; an unwritten slot yields an empty slice
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the first record with the given id
	GetByID(ctx context.Context, id string) (T, bool, error)

	// Save appends the record verbatim. The caller assigns id and timestamps.
	Save(ctx context.Context, record T) (T, error)

	// Update merges patch over the record and refreshes updatedAt. found is false
	// when no record has the id; nothing is written in that case.
	Update(ctx context.Context, id string, patch Patch) (T, bool, error)

	// Delete removes the first record with the given id and reports whether one was removed
	Delete(ctx context.Context, id string) (bool, error)

	// Clear removes the whole slot
	Clear(ctx context.Context) error
}

// SettingsRepository stores the clinic settings singleton
type SettingsRepository interface {
	// Load returns the stored settings; stored is false when the slot is empty
	Load(ctx context.Context) (settings entities.Settings, stored bool, err error)

	// Save overwrites the singleton
	Save(ctx context.Context, settings entities.Settings) error

	// Clear removes the singleton so defaults apply again
	Clear(ctx context.Context) error
}

// Collections bundles the five record collections and the settings singleton
// that make up the clinic's persisted state.
type Collections struct {
	Patients     RecordRepository[entities.Patient]
	Appointments RecordRepository[entities.Appointment]
	Sessions     RecordRepository[entities.Session]
	Payments     RecordRepository[entities.Payment]
	Requests     RecordRepository[entities.AppointmentRequest]
	Settings     SettingsRepository
}
