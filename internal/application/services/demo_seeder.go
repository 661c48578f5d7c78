package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// DemoSeeder fills an empty clinic with a small sample data set
type DemoSeeder struct {
	collections repositories.Collections
	now         Clock
}

// NewDemoSeeder creates a new demo seeder
func NewDemoSeeder(collections repositories.Collections) *DemoSeeder {
	return &DemoSeeder{
		collections: collections,
		now:         time.Now,
	}
}

// SetClock overrides the clock used for ids, timestamps and tomorrow's date
func (s *DemoSeeder) SetClock(clock Clock) {
	s.now = clock
}

// Seed writes two patients, one appointment and one payment unless any patient exists.
// It reports whether anything was written. The check and the writes are not atomic.
func (s *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	existing, err := s.collections.Patients.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing patients: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	now := s.now()
	tomorrow := dates.FormatISODate(dates.AddDays(now, 1))

	ayse := entities.Patient{
		Base:              entities.NewBase(now),
		FirstName:         "Ayşe",
		LastName:          "Yılmaz",
		Phone:             "0555 123 4567",
		Email:             "ayse.yilmaz@email.com",
		BirthDate:         "1985-05-15",
		Diagnosis:         "Bel fıtığı tedavisi",
		Notes:             "Egzersizlere düzenli devam ediyor",
		TotalSessions:     12,
		CompletedSessions: 5,
	}
	mehmet := entities.Patient{
		Base:              entities.NewBase(now),
		FirstName:         "Mehmet",
		LastName:          "Demir",
		Phone:             "0532 987 6543",
		Email:             "mehmet.demir@email.com",
		BirthDate:         "1990-08-22",
		Diagnosis:         "Omuz ağrısı rehabilitasyonu",
		Notes:             "Spor yaralanması sonrası tedavi",
		TotalSessions:     8,
		CompletedSessions: 3,
	}

	for _, p := range []entities.Patient{ayse, mehmet} {
		if _, err := s.collections.Patients.Save(ctx, p); err != nil {
			return false, fmt.Errorf("failed to seed patient: %w", err)
		}
	}

	sessionNumber := 6
	appointment := entities.Appointment{
		Base:          entities.NewBase(now),
		PatientID:     ayse.ID,
		Date:          tomorrow,
		StartTime:     "10:00",
		EndTime:       "10:45",
		Status:        entities.AppointmentStatusScheduled,
		SessionNumber: &sessionNumber,
		Notes:         "Egzersiz kontrolü yapılacak",
	}
	if _, err := s.collections.Appointments.Save(ctx, appointment); err != nil {
		return false, fmt.Errorf("failed to seed appointment: %w", err)
	}

	payment := entities.Payment{
		Base:      entities.NewBase(now),
		PatientID: ayse.ID,
		Amount:    500,
		Currency:  "TRY",
		Status:    entities.PaymentStatusPending,
		DueDate:   tomorrow,
	}
	if _, err := s.collections.Payments.Save(ctx, payment); err != nil {
		return false, fmt.Errorf("failed to seed payment: %w", err)
	}

	observability.LoggerFromContext(ctx).Info().
		Int("patients", 2).
		Int("appointments", 1).
		Int("payments", 1).
		Msg("demo data seeded")

	return true, nil
}
