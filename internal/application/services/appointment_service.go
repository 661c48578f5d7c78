package services

import (
	"context"
	"sort"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// AppointmentService manages booked treatment slots. Overlaps are not checked.
type AppointmentService struct {
	collection[entities.Appointment]
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repositories.RecordRepository[entities.Appointment]) *AppointmentService {
	return &AppointmentService{collection: newCollection(repo)}
}

// Create stamps a new id and timestamps and saves the appointment. An empty status means scheduled.
func (s *AppointmentService) Create(ctx context.Context, appointment entities.Appointment) (entities.Appointment, error) {
	appointment.Base = entities.NewBase(s.now())
	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusScheduled
	}
	return s.repo.Save(ctx, appointment)
}

// ForDate returns the appointments on date (YYYY-MM-DD) ordered by start time
func (s *AppointmentService) ForDate(ctx context.Context, date string) ([]entities.Appointment, error) {
	appointments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	onDate := filter(appointments, func(a entities.Appointment) bool {
		return a.Date == date
	})
	sortBySchedule(onDate)
	return onDate, nil
}

// ListByPatient returns a patient's appointments ordered by date and start time
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	appointments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := filter(appointments, func(a entities.Appointment) bool {
		return a.PatientID == patientID
	})
	sortBySchedule(mine)
	return mine, nil
}

// ForWeek buckets the appointments of ref's week into seven days, Monday first
func (s *AppointmentService) ForWeek(ctx context.Context, ref time.Time) ([]entities.DaySchedule, error) {
	appointments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sortBySchedule(appointments)

	byDate := make(map[string][]entities.Appointment)
	for _, a := range appointments {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	days := dates.WeekDates(ref)
	week := make([]entities.DaySchedule, 0, len(days))
	for _, day := range days {
		key := dates.FormatISODate(day)
		items := byDate[key]
		if items == nil {
			items = []entities.Appointment{}
		}
		week = append(week, entities.DaySchedule{
			Date:         key,
			DayName:      dates.DayName(day),
			Appointments: items,
		})
	}
	return week, nil
}

// sortBySchedule orders by date then start time. Both are fixed-width strings, so
// lexical order is chronological.
func sortBySchedule(appointments []entities.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].StartTime < appointments[j].StartTime
	})
}
