package services

import (
	"context"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// DefaultUpcomingLimit is how many upcoming appointments the dashboard lists
const DefaultUpcomingLimit = 5

// upcomingWindowDays is how far ahead the dashboard looks for upcoming appointments
const upcomingWindowDays = 7

// DashboardService aggregates the landing page figures across all collections
type DashboardService struct {
	patients     *PatientService
	appointments *AppointmentService
	payments     *PaymentService
	requests     *RequestService
	settings     *SettingsService
	now          Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	patients *PatientService,
	appointments *AppointmentService,
	payments *PaymentService,
	requests *RequestService,
	settings *SettingsService,
) *DashboardService {
	return &DashboardService{
		patients:     patients,
		appointments: appointments,
		payments:     payments,
		requests:     requests,
		settings:     settings,
		now:          time.Now,
	}
}

// SetClock overrides the clock used to determine today and this week
func (s *DashboardService) SetClock(clock Clock) {
	s.now = clock
}

// Summary computes the dashboard counters
func (s *DashboardService) Summary(ctx context.Context) (entities.DashboardStats, error) {
	var stats entities.DashboardStats

	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return stats, err
	}
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return stats, err
	}
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return stats, err
	}
	requests, err := s.requests.GetAll(ctx)
	if err != nil {
		return stats, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return stats, err
	}

	now := s.now()
	today := dates.FormatISODate(now)
	week := dates.WeekDates(now)
	weekStart := dates.FormatISODate(week[0])
	weekEnd := dates.FormatISODate(week[6])

	stats.TotalPatients = len(patients)

	for _, a := range appointments {
		if a.Status != entities.AppointmentStatusScheduled {
			continue
		}
		if a.Date == today {
			stats.TodayAppointments++
		}
		if a.Date >= weekStart && a.Date <= weekEnd {
			stats.WeekAppointments++
		}
	}

	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusPending, entities.PaymentStatusOverdue:
			stats.PendingPayments++
		case entities.PaymentStatusPaid:
			stats.TotalRevenue += p.Amount
		}
	}

	for _, r := range requests {
		if r.Status == entities.RequestStatusPending {
			stats.PendingRequests++
		}
	}

	stats.AvailableSlots = weeklyCapacity(settings, week) - stats.WeekAppointments
	if stats.AvailableSlots < 0 {
		stats.AvailableSlots = 0
	}

	return stats, nil
}

// weeklyCapacity counts how many session-plus-break slots fit into the working hours of the given days
func weeklyCapacity(settings entities.Settings, days []time.Time) int {
	slot := settings.SessionDuration + settings.BreakDuration
	if slot <= 0 {
		return 0
	}

	total := 0
	for _, day := range days {
		hours, ok := settings.HoursFor(day.Weekday())
		if !ok || !hours.IsWorkingDay {
			continue
		}
		start, err := time.Parse(dates.TimeLayout, hours.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(dates.TimeLayout, hours.EndTime)
		if err != nil || !end.After(start) {
			continue
		}
		total += int(end.Sub(start).Minutes()) / slot
	}
	return total
}

// Upcoming returns scheduled appointments from today through the next seven days, ordered by
// date and start time, with patient names resolved. limit <= 0 uses DefaultUpcomingLimit.
func (s *DashboardService) Upcoming(ctx context.Context, limit int) ([]entities.UpcomingAppointment, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	from := dates.FormatISODate(now)
	to := dates.FormatISODate(dates.AddDays(now, upcomingWindowDays))

	upcoming := filter(appointments, func(a entities.Appointment) bool {
		return a.Status == entities.AppointmentStatusScheduled && a.Date >= from && a.Date <= to
	})
	sortBySchedule(upcoming)
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	nameOf := nameIndex(patients)
	out := make([]entities.UpcomingAppointment, 0, len(upcoming))
	for _, a := range upcoming {
		out = append(out, entities.UpcomingAppointment{
			Appointment: a,
			PatientName: nameOf(a.PatientID),
		})
	}
	return out, nil
}
