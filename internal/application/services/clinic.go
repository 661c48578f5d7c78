package services

import (
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// Clinic bundles every domain service over one set of collections
type Clinic struct {
	Patients     *PatientService
	Appointments *AppointmentService
	Sessions     *SessionService
	Payments     *PaymentService
	Requests     *RequestService
	Settings     *SettingsService
	Dashboard    *DashboardService
	Export       *ExportService
	Seeder       *DemoSeeder
}

// NewClinic wires the domain services
func NewClinic(collections repositories.Collections) *Clinic {
	settings := NewSettingsService(collections.Settings)
	patients := NewPatientService(collections.Patients)
	appointments := NewAppointmentService(collections.Appointments)
	payments := NewPaymentService(collections.Payments, settings)
	requests := NewRequestService(collections.Requests)

	return &Clinic{
		Patients:     patients,
		Appointments: appointments,
		Sessions:     NewSessionService(collections.Sessions, collections.Patients),
		Payments:     payments,
		Requests:     requests,
		Settings:     settings,
		Dashboard:    NewDashboardService(patients, appointments, payments, requests, settings),
		Export:       NewExportService(patients, payments),
		Seeder:       NewDemoSeeder(collections),
	}
}

// SetClock points every time-dependent service at clock
func (c *Clinic) SetClock(clock Clock) {
	c.Patients.SetClock(clock)
	c.Appointments.SetClock(clock)
	c.Sessions.SetClock(clock)
	c.Payments.SetClock(clock)
	c.Requests.SetClock(clock)
	c.Dashboard.SetClock(clock)
	c.Seeder.SetClock(clock)
}
