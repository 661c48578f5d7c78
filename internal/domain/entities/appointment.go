package entities

import (
	"strings"
	"time"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// Valid reports whether s is one of the known statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked treatment slot. Overlapping appointments are allowed.
type Appointment struct {
	Base
	PatientID     string            `json:"patientId"`
	Date          string            `json:"date"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	SessionNumber *int              `json:"sessionNumber,omitempty"`
}

// Validate checks the fields the appointment form requires
func (a Appointment) Validate() error {
	if strings.TrimSpace(a.PatientID) == "" {
		return apperrors.NewValidationError("patientId is required")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	start, err := time.Parse("15:04", a.StartTime)
	if err != nil {
		return apperrors.NewValidationError("startTime must be HH:mm")
	}
	end, err := time.Parse("15:04", a.EndTime)
	if err != nil {
		return apperrors.NewValidationError("endTime must be HH:mm")
	}
	if !end.After(start) {
		return apperrors.NewValidationError("endTime must be after startTime")
	}
	if !a.Status.Valid() {
		return apperrors.NewValidationError("unknown appointment status")
	}
	return nil
}
