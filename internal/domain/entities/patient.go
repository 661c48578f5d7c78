package entities

import (
	"strings"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// Patient represents a person under treatment at the clinic
type Patient struct {
	Base
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	Email             string `json:"email,omitempty"`
	BirthDate         string `json:"birthDate,omitempty"`
	Address           string `json:"address,omitempty"`
	Diagnosis         string `json:"diagnosis"`
	Notes             string `json:"notes,omitempty"`
	TotalSessions     int    `json:"totalSessions"`
	CompletedSessions int    `json:"completedSessions"`
}

// FullName returns "First Last"
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// RemainingSessions is the planned session count not yet completed; it may be negative
// because completedSessions is never capped.
func (p Patient) RemainingSessions() int {
	return p.TotalSessions - p.CompletedSessions
}

// Validate checks the fields the patient form requires
func (p Patient) Validate() error {
	switch {
	case strings.TrimSpace(p.FirstName) == "":
		return apperrors.NewValidationError("firstName is required")
	case strings.TrimSpace(p.LastName) == "":
		return apperrors.NewValidationError("lastName is required")
	case strings.TrimSpace(p.Phone) == "":
		return apperrors.NewValidationError("phone is required")
	case strings.TrimSpace(p.Diagnosis) == "":
		return apperrors.NewValidationError("diagnosis is required")
	case p.TotalSessions < 0 || p.CompletedSessions < 0:
		return apperrors.NewValidationError("session counts cannot be negative")
	}
	return nil
}
