package entities

import (
	"strings"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// Session records what was done during one treatment visit
type Session struct {
	Base
	PatientID      string   `json:"patientId"`
	AppointmentID  string   `json:"appointmentId"`
	SessionNumber  int      `json:"sessionNumber"`
	Date           string   `json:"date"`
	Duration       int      `json:"duration"`
	TreatmentNotes string   `json:"treatmentNotes"`
	Exercises      []string `json:"exercises,omitempty"`
	NextSteps      string   `json:"nextSteps,omitempty"`
	PainLevel      *int     `json:"painLevel,omitempty"`
	Progress       string   `json:"progress,omitempty"`
}

// Validate checks the fields the session form requires
func (s Session) Validate() error {
	switch {
	case strings.TrimSpace(s.PatientID) == "":
		return apperrors.NewValidationError("patientId is required")
	case strings.TrimSpace(s.TreatmentNotes) == "":
		return apperrors.NewValidationError("treatmentNotes is required")
	case s.Duration <= 0:
		return apperrors.NewValidationError("duration must be positive")
	case s.PainLevel != nil && (*s.PainLevel < 1 || *s.PainLevel > 10):
		return apperrors.NewValidationError("painLevel must be between 1 and 10")
	}
	return nil
}
