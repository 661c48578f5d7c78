package entities

import (
	"strings"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// RequestStatus represents the review state of an appointment request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// AppointmentRequest is a booking wish submitted by a prospective patient.
// It is not linked to a Patient and approving it does not create an Appointment.
type AppointmentRequest struct {
	Base
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email,omitempty"`
	PreferredDate string        `json:"preferredDate"`
	PreferredTime string        `json:"preferredTime"`
	Message       string        `json:"message,omitempty"`
	Status        RequestStatus `json:"status"`
}

// Validate checks the fields the request form requires
func (r AppointmentRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "":
		return apperrors.NewValidationError("name is required")
	case strings.TrimSpace(r.Phone) == "":
		return apperrors.NewValidationError("phone is required")
	case strings.TrimSpace(r.PreferredDate) == "":
		return apperrors.NewValidationError("preferredDate is required")
	}
	return nil
}
