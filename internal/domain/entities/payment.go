package entities

import (
	"strings"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how a paid payment was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit-card"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

// Payment is an amount owed by a patient
type Payment struct {
	Base
	PatientID     string        `json:"patientId"`
	AppointmentID string        `json:"appointmentId,omitempty"`
	SessionID     string        `json:"sessionId,omitempty"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	DueDate       string        `json:"dueDate"`
	PaidDate      string        `json:"paidDate,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// Validate checks the fields the payment form requires
func (p Payment) Validate() error {
	if err := p.ValidateDraft(); err != nil {
		return err
	}
	switch {
	case strings.TrimSpace(p.Currency) == "":
		return apperrors.NewValidationError("currency is required")
	case !p.Status.Valid():
		return apperrors.NewValidationError("unknown payment status")
	}
	return nil
}

// ValidateDraft checks a payment before creation, where status and currency may still be defaulted
func (p Payment) ValidateDraft() error {
	switch {
	case strings.TrimSpace(p.PatientID) == "":
		return apperrors.NewValidationError("patientId is required")
	case p.Amount <= 0:
		return apperrors.NewValidationError("amount must be positive")
	case strings.TrimSpace(p.DueDate) == "":
		return apperrors.NewValidationError("dueDate is required")
	case p.Status != "" && !p.Status.Valid():
		return apperrors.NewValidationError("unknown payment status")
	}
	return nil
}
