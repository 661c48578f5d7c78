package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// PaymentService manages amounts owed by patients
type PaymentService struct {
	collection[entities.Payment]
	settings *SettingsService
}

// NewPaymentService creates a new payment service. settings supplies the default currency.
func NewPaymentService(repo repositories.RecordRepository[entities.Payment], settings *SettingsService) *PaymentService {
	return &PaymentService{
		collection: newCollection(repo),
		settings:   settings,
	}
}

// Create stamps a new id and timestamps and saves the payment. An empty status means pending
// and an empty currency takes the clinic currency.
func (s *PaymentService) Create(ctx context.Context, payment entities.Payment) (entities.Payment, error) {
	if payment.Status == "" {
		payment.Status = entities.PaymentStatusPending
	}
	if payment.Currency == "" && s.settings != nil {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return payment, err
		}
		payment.Currency = settings.Currency
	}

	payment.Base = entities.NewBase(s.now())
	return s.repo.Save(ctx, payment)
}

// MarkPaid sets status paid with today's date as paidDate. method may be empty.
func (s *PaymentService) MarkPaid(ctx context.Context, id string, method entities.PaymentMethod) (entities.Payment, bool, error) {
	patch := repositories.Patch{
		"status":   entities.PaymentStatusPaid,
		"paidDate": dates.FormatISODate(s.now()),
	}
	if method != "" {
		patch["paymentMethod"] = method
	}
	return s.repo.Update(ctx, id, patch)
}

// ListByStatus returns payments with the given status; an empty status returns all
func (s *PaymentService) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return payments, nil
	}
	return filter(payments, func(p entities.Payment) bool {
		return p.Status == status
	}), nil
}

// ListByPatient returns every payment owed by patientID
func (s *PaymentService) ListByPatient(ctx context.Context, patientID string) ([]entities.Payment, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(payments, func(p entities.Payment) bool {
		return p.PatientID == patientID
	}), nil
}

// Totals sums payment amounts by status. Cancelled payments are ignored.
func (s *PaymentService) Totals(ctx context.Context) (entities.PaymentTotals, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		return entities.PaymentTotals{}, err
	}
	return paymentTotals(payments), nil
}

func paymentTotals(payments []entities.Payment) entities.PaymentTotals {
	var totals entities.PaymentTotals
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusPaid:
			totals.Paid += p.Amount
		case entities.PaymentStatusPending:
			totals.Pending += p.Amount
		case entities.PaymentStatusOverdue:
			totals.Overdue += p.Amount
		}
	}
	return totals
}

// SweepOverdue moves pending payments whose due date is before today to overdue and
// returns how many were changed. Each payment is updated separately.
func (s *PaymentService) SweepOverdue(ctx context.Context) (int, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	today := dates.FormatISODate(s.now())
	moved := 0
	for _, p := range payments {
		if p.Status != entities.PaymentStatusPending || p.DueDate == "" || p.DueDate >= today {
			continue
		}
		_, found, err := s.repo.Update(ctx, p.ID, repositories.Patch{"status": entities.PaymentStatusOverdue})
		if err != nil {
			return moved, fmt.Errorf("failed to mark payment %s overdue: %w", p.ID, err)
		}
		if found {
			moved++
		}
	}
	return moved, nil
}
