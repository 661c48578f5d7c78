package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

func mustCreatePayment(t *testing.T, clinic *services.Clinic, amount float64, status entities.PaymentStatus, due string) entities.Payment {
	t.Helper()

	payment, err := clinic.Payments.Create(context.Background(), entities.Payment{
		PatientID: "p1",
		Amount:    amount,
		Status:    status,
		DueDate:   due,
	})
	require.NoError(t, err)
	return payment
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pending in the clinic currency", func(t *testing.T) {
		clinic, _ := newClinic(t)

		p := mustCreatePayment(t, clinic, 500, "", "2024-06-13")
		assert.Equal(t, entities.PaymentStatusPending, p.Status)
		assert.Equal(t, "TRY", p.Currency)
	})

	t.Run("uses the stored currency", func(t *testing.T) {
		clinic, _ := newClinic(t)
		_, err := clinic.Settings.Update(ctx, repositories.Patch{"currency": "EUR"})
		require.NoError(t, err)

		p := mustCreatePayment(t, clinic, 50, "", "2024-06-13")
		assert.Equal(t, "EUR", p.Currency)
	})
}

func TestPaymentService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newClinic(t)
	p := mustCreatePayment(t, clinic, 500, "", "2024-06-13")

	paid, found, err := clinic.Payments.MarkPaid(ctx, p.ID, entities.PaymentMethodCash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entities.PaymentStatusPaid, paid.Status)
	assert.Equal(t, "2024-06-12", paid.PaidDate)
	assert.Equal(t, entities.PaymentMethodCash, paid.PaymentMethod)
	assert.Equal(t, 500.0, paid.Amount)

	_, found, err = clinic.Payments.MarkPaid(ctx, "missing", "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPaymentService_TotalsAndFilters(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newClinic(t)

	mustCreatePayment(t, clinic, 500, entities.PaymentStatusPaid, "2024-06-01")
	mustCreatePayment(t, clinic, 250, entities.PaymentStatusPaid, "2024-06-02")
	mustCreatePayment(t, clinic, 300, entities.PaymentStatusPending, "2024-06-20")
	mustCreatePayment(t, clinic, 400, entities.PaymentStatusOverdue, "2024-05-01")
	mustCreatePayment(t, clinic, 999, entities.PaymentStatusCancelled, "2024-05-01")

	totals, err := clinic.Payments.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentTotals{Paid: 750, Pending: 300, Overdue: 400}, totals)

	paid, err := clinic.Payments.ListByStatus(ctx, entities.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Len(t, paid, 2)

	all, err := clinic.Payments.ListByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	mine, err := clinic.Payments.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, mine, 5)
}

func TestPaymentService_SweepOverdue(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newClinic(t)

	late := mustCreatePayment(t, clinic, 100, "", "2024-06-11")
	dueToday := mustCreatePayment(t, clinic, 100, "", "2024-06-12")
	paidLate := mustCreatePayment(t, clinic, 100, entities.PaymentStatusPaid, "2024-06-01")

	moved, err := clinic.Payments.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	for id, want := range map[string]entities.PaymentStatus{
		late.ID:     entities.PaymentStatusOverdue,
		dueToday.ID: entities.PaymentStatusPending,
		paidLate.ID: entities.PaymentStatusPaid,
	} {
		got, _, err := clinic.Payments.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status, id)
	}

	again, err := clinic.Payments.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)
}
