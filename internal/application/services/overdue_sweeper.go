package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
)

// OverdueSweeper periodically moves past-due pending payments to overdue
type OverdueSweeper struct {
	payments  *PaymentService
	metrics   *observability.Metrics
	scheduler *gocron.Scheduler
}

// NewOverdueSweeper creates a new sweeper. metrics may be nil.
func NewOverdueSweeper(payments *PaymentService, metrics *observability.Metrics) *OverdueSweeper {
	return &OverdueSweeper{
		payments: payments,
		metrics:  metrics,
	}
}

// RunOnce performs a single sweep and returns the number of payments changed
func (s *OverdueSweeper) RunOnce(ctx context.Context) (int, error) {
	logger := observability.LoggerFromContext(ctx)

	moved, err := s.payments.SweepOverdue(ctx)
	observability.RecordOverduePayments(ctx, s.metrics, moved)
	if err != nil {
		logger.Error().Err(err).Int("moved", moved).Msg("overdue payment sweep failed")
		return moved, err
	}

	if moved > 0 {
		logger.Info().Int("moved", moved).Msg("payments marked overdue")
	}
	return moved, nil
}

// Start schedules the sweep on a cron expression and runs it in the background
func (s *OverdueSweeper) Start(ctx context.Context, cronExpr string) error {
	scheduler := gocron.NewScheduler(time.Local)
	scheduler.SingletonModeAll()

	_, err := scheduler.Cron(cronExpr).Do(func() {
		_, _ = s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid overdue sweep schedule %q: %w", cronExpr, err)
	}

	scheduler.StartAsync()
	s.scheduler = scheduler

	observability.LoggerFromContext(ctx).Info().Str("cron", cronExpr).Msg("overdue payment sweeper started")
	return nil
}

// Stop halts the scheduler if it was started
func (s *OverdueSweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
