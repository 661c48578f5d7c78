package storage

import (
	"context"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// InstrumentedAdapter records duration, miss and failure metrics around another store.
type InstrumentedAdapter struct {
	next    providers.KeyValueStore
	metrics *observability.Metrics
	backend string
}

// NewInstrumentedAdapter wraps next. backend is used as the store.backend attribute.
func NewInstrumentedAdapter(next providers.KeyValueStore, metrics *observability.Metrics, backend string) providers.KeyValueStore {
	return &InstrumentedAdapter{
		next:    next,
		metrics: metrics,
		backend: backend,
	}
}

func (a *InstrumentedAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := a.next.Get(ctx, key)

	miss := apperrors.IsNotFound(err)
	observability.RecordStoreMetric(ctx, a.metrics, a.backend, "get", time.Since(start), err != nil && !miss)
	if miss {
		observability.RecordStoreMiss(ctx, a.metrics, a.backend, key)
	}
	return value, err
}

func (a *InstrumentedAdapter) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := a.next.Set(ctx, key, value)
	observability.RecordStoreMetric(ctx, a.metrics, a.backend, "set", time.Since(start), err != nil)
	return err
}

func (a *InstrumentedAdapter) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := a.next.Delete(ctx, key)
	observability.RecordStoreMetric(ctx, a.metrics, a.backend, "delete", time.Since(start), err != nil)
	return err
}

func (a *InstrumentedAdapter) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	ok, err := a.next.Exists(ctx, key)
	observability.RecordStoreMetric(ctx, a.metrics, a.backend, "exists", time.Since(start), err != nil)
	return ok, err
}
