package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// Clock returns the current instant
type Clock func() time.Time

// Option configures an adapter
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock overrides the clock used to stamp updatedAt
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CollectionAdapter persists one record type as a JSON array under a single slot key.
// Every operation reads and rewrites the whole array.
type CollectionAdapter[T entities.Record] struct {
	store providers.KeyValueStore
	key   string
	clock Clock
}

// NewCollectionAdapter creates a record repository over the slot stored at key
func NewCollectionAdapter[T entities.Record](store providers.KeyValueStore, key string, opts ...Option) repositories.RecordRepository[T] {
	o := buildOptions(opts)
	return &CollectionAdapter[T]{
		store: store,
		key:   key,
		clock: o.clock,
	}
}

func (a *CollectionAdapter[T]) load(ctx context.Context) ([]T, error) {
	raw, err := a.store.Get(ctx, a.key)
	if apperrors.IsNotFound(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.NewMalformedDataError(a.key, err)
	}
	// A stored JSON null decodes to a nil slice.
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (a *CollectionAdapter[T]) persist(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewInternalError("failed to encode collection", err)
	}
	return a.store.Set(ctx, a.key, raw)
}

func indexOf[T entities.Record](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// GetAll returns every record in storage order
func (a *CollectionAdapter[T]) GetAll(ctx context.Context) ([]T, error) {
	return a.load(ctx)
}

// GetByID returns the first record with the given id
func (a *CollectionAdapter[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T

	items, err := a.load(ctx)
	if err != nil {
		return zero, false, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}
	return items[i], true, nil
}

// Save appends record and persists the collection
func (a *CollectionAdapter[T]) Save(ctx context.Context, record T) (T, error) {
	items, err := a.load(ctx)
	if err != nil {
		return record, err
	}

	items = append(items, record)
	if err := a.persist(ctx, items); err != nil {
		return record, err
	}
	return record, nil
}

// Update merges patch over the record and stamps updatedAt
func (a *CollectionAdapter[T]) Update(ctx context.Context, id string, patch repositories.Patch) (T, bool, error) {
	var zero T

	items, err := a.load(ctx)
	if err != nil {
		return zero, false, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}

	now := a.clock().UTC()
	if prev := items[i].GetUpdatedAt(); now.Before(prev) {
		now = prev
	}

	// Records keep their identity; only the remaining fields are merged.
	patch = patch.With("updatedAt", now)
	delete(patch, "id")

	merged, err := repositories.ApplyPatch(items[i], patch)
	if err != nil {
		return zero, true, err
	}

	items[i] = merged
	if err := a.persist(ctx, items); err != nil {
		return zero, true, err
	}
	return merged, true, nil
}

// Delete removes the first record with the given id
func (a *CollectionAdapter[T]) Delete(ctx context.Context, id string) (bool, error) {
	items, err := a.load(ctx)
	if err != nil {
		return false, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return false, nil
	}

	items = append(items[:i], items[i+1:]...)
	if err := a.persist(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the slot
func (a *CollectionAdapter[T]) Clear(ctx context.Context) error {
	return a.store.Delete(ctx, a.key)
}
