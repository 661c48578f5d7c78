package services

import (
	"context"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// Clock returns the current instant
type Clock func() time.Time

// collection exposes the raw record store operations of one slot. Domain services embed it
// and add their own flows on top.
type collection[T entities.Record] struct {
	repo repositories.RecordRepository[T]
	now  Clock
}

func newCollection[T entities.Record](repo repositories.RecordRepository[T]) collection[T] {
	return collection[T]{repo: repo, now: time.Now}
}

// SetClock overrides the clock used for ids, timestamps and "today"
func (c *collection[T]) SetClock(clock Clock) {
	c.now = clock
}

// GetAll returns every record in storage order
func (c *collection[T]) GetAll(ctx context.Context) ([]T, error) {
	return c.repo.GetAll(ctx)
}

// GetByID returns the record with the given id
func (c *collection[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	return c.repo.GetByID(ctx, id)
}

// Save appends a record exactly as given
func (c *collection[T]) Save(ctx context.Context, record T) (T, error) {
	return c.repo.Save(ctx, record)
}

// Update merges patch over the record with the given id
func (c *collection[T]) Update(ctx context.Context, id string, patch repositories.Patch) (T, bool, error) {
	return c.repo.Update(ctx, id, patch)
}

// Delete removes the record with the given id
func (c *collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	return c.repo.Delete(ctx, id)
}

// Clear removes the whole collection
func (c *collection[T]) Clear(ctx context.Context) error {
	return c.repo.Clear(ctx)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
