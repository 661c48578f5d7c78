package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// MemoryAdapter keeps slots in process memory. State lives as long as the adapter does,
// which makes it the default for tests and demo runs.
type MemoryAdapter struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryAdapter creates an empty in-memory slot store
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		slots: make(map[string][]byte),
	}
}

var _ providers.KeyValueStore = (*MemoryAdapter)(nil)

// Get returns a copy of the stored value
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	value, ok := a.slots[key]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("key not found: %s", key))
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.slots[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a slot
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.slots, key)
	return nil
}

// Exists checks if a slot holds a value
func (a *MemoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.slots[key]
	return ok, nil
}
