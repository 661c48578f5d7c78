package providers

import (
	"context"
)

// KeyValueStore is the slot storage every clinic collection is persisted in.
// Each key holds one opaque serialized value; there is no partial write.
type KeyValueStore interface {
	// Get retrieves the value stored under key. A missing key yields an
	// apperrors NOT_FOUND error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks if a key holds a value
	Exists(ctx context.Context, key string) (bool, error)
}
