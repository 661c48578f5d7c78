package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/physiodesk/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// RedisAdapter implements the KeyValueStore interface using plain Redis strings.
// Slots never expire.
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis slot store
func NewRedisAdapter(client *redisclient.Client) providers.KeyValueStore {
	return &RedisAdapter{
		client: client,
	}
}

// Get retrieves a slot value
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("key not found: %s", key))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read slot from redis", err)
	}
	return result, nil
}

// Set overwrites a slot value
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte) error {
	if err := a.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return apperrors.NewInternalError("failed to write slot to redis", err)
	}
	return nil
}

// Delete removes a slot
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return apperrors.NewInternalError("failed to delete slot from redis", err)
	}
	return nil
}

// Exists checks if a slot holds a value
func (a *RedisAdapter) Exists(ctx context.Context, key string) (bool, error) {
	result, err := a.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.NewInternalError("failed to check slot in redis", err)
	}
	return result > 0, nil
}
