package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/clients/postgres"
	redisclient "github.com/zatekoja/physiodesk/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	"github.com/zatekoja/physiodesk/backend/pkg/config"
)

// NewKeyValueStore builds the slot store selected by cfg.Storage.Driver. The returned
// closer releases any client connection and is never nil.
func NewKeyValueStore(ctx context.Context, cfg *config.Config, metrics *observability.Metrics) (providers.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	var (
		store  providers.KeyValueStore
		closer = noop
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store = NewMemoryAdapter()

	case config.StorageDriverFile:
		fileStore, err := NewFileAdapter(cfg.Storage.FileDir)
		if err != nil {
			return nil, noop, err
		}
		store = fileStore

	case config.StorageDriverRedis:
		client, err := redisclient.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		store = NewRedisAdapter(client)
		closer = client.Close

	case config.StorageDriverPostgres:
		client, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		pgStore := NewPostgresAdapter(client, cfg.Database.Table)
		if err := pgStore.InitSchema(ctx); err != nil {
			client.Close()
			return nil, noop, err
		}
		store = pgStore
		closer = client.Close

	default:
		return nil, noop, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Str("key_prefix", cfg.Storage.KeyPrefix).
		Msg("slot store initialized")

	if metrics != nil {
		store = NewInstrumentedAdapter(store, metrics, cfg.Storage.Driver)
	}
	return store, closer, nil
}
