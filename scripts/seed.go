package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	"github.com/zatekoja/physiodesk/backend/pkg/config"
)

// Seeds the configured slot store with the demo clinic data. RESET_DATA=true clears
// every slot first so the seeder runs against an empty store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	app := cfg.App
	app.Name += "-seed"
	observability.InitLogger(app)

	ctx := context.Background()

	store, closeStore, err := storage.NewKeyValueStore(ctx, cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open slot store")
	}
	defer closeStore()

	collections := records.NewCollections(store, cfg.Storage.KeyPrefix)

	if os.Getenv("RESET_DATA") == "true" {
		log.Info().Msg("RESET_DATA=true detected, clearing slots before seeding")
		for _, key := range records.SlotKeys(cfg.Storage.KeyPrefix) {
			if err := store.Delete(ctx, key); err != nil {
				log.Fatal().Err(err).Str("key", key).Msg("failed to clear slot")
			}
		}
	}

	seeded, err := services.NewClinic(collections).Seeder.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}
	if !seeded {
		log.Info().Msg("patients already present, nothing seeded")
	}
}
