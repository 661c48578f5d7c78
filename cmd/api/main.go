package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/api/routes"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	"github.com/zatekoja/physiodesk/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.App)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	store, closeStore, err := storage.NewKeyValueStore(ctx, cfg, metrics)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialize slot store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("error closing slot store")
		}
	}()

	clinic := services.NewClinic(records.NewCollections(store, cfg.Storage.KeyPrefix))

	if cfg.Storage.SeedDemoData {
		if _, err := clinic.Seeder.Seed(ctx); err != nil {
			log.Error().Err(err).Msg("failed to seed demo data")
		}
	}

	// Overdue sweeper runs only when a schedule is configured
	var sweeper *services.OverdueSweeper
	if cfg.Jobs.OverdueSweepCron != "" {
		sweeper = services.NewOverdueSweeper(clinic.Payments, metrics)
		if err := sweeper.Start(ctx, cfg.Jobs.OverdueSweepCron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Jobs.OverdueSweepCron).Msg("failed to start overdue sweeper")
		}
		defer sweeper.Stop()
	}

	// Set up router
	router := routes.NewRouter(clinic, cfg.Server.AllowedOrigins, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
