package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	"github.com/zatekoja/physiodesk/backend/pkg/config"
)

// Applies or rolls back the SQL migrations for the postgres slot table.
// Usage: migrate [up|down]
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	app := cfg.App
	app.Name += "-migrate"
	observability.InitLogger(app)

	migrationsPath, err := findMigrations()
	if err != nil {
		log.Fatal().Err(err).Msg("migrations directory not found")
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.Database.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize migrations")
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command, expected up or down")
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("command", cmd).Msg("migration failed")
	}

	log.Info().Str("command", cmd).Str("path", migrationsPath).Msg("migration complete")
}

// findMigrations walks up from the working directory looking for migrations/.
// MIGRATIONS_DIR overrides the search.
func findMigrations() (string, error) {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return filepath.Abs(dir)
	}

	current, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(current, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", errors.New("no migrations directory in the working directory or its parents")
}
