package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// PostgresAdapter keeps every slot as one row of a two-column key/value table.
type PostgresAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	table  string
}

// NewPostgresAdapter creates a slot store over table
func NewPostgresAdapter(client *postgres.Client, table string) *PostgresAdapter {
	return &PostgresAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		table:  table,
	}
}

var _ providers.KeyValueStore = (*PostgresAdapter)(nil)

// InitSchema creates the slot table when migrations have not been run
func (a *PostgresAdapter) InitSchema(ctx context.Context) error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, pq.QuoteIdentifier(a.table))

	if _, err := a.client.DB().ExecContext(ctx, stmt); err != nil {
		return apperrors.NewInternalError("failed to create slot table", err)
	}
	return nil
}

// Get retrieves a slot value
func (a *PostgresAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := a.db.From(a.table).
		Prepared(true).
		Select("value").
		Where(goqu.Ex{"key": key}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build select query", err)
	}

	var value string
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("key not found: %s", key))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read slot", err)
	}
	return []byte(value), nil
}

// Set upserts a slot value
func (a *PostgresAdapter) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := a.db.Insert(a.table).
		Prepared(true).
		Rows(goqu.Record{
			"key":        key,
			"value":      string(value),
			"updated_at": time.Now().UTC(),
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.I("excluded.value"),
			"updated_at": goqu.I("excluded.updated_at"),
		})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to write slot", err)
	}
	return nil
}

// Delete removes a slot row
func (a *PostgresAdapter) Delete(ctx context.Context, key string) error {
	query, args, err := a.db.Delete(a.table).
		Prepared(true).
		Where(goqu.Ex{"key": key}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete slot", err)
	}
	return nil
}

// Exists checks if a slot row is present
func (a *PostgresAdapter) Exists(ctx context.Context, key string) (bool, error) {
	query, args, err := a.db.From(a.table).
		Prepared(true).
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"key": key}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check slot", err)
	}
	return count > 0, nil
}
