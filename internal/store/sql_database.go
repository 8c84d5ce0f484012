// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/migrations"
)

// Driver names the database/sql driver a [DB] was opened with.
type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverPostgres Driver = "pgx"
)

// retryAttempts bounds how many times a retryable statement is re-run.
const (
	retryAttempts = 3
	retryBase     = 50 * time.Millisecond
)

// DB wraps the snapshot database connection together with the driver it was
// opened with and the matching error classifier.
type DB struct {
	*sql.DB
	driver             Driver
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the snapshot database named by cfg.DSN. PostgreSQL URLs
// ("postgres://", "postgresql://") select the pgx driver, anything else is
// treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if driverFor(cfg.DSN) == DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func driverFor(dsn string) Driver {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Driver returns the driver the connection was opened with.
func (db *DB) Driver() Driver {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.driver))
}

// builder returns a squirrel statement builder using the placeholder format
// of the underlying driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs fn, re-running it with exponential backoff while the
// classifier reports the failure as transient.
func (db *DB) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts-1, retry.NewExponential(retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("op", op).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
