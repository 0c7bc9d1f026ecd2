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

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// DB wraps a *sql.DB together with everything the repositories need to talk
// to one concrete database: the squirrel placeholder style, the driver's
// error classifier and the goose dialect.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// NewConnect opens a database chosen by the shape of cfg.DSN: postgres URLs
// and key=value DSNs go to pgx, anything else is a SQLite DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate brings the schema up to date using the embedded migrations for
// this database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// retry runs fn until it succeeds, fails with a non-retryable error, the
// attempts are exhausted or ctx ends.
func (db *DB) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.retry").
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
