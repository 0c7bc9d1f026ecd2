package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// newMockDB returns a Postgres-flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		dialect:            migrations.DialectPostgres,
		logger:             logger.Nop(),
	}, mock
}

// newSQLiteDB returns a migrated in-memory SQLite database.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
