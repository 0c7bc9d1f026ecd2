// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the db itself; no expectations means every call fails

	err = Migrate(db, DialectPostgres, logger.Nop())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), "got: %v", err)
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite, logger.Nop())

	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle", logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	// Arrange
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	// Act
	require.NoError(t, Migrate(db, DialectSQLite, logger.Nop()))
	// a second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite, logger.Nop()))

	// Assert
	for _, table := range []string{"users", "todos"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`INSERT INTO users (username, email, hashed_password) VALUES ('a', 'a@x.io', 'h')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (username, email, hashed_password) VALUES ('a', 'b@x.io', 'h')`)
	assert.Error(t, err, "username must be unique")

	_, err = db.Exec(`INSERT INTO todos (task, owner_id) VALUES ('Orphan', 999)`)
	assert.Error(t, err, "owner must exist")
}

func TestGooseLogger_FatalfDoesNotReturn(t *testing.T) {
	l := &gooseLogger{log: logger.Nop()}

	assert.PanicsWithValue(t, "failed to run migration 00002: boom", func() {
		l.Fatalf("failed to run migration %05d: %s", 2, "boom")
	})
}

func TestGooseLogger_PrintfReturns(t *testing.T) {
	l := &gooseLogger{log: logger.Nop()}

	assert.NotPanics(t, func() { l.Printf("OK %s", "00001_create_users.sql") })
}
