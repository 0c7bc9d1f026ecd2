package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", withSQLiteDefaults(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single connection keeps ":memory:" databases alive and serializes
	// writers the way SQLite expects
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		dialect:            migrations.DialectSQLite,
		logger:             log,
	}, nil
}

// withSQLiteDefaults turns on foreign keys and a busy timeout unless the DSN
// already sets them.
func withSQLiteDefaults(dsn string) string {
	params := make([]string, 0, 2)
	if !strings.Contains(dsn, "_foreign_keys=") && !strings.Contains(dsn, "_fk=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout=") && !strings.Contains(dsn, "_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
