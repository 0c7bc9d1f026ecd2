// Package migrations embeds the SQL schema for every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Dialect names accepted by [Migrate]. They match goose dialect names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrNilDB = errors.New("db is nil")

// Migrate applies all pending migrations for dialect.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	var dir string
	switch dialect {
	case DialectPostgres:
		dir = "postgres"
	case DialectSQLite:
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msgf(format, v...)
}

// Fatalf must not return: goose treats it as terminating.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.log.Error().Str("component", "goose").Msg(msg)
	panic(msg)
}
