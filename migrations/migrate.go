// Package migrations embeds the goose schema migrations of both replicas:
// PostgreSQL for the server and SQLite for the client.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

// Dialect selects the migration set and the goose dialect used to apply it.
type Dialect struct {
	name string
	dir  string
}

var (
	// Postgres is the server schema.
	Postgres = Dialect{name: "pgx", dir: "postgres"}
	// SQLite is the client schema.
	SQLite = Dialect{name: "sqlite3", dir: "sqlite"}
)

// String returns the goose dialect name.
func (d Dialect) String() string {
	return d.name
}

// goose keeps the base FS and the dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	fsys, err := fs.Sub(embedMigrations, dialect.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dialect.dir, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect.name); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
