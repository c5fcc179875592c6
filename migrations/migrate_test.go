// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB
	require.ErrorIs(t, Migrate(db, Postgres), ErrNilDB)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Postgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, SQLite))
	// second run is a no-op
	require.NoError(t, Migrate(db, SQLite))

	for _, table := range []string{"notes", "sessions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dialect := range []Dialect{Postgres, SQLite} {
		files, err := fs.Glob(embedMigrations, dialect.dir+"/*.sql")
		require.NoError(t, err)
		assert.Len(t, files, 2, dialect.String())
	}
}
