package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/migrations"
)

// DB is a database connection together with the dialect specifics the
// repositories need: the squirrel placeholder format, the driver error
// classifier and the migration set.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            migrations.Dialect
	logger             *logger.Logger
}

type poolLimits struct {
	maxOpen int
	maxIdle int
}

// openDB opens a pool for driver and pings it. The pool is closed again
// when the ping fails.
func openDB(ctx context.Context, driver, dsn string, limits poolLimits, log *logger.Logger) (*sql.DB, error) {
	log = &logger.Logger{Logger: log.With().Str("driver", driver).Logger()}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Msg("open database")
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	conn.SetMaxOpenConns(limits.maxOpen)
	conn.SetMaxIdleConns(limits.maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("ping database")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.Info().Msg("database connected")
	return conn, nil
}

// Migrate applies the pending schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps a driver error of the notes table to the store sentinels.
func (db *DB) classify(err error) error {
	return db.classifyAs(err, ErrNoteAlreadyExists)
}

// classifyAs returns duplicate for unique violations and wraps transient
// failures with ErrRetryable. Other errors are returned unchanged.
func (db *DB) classifyAs(err, duplicate error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case Duplicate:
		return duplicate
	case Retryable:
		return fmt.Errorf("%w: %w", ErrRetryable, err)
	default:
		return err
	}
}
