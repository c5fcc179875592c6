package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how to report a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable errors are returned as they are.
	NonRetryable ErrorClassification = iota
	// Retryable errors are wrapped in ErrRetryable and answered with 503.
	Retryable
	// Duplicate is a primary key or unique constraint violation.
	Duplicate
)

// ErrorClassificator classifies driver errors of one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// pgClassifications lists the SQLSTATE codes that are not NonRetryable:
// connection loss (class 08), rollbacks (class 40) and a server that is
// still starting up.
var pgClassifications = map[string]ErrorClassification{
	pgerrcode.ConnectionException:    Retryable,
	pgerrcode.ConnectionDoesNotExist: Retryable,
	pgerrcode.ConnectionFailure:      Retryable,
	pgerrcode.TransactionRollback:    Retryable,
	pgerrcode.SerializationFailure:   Retryable,
	pgerrcode.DeadlockDetected:       Retryable,
	pgerrcode.CannotConnectNow:       Retryable,
	pgerrcode.UniqueViolation:        Duplicate,
}

// PostgresErrorClassifier classifies *pgconn.PgError values by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Anything else, nil included,
// is NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError looks pgErr.Code up in the classification table.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	return pgClassifications[pgErr.Code]
}
