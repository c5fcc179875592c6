package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteAlreadyExists is returned by Create when a note with the same
	// id is already stored.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrNoteNotFound is returned by Update and Get when no note with the
	// given id exists for the owner.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrLocalSessionNotFound is returned when the client has no stored login.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrRetryable wraps transient driver failures (lost connection,
	// deadlock, busy database).
	ErrRetryable = errors.New("temporary storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery wraps driver failures of a statement.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
