package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs the SQLite-backed session store.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{DB: db, logger: logger}
}

// Save stores session, replacing any previous login.
func (l *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveSession,
		session.OwnerID,
		session.Login,
		session.Token,
		models.NormalizeTime(session.CreatedAt),
	)
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.Save").Str("owner_id", session.OwnerID).Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the stored session or ErrLocalSessionNotFound.
func (l *localSessionRepository) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := l.DB.QueryRowContext(ctx, getSession).
		Scan(&session.OwnerID, &session.Login, &session.Token, &session.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrLocalSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "localSessionRepository.Get").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// Delete removes the stored session. Deleting a missing session is not an
// error.
func (l *localSessionRepository) Delete(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// OwnerID returns the owner of the stored session, or "" without an error
// when nobody is logged in.
func (l *localSessionRepository) OwnerID(ctx context.Context) (string, error) {
	session, err := l.Get(ctx)
	if errors.Is(err, ErrLocalSessionNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return session.OwnerID, nil
}
