package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientAuthService returns a ClientAuthService that stores the session of
// the logged-in user in sessions and hands its token to serverAdapter.
func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: log}
}

// Register creates the account on the server and logs the user in locally.
func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := validateCredentials(user); err != nil {
		return models.Session{}, err
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, registered)
}

// Login authenticates against the server and stores the new session,
// replacing any previous one.
func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := validateCredentials(user); err != nil {
		return models.Session{}, err
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, found)
}

// Logout forgets the stored session and the adapter token. Local notes are
// kept.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Restore implements ClientAuthService.
func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Err(err).Str("func", "clientAuthService.Restore").Msg("failed to load session")
		}
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) saveSession(ctx context.Context, user models.User) (models.Session, error) {
	if user.UserID == "" {
		return models.Session{}, fmt.Errorf("%w: server returned no user id", ErrInvalidDataProvided)
	}

	session := models.Session{
		OwnerID:   user.UserID,
		Login:     user.Login,
		Token:     a.adapter.Token(),
		CreatedAt: models.NormalizeTime(time.Now()),
	}
	if err := a.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.saveSession").Str("login", session.Login).Msg("session stored")
	return session, nil
}

func validateCredentials(user models.User) error {
	if strings.TrimSpace(user.Login) == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}
	return nil
}
