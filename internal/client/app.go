package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/telemetry"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	services  *service.ClientServices
	versions  VersionSource
	view      View
	buildInfo models.AppBuildInfo
	closers   []func(ctx context.Context) error

	logger *logger.Logger
}

// NewApp opens the local replica, creates the server adapter and wires the
// client services. Results of background passes are printed through view.
func NewApp(ctx context.Context, cfg *config.ClientConfig, view View, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	a := &App{view: view, buildInfo: buildInfo, logger: log}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}
	a.closers = append(a.closers, shutdownTelemetry)

	localStore, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return localStore.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	a.services = service.NewClientServices(localStore, serverAdapter, cfg.Workers, view.PrintSyncResult, log)
	a.versions = serverAdapter

	return a, nil
}

// Close releases the local database and flushes telemetry. Closers run in
// reverse order of acquisition.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}

func (a *App) Register(ctx context.Context, login, password string) error {
	session, err := a.services.AuthService.Register(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return err
	}

	a.view.Success("registered and logged in as %s", session.Login)
	return nil
}

func (a *App) Login(ctx context.Context, login, password string) error {
	session, err := a.services.AuthService.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return err
	}

	a.view.Success("logged in as %s", session.Login)
	return nil
}

// Logout forgets the stored session. Local notes are kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	a.view.Success("logged out")
	return nil
}

func (a *App) AddNote(ctx context.Context, title, body string, isPublic bool) error {
	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	note, err := a.services.NoteService.Add(ctx, session.OwnerID, title, body, isPublic)
	if err != nil {
		return err
	}

	a.view.PrintNote(note)
	return nil
}

func (a *App) ListNotes(ctx context.Context) error {
	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	notes, err := a.services.NoteService.List(ctx, session.OwnerID)
	if err != nil {
		return err
	}

	a.view.PrintNotes(notes)
	return nil
}

func (a *App) ShowNote(ctx context.Context, id string) error {
	note, err := a.note(ctx, id)
	if err != nil {
		return err
	}

	a.view.PrintNote(note)
	return nil
}

func (a *App) EditNote(ctx context.Context, id string, edit models.NoteEdit) error {
	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	note, err := a.services.NoteService.Edit(ctx, session.OwnerID, id, edit)
	if err != nil {
		return err
	}

	a.view.PrintNote(note)
	return nil
}

func (a *App) CopyNote(ctx context.Context, id string) error {
	note, err := a.note(ctx, id)
	if err != nil {
		return err
	}

	if err = a.view.CopyNote(note); err != nil {
		return err
	}

	a.view.Success("copied %q to the clipboard", note.Title)
	return nil
}

// Sync runs one pass and renders its progress. A pass that finishes with
// errors is reported through the returned error.
func (a *App) Sync(ctx context.Context) error {
	if _, err := a.restore(ctx); err != nil {
		return err
	}

	result, err := a.view.Sync(ctx, a.services.SyncService.Progress)
	if err != nil {
		return err
	}

	return result.Err()
}

// Daemon runs sync passes every configured interval until ctx is done.
func (a *App) Daemon(ctx context.Context) error {
	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Daemon").Str("owner_id", session.OwnerID).Msg("sync daemon started")
	workers.NewWorkers(a.services.SyncJob).Run(ctx)
	a.logger.Info().Str("func", "App.Daemon").Msg("sync daemon stopped")

	return nil
}

// Version prints the client build information and the server version. An
// unreachable server is not an error.
func (a *App) Version(ctx context.Context) error {
	serverVersion, err := a.versions.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Version").Msg("server version unavailable")
		serverVersion = ""
	}

	a.view.PrintBuildInfo(a.buildInfo, serverVersion)
	return nil
}

func (a *App) note(ctx context.Context, id string) (models.Note, error) {
	session, err := a.session(ctx)
	if err != nil {
		return models.Note{}, err
	}

	return a.services.NoteService.Get(ctx, session.OwnerID, id)
}

// session restores the stored login and fails with service.ErrNotLoggedIn
// when there is none.
func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.restore(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if session.OwnerID == "" {
		return models.Session{}, service.ErrNotLoggedIn
	}
	return session, nil
}

// restore loads the stored login and hands its token to the adapter. A
// missing login is not an error here.
func (a *App) restore(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return session, nil
}
