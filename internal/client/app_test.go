package client

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwner = "owner-1"

var testSession = models.Session{OwnerID: testOwner, Login: "alice", Token: "tok"}

// clipboardView renders through a plain tui.TUI and records clipboard writes.
type clipboardView struct {
	*tui.TUI
	copied []models.Note
	err    error
}

func (v *clipboardView) CopyNote(n models.Note) error {
	if v.err != nil {
		return v.err
	}
	v.copied = append(v.copied, n)
	return nil
}

type testDeps struct {
	auth     *mock.MockClientAuthService
	notes    *mock.MockClientNoteService
	sync     *mock.MockClientSyncService
	job      *mock.MockClientSyncJob
	versions *mock.MockServerAdapter
	view     *clipboardView
	out      *bytes.Buffer
}

func newTestApp(t *testing.T) (*App, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	out := &bytes.Buffer{}
	d := testDeps{
		auth:     mock.NewMockClientAuthService(ctrl),
		notes:    mock.NewMockClientNoteService(ctrl),
		sync:     mock.NewMockClientSyncService(ctrl),
		job:      mock.NewMockClientSyncJob(ctrl),
		versions: mock.NewMockServerAdapter(ctrl),
		view:     &clipboardView{TUI: tui.New(out, nil)},
		out:      out,
	}

	a := &App{
		services: &service.ClientServices{
			AuthService: d.auth,
			NoteService: d.notes,
			SyncService: d.sync,
			SyncJob:     d.job,
		},
		versions:  d.versions,
		view:      d.view,
		buildInfo: models.NewAppBuildInfo("v0.3.0", "2026-10-01", "deadbeef"),
		logger:    logger.Nop(),
	}
	return a, d
}

func progressOf(events ...models.SyncEvent) iter.Seq[models.SyncEvent] {
	return func(yield func(models.SyncEvent) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}

func TestApp_RegisterAndLogin(t *testing.T) {
	a, d := newTestApp(t)
	user := models.User{Login: "alice", Password: "secret"}

	d.auth.EXPECT().Register(gomock.Any(), user).Return(testSession, nil)
	require.NoError(t, a.Register(context.Background(), "alice", "secret"))
	assert.Contains(t, d.out.String(), "registered and logged in as alice")

	d.auth.EXPECT().Login(gomock.Any(), user).Return(models.Session{}, service.ErrLoginOnServer)
	assert.ErrorIs(t, a.Login(context.Background(), "alice", "secret"), service.ErrLoginOnServer)
}

func TestApp_Logout(t *testing.T) {
	a, d := newTestApp(t)
	d.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, a.Logout(context.Background()))
	assert.Contains(t, d.out.String(), "logged out")
}

func TestApp_NotesRequireSession(t *testing.T) {
	a, d := newTestApp(t)
	d.auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound).Times(3)

	assert.ErrorIs(t, a.ListNotes(context.Background()), service.ErrNotLoggedIn)
	assert.ErrorIs(t, a.AddNote(context.Background(), "t", "b", false), service.ErrNotLoggedIn)
	assert.ErrorIs(t, a.Daemon(context.Background()), service.ErrNotLoggedIn)
}

func TestApp_RestoreFailure(t *testing.T) {
	a, d := newTestApp(t)
	errDB := errors.New("database is locked")
	d.auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, errDB)

	err := a.ListNotes(context.Background())
	assert.ErrorIs(t, err, errDB)
	assert.ErrorContains(t, err, "restore session")
}

func TestApp_AddListEdit(t *testing.T) {
	a, d := newTestApp(t)
	ctx := context.Background()
	d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil).AnyTimes()

	added := models.Note{ID: "n1", OwnerID: testOwner, Title: "groceries", Body: "milk"}
	d.notes.EXPECT().Add(gomock.Any(), testOwner, "groceries", "milk", true).Return(added, nil)
	require.NoError(t, a.AddNote(ctx, "groceries", "milk", true))
	assert.Contains(t, d.out.String(), "milk")

	d.notes.EXPECT().List(gomock.Any(), testOwner).Return([]models.Note{added}, nil)
	require.NoError(t, a.ListNotes(ctx))
	assert.Contains(t, d.out.String(), "Notes (1)")

	title := "shopping"
	edit := models.NoteEdit{Title: &title}
	d.notes.EXPECT().Edit(gomock.Any(), testOwner, "n1", edit).Return(edit.Apply(added), nil)
	require.NoError(t, a.EditNote(ctx, "n1", edit))
	assert.Contains(t, d.out.String(), "shopping")
}

func TestApp_ShowAndCopyNote(t *testing.T) {
	a, d := newTestApp(t)
	ctx := context.Background()
	d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil).AnyTimes()

	n := models.Note{ID: "n1", OwnerID: testOwner, Title: "wifi", Body: "hunter2"}
	d.notes.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(n, nil).Times(2)
	d.notes.EXPECT().Get(gomock.Any(), testOwner, "missing").Return(models.Note{}, store.ErrNoteNotFound)

	require.NoError(t, a.ShowNote(ctx, "n1"))
	assert.Contains(t, d.out.String(), "hunter2")

	require.NoError(t, a.CopyNote(ctx, "n1"))
	assert.Equal(t, []models.Note{n}, d.view.copied)
	assert.Contains(t, d.out.String(), `copied "wifi"`)

	assert.ErrorIs(t, a.CopyNote(ctx, "missing"), store.ErrNoteNotFound)
}

func TestApp_CopyNoteClipboardFailure(t *testing.T) {
	a, d := newTestApp(t)
	d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)
	d.notes.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(models.Note{ID: "n1"}, nil)
	d.view.err = errors.New("no clipboard")

	assert.ErrorContains(t, a.CopyNote(context.Background(), "n1"), "no clipboard")
}

func TestApp_Sync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, d := newTestApp(t)
		d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)

		res := models.SyncResult{OwnerID: testOwner, State: models.SyncCompleted, Stats: models.SyncStats{Pulled: 1}}
		d.sync.EXPECT().Progress(gomock.Any()).Return(progressOf(
			models.SyncEvent{State: models.SyncFetchingBoth},
			models.SyncEvent{State: models.SyncCompleted, Result: &res},
		))

		require.NoError(t, a.Sync(context.Background()))
		assert.Contains(t, d.out.String(), "sync done")
	})

	t.Run("failed pass is an error", func(t *testing.T) {
		a, d := newTestApp(t)
		d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)

		res := models.SyncResult{
			OwnerID: testOwner,
			State:   models.SyncFailedOneFetch,
			Errors:  []models.SyncError{{Operation: models.OpFetchRemote, Source: models.ReplicaRemote, Message: "503"}},
		}
		d.sync.EXPECT().Progress(gomock.Any()).Return(progressOf(models.SyncEvent{State: res.State, Result: &res}))

		err := a.Sync(context.Background())
		assert.ErrorIs(t, err, models.ErrPartialFetchFailure)
		assert.Contains(t, d.out.String(), "sync failed")
	})

	t.Run("nobody logged in still runs the pass", func(t *testing.T) {
		a, d := newTestApp(t)
		d.auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

		res := models.SyncResult{
			State:  models.SyncNotStarted,
			Errors: []models.SyncError{{Operation: models.OpNoOwnerID, Message: "no owner id"}},
		}
		d.sync.EXPECT().Progress(gomock.Any()).Return(progressOf(models.SyncEvent{State: res.State, Result: &res}))

		assert.ErrorIs(t, a.Sync(context.Background()), models.ErrNoOwnerID)
	})
}

func TestApp_Daemon(t *testing.T) {
	a, d := newTestApp(t)
	d.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)

	ctx, cancel := context.WithCancel(context.Background())
	d.job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) {
		cancel()
		<-ctx.Done()
	})

	require.NoError(t, a.Daemon(ctx))
}

func TestApp_Version(t *testing.T) {
	t.Run("server reachable", func(t *testing.T) {
		a, d := newTestApp(t)
		d.versions.EXPECT().ServerVersion(gomock.Any()).Return("v1.4.0", nil)

		require.NoError(t, a.Version(context.Background()))
		assert.Contains(t, d.out.String(), "v0.3.0")
		assert.Contains(t, d.out.String(), "v1.4.0")
	})

	t.Run("server unreachable", func(t *testing.T) {
		a, d := newTestApp(t)
		d.versions.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("connection refused"))

		require.NoError(t, a.Version(context.Background()))
		assert.Contains(t, d.out.String(), "N/A")
	})
}

func TestApp_CloseRunsClosersInReverse(t *testing.T) {
	a, _ := newTestApp(t)

	var order []int
	errLast := errors.New("close failed")
	a.closers = []func(context.Context) error{
		func(context.Context) error { order = append(order, 1); return errLast },
		func(context.Context) error { order = append(order, 2); return nil },
	}

	assert.ErrorIs(t, a.Close(), errLast)
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, a.Close())
}
