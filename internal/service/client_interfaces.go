package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// NoteGateway is one replica of an owner's notes as seen by the sync engine.
// The local SQLite repository and the HTTP server adapter both implement it.
//
// Create is only called for ids absent from the replica, Update only for ids
// present in it. Calls carry no ordering guarantee.
type NoteGateway interface {
	// FetchAll returns every note of ownerID held by the replica.
	FetchAll(ctx context.Context, ownerID string) ([]models.Note, error)

	// Create stores a note that the replica does not have.
	Create(ctx context.Context, note models.Note) error

	// Update overwrites the synchronized fields of an existing note.
	Update(ctx context.Context, note models.Note) error
}

// OwnerResolver yields the owner id a sync pass runs for. An empty id with a
// nil error means nobody is logged in.
type OwnerResolver interface {
	OwnerID(ctx context.Context) (string, error)
}

// SyncPlanner reconciles two snapshots of the same owner's notes. It does no
// I/O.
type SyncPlanner interface {
	// BuildSyncPlan classifies every id seen in local or remote as push,
	// pull or conflict. Ids with equal content on both sides are left out.
	BuildSyncPlan(ctx context.Context, local, remote []models.Note) (models.SyncPlan, error)

	// ResolveConflict picks the write that makes a diverged pair converge
	// using last-write-wins on ModifiedAt. Ties go to the local version.
	ResolveConflict(pair models.NotePair) models.SyncAction

	// PlanActions flattens plan into writes: pushes, then pulls, then
	// resolved conflicts, each in plan order.
	PlanActions(plan models.SyncPlan) []models.SyncAction
}

// ClientSyncService runs sync passes between the local and the remote
// replica.
type ClientSyncService interface {
	// Run resolves the current owner and runs one pass for it.
	Run(ctx context.Context) models.SyncResult

	// RunForOwner runs one pass for ownerID. Failures never surface as a
	// returned error, they are listed in the result.
	RunForOwner(ctx context.Context, ownerID string) models.SyncResult

	// Progress runs one pass for the current owner and yields its state
	// transitions. The last event carries the result. Stopping the
	// iteration early cancels the pass.
	Progress(ctx context.Context) iter.Seq[models.SyncEvent]
}

// ClientSyncJob runs sync passes periodically in the background.
type ClientSyncJob interface {
	// Start launches the background loop. A pass runs immediately and then
	// every interval; an interval of zero or less falls back to the
	// configured default. Any previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited.
	Stop()

	// Run implements workers.Worker: it starts the loop and blocks until ctx
	// is done.
	Run(ctx context.Context)
}

// ClientAuthService registers and logs the user in against the server and
// keeps the resulting session in the local database.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)
	Logout(ctx context.Context) error

	// Restore loads the stored session, if any, and hands its token to the
	// server adapter. It returns store.ErrLocalSessionNotFound when nobody is
	// logged in.
	Restore(ctx context.Context) (models.Session, error)
}

// ClientNoteService edits notes in the local replica. Changes reach the
// server on the next sync pass.
type ClientNoteService interface {
	Add(ctx context.Context, ownerID, title, body string, isPublic bool) (models.Note, error)
	List(ctx context.Context, ownerID string) ([]models.Note, error)
	Get(ctx context.Context, ownerID, id string) (models.Note, error)
	Edit(ctx context.Context, ownerID, id string, edit models.NoteEdit) (models.Note, error)
}
