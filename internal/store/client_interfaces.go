package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalNoteRepository is the SQLite note store of the local replica. It is
// the local side of a sync pass and also backs the CLI note commands.
type LocalNoteRepository interface {
	FetchAll(ctx context.Context, ownerID string) ([]models.Note, error)
	Get(ctx context.Context, ownerID, id string) (models.Note, error)
	Create(ctx context.Context, note models.Note) error
	Update(ctx context.Context, note models.Note) error
}

// LocalSessionRepository keeps the login of the client between runs.
type LocalSessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context) (models.Session, error)
	Delete(ctx context.Context) error
	// OwnerID returns the owner of the stored session, or "" when nobody
	// is logged in.
	OwnerID(ctx context.Context) (string, error)
}
