package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the accounts of the remote replica.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository is the PostgreSQL note store of the remote replica.
type NoteRepository interface {
	// FetchAll returns every note of ownerID.
	FetchAll(ctx context.Context, ownerID string) ([]models.Note, error)
	// Create inserts a note. Returns ErrNoteAlreadyExists for a taken id.
	Create(ctx context.Context, note models.Note) error
	// Update overwrites a note of note.OwnerID. Returns ErrNoteNotFound when
	// the owner has no note with that id.
	Update(ctx context.Context, note models.Note) error
}
