package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type noteService struct {
	notes store.NoteRepository

	logger *logger.Logger
}

// NewNoteService returns the NoteService of the remote replica.
func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{notes: notes, logger: logger}
}

func (n *noteService) FetchAll(ctx context.Context, ownerID string) ([]models.Note, error) {
	if err := authorizeOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return n.notes.FetchAll(ctx, ownerID)
}

func (n *noteService) Create(ctx context.Context, note models.Note) error {
	if err := authorizeOwner(ctx, note.OwnerID); err != nil {
		return err
	}
	return n.notes.Create(ctx, note)
}

func (n *noteService) Update(ctx context.Context, note models.Note) error {
	if err := authorizeOwner(ctx, note.OwnerID); err != nil {
		return err
	}
	return n.notes.Update(ctx, note)
}

// authorizeOwner checks that ownerID is the authenticated owner stored in ctx
// by the auth middleware.
func authorizeOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return ErrNoOwnerID
	}

	tokenOwner, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return ErrNoOwnerID
	}
	if tokenOwner != ownerID {
		logger.FromContext(ctx).Warn().
			Str("token_owner", tokenOwner).
			Str("owner_id", ownerID).
			Msg("access to notes of a different owner")
		return ErrUnauthorizedAccessToDifferentOwner
	}
	return nil
}
