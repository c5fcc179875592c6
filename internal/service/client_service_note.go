package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientNoteService struct {
	notes     store.LocalNoteRepository
	ids       *utils.UUIDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewClientNoteService returns a ClientNoteService over the local replica.
func NewClientNoteService(notes store.LocalNoteRepository, log *logger.Logger) ClientNoteService {
	return &clientNoteService{
		notes:     notes,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewNoteValidator(),
		now:       time.Now,
		logger:    log,
	}
}

// Add creates a note with a fresh UUIDv7 id. UpdatedAt stays nil until the
// first edit.
func (c *clientNoteService) Add(ctx context.Context, ownerID, title, body string, isPublic bool) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrNotLoggedIn
	}

	note := models.Note{
		ID:        c.ids.Generate(),
		OwnerID:   ownerID,
		Title:     title,
		Body:      body,
		IsPublic:  isPublic,
		CreatedAt: models.NormalizeTime(c.now()),
	}
	if err := c.validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	if err := c.notes.Create(ctx, note); err != nil {
		c.logger.Err(err).Str("func", "clientNoteService.Add").Str("id", note.ID).Msg("failed to add note")
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}

	return note, nil
}

// List returns the local notes of ownerID.
func (c *clientNoteService) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	if ownerID == "" {
		return nil, ErrNotLoggedIn
	}
	return c.notes.FetchAll(ctx, ownerID)
}

// Get returns a single local note of ownerID.
func (c *clientNoteService) Get(ctx context.Context, ownerID, id string) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrNotLoggedIn
	}

	note, err := c.notes.Get(ctx, ownerID, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("load note %s: %w", id, err)
	}
	return note, nil
}

// Edit applies edit to a local note and stamps UpdatedAt with the current
// time, which makes the edit win the next conflict against an older remote
// version.
func (c *clientNoteService) Edit(ctx context.Context, ownerID, id string, edit models.NoteEdit) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrNotLoggedIn
	}
	if edit.IsEmpty() {
		return models.Note{}, ErrNothingToEdit
	}

	note, err := c.notes.Get(ctx, ownerID, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("load note %s: %w", id, err)
	}

	note = edit.Apply(note)
	if err = c.validate(ctx, note); err != nil {
		return models.Note{}, err
	}
	updatedAt := models.NormalizeTime(c.now())
	note.UpdatedAt = &updatedAt

	if err = c.notes.Update(ctx, note); err != nil {
		c.logger.Err(err).Str("func", "clientNoteService.Edit").Str("id", id).Msg("failed to edit note")
		return models.Note{}, fmt.Errorf("edit note %s: %w", id, err)
	}

	return note, nil
}

// validate applies the server's field rules, so a note the server would
// refuse never enters the local replica.
func (c *clientNoteService) validate(ctx context.Context, note models.Note) error {
	if err := c.validator.Validate(ctx, note, validators.FieldTitle); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
