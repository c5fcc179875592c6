package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// NoteValidationService rejects malformed notes before they reach the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) FetchAll(ctx context.Context, ownerID string) ([]models.Note, error) {
	if ownerID == "" {
		return nil, ErrNoOwnerID
	}
	return v.inner.FetchAll(ctx, ownerID)
}

func (v *NoteValidationService) Create(ctx context.Context, note models.Note) error {
	if err := v.validator.Validate(ctx, note); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, note)
}

func (v *NoteValidationService) Update(ctx context.Context, note models.Note) error {
	if err := v.validator.Validate(ctx, note); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, note)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
