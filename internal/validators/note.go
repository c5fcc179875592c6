package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-sync/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldID targets the client-generated note id.
	FieldID = "id"

	// FieldOwnerID targets the owner of the note.
	FieldOwnerID = "owner_id"

	// FieldTitle targets the note title length.
	FieldTitle = "title"

	// FieldCreatedAt targets the creation timestamp, which must be set.
	FieldCreatedAt = "created_at"

	// FieldUpdatedAt targets the modification timestamp. When present it
	// must not be the zero time.
	FieldUpdatedAt = "updated_at"
)

// MaxTitleLength is the maximum number of characters in a note title.
const MaxTitleLength = 512

// NoteValidator validates notes received by the server before they are
// written to the remote replica.
type NoteValidator struct{}

// NewNoteValidator returns a Validator for models.Note and []models.Note.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate implements Validator.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case []models.Note:
		if len(value) == 0 {
			return ErrEmptyNotes
		}
		for i, note := range value {
			if err := v.validateNote(ctx, note, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTitle, FieldCreatedAt, FieldUpdatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldOwnerID:
			if strings.TrimSpace(note.OwnerID) == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if utf8.RuneCountInString(note.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldCreatedAt:
			if note.CreatedAt.IsZero() {
				return ErrEmptyCreatedAt
			}
		case FieldUpdatedAt:
			if note.UpdatedAt != nil && note.UpdatedAt.IsZero() {
				return ErrInvalidUpdatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
