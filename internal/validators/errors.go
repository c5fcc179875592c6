package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID    = errors.New("invalid note id")
	ErrInvalidOwnerID   = errors.New("invalid owner id")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyCreatedAt   = errors.New("created_at is required")
	ErrInvalidUpdatedAt = errors.New("invalid updated_at")
	ErrEmptyNotes       = errors.New("notes list cannot be empty")
)
