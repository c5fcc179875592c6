// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// epoch is the moment a note without UpdatedAt is considered to have been
// last modified at.
var epoch = time.Unix(0, 0).UTC()

// Note is the unit of synchronization between the local and the remote
// replica. It is stored as-is in both the client SQLite database and the
// server PostgreSQL database.
type Note struct {
	// ID is the client-generated, globally unique identifier of the note.
	// It is the only key used to match notes across replicas and is never
	// regenerated.
	ID string `json:"id"`

	// OwnerID identifies the account the note belongs to. All fetches are
	// scoped by it.
	OwnerID string `json:"owner_id"`

	// Title is the free-text headline of the note.
	Title string `json:"title"`

	// Body is the free-text content of the note.
	Body string `json:"body"`

	// IsPublic is the visibility flag of the note.
	IsPublic bool `json:"is_public"`

	// CreatedAt is set once when the note is created and never changes.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last user edit. Nil means the note was
	// never modified since creation.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}

// ModifiedAt returns UpdatedAt, or the Unix epoch when the note was never
// modified. It is the timestamp used by last-write-wins conflict resolution.
func (n Note) ModifiedAt() time.Time {
	if n.UpdatedAt == nil {
		return epoch
	}
	return *n.UpdatedAt
}

// Equal reports whether n and other carry the same synchronized content:
// Title, Body, IsPublic, CreatedAt and UpdatedAt. ID and OwnerID are not
// compared.
func (n Note) Equal(other Note) bool {
	if n.Title != other.Title || n.Body != other.Body || n.IsPublic != other.IsPublic {
		return false
	}
	if !n.CreatedAt.Equal(other.CreatedAt) {
		return false
	}

	switch {
	case n.UpdatedAt == nil && other.UpdatedAt == nil:
		return true
	case n.UpdatedAt == nil || other.UpdatedAt == nil:
		return false
	default:
		return n.UpdatedAt.Equal(*other.UpdatedAt)
	}
}

// CopyContentFrom returns a copy of n whose synchronized fields are taken
// from src. ID and OwnerID of n are preserved.
func (n Note) CopyContentFrom(src Note) Note {
	n.Title = src.Title
	n.Body = src.Body
	n.IsPublic = src.IsPublic
	n.CreatedAt = src.CreatedAt
	n.UpdatedAt = nil
	if src.UpdatedAt != nil {
		updatedAt := *src.UpdatedAt
		n.UpdatedAt = &updatedAt
	}
	return n
}

// Normalized returns a copy of n with both timestamps passed through
// NormalizeTime.
func (n Note) Normalized() Note {
	n.CreatedAt = NormalizeTime(n.CreatedAt)
	if n.UpdatedAt != nil {
		updatedAt := NormalizeTime(*n.UpdatedAt)
		n.UpdatedAt = &updatedAt
	}
	return n
}

// NormalizeTime converts t to UTC and truncates it to microseconds.
//
// PostgreSQL keeps microsecond precision while SQLite keeps whatever text it
// was given, so every timestamp is normalized before it reaches either store.
// Without it a note written to both replicas would never compare equal again.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NoteEdit lists the fields a user edit changes. Nil fields are kept.
type NoteEdit struct {
	Title    *string
	Body     *string
	IsPublic *bool
}

// IsEmpty reports whether the edit changes nothing.
func (e NoteEdit) IsEmpty() bool {
	return e.Title == nil && e.Body == nil && e.IsPublic == nil
}

// Apply returns a copy of n with the edited fields replaced.
func (e NoteEdit) Apply(n Note) Note {
	if e.Title != nil {
		n.Title = *e.Title
	}
	if e.Body != nil {
		n.Body = *e.Body
	}
	if e.IsPublic != nil {
		n.IsPublic = *e.IsPublic
	}
	return n
}
