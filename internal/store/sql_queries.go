// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const notesTable = "notes"

// noteColumns is the column order every note query selects and scans.
var noteColumns = []string{"id", "owner_id", "title", "body", "is_public", "created_at", "updated_at"}

func buildSelectNotesQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	query, args, err := b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	query, args, err := b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.OwnerID, note.Title, note.Body, note.IsPublic, note.CreatedAt, nullTime(note.UpdatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery overwrites every synchronized field of the note
// identified by id and owner_id.
func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.Update(notesTable).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("is_public", note.IsPublic).
		Set("created_at", note.CreatedAt).
		Set("updated_at", nullTime(note.UpdatedAt)).
		Where(sq.Eq{"id": note.ID, "owner_id": note.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert("users").
		Columns("user_id", "login", "password_hash").
		Values(user.UserID, user.Login, user.Password).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	query, args, err := b.Select("user_id", "login", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// Session queries of the client database. There is at most one row, pinned
// to id 1.
const (
	saveSession = `INSERT INTO sessions (id, owner_id, login, token, created_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = excluded.owner_id,
			login = excluded.login,
			token = excluded.token,
			created_at = excluded.created_at;`

	getSession = `SELECT owner_id, login, token, created_at FROM sessions WHERE id = 1;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row selected with noteColumns. Timestamps are
// normalized so that both drivers return the same values.
func scanNote(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		updatedAt sql.NullTime
	)

	if err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Body, &note.IsPublic, &note.CreatedAt, &updatedAt); err != nil {
		return models.Note{}, err
	}
	if updatedAt.Valid {
		note.UpdatedAt = &updatedAt.Time
	}

	return note.Normalized(), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
