// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// noteRepository implements both [NoteRepository] and [LocalNoteRepository]:
// the queries are the same for PostgreSQL and SQLite, only the placeholder
// format and the error classifier of the embedded [*DB] differ.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs the server note repository over a
// PostgreSQL connection.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{DB: db, logger: logger}
}

// NewLocalNoteRepository constructs the client note repository over a
// SQLite connection.
func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &noteRepository{DB: db, logger: logger}
}

// FetchAll returns every note of ownerID ordered by creation time.
func (r *noteRepository) FetchAll(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(r.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FetchAll").Str("owner_id", ownerID).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FetchAll").Str("owner_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.FetchAll").Str("owner_id", ownerID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.FetchAll").Str("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.classify(rowsErr))
	}

	return notes, nil
}

// Get returns one note of ownerID.
func (r *noteRepository) Get(ctx context.Context, ownerID, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(r.builder, ownerID, id)
	if err != nil {
		return models.Note{}, err
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Str("owner_id", ownerID).Str("id", id).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, r.classify(err))
	}

	return note, nil
}

// Create inserts note. Timestamps are normalized before they are stored.
func (r *noteRepository) Create(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.builder, note.Normalized())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		err = r.classify(err)
		if errors.Is(err, ErrNoteAlreadyExists) {
			log.Warn().Str("func", "noteRepository.Create").Str("id", note.ID).Msg("note already exists")
			return ErrNoteAlreadyExists
		}

		log.Err(err).Str("func", "noteRepository.Create").Str("id", note.ID).Str("owner_id", note.OwnerID).Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update overwrites the synchronized fields of note.
func (r *noteRepository) Update(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.builder, note.Normalized())
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Str("id", note.ID).Str("owner_id", note.OwnerID).Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "noteRepository.Update").Str("id", note.ID).Msg("note not found")
		return ErrNoteNotFound
	}

	return nil
}
