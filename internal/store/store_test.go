package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func newMockPostgres(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testNote(id string) models.Note {
	created := time.Date(2026, 4, 1, 9, 30, 0, 123456000, time.UTC)
	return models.Note{
		ID:        id,
		OwnerID:   "owner-1",
		Title:     "title " + id,
		Body:      "body " + id,
		IsPublic:  true,
		CreatedAt: created,
	}
}

var noteRowColumns = []string{"id", "owner_id", "title", "body", "is_public", "created_at", "updated_at"}

func noteRow(rows *sqlmock.Rows, n models.Note) *sqlmock.Rows {
	var updatedAt any
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}
	return rows.AddRow(n.ID, n.OwnerID, n.Title, n.Body, n.IsPublic, n.CreatedAt, updatedAt)
}

