package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

var testCreatedAt = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func testNote(id string) models.Note {
	return models.Note{ID: id, OwnerID: testOwner, Title: "title " + id, Body: "body", CreatedAt: testCreatedAt}
}

// ownerFromContext asserts that the auth middleware put testOwner in ctx.
func ownerFromContext(t *testing.T) func(ctx context.Context) {
	return func(ctx context.Context) {
		ownerID, ok := utils.GetOwnerIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, testOwner, ownerID)
	}
}

func TestFetchNotes(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()
	deps.notes.EXPECT().FetchAll(gomock.Any(), testOwner).DoAndReturn(func(ctx context.Context, ownerID string) ([]models.Note, error) {
		ownerFromContext(t)(ctx)
		return []models.Note{testNote("n1"), testNote("n2")}, nil
	})

	rec := serve(t, h.Init(), http.MethodGet, "/api/notes/?owner_id="+testOwner, nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.NotesResponse](t, rec)
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, "n2", resp.Notes[1].ID)
	assert.True(t, resp.Notes[0].CreatedAt.Equal(testCreatedAt))
}

func TestFetchNotes_DefaultsToTokenOwnerAndEmptyList(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()
	deps.notes.EXPECT().FetchAll(gomock.Any(), testOwner).Return(nil, nil)

	rec := serve(t, h.Init(), http.MethodGet, "/api/notes/", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notes":[],"length":0}`, rec.Body.String())
}

func TestFetchNotes_OtherOwner(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()
	deps.notes.EXPECT().FetchAll(gomock.Any(), "owner-2").Return(nil, service.ErrUnauthorizedAccessToDifferentOwner)

	rec := serve(t, h.Init(), http.MethodGet, "/api/notes/?owner_id=owner-2", nil, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateNote(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()

	n := testNote("n1")
	local := time.Date(2026, 2, 1, 11, 0, 0, 123456789, time.FixedZone("X", 3600))
	n.CreatedAt = local

	deps.notes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got models.Note) error {
		assert.Equal(t, "n1", got.ID)
		assert.Equal(t, time.UTC, got.CreatedAt.Location())
		assert.Equal(t, 123456000, got.CreatedAt.Nanosecond())
		return nil
	})

	rec := serve(t, h.Init(), http.MethodPost, "/api/notes/", n, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateNote_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"duplicate", store.ErrNoteAlreadyExists, http.StatusConflict},
		{"invalid", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"retryable", store.ErrRetryable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.expectValidToken()
			deps.notes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tt.serviceErr)

			rec := serve(t, h.Init(), http.MethodPost, "/api/notes/", testNote("n1"), true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateNote(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()

	n := testNote("n1")
	n.ID = ""
	deps.notes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got models.Note) error {
		assert.Equal(t, "n1", got.ID, "id comes from the path")
		return nil
	})

	rec := serve(t, h.Init(), http.MethodPut, "/api/notes/n1", n, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateNote_IDMismatch(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()

	rec := serve(t, h.Init(), http.MethodPut, "/api/notes/n1", testNote("n2"), true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNote_NotFound(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectValidToken()
	deps.notes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrNoteNotFound)

	rec := serve(t, h.Init(), http.MethodPut, "/api/notes/n1", testNote("n1"), true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
