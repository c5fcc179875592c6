// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

func newTestNoteService(repo store.LocalNoteRepository, now time.Time) *clientNoteService {
	svc := NewClientNoteService(repo, logger.Nop()).(*clientNoteService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestClientNoteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	now := time.Date(2026, 5, 1, 8, 0, 0, 123456789, time.FixedZone("X", 3600))

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	n, err := newTestNoteService(repo, now).Add(context.Background(), testOwner, "title", "body", true)

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, testOwner, n.OwnerID)
	assert.True(t, n.IsPublic)
	assert.Nil(t, n.UpdatedAt)
	assert.Equal(t, models.NormalizeTime(now), n.CreatedAt)
	assert.Equal(t, time.UTC, n.CreatedAt.Location())
}

func TestClientNoteService_Add_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := newTestNoteService(mock.NewMockLocalNoteRepository(ctrl), time.Now()).
		Add(context.Background(), "", "t", "b", false)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientNoteService_Add_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrNoteAlreadyExists)

	_, err := newTestNoteService(repo, time.Now()).Add(context.Background(), testOwner, "t", "b", false)
	assert.ErrorIs(t, err, store.ErrNoteAlreadyExists)
}

func TestClientNoteService_TitleLimit(t *testing.T) {
	long := strings.Repeat("ж", validators.MaxTitleLength+1)
	limit := strings.Repeat("ж", validators.MaxTitleLength)

	t.Run("add rejects long title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockLocalNoteRepository(ctrl)

		_, err := newTestNoteService(repo, time.Now()).Add(context.Background(), testOwner, long, "b", false)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrTitleTooLong)
	})

	t.Run("add accepts title at the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockLocalNoteRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		n, err := newTestNoteService(repo, time.Now()).Add(context.Background(), testOwner, limit, "b", false)
		require.NoError(t, err)
		assert.Equal(t, limit, n.Title)
	})

	t.Run("edit rejects long title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockLocalNoteRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(note("n1", "x"), nil)

		_, err := newTestNoteService(repo, time.Now()).
			Edit(context.Background(), testOwner, "n1", models.NoteEdit{Title: &long})
		assert.ErrorIs(t, err, validators.ErrTitleTooLong)
	})
}

func TestClientNoteService_LongTitleNeverReachesSync(t *testing.T) {
	local := newMemGateway()
	remote := newMemGateway()
	server := NewNoteValidationService().Wrap(NewNoteService(remote, logger.Nop()))
	svc := NewClientNoteService(local, logger.Nop())
	ctx := ownerCtx(testOwner)

	_, err := svc.Add(ctx, testOwner, strings.Repeat("x", validators.MaxTitleLength+1), "b", false)
	require.ErrorIs(t, err, validators.ErrTitleTooLong)
	_, err = svc.Add(ctx, testOwner, "short", "b", false)
	require.NoError(t, err)

	var res models.SyncResult
	for range 2 {
		res = newTestSyncService(local, server, nil).RunForOwner(ctx, testOwner)
		require.True(t, res.IsSuccess(), "%v", res.Errors)
	}
	require.True(t, res.IsSuccess(), "%v", res.Errors)
	assert.Equal(t, local.snapshot(), remote.snapshot())
}

func TestClientNoteService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	repo.EXPECT().FetchAll(gomock.Any(), testOwner).Return([]models.Note{note("n1", "x")}, nil)

	notes, err := newTestNoteService(repo, time.Now()).List(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestClientNoteService_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	now := baseTime.Add(time.Hour)
	title := "new title"

	repo.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(note("n1", "old"), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n models.Note) error {
		assert.Equal(t, "new title", n.Title)
		assert.Equal(t, "body of n1", n.Body)
		return nil
	})

	n, err := newTestNoteService(repo, now).Edit(context.Background(), testOwner, "n1", models.NoteEdit{Title: &title})

	require.NoError(t, err)
	require.NotNil(t, n.UpdatedAt)
	assert.Equal(t, now, *n.UpdatedAt)
	assert.Equal(t, baseTime, n.CreatedAt)
}

func TestClientNoteService_Edit_Errors(t *testing.T) {
	title := "t"

	t.Run("nothing to edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := newTestNoteService(mock.NewMockLocalNoteRepository(ctrl), time.Now()).
			Edit(context.Background(), testOwner, "n1", models.NoteEdit{})
		assert.ErrorIs(t, err, ErrNothingToEdit)
	})

	t.Run("unknown note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockLocalNoteRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), testOwner, "missing").Return(models.Note{}, store.ErrNoteNotFound)

		_, err := newTestNoteService(repo, time.Now()).
			Edit(context.Background(), testOwner, "missing", models.NoteEdit{Title: &title})
		assert.ErrorIs(t, err, store.ErrNoteNotFound)
	})

	t.Run("update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockLocalNoteRepository(ctrl)
		errDisk := errors.New("disk full")
		repo.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(note("n1", "x"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errDisk)

		_, err := newTestNoteService(repo, time.Now()).
			Edit(context.Background(), testOwner, "n1", models.NoteEdit{Title: &title})
		assert.ErrorIs(t, err, errDisk)
	})
}

func TestClientNoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalNoteRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), testOwner, "n1").Return(note("n1", "x"), nil)
	repo.EXPECT().Get(gomock.Any(), testOwner, "missing").Return(models.Note{}, store.ErrNoteNotFound)

	svc := newTestNoteService(repo, time.Now())

	got, err := svc.Get(context.Background(), testOwner, "n1")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Title)

	_, err = svc.Get(context.Background(), testOwner, "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = svc.Get(context.Background(), "", "n1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
