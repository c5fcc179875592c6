// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

// View is the output side of the client. [tui.TUI] implements it.
type View interface {
	PrintNotes(notes []models.Note)
	PrintNote(n models.Note)
	PrintBuildInfo(info models.AppBuildInfo, serverVersion string)
	PrintSyncResult(r models.SyncResult)
	Success(format string, args ...any)

	// CopyNote puts n on the system clipboard.
	CopyNote(n models.Note) error

	// Sync runs pass, renders its progress and returns its result.
	Sync(ctx context.Context, pass tui.SyncPass) (models.SyncResult, error)
}

// VersionSource reports the version of the note server.
type VersionSource interface {
	ServerVersion(ctx context.Context) (string, error)
}
