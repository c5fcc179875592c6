package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

// NewClientServices wires the client services. The local replica is the
// SQLite note repository, the remote replica is serverAdapter, and the owner
// of every pass is the one of the stored session. onResult receives the
// results of background passes and may be nil.
func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	workersCfg config.ClientWorkers,
	onResult func(models.SyncResult),
	log *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(localStore.NoteRepository, serverAdapter, localStore.SessionRepository, workersCfg, log)

	return &ClientServices{
		AuthService: NewClientAuthService(localStore.SessionRepository, serverAdapter, log),
		NoteService: NewClientNoteService(localStore.NoteRepository, log),
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, workersCfg, onResult, log),
	}
}
