package tui

import "github.com/MKhiriev/go-note-sync/models"

// syncEventMsg carries one state transition of the running pass.
type syncEventMsg struct {
	event models.SyncEvent
}

// syncStreamClosedMsg is sent once the pass stops yielding events.
type syncStreamClosedMsg struct{}
