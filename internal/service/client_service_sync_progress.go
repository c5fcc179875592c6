package service

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-note-sync/models"
)

// Progress implements ClientSyncService.
//
// The pass starts when iteration starts and runs on the iterating goroutine,
// so events arrive in order and nothing runs once the loop has returned.
// Breaking out of the loop cancels the pass; the remaining actions are then
// reported as cancelled in the result that is never yielded.
func (s *clientSyncService) Progress(ctx context.Context) iter.Seq[models.SyncEvent] {
	return func(yield func(models.SyncEvent) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stopped := false
		s.runCurrentOwner(ctx, func(event models.SyncEvent) {
			if stopped {
				return
			}
			if !yield(event) {
				stopped = true
				cancel()
			}
		})
	}
}
