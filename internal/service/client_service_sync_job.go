package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientSyncJob struct {
	syncService     ClientSyncService
	defaultInterval time.Duration
	onResult        func(models.SyncResult)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// pass serializes passes for the same owner.
	pass sync.Mutex

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Run on a
// ticker and hands every result to onResult (which may be nil). The job is
// idle until Start or Run is called.
func NewClientSyncJob(syncService ClientSyncService, cfg config.ClientWorkers, onResult func(models.SyncResult), log *logger.Logger) ClientSyncJob {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	return &clientSyncJob{
		syncService:     syncService,
		defaultInterval: interval,
		onResult:        onResult,
		logger:          log,
	}
}

// Start implements ClientSyncJob. It stops any previously running loop, then
// launches a background goroutine that runs a pass right away and then every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.defaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.logger.Info().Str("func", "clientSyncJob.Start").Dur("interval", interval).Msg("sync job started")

		j.tick(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				j.logger.Info().Str("func", "clientSyncJob.Start").Msg("sync job stopped")
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	j.pass.Lock()
	defer j.pass.Unlock()

	if ctx.Err() != nil {
		return
	}

	result := j.syncService.Run(ctx)
	if j.onResult != nil {
		j.onResult(result)
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements ClientSyncJob.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Start(ctx, 0)
	<-ctx.Done()
	j.Stop()
}
