package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	otelScope   = "github.com/MKhiriev/go-note-sync/sync"
	spanSyncRun = "notesync.sync.run"
)

// clientSyncService is the concrete implementation of ClientSyncService.
//
// It holds no per-pass state: both snapshots and the error collector live on
// the stack of a single pass, so concurrent passes for different owners do
// not interfere.
type clientSyncService struct {
	local   NoteGateway
	remote  NoteGateway
	owners  OwnerResolver
	planner SyncPlanner

	pool        *workers.Pool
	callTimeout time.Duration

	tracer           trace.Tracer
	cntPushed        metric.Int64Counter
	cntPulled        metric.Int64Counter
	cntUpdatedLocal  metric.Int64Counter
	cntUpdatedRemote metric.Int64Counter
	cntErrors        metric.Int64Counter

	logger *logger.Logger
}

// NewClientSyncService wires a sync engine between the local and the remote
// replica. owners may be nil when only RunForOwner is used.
func NewClientSyncService(local, remote NoteGateway, owners OwnerResolver, cfg config.ClientWorkers, log *logger.Logger) ClientSyncService {
	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = config.DefaultSyncCallTimeout
	}

	meter := otel.Meter(otelScope)
	mustCounter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			log.Warn().Err(err).Str("counter", name).Msg("failed to create counter, using no-op")
			return noop.Int64Counter{}
		}
		return c
	}

	return &clientSyncService{
		local:       local,
		remote:      remote,
		owners:      owners,
		planner:     NewSyncPlanner(),
		pool:        workers.NewPool(cfg.SyncConcurrency),
		callTimeout: callTimeout,

		tracer:           otel.Tracer(otelScope),
		cntPushed:        mustCounter("notesync.sync.pushed", "Notes created in the remote replica"),
		cntPulled:        mustCounter("notesync.sync.pulled", "Notes created in the local replica"),
		cntUpdatedLocal:  mustCounter("notesync.sync.updated_local", "Local notes overwritten by newer remote versions"),
		cntUpdatedRemote: mustCounter("notesync.sync.updated_remote", "Remote notes overwritten by local versions"),
		cntErrors:        mustCounter("notesync.sync.errors", "Failed sync operations"),

		logger: log,
	}
}

// Run implements ClientSyncService.
func (s *clientSyncService) Run(ctx context.Context) models.SyncResult {
	return s.runCurrentOwner(ctx, nil)
}

// RunForOwner implements ClientSyncService.
func (s *clientSyncService) RunForOwner(ctx context.Context, ownerID string) models.SyncResult {
	return s.run(ctx, func(context.Context) (string, error) { return ownerID, nil }, nil)
}

func (s *clientSyncService) runCurrentOwner(ctx context.Context, emit func(models.SyncEvent)) models.SyncResult {
	return s.run(ctx, s.resolveOwner, emit)
}

func (s *clientSyncService) resolveOwner(ctx context.Context) (string, error) {
	if s.owners == nil {
		return "", nil
	}
	return s.owners.OwnerID(ctx)
}

// run executes one pass and reports every phase transition to emit. emit is
// always called from the calling goroutine.
func (s *clientSyncService) run(
	ctx context.Context,
	resolve func(context.Context) (string, error),
	emit func(models.SyncEvent),
) models.SyncResult {
	ctx, span := s.tracer.Start(ctx, spanSyncRun)
	defer span.End()

	result := models.SyncResult{State: models.SyncNotStarted}

	ownerID, err := resolve(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.run").Msg("failed to resolve owner id")
		result.Errors = []models.SyncError{{
			Operation: models.OpNoOwnerID,
			Message:   fmt.Sprintf("resolve owner id: %v", err),
			Err:       err,
		}}
		return s.finish(ctx, span, result, nil, emit)
	}

	result.OwnerID = ownerID
	span.SetAttributes(attribute.String("sync.owner_id", ownerID))

	if ownerID == "" {
		result.Errors = []models.SyncError{{
			Operation: models.OpNoOwnerID,
			Message:   "no owner id to sync",
			Err:       models.ErrNoOwnerID,
		}}
		return s.finish(ctx, span, result, nil, emit)
	}

	// ── fetch ───────────────────────────────────────────────────────────────
	result.State = models.SyncFetchingBoth
	emitEvent(emit, models.SyncEvent{State: result.State})

	local, remote, fetchErrs := s.fetchBoth(ctx, ownerID)
	switch len(fetchErrs) {
	case 2:
		result.State = models.SyncFailedBothFetches
		result.Errors = fetchErrs
		return s.finish(ctx, span, result, nil, emit)
	case 1:
		result.State = models.SyncFailedOneFetch
		result.Errors = fetchErrs
		return s.finish(ctx, span, result, nil, emit)
	}

	// ── reconcile ───────────────────────────────────────────────────────────
	result.State = models.SyncReconciling
	emitEvent(emit, models.SyncEvent{State: result.State})

	// Planning is pure and always completes; a cancelled pass is reported
	// action by action in the apply phase.
	plan, err := s.planner.BuildSyncPlan(context.WithoutCancel(ctx), local, remote)
	if err != nil {
		result.State = models.SyncCompleted
		result.Errors = []models.SyncError{{
			Operation: models.OpReconcile,
			Message:   err.Error(),
			Err:       err,
		}}
		return s.finish(ctx, span, result, nil, emit)
	}

	actions := s.planner.PlanActions(plan)
	result.Stats = plannedStats(actions)
	summary := plan.Summary()

	s.logger.Debug().
		Str("func", "clientSyncService.run").
		Str("owner_id", ownerID).
		Int("push", summary.Push).
		Int("pull", summary.Pull).
		Int("conflicts", summary.Conflicts).
		Msg("sync plan built")

	// ── apply ───────────────────────────────────────────────────────────────
	result.State = models.SyncApplying
	emitEvent(emit, models.SyncEvent{State: result.State, Plan: &summary})

	result.Errors = s.apply(ctx, actions)
	result.State = models.SyncCompleted

	return s.finish(ctx, span, result, &summary, emit)
}

// fetchBoth loads both replicas concurrently. Each goroutine records its own
// error and returns nil, so one failing fetch never cancels the other.
// Errors come back local first.
func (s *clientSyncService) fetchBoth(ctx context.Context, ownerID string) (local, remote []models.Note, errs []models.SyncError) {
	var (
		g                   errgroup.Group
		localErr, remoteErr error
	)

	g.Go(func() error {
		local, localErr = s.fetch(ctx, s.local, ownerID)
		return nil
	})
	g.Go(func() error {
		remote, remoteErr = s.fetch(ctx, s.remote, ownerID)
		return nil
	})
	_ = g.Wait()

	if localErr != nil {
		s.logger.Err(localErr).Str("func", "clientSyncService.fetchBoth").Str("owner_id", ownerID).Msg("local fetch failed")
		errs = append(errs, models.SyncError{
			Operation: models.OpFetchLocal,
			Source:    models.ReplicaLocal,
			Message:   localErr.Error(),
			Err:       localErr,
		})
	}
	if remoteErr != nil {
		s.logger.Err(remoteErr).Str("func", "clientSyncService.fetchBoth").Str("owner_id", ownerID).Msg("remote fetch failed")
		errs = append(errs, models.SyncError{
			Operation: models.OpFetchRemote,
			Source:    models.ReplicaRemote,
			Message:   remoteErr.Error(),
			Err:       remoteErr,
		})
	}

	return local, remote, errs
}

func (s *clientSyncService) fetch(ctx context.Context, gw NoteGateway, ownerID string) ([]models.Note, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	return gw.FetchAll(callCtx, ownerID)
}

// apply runs every action through the pool and returns the failures in
// action order. Actions that never started because ctx was done are
// reported with the context error.
func (s *clientSyncService) apply(ctx context.Context, actions []models.SyncAction) []models.SyncError {
	collector := newErrorCollector()

	s.pool.Run(ctx, len(actions), func(ctx context.Context, i int) {
		if err := s.applyAction(ctx, actions[i]); err != nil {
			s.logger.Warn().
				Err(err).
				Str("func", "clientSyncService.apply").
				Str("action", string(actions[i].Kind)).
				Str("id", actions[i].Note.ID).
				Msg("sync action failed")
			collector.add(i, actionError(actions[i], err, err.Error()))
		}
	}, func(i int) {
		err := ctx.Err()
		collector.add(i, actionError(actions[i], err, fmt.Sprintf("not applied: %v", err)))
	})

	return collector.sorted()
}

func (s *clientSyncService) applyAction(ctx context.Context, action models.SyncAction) error {
	gw := s.local
	if action.Kind.Target() == models.ReplicaRemote {
		gw = s.remote
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	switch action.Kind {
	case models.ActionPush, models.ActionPull:
		return gw.Create(callCtx, action.Note)
	case models.ActionUpdateLocal, models.ActionUpdateRemote:
		return gw.Update(callCtx, action.Note)
	default:
		return fmt.Errorf("unknown sync action %q", action.Kind)
	}
}

// finish records telemetry, logs the summary and emits the terminal event.
func (s *clientSyncService) finish(
	ctx context.Context,
	span trace.Span,
	result models.SyncResult,
	summary *models.PlanSummary,
	emit func(models.SyncEvent),
) models.SyncResult {
	result.Stats.Failed = len(result.Errors)
	applied := appliedStats(result)

	s.cntPushed.Add(ctx, int64(applied.Pushed))
	s.cntPulled.Add(ctx, int64(applied.Pulled))
	s.cntUpdatedLocal.Add(ctx, int64(applied.UpdatedLocal))
	s.cntUpdatedRemote.Add(ctx, int64(applied.UpdatedRemote))
	s.cntErrors.Add(ctx, int64(result.Stats.Failed))

	span.SetAttributes(
		attribute.String("sync.state", result.State.String()),
		attribute.Int("sync.pushed", applied.Pushed),
		attribute.Int("sync.pulled", applied.Pulled),
		attribute.Int("sync.updated_local", applied.UpdatedLocal),
		attribute.Int("sync.updated_remote", applied.UpdatedRemote),
		attribute.Int("sync.errors", result.Stats.Failed),
	)

	var event *zerolog.Event
	if err := result.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result.State.String())
		event = s.logger.Warn().Err(err)
	} else {
		event = s.logger.Info()
	}
	event.
		Str("func", "clientSyncService.run").
		Str("owner_id", result.OwnerID).
		Str("state", result.State.String()).
		Int("planned", result.Stats.Total()).
		Int("failed", result.Stats.Failed).
		Msg("sync pass finished")

	final := result
	emitEvent(emit, models.SyncEvent{State: result.State, Plan: summary, Result: &final})

	return result
}

func emitEvent(emit func(models.SyncEvent), event models.SyncEvent) {
	if emit != nil {
		emit(event)
	}
}

func actionError(action models.SyncAction, err error, msg string) models.SyncError {
	return models.SyncError{
		Operation: action.Kind.Operation(),
		Source:    action.Kind.Target(),
		RecordID:  action.Note.ID,
		Message:   msg,
		Err:       err,
	}
}

func plannedStats(actions []models.SyncAction) models.SyncStats {
	var stats models.SyncStats
	for _, a := range actions {
		incStat(&stats, a.Kind.Operation(), 1)
	}
	return stats
}

// appliedStats subtracts the failed actions from the planned counts.
func appliedStats(result models.SyncResult) models.SyncStats {
	applied := result.Stats
	for _, e := range result.Errors {
		incStat(&applied, e.Operation, -1)
	}
	return applied
}

func incStat(stats *models.SyncStats, op models.SyncOperation, delta int) {
	switch op {
	case models.OpPush:
		stats.Pushed += delta
	case models.OpPull:
		stats.Pulled += delta
	case models.OpUpdateLocal:
		stats.UpdatedLocal += delta
	case models.OpUpdateRemote:
		stats.UpdatedRemote += delta
	}
}

// errorCollector gathers action failures from the pool goroutines.
type errorCollector struct {
	mu     sync.Mutex
	byStep map[int]models.SyncError
}

func newErrorCollector() *errorCollector {
	return &errorCollector{byStep: make(map[int]models.SyncError)}
}

func (c *errorCollector) add(i int, err models.SyncError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byStep[i] = err
}

// sorted returns the collected errors ordered by action index, or nil when
// nothing failed.
func (c *errorCollector) sorted() []models.SyncError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.byStep) == 0 {
		return nil
	}

	steps := make([]int, 0, len(c.byStep))
	for i := range c.byStep {
		steps = append(steps, i)
	}
	sort.Ints(steps)

	errs := make([]models.SyncError, 0, len(steps))
	for _, i := range steps {
		errs = append(errs, c.byStep[i])
	}
	return errs
}
