package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// syncPlanner is the concrete implementation of SyncPlanner.
// It performs a purely in-memory comparison of the two snapshots; no storage
// layer or logger is required because the operation has no side effects.
type syncPlanner struct{}

// NewSyncPlanner constructs a SyncPlanner ready for use.
func NewSyncPlanner() SyncPlanner {
	return &syncPlanner{}
}

// BuildSyncPlan implements SyncPlanner.
//
// It builds two O(1) lookup indexes keyed by note id, then makes two linear
// passes:
//
//   - Pass 1 (over local): ids missing remotely go to Push, ids present on
//     both sides with different content go to Conflicts.
//   - Pass 2 (over remote): ids missing locally go to Pull.
//
// Push and Conflicts keep the order of local, Pull keeps the order of
// remote. When an id repeats inside one input the last entry wins and the
// first occurrence fixes the position.
//
// ctx cancellation is checked at the start of each iteration so that callers
// can abort early on large collections.
func (s *syncPlanner) BuildSyncPlan(ctx context.Context, local, remote []models.Note) (models.SyncPlan, error) {
	var plan models.SyncPlan

	localIndex := indexNotes(local)
	remoteIndex := indexNotes(remote)

	// ── Pass 1: iterate over local records ──────────────────────────────────
	seen := make(map[string]struct{}, len(localIndex))
	for _, ln := range local {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}
		if _, dup := seen[ln.ID]; dup {
			continue
		}
		seen[ln.ID] = struct{}{}

		ln = localIndex[ln.ID]
		rn, existsRemotely := remoteIndex[ln.ID]

		switch {
		case !existsRemotely:
			plan.Push = append(plan.Push, ln)
		case !ln.Equal(rn):
			plan.Conflicts = append(plan.Conflicts, models.NotePair{Local: ln, Remote: rn})
		}
		// Equal content on both sides: already converged, no action.
	}

	// ── Pass 2: find remote-only records ────────────────────────────────────
	seen = make(map[string]struct{}, len(remoteIndex))
	for _, rn := range remote {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}
		if _, dup := seen[rn.ID]; dup {
			continue
		}
		seen[rn.ID] = struct{}{}

		if _, existsLocally := localIndex[rn.ID]; !existsLocally {
			plan.Pull = append(plan.Pull, remoteIndex[rn.ID])
		}
	}

	return plan, nil
}

// ResolveConflict implements SyncPlanner.
//
// The remote version wins only when it was modified strictly later than the
// local one; equal timestamps, including two never-modified notes, keep the
// local version. The winner's synchronized fields are copied onto the loser,
// whose id and owner stay untouched.
func (s *syncPlanner) ResolveConflict(pair models.NotePair) models.SyncAction {
	if pair.Remote.ModifiedAt().After(pair.Local.ModifiedAt()) {
		return models.SyncAction{
			Kind: models.ActionUpdateLocal,
			Note: pair.Local.CopyContentFrom(pair.Remote),
		}
	}

	return models.SyncAction{
		Kind: models.ActionUpdateRemote,
		Note: pair.Remote.CopyContentFrom(pair.Local),
	}
}

// PlanActions implements SyncPlanner.
func (s *syncPlanner) PlanActions(plan models.SyncPlan) []models.SyncAction {
	actions := make([]models.SyncAction, 0, len(plan.Push)+len(plan.Pull)+len(plan.Conflicts))

	for _, n := range plan.Push {
		actions = append(actions, models.SyncAction{Kind: models.ActionPush, Note: n})
	}
	for _, n := range plan.Pull {
		actions = append(actions, models.SyncAction{Kind: models.ActionPull, Note: n})
	}
	for _, pair := range plan.Conflicts {
		actions = append(actions, s.ResolveConflict(pair))
	}

	return actions
}

func indexNotes(notes []models.Note) map[string]models.Note {
	idx := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		idx[n.ID] = n
	}
	return idx
}
