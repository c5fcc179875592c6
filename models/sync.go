// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Replica names one of the two copies of the note collection.
type Replica string

const (
	// ReplicaLocal is the on-device SQLite replica.
	ReplicaLocal Replica = "local"
	// ReplicaRemote is the server-side replica reached over HTTP.
	ReplicaRemote Replica = "remote"
)

// SyncOperation names the step of a sync pass that failed.
type SyncOperation string

const (
	OpNoOwnerID    SyncOperation = "no-owner-id"
	OpFetchLocal   SyncOperation = "fetch-local"
	OpFetchRemote  SyncOperation = "fetch-remote"
	OpReconcile    SyncOperation = "reconcile"
	OpPush         SyncOperation = "push"
	OpPull         SyncOperation = "pull"
	OpUpdateLocal  SyncOperation = "update-local"
	OpUpdateRemote SyncOperation = "update-remote"
)

// SyncError describes a single failed operation of a sync pass.
// Every failure observed during a pass is reported as its own SyncError.
type SyncError struct {
	// Operation is the failed step.
	Operation SyncOperation `json:"operation"`

	// Source is the replica the failed call was issued against. Empty for
	// failures that happen before any I/O.
	Source Replica `json:"source,omitempty"`

	// RecordID is the id of the affected note, if the operation targets one.
	RecordID string `json:"record_id,omitempty"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Err is the underlying cause, kept for errors.Is / errors.As.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e SyncError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Operation))
	if e.Source != "" {
		b.WriteString(" [")
		b.WriteString(string(e.Source))
		b.WriteString("]")
	}
	if e.RecordID != "" {
		b.WriteString(" note=")
		b.WriteString(e.RecordID)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e SyncError) Unwrap() error {
	return e.Err
}

// SyncState is a state of the per-pass state machine:
//
//	NotStarted → FetchingBoth → {FailedBothFetches | FailedOneFetch | Reconciling} → Applying → Completed
//
// FailedBothFetches, FailedOneFetch and Completed are terminal.
type SyncState int

const (
	SyncNotStarted SyncState = iota
	SyncFetchingBoth
	SyncFailedBothFetches
	SyncFailedOneFetch
	SyncReconciling
	SyncApplying
	SyncCompleted
)

var syncStateNames = map[SyncState]string{
	SyncNotStarted:        "not-started",
	SyncFetchingBoth:      "fetching",
	SyncFailedBothFetches: "failed-both-fetches",
	SyncFailedOneFetch:    "failed-one-fetch",
	SyncReconciling:       "reconciling",
	SyncApplying:          "applying",
	SyncCompleted:         "done",
}

// String returns the label used in logs and progress output.
func (s SyncState) String() string {
	if name, ok := syncStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("sync-state(%d)", int(s))
}

// IsTerminal reports whether no further transition follows s.
func (s SyncState) IsTerminal() bool {
	return s == SyncFailedBothFetches || s == SyncFailedOneFetch || s == SyncCompleted
}

// SyncStats counts the actions of a pass. Planned counts come from the
// reconciliation plan, Failed counts from the error list.
type SyncStats struct {
	Pushed        int `json:"pushed"`
	Pulled        int `json:"pulled"`
	UpdatedLocal  int `json:"updated_local"`
	UpdatedRemote int `json:"updated_remote"`
	Failed        int `json:"failed"`
}

// Total returns the number of planned actions.
func (s SyncStats) Total() int {
	return s.Pushed + s.Pulled + s.UpdatedLocal + s.UpdatedRemote
}

// SyncResult is the outcome of one sync pass: Success when Errors is empty,
// Failure otherwise. Partial success is represented by a Failure whose Errors
// list only the actions that did not apply.
type SyncResult struct {
	OwnerID string      `json:"owner_id"`
	State   SyncState   `json:"state"`
	Errors  []SyncError `json:"errors,omitempty"`
	Stats   SyncStats   `json:"stats"`
}

// IsSuccess reports whether the pass finished without a single error.
func (r SyncResult) IsSuccess() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a successful pass. Otherwise it returns an error that
// matches, via errors.Is, both the classification sentinel (ErrNoOwnerID,
// ErrDualFetchFailure, ErrPartialFetchFailure or ErrApplyFailure) and every
// underlying cause carried by the individual SyncErrors.
func (r SyncResult) Err() error {
	if r.IsSuccess() {
		return nil
	}

	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}

	return fmt.Errorf("%w: %w", r.classify(), errors.Join(errs...))
}

func (r SyncResult) classify() error {
	switch {
	case r.State == SyncFailedBothFetches:
		return ErrDualFetchFailure
	case r.State == SyncFailedOneFetch:
		return ErrPartialFetchFailure
	case len(r.Errors) > 0 && r.Errors[0].Operation == OpNoOwnerID:
		return ErrNoOwnerID
	default:
		return ErrApplyFailure
	}
}

// NotePair is a diverged pair: the same note id present in both replicas
// with different content. Both versions are kept.
type NotePair struct {
	Local  Note `json:"local"`
	Remote Note `json:"remote"`
}

// SyncPlan is the output of reconciliation. The three categories never
// share a note id and together cover every id seen in either replica.
type SyncPlan struct {
	// Push holds notes present only in the local replica.
	Push []Note `json:"push,omitempty"`

	// Pull holds notes present only in the remote replica.
	Pull []Note `json:"pull,omitempty"`

	// Conflicts holds diverged pairs.
	Conflicts []NotePair `json:"conflicts,omitempty"`
}

// IsEmpty reports whether the replicas are already converged.
func (p SyncPlan) IsEmpty() bool {
	return len(p.Push) == 0 && len(p.Pull) == 0 && len(p.Conflicts) == 0
}

// Summary returns the category sizes of the plan.
func (p SyncPlan) Summary() PlanSummary {
	return PlanSummary{Push: len(p.Push), Pull: len(p.Pull), Conflicts: len(p.Conflicts)}
}

// PlanSummary is the size of each plan category, reported in progress events.
type PlanSummary struct {
	Push      int `json:"push"`
	Pull      int `json:"pull"`
	Conflicts int `json:"conflicts"`
}

// SyncActionKind is the concrete write a plan entry turns into.
type SyncActionKind string

const (
	// ActionPush creates a local-only note in the remote replica.
	ActionPush SyncActionKind = "push"
	// ActionPull creates a remote-only note in the local replica.
	ActionPull SyncActionKind = "pull"
	// ActionUpdateLocal overwrites the local note with the remote values.
	ActionUpdateLocal SyncActionKind = "update-local"
	// ActionUpdateRemote overwrites the remote note with the local values.
	ActionUpdateRemote SyncActionKind = "update-remote"
)

// Target returns the replica the action writes to.
func (k SyncActionKind) Target() Replica {
	switch k {
	case ActionPush, ActionUpdateRemote:
		return ReplicaRemote
	default:
		return ReplicaLocal
	}
}

// Operation returns the SyncOperation reported when the action fails.
func (k SyncActionKind) Operation() SyncOperation {
	return SyncOperation(k)
}

// SyncAction is one write to apply. Note holds the values to store in the
// target replica.
type SyncAction struct {
	Kind SyncActionKind `json:"kind"`
	Note Note           `json:"note"`
}

// SyncEvent is a phase transition of a sync pass. Plan is set once the plan
// is known; Result is set on the terminal event only.
type SyncEvent struct {
	State  SyncState    `json:"state"`
	Plan   *PlanSummary `json:"plan,omitempty"`
	Result *SyncResult  `json:"result,omitempty"`
}
