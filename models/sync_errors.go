package models

import "errors"

// Classification of a failed sync pass, returned (wrapped) by [SyncResult.Err].
var (
	// ErrNoOwnerID is returned when the pass could not resolve an owner id.
	// No I/O was attempted.
	ErrNoOwnerID = errors.New("no owner id")

	// ErrDualFetchFailure is returned when both replicas failed to load.
	ErrDualFetchFailure = errors.New("both replica fetches failed")

	// ErrPartialFetchFailure is returned when exactly one replica failed to
	// load. The pass stops there instead of treating the failed side as empty.
	ErrPartialFetchFailure = errors.New("one replica fetch failed")

	// ErrApplyFailure is returned when one or more plan actions failed.
	// The remaining actions were still applied.
	ErrApplyFailure = errors.New("sync actions failed")
)
