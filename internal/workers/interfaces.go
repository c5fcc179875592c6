// Package workers provides abstractions for running background work in the
// client: long-lived [Worker]s grouped in [Workers], and a bounded [Pool]
// used to apply the actions of one sync pass concurrently.
package workers

import "context"

// Worker is a long-lived client job such as the periodic sync trigger.
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
