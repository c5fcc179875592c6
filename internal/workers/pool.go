package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultPoolSize is used when a pool is created with a non-positive limit.
const DefaultPoolSize = 4

// Pool runs indexed tasks with bounded concurrency.
type Pool struct {
	limit int
}

// NewPool returns a pool that runs at most limit tasks at a time.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultPoolSize
	}
	return &Pool{limit: limit}
}

// Limit returns the maximum number of concurrently running tasks.
func (p *Pool) Limit() int {
	return p.limit
}

// Run calls task for every index in [0, n) and blocks until all started
// tasks have returned. Once ctx is done no further task is started: skipped
// is called instead for every index that did not get to run, so each index
// reaches exactly one of the two callbacks.
//
// A task never cancels its siblings.
func (p *Pool) Run(ctx context.Context, n int, task func(ctx context.Context, i int), skipped func(i int)) {
	var g errgroup.Group
	g.SetLimit(p.limit)

	for i := range n {
		if ctx.Err() != nil {
			for j := i; j < n; j++ {
				skipped(j)
			}
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				skipped(i)
				return nil
			}
			task(ctx, i)
			return nil
		})
	}

	_ = g.Wait()
}
