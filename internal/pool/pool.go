// Package pool runs independent tasks on a bounded set of goroutines.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Each runs fn for every index in [0, n) with at most limit tasks in
// flight. The first error cancels the context passed to the remaining
// tasks and is returned. Nothing is allocated per index.
func Each(parent context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	if limit <= 0 {
		limit = DefaultWorkers()
	}

	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// parent may be cancelled after the last task already finished
	return parent.Err()
}

// Map is Each collecting one result per index, in index order.
func Map[T any](parent context.Context, limit, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	err := Each(parent, limit, n, func(ctx context.Context, i int) error {
		v, err := fn(ctx, i)
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
