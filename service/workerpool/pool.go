package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work submitted to a Pool
type Task func(ctx context.Context) error

// Pool runs batches of tasks with a bound on how many are in flight
type Pool struct {
	limit int
}

// New returns a pool that runs at most limit tasks at once. A limit below
// one means no bound.
func New(limit int) *Pool {
	return &Pool{limit: limit}
}

// Limit returns the pool's concurrency bound
func (p *Pool) Limit() int {
	return p.limit
}

// Run submits every task and blocks until all of them returned. The
// returned slice holds each task's error at the task's index. A failing
// task does not cancel the others.
func (p *Pool) Run(ctx context.Context, tasks []Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}

	var g errgroup.Group
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// FirstError returns the first non-nil error in errs
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
