// Package runner drives the execution side of a generator-keyed cache: each
// cycle it snapshots the pending generators, executes every one exactly once,
// and reports results back. Generators released mid-flight land as benign
// misses in the cache; failed generators stay pending and are attempted again
// on the next cycle.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/unkn0wn-root/gencache"
)

// Source is the slice of the cache the runner needs. Both methods must be
// safe for concurrent use; gencache.Cache satisfies Source.
type Source[G any, D any] interface {
	Pending() []G
	Assign(generator G, data D)
}

// ExecFunc produces the data for one generator. It is called at most once per
// generator per cycle, possibly concurrently with other generators.
type ExecFunc[G any, D any] func(ctx context.Context, generator G) (D, error)

// Options tune the runner. Source and Exec are required.
type Options[G any, D any] struct {
	Source Source[G, D]
	Exec   ExecFunc[G, D]

	Interval       time.Duration   // Run cycle period; 0 => 50ms
	MaxConcurrency int             // parallel executions per cycle; 0 => unbounded
	Logger         gencache.Logger // if nil, NopLogger is used
}

type Runner[G any, D any] struct {
	src      Source[G, D]
	exec     ExecFunc[G, D]
	interval time.Duration
	maxConc  int
	log      gencache.Logger
}

func New[G any, D any](opts Options[G, D]) (*Runner[G, D], error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("runner: source is required")
	}
	if opts.Exec == nil {
		return nil, fmt.Errorf("runner: exec is required")
	}
	r := &Runner[G, D]{
		src:     opts.Source,
		exec:    opts.Exec,
		maxConc: opts.MaxConcurrency,
	}
	r.interval = opts.Interval
	if r.interval <= 0 {
		r.interval = 50 * time.Millisecond
	}
	r.log = opts.Logger
	if r.log == nil {
		r.log = gencache.NopLogger{}
	}
	return r, nil
}

// Cycle performs one processing pass: execute everything pending, assign
// every produced result. Execution errors do not stop the pass; they are
// aggregated into a *CycleError after all generators finished.
func (r *Runner[G, D]) Cycle(ctx context.Context) error {
	pending := r.src.Pending()
	if len(pending) == 0 {
		return nil
	}

	var sem chan struct{}
	if r.maxConc > 0 {
		sem = make(chan struct{}, r.maxConc)
	}

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for _, g := range pending {
		wg.Add(1)
		go func(g G) {
			defer wg.Done()
			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					mu.Lock()
					errs = append(errs, ctx.Err())
					mu.Unlock()
					return
				}
			}
			d, err := r.exec(ctx, g)
			if err != nil {
				// leave the generator pending; next cycle retries
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			r.src.Assign(g, d)
		}(g)
	}
	wg.Wait()

	if len(errs) > 0 {
		return &CycleError{Attempted: len(pending), Errs: errs}
	}
	return nil
}

// Run cycles until ctx is done. Cycle errors are logged and do not stop the
// loop. Returns ctx.Err().
func (r *Runner[G, D]) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Cycle(ctx); err != nil {
				r.log.Warn("cycle finished with failures", gencache.Fields{"err": err})
			}
		}
	}
}
