package simulation

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

type trialJob struct {
	index int
	seed  uint64
}

// RunParallel executes the study on a pool of c.Workers goroutines
// (runtime.NumCPU when zero). Seeds are generated up front exactly as Run
// does, so the report matches the sequential one for the same config.
func RunParallel(ctx context.Context, c Config) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > c.Trials {
		workers = c.Trials
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan trialJob)

	g.Go(func() error {
		defer close(jobs)
		for i, seed := range c.Seeds() {
			select {
			case jobs <- trialJob{index: i, seed: seed}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var mu sync.Mutex
	var total Stats
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var local Stats
			for job := range jobs {
				t, err := RunTrial(c, job.seed)
				if err != nil {
					return fmt.Errorf("trial %d: %w", job.index, err)
				}
				local.Add(t)
				if c.Progress != nil {
					c.Progress(1)
				}
			}
			mu.Lock()
			total.Merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return total.Report(), nil
}
