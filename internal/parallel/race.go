package parallel

import (
	"context"
	"fmt"
	"sync"
)

// RaceResult is one named task's outcome from Race.
type RaceResult struct {
	Name  string
	Value any
	Err   error
}

// Race runs every (name, task) pair in tasks concurrently on a WorkerPool
// sized to len(tasks), returning the first result whose task returns a nil
// error (a "winner") together with the results collected up to that
// point, or every result and an error if none succeeds. Race does not
// cancel the other tasks: its deferred pool Shutdown waits for every
// submitted task to return, so Race itself returns only after the slowest
// task has finished. Tasks receive ctx and stop early only if they honor it.
func Race(ctx context.Context, tasks map[string]func(ctx context.Context) (any, error)) (RaceResult, []RaceResult, error) {
	pool := NewWorkerPool(len(tasks))
	defer pool.Shutdown()

	results := make(chan RaceResult, len(tasks))
	var wg sync.WaitGroup

	for name, task := range tasks {
		name, task := name, task
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			value, err := task(ctx)
			results <- RaceResult{Name: name, Value: value, Err: err}
		})
		if err != nil {
			wg.Done()
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []RaceResult
	for r := range results {
		all = append(all, r)
		if r.Err == nil {
			return r, all, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return RaceResult{}, all, err
	}
	return RaceResult{}, all, fmt.Errorf("no racer succeeded (%d ran)", len(all))
}
