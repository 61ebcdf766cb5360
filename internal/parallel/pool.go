// Package parallel provides the worker pool cmd/prove's `prove race`
// subcommand uses to run every heuristic (§4.G) as an independent,
// disjoint-store prover instance and report whichever terminates first
// (§5: "parallelise across heuristics by running independent prover
// instances on disjoint stores"). It carries no prover-specific types of
// its own — Race in race.go runs generic named tasks on a WorkerPool, and
// cmd/prove/race.go is what ties Race to pkg/prover.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// WorkerPool runs a fixed number of worker goroutines draining a shared
// task channel. Race sizes the pool to exactly the number of heuristic
// racers it starts, so there is no queueing and nothing to scale: every
// racer gets its own worker for the lifetime of the race.
type WorkerPool struct {
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool of workers goroutines. If workers is 0 or
// negative, it defaults to the number of CPU cores.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		taskChan:     make(chan func(), workers),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker drains taskChan until it is closed, recovering a panicking task
// so one bad heuristic racer can't take down the others.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for task := range wp.taskChan {
		func() {
			defer func() {
				recover()
			}()
			task()
		}()
	}
}

// Submit queues task on the pool's task channel, which buffers as many
// tasks as there are workers; it blocks only when that buffer is full.
// It returns ErrPoolShutdown if the pool has already been shut down, and
// ctx.Err() if ctx is cancelled before the task can be queued.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown closes the task channel and waits for every worker to drain
// it. It is safe to call more than once; only the first call acts.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		close(wp.taskChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")
