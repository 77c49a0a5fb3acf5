// Package parallel provides a fixed-size worker pool for independent tasks.
//
// The pool is constructed explicitly and shut down with Close; there is no
// process-wide instance. The network engine uses it to apply accumulated
// weight changes of all layers concurrently and waits on Run as a barrier
// before the next forward pass.
package parallel

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned when submitting to a closed pool.
var ErrClosed = errors.New("parallel: pool is closed")

// Task is a unit of work executed by a pool worker.
type Task func() error

// Config controls the worker pool.
type Config struct {
	Workers   int // Number of worker goroutines (fixed for the pool lifetime).
	QueueSize int // Pending task buffer; 0 means one slot per worker.
}

// DefaultConfig returns a small constant worker count independent of input size.
func DefaultConfig() Config {
	return Config{
		Workers:   3,
		QueueSize: 0,
	}
}

// Future is the pending result of a submitted task.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task has finished and returns its error.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}

type job struct {
	task   Task
	future *Future
}

// Pool runs tasks on a fixed number of worker goroutines.
type Pool struct {
	workers int
	jobs    chan job

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool starts cfg.Workers workers.
//
// Zero-valued fields fall back to DefaultConfig.
func NewPool(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.Workers
	}

	p := &Pool{
		workers: cfg.Workers,
		jobs:    make(chan job, cfg.QueueSize),
	}
	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.future.err = j.task()
		close(j.future.done)
	}
}

// Workers returns the fixed worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Submit queues task for execution and returns its Future.
//
// Submitting to a closed pool returns a Future that resolves to ErrClosed.
func (p *Pool) Submit(task Task) *Future {
	f := &Future{done: make(chan struct{})}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		f.err = ErrClosed
		close(f.done)
		return f
	}
	p.jobs <- job{task: task, future: f}
	return f
}

// Run submits every task and blocks until all of them have completed.
//
// Run returns the first task error. It still waits for every submitted task,
// so no task outlives the call. If ctx is cancelled before all tasks are
// queued, the remaining tasks are not submitted and ctx.Err() is returned.
func (p *Pool) Run(ctx context.Context, tasks []Task) error {
	g, gctx := errgroup.WithContext(ctx)
	futures := make([]*Future, 0, len(tasks))

	for _, task := range tasks {
		if err := gctx.Err(); err != nil {
			break
		}
		futures = append(futures, p.Submit(task))
	}

	for _, f := range futures {
		g.Go(f.Wait)
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if len(futures) < len(tasks) {
		return ctx.Err()
	}
	return nil
}

// Close stops accepting tasks and waits for queued tasks to finish.
//
// Close is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
