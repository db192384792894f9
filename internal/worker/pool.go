// Package worker runs record replays on a bounded pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/replay"
)

// Job is one record to replay.
type Job struct {
	Record replay.Record
	Index  int // position in the input stream
}

// Result is the outcome of one Job. Exactly one of History and Puzzle is
// set on success.
type Result struct {
	Record  replay.Record
	Index   int
	History *replay.History
	Puzzle  *replay.Puzzle
	Matched bool // passed the configured filters
	Err     error
}

// ProcessFunc turns a job into a result. It runs on a worker goroutine.
type ProcessFunc func(job Job) Result

// Pool fans jobs out to workers and collects their results on one channel.
type Pool struct {
	workers int
	buffer  int
	jobs    chan Job
	results chan Result
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless
// overridden by opts.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.buffer)
	p.results = make(chan Result, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.IsStopped() {
			continue
		}
		p.results <- p.process(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It reports false when the
// buffer is full or the pool has been stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued jobs instead of processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers and then closes the
// results channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished jobs, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.workers
}
