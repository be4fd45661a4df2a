// Package worker provides a worker pool for counting move subtrees in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one root move to expand. State is owned by the item: it is
// the position after Move, cloned for this worker alone.
type WorkItem struct {
	Index int // Position of Move in the root move list
	Move  chess.Move
	State *engine.GameState
	Depth int
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// ProcessFunc expands a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed set of goroutines over a buffered work channel.
// Once stopped, queued items are discarded and Submit refuses new ones.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	done    chan struct{}

	wg        sync.WaitGroup
	stopOnce  sync.Once
	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool with the given number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with 1 worker and a buffer of 10
// unless overridden.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	p.done = make(chan struct{})
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		if p.IsStopped() {
			continue
		}
		res := p.process(item)
		p.processed.Add(1)
		p.results <- res
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false without queueing once the pool is stopped. Submit must not be
// called after Close.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.work <- item:
		return true
	case <-p.done:
		return false
	}
}

// Stop discards queued work. Items already being expanded still report.
// Stop is safe to call more than once and from any goroutine.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Close ends submission, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one result per expanded item, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Processed returns how many items have been expanded so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}
