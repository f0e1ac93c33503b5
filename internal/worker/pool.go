// Package worker provides a worker pool for analysing independent positions
// in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one position to analyse: a FEN and an optional line of UCI
// moves to play from it first.
type WorkItem struct {
	Index  int      // Original index for ordering results
	Source string   // Where the item came from, e.g. "positions.txt:12"
	FEN    string   // Starting position
	Moves  []string // UCI moves to play before analysing
}

// ProcessResult is the outcome of analysing a WorkItem.
type ProcessResult struct {
	Index  int
	Item   WorkItem
	Report interface{} // Analysis payload; typed by consumer
	Error  error
}

// ProcessFunc analyses a single work item. It is called concurrently and
// must not share mutable state between calls.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of
// goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool // Set for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. The defaults are one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		result := p.processFunc(item)
		result.Index = item.Index
		result.Item = item
		p.resultChan <- result
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any items not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run processes every item and returns the results in item order. With
// failFast set, the pool stops at the first error and results for items
// that were skipped are left zero (their Item.FEN is empty).
func Run(items []WorkItem, processFunc ProcessFunc, failFast bool, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(items))
	for result := range pool.Results() {
		if result.Error != nil && failFast {
			pool.Stop()
		}
		results[result.Index] = result
	}
	return results
}
