// Package worker replays move scripts in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/oolong/internal/config"
	"github.com/lgbarn/oolong/internal/replay"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script *replay.Script
	Index  int // Position in the input, used to restore order
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index   int
	Name    string
	Report  *replay.Report // nil if Error is set or the script was skipped
	Error   error
	Skipped bool // Not replayed because the run was stopped
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that replays scripts with cfg.
func ReplayFunc(cfg *config.ReplayConfig) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		report, err := replay.Replay(item.Script, cfg)
		return ProcessResult{Index: item.Index, Name: item.Script.Name, Report: report, Error: err}
	}
}

// Pool runs a fixed number of goroutines over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	stopWhen    func(ProcessResult) bool
	wg          sync.WaitGroup
	stopFlag    int32
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

// WithStopWhen stops the pool as soon as a worker produces a result for
// which stop returns true. Items not yet started are then skipped.
func WithStopWhen(stop func(ProcessResult) bool) PoolOption {
	return func(p *Pool) {
		p.stopWhen = stop
	}
}

// NewPool creates a pool. Without options it has one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
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
			continue // drain
		}
		res := p.processFunc(item)
		if p.stopWhen != nil && p.stopWhen(res) {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip items not yet started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll replays scripts on numWorkers goroutines and returns one result
// per script in input order. Each script gets its own board. With
// cfg.StopOnError set, the first script that stops early on a rejected move
// stops the run; scripts not yet started come back Skipped.
func ReplayAll(scripts []*replay.Script, cfg *config.ReplayConfig, numWorkers int) []ProcessResult {
	opts := []PoolOption{WithWorkers(numWorkers), WithBufferSize(len(scripts))}
	if cfg != nil && cfg.StopOnError {
		opts = append(opts, WithStopWhen(stoppedEarly))
	}
	pool := NewPool(ReplayFunc(cfg), opts...)
	pool.Start()

	go func() {
		for i, s := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(scripts))
	done := make([]bool, len(scripts))
	for r := range pool.Results() {
		results[r.Index] = r
		done[r.Index] = true
	}
	for i, s := range scripts {
		if !done[i] {
			results[i] = ProcessResult{Index: i, Name: s.Name, Skipped: true}
		}
	}
	return results
}

// stoppedEarly reports whether a script ended before its last move.
func stoppedEarly(res ProcessResult) bool {
	return res.Report != nil && res.Report.Stopped
}
