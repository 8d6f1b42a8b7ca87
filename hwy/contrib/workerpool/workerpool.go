// Copyright 2025 hwyblas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent pool of goroutines for
// data-parallel loops.
//
// Spawning goroutines per kernel call costs more than a small matmul, so
// callers create one pool up front and reuse it:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(n, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        ...
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Executor runs a range-partitioned loop body in parallel.
type Executor interface {
	// ParallelFor calls fn on disjoint [start, end) ranges covering [0, n)
	// and returns after every call has finished.
	ParallelFor(n int, fn func(start, end int))

	// NumWorkers reports the maximum number of ranges run concurrently.
	NumWorkers() int
}

type task struct {
	fn         func(start, end int)
	start, end int
	wg         *sync.WaitGroup
}

// Pool is an Executor backed by a fixed set of long-lived goroutines.
// ParallelFor may be called from multiple goroutines. Close must not race
// with ParallelFor.
type Pool struct {
	numWorkers int
	tasks      chan task
	closed     atomic.Bool
	closeOnce  sync.Once
}

// New starts a pool with numWorkers goroutines. numWorkers <= 0 means
// runtime.GOMAXPROCS(0). A pool of one worker runs every loop inline.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{numWorkers: numWorkers}
	if numWorkers > 1 {
		p.tasks = make(chan task, numWorkers)
		for range numWorkers {
			go p.worker()
		}
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn(t.start, t.end)
		t.wg.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges of
// near-equal size. The calling goroutine runs the last range itself.
// After Close, the loop runs inline on the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.tasks == nil || p.closed.Load() || n == 1 {
		fn(0, n)
		return
	}

	chunks := min(p.numWorkers, n)
	size := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	start := 0
	for ; start+size < n; start += size {
		wg.Add(1)
		p.tasks <- task{fn: fn, start: start, end: start + size, wg: &wg}
	}
	fn(start, n)
	wg.Wait()
}

// Close stops the worker goroutines. It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		if p.tasks != nil {
			close(p.tasks)
		}
	})
}

// Serial is an Executor that runs every loop on the calling goroutine.
type Serial struct{}

// ParallelFor calls fn(0, n) when n > 0.
func (Serial) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

// NumWorkers returns 1.
func (Serial) NumWorkers() int { return 1 }
