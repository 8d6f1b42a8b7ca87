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

package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
)

// coverage runs ParallelFor and checks every index in [0, n) was visited once.
func coverage(t *testing.T, ex Executor, n int) {
	t.Helper()
	hits := make([]int32, n)
	ex.ParallelFor(n, func(start, end int) {
		if start >= end {
			t.Errorf("empty range [%d, %d)", start, end)
		}
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestParallelForCoverage(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 64, 1000} {
		coverage(t, pool, n)
	}
}

func TestParallelForSingleWorker(t *testing.T) {
	pool := New(1)
	defer pool.Close()

	calls := 0
	pool.ParallelFor(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestNewDefaultsToGOMAXPROCS(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	if pool.NumWorkers() < 1 {
		t.Errorf("NumWorkers() = %d, want >= 1", pool.NumWorkers())
	}
	coverage(t, pool, 123)
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(3)
	pool.Close()
	pool.Close()
	coverage(t, pool, 50)
}

func TestConcurrentParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			coverage(t, pool, 257)
		})
	}
	wg.Wait()
}

func TestSerial(t *testing.T) {
	coverage(t, Serial{}, 17)
	if (Serial{}).NumWorkers() != 1 {
		t.Errorf("Serial NumWorkers() != 1")
	}
}
