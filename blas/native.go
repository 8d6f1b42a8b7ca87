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

package blas

import (
	"sync"

	"github.com/ajroetker/hwyblas/hwy/contrib/dot"
	"github.com/ajroetker/hwyblas/hwy/contrib/matmul"
	"github.com/ajroetker/hwyblas/hwy/contrib/matvec"
	"github.com/ajroetker/hwyblas/hwy/contrib/vec"
	"github.com/ajroetker/hwyblas/hwy/contrib/workerpool"
)

// NativeName is the registry name of the pure Go backend.
const NativeName = "native"

// Native is the pure Go backend built on the hwy/contrib kernels. It is
// always registered and is the default.
//
// Large matrix products are split across a worker pool of up to
// maxParallelism goroutines. The pool is started on the first product that
// needs it and lives until Close.
type Native struct {
	maxParallelism int

	// mu is held for reading by every pooled product and for writing by
	// Close, so the pool is never closed under a running product.
	mu     sync.RWMutex
	once   sync.Once
	pool   *workerpool.Pool
	closed bool
}

var (
	_ Backend     = (*Native)(nil)
	_ ScaleToer   = (*Native)(nil)
	_ ScalarAdder = (*Native)(nil)
)

// NewNative returns a native backend using at most maxParallelism
// goroutines per matrix product. Values below 1 mean 1.
func NewNative(maxParallelism int) *Native {
	return &Native{maxParallelism: max(1, maxParallelism)}
}

// Name returns NativeName.
func (b *Native) Name() string { return NativeName }

// MaxParallelism returns the worker limit for matrix products.
func (b *Native) MaxParallelism() int { return b.maxParallelism }

// Close stops the worker pool, if one was started. Later products run
// serially. Close waits for products already running on the pool and may
// be called more than once.
func (b *Native) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.once.Do(func() {})
	if b.pool != nil {
		b.pool.Close()
	}
}

// withExecutor runs fn with the pool when a product of ops multiply-adds is
// large enough to split, and with a serial executor otherwise.
func (b *Native) withExecutor(ops int, fn func(workerpool.Executor)) {
	if b.maxParallelism < 2 || ops < matmul.SmallMatrixThreshold {
		fn(workerpool.Serial{})
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		fn(workerpool.Serial{})
		return
	}
	b.once.Do(func() {
		b.pool = workerpool.New(b.maxParallelism)
	})
	fn(b.pool)
}

func (b *Native) Dscal(n int, alpha float64, x []float64) {
	if n <= 0 {
		return
	}
	vec.Scale64(x[:n], alpha)
}

func (b *Native) DscalTo(n int, alpha float64, x, y []float64) {
	if n <= 0 {
		return
	}
	vec.ScaleTo64(y[:n], x[:n], alpha)
}

func (b *Native) Daxpy(n int, alpha float64, x, y []float64) {
	if n <= 0 {
		return
	}
	vec.Axpy64(alpha, x[:n], y[:n])
}

func (b *Native) Dadd(n int, a, bv, y []float64) {
	if n <= 0 {
		return
	}
	vec.Add64(y[:n], a[:n], bv[:n])
}

func (b *Native) Dsub(n int, a, bv, y []float64) {
	if n <= 0 {
		return
	}
	vec.Sub64(y[:n], a[:n], bv[:n])
}

func (b *Native) DaddScalar(n int, alpha float64, x, y []float64) {
	if n <= 0 {
		return
	}
	vec.AddConst64(y[:n], x[:n], alpha)
}

func (b *Native) Ddot(n int, x, y []float64) float64 {
	if n <= 0 {
		return 0
	}
	return dot.Dot64(x[:n], y[:n])
}

func (b *Native) Dnrm2(n int, x []float64) float64 {
	if n <= 0 {
		return 0
	}
	return dot.L2Norm64(x[:n])
}

func (b *Native) Dgemv(tA Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	matvec.Gemv64(tA.IsTrans(), m, n, alpha, a, lda, x, beta, y)
}

func (b *Native) Dgemm(tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, bm []float64, ldb int, beta float64, c []float64, ldc int) {
	b.withExecutor(m*n*k, func(ex workerpool.Executor) {
		matmul.GemmAuto64(ex, tA.IsTrans(), tB.IsTrans(), m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
	})
}

func (b *Native) Sscal(n int, alpha float32, x []float32) {
	if n <= 0 {
		return
	}
	vec.Scale32(x[:n], alpha)
}

func (b *Native) SscalTo(n int, alpha float32, x, y []float32) {
	if n <= 0 {
		return
	}
	vec.ScaleTo32(y[:n], x[:n], alpha)
}

func (b *Native) Saxpy(n int, alpha float32, x, y []float32) {
	if n <= 0 {
		return
	}
	vec.Axpy32(alpha, x[:n], y[:n])
}

func (b *Native) Sadd(n int, a, bv, y []float32) {
	if n <= 0 {
		return
	}
	vec.Add32(y[:n], a[:n], bv[:n])
}

func (b *Native) Ssub(n int, a, bv, y []float32) {
	if n <= 0 {
		return
	}
	vec.Sub32(y[:n], a[:n], bv[:n])
}

func (b *Native) SaddScalar(n int, alpha float32, x, y []float32) {
	if n <= 0 {
		return
	}
	vec.AddConst32(y[:n], x[:n], alpha)
}

func (b *Native) Sdot(n int, x, y []float32) float32 {
	if n <= 0 {
		return 0
	}
	return dot.Dot32(x[:n], y[:n])
}

func (b *Native) Snrm2(n int, x []float32) float32 {
	if n <= 0 {
		return 0
	}
	return dot.L2Norm32(x[:n])
}

func (b *Native) Sgemv(tA Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32) {
	matvec.Gemv32(tA.IsTrans(), m, n, alpha, a, lda, x, beta, y)
}

func (b *Native) Sgemm(tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, bm []float32, ldb int, beta float32, c []float32, ldc int) {
	b.withExecutor(m*n*k, func(ex workerpool.Executor) {
		matmul.GemmAuto32(ex, tA.IsTrans(), tB.IsTrans(), m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
	})
}
