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

package matmul

import "github.com/ajroetker/hwyblas/hwy/contrib/workerpool"

// Size-based dispatch thresholds.
// Tuned empirically - adjust based on benchmarks on target hardware.
const (
	// Below this total ops count, the serial kernel is faster (less overhead).
	SmallMatrixThreshold = 64 * 64 * 64 // 262144 ops

	// MinColumnsPerStrip is the smallest column strip handed to one worker.
	// Narrower strips spend more time in dispatch than in the kernel.
	MinColumnsPerStrip = 8
)

// GemmAuto64 computes C = alpha*op(A)*op(B) + beta*C, choosing between the
// serial kernel and column-strip parallelism on pool.
//
// Algorithm selection:
//
//  1. pool == nil or a single worker: serial Gemm64
//  2. Small products (M*N*K < 64^3): serial Gemm64, lowest overhead
//  3. Fewer than two strips of MinColumnsPerStrip columns: serial Gemm64
//  4. Otherwise ParallelGemm64
//
// Results are identical to Gemm64: each column of C is computed by exactly
// one worker using the same kernel.
func GemmAuto64(pool workerpool.Executor, transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if pool == nil || pool.NumWorkers() < 2 || m*n*k < SmallMatrixThreshold || n < 2*MinColumnsPerStrip {
		Gemm64(transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	ParallelGemm64(pool, transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// ParallelGemm64 computes C = alpha*op(A)*op(B) + beta*C with the columns
// of C split into strips across pool. Workers write disjoint columns of C
// and only read A and B.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	matmul.ParallelGemm64(pool, false, false, m, n, k, 1, a, m, b, k, 0, c, m)
func ParallelGemm64(pool workerpool.Executor, transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	checkGemm(transA, transB, m, n, k, a, lda, b, ldb, c, ldc)
	parallelGemm(pool, kernels64, transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// GemmAuto32 is the float32 form of GemmAuto64, with the same selection
// rules.
func GemmAuto32(pool workerpool.Executor, transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	if pool == nil || pool.NumWorkers() < 2 || m*n*k < SmallMatrixThreshold || n < 2*MinColumnsPerStrip {
		Gemm32(transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	ParallelGemm32(pool, transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// ParallelGemm32 is the float32 form of ParallelGemm64.
func ParallelGemm32(pool workerpool.Executor, transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	checkGemm(transA, transB, m, n, k, a, lda, b, ldb, c, ldc)
	parallelGemm(pool, kernels32, transA, transB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func parallelGemm[T float](pool workerpool.Executor, kern kernels[T], transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	if m == 0 || n == 0 {
		return
	}
	numStrips := (n + MinColumnsPerStrip - 1) / MinColumnsPerStrip
	pool.ParallelFor(numStrips, func(s0, s1 int) {
		j0 := s0 * MinColumnsPerStrip
		j1 := min(s1*MinColumnsPerStrip, n)
		gemmCols(kern, transA, transB, m, k, alpha, a, lda, b, ldb, beta, c, ldc, j0, j1)
	})
}
