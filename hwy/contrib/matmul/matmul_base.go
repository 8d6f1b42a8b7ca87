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

// Package matmul provides the column-major general matrix-matrix product in
// float64 (Gemm64 and friends) and float32 (Gemm32 and friends).
//
// Both widths follow the CBLAS column-major convention. op(A) is m x k, op(B)
// is k x n and C is m x n; element (i, j) of a stored matrix with leading
// dimension ld lives at index i + j*ld.
//
// Work is organised per column of C, so any contiguous range of columns
// can be computed independently. GemmAuto64 and GemmAuto32 use that to spread large
// products over a workerpool.Executor.
package matmul

import (
	"github.com/ajroetker/hwyblas/hwy/contrib/dot"
	"github.com/ajroetker/hwyblas/hwy/contrib/vec"
)

type float interface{ ~float32 | ~float64 }

// kernels binds the level-1 routines one element width uses.
type kernels[T float] struct {
	scale  func(x []T, alpha T)
	axpy   func(alpha T, x, y []T)
	dot    func(a, b []T) T
	dotInc func(n int, x []T, incX int, y []T, incY int) T
}

var (
	kernels64 = kernels[float64]{scale: vec.Scale64, axpy: vec.Axpy64, dot: dot.Dot64, dotInc: dot.DotInc64}
	kernels32 = kernels[float32]{scale: vec.Scale32, axpy: vec.Axpy32, dot: dot.Dot32, dotInc: dot.DotInc32}
)

// gemmScalar is the reference triple loop.
// C = alpha*op(A)*op(B) + beta*C, with beta == 0 overwriting C.
// It is kept for tests and benchmarks.
func gemmScalar[T float](transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	opA := func(i, p int) T {
		if transA {
			return a[p+i*lda]
		}
		return a[i+p*lda]
	}
	opB := func(p, j int) T {
		if transB {
			return b[j+p*ldb]
		}
		return b[p+j*ldb]
	}
	for j := range n {
		for i := range m {
			var sum T
			for p := range k {
				sum += opA(i, p) * opB(p, j)
			}
			if beta == 0 {
				c[i+j*ldc] = alpha * sum
			} else {
				c[i+j*ldc] = alpha*sum + beta*c[i+j*ldc]
			}
		}
	}
}

// Gemm64 computes C = alpha*op(A)*op(B) + beta*C on the calling goroutine.
//
// Stored shapes: A is m x k (lda >= m) when transA is false and k x m
// (lda >= k) when true; B is k x n (ldb >= k) or n x k (ldb >= n); C is
// m x n (ldc >= m). When beta == 0 the previous contents of C are never
// read.
//
// Panics if a leading dimension is too small or a slice is too short for
// the shape it describes.
func Gemm64(transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	checkGemm(transA, transB, m, n, k, a, lda, b, ldb, c, ldc)
	if m == 0 || n == 0 {
		return
	}
	gemmCols(kernels64, transA, transB, m, k, alpha, a, lda, b, ldb, beta, c, ldc, 0, n)
}

// Gemm32 is the float32 form of Gemm64. Accumulation happens in float32.
func Gemm32(transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	checkGemm(transA, transB, m, n, k, a, lda, b, ldb, c, ldc)
	if m == 0 || n == 0 {
		return
	}
	gemmCols(kernels32, transA, transB, m, k, alpha, a, lda, b, ldb, beta, c, ldc, 0, n)
}

func checkGemm[T float](transA, transB bool, m, n, k int, a []T, lda int, b []T, ldb int, c []T, ldc int) {
	rowsA, colsA := m, k
	if transA {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if transB {
		rowsB, colsB = n, k
	}
	if lda < max(1, rowsA) || ldb < max(1, rowsB) || ldc < max(1, m) {
		panic("matmul: bad leading dimension")
	}
	if rowsA > 0 && colsA > 0 && len(a) < (colsA-1)*lda+rowsA {
		panic("matmul: A slice too short")
	}
	if rowsB > 0 && colsB > 0 && len(b) < (colsB-1)*ldb+rowsB {
		panic("matmul: B slice too short")
	}
	if m > 0 && n > 0 && len(c) < (n-1)*ldc+m {
		panic("matmul: C slice too short")
	}
}

// gemmCols computes columns [j0, j1) of C.
func gemmCols[T float](kern kernels[T], transA, transB bool, m, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int, j0, j1 int) {
	for j := j0; j < j1; j++ {
		cCol := c[j*ldc : j*ldc+m]
		switch beta {
		case 0:
			clear(cCol)
		case 1:
		default:
			kern.scale(cCol, beta)
		}
		if alpha == 0 || k == 0 {
			continue
		}

		if !transA {
			// C[:, j] += Σ_p (alpha * op(B)[p, j]) * A[:, p]
			for p := range k {
				var bpj T
				if transB {
					bpj = b[j+p*ldb]
				} else {
					bpj = b[p+j*ldb]
				}
				kern.axpy(alpha*bpj, a[p*lda:p*lda+m], cCol)
			}
			continue
		}

		// op(A)[i, :] is stored column i of A, contiguous.
		for i := range m {
			aRow := a[i*lda : i*lda+k]
			var sum T
			if transB {
				sum = kern.dotInc(k, aRow, 1, b[j:], ldb)
			} else {
				sum = kern.dot(aRow, b[j*ldb:j*ldb+k])
			}
			cCol[i] += alpha * sum
		}
	}
}
