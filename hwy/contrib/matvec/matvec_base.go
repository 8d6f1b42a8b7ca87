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

// Package matvec provides the column-major general matrix-vector product in
// float64 (Gemv64) and float32 (Gemv32).
//
// Both follow the CBLAS column-major convention: A is stored with m
// physical rows and n columns, element (i, j) at a[i + j*lda]. The
// untransposed product walks A column by column as a sequence of axpy
// updates; the transposed product is one dot product per stored column.
// Both paths reuse the SIMD kernels in hwy/contrib/vec and hwy/contrib/dot.
package matvec

import (
	"github.com/ajroetker/hwyblas/hwy/contrib/dot"
	"github.com/ajroetker/hwyblas/hwy/contrib/vec"
)

type float interface{ ~float32 | ~float64 }

// kernels binds the level-1 routines one element width uses.
type kernels[T float] struct {
	scale func(x []T, alpha T)
	axpy  func(alpha T, x, y []T)
	dot   func(a, b []T) T
}

var (
	kernels64 = kernels[float64]{scale: vec.Scale64, axpy: vec.Axpy64, dot: dot.Dot64}
	kernels32 = kernels[float32]{scale: vec.Scale32, axpy: vec.Axpy32, dot: dot.Dot32}
)

// Gemv64 computes y = alpha*op(A)*x + beta*y for a column-major A with m
// stored rows, n stored columns and leading dimension lda.
//
//   - trans == false: op(A) = A, len(x) >= n, len(y) >= m
//   - trans == true:  op(A) = Aᵀ, len(x) >= m, len(y) >= n
//
// When beta == 0 the previous contents of y are never read, so y may hold
// garbage or NaN on entry.
//
// Panics if:
//   - lda < max(1, m)
//   - len(a) < (n-1)*lda + m
//   - x or y is shorter than required
//
// Example:
//
//	// 2x3 column-major matrix:
//	//   [1 3 5]
//	//   [2 4 6]
//	a := []float64{1, 2, 3, 4, 5, 6}
//	x := []float64{1, 0, 1}
//	y := make([]float64, 2)
//	Gemv64(false, 2, 3, 1, a, 2, x, 0, y)  // y = [6, 8]
func Gemv64(trans bool, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	gemv(kernels64, trans, m, n, alpha, a, lda, x, beta, y)
}

// Gemv32 is the float32 form of Gemv64. Accumulation happens in float32.
func Gemv32(trans bool, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32) {
	gemv(kernels32, trans, m, n, alpha, a, lda, x, beta, y)
}

func gemv[T float](k kernels[T], trans bool, m, n int, alpha T, a []T, lda int, x []T, beta T, y []T) {
	lenX, lenY := n, m
	if trans {
		lenX, lenY = m, n
	}
	if lda < max(1, m) {
		panic("matvec: bad leading dimension")
	}
	if m > 0 && n > 0 && len(a) < (n-1)*lda+m {
		panic("matvec: A slice too short")
	}
	if len(x) < lenX {
		panic("matvec: vector slice too small")
	}
	if len(y) < lenY {
		panic("matvec: result slice too small")
	}
	if lenY == 0 {
		return
	}

	y = y[:lenY]
	switch beta {
	case 0:
		clear(y)
	case 1:
	default:
		k.scale(y, beta)
	}
	if alpha == 0 || lenX == 0 {
		return
	}

	if trans {
		gemvTrans(k, m, n, alpha, a, lda, x[:m], y)
	} else {
		gemvNoTrans(k, m, n, alpha, a, lda, x[:n], y)
	}
}

// gemvNoTrans accumulates y += alpha * A * x one column at a time.
func gemvNoTrans[T float](k kernels[T], m, n int, alpha T, a []T, lda int, x, y []T) {
	for j := range n {
		col := a[j*lda : j*lda+m]
		k.axpy(alpha*x[j], col, y)
	}
}

// gemvTrans accumulates y[j] += alpha * dot(A[:, j], x).
func gemvTrans[T float](k kernels[T], m, n int, alpha T, a []T, lda int, x, y []T) {
	for j := range n {
		col := a[j*lda : j*lda+m]
		y[j] += alpha * k.dot(col, x)
	}
}
