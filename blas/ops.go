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

import "github.com/ajroetker/hwyblas/hwy/contrib/vec"

// Ops binds the primitives to one backend. The package-level functions
// are With(Current()) shorthands; Ops lets a caller or a test target a
// specific backend without changing the active one.
type Ops struct {
	b Backend
}

// With returns the primitives bound to b.
func With(b Backend) Ops {
	return Ops{b: b}
}

// Backend returns the backend o forwards to.
func (o Ops) Backend() Backend { return o.b }

// ScaleInPlace multiplies the first n elements of x by alpha in place.
func (o Ops) ScaleInPlace(x []float64, n int, alpha float64) {
	assertDims("ScaleInPlace", n)
	if n <= 0 {
		return
	}
	o.b.Dscal(n, alpha, x)
}

// ScaledAdd computes y[i] += alpha * x[i] for i in [0, n). x is read-only.
func (o Ops) ScaledAdd(x []float64, n int, alpha float64, y []float64) {
	assertDims("ScaledAdd", n)
	if n <= 0 {
		return
	}
	o.b.Daxpy(n, alpha, x, y)
}

// ElementwiseAdd computes y[i] = a[i] + b[i] for i in [0, n).
// y may be the same buffer as a or b.
func (o Ops) ElementwiseAdd(a, b []float64, n int, y []float64) {
	assertDims("ElementwiseAdd", n)
	if n <= 0 {
		return
	}
	o.b.Dadd(n, a, b, y)
}

// ElementwiseSub computes y[i] = a[i] - b[i] for i in [0, n).
// y may be the same buffer as a or b.
func (o Ops) ElementwiseSub(a, b []float64, n int, y []float64) {
	assertDims("ElementwiseSub", n)
	if n <= 0 {
		return
	}
	o.b.Dsub(n, a, b, y)
}

// DotProduct returns Σ x[i]*y[i] for i in [0, n), or 0 when n == 0.
func (o Ops) DotProduct(x, y []float64, n int) float64 {
	assertDims("DotProduct", n)
	if n <= 0 {
		return 0
	}
	return o.b.Ddot(n, x, y)
}

// Norm2 returns the Euclidean norm of the first n elements of x, or 0 when
// n == 0. Elements near the float64 range limits do not overflow or
// underflow the intermediate sum.
func (o Ops) Norm2(x []float64, n int) float64 {
	assertDims("Norm2", n)
	if n <= 0 {
		return 0
	}
	return o.b.Dnrm2(n, x)
}

// ScaleTo computes y[i] = alpha * x[i] for i in [0, n). alpha == 0 writes
// zeros without reading x; y may be the same buffer as x.
func (o Ops) ScaleTo(alpha float64, x []float64, n int, y []float64) {
	assertDims("ScaleTo", n)
	if n <= 0 {
		return
	}
	if s, ok := o.b.(ScaleToer); ok {
		s.DscalTo(n, alpha, x, y)
		return
	}
	vec.ScaleTo64(y[:n], x[:n], alpha)
}

// AddScalar computes y[i] = alpha + x[i] for i in [0, n). y may be the same
// buffer as x.
func (o Ops) AddScalar(alpha float64, x []float64, n int, y []float64) {
	assertDims("AddScalar", n)
	if n <= 0 {
		return
	}
	if s, ok := o.b.(ScalarAdder); ok {
		s.DaddScalar(n, alpha, x, y)
		return
	}
	vec.AddConst64(y[:n], x[:n], alpha)
}

// MatVecLeadingDim returns the leading dimension of A in MatVec: m for
// NoTrans and n for Trans, the physical row count of the stored matrix.
func MatVecLeadingDim(trans Transpose, m, n int) int {
	if trans.IsTrans() {
		return n
	}
	return m
}

// MatMatLeadingDims returns the leading dimensions used by MatMat:
//
//	lda = m if transa is NoTrans, else k
//	ldb = k if transb is NoTrans, else n
//	ldc = m
func MatMatLeadingDims(transa, transb Transpose, m, n, k int) (lda, ldb, ldc int) {
	lda, ldb, ldc = m, k, m
	if transa.IsTrans() {
		lda = k
	}
	if transb.IsTrans() {
		ldb = n
	}
	return lda, ldb, ldc
}

// MatVec computes y = alpha*op(A)*x + beta*y, where y has length m and x
// has length n.
//
// With NoTrans, A is an m x n column-major matrix and op(A) = A. With
// Trans, A is stored as an n x m column-major matrix and op(A) = Aᵀ. The
// leading dimension is MatVecLeadingDim(trans, m, n).
//
// When beta == 0 the previous contents of y are never read.
func (o Ops) MatVec(trans Transpose, m, n int, a []float64, alpha float64, x []float64, beta float64, y []float64) {
	assertDims("MatVec", m, n)
	if m <= 0 {
		return
	}
	if n <= 0 {
		scaleOutput(o.b, m, beta, y)
		return
	}
	lda := MatVecLeadingDim(trans, m, n)
	if trans.IsTrans() {
		o.b.Dgemv(Trans, n, m, alpha, a, lda, x, beta, y)
		return
	}
	o.b.Dgemv(NoTrans, m, n, alpha, a, lda, x, beta, y)
}

// MatMat computes C = alpha*op(A)*op(B) + beta*C, where op(A) is m x k,
// op(B) is k x n and C is an m x n column-major matrix. The leading
// dimensions are given by MatMatLeadingDims.
//
// When beta == 0 the previous contents of C are never read.
func (o Ops) MatMat(transa, transb Transpose, m, n, k int, a, b []float64, alpha, beta float64, c []float64) {
	assertDims("MatMat", m, n, k)
	if m <= 0 || n <= 0 {
		return
	}
	if k <= 0 {
		scaleOutput(o.b, m*n, beta, c)
		return
	}
	lda, ldb, ldc := MatMatLeadingDims(transa, transb, m, n, k)
	o.b.Dgemm(NewTranspose(transa.IsTrans()), NewTranspose(transb.IsTrans()), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// scaleOutput applies y = beta*y for an empty inner dimension. Reference
// BLAS returns early in that case and leaves y untouched, which is not
// the mathematical result.
func scaleOutput(b Backend, n int, beta float64, y []float64) {
	switch beta {
	case 0:
		clear(y[:n])
	case 1:
	default:
		b.Dscal(n, beta, y)
	}
}
