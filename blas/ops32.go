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

// The float32 primitives mirror the float64 ones name for name with a 32
// suffix. Accumulation happens in float32 except in Norm2_32, which sums
// squares in float64.

// ScaleInPlace32 multiplies the first n elements of x by alpha in place.
func (o Ops) ScaleInPlace32(x []float32, n int, alpha float32) {
	assertDims("ScaleInPlace32", n)
	if n <= 0 {
		return
	}
	o.b.Sscal(n, alpha, x)
}

// ScaledAdd32 computes y[i] += alpha * x[i] for i in [0, n).
func (o Ops) ScaledAdd32(x []float32, n int, alpha float32, y []float32) {
	assertDims("ScaledAdd32", n)
	if n <= 0 {
		return
	}
	o.b.Saxpy(n, alpha, x, y)
}

// ElementwiseAdd32 computes y[i] = a[i] + b[i] for i in [0, n).
// y may be the same buffer as a or b.
func (o Ops) ElementwiseAdd32(a, b []float32, n int, y []float32) {
	assertDims("ElementwiseAdd32", n)
	if n <= 0 {
		return
	}
	o.b.Sadd(n, a, b, y)
}

// ElementwiseSub32 computes y[i] = a[i] - b[i] for i in [0, n).
// y may be the same buffer as a or b.
func (o Ops) ElementwiseSub32(a, b []float32, n int, y []float32) {
	assertDims("ElementwiseSub32", n)
	if n <= 0 {
		return
	}
	o.b.Ssub(n, a, b, y)
}

// DotProduct32 returns Σ x[i]*y[i] for i in [0, n), or 0 when n == 0.
func (o Ops) DotProduct32(x, y []float32, n int) float32 {
	assertDims("DotProduct32", n)
	if n <= 0 {
		return 0
	}
	return o.b.Sdot(n, x, y)
}

// Norm2_32 returns the Euclidean norm of the first n elements of x, or 0
// when n == 0.
func (o Ops) Norm2_32(x []float32, n int) float32 {
	assertDims("Norm2_32", n)
	if n <= 0 {
		return 0
	}
	return o.b.Snrm2(n, x)
}

// ScaleTo32 computes y[i] = alpha * x[i] for i in [0, n). alpha == 0
// writes zeros without reading x.
func (o Ops) ScaleTo32(alpha float32, x []float32, n int, y []float32) {
	assertDims("ScaleTo32", n)
	if n <= 0 {
		return
	}
	if s, ok := o.b.(ScaleToer); ok {
		s.SscalTo(n, alpha, x, y)
		return
	}
	vec.ScaleTo32(y[:n], x[:n], alpha)
}

// AddScalar32 computes y[i] = alpha + x[i] for i in [0, n).
func (o Ops) AddScalar32(alpha float32, x []float32, n int, y []float32) {
	assertDims("AddScalar32", n)
	if n <= 0 {
		return
	}
	if s, ok := o.b.(ScalarAdder); ok {
		s.SaddScalar(n, alpha, x, y)
		return
	}
	vec.AddConst32(y[:n], x[:n], alpha)
}

// MatVec32 is the float32 form of MatVec, with the same shapes and leading
// dimension.
func (o Ops) MatVec32(trans Transpose, m, n int, a []float32, alpha float32, x []float32, beta float32, y []float32) {
	assertDims("MatVec32", m, n)
	if m <= 0 {
		return
	}
	if n <= 0 {
		scaleOutput32(o.b, m, beta, y)
		return
	}
	lda := MatVecLeadingDim(trans, m, n)
	if trans.IsTrans() {
		o.b.Sgemv(Trans, n, m, alpha, a, lda, x, beta, y)
		return
	}
	o.b.Sgemv(NoTrans, m, n, alpha, a, lda, x, beta, y)
}

// MatMat32 is the float32 form of MatMat, with the same shapes and leading
// dimensions.
func (o Ops) MatMat32(transa, transb Transpose, m, n, k int, a, b []float32, alpha, beta float32, c []float32) {
	assertDims("MatMat32", m, n, k)
	if m <= 0 || n <= 0 {
		return
	}
	if k <= 0 {
		scaleOutput32(o.b, m*n, beta, c)
		return
	}
	lda, ldb, ldc := MatMatLeadingDims(transa, transb, m, n, k)
	o.b.Sgemm(NewTranspose(transa.IsTrans()), NewTranspose(transb.IsTrans()), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func scaleOutput32(b Backend, n int, beta float32, y []float32) {
	switch beta {
	case 0:
		clear(y[:n])
	case 1:
	default:
		b.Sscal(n, beta, y)
	}
}
