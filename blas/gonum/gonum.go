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

// Package gonum provides a blas.Backend over any gonum BLAS
// implementation, by default gonum's pure-Go one. Importing the package
// registers the backend as "gonum":
//
//	import _ "github.com/ajroetker/hwyblas/blas/gonum"
//
//	blas.UseNamed("gonum")
//
// Gonum BLAS is row-major. A column-major matrix with leading dimension ld
// is the same memory as its row-major transpose with stride ld, so the
// adapter swaps operands and transpose flags instead of copying.
package gonum

import (
	gblas "gonum.org/v1/gonum/blas"
	gonumblas "gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/hwyblas/blas"
)

// Name is the registry name of the default backend.
const Name = "gonum"

func init() {
	blas.Register(New(Name, gonumblas.Implementation{}))
}

// Implementation is a gonum BLAS with both real precisions. gonum's pure-Go
// implementation and netlib's cgo one both satisfy it.
type Implementation interface {
	gblas.Float32
	gblas.Float64
}

// Backend adapts a row-major gonum implementation to blas.Backend.
type Backend struct {
	name string
	impl Implementation
}

var _ blas.Backend = (*Backend)(nil)

// New returns a backend named name that forwards to impl.
func New(name string, impl Implementation) *Backend {
	return &Backend{name: name, impl: impl}
}

func (b *Backend) Name() string { return b.name }

// Implementation returns the wrapped gonum implementation.
func (b *Backend) Implementation() Implementation { return b.impl }

func (b *Backend) Dscal(n int, alpha float64, x []float64) {
	b.impl.Dscal(n, alpha, x, 1)
}

func (b *Backend) Daxpy(n int, alpha float64, x, y []float64) {
	b.impl.Daxpy(n, alpha, x, 1, y, 1)
}

func (b *Backend) Dadd(n int, a, bv, y []float64) {
	floats.AddTo(y[:n], a[:n], bv[:n])
}

func (b *Backend) Dsub(n int, a, bv, y []float64) {
	floats.SubTo(y[:n], a[:n], bv[:n])
}

func (b *Backend) Ddot(n int, x, y []float64) float64 {
	return b.impl.Ddot(n, x, 1, y, 1)
}

func (b *Backend) Dnrm2(n int, x []float64) float64 {
	return b.impl.Dnrm2(n, x, 1)
}

// Dgemv maps column-major A (m x n) onto the row-major n x m matrix Aᵀ and
// flips the transpose flag.
func (b *Backend) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	t := gblas.Trans
	if tA.IsTrans() {
		t = gblas.NoTrans
	}
	b.impl.Dgemv(t, n, m, alpha, a, lda, x, 1, beta, y, 1)
}

// Dgemm computes the row-major product Cᵀ = op(B)ᵀ op(A)ᵀ, which is C in
// column-major order.
func (b *Backend) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, bm []float64, ldb int, beta float64, c []float64, ldc int) {
	b.impl.Dgemm(transpose(tB), transpose(tA), n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
}

func (b *Backend) Sscal(n int, alpha float32, x []float32) {
	b.impl.Sscal(n, alpha, x, 1)
}

func (b *Backend) Saxpy(n int, alpha float32, x, y []float32) {
	b.impl.Saxpy(n, alpha, x, 1, y, 1)
}

// Sadd has no float32 counterpart in gonum/floats and is built from copy
// and axpy, ordered so that y may alias a or b.
func (b *Backend) Sadd(n int, a, bv, y []float32) {
	if n <= 0 {
		return
	}
	if &y[0] == &bv[0] {
		b.impl.Saxpy(n, 1, a, 1, y, 1)
		return
	}
	b.impl.Scopy(n, a, 1, y, 1)
	b.impl.Saxpy(n, 1, bv, 1, y, 1)
}

// Ssub computes a - b as a + (-b), which rounds identically.
func (b *Backend) Ssub(n int, a, bv, y []float32) {
	if n <= 0 {
		return
	}
	if &y[0] == &bv[0] {
		b.impl.Sscal(n, -1, y, 1)
		b.impl.Saxpy(n, 1, a, 1, y, 1)
		return
	}
	b.impl.Scopy(n, a, 1, y, 1)
	b.impl.Saxpy(n, -1, bv, 1, y, 1)
}

func (b *Backend) Sdot(n int, x, y []float32) float32 {
	return b.impl.Sdot(n, x, 1, y, 1)
}

func (b *Backend) Snrm2(n int, x []float32) float32 {
	return b.impl.Snrm2(n, x, 1)
}

// Sgemv is Dgemv in float32.
func (b *Backend) Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32) {
	t := gblas.Trans
	if tA.IsTrans() {
		t = gblas.NoTrans
	}
	b.impl.Sgemv(t, n, m, alpha, a, lda, x, 1, beta, y, 1)
}

// Sgemm is Dgemm in float32.
func (b *Backend) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, bm []float32, ldb int, beta float32, c []float32, ldc int) {
	b.impl.Sgemm(transpose(tB), transpose(tA), n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
}

func transpose(t blas.Transpose) gblas.Transpose {
	if t.IsTrans() {
		return gblas.Trans
	}
	return gblas.NoTrans
}
