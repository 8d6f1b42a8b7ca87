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

// Backend is the numerical engine behind the primitives. Implementations
// must be safe for concurrent use on independent buffers.
//
// Every operation comes in a float64 form (D prefix) and a float32 form
// (S prefix) with identical semantics. Vectors have unit stride and the
// first n elements are used. Matrices
// follow CBLAS column-major semantics: m and n are the stored row and
// column counts of A, and the leading dimensions satisfy CBLAS rules.
type Backend interface {
	// Name identifies the backend in the registry, e.g. "native".
	Name() string

	// Dscal computes x[i] *= alpha.
	Dscal(n int, alpha float64, x []float64)
	// Daxpy computes y[i] += alpha * x[i].
	Daxpy(n int, alpha float64, x, y []float64)
	// Dadd computes y[i] = a[i] + b[i]; y may alias a or b.
	Dadd(n int, a, b, y []float64)
	// Dsub computes y[i] = a[i] - b[i]; y may alias a or b.
	Dsub(n int, a, b, y []float64)
	// Ddot returns Σ x[i]*y[i].
	Ddot(n int, x, y []float64) float64
	// Dnrm2 returns sqrt(Σ x[i]²) without intermediate overflow.
	Dnrm2(n int, x []float64) float64

	// Dgemv computes y = alpha*op(A)*x + beta*y, A stored m x n.
	// beta == 0 must not read y.
	Dgemv(tA Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64)
	// Dgemm computes C = alpha*op(A)*op(B) + beta*C with op(A) m x k and
	// op(B) k x n. beta == 0 must not read C.
	Dgemm(tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)

	Sscal(n int, alpha float32, x []float32)
	Saxpy(n int, alpha float32, x, y []float32)
	Sadd(n int, a, b, y []float32)
	Ssub(n int, a, b, y []float32)
	Sdot(n int, x, y []float32) float32
	Snrm2(n int, x []float32) float32
	Sgemv(tA Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32)
	Sgemm(tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int)
}

// ScaleToer is implemented by backends with a dedicated out-of-place scale.
type ScaleToer interface {
	// DscalTo computes y[i] = alpha * x[i]. alpha == 0 must not read x.
	DscalTo(n int, alpha float64, x, y []float64)
	SscalTo(n int, alpha float32, x, y []float32)
}

// ScalarAdder is implemented by backends with a dedicated scalar add.
type ScalarAdder interface {
	// DaddScalar computes y[i] = alpha + x[i].
	DaddScalar(n int, alpha float64, x, y []float64)
	SaddScalar(n int, alpha float32, x, y []float32)
}
