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

// The flat functions below are the stable surface exported through the C
// ABI. Each forwards to the active backend; see the Ops methods for the
// full contract.

// ScaleInPlace computes x[i] *= alpha for i in [0, n).
func ScaleInPlace(x []float64, n int, alpha float64) {
	With(Current()).ScaleInPlace(x, n, alpha)
}

// ScaledAdd computes y[i] += alpha * x[i] for i in [0, n).
func ScaledAdd(x []float64, n int, alpha float64, y []float64) {
	With(Current()).ScaledAdd(x, n, alpha, y)
}

// ElementwiseAdd computes y[i] = a[i] + b[i] for i in [0, n).
func ElementwiseAdd(a, b []float64, n int, y []float64) {
	With(Current()).ElementwiseAdd(a, b, n, y)
}

// ElementwiseSub computes y[i] = a[i] - b[i] for i in [0, n).
func ElementwiseSub(a, b []float64, n int, y []float64) {
	With(Current()).ElementwiseSub(a, b, n, y)
}

// DotProduct returns Σ x[i]*y[i] for i in [0, n).
func DotProduct(x, y []float64, n int) float64 {
	return With(Current()).DotProduct(x, y, n)
}

// Norm2 returns the Euclidean norm of the first n elements of x.
func Norm2(x []float64, n int) float64 {
	return With(Current()).Norm2(x, n)
}

// ScaleTo computes y[i] = alpha * x[i] for i in [0, n).
func ScaleTo(alpha float64, x []float64, n int, y []float64) {
	With(Current()).ScaleTo(alpha, x, n, y)
}

// AddScalar computes y[i] = alpha + x[i] for i in [0, n).
func AddScalar(alpha float64, x []float64, n int, y []float64) {
	With(Current()).AddScalar(alpha, x, n, y)
}

// MatVec computes y = alpha*op(A)*x + beta*y with y of length m and x of
// length n.
func MatVec(trans Transpose, m, n int, a []float64, alpha float64, x []float64, beta float64, y []float64) {
	With(Current()).MatVec(trans, m, n, a, alpha, x, beta, y)
}

// MatMat computes C = alpha*op(A)*op(B) + beta*C with C of shape m x n.
func MatMat(transa, transb Transpose, m, n, k int, a, b []float64, alpha, beta float64, c []float64) {
	With(Current()).MatMat(transa, transb, m, n, k, a, b, alpha, beta, c)
}

// ScaleInPlace32 computes x[i] *= alpha for i in [0, n).
func ScaleInPlace32(x []float32, n int, alpha float32) {
	With(Current()).ScaleInPlace32(x, n, alpha)
}

// ScaledAdd32 computes y[i] += alpha * x[i] for i in [0, n).
func ScaledAdd32(x []float32, n int, alpha float32, y []float32) {
	With(Current()).ScaledAdd32(x, n, alpha, y)
}

// ElementwiseAdd32 computes y[i] = a[i] + b[i] for i in [0, n).
func ElementwiseAdd32(a, b []float32, n int, y []float32) {
	With(Current()).ElementwiseAdd32(a, b, n, y)
}

// ElementwiseSub32 computes y[i] = a[i] - b[i] for i in [0, n).
func ElementwiseSub32(a, b []float32, n int, y []float32) {
	With(Current()).ElementwiseSub32(a, b, n, y)
}

// DotProduct32 returns Σ x[i]*y[i] for i in [0, n).
func DotProduct32(x, y []float32, n int) float32 {
	return With(Current()).DotProduct32(x, y, n)
}

// Norm2_32 returns the Euclidean norm of the first n elements of x.
func Norm2_32(x []float32, n int) float32 {
	return With(Current()).Norm2_32(x, n)
}

// ScaleTo32 computes y[i] = alpha * x[i] for i in [0, n).
func ScaleTo32(alpha float32, x []float32, n int, y []float32) {
	With(Current()).ScaleTo32(alpha, x, n, y)
}

// AddScalar32 computes y[i] = alpha + x[i] for i in [0, n).
func AddScalar32(alpha float32, x []float32, n int, y []float32) {
	With(Current()).AddScalar32(alpha, x, n, y)
}

// MatVec32 is the float32 form of MatVec.
func MatVec32(trans Transpose, m, n int, a []float32, alpha float32, x []float32, beta float32, y []float32) {
	With(Current()).MatVec32(trans, m, n, a, alpha, x, beta, y)
}

// MatMat32 is the float32 form of MatMat.
func MatMat32(transa, transb Transpose, m, n, k int, a, b []float32, alpha, beta float32, c []float32) {
	With(Current()).MatMat32(transa, transb, m, n, k, a, b, alpha, beta, c)
}
