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

// Package blas is the stable primitives surface of hwyblas: eight dense
// operations over caller-owned, column-major, unit-stride buffers.
//
//   - ScaleInPlace, ScaledAdd, ElementwiseAdd, ElementwiseSub
//   - DotProduct, Norm2
//   - MatVec, MatMat
//
// plus ScaleTo and AddScalar. Each has a float32 twin with a 32 suffix
// (ScaleInPlace32, ..., MatMat32) and the same contract. The functions hold
// no state. Each call is forwarded to the active Backend, which defaults to
// the pure Go kernels in hwy/contrib and can be swapped with Use or UseNamed.
//
// # Storage convention
//
// Matrices are column-major with a leading dimension derived from the
// transpose flags, never passed by the caller:
//
//	MatVec: lda = m (NoTrans) or n (Trans)
//	MatMat: lda = m (NoTrans) or k (Trans)
//	        ldb = k (NoTrans) or n (Trans)
//	        ldc = m
//
// The leading dimension is the physical row count of the stored matrix.
// A Trans operand is stored as the transpose of its logical shape.
//
// # Errors
//
// There is no error channel. Negative dimensions, short buffers and
// inconsistent shapes are undefined behaviour; in practice the kernels
// panic. NaN and Inf propagate as values. Building with the hwyblas_debug
// tag adds panics on negative dimensions.
//
// # Concurrency
//
// All functions are reentrant. Calls on independent buffers may run
// concurrently; calls that write overlapping buffers must be serialized by
// the caller.
package blas
