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

// Package dot provides float32 and float64 reductions: the dot product
// and the Euclidean norm.
//
// # Functions
//
//   - Dot64(a, b []float64) float64 - Σ a[i]*b[i] over the shorter length
//   - DotInc64(n, x, incX, y, incY) float64 - strided dot product
//   - L2Norm64(x []float64) float64 - sqrt(Σ x[i]²) without overflow or underflow
//   - Dot32, DotInc32, L2Norm32 - the float32 forms
//
// # Algorithm
//
// Dot64 and Dot32 use SIMD multiply and add operations followed by a horizontal
// reduction:
//  1. Process elements in chunks of 4 (AVX2) or 8 (AVX-512) float64s,
//     8 or 16 float32s
//  2. Accumulate lane-wise partial sums
//  3. Sum the lanes to get a scalar
//  4. Handle tail elements with scalar code
//
// L2Norm64 keeps a running (scale, ssq) pair such that the sum of squares
// seen so far equals scale² * ssq, with scale the largest magnitude seen.
// Squares are only ever formed from ratios ≤ 1, so inputs near the float64
// range limits (1e±300) do not overflow or flush to zero.
//
// # Example Usage
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	dot.Dot64(a, b)                 // 32
//	dot.L2Norm64([]float64{3, 4})   // 5
//
// # Build Requirements
//
// The SIMD implementations require:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 or AVX-512 support
package dot
