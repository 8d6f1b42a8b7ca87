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

package vec

// Scale64 multiplies each element of x by alpha in place: x[i] *= alpha.
func Scale64(x []float64, alpha float64) {
	if len(x) == 0 {
		return
	}
	scaleImpl64(x, alpha)
}

// ScaleTo64 writes dst[i] = alpha * x[i].
//
// alpha == 0 zero-fills dst without reading x, so NaN values in x do not
// propagate. alpha == 1 is a plain copy.
func ScaleTo64(dst, x []float64, alpha float64) {
	n := min(len(dst), len(x))
	if n == 0 {
		return
	}
	switch alpha {
	case 0:
		clear(dst[:n])
	case 1:
		copy(dst[:n], x[:n])
	default:
		scaleToImpl64(dst[:n], x[:n], alpha)
	}
}

// Axpy64 computes y[i] += alpha * x[i].
func Axpy64(alpha float64, x, y []float64) {
	n := min(len(x), len(y))
	if n == 0 {
		return
	}
	axpyImpl64(alpha, x[:n], y[:n])
}

// Add64 writes dst[i] = a[i] + b[i].
func Add64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	addImpl64(dst[:n], a[:n], b[:n])
}

// Sub64 writes dst[i] = a[i] - b[i].
func Sub64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	subImpl64(dst[:n], a[:n], b[:n])
}

// AddConst64 writes dst[i] = c + x[i].
func AddConst64(dst, x []float64, c float64) {
	n := min(len(dst), len(x))
	if n == 0 {
		return
	}
	addConstScalar(dst[:n], x[:n], c)
}

// Scale32 is the float32 form of Scale64.
func Scale32(x []float32, alpha float32) {
	if len(x) == 0 {
		return
	}
	scaleImpl32(x, alpha)
}

// ScaleTo32 is the float32 form of ScaleTo64, with the same alpha == 0 and
// alpha == 1 cases.
func ScaleTo32(dst, x []float32, alpha float32) {
	n := min(len(dst), len(x))
	if n == 0 {
		return
	}
	switch alpha {
	case 0:
		clear(dst[:n])
	case 1:
		copy(dst[:n], x[:n])
	default:
		scaleToImpl32(dst[:n], x[:n], alpha)
	}
}

// Axpy32 computes y[i] += alpha * x[i].
func Axpy32(alpha float32, x, y []float32) {
	n := min(len(x), len(y))
	if n == 0 {
		return
	}
	axpyImpl32(alpha, x[:n], y[:n])
}

// Add32 writes dst[i] = a[i] + b[i].
func Add32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	addImpl32(dst[:n], a[:n], b[:n])
}

// Sub32 writes dst[i] = a[i] - b[i].
func Sub32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	subImpl32(dst[:n], a[:n], b[:n])
}

// AddConst32 writes dst[i] = c + x[i].
func AddConst32(dst, x []float32, c float32) {
	n := min(len(dst), len(x))
	if n == 0 {
		return
	}
	addConstScalar(dst[:n], x[:n], c)
}
