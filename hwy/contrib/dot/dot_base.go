package dot

import "math"

// Dot32 computes Σ a[i]*b[i] for two float32 slices over the shorter length.
// Returns 0 if either slice is empty.
func Dot32(a, b []float32) float32 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return dotImpl32(a, b)
}

// DotInc32 is the float32 form of DotInc64.
func DotInc32(n int, x []float32, incX int, y []float32, incY int) float32 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return Dot32(x[:n], y[:n])
	}
	var sum float32
	for i, ix, iy := 0, 0, 0; i < n; i, ix, iy = i+1, ix+incX, iy+incY {
		sum += x[ix] * y[iy]
	}
	return sum
}

// L2Norm32 returns the Euclidean norm of a float32 slice.
//
// Squares are summed in float64, whose range covers the square of every
// finite float32, so no rescaling is needed. NaN and Inf follow L2Norm64.
func L2Norm32(x []float32) float32 {
	var (
		ssq    float64
		sawInf bool
	)
	for _, v := range x {
		f := float64(v)
		if math.IsNaN(f) {
			return float32(math.NaN())
		}
		if math.IsInf(f, 0) {
			sawInf = true
			continue
		}
		ssq += f * f
	}
	if sawInf {
		return float32(math.Inf(1))
	}
	return float32(math.Sqrt(ssq))
}

// Dot64 computes the dot product of two float64 slices.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
func Dot64(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	return dotImpl64(a, b)
}

// DotInc64 computes Σ x[i*incX] * y[i*incY] for i in [0, n).
// Unit strides take the vectorized path.
func DotInc64(n int, x []float64, incX int, y []float64, incY int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return Dot64(x[:n], y[:n])
	}
	var sum float64
	for i, ix, iy := 0, 0, 0; i < n; i, ix, iy = i+1, ix+incX, iy+incY {
		sum += x[ix] * y[iy]
	}
	return sum
}

// L2Norm64 returns the Euclidean norm sqrt(Σ x[i]²).
//
// The sum is accumulated relative to the largest magnitude seen so far, so
// the result is accurate for elements whose squares would overflow or
// underflow. Any NaN element yields NaN; otherwise any infinite element
// yields +Inf. Returns 0 for an empty slice.
func L2Norm64(x []float64) float64 {
	var (
		scale  float64
		ssq    = 1.0
		sawInf bool
	)
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if math.IsInf(v, 0) {
			sawInf = true
			continue
		}
		if v == 0 {
			continue
		}
		absv := math.Abs(v)
		if scale < absv {
			r := scale / absv
			ssq = 1 + ssq*r*r
			scale = absv
		} else {
			r := absv / scale
			ssq += r * r
		}
	}
	if sawInf {
		return math.Inf(1)
	}
	if scale == 0 {
		return 0
	}
	return scale * math.Sqrt(ssq)
}
