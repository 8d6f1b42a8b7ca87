//go:build amd64 && goexperiment.simd

package vec

import "simd/archsimd"

// Scale_AVX2_F64x4 computes x[i] *= alpha using AVX2, 4 float64s at a time.
func Scale_AVX2_F64x4(x []float64, alpha float64) {
	n := len(x)
	va := archsimd.BroadcastFloat64x4(alpha)

	i := 0
	for ; i+4 <= n; i += 4 {
		vx := archsimd.LoadFloat64x4Slice(x[i:])
		vx.Mul(va).StoreSlice(x[i:])
	}
	for ; i < n; i++ {
		x[i] *= alpha
	}
}

// ScaleTo_AVX2_F64x4 computes dst[i] = alpha * x[i]. len(x) must be >= len(dst).
func ScaleTo_AVX2_F64x4(dst, x []float64, alpha float64) {
	n := len(dst)
	va := archsimd.BroadcastFloat64x4(alpha)

	i := 0
	for ; i+4 <= n; i += 4 {
		vx := archsimd.LoadFloat64x4Slice(x[i:])
		vx.Mul(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = alpha * x[i]
	}
}

// Axpy_AVX2_F64x4 computes y[i] += alpha * x[i]. len(x) must be >= len(y).
func Axpy_AVX2_F64x4(alpha float64, x, y []float64) {
	n := len(y)
	va := archsimd.BroadcastFloat64x4(alpha)

	i := 0
	for ; i+4 <= n; i += 4 {
		vx := archsimd.LoadFloat64x4Slice(x[i:])
		vy := archsimd.LoadFloat64x4Slice(y[i:])
		vy.Add(vx.Mul(va)).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// Add_AVX2_F64x4 computes dst[i] = a[i] + b[i].
// Both inputs of a block are loaded before the block is stored, so dst may alias a or b.
func Add_AVX2_F64x4(dst, a, b []float64) {
	n := len(dst)

	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub_AVX2_F64x4 computes dst[i] = a[i] - b[i]. dst may alias a or b.
func Sub_AVX2_F64x4(dst, a, b []float64) {
	n := len(dst)

	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// Scale_AVX2_F32x8 computes x[i] *= alpha using AVX2, 8 float32s at a time.
func Scale_AVX2_F32x8(x []float32, alpha float32) {
	n := len(x)
	va := archsimd.BroadcastFloat32x8(alpha)

	i := 0
	for ; i+8 <= n; i += 8 {
		vx := archsimd.LoadFloat32x8Slice(x[i:])
		vx.Mul(va).StoreSlice(x[i:])
	}
	for ; i < n; i++ {
		x[i] *= alpha
	}
}

// ScaleTo_AVX2_F32x8 computes dst[i] = alpha * x[i]. len(x) must be >= len(dst).
func ScaleTo_AVX2_F32x8(dst, x []float32, alpha float32) {
	n := len(dst)
	va := archsimd.BroadcastFloat32x8(alpha)

	i := 0
	for ; i+8 <= n; i += 8 {
		vx := archsimd.LoadFloat32x8Slice(x[i:])
		vx.Mul(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = alpha * x[i]
	}
}

// Axpy_AVX2_F32x8 computes y[i] += alpha * x[i]. len(x) must be >= len(y).
func Axpy_AVX2_F32x8(alpha float32, x, y []float32) {
	n := len(y)
	va := archsimd.BroadcastFloat32x8(alpha)

	i := 0
	for ; i+8 <= n; i += 8 {
		vx := archsimd.LoadFloat32x8Slice(x[i:])
		vy := archsimd.LoadFloat32x8Slice(y[i:])
		vy.Add(vx.Mul(va)).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// Add_AVX2_F32x8 computes dst[i] = a[i] + b[i].
// Both inputs of a block are loaded before the block is stored, so dst may alias a or b.
func Add_AVX2_F32x8(dst, a, b []float32) {
	n := len(dst)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub_AVX2_F32x8 computes dst[i] = a[i] - b[i]. dst may alias a or b.
func Sub_AVX2_F32x8(dst, a, b []float32) {
	n := len(dst)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}
