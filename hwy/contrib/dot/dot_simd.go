//go:build amd64 && goexperiment.simd

package dot

import "github.com/ajroetker/hwyblas/hwy"

// dotImpl32 is the SIMD implementation for float32.
// Uses AVX-512 if available, otherwise AVX2, otherwise scalar.
func dotImpl32(a, b []float32) float32 {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		return Dot_AVX512_F32x16(a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		return Dot_AVX2_F32x8(a, b)
	default:
		return dotScalar32(a, b)
	}
}

// dotImpl64 is the SIMD implementation for float64.
func dotImpl64(a, b []float64) float64 {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		return Dot_AVX512_F64x8(a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		return Dot_AVX2_F64x4(a, b)
	default:
		return dotScalar64(a, b)
	}
}
