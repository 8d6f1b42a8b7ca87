//go:build amd64 && goexperiment.simd

package vec

import "github.com/ajroetker/hwyblas/hwy"

// The *Impl64 and *Impl32 functions pick the widest kernel allowed by hwy.CurrentLevel,
// so HWY_NO_SIMD also forces the scalar path here.

func scaleImpl64(x []float64, alpha float64) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Scale_AVX512_F64x8(x, alpha)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Scale_AVX2_F64x4(x, alpha)
	default:
		scaleScalar(x, alpha)
	}
}

func scaleToImpl64(dst, x []float64, alpha float64) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		ScaleTo_AVX512_F64x8(dst, x, alpha)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		ScaleTo_AVX2_F64x4(dst, x, alpha)
	default:
		scaleToScalar(dst, x, alpha)
	}
}

func axpyImpl64(alpha float64, x, y []float64) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Axpy_AVX512_F64x8(alpha, x, y)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Axpy_AVX2_F64x4(alpha, x, y)
	default:
		axpyScalar(alpha, x, y)
	}
}

func addImpl64(dst, a, b []float64) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Add_AVX512_F64x8(dst, a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Add_AVX2_F64x4(dst, a, b)
	default:
		addScalar(dst, a, b)
	}
}

func subImpl64(dst, a, b []float64) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Sub_AVX512_F64x8(dst, a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Sub_AVX2_F64x4(dst, a, b)
	default:
		subScalar(dst, a, b)
	}
}

func scaleImpl32(x []float32, alpha float32) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Scale_AVX512_F32x16(x, alpha)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Scale_AVX2_F32x8(x, alpha)
	default:
		scaleScalar(x, alpha)
	}
}

func scaleToImpl32(dst, x []float32, alpha float32) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		ScaleTo_AVX512_F32x16(dst, x, alpha)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		ScaleTo_AVX2_F32x8(dst, x, alpha)
	default:
		scaleToScalar(dst, x, alpha)
	}
}

func axpyImpl32(alpha float32, x, y []float32) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Axpy_AVX512_F32x16(alpha, x, y)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Axpy_AVX2_F32x8(alpha, x, y)
	default:
		axpyScalar(alpha, x, y)
	}
}

func addImpl32(dst, a, b []float32) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Add_AVX512_F32x16(dst, a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Add_AVX2_F32x8(dst, a, b)
	default:
		addScalar(dst, a, b)
	}
}

func subImpl32(dst, a, b []float32) {
	switch {
	case hwy.CurrentLevel() >= hwy.DispatchAVX512:
		Sub_AVX512_F32x16(dst, a, b)
	case hwy.CurrentLevel() >= hwy.DispatchAVX2:
		Sub_AVX2_F32x8(dst, a, b)
	default:
		subScalar(dst, a, b)
	}
}
