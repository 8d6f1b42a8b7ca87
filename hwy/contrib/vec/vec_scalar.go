//go:build !amd64 || !goexperiment.simd

package vec

func scaleImpl64(x []float64, alpha float64)        { scaleScalar(x, alpha) }
func scaleToImpl64(dst, x []float64, alpha float64) { scaleToScalar(dst, x, alpha) }
func axpyImpl64(alpha float64, x, y []float64)      { axpyScalar(alpha, x, y) }
func addImpl64(dst, a, b []float64)                 { addScalar(dst, a, b) }
func subImpl64(dst, a, b []float64)                 { subScalar(dst, a, b) }

func scaleImpl32(x []float32, alpha float32)        { scaleScalar(x, alpha) }
func scaleToImpl32(dst, x []float32, alpha float32) { scaleToScalar(dst, x, alpha) }
func axpyImpl32(alpha float32, x, y []float32)      { axpyScalar(alpha, x, y) }
func addImpl32(dst, a, b []float32)                 { addScalar(dst, a, b) }
func subImpl32(dst, a, b []float32)                 { subScalar(dst, a, b) }
