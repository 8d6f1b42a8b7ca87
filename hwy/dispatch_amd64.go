//go:build amd64 && !goexperiment.simd

package hwy

// Fallback for when GOEXPERIMENT=simd is not enabled.
// The kernels only carry scalar code in this build, so the level never
// rises above the SSE2 baseline regardless of what the CPU supports.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
