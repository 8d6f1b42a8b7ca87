//go:build !amd64 && !arm64

package hwy

func init() {
	// No vector kernels exist for this architecture.
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
