//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// ASIMD is mandatory on ARMv8 but some emulators report it missing.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
		return
	}
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
