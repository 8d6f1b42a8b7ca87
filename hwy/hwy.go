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

// Package hwy detects the SIMD dispatch level of the running CPU.
//
// The level is resolved once at init time and is consulted by the kernels in
// hwy/contrib to pick between AVX-512, AVX2 and scalar code paths. Setting
// HWY_NO_SIMD to any non-empty value other than "0" forces scalar mode.
package hwy

import "os"

// DispatchLevel identifies the widest instruction set the kernels may use.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

// String returns the lower-case name of the level.
func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level selected at init.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector register width in bytes for the current level.
func CurrentWidth() int { return currentWidth }

// CurrentName returns a short name for the current level, e.g. "avx2".
func CurrentName() string { return currentName }

// NoSimdEnv reports whether SIMD has been disabled through HWY_NO_SIMD.
func NoSimdEnv() bool {
	v := os.Getenv("HWY_NO_SIMD")
	return v != "" && v != "0"
}

// ForceScalar switches every kernel to its scalar path for the rest of the
// process. It is meant to be called during start-up, before any kernel runs.
func ForceScalar() {
	setScalarMode()
}

// MaxLanes64 returns how many float64 values fit in one vector register at
// the current level.
func MaxLanes64() int {
	return currentWidth / 8
}
