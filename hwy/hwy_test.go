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

package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchNEON, "neon"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel().String() = %q", CurrentName(), CurrentLevel().String())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if MaxLanes64() != CurrentWidth()/8 {
		t.Errorf("MaxLanes64() = %d, want %d", MaxLanes64(), CurrentWidth()/8)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"true", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestForceScalar(t *testing.T) {
	level, width, name := currentLevel, currentWidth, currentName
	defer func() { currentLevel, currentWidth, currentName = level, width, name }()

	ForceScalar()
	if CurrentLevel() != DispatchScalar {
		t.Errorf("after ForceScalar: CurrentLevel() = %v, want scalar", CurrentLevel())
	}
	if CurrentName() != "scalar" {
		t.Errorf("after ForceScalar: CurrentName() = %q, want scalar", CurrentName())
	}
}
