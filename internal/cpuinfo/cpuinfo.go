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

// Package cpuinfo reports the CPU features detected by golang.org/x/sys/cpu
// that matter to the float64 kernels.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the relevant features for the running architecture, in
// a stable order. It returns nil on architectures without a feature table.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	}
	return nil
}

// Enabled returns the names of the features that are present.
func Enabled() []string {
	var names []string
	for _, f := range Features() {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	return names
}

func arm64Features() []Feature {
	return []Feature{
		{"asimd", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"fp", cpu.ARM64.HasFP, "floating point"},
		{"fphp", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"asimdhp", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"asimdfhm", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"sve", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"sve2", cpu.ARM64.HasSVE2, "SVE2"},
		{"atomics", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"sse2", cpu.X86.HasSSE2, "baseline"},
		{"sse41", cpu.X86.HasSSE41, ""},
		{"sse42", cpu.X86.HasSSE42, ""},
		{"avx", cpu.X86.HasAVX, ""},
		{"avx2", cpu.X86.HasAVX2, "4 x float64 kernels"},
		{"fma", cpu.X86.HasFMA, "fused multiply-add"},
		{"avx512f", cpu.X86.HasAVX512F, "8 x float64 kernels"},
		{"avx512bw", cpu.X86.HasAVX512BW, ""},
		{"avx512vl", cpu.X86.HasAVX512VL, ""},
	}
}
