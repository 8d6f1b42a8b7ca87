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

package blas

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/internal/cpuinfo"
)

// Describe returns a human-readable, multi-line description of the build
// and runtime environment: module version, active backend, SIMD dispatch
// level and host details. It is meant for diagnostics and bug reports.
func Describe() string {
	var sb strings.Builder
	sb.WriteString("hwyblas configuration:\n")
	fmt.Fprintf(&sb, "Version: %s\n", moduleVersion())
	fmt.Fprintf(&sb, "Go: %s\n", runtime.Version())
	backend := Current()
	fmt.Fprintf(&sb, "Backend: %s\n", backend.Name())
	if nb, ok := backend.(*Native); ok {
		fmt.Fprintf(&sb, "Max parallelism: %d\n", nb.MaxParallelism())
	}
	fmt.Fprintf(&sb, "Registered backends: %s\n", strings.Join(Backends(), ", "))
	fmt.Fprintf(&sb, "SIMD dispatch: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	if features := cpuinfo.Enabled(); len(features) > 0 {
		fmt.Fprintf(&sb, "CPU features: %s\n", strings.Join(features, " "))
	}
	fmt.Fprintf(&sb, "Debug assertions: %t\n", debugAssertions)
	fmt.Fprintf(&sb, "Operating system: %s\n", runtime.GOOS)
	fmt.Fprintf(&sb, "Architecture: %s\n", runtime.GOARCH)
	fmt.Fprintf(&sb, "CPUs: %d\n", runtime.NumCPU())
	return sb.String()
}

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	const path = "github.com/ajroetker/hwyblas"
	if info.Main.Path == path {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}
