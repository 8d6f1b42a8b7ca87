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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/internal/cpuinfo"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features, SIMD dispatch and registered backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeInfo(cmd.OutOrStdout())
			return nil
		},
	}
}

var title = cases.Title(language.English)

func section(w io.Writer, name string) {
	heading := title.String(name)
	fmt.Fprintf(w, "\n%s\n%s\n", heading, strings.Repeat("-", len(heading)))
}

func writeInfo(w io.Writer) {
	section(w, "processor features")
	features := cpuinfo.Features()
	if len(features) == 0 {
		fmt.Fprintln(w, "  (no feature table for this architecture)")
	}
	for _, f := range features {
		mark := "-"
		if f.Present {
			mark = "+"
		}
		fmt.Fprintf(w, "  %s %-10s %s\n", mark, f.Name, f.Note)
	}

	section(w, "simd dispatch")
	fmt.Fprintf(w, "  level:   %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "  target:  %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "  width:   %d bytes (%d x float64)\n", hwy.CurrentWidth(), hwy.MaxLanes64())
	fmt.Fprintf(w, "  forced scalar: %t\n", hwy.NoSimdEnv())

	section(w, "backends")
	active := blas.Current().Name()
	lines := lo.Map(blas.Backends(), func(name string, _ int) string {
		if name == active {
			return "  * " + name + " (active)"
		}
		return "    " + name
	})
	fmt.Fprintln(w, strings.Join(lines, "\n"))

	section(w, "configuration")
	fmt.Fprint(w, blas.Describe())
}
