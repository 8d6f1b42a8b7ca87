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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyblas/blas"
)

type benchOptions struct {
	size  int
	count int
	only  []string
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a square matrix product on each backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size < 1 || opts.count < 1 {
				return fmt.Errorf("--size and --count must be positive")
			}
			names, err := selectBackends(opts.only)
			if err != nil {
				return err
			}
			runBench(cmd.OutOrStdout(), names, opts.size, opts.count)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.size, "size", 256, "matrix dimension n for an n x n x n product")
	cmd.Flags().IntVar(&opts.count, "count", 5, "timed repetitions per backend; the fastest is reported")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "benchmark only these backends")
	return cmd
}

func runBench(w io.Writer, names []string, n, count int) {
	a := make([]float64, n*n)
	b := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i%17)*0.125 - 1
		b[i] = float64(i%13)*0.25 - 1.5
	}
	flops := 2 * float64(n) * float64(n) * float64(n)

	fmt.Fprintf(w, "%-8s %12s %10s\n", "backend", "best", "GFLOP/s")
	for _, name := range names {
		be, ok := blas.Lookup(name)
		if !ok {
			continue
		}
		ops := blas.With(be)
		ops.MatMat(blas.NoTrans, blas.NoTrans, n, n, n, a, b, 1, 0, c)
		best := time.Duration(1<<63 - 1)
		for range count {
			start := time.Now()
			ops.MatMat(blas.NoTrans, blas.NoTrans, n, n, n, a, b, 1, 0, c)
			best = min(best, time.Since(start))
		}
		gflops := flops / max(best.Seconds(), 1e-9) / 1e9
		fmt.Fprintf(w, "%-8s %12s %10.2f\n", name, best.Round(time.Microsecond), gflops)
	}
}
