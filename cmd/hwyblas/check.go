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
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/blastest"
)

func newCheckCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the contract checks against registered backends",
		Long: `Runs every contract property (scaling, add/sub round trips, dot and norm
agreement, transposed products, beta == 0 handling) against each backend and
exits non-zero if any backend fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := selectBackends(only)
			if err != nil {
				return err
			}
			return runChecks(cmd.Context(), cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "check only these backends")
	return cmd
}

// selectBackends returns the registered names, restricted to only when it
// is non-empty.
func selectBackends(only []string) ([]string, error) {
	names := blas.Backends()
	if len(only) == 0 {
		return names, nil
	}
	if missing := lo.Without(only, names...); len(missing) > 0 {
		return nil, fmt.Errorf("unknown backends %v (have %v)", missing, names)
	}
	return lo.Uniq(only), nil
}

type checkResult struct {
	backend  string
	failures []string
}

func runChecks(ctx context.Context, w io.Writer, names []string) error {
	results := make([]checkResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			b, ok := blas.Lookup(name)
			if !ok {
				return fmt.Errorf("backend %q vanished from the registry", name)
			}
			results[i] = checkBackend(ctx, blas.With(b))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	properties := len(blastest.Properties())
	failed := 0
	for _, r := range results {
		if len(r.failures) == 0 {
			fmt.Fprintf(w, "ok    %-8s %d properties\n", r.backend, properties)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %-8s %d of %d properties\n", r.backend, len(r.failures), properties)
		for _, f := range r.failures {
			fmt.Fprintf(w, "      %s\n", f)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d backends failed", failed, len(results))
	}
	return nil
}

func checkBackend(ctx context.Context, ops blas.Ops) checkResult {
	r := checkResult{backend: ops.Backend().Name()}
	for _, p := range blastest.Properties() {
		if ctx.Err() != nil {
			r.failures = append(r.failures, ctx.Err().Error())
			break
		}
		if err := runProperty(p, ops); err != nil {
			r.failures = append(r.failures, fmt.Sprintf("%s: %v", p.Name, err))
		}
	}
	return r
}

func runProperty(p blastest.Property, ops blas.Ops) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return p.Check(ops)
}
