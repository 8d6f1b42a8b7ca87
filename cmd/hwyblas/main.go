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

// Command hwyblas reports and checks the numerical backends of hwyblas.
//
// Usage:
//
//	hwyblas info                 # CPU features, SIMD dispatch, backends
//	hwyblas check                # run the contract checks on every backend
//	hwyblas bench --size 512     # time a square gemm on every backend
//
// Build with -tags netlib or -tags cblas to include the system CBLAS
// backends.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyblas/blas"
	_ "github.com/ajroetker/hwyblas/blas/cblas"
	_ "github.com/ajroetker/hwyblas/blas/gonum"
	_ "github.com/ajroetker/hwyblas/blas/netlib"
	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	backend string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	root := &cobra.Command{
		Use:          "hwyblas",
		Short:        "Inspect and check the hwyblas numerical backends",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "backend to activate (overrides HWYBLAS_BACKEND)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(newInfoCmd(), newCheckCmd(), newBenchCmd())
	return root
}

// configure applies the environment configuration and the global flags.
func configure(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).With().Timestamp().Logger()
	level := cfg.Level()
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.NoSIMD {
		hwy.ForceScalar()
	}
	blas.ConfigureNative(cfg.MaxParallelism)
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if _, ok := blas.UseNamed(cfg.Backend); !ok {
		return fmt.Errorf("backend %q is not available (have %v)", cfg.Backend, blas.Backends())
	}
	return nil
}
