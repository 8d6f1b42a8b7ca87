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
	"os"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ajroetker/hwyblas/blas"
	_ "github.com/ajroetker/hwyblas/blas/cblas"
	_ "github.com/ajroetker/hwyblas/blas/gonum"
	_ "github.com/ajroetker/hwyblas/blas/netlib"
	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/internal/config"
)

func init() {
	cfg, err := config.Load()
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("lib", "hwyblas").Logger()
	zerolog.SetGlobalLevel(cfg.Level())
	if err != nil {
		log.Warn().Err(err).Msg("config: using defaults")
	}
	setup(cfg)
	log.Info().
		Str("backend", blas.Current().Name()).
		Int("max_parallelism", cfg.MaxParallelism).
		Str("simd", hwy.CurrentName()).
		Msg("hwyblas: loaded")
}

// setup applies cfg to the process: scalar kernels, the native worker
// count and the active backend.
func setup(cfg config.Config) {
	if cfg.NoSIMD {
		hwy.ForceScalar()
	}
	blas.ConfigureNative(cfg.MaxParallelism)
	useBackend(cfg.Backend)
}

func useBackend(name string) bool {
	_, ok := blas.UseNamed(name)
	return ok
}

// vector views n doubles at p. It returns nil when n <= 0 or p is nil.
func vector(p unsafe.Pointer, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float64)(p), n)
}

// vector32 views n floats at p. It returns nil when n <= 0 or p is nil.
func vector32(p unsafe.Pointer, n int) []float32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float32)(p), n)
}

func matVec(trans, m, n int, a unsafe.Pointer, alpha float64, x unsafe.Pointer, beta float64, y unsafe.Pointer) {
	blas.MatVec(blas.Transpose(trans), m, n, vector(a, m*n), alpha, vector(x, n), beta, vector(y, m))
}

func matMat(transa, transb, m, n, k int, a, b unsafe.Pointer, alpha, beta float64, c unsafe.Pointer) {
	blas.MatMat(blas.Transpose(transa), blas.Transpose(transb), m, n, k,
		vector(a, m*k), vector(b, k*n), alpha, beta, vector(c, m*n))
}

func matVec32(trans, m, n int, a unsafe.Pointer, alpha float32, x unsafe.Pointer, beta float32, y unsafe.Pointer) {
	blas.MatVec32(blas.Transpose(trans), m, n, vector32(a, m*n), alpha, vector32(x, n), beta, vector32(y, m))
}

func matMat32(transa, transb, m, n, k int, a, b unsafe.Pointer, alpha, beta float32, c unsafe.Pointer) {
	blas.MatMat32(blas.Transpose(transa), blas.Transpose(transb), m, n, k,
		vector32(a, m*k), vector32(b, k*n), alpha, beta, vector32(c, m*n))
}

// describeInto copies the Describe report into the size-byte buffer at buf,
// always NUL-terminated when size > 0, and returns len(report)+1.
func describeInto(buf unsafe.Pointer, size int) int {
	report := blas.Describe()
	if buf != nil && size > 0 {
		dst := unsafe.Slice((*byte)(buf), size)
		n := copy(dst[:size-1], report)
		dst[n] = 0
	}
	return len(report) + 1
}
