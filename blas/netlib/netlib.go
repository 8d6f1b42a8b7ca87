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

//go:build cgo && netlib

package netlib

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/gonum"
)

// Name is the registry name of the backend.
const Name = "netlib"

func init() {
	blas32.Use(netlib.Implementation{})
	blas64.Use(netlib.Implementation{})
	blas.Register(New())
	log.Trace().Msg("blas: system CBLAS enabled (netlib)")
}

// New returns the netlib backend.
func New() *gonum.Backend {
	return gonum.New(Name, netlib.Implementation{})
}
