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

package netlib_test

import (
	"testing"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/blastest"
	"github.com/ajroetker/hwyblas/blas/netlib"
)

func TestNetlib(t *testing.T) {
	blastest.TestBackend(t, netlib.New())
}

func TestRegistered(t *testing.T) {
	if _, ok := blas.Lookup(netlib.Name); !ok {
		t.Fatalf("backend %q not registered; have %v", netlib.Name, blas.Backends())
	}
}
