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

//go:build cgo && (darwin || cblas)

package cblas_test

import (
	"testing"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/blastest"
	"github.com/ajroetker/hwyblas/blas/cblas"
)

func TestCBLAS(t *testing.T) {
	blastest.TestBackend(t, cblas.Backend{})
}

func TestRegistered(t *testing.T) {
	b, ok := blas.Lookup(cblas.Name)
	if !ok {
		t.Fatalf("backend %q not registered; have %v", cblas.Name, blas.Backends())
	}
	if _, ok := b.(cblas.Backend); !ok {
		t.Errorf("Lookup(%q) = %T, want cblas.Backend", cblas.Name, b)
	}
}

func TestShortSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dgemm with short C did not panic")
		}
	}()
	a := make([]float64, 4)
	cblas.Backend{}.Dgemm(blas.NoTrans, blas.NoTrans, 2, 2, 2, 1, a, 2, a, 2, 0, make([]float64, 3), 2)
}

func TestShortSlicePanics32(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sgemv with short A did not panic")
		}
	}()
	cblas.Backend{}.Sgemv(blas.NoTrans, 3, 2, 1, make([]float32, 5), 3, make([]float32, 2), 0, make([]float32, 3))
}
