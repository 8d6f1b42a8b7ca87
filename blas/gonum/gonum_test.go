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

package gonum_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	gonumblas "gonum.org/v1/gonum/blas/gonum"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/blastest"
	"github.com/ajroetker/hwyblas/blas/gonum"
)

func TestGonum(t *testing.T) {
	blastest.TestBackend(t, gonum.New("gonum-test", gonumblas.Implementation{}))
}

func TestRegistered(t *testing.T) {
	t.Cleanup(func() { blas.Use(nil) })

	b, ok := blas.UseNamed(gonum.Name)
	require.True(t, ok)
	require.Equal(t, gonum.Name, b.Name())
	require.IsType(t, gonumblas.Implementation{}, b.(*gonum.Backend).Implementation())

	y := make([]float64, 2)
	// A = [[1 3] [2 4]] column-major.
	blas.MatVec(blas.Trans, 2, 2, []float64{1, 2, 3, 4}, 1, []float64{1, 1}, 0, y)
	require.Equal(t, []float64{3, 7}, y)
}
