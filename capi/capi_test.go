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
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/internal/config"
)

func ptr(s []float64) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

func TestVector(t *testing.T) {
	require.Nil(t, vector(nil, 4))
	x := []float64{1, 2, 3}
	require.Nil(t, vector(ptr(x), 0))
	require.Nil(t, vector(ptr(x), -1))

	v := vector(ptr(x), 2)
	require.Equal(t, []float64{1, 2}, v)
	v[0] = 9
	require.Equal(t, 9.0, x[0], "vector must alias caller memory")
}

func TestMatVecBoundary(t *testing.T) {
	// A = [[1 3 5] [2 4 6]] stored column-major.
	a := []float64{1, 2, 3, 4, 5, 6}
	x := []float64{1, 1, 1}
	y := []float64{math.NaN(), math.NaN()}
	matVec(int(blas.NoTrans), 2, 3, ptr(a), 1, ptr(x), 0, ptr(y))
	require.Equal(t, []float64{9, 12}, y)

	// Stored 3x2, used as its 2x3 transpose.
	y = []float64{1, 1}
	matVec(int(blas.Trans), 2, 3, ptr(a), 1, ptr(x), 1, ptr(y))
	require.Equal(t, []float64{1 + 1 + 2 + 3, 1 + 4 + 5 + 6}, y)

	// An unknown flag means no transpose.
	y = make([]float64, 2)
	matVec(7, 2, 3, ptr(a), 1, ptr(x), 0, ptr(y))
	require.Equal(t, []float64{9, 12}, y)
}

func TestMatMatBoundary(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	matMat(int(blas.NoTrans), int(blas.NoTrans), 2, 2, 2, ptr(a), ptr(b), 1, 0, ptr(c))
	require.Equal(t, []float64{23, 34, 31, 46}, c)

	// k == 0 scales C by beta.
	matMat(int(blas.NoTrans), int(blas.NoTrans), 2, 2, 0, nil, nil, 1, 2, ptr(c))
	require.Equal(t, []float64{46, 68, 62, 92}, c)
}

func ptr32(s []float32) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

func TestVector32(t *testing.T) {
	require.Nil(t, vector32(nil, 4))
	x := []float32{1, 2, 3}
	require.Nil(t, vector32(ptr32(x), 0))

	v := vector32(ptr32(x), 3)
	v[2] = 9
	require.Equal(t, []float32{1, 2, 9}, x)
}

func TestMatVec32Boundary(t *testing.T) {
	nan := float32(math.NaN())
	a := []float32{1, 2, 3, 4, 5, 6}
	x := []float32{1, 1, 1}
	y := []float32{nan, nan}
	matVec32(int(blas.NoTrans), 2, 3, ptr32(a), 1, ptr32(x), 0, ptr32(y))
	require.Equal(t, []float32{9, 12}, y)

	y = []float32{1, 1}
	matVec32(int(blas.Trans), 2, 3, ptr32(a), 1, ptr32(x), 1, ptr32(y))
	require.Equal(t, []float32{7, 16}, y)
}

func TestMatMat32Boundary(t *testing.T) {
	nan := float32(math.NaN())
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	c := []float32{nan, nan, nan, nan}
	matMat32(int(blas.NoTrans), int(blas.NoTrans), 2, 2, 2, ptr32(a), ptr32(b), 1, 0, ptr32(c))
	require.Equal(t, []float32{23, 34, 31, 46}, c)

	// Aᵀ B with A = [[1 3] [2 4]].
	matMat32(int(blas.Trans), int(blas.NoTrans), 2, 2, 2, ptr32(a), ptr32(b), 1, 0, ptr32(c))
	require.Equal(t, []float32{17, 39, 23, 53}, c)

	matMat32(int(blas.NoTrans), int(blas.NoTrans), 2, 2, 0, nil, nil, 1, 0.5, ptr32(c))
	require.Equal(t, []float32{8.5, 19.5, 11.5, 26.5}, c)
}

func TestDescribeInto(t *testing.T) {
	need := describeInto(nil, 0)
	require.Greater(t, need, 1)

	buf := make([]byte, need)
	require.Equal(t, need, describeInto(unsafe.Pointer(&buf[0]), len(buf)))
	require.Equal(t, byte(0), buf[need-1])
	require.True(t, strings.HasPrefix(string(buf[:need-1]), "hwyblas configuration:"))

	small := make([]byte, 8)
	require.Equal(t, need, describeInto(unsafe.Pointer(&small[0]), len(small)))
	require.Equal(t, "hwyblas", string(small[:7]))
	require.Equal(t, byte(0), small[7])
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { blas.Use(nil) })

	cfg := config.Default()
	cfg.Backend = "gonum"
	cfg.MaxParallelism = 2
	setup(cfg)
	require.Equal(t, "gonum", blas.Current().Name())

	cfg.Backend = "does-not-exist"
	setup(cfg)
	require.Equal(t, blas.NativeName, blas.Current().Name())
	native, ok := blas.Current().(*blas.Native)
	require.True(t, ok)
	require.Equal(t, 2, native.MaxParallelism())

	// Same limit keeps the installed native backend.
	setup(cfg)
	require.Same(t, native, blas.Current())

	require.False(t, useBackend("does-not-exist"))
	require.True(t, useBackend(""))
}
