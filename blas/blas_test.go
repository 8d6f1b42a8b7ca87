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

package blas_test

import (
	"errors"
	"math"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwyblas/blas"
	"github.com/ajroetker/hwyblas/blas/blastest"
)

func TestNative(t *testing.T) {
	blastest.TestBackend(t, blas.NewNative(1))
}

func TestNativeParallel(t *testing.T) {
	b := blas.NewNative(4)
	defer b.Close()
	blastest.TestBackend(t, b)
}

func TestNativeAfterClose(t *testing.T) {
	b := blas.NewNative(4)
	b.Close()
	b.Close()
	blastest.TestBackend(t, b)
}

func TestNativeCloseWhileRunning(t *testing.T) {
	b := blas.NewNative(4)
	ops := blas.With(b)

	// 96³ multiply-adds is above the serial threshold, so products use the pool.
	const n = 96
	eye := make([]float64, n*n)
	for i := range n {
		eye[i+i*n] = 1
	}
	want := make([]float64, n*n)
	for i := range want {
		want[i] = float64(i % 13)
	}

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			for range 5 {
				c := make([]float64, n*n)
				ops.MatMat(blas.NoTrans, blas.NoTrans, n, n, n, eye, want, 1, 0, c)
				if !slices.Equal(want, c) {
					return errors.New("product changed across Close")
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		b.Close()
		return nil
	})
	require.NoError(t, g.Wait())

	c := make([]float32, n*n)
	ops.MatMat32(blas.NoTrans, blas.NoTrans, n, n, n, narrow(eye), narrow(want), 1, 0, c)
	require.Equal(t, narrow(want), c)
}

func TestConfigureNative(t *testing.T) {
	t.Cleanup(func() {
		blas.ConfigureNative(runtime.GOMAXPROCS(0))
		blas.Use(nil)
	})

	first := blas.ConfigureNative(3)
	require.Equal(t, 3, first.MaxParallelism())
	require.Same(t, first, blas.ConfigureNative(3), "same limit must keep the backend")

	blas.Use(first)
	second := blas.ConfigureNative(5)
	require.NotSame(t, first, second)
	require.Equal(t, 5, second.MaxParallelism())
	require.Same(t, second, blas.Current(), "replacement must be installed when the old one was active")
	registered, ok := blas.Lookup(blas.NativeName)
	require.True(t, ok)
	require.Same(t, second, registered)
	require.Same(t, second, blas.With(second).Backend())

	// The replaced backend is closed but still computes.
	y := []float64{1, 1}
	blas.With(first).MatVec(blas.NoTrans, 2, 2, []float64{1, 2, 3, 4}, 1, []float64{1, 1}, 1, y)
	require.Equal(t, []float64{5, 7}, y)
}

// stub records the name only; every operation forwards to a serial native
// backend.
type stub struct {
	*blas.Native
	name string
}

func (s stub) Name() string { return s.name }

func TestRegistry(t *testing.T) {
	t.Cleanup(func() { blas.Use(nil) })

	require.Equal(t, blas.NativeName, blas.Current().Name())
	require.Contains(t, blas.Backends(), blas.NativeName)

	blas.Register(stub{blas.NewNative(1), "registry-test"})
	b, ok := blas.Lookup("registry-test")
	require.True(t, ok)
	require.Equal(t, "registry-test", b.Name())

	names := blas.Backends()
	require.IsNonDecreasing(t, names)
	require.Contains(t, names, "registry-test")

	got, ok := blas.UseNamed("registry-test")
	require.True(t, ok)
	require.Equal(t, "registry-test", got.Name())
	require.Equal(t, "registry-test", blas.Current().Name())

	blas.Use(nil)
	require.Equal(t, blas.NativeName, blas.Current().Name())
}

func TestUseNamedFallback(t *testing.T) {
	t.Cleanup(func() { blas.Use(nil) })

	b, ok := blas.UseNamed("no-such-backend")
	require.False(t, ok)
	require.Equal(t, blas.NativeName, b.Name())
	require.Equal(t, blas.NativeName, blas.Current().Name())

	b, ok = blas.UseNamed("")
	require.True(t, ok)
	require.Equal(t, blas.NativeName, b.Name())
}

func TestLookupMissing(t *testing.T) {
	_, ok := blas.Lookup("missing")
	require.False(t, ok)
}

func TestTranspose(t *testing.T) {
	require.Equal(t, blas.Transpose(111), blas.NoTrans)
	require.Equal(t, blas.Transpose(112), blas.Trans)
	require.Equal(t, blas.Trans, blas.NewTranspose(true))
	require.Equal(t, blas.NoTrans, blas.NewTranspose(false))
	require.True(t, blas.Trans.IsTrans())
	require.False(t, blas.NoTrans.IsTrans())
	require.False(t, blas.Transpose(113).IsTrans())
	require.Equal(t, "Trans", blas.Trans.String())
	require.Equal(t, "NoTrans", blas.Transpose(0).String())
}

func TestLeadingDims(t *testing.T) {
	require.Equal(t, 3, blas.MatVecLeadingDim(blas.NoTrans, 3, 5))
	require.Equal(t, 5, blas.MatVecLeadingDim(blas.Trans, 3, 5))

	tests := []struct {
		ta, tb        blas.Transpose
		lda, ldb, ldc int
	}{
		{blas.NoTrans, blas.NoTrans, 2, 4, 2},
		{blas.Trans, blas.NoTrans, 4, 4, 2},
		{blas.NoTrans, blas.Trans, 2, 3, 2},
		{blas.Trans, blas.Trans, 4, 3, 2},
	}
	for _, tt := range tests {
		lda, ldb, ldc := blas.MatMatLeadingDims(tt.ta, tt.tb, 2, 3, 4)
		require.Equal(t, []int{tt.lda, tt.ldb, tt.ldc}, []int{lda, ldb, ldc}, "%v/%v", tt.ta, tt.tb)
	}
}

func TestUnknownTransposeIsNoTrans(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6} // 2x3
	x := []float64{1, 1, 1}
	want := make([]float64, 2)
	got := make([]float64, 2)
	blas.MatVec(blas.NoTrans, 2, 3, a, 1, x, 0, want)
	blas.MatVec(blas.Transpose(0), 2, 3, a, 1, x, 0, got)
	require.Equal(t, []float64{9, 12}, want)
	require.Equal(t, want, got)
}

func TestPackageFunctions(t *testing.T) {
	x := []float64{1, 2, 3}
	blas.ScaleInPlace(x, 3, 2)
	require.Equal(t, []float64{2, 4, 6}, x)

	y := []float64{1, 1, 1}
	blas.ScaledAdd(x, 3, 0.5, y)
	require.Equal(t, []float64{2, 3, 4}, y)

	sum := make([]float64, 3)
	blas.ElementwiseAdd(x, y, 3, sum)
	require.Equal(t, []float64{4, 7, 10}, sum)
	blas.ElementwiseSub(sum, y, 3, sum)
	require.Equal(t, x, sum)

	require.Equal(t, 0.0, blas.DotProduct([]float64{1, 0}, []float64{0, 1}, 2))
	require.Equal(t, 5.0, blas.Norm2([]float64{3, 4}, 2))
	require.True(t, math.IsNaN(blas.Norm2([]float64{1, math.NaN()}, 2)))
	require.True(t, math.IsInf(blas.Norm2([]float64{1, math.Inf(-1)}, 2), 1))

	blas.ScaleTo(3, []float64{1, 2}, 2, y)
	require.Equal(t, []float64{3, 6, 4}, y)
	blas.AddScalar(1, []float64{1, 2}, 2, y)
	require.Equal(t, []float64{2, 3, 4}, y)

	c := make([]float64, 1)
	blas.MatMat(blas.Trans, blas.NoTrans, 1, 1, 3, []float64{1, 2, 3}, []float64{4, 5, 6}, 1, 0, c)
	require.Equal(t, []float64{32}, c)
}

func TestPackageFunctions32(t *testing.T) {
	x := []float32{1, 2, 3}
	blas.ScaleInPlace32(x, 3, 2)
	require.Equal(t, []float32{2, 4, 6}, x)

	y := []float32{1, 1, 1}
	blas.ScaledAdd32(x, 3, 0.5, y)
	require.Equal(t, []float32{2, 3, 4}, y)

	sum := make([]float32, 3)
	blas.ElementwiseAdd32(x, y, 3, sum)
	require.Equal(t, []float32{4, 7, 10}, sum)
	blas.ElementwiseSub32(sum, y, 3, sum)
	require.Equal(t, x, sum)

	require.Equal(t, float32(32), blas.DotProduct32([]float32{1, 2, 3}, []float32{4, 5, 6}, 3))
	require.Equal(t, float32(5), blas.Norm2_32([]float32{3, 4}, 2))
	require.True(t, math.IsInf(float64(blas.Norm2_32([]float32{1, float32(math.Inf(-1))}, 2)), 1))

	blas.ScaleTo32(3, []float32{1, 2}, 2, y)
	require.Equal(t, []float32{3, 6, 4}, y)
	blas.AddScalar32(1, []float32{1, 2}, 2, y)
	require.Equal(t, []float32{2, 3, 4}, y)

	v := make([]float32, 2)
	blas.MatVec32(blas.NoTrans, 2, 2, []float32{1, 2, 3, 4}, 1, []float32{1, 1}, 0, v)
	require.Equal(t, []float32{4, 6}, v)

	c := make([]float32, 1)
	blas.MatMat32(blas.Trans, blas.NoTrans, 1, 1, 3, []float32{1, 2, 3}, []float32{4, 5, 6}, 1, 0, c)
	require.Equal(t, []float32{32}, c)
}

func narrow(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}

func TestDescribe(t *testing.T) {
	d := blas.Describe()
	require.True(t, strings.HasPrefix(d, "hwyblas configuration:\n"))
	for _, field := range []string{"Version:", "Backend: native", "Registered backends:", "SIMD dispatch:", "Architecture:"} {
		require.Contains(t, d, field)
	}
}

func TestConcurrentUse(t *testing.T) {
	b := blas.NewNative(4)
	defer b.Close()
	ops := blas.With(b)

	const m, n, k = 80, 70, 60
	a := make([]float64, m*k)
	bm := make([]float64, k*n)
	for i := range a {
		a[i] = float64(i%7) - 3
	}
	for i := range bm {
		bm[i] = float64(i%5) - 2
	}
	want := make([]float64, m*n)
	blas.With(blas.NewNative(1)).MatMat(blas.NoTrans, blas.NoTrans, m, n, k, a, bm, 1, 0, want)

	var g errgroup.Group
	results := make([][]float64, 8)
	for i := range results {
		g.Go(func() error {
			c := make([]float64, m*n)
			ops.MatMat(blas.NoTrans, blas.NoTrans, m, n, k, a, bm, 1, 0, c)
			x := make([]float64, 1000)
			for j := range x {
				x[j] = float64(j)
			}
			ops.ScaleInPlace(x, len(x), 2)
			results[i] = c
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, got := range results {
		require.Equal(t, want, got, "goroutine %d", i)
	}
}

func BenchmarkMatMat(b *testing.B) {
	const n = 128
	a := make([]float64, n*n)
	bm := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i%13) * 0.1
		bm[i] = float64(i%11) * 0.1
	}
	for b.Loop() {
		blas.MatMat(blas.NoTrans, blas.NoTrans, n, n, n, a, bm, 1, 0, c)
	}
}
