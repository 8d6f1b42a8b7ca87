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

package matmul

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/hwyblas/hwy/contrib/workerpool"
)

var gemmApprox = cmpopts.EquateApprox(1e-9, 1e-12)

// storedShape returns the stored rows and columns of op(X) = rows x cols.
func storedShape(trans bool, rows, cols int) (int, int) {
	if trans {
		return cols, rows
	}
	return rows, cols
}

func seq(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

func TestGemm64ThreeByThree(t *testing.T) {
	// Column-major 3x3 integer matrices.
	a := []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}  // rows [1 2 3] [4 5 6] [7 8 9]
	b := []float64{9, 6, 3, 8, 5, 2, 7, 4, 1}  // rows [9 8 7] [6 5 4] [3 2 1]
	want := []float64{30, 84, 138, 24, 69, 114, 18, 54, 90}
	c := make([]float64, 9)

	Gemm64(false, false, 3, 3, 3, 1, a, 3, b, 3, 0, c, 3)
	if diff := cmp.Diff(want, c, gemmApprox); diff != "" {
		t.Errorf("Gemm64 mismatch (-want +got):\n%s", diff)
	}
}

func TestGemm64MatchesReference(t *testing.T) {
	shapes := []struct{ m, n, k int }{
		{1, 1, 1}, {2, 3, 4}, {4, 3, 2}, {5, 1, 7}, {1, 6, 3}, {9, 17, 5}, {3, 3, 0},
	}
	coeffs := []struct{ alpha, beta float64 }{{1, 0}, {2, 1}, {-1, 0.5}, {0, 2}}
	for _, s := range shapes {
		for _, c := range coeffs {
			for _, tA := range []bool{false, true} {
				for _, tB := range []bool{false, true} {
					name := fmt.Sprintf("%dx%dx%d/a=%v,b=%v/tA=%v,tB=%v", s.m, s.n, s.k, c.alpha, c.beta, tA, tB)
					t.Run(name, func(t *testing.T) {
						ra, ca := storedShape(tA, s.m, s.k)
						rb, cb := storedShape(tB, s.k, s.n)
						lda, ldb, ldc := max(1, ra)+1, max(1, rb)+2, s.m+1
						a := seq(lda*ca, func(i int) float64 { return float64(i%7) - 3 })
						b := seq(ldb*cb, func(i int) float64 { return float64(i%5) - 2 })
						got := seq(ldc*s.n, func(i int) float64 { return float64(i % 3) })
						want := append([]float64(nil), got...)

						gemmScalar(tA, tB, s.m, s.n, s.k, c.alpha, a, lda, b, ldb, c.beta, want, ldc)
						Gemm64(tA, tB, s.m, s.n, s.k, c.alpha, a, lda, b, ldb, c.beta, got, ldc)

						if diff := cmp.Diff(want, got, gemmApprox); diff != "" {
							t.Errorf("mismatch (-want +got):\n%s", diff)
						}
					})
				}
			}
		}
	}
}

func TestGemm64BetaZeroIgnoresC(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{1, 2, 3, 4}
	c := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	Gemm64(false, false, 2, 2, 2, 1, a, 2, b, 2, 0, c, 2)
	if diff := cmp.Diff(b, c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGemm64Panics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"bad lda", func() { Gemm64(false, false, 2, 2, 2, 1, make([]float64, 4), 1, make([]float64, 4), 2, 0, make([]float64, 4), 2) }},
		{"bad ldb trans", func() { Gemm64(false, true, 2, 3, 2, 1, make([]float64, 4), 2, make([]float64, 6), 2, 0, make([]float64, 6), 2) }},
		{"short c", func() { Gemm64(false, false, 2, 2, 2, 1, make([]float64, 4), 2, make([]float64, 4), 2, 0, make([]float64, 3), 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.run()
		})
	}
}

func TestParallelGemm64(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	testCases := []struct {
		name    string
		m, n, k int
		tA, tB  bool
	}{
		{"64x64x64", 64, 64, 64, false, false},
		{"96x130x70/tA", 96, 130, 70, true, false},
		{"33x200x50/tB", 33, 200, 50, false, true},
		{"80x80x80/tAtB", 80, 80, 80, true, true},
		{"10x7x3/narrow", 10, 7, 3, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ra, ca := storedShape(tc.tA, tc.m, tc.k)
			rb, cb := storedShape(tc.tB, tc.k, tc.n)
			a := seq(ra*ca, func(i int) float64 { return float64(i%7 - 3) })
			b := seq(rb*cb, func(i int) float64 { return float64(i%5 - 2) })
			cRef := make([]float64, tc.m*tc.n)
			cPar := seq(tc.m*tc.n, func(int) float64 { return math.NaN() })

			gemmScalar(tc.tA, tc.tB, tc.m, tc.n, tc.k, 1, a, ra, b, rb, 0, cRef, tc.m)
			ParallelGemm64(pool, tc.tA, tc.tB, tc.m, tc.n, tc.k, 1, a, ra, b, rb, 0, cPar, tc.m)

			if diff := cmp.Diff(cRef, cPar, gemmApprox); diff != "" {
				t.Errorf("ParallelGemm64 mismatch (-want +got):\n%s", diff)
			}

			cAuto := make([]float64, tc.m*tc.n)
			GemmAuto64(pool, tc.tA, tc.tB, tc.m, tc.n, tc.k, 1, a, ra, b, rb, 0, cAuto, tc.m)
			if diff := cmp.Diff(cRef, cAuto, gemmApprox); diff != "" {
				t.Errorf("GemmAuto64 mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGemmAuto64NilPool(t *testing.T) {
	a := seq(16, func(i int) float64 { return float64(i) })
	b := seq(16, func(i int) float64 { return float64(16 - i) })
	want := make([]float64, 16)
	got := make([]float64, 16)
	gemmScalar(false, false, 4, 4, 4, 1, a, 4, b, 4, 0, want, 4)
	GemmAuto64(nil, false, false, 4, 4, 4, 1, a, 4, b, 4, 0, got, 4)
	if diff := cmp.Diff(want, got, gemmApprox); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGemm32(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, tc := range []struct {
		m, n, k int
		tA, tB  bool
	}{
		{3, 3, 3, false, false},
		{7, 9, 5, true, false},
		{64, 80, 70, false, true},
		{80, 80, 80, true, true},
	} {
		t.Run(fmt.Sprintf("%dx%dx%d/tA=%v/tB=%v", tc.m, tc.n, tc.k, tc.tA, tc.tB), func(t *testing.T) {
			ra, ca := storedShape(tc.tA, tc.m, tc.k)
			rb, cb := storedShape(tc.tB, tc.k, tc.n)
			a := make([]float32, ra*ca)
			for i := range a {
				a[i] = float32(i%7 - 3)
			}
			b := make([]float32, rb*cb)
			for i := range b {
				b[i] = float32(i%5 - 2)
			}
			want := make([]float32, tc.m*tc.n)
			for i := range want {
				want[i] = float32(i % 3)
			}
			serial := append([]float32(nil), want...)
			auto := append([]float32(nil), want...)

			gemmScalar(tc.tA, tc.tB, tc.m, tc.n, tc.k, 2, a, ra, b, rb, -1, want, tc.m)
			Gemm32(tc.tA, tc.tB, tc.m, tc.n, tc.k, 2, a, ra, b, rb, -1, serial, tc.m)
			GemmAuto32(pool, tc.tA, tc.tB, tc.m, tc.n, tc.k, 2, a, ra, b, rb, -1, auto, tc.m)

			if diff := cmp.Diff(want, serial); diff != "" {
				t.Errorf("Gemm32 mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(want, auto); diff != "" {
				t.Errorf("GemmAuto32 mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParallelGemm32BetaZeroIgnoresC(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	const n = 24
	a := make([]float32, n*n)
	for i := range n {
		a[i+i*n] = 1
	}
	b := make([]float32, n*n)
	for i := range b {
		b[i] = float32(i)
	}
	c := make([]float32, n*n)
	for i := range c {
		c[i] = float32(math.NaN())
	}
	ParallelGemm32(pool, false, false, n, n, n, 1, a, n, b, n, 0, c, n)
	if diff := cmp.Diff(b, c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkGemm64(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, size := range []int{32, 128, 256} {
		a := seq(size*size, func(i int) float64 { return float64(i % 7) })
		bm := seq(size*size, func(i int) float64 { return float64(i % 5) })
		c := make([]float64, size*size)
		flops := 2 * int64(size) * int64(size) * int64(size)

		b.Run(fmt.Sprintf("serial/%d", size), func(b *testing.B) {
			b.SetBytes(flops)
			for b.Loop() {
				Gemm64(false, false, size, size, size, 1, a, size, bm, size, 0, c, size)
			}
		})
		b.Run(fmt.Sprintf("auto/%d", size), func(b *testing.B) {
			b.SetBytes(flops)
			for b.Loop() {
				GemmAuto64(pool, false, false, size, size, size, 1, a, size, bm, size, 0, c, size)
			}
		})
	}
}
