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
package blastest

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/hwyblas/blas"
)

// approx32 allows for float32 accumulation over the short inner
// dimensions used below.
var approx32 = cmpopts.EquateApprox(1e-5, 1e-5)

func compare32(what string, want, got []float32, opts ...cmp.Option) error {
	if len(opts) == 0 {
		opts = []cmp.Option{approx32}
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		return fmt.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
	return nil
}

func narrow(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func sample32(n int, seed uint64) []float32 {
	return narrow(sample(n, seed))
}

func scale32(ops blas.Ops) error {
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	ops.ScaleInPlace32(x, 9, 2)
	if err := compare32("ScaleInPlace32", []float32{2, 4, 6, 8, 10, 12, 14, 16, 18}, x, cmp.Options{}); err != nil {
		return err
	}
	for _, alpha := range []float32{3, 0.1} {
		y := sample32(33, 1)
		want := append([]float32(nil), y...)
		ops.ScaleInPlace32(y, 33, alpha)
		ops.ScaleInPlace32(y, 33, 1/alpha)
		if err := compare32(fmt.Sprintf("alpha=%v", alpha), want, y); err != nil {
			return err
		}
	}
	return nil
}

func scaledAdd32(ops blas.Ops) error {
	x := []float32{1, 2, 3, 4, 5}
	y := []float32{10, 20, 30, 40, 50}
	ops.ScaledAdd32(x, 5, -2, y)
	if err := compare32("y", []float32{8, 16, 24, 32, 40}, y); err != nil {
		return err
	}
	return compare32("x unchanged", []float32{1, 2, 3, 4, 5}, x)
}

func elementwiseAliasing32(ops blas.Ops) error {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float32{9, 8, 7, 6, 5, 4, 3, 2, 1}
	ops.ElementwiseAdd32(a, b, len(a), a)
	if err := compare32("y aliases a", []float32{10, 10, 10, 10, 10, 10, 10, 10, 10}, a); err != nil {
		return err
	}
	ops.ElementwiseSub32(a, b, len(a), b)
	if err := compare32("y aliases b", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, b); err != nil {
		return err
	}
	out := make([]float32, 9)
	ops.ElementwiseSub32(a, b, 9, out)
	if err := compare32("distinct y", []float32{9, 8, 7, 6, 5, 4, 3, 2, 1}, out); err != nil {
		return err
	}
	c := []float32{1, 2, 3}
	ops.ElementwiseAdd32(c, c, 3, c)
	return compare32("all aliased", []float32{2, 4, 6}, c)
}

func dot32(ops blas.Ops) error {
	if got := ops.DotProduct32([]float32{1, 2, 3}, []float32{4, 5, 6}, 3); got != 32 {
		return fmt.Errorf("Dot32([1 2 3], [4 5 6]) = %v, want 32", got)
	}
	for _, n := range []int{1, 7, 16, 100} {
		x := sample32(n, uint64(5*n))
		d := float64(ops.DotProduct32(x, x, n))
		nrm := float64(ops.Norm2_32(x, n))
		if math.Abs(d-nrm*nrm) > 1e-5*math.Max(1, d) {
			return fmt.Errorf("n=%d: Dot32(x, x) = %v, Norm2_32(x)^2 = %v", n, d, nrm*nrm)
		}
	}
	return nil
}

func norm2_32(ops blas.Ops) error {
	if got := ops.Norm2_32([]float32{3, 4}, 2); got != 5 {
		return fmt.Errorf("Norm2_32([3 4]) = %v, want 5", got)
	}
	big := []float32{3e30, 4e30}
	if got := ops.Norm2_32(big, 2); math.Abs(float64(got)-5e30) > 1e-6*5e30 {
		return fmt.Errorf("Norm2_32(%v) = %v, want 5e30", big, got)
	}
	small := []float32{3e-30, 4e-30}
	if got := ops.Norm2_32(small, 2); math.Abs(float64(got)-5e-30) > 1e-6*5e-30 {
		return fmt.Errorf("Norm2_32(%v) = %v, want 5e-30", small, got)
	}
	return nil
}

func scaleTo32(ops blas.Ops) error {
	x := []float32{1, -2, 3}
	y := []float32{7, 7, 7}
	ops.ScaleTo32(3, x, 3, y)
	if err := compare32("alpha=3", []float32{3, -6, 9}, y); err != nil {
		return err
	}
	nan := narrow(filled(3, math.NaN()))
	ops.ScaleTo32(0, nan, 3, y)
	return compare32("alpha=0", []float32{0, 0, 0}, y)
}

func addScalar32(ops blas.Ops) error {
	x := []float32{1, 2, 3, 4, 5}
	ops.AddScalar32(0.5, x, 5, x)
	return compare32("in place", []float32{1.5, 2.5, 3.5, 4.5, 5.5}, x)
}

func zeroLength32(ops blas.Ops) error {
	var empty []float32
	ops.ScaleInPlace32(empty, 0, 2)
	ops.ScaledAdd32(empty, 0, 2, empty)
	ops.ElementwiseAdd32(empty, empty, 0, empty)
	ops.ElementwiseSub32(empty, empty, 0, empty)
	ops.ScaleTo32(2, empty, 0, empty)
	ops.AddScalar32(2, empty, 0, empty)
	if got := ops.DotProduct32(empty, empty, 0); got != 0 {
		return fmt.Errorf("DotProduct32(n=0) = %v, want 0", got)
	}
	if got := ops.Norm2_32(empty, 0); got != 0 {
		return fmt.Errorf("Norm2_32(n=0) = %v, want 0", got)
	}
	ops.MatVec32(blas.Trans, 0, 0, empty, 1, empty, 0, empty)
	ops.MatMat32(blas.NoTrans, blas.Trans, 0, 0, 0, empty, empty, 1, 0, empty)
	return nil
}

func matVec32(ops blas.Ops) error {
	shapes := [][2]int{{1, 1}, {3, 2}, {2, 3}, {7, 5}, {16, 9}, {4, 33}}
	for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans} {
		for _, s := range shapes {
			m, n := s[0], s[1]
			a := sample32(m*n, uint64(m*100+n))
			x := sample32(n, 7)
			y := sample32(m, 8)
			want := narrow(refMatVec(tr, m, n, widen(a), 1.5, widen(x), -0.5, widen(y)))
			ops.MatVec32(tr, m, n, a, 1.5, x, -0.5, y)
			if err := compare32(fmt.Sprintf("%v %dx%d", tr, m, n), want, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func matVec32BetaZero(ops blas.Ops) error {
	const m, n = 4, 3
	for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans} {
		a := sample32(m*n, 21)
		x := sample32(n, 22)
		y := narrow(filled(m, math.NaN()))
		want := narrow(refMatVec(tr, m, n, widen(a), 2, widen(x), 0, nil))
		ops.MatVec32(tr, m, n, a, 2, x, 0, y)
		if err := compare32(tr.String(), want, y); err != nil {
			return err
		}
	}
	return nil
}

func matMat32(ops blas.Ops) error {
	shapes := [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 2, 3}, {9, 4, 6}, {17, 10, 13}}
	trans := []blas.Transpose{blas.NoTrans, blas.Trans}
	for _, ta := range trans {
		for _, tb := range trans {
			for _, s := range shapes {
				m, n, k := s[0], s[1], s[2]
				a := sample32(m*k, uint64(m*k+1))
				b := sample32(k*n, uint64(k*n+2))
				c := sample32(m*n, uint64(m*n+3))
				want := narrow(refMatMat(ta, tb, m, n, k, widen(a), widen(b), 0.75, 1.25, widen(c)))
				ops.MatMat32(ta, tb, m, n, k, a, b, 0.75, 1.25, c)
				name := fmt.Sprintf("%v/%v %dx%dx%d", ta, tb, m, n, k)
				if err := compare32(name, want, c, cmpopts.EquateApprox(1e-4, 1e-5)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func matMat32BetaZero(ops blas.Ops) error {
	const m, n, k = 3, 4, 2
	trans := []blas.Transpose{blas.NoTrans, blas.Trans}
	for _, ta := range trans {
		for _, tb := range trans {
			a := sample32(m*k, 31)
			b := sample32(k*n, 32)
			c := narrow(filled(m*n, math.NaN()))
			want := narrow(refMatMat(ta, tb, m, n, k, widen(a), widen(b), 1, 0, nil))
			ops.MatMat32(ta, tb, m, n, k, a, b, 1, 0, c)
			if err := compare32(fmt.Sprintf("%v/%v", ta, tb), want, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func matMat32EmptyInner(ops blas.Ops) error {
	c := []float32{1, 2, 3, 4}
	ops.MatMat32(blas.NoTrans, blas.NoTrans, 2, 2, 0, nil, nil, 1, 3, c)
	if err := compare32("beta=3", []float32{3, 6, 9, 12}, c); err != nil {
		return err
	}
	y := narrow(filled(3, math.NaN()))
	ops.MatVec32(blas.Trans, 3, 0, nil, 1, nil, 0, y)
	return compare32("MatVec32 beta=0", []float32{0, 0, 0}, y)
}
