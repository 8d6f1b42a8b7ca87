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

// Package blastest checks that a blas.Backend honors the contract of the
// blas primitives. Backend packages call TestBackend from their tests:
//
//	func TestGonum(t *testing.T) {
//		blastest.TestBackend(t, gonum.New("gonum", gonumblas.Implementation{}))
//	}
package blastest

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/hwyblas/blas"
)

// Property is one named check run against a backend.
type Property struct {
	Name  string
	Check func(ops blas.Ops) error
}

// TestBackend runs every property against b as a subtest.
func TestBackend(t *testing.T, b blas.Backend) {
	t.Helper()
	ops := blas.With(b)
	for _, p := range Properties() {
		t.Run(p.Name, func(t *testing.T) {
			if err := p.Check(ops); err != nil {
				t.Errorf("%s: %v", b.Name(), err)
			}
		})
	}
}

// Properties returns the full property list.
func Properties() []Property {
	return []Property{
		{"ScaleConcrete", scaleConcrete},
		{"ScaleRoundTrip", scaleRoundTrip},
		{"ScaledAdd", scaledAdd},
		{"AddSubRoundTrip", addSubRoundTrip},
		{"ElementwiseAliasing", elementwiseAliasing},
		{"DotOrthogonal", dotOrthogonal},
		{"DotMatchesNorm", dotMatchesNorm},
		{"Norm2Concrete", norm2Concrete},
		{"Norm2Extremes", norm2Extremes},
		{"ScaleTo", scaleTo},
		{"AddScalar", addScalar},
		{"ZeroLength", zeroLength},
		{"MatVecIdentity", matVecIdentity},
		{"MatVecTranspose", matVecTranspose},
		{"MatVecBetaZeroIgnoresNaN", matVecBetaZero},
		{"MatVecEmptyInner", matVecEmptyInner},
		{"MatMatSquare", matMatSquare},
		{"MatMatTransposes", matMatTransposes},
		{"MatMatBetaZeroIgnoresNaN", matMatBetaZero},
		{"MatMatEmptyInner", matMatEmptyInner},
		{"MatMatLarge", matMatLarge},
		{"Scale32", scale32},
		{"ScaledAdd32", scaledAdd32},
		{"ElementwiseAliasing32", elementwiseAliasing32},
		{"Dot32", dot32},
		{"Norm2_32", norm2_32},
		{"ScaleTo32", scaleTo32},
		{"AddScalar32", addScalar32},
		{"ZeroLength32", zeroLength32},
		{"MatVec32", matVec32},
		{"MatVec32BetaZeroIgnoresNaN", matVec32BetaZero},
		{"MatMat32", matMat32},
		{"MatMat32BetaZeroIgnoresNaN", matMat32BetaZero},
		{"MatMat32EmptyInner", matMat32EmptyInner},
	}
}

var approx = cmpopts.EquateApprox(1e-12, 1e-12)

func compare(what string, want, got []float64, opts ...cmp.Option) error {
	if len(opts) == 0 {
		opts = []cmp.Option{approx}
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		return fmt.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
	return nil
}

// sample returns n deterministic values in [-1, 1) with a fixed seed.
func sample(n int, seed uint64) []float64 {
	out := make([]float64, n)
	s := seed*6364136223846793005 + 1442695040888963407
	for i := range out {
		s = s*6364136223846793005 + 1442695040888963407
		out[i] = float64(s>>11)/float64(1<<53)*2 - 1
	}
	return out
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func scaleConcrete(ops blas.Ops) error {
	x := []float64{1, 2, 3}
	ops.ScaleInPlace(x, 3, 2)
	return compare("ScaleInPlace", []float64{2, 4, 6}, x, cmpopts.EquateEmpty())
}

func scaleRoundTrip(ops blas.Ops) error {
	for _, alpha := range []float64{4, 3, 0.1, -7} {
		for _, n := range []int{1, 3, 4, 7, 8, 17, 64, 1001} {
			x := sample(n, uint64(n))
			want := append([]float64(nil), x...)
			ops.ScaleInPlace(x, n, alpha)
			ops.ScaleInPlace(x, n, 1/alpha)
			if err := compare(fmt.Sprintf("alpha=%v n=%d", alpha, n), want, x); err != nil {
				return err
			}
		}
	}
	// Only the first n elements are touched.
	x := []float64{1, 1, 1, 1}
	ops.ScaleInPlace(x, 2, 3)
	return compare("prefix", []float64{3, 3, 1, 1}, x)
}

func scaledAdd(ops blas.Ops) error {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 20, 30, 40, 50}
	ops.ScaledAdd(x, 5, -2, y)
	if err := compare("y", []float64{8, 16, 24, 32, 40}, y); err != nil {
		return err
	}
	return compare("x unchanged", []float64{1, 2, 3, 4, 5}, x)
}

func addSubRoundTrip(ops blas.Ops) error {
	for _, n := range []int{1, 5, 16, 33, 257} {
		a := sample(n, 11)
		b := sample(n, 12)
		sum := make([]float64, n)
		back := make([]float64, n)
		ops.ElementwiseAdd(a, b, n, sum)
		ops.ElementwiseSub(sum, b, n, back)
		if err := compare(fmt.Sprintf("n=%d", n), a, back); err != nil {
			return err
		}
	}
	return nil
}

func elementwiseAliasing(ops blas.Ops) error {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	ops.ElementwiseAdd(a, b, len(a), a)
	if err := compare("y aliases a", filled(9, 10), a); err != nil {
		return err
	}
	ops.ElementwiseSub(a, b, len(a), b)
	if err := compare("y aliases b", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, b); err != nil {
		return err
	}
	c := []float64{1, 2, 3}
	ops.ElementwiseAdd(c, c, 3, c)
	return compare("all aliased", []float64{2, 4, 6}, c)
}

func dotOrthogonal(ops blas.Ops) error {
	if got := ops.DotProduct([]float64{1, 0}, []float64{0, 1}, 2); got != 0 {
		return fmt.Errorf("Dot(e1, e2) = %v, want 0", got)
	}
	if got := ops.DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6}, 3); got != 32 {
		return fmt.Errorf("Dot([1 2 3], [4 5 6]) = %v, want 32", got)
	}
	return nil
}

func dotMatchesNorm(ops blas.Ops) error {
	for _, n := range []int{1, 2, 7, 16, 100, 1000} {
		x := sample(n, uint64(3*n))
		d := ops.DotProduct(x, x, n)
		nrm := ops.Norm2(x, n)
		if math.Abs(d-nrm*nrm) > 1e-9*math.Max(1, d) {
			return fmt.Errorf("n=%d: Dot(x, x) = %v, Norm2(x)^2 = %v", n, d, nrm*nrm)
		}
	}
	return nil
}

func norm2Concrete(ops blas.Ops) error {
	if got := ops.Norm2([]float64{3, 4}, 2); got != 5 {
		return fmt.Errorf("Norm2([3 4]) = %v, want 5", got)
	}
	if got := ops.Norm2([]float64{0, 0, 0}, 3); got != 0 {
		return fmt.Errorf("Norm2(0) = %v, want 0", got)
	}
	if got := ops.Norm2([]float64{-2}, 1); got != 2 {
		return fmt.Errorf("Norm2([-2]) = %v, want 2", got)
	}
	return nil
}

func norm2Extremes(ops blas.Ops) error {
	big := []float64{3e200, 4e200}
	if got := ops.Norm2(big, 2); math.Abs(got-5e200) > 1e-12*5e200 {
		return fmt.Errorf("Norm2(%v) = %v, want 5e200", big, got)
	}
	small := []float64{3e-200, 4e-200}
	if got := ops.Norm2(small, 2); math.Abs(got-5e-200) > 1e-12*5e-200 {
		return fmt.Errorf("Norm2(%v) = %v, want 5e-200", small, got)
	}
	return nil
}

func scaleTo(ops blas.Ops) error {
	x := []float64{1, -2, 3}
	y := filled(3, 7)
	ops.ScaleTo(3, x, 3, y)
	if err := compare("alpha=3", []float64{3, -6, 9}, y); err != nil {
		return err
	}
	ops.ScaleTo(1, x, 3, y)
	if err := compare("alpha=1", x, y); err != nil {
		return err
	}
	nan := filled(3, math.NaN())
	ops.ScaleTo(0, nan, 3, y)
	if err := compare("alpha=0", []float64{0, 0, 0}, y); err != nil {
		return err
	}
	ops.ScaleTo(-1, x, 3, x)
	return compare("in place", []float64{-1, 2, -3}, x)
}

func addScalar(ops blas.Ops) error {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, 5)
	ops.AddScalar(0.5, x, 5, y)
	if err := compare("y", []float64{1.5, 2.5, 3.5, 4.5, 5.5}, y); err != nil {
		return err
	}
	ops.AddScalar(-1, x, 5, x)
	return compare("in place", []float64{0, 1, 2, 3, 4}, x)
}

func zeroLength(ops blas.Ops) error {
	var empty []float64
	ops.ScaleInPlace(empty, 0, 2)
	ops.ScaledAdd(empty, 0, 2, empty)
	ops.ElementwiseAdd(empty, empty, 0, empty)
	ops.ElementwiseSub(empty, empty, 0, empty)
	ops.ScaleTo(2, empty, 0, empty)
	ops.AddScalar(2, empty, 0, empty)
	if got := ops.DotProduct(empty, empty, 0); got != 0 {
		return fmt.Errorf("DotProduct(n=0) = %v, want 0", got)
	}
	if got := ops.Norm2(empty, 0); got != 0 {
		return fmt.Errorf("Norm2(n=0) = %v, want 0", got)
	}
	ops.MatVec(blas.NoTrans, 0, 0, empty, 1, empty, 0, empty)
	ops.MatMat(blas.NoTrans, blas.NoTrans, 0, 0, 0, empty, empty, 1, 0, empty)
	return nil
}

// refMatVec evaluates y = alpha*op(A)*x + beta*y straight from the
// column-major layout with the leading dimension of MatVec.
func refMatVec(trans blas.Transpose, m, n int, a []float64, alpha float64, x []float64, beta float64, y []float64) []float64 {
	lda := blas.MatVecLeadingDim(trans, m, n)
	out := make([]float64, m)
	for i := range m {
		var s float64
		for j := range n {
			var aij float64
			if trans.IsTrans() {
				aij = a[i*lda+j]
			} else {
				aij = a[j*lda+i]
			}
			s += aij * x[j]
		}
		out[i] = alpha * s
		if beta != 0 {
			out[i] += beta * y[i]
		}
	}
	return out
}

// refMatMat evaluates C = alpha*op(A)*op(B) + beta*C straight from the
// column-major layout with the leading dimensions of MatMat.
func refMatMat(transa, transb blas.Transpose, m, n, k int, a, b []float64, alpha, beta float64, c []float64) []float64 {
	lda, ldb, ldc := blas.MatMatLeadingDims(transa, transb, m, n, k)
	out := make([]float64, m*n)
	for j := range n {
		for i := range m {
			var s float64
			for p := range k {
				var aip, bpj float64
				if transa.IsTrans() {
					aip = a[i*lda+p]
				} else {
					aip = a[p*lda+i]
				}
				if transb.IsTrans() {
					bpj = b[p*ldb+j]
				} else {
					bpj = b[j*ldb+p]
				}
				s += aip * bpj
			}
			out[j*ldc+i] = alpha * s
			if beta != 0 {
				out[j*ldc+i] += beta * c[j*ldc+i]
			}
		}
	}
	return out
}

func matVecIdentity(ops blas.Ops) error {
	const n = 5
	a := make([]float64, n*n)
	for i := range n {
		a[i*n+i] = 1
	}
	x := sample(n, 5)
	y := filled(n, math.NaN())
	ops.MatVec(blas.NoTrans, n, n, a, 1, x, 0, y)
	if diff := cmp.Diff(x, y); diff != "" {
		return fmt.Errorf("I*x mismatch (-want +got):\n%s", diff)
	}
	return nil
}

func matVecTranspose(ops blas.Ops) error {
	shapes := [][2]int{{1, 1}, {3, 2}, {2, 3}, {7, 5}, {16, 9}, {4, 33}}
	for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans} {
		for _, s := range shapes {
			m, n := s[0], s[1]
			a := sample(m*n, uint64(m*100+n))
			x := sample(n, 7)
			y := sample(m, 8)
			want := refMatVec(tr, m, n, a, 1.5, x, -0.5, y)
			ops.MatVec(tr, m, n, a, 1.5, x, -0.5, y)
			if err := compare(fmt.Sprintf("%v %dx%d", tr, m, n), want, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func matVecBetaZero(ops blas.Ops) error {
	for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans} {
		const m, n = 4, 3
		a := sample(m*n, 21)
		x := sample(n, 22)
		y := filled(m, math.NaN())
		want := refMatVec(tr, m, n, a, 2, x, 0, nil)
		ops.MatVec(tr, m, n, a, 2, x, 0, y)
		if err := compare(tr.String(), want, y); err != nil {
			return err
		}
	}
	return nil
}

func matVecEmptyInner(ops blas.Ops) error {
	y := []float64{1, 2, 3}
	ops.MatVec(blas.NoTrans, 3, 0, nil, 1, nil, 2, y)
	if err := compare("beta=2", []float64{2, 4, 6}, y); err != nil {
		return err
	}
	y = filled(3, math.NaN())
	ops.MatVec(blas.Trans, 3, 0, nil, 1, nil, 0, y)
	return compare("beta=0", []float64{0, 0, 0}, y)
}

func matMatSquare(ops blas.Ops) error {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	c := make([]float64, 9)
	ops.MatMat(blas.NoTrans, blas.NoTrans, 3, 3, 3, a, b, 1, 0, c)
	want := []float64{90, 114, 138, 54, 69, 84, 18, 24, 30}
	if err := compare("3x3", want, c, cmpopts.EquateEmpty()); err != nil {
		return err
	}
	return compare("reference", refMatMat(blas.NoTrans, blas.NoTrans, 3, 3, 3, a, b, 1, 0, nil), c)
}

func matMatTransposes(ops blas.Ops) error {
	shapes := [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 2, 3}, {3, 7, 1}, {9, 4, 6}, {17, 10, 13}}
	trans := []blas.Transpose{blas.NoTrans, blas.Trans}
	for _, ta := range trans {
		for _, tb := range trans {
			for _, s := range shapes {
				m, n, k := s[0], s[1], s[2]
				a := sample(m*k, uint64(m*k+1))
				b := sample(k*n, uint64(k*n+2))
				c := sample(m*n, uint64(m*n+3))
				want := refMatMat(ta, tb, m, n, k, a, b, 0.75, 1.25, c)
				ops.MatMat(ta, tb, m, n, k, a, b, 0.75, 1.25, c)
				name := fmt.Sprintf("%v/%v %dx%dx%d", ta, tb, m, n, k)
				if err := compare(name, want, c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func matMatBetaZero(ops blas.Ops) error {
	const m, n, k = 3, 4, 2
	trans := []blas.Transpose{blas.NoTrans, blas.Trans}
	for _, ta := range trans {
		for _, tb := range trans {
			a := sample(m*k, 31)
			b := sample(k*n, 32)
			c := filled(m*n, math.NaN())
			want := refMatMat(ta, tb, m, n, k, a, b, 1, 0, nil)
			ops.MatMat(ta, tb, m, n, k, a, b, 1, 0, c)
			if err := compare(fmt.Sprintf("%v/%v", ta, tb), want, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func matMatEmptyInner(ops blas.Ops) error {
	c := []float64{1, 2, 3, 4}
	ops.MatMat(blas.NoTrans, blas.NoTrans, 2, 2, 0, nil, nil, 1, 3, c)
	if err := compare("beta=3", []float64{3, 6, 9, 12}, c); err != nil {
		return err
	}
	c = filled(4, math.Inf(1))
	ops.MatMat(blas.Trans, blas.Trans, 2, 2, 0, nil, nil, 1, 0, c)
	return compare("beta=0", []float64{0, 0, 0, 0}, c)
}

func matMatLarge(ops blas.Ops) error {
	const m, n, k = 96, 80, 72
	a := sample(m*k, 41)
	b := sample(k*n, 42)
	c := sample(m*n, 43)
	want := refMatMat(blas.NoTrans, blas.Trans, m, n, k, a, b, 1, 0.5, c)
	ops.MatMat(blas.NoTrans, blas.Trans, m, n, k, a, b, 1, 0.5, c)
	return compare("96x80x72", want, c, cmpopts.EquateApprox(1e-10, 1e-10))
}
