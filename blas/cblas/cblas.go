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

package cblas

/*
#cgo darwin CFLAGS: -DACCELERATE -DACCELERATE_NEW_LAPACK
#cgo darwin LDFLAGS: -framework Accelerate
#cgo linux LDFLAGS: -lopenblas

#ifdef ACCELERATE
#include <Accelerate/Accelerate.h>
#else
#include <cblas.h>
#endif

// Wrappers take plain ints for the enums; CBLAS enum types differ between
// Accelerate and OpenBLAS headers.

static void hb_dscal(int n, double alpha, double* x) {
	cblas_dscal(n, alpha, x, 1);
}

static void hb_daxpy(int n, double alpha, const double* x, double* y) {
	cblas_daxpy(n, alpha, x, 1, y, 1);
}

static double hb_ddot(int n, const double* x, const double* y) {
	return cblas_ddot(n, x, 1, y, 1);
}

static double hb_dnrm2(int n, const double* x) {
	return cblas_dnrm2(n, x, 1);
}

static void hb_dadd(int n, const double* a, const double* b, double* y) {
#ifdef ACCELERATE
	vDSP_vaddD(a, 1, b, 1, y, 1, (vDSP_Length)n);
#else
	for (int i = 0; i < n; i++) y[i] = a[i] + b[i];
#endif
}

// vDSP_vsubD subtracts its first operand from its second.
static void hb_dsub(int n, const double* a, const double* b, double* y) {
#ifdef ACCELERATE
	vDSP_vsubD(b, 1, a, 1, y, 1, (vDSP_Length)n);
#else
	for (int i = 0; i < n; i++) y[i] = a[i] - b[i];
#endif
}

static void hb_dgemv(int trans, int m, int n, double alpha, const double* a, int lda,
                     const double* x, double beta, double* y) {
	cblas_dgemv(CblasColMajor, trans == CblasTrans ? CblasTrans : CblasNoTrans,
		m, n, alpha, a, lda, x, 1, beta, y, 1);
}

static void hb_dgemm(int transa, int transb, int m, int n, int k, double alpha,
                     const double* a, int lda, const double* b, int ldb,
                     double beta, double* c, int ldc) {
	cblas_dgemm(CblasColMajor,
		transa == CblasTrans ? CblasTrans : CblasNoTrans,
		transb == CblasTrans ? CblasTrans : CblasNoTrans,
		m, n, k, alpha, a, lda, b, ldb, beta, c, ldc);
}

static void hb_sscal(int n, float alpha, float* x) {
	cblas_sscal(n, alpha, x, 1);
}

static void hb_saxpy(int n, float alpha, const float* x, float* y) {
	cblas_saxpy(n, alpha, x, 1, y, 1);
}

static float hb_sdot(int n, const float* x, const float* y) {
	return cblas_sdot(n, x, 1, y, 1);
}

static float hb_snrm2(int n, const float* x) {
	return cblas_snrm2(n, x, 1);
}

static void hb_sadd(int n, const float* a, const float* b, float* y) {
#ifdef ACCELERATE
	vDSP_vadd(a, 1, b, 1, y, 1, (vDSP_Length)n);
#else
	for (int i = 0; i < n; i++) y[i] = a[i] + b[i];
#endif
}

static void hb_ssub(int n, const float* a, const float* b, float* y) {
#ifdef ACCELERATE
	vDSP_vsub(b, 1, a, 1, y, 1, (vDSP_Length)n);
#else
	for (int i = 0; i < n; i++) y[i] = a[i] - b[i];
#endif
}

static void hb_sgemv(int trans, int m, int n, float alpha, const float* a, int lda,
                     const float* x, float beta, float* y) {
	cblas_sgemv(CblasColMajor, trans == CblasTrans ? CblasTrans : CblasNoTrans,
		m, n, alpha, a, lda, x, 1, beta, y, 1);
}

static void hb_sgemm(int transa, int transb, int m, int n, int k, float alpha,
                     const float* a, int lda, const float* b, int ldb,
                     float beta, float* c, int ldc) {
	cblas_sgemm(CblasColMajor,
		transa == CblasTrans ? CblasTrans : CblasNoTrans,
		transb == CblasTrans ? CblasTrans : CblasNoTrans,
		m, n, k, alpha, a, lda, b, ldb, beta, c, ldc);
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/ajroetker/hwyblas/blas"
)

// Name is the registry name of the backend.
const Name = "cblas"

func init() {
	blas.Register(Backend{})
	log.Trace().Str("os", runtime.GOOS).Msg("blas: system CBLAS enabled (cgo)")
}

// Backend calls cblas_d* and cblas_s* with CblasColMajor. The zero value is ready to
// use.
type Backend struct{}

var _ blas.Backend = Backend{}

func ptr(s []float64) *C.double {
	return (*C.double)(unsafe.Pointer(unsafe.SliceData(s)))
}

func ptr32(s []float32) *C.float {
	return (*C.float)(unsafe.Pointer(unsafe.SliceData(s)))
}

func (Backend) Name() string { return Name }

func (Backend) Dscal(n int, alpha float64, x []float64) {
	_ = x[n-1]
	C.hb_dscal(C.int(n), C.double(alpha), ptr(x))
}

func (Backend) Daxpy(n int, alpha float64, x, y []float64) {
	_, _ = x[n-1], y[n-1]
	C.hb_daxpy(C.int(n), C.double(alpha), ptr(x), ptr(y))
}

func (Backend) Dadd(n int, a, b, y []float64) {
	_, _, _ = a[n-1], b[n-1], y[n-1]
	C.hb_dadd(C.int(n), ptr(a), ptr(b), ptr(y))
}

func (Backend) Dsub(n int, a, b, y []float64) {
	_, _, _ = a[n-1], b[n-1], y[n-1]
	C.hb_dsub(C.int(n), ptr(a), ptr(b), ptr(y))
}

func (Backend) Ddot(n int, x, y []float64) float64 {
	_, _ = x[n-1], y[n-1]
	return float64(C.hb_ddot(C.int(n), ptr(x), ptr(y)))
}

func (Backend) Dnrm2(n int, x []float64) float64 {
	_ = x[n-1]
	return float64(C.hb_dnrm2(C.int(n), ptr(x)))
}

func (Backend) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	checkGemv(tA, m, n, len(a), lda, len(x), len(y))
	C.hb_dgemv(C.int(tA), C.int(m), C.int(n), C.double(alpha), ptr(a), C.int(lda),
		ptr(x), C.double(beta), ptr(y))
}

func (Backend) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	checkGemm(tA, tB, m, n, k, len(a), lda, len(b), ldb, len(c), ldc)
	C.hb_dgemm(C.int(tA), C.int(tB), C.int(m), C.int(n), C.int(k), C.double(alpha),
		ptr(a), C.int(lda), ptr(b), C.int(ldb), C.double(beta), ptr(c), C.int(ldc))
}

func (Backend) Sscal(n int, alpha float32, x []float32) {
	_ = x[n-1]
	C.hb_sscal(C.int(n), C.float(alpha), ptr32(x))
}

func (Backend) Saxpy(n int, alpha float32, x, y []float32) {
	_, _ = x[n-1], y[n-1]
	C.hb_saxpy(C.int(n), C.float(alpha), ptr32(x), ptr32(y))
}

func (Backend) Sadd(n int, a, b, y []float32) {
	_, _, _ = a[n-1], b[n-1], y[n-1]
	C.hb_sadd(C.int(n), ptr32(a), ptr32(b), ptr32(y))
}

func (Backend) Ssub(n int, a, b, y []float32) {
	_, _, _ = a[n-1], b[n-1], y[n-1]
	C.hb_ssub(C.int(n), ptr32(a), ptr32(b), ptr32(y))
}

func (Backend) Sdot(n int, x, y []float32) float32 {
	_, _ = x[n-1], y[n-1]
	return float32(C.hb_sdot(C.int(n), ptr32(x), ptr32(y)))
}

func (Backend) Snrm2(n int, x []float32) float32 {
	_ = x[n-1]
	return float32(C.hb_snrm2(C.int(n), ptr32(x)))
}

func (Backend) Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32) {
	checkGemv(tA, m, n, len(a), lda, len(x), len(y))
	C.hb_sgemv(C.int(tA), C.int(m), C.int(n), C.float(alpha), ptr32(a), C.int(lda),
		ptr32(x), C.float(beta), ptr32(y))
}

func (Backend) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	checkGemm(tA, tB, m, n, k, len(a), lda, len(b), ldb, len(c), ldc)
	C.hb_sgemm(C.int(tA), C.int(tB), C.int(m), C.int(n), C.int(k), C.float(alpha),
		ptr32(a), C.int(lda), ptr32(b), C.int(ldb), C.float(beta), ptr32(c), C.int(ldc))
}

// checkGemv panics unless the slice lengths cover the stored m x n matrix
// and both vectors.
func checkGemv(tA blas.Transpose, m, n, lenA, lda, lenX, lenY int) {
	wantX, wantY := n, m
	if tA.IsTrans() {
		wantX, wantY = m, n
	}
	if lenA < lda*(n-1)+m {
		panic("cblas: A slice too short")
	}
	if lenX < wantX || lenY < wantY {
		panic("cblas: vector slice too short")
	}
}

func checkGemm(tA, tB blas.Transpose, m, n, k, lenA, lda, lenB, ldb, lenC, ldc int) {
	rowsA, colsA := m, k
	if tA.IsTrans() {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if tB.IsTrans() {
		rowsB, colsB = n, k
	}
	if lenA < lda*(colsA-1)+rowsA {
		panic("cblas: A slice too short")
	}
	if lenB < ldb*(colsB-1)+rowsB {
		panic("cblas: B slice too short")
	}
	if lenC < ldc*(n-1)+m {
		panic("cblas: C slice too short")
	}
}
