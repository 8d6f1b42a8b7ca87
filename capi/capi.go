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

// Command capi builds the flat C ABI of hwyblas as a shared library:
//
//	go build -buildmode=c-shared -o libhwyblas.so ./capi
//
// Every function works on caller-owned, column-major, unit-stride buffers
// and never retains them. d-prefixed functions take double buffers and
// s-prefixed functions take float buffers. The backend is chosen once at load time
// from HWYBLAS_CONFIG and the HWYBLAS_* environment variables, and may be
// switched later with hwyblasUseBackend.
package main

import "C"

import (
	"unsafe"

	"github.com/ajroetker/hwyblas/blas"
)

//export dVectorScalarProduct
func dVectorScalarProduct(x *C.double, n C.int, alpha C.double) {
	blas.ScaleInPlace(vector(unsafe.Pointer(x), int(n)), int(n), float64(alpha))
}

//export dScalarVectorAddVector
func dScalarVectorAddVector(x *C.double, n C.int, alpha C.double, y *C.double) {
	blas.ScaledAdd(vector(unsafe.Pointer(x), int(n)), int(n), float64(alpha), vector(unsafe.Pointer(y), int(n)))
}

//export dVectorAdd
func dVectorAdd(a, b *C.double, n C.int, y *C.double) {
	blas.ElementwiseAdd(vector(unsafe.Pointer(a), int(n)), vector(unsafe.Pointer(b), int(n)), int(n), vector(unsafe.Pointer(y), int(n)))
}

//export dVectorSub
func dVectorSub(a, b *C.double, n C.int, y *C.double) {
	blas.ElementwiseSub(vector(unsafe.Pointer(a), int(n)), vector(unsafe.Pointer(b), int(n)), int(n), vector(unsafe.Pointer(y), int(n)))
}

//export dVectorDotProduct
func dVectorDotProduct(x, y *C.double, n C.int) C.double {
	return C.double(blas.DotProduct(vector(unsafe.Pointer(x), int(n)), vector(unsafe.Pointer(y), int(n)), int(n)))
}

//export dVector2Norm
func dVector2Norm(x *C.double, n C.int) C.double {
	return C.double(blas.Norm2(vector(unsafe.Pointer(x), int(n)), int(n)))
}

//export dMatrixVectorProduct
func dMatrixVectorProduct(trans, m, n C.int, a *C.double, alpha C.double, x *C.double, beta C.double, y *C.double) {
	matVec(int(trans), int(m), int(n), unsafe.Pointer(a), float64(alpha), unsafe.Pointer(x), float64(beta), unsafe.Pointer(y))
}

//export dMatrixMatrixProduct
func dMatrixMatrixProduct(transa, transb, m, n, k C.int, a, b *C.double, alpha, beta C.double, c *C.double) {
	matMat(int(transa), int(transb), int(m), int(n), int(k), unsafe.Pointer(a), unsafe.Pointer(b), float64(alpha), float64(beta), unsafe.Pointer(c))
}

//export dVectorScaleTo
func dVectorScaleTo(alpha C.double, x *C.double, n C.int, y *C.double) {
	blas.ScaleTo(float64(alpha), vector(unsafe.Pointer(x), int(n)), int(n), vector(unsafe.Pointer(y), int(n)))
}

//export dVectorAddScalar
func dVectorAddScalar(alpha C.double, x *C.double, n C.int, y *C.double) {
	blas.AddScalar(float64(alpha), vector(unsafe.Pointer(x), int(n)), int(n), vector(unsafe.Pointer(y), int(n)))
}

//export sVectorScalarProduct
func sVectorScalarProduct(x *C.float, n C.int, alpha C.float) {
	blas.ScaleInPlace32(vector32(unsafe.Pointer(x), int(n)), int(n), float32(alpha))
}

//export sScalarVectorAddVector
func sScalarVectorAddVector(x *C.float, n C.int, alpha C.float, y *C.float) {
	blas.ScaledAdd32(vector32(unsafe.Pointer(x), int(n)), int(n), float32(alpha), vector32(unsafe.Pointer(y), int(n)))
}

//export sVectorAdd
func sVectorAdd(a, b *C.float, n C.int, y *C.float) {
	blas.ElementwiseAdd32(vector32(unsafe.Pointer(a), int(n)), vector32(unsafe.Pointer(b), int(n)), int(n), vector32(unsafe.Pointer(y), int(n)))
}

//export sVectorSub
func sVectorSub(a, b *C.float, n C.int, y *C.float) {
	blas.ElementwiseSub32(vector32(unsafe.Pointer(a), int(n)), vector32(unsafe.Pointer(b), int(n)), int(n), vector32(unsafe.Pointer(y), int(n)))
}

//export sVectorDotProduct
func sVectorDotProduct(x, y *C.float, n C.int) C.float {
	return C.float(blas.DotProduct32(vector32(unsafe.Pointer(x), int(n)), vector32(unsafe.Pointer(y), int(n)), int(n)))
}

//export sVector2Norm
func sVector2Norm(x *C.float, n C.int) C.float {
	return C.float(blas.Norm2_32(vector32(unsafe.Pointer(x), int(n)), int(n)))
}

//export sMatrixVectorProduct
func sMatrixVectorProduct(trans, m, n C.int, a *C.float, alpha C.float, x *C.float, beta C.float, y *C.float) {
	matVec32(int(trans), int(m), int(n), unsafe.Pointer(a), float32(alpha), unsafe.Pointer(x), float32(beta), unsafe.Pointer(y))
}

//export sMatrixMatrixProduct
func sMatrixMatrixProduct(transa, transb, m, n, k C.int, a, b *C.float, alpha, beta C.float, c *C.float) {
	matMat32(int(transa), int(transb), int(m), int(n), int(k), unsafe.Pointer(a), unsafe.Pointer(b), float32(alpha), float32(beta), unsafe.Pointer(c))
}

//export sVectorScaleTo
func sVectorScaleTo(alpha C.float, x *C.float, n C.int, y *C.float) {
	blas.ScaleTo32(float32(alpha), vector32(unsafe.Pointer(x), int(n)), int(n), vector32(unsafe.Pointer(y), int(n)))
}

//export sVectorAddScalar
func sVectorAddScalar(alpha C.float, x *C.float, n C.int, y *C.float) {
	blas.AddScalar32(float32(alpha), vector32(unsafe.Pointer(x), int(n)), int(n), vector32(unsafe.Pointer(y), int(n)))
}

// hwyblasUseBackend returns 1 if the named backend was installed and 0 if
// the native backend was installed in its place.
//
//export hwyblasUseBackend
func hwyblasUseBackend(name *C.char) C.int {
	if useBackend(C.GoString(name)) {
		return 1
	}
	return 0
}

// hwyblasDescribe writes the NUL-terminated configuration report into buf,
// truncating to size bytes, and returns the size needed for the whole text.
//
//export hwyblasDescribe
func hwyblasDescribe(buf *C.char, size C.int) C.int {
	return C.int(describeInto(unsafe.Pointer(buf), int(size)))
}

func main() {}
