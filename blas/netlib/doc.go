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

// Package netlib registers a blas.Backend named "netlib" that calls the
// system CBLAS (OpenBLAS, Accelerate, MKL) through gonum's netlib
// bindings. It also installs that implementation as the process-wide
// blas64 implementation so gonum code in the same binary shares it.
//
// The backend needs cgo and the netlib build tag; without them the
// package is empty. Point CGO_LDFLAGS at the CBLAS library:
//
//	CGO_LDFLAGS="-lopenblas" go build -tags netlib ./...
package netlib
