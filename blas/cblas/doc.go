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

// Package cblas registers a blas.Backend named "cblas" that calls a
// system CBLAS directly through cgo.
//
// On darwin it links Apple's Accelerate framework and needs only cgo.
// On linux it links OpenBLAS and is enabled with the cblas build tag:
//
//	go build -tags cblas ./...
//
// Without cgo, or on linux without the tag, the package is empty and
// importing it registers nothing.
package cblas
