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

// Package vec provides level-1 vector kernels: in-place scaling, scaled
// copy, axpy, scalar add and elementwise add/sub. Every kernel comes in a
// float64 form (Scale64, ...) and a float32 form (Scale32, ...).
//
// Every function operates on the first n elements, where n is the shortest
// relevant slice length, and is a no-op for n == 0.
//
// # Aliasing
//
// The destination of Add, Sub, ScaleTo and AddConst (either width) may be the
// same slice as one of the inputs. Each element is read before the element at
// the same index is written, and no index is read after it has been written, on
// every code path (scalar, AVX2 and AVX-512).
//
// # Build Requirements
//
// The SIMD implementations require GOEXPERIMENT=simd on amd64. Other builds
// use the scalar kernels.
package vec
