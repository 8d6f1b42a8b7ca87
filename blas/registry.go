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

package blas

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{}

	active atomic.Pointer[activeBackend]
)

type activeBackend struct {
	Backend
}

func init() {
	native := NewNative(runtime.GOMAXPROCS(0))
	registry[NativeName] = native
	active.Store(&activeBackend{native})
}

// Register adds b to the registry under b.Name(), replacing any backend of
// the same name. Backends call it from init. Registering does not make b
// active; see Use and UseNamed.
func Register(b Backend) {
	registryMu.Lock()
	registry[b.Name()] = b
	registryMu.Unlock()
	log.Trace().Str("backend", b.Name()).Msg("blas: registered backend")
}

// ConfigureNative makes the registered native backend use at most
// maxParallelism goroutines per matrix product and returns it. A native
// backend that already has that limit is kept. Otherwise a new one is
// registered, installed if the old one was active, and the old one is
// closed.
func ConfigureNative(maxParallelism int) *Native {
	registryMu.Lock()
	old, _ := registry[NativeName].(*Native)
	if old != nil && old.MaxParallelism() == max(1, maxParallelism) {
		registryMu.Unlock()
		return old
	}
	native := NewNative(maxParallelism)
	registry[NativeName] = native
	registryMu.Unlock()

	if old == nil {
		return native
	}
	if cur := active.Load(); cur.Backend == Backend(old) {
		active.CompareAndSwap(cur, &activeBackend{native})
	}
	old.Close()
	log.Trace().Int("maxParallelism", native.MaxParallelism()).Msg("blas: replaced native backend")
	return native
}

// Lookup returns the registered backend called name.
func Lookup(name string) (Backend, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := registry[name]
	return b, ok
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	names := lo.Keys(registry)
	registryMu.RUnlock()
	slices.Sort(names)
	return names
}

// Use makes b the backend for all subsequent primitive calls. It is safe
// to call concurrently with the primitives; calls already running finish
// on the previous backend.
func Use(b Backend) {
	if b == nil {
		b = defaultBackend()
	}
	active.Store(&activeBackend{b})
}

// UseNamed activates the registered backend called name and returns it.
// An empty name selects the native backend. An unknown name logs a warning
// and falls back to the native backend; ok reports whether the requested
// backend was installed.
func UseNamed(name string) (b Backend, ok bool) {
	if name == "" {
		name = NativeName
	}
	b, ok = Lookup(name)
	if !ok {
		log.Warn().
			Str("requested", name).
			Strs("available", Backends()).
			Msg("blas: backend not available, falling back to native")
		b = defaultBackend()
	}
	Use(b)
	log.Debug().Str("backend", b.Name()).Msg("blas: backend active")
	return b, ok
}

// Current returns the active backend.
func Current() Backend {
	return active.Load().Backend
}

func defaultBackend() Backend {
	b, _ := Lookup(NativeName)
	return b
}
