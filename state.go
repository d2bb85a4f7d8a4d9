/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package probename

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/builder"
	"dirpx.dev/probename/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.res = s.bld.BuildResolver(s.cfg, s.reg, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("probename: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("probename: builder returned nil resolver")
)

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the published snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store; never
// mutate fields of a published state.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg and pres mark layers set explicitly; pinned layers are not
	// rebuilt on configuration or builder changes.
	preg bool
	pres bool
}

// update derives the next snapshot from the current one under buildMu.
// edit mutates a private copy; rebuild asks for unpinned layers to be
// rebuilt through the (possibly new) builder.
func update(rebuild bool, edit func(next *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	edit(&next)

	if rebuild {
		if !next.preg {
			next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
		}
		if !next.pres {
			next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
		}
	}

	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&next)
}

// SetAll replaces every component in one step. Nil arguments leave the
// corresponding component to the builder (reg, res) or unchanged (cfg, bld).
// Explicit reg and res are pinned; nil ones unpin their layer.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	update(false, func(next *state) {
		old := *next
		if cfg != nil {
			next.cfg = *cfg
		}
		if bld != nil {
			next.bld = bld
		}
		next.reg, next.preg = reg, reg != nil
		if reg == nil {
			next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
		}
		next.res, next.pres = res, res != nil
		if res == nil {
			next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
		}
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds unpinned layers.
func SetConfig(cfg apis.Config) {
	update(true, func(next *state) { next.cfg = cfg })
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the resolver
// unless it is pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(false, func(next *state) {
		next.reg, next.preg = reg, true
		if !next.pres {
			next.res = next.bld.BuildResolver(next.cfg, reg, next.res)
		}
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(false, func(next *state) { next.res, next.pres = res, true })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder swaps the builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(true, func(next *state) { next.bld = b })
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next rebuild replace the registry.
func UnpinRegistry() {
	update(false, func(next *state) { next.preg = false })
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next rebuild replace the resolver.
func UnpinResolver() {
	update(false, func(next *state) { next.pres = false })
}
