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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/config"
	uref "dirpx.dev/probename/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("probename(registry): nil reflect.Type provided")
	// ErrEmptyClass is returned when an empty class name is provided.
	ErrEmptyClass = errors.New("probename(registry): empty class name provided")
	// ErrInvalidClass is returned for class names that cannot appear in a
	// descriptor (slashes, semicolons, brackets or whitespace).
	ErrInvalidClass = errors.New("probename(registry): invalid class name")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different class name.
	ErrConflictingRegistration = errors.New("probename(registry): conflicting type registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to registered class name.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Register associates the nearest named type of t with the given class.
// It is idempotent for the same (type,class) pair.
func (r *registry) Register(t reflect.Type, class string) error {
	if t == nil {
		return ErrNilType
	}
	if class == "" {
		return ErrEmptyClass
	}
	if strings.ContainsAny(class, "/;[] \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		return conflict(b, old.(string), class)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		return conflict(b, old.(string), class)
	}

	r.m.Store(b, class)
	r.count++
	return nil
}

func conflict(t reflect.Type, old, class string) error {
	if old == class {
		return nil
	}
	return fmt.Errorf("%w: %v is %q, not %q", ErrConflictingRegistration, t, old, class)
}

// Lookup returns the class name for a type if present.
func (r *registry) Lookup(t reflect.Type) (class string, ok bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Class: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
