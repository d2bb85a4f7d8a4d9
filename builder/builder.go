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
package builder

import (
	"reflect"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/registry"
	"dirpx.dev/probename/resolver"
	"dirpx.dev/probename/strategy"
)

// ErrorClass is the class the Go error interface is registered under, so
// that kept error results encode as a throwable rather than the fallback.
const ErrorClass = "java.lang.Throwable"

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a registry for cfg. Entries of prev are copied over
// first; the error interface is then registered as ErrorClass unless prev
// already named it.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Class)
		}
	}
	_ = nreg.Register(reflect.TypeOf((*error)(nil)).Elem(), ErrorClass)
	return nreg
}

// BuildResolver builds the resolver chain namer -> registry -> reflect.
// The previous resolver holds no state worth keeping.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		registered(reg),
		strategy.NewReflectStrategy(),
	)
}

// registered resolves explicit registrations in reg. A nil registry yields
// a nil strategy, which resolver.New skips.
func registered(reg apis.Registry) apis.Strategy {
	if reg == nil {
		return nil
	}
	return resolver.Func(func(t reflect.Type, _ apis.Config) (string, bool) {
		return reg.Lookup(t)
	})
}
