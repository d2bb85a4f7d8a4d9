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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/catalog"
)

// ErrReflectNilResolver is returned when ClassOf is given no resolver.
var ErrReflectNilResolver = errors.New("reflect: nil resolver provided")

var (
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	annotatedType = reflect.TypeOf((*apis.Annotated)(nil)).Elem()
	namerType     = reflect.TypeOf((*apis.ClassNamer)(nil)).Elem()
)

// ClassOf describes the named Go type behind t as an apis.Class.
//
// Declared methods are the exported methods of *T that are not promoted
// from an embedded field; for an interface type they are its methods.
// Methods that only exist to satisfy apis.Annotated or apis.ClassNamer are
// left out. Class names of t and of every reference type in the method
// signatures come from res.
func ClassOf(t reflect.Type, res apis.Resolver, cfg apis.Config) (apis.Class, error) {
	if res == nil {
		return nil, ErrReflectNilResolver
	}
	base, err := Normalize(t, cfg)
	if err != nil {
		return nil, err
	}
	name := res.ResolveType(base, cfg)
	if name == "" {
		return nil, ErrReflectTypeNotNamed
	}

	c := &class{name: name}

	var ann apis.Annotated
	recv := base
	if base.Kind() != reflect.Interface {
		recv = reflect.PointerTo(base)
		if recv.Implements(annotatedType) {
			ann = reflect.New(base).Interface().(apis.Annotated)
			c.annotations = ann.ClassAnnotations()
		}
	}

	skip := hiddenMethods(recv)
	promoted := promotedFrom(base)
	for i := 0; i < recv.NumMethod(); i++ {
		m := recv.Method(i)
		if _, ok := skip[m.Name]; ok {
			continue
		}
		if promoted(m) {
			continue
		}
		md := newMethod(m, base.Kind() != reflect.Interface, res, cfg)
		if ann != nil {
			md.annotations = ann.MethodAnnotations(m.Name)
		}
		c.methods = append(c.methods, md)
	}
	return c, nil
}

// TypeOf maps a Go type onto a descriptor type.
//
//	bool Z, int8/uint8 B, int16 S, uint16 C, int32/uint32 I, int64/uint64 J,
//	int/uint/uintptr J (I unless cfg.IntAsLong), float32 F, float64 D,
//	string cfg.StringClass, []T and [n]T arrays of T, *T as T.
//
// Any other type is a reference named by res, or cfg.FallbackClass when
// res has no name for it.
func TypeOf(t reflect.Type, res apis.Resolver, cfg apis.Config) apis.Type {
	switch t.Kind() {
	case reflect.Bool:
		return catalog.Primitive(apis.Boolean)
	case reflect.Int8, reflect.Uint8:
		return catalog.Primitive(apis.Byte)
	case reflect.Int16:
		return catalog.Primitive(apis.Short)
	case reflect.Uint16:
		return catalog.Primitive(apis.Char)
	case reflect.Int32, reflect.Uint32:
		return catalog.Primitive(apis.Int)
	case reflect.Int64, reflect.Uint64:
		return catalog.Primitive(apis.Long)
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if cfg.IntAsLong {
			return catalog.Primitive(apis.Long)
		}
		return catalog.Primitive(apis.Int)
	case reflect.Float32:
		return catalog.Primitive(apis.Float)
	case reflect.Float64:
		return catalog.Primitive(apis.Double)
	case reflect.String:
		return catalog.Ref(cfg.StringClass)
	case reflect.Slice, reflect.Array:
		return catalog.ArrayOf(TypeOf(t.Elem(), res, cfg))
	case reflect.Ptr:
		if t.Name() == "" {
			return TypeOf(t.Elem(), res, cfg)
		}
	}

	if res != nil {
		if name := res.ResolveType(t, cfg); name != "" {
			return catalog.Ref(name)
		}
	}
	return catalog.Ref(cfg.FallbackClass)
}

// hiddenMethods returns the names of methods recv has only to carry
// naming metadata.
func hiddenMethods(recv reflect.Type) map[string]struct{} {
	out := make(map[string]struct{})
	for _, it := range []reflect.Type{annotatedType, namerType} {
		if !recv.Implements(it) {
			continue
		}
		for i := 0; i < it.NumMethod(); i++ {
			out[it.Method(i).Name] = struct{}{}
		}
	}
	return out
}

// promotedFrom returns a predicate reporting whether a method of *base is
// promoted from one of base's embedded fields. A method that shadows an
// embedded one with an identical signature is indistinguishable from the
// promoted one and is treated as promoted.
func promotedFrom(base reflect.Type) func(reflect.Method) bool {
	if base.Kind() != reflect.Struct {
		return func(reflect.Method) bool { return false }
	}

	var embedded []reflect.Type
	for i := 0; i < base.NumField(); i++ {
		f := base.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() != reflect.Ptr && ft.Kind() != reflect.Interface {
			ft = reflect.PointerTo(ft)
		}
		embedded = append(embedded, ft)
	}

	return func(m reflect.Method) bool {
		for _, ft := range embedded {
			em, ok := ft.MethodByName(m.Name)
			if !ok {
				continue
			}
			if sameSignature(m.Type, 1, em.Type, receiverOffset(ft)) {
				return true
			}
		}
		return false
	}
}

func receiverOffset(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}
	return 1
}

// sameSignature compares two func types ignoring the first skipA/skipB inputs.
func sameSignature(a reflect.Type, skipA int, b reflect.Type, skipB int) bool {
	if a.NumIn()-skipA != b.NumIn()-skipB || a.NumOut() != b.NumOut() || a.IsVariadic() != b.IsVariadic() {
		return false
	}
	for i := 0; i < a.NumIn()-skipA; i++ {
		if a.In(i+skipA) != b.In(i+skipB) {
			return false
		}
	}
	for i := 0; i < a.NumOut(); i++ {
		if a.Out(i) != b.Out(i) {
			return false
		}
	}
	return true
}
