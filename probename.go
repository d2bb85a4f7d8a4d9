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
	"fmt"
	"reflect"

	"dirpx.dev/probename/annotation"
	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/descriptor"
	uref "dirpx.dev/probename/utils/reflect"
)

// ErrNoSuchMethod is returned by MethodDescriptor when the class does not
// declare the method.
var ErrNoSuchMethod = errors.New("probename: no such method")

// Parse parses an annotation literal. See annotation.Parse.
func Parse(text string) *annotation.Annotation {
	return annotation.Parse(text)
}

// Encode builds a method descriptor. See descriptor.Encode.
func Encode(ret apis.Type, params []apis.Type) string {
	return descriptor.Encode(ret, params)
}

// FindMethod returns the overload of c matching name and desc, or nil.
// See descriptor.FindMethod.
func FindMethod(c apis.Class, name, desc string) apis.Method {
	return descriptor.FindMethod(c, name, desc)
}

// RegisterClass maps the named type behind t onto class in the global registry.
func RegisterClass(t reflect.Type, class string) error {
	return st.Load().reg.Register(t, class)
}

// ClassName returns the class name the global resolver reports for t.
func ClassName(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// Class describes the type of v as an apis.Class using the global snapshot.
func Class(v any) (apis.Class, error) {
	return ClassOf(reflect.TypeOf(v))
}

// ClassOf describes t as an apis.Class using the global snapshot.
func ClassOf(t reflect.Type) (apis.Class, error) {
	s := st.Load()
	return uref.ClassOf(t, s.res, s.cfg)
}

// MethodDescriptor returns the descriptor of the declared method named
// method on t.
func MethodDescriptor(t reflect.Type, method string) (string, error) {
	c, err := ClassOf(t)
	if err != nil {
		return "", err
	}
	for _, m := range c.DeclaredMethods() {
		if m.Name() == method {
			return descriptor.MethodDescriptor(m), nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s", ErrNoSuchMethod, c.Name(), method)
}
