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
	"reflect"

	"dirpx.dev/probename/apis"
)

// class is the apis.Class view of a Go type. It is built once by ClassOf
// and never mutated afterwards.
type class struct {
	name        string
	methods     []apis.Method
	annotations []string
}

// Ensure class implements apis.Class.
var _ apis.Class = (*class)(nil)

func (c *class) Name() string { return c.name }

func (c *class) DeclaredMethods() []apis.Method {
	out := make([]apis.Method, len(c.methods))
	copy(out, c.methods)
	return out
}

func (c *class) Annotations() []string { return c.annotations }

// Method is the apis.Method view of a Go method.
type Method struct {
	m           reflect.Method
	ret         apis.Type
	params      []apis.Type
	annotations []string
}

// Ensure Method implements apis.Method.
var _ apis.Method = (*Method)(nil)

// newMethod maps m's signature. hasReceiver is true for methods taken from
// a concrete type's method set, whose first input is the receiver.
func newMethod(m reflect.Method, hasReceiver bool, res apis.Resolver, cfg apis.Config) *Method {
	ft := m.Type
	first := 0
	if hasReceiver {
		first = 1
	}

	md := &Method{m: m, ret: returnType(ft, res, cfg)}
	for i := first; i < ft.NumIn(); i++ {
		md.params = append(md.params, TypeOf(ft.In(i), res, cfg))
	}
	return md
}

// returnType picks the descriptor return type of ft: the first result left
// once trailing error results are dropped (if cfg asks for it), or void.
func returnType(ft reflect.Type, res apis.Resolver, cfg apis.Config) apis.Type {
	n := ft.NumOut()
	if cfg.DropErrorResult {
		for n > 0 && ft.Out(n-1) == errorType {
			n--
		}
	}
	if n == 0 {
		return nil
	}
	return TypeOf(ft.Out(0), res, cfg)
}

// Name returns the Go method name.
func (m *Method) Name() string { return m.m.Name }

// ReturnType returns the mapped return type; nil means void.
func (m *Method) ReturnType() apis.Type { return m.ret }

// ParameterTypes returns the mapped parameter types, receiver excluded.
func (m *Method) ParameterTypes() []apis.Type { return m.params }

// Annotations returns the literals supplied through apis.Annotated.
func (m *Method) Annotations() []string { return m.annotations }

// Reflect returns the underlying reflect.Method.
func (m *Method) Reflect() reflect.Method { return m.m }
