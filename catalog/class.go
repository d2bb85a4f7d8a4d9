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

package catalog

import "dirpx.dev/probename/apis"

// Method is a statically described method. A nil Return means void.
type Method struct {
	MethodName      string
	Return          apis.Type
	Params          []apis.Type
	AnnotationTexts []string
}

// Ensure Method implements apis.Method.
var _ apis.Method = (*Method)(nil)

// Name returns the method name.
func (m *Method) Name() string { return m.MethodName }

// ReturnType returns the declared return type.
func (m *Method) ReturnType() apis.Type {
	if m.Return == nil {
		return Void
	}
	return m.Return
}

// ParameterTypes returns the declared parameter types.
func (m *Method) ParameterTypes() []apis.Type { return m.Params }

// Annotations returns the annotation literals of the method.
func (m *Method) Annotations() []string { return m.AnnotationTexts }

// Class is a statically described class.
type Class struct {
	ClassName       string
	Methods         []*Method
	AnnotationTexts []string
}

// Ensure Class implements apis.Class.
var _ apis.Class = (*Class)(nil)

// Name returns the fully-qualified class name.
func (c *Class) Name() string { return c.ClassName }

// DeclaredMethods returns the methods in the order they were described.
func (c *Class) DeclaredMethods() []apis.Method {
	out := make([]apis.Method, 0, len(c.Methods))
	for _, m := range c.Methods {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Annotations returns the annotation literals of the class.
func (c *Class) Annotations() []string { return c.AnnotationTexts }
