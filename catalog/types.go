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

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/probename/apis"
)

var (
	// ErrEmptyTypeName is returned when a type name is empty.
	ErrEmptyTypeName = errors.New("probename(catalog): empty type name")
	// ErrInvalidTypeName is returned when a type name is malformed.
	ErrInvalidTypeName = errors.New("probename(catalog): invalid type name")
)

// primitive is one of the nine primitive kinds, void included.
type primitive apis.Kind

func (p primitive) Kind() apis.Kind { return apis.Kind(p) }
func (primitive) Elem() apis.Type { return nil }
func (primitive) ClassName() string { return "" }
func (p primitive) String() string { return TypeName(p) }

// Primitive types.
var (
	Void    apis.Type = primitive(apis.Void)
	Boolean apis.Type = primitive(apis.Boolean)
	Byte    apis.Type = primitive(apis.Byte)
	Char    apis.Type = primitive(apis.Char)
	Short   apis.Type = primitive(apis.Short)
	Int     apis.Type = primitive(apis.Int)
	Long    apis.Type = primitive(apis.Long)
	Float   apis.Type = primitive(apis.Float)
	Double  apis.Type = primitive(apis.Double)
)

// Primitive returns the type of a primitive kind, or nil for Array, Object
// and Invalid.
func Primitive(k apis.Kind) apis.Type {
	if !k.IsPrimitive() {
		return nil
	}
	return primitive(k)
}

// array is a one-dimensional array of elem.
type array struct {
	elem apis.Type
}

// ArrayOf returns the array type with component elem.
func ArrayOf(elem apis.Type) apis.Type {
	return array{elem: elem}
}

func (array) Kind() apis.Kind { return apis.Array }
func (a array) Elem() apis.Type { return a.elem }
func (array) ClassName() string { return "" }
func (a array) String() string { return TypeName(a) }

// ref is a reference type identified by its dotted class name.
type ref string

// Ref returns the reference type named class (e.g. "java.lang.String").
func Ref(class string) apis.Type {
	return ref(class)
}

func (ref) Kind() apis.Kind { return apis.Object }
func (ref) Elem() apis.Type { return nil }
func (r ref) ClassName() string { return string(r) }
func (r ref) String() string { return string(r) }

// String is java.lang.String, the most common reference type.
var String = Ref("java.lang.String")

var keywords = map[string]apis.Type{
	"void":    Void,
	"boolean": Boolean,
	"byte":    Byte,
	"char":    Char,
	"short":   Short,
	"int":     Int,
	"long":    Long,
	"float":   Float,
	"double":  Double,
}

// ParseType parses a type written the way Java source spells it:
// a primitive keyword or a fully-qualified class name followed by zero or
// more "[]" pairs, e.g. "int", "java.lang.String[][]".
func ParseType(name string) (apis.Type, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return nil, ErrEmptyTypeName
	}

	dims := 0
	for strings.HasSuffix(s, "[]") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
		dims++
	}
	if s == "" || strings.ContainsAny(s, "[] \t/;()") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
	}

	t, ok := keywords[s]
	if !ok {
		t = Ref(s)
	} else if t == Void && dims > 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
	}
	for ; dims > 0; dims-- {
		t = ArrayOf(t)
	}
	return t, nil
}

// TypeName renders t the way ParseType reads it.
func TypeName(t apis.Type) string {
	if t == nil {
		return "void"
	}
	switch k := t.Kind(); {
	case k == apis.Array:
		return TypeName(t.Elem()) + "[]"
	case k.IsPrimitive():
		return k.String()
	default:
		return t.ClassName()
	}
}
