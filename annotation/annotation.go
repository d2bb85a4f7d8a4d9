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

// Package annotation turns the textual rendering of an annotation instance,
// as printed by a reflection layer, into a structured record.
//
// The accepted shape is
//
//	@fully.qualified.Name(key1=[v1, v2], key2=[v3], key3=[])
//
// Every parameter is expected to be bracketed. Empty values are dropped, so
// key3 above contributes nothing and is absent from the result.
package annotation

import "strings"

// Annotation is a parsed annotation literal. It is immutable once returned
// by Parse and safe to share between goroutines.
type Annotation struct {
	class  string
	keys   []string
	params map[string][]string
}

func newAnnotation(class string) *Annotation {
	return &Annotation{class: class, params: make(map[string][]string)}
}

// add appends value to key's list. Keyless or empty fragments are dropped.
func (a *Annotation) add(key string, hasKey bool, value string) {
	if !hasKey || value == "" {
		return
	}
	if _, ok := a.params[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.params[key] = append(a.params[key], value)
}

// Class returns the fully-qualified annotation type name.
func (a *Annotation) Class() string {
	return a.class
}

// Param returns a copy of the values recorded for key, in written order.
// It returns nil when key is absent.
func (a *Annotation) Param(key string) []string {
	v, ok := a.params[key]
	if !ok {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// ParamKeys returns the parameter names in the order they were first recorded.
func (a *Annotation) ParamKeys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Params returns a copy of the whole parameter mapping. It is never nil.
func (a *Annotation) Params() map[string][]string {
	out := make(map[string][]string, len(a.params))
	for _, k := range a.keys {
		out[k] = a.Param(k)
	}
	return out
}

// Value returns the value of key when exactly one value was recorded.
// Zero or several values report ok=false.
func (a *Annotation) Value(key string) (string, bool) {
	v := a.params[key]
	if len(v) != 1 {
		return "", false
	}
	return v[0], true
}

// Has reports whether at least one value was recorded for key.
func (a *Annotation) Has(key string) bool {
	_, ok := a.params[key]
	return ok
}

// Len returns the number of parameters.
func (a *Annotation) Len() int {
	return len(a.keys)
}

// String renders the annotation back into literal form with every
// parameter bracketed, e.g. "@a.B(value=[/x], method=[GET, POST])".
func (a *Annotation) String() string {
	var b strings.Builder
	b.WriteByte('@')
	b.WriteString(a.class)
	b.WriteByte('(')
	for i, k := range a.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString("=[")
		b.WriteString(strings.Join(a.params[k], ", "))
		b.WriteByte(']')
	}
	b.WriteByte(')')
	return b.String()
}
