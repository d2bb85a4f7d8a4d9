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

// Package descriptor encodes method signatures in JVM binary descriptor
// form and uses that encoding to pick an exact overload out of a class.
//
//	void substring()          -> "()V"
//	String substring(int,int) -> "(II)Ljava/lang/String;"
//	void main(String[])       -> "([Ljava/lang/String;)V"
//
// All functions are pure and safe for concurrent use.
package descriptor

import (
	"strings"

	"dirpx.dev/probename/apis"
)

// primitiveCodes holds the single-letter code of every primitive kind.
var primitiveCodes = [...]byte{
	apis.Void:    'V',
	apis.Boolean: 'Z',
	apis.Byte:    'B',
	apis.Char:    'C',
	apis.Short:   'S',
	apis.Int:     'I',
	apis.Long:    'J',
	apis.Float:   'F',
	apis.Double:  'D',
}

// Encode builds the descriptor of a method returning ret and taking params
// in declaration order. A nil ret encodes as void.
func Encode(ret apis.Type, params []apis.Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range params {
		appendCode(&b, p)
	}
	b.WriteByte(')')
	appendCode(&b, ret)
	return b.String()
}

// Code returns the descriptor code of a single type, e.g. "I", "[J" or
// "Ljava/lang/String;".
func Code(t apis.Type) string {
	var b strings.Builder
	appendCode(&b, t)
	return b.String()
}

// MethodDescriptor is a shorthand for Encode over m's declared signature.
func MethodDescriptor(m apis.Method) string {
	return Encode(m.ReturnType(), m.ParameterTypes())
}

// appendCode writes the code of t to b. Arrays are unrolled one '[' per
// dimension; a nil type (or a nil array component) is written as void.
func appendCode(b *strings.Builder, t apis.Type) {
	for t != nil && t.Kind() == apis.Array {
		b.WriteByte('[')
		t = t.Elem()
	}
	if t == nil {
		b.WriteByte('V')
		return
	}

	k := t.Kind()
	if k.IsPrimitive() {
		b.WriteByte(primitiveCodes[k])
		return
	}

	// Objects and anything unrecognized are written as references.
	b.WriteByte('L')
	name := t.ClassName()
	for i := 0; i < len(name); i++ {
		if c := name[i]; c == '.' {
			b.WriteByte('/')
		} else {
			b.WriteByte(c)
		}
	}
	b.WriteByte(';')
}
