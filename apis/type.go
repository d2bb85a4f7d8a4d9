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

package apis

// Kind classifies a Type the way a method descriptor does.
type Kind uint8

const (
	// Invalid is the zero Kind. It never appears in a well-formed Type.
	Invalid Kind = iota
	Void
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	// Array is a one-dimensional array; Elem returns the component type.
	Array
	// Object is a reference type; ClassName returns its dotted name.
	Object
)

var kindNames = [...]string{
	Invalid: "invalid",
	Void:    "void",
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
	Array:   "array",
	Object:  "object",
}

// String returns the Java keyword for primitive kinds, "array" or "object" otherwise.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Invalid]
}

// IsPrimitive reports whether k is void or one of the eight primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k >= Void && k <= Double
}

// Type is a parameter or return type as seen by the host reflection layer.
type Type interface {
	// Kind returns the descriptor class of the type.
	Kind() Kind
	// Elem returns the component type of an Array. It returns nil for other kinds.
	Elem() Type
	// ClassName returns the fully-qualified, dot separated name of an Object
	// (e.g. "java.lang.String"). It returns "" for other kinds.
	ClassName() string
}

// Method is a declared method of a Class.
type Method interface {
	// Name returns the simple method name.
	Name() string
	// ReturnType returns the declared return type. Nil is treated as void.
	ReturnType() Type
	// ParameterTypes returns the declared parameter types in order.
	ParameterTypes() []Type
	// Annotations returns the textual rendering of every annotation present
	// on the method, in declaration order.
	Annotations() []string
}

// Class is a type whose own declared methods and annotations can be enumerated.
type Class interface {
	// Name returns the fully-qualified, dot separated class name.
	Name() string
	// DeclaredMethods returns the methods declared by the class itself.
	// Inherited or promoted methods are excluded; order is unspecified.
	DeclaredMethods() []Method
	// Annotations returns the textual rendering of the class annotations.
	Annotations() []string
}
