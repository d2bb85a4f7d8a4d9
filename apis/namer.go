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

// ClassNamer lets a Go type choose the class name it is reported under.
// The returned name is dot separated, e.g. "com.example.BookService".
// It must not depend on instance state: it may be called on a zero value.
type ClassNamer interface {
	ClassName() string
}

// Annotated lets a Go type expose annotation literals for itself and for
// its methods. Literals use the rendering understood by the annotation
// package, e.g. `@javax.ws.rs.Path(value=[/books])`.
//
// Like ClassNamer, implementations are invoked on a zero value.
type Annotated interface {
	// ClassAnnotations returns the literals attached to the type.
	ClassAnnotations() []string
	// MethodAnnotations returns the literals attached to the named method,
	// or nil if it has none.
	MethodAnnotations(method string) []string
}
