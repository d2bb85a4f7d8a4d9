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
// Package probename names instrumented web-service methods from their
// annotations.
//
// Probes report a method as a class, a method name and a JVM-style
// descriptor. probename turns that triple back into something an operator
// can read, typically the HTTP path the method serves:
//
//	class  com.basaki.controller.BookController
//	method read (Ljava/util/UUID;)Lcom/basaki/model/Book;
//	    -> books|/books/{id}
//
// The work is split across small packages:
//
//   - annotation parses annotation literals such as
//     @org.springframework.web.bind.annotation.RequestMapping(value=[/{id}], method=[GET]).
//   - descriptor encodes signatures and picks the exact overload of a class.
//   - catalog describes classes statically, from YAML.
//   - utils/reflect describes live Go types as classes.
//   - formatter assembles annotation values into a name.
//
// # Class names for Go types
//
// When Go types stand in for classes, every type needs a class name. The
// name comes from the global snapshot held by this package: a Config, a
// Registry of explicit names, a Resolver that chains naming strategies and
// a Builder that constructs the last two. The default chain is
//
//  1. apis.ClassNamer, when *T implements it;
//  2. the Registry (RegisterClass);
//  3. the Go package path in dot form plus the type name.
//
// Reads load the snapshot atomically and never lock:
//
//	probename.ClassName(reflect.TypeOf(Book{}))
//	probename.MethodDescriptor(reflect.TypeOf(BookController{}), "Read")
//
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll) take a
// build mutex, derive a new snapshot and publish it. SetRegistry and
// SetResolver pin their layer so that later rebuilds leave it alone until
// UnpinRegistry or UnpinResolver is called.
package probename
