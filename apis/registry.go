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

import "reflect"

// Registry maps Go types onto explicit class names, e.g. a domain struct
// onto the Java class it mirrors. Implementations must be safe for
// concurrent reads.
type Registry interface {
	// Register associates the named type behind t with a class name.
	// Re-registering the same pair is a no-op; a different name is an error.
	Register(t reflect.Type, class string) error
	// Lookup returns the class name registered for t.
	Lookup(t reflect.Type) (class string, ok bool)
	// Entries returns a snapshot of all registrations (order is unspecified).
	Entries() []Entry
	// Count returns the number of registrations.
	Count() int
	// Reset removes all registrations.
	Reset()
}

// Entry is a single registration in a Registry snapshot.
type Entry struct {
	Type  reflect.Type
	Class string
}
