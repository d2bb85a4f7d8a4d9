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

// Config carries the knobs that decide how Go types are mapped onto
// descriptor types. It is passed by value and treated as immutable.
type Config struct {
	// IntAsLong maps Go int, uint and uintptr to long (J). When false they
	// map to int (I).
	IntAsLong bool

	// StringClass is the class name reported for Go string.
	StringClass string

	// FallbackClass is reported for types that have no class name of their
	// own (unnamed maps, funcs, channels, anonymous structs).
	FallbackClass string

	// DropErrorResult removes trailing error results before the return
	// type of a Go method is chosen.
	DropErrorResult bool

	// MaxUnwrap limits pointer unwrapping depth when looking for the named
	// type behind a pointer chain.
	MaxUnwrap int
}
