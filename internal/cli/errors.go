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
package cli

import "errors"

var (
	// ErrNoSuchClass is returned when the catalog has no class of that name.
	ErrNoSuchClass = errors.New("no such class")
	// ErrNoSuchMethod is returned when no declared overload matches.
	ErrNoSuchMethod = errors.New("no such method")
	// ErrNoSuchAnnotation is returned when the matched method lacks the
	// requested annotation.
	ErrNoSuchAnnotation = errors.New("no such annotation")
	// ErrNotAnnotation is returned by parse for text that is not an
	// annotation literal.
	ErrNotAnnotation = errors.New("not an annotation literal")
)
