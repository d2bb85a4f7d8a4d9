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

package descriptor

import (
	"strings"

	"dirpx.dev/probename/apis"
)

// FindMethod returns the method declared by c whose name is name and whose
// encoded signature equals desc. It returns nil when c is nil or declares
// no such overload; a missing overload is not an error.
func FindMethod(c apis.Class, name, desc string) apis.Method {
	if c == nil {
		return nil
	}
	for _, m := range c.DeclaredMethods() {
		if m.Name() != name {
			continue
		}
		if MethodDescriptor(m) == desc {
			return m
		}
	}
	return nil
}

// MethodAnnotation returns the first annotation literal on m that starts
// with "@"+class.
func MethodAnnotation(m apis.Method, class string) (string, bool) {
	if m == nil {
		return "", false
	}
	return firstWithPrefix(m.Annotations(), "@"+class)
}

// ClassAnnotation returns the first annotation literal on c that starts
// with "@"+class. A leading '@' on class is accepted.
func ClassAnnotation(c apis.Class, class string) (string, bool) {
	if c == nil {
		return "", false
	}
	if !strings.HasPrefix(class, "@") {
		class = "@" + class
	}
	return firstWithPrefix(c.Annotations(), class)
}

// FindMethodAnnotation locates the overload identified by name and desc and
// returns its annotation literal for class.
func FindMethodAnnotation(c apis.Class, name, desc, class string) (string, bool) {
	return MethodAnnotation(FindMethod(c, name, desc), class)
}

func firstWithPrefix(literals []string, prefix string) (string, bool) {
	for _, s := range literals {
		if strings.HasPrefix(s, prefix) {
			return s, true
		}
	}
	return "", false
}
