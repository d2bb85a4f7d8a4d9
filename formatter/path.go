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
package formatter

import (
	"strings"

	"dirpx.dev/probename/annotation"
)

// NoPath is reported when neither an application name nor an annotation
// path is available.
const NoPath = "nopath"

const frontendAppsPrefix = "Frontends|Apps|"

// FrontendAppName extracts the application name from a front boundary
// such as "Frontends|Apps|books|...". The name is the third '|' token.
func FrontendAppName(boundary string) (string, bool) {
	if !strings.HasPrefix(boundary, frontendAppsPrefix) {
		return "", false
	}
	tokens := strings.Split(boundary, "|")
	if len(tokens) < 3 {
		return "", false
	}
	return tokens[2], true
}

// Value returns the single value of key on a. It is nil-safe.
func Value(a *annotation.Annotation, key string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.Value(key)
}

// Path joins the class and method "value" parameters into a request path
// and prefixes it with the application name:
//
//	app, /books, /{id} -> app|/books/{id}
//	-,   /books, {id}  -> /books/{id}
//	app, -,      -     -> nopath
//
// The method value gains a leading '/' when it lacks one.
func Path(app string, hasApp bool, classAnno, methodAnno *annotation.Annotation) string {
	path, hasPath := Value(classAnno, "value")
	if v, ok := Value(methodAnno, "value"); ok {
		if !strings.HasPrefix(v, "/") {
			v = "/" + v
		}
		path, hasPath = path+v, true
	}

	switch {
	case hasApp && hasPath:
		return app + "|" + path
	case hasPath:
		return path
	default:
		return NoPath
	}
}
