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

package annotation

import "strings"

const (
	marker     = '@'
	openList   = '('
	closeList  = ')'
	openArray  = '['
	closeArray = ']'
	assign     = '='
	separator  = ','
)

// Parse scans an annotation literal. It returns nil when text does not
// start with '@' or when no '(' follows a non-empty class name.
//
// Any other input is scanned best-effort: Parse never fails and never
// panics once those two prerequisites hold.
func Parse(text string) *Annotation {
	if len(text) == 0 || text[0] != marker {
		return nil
	}

	class, rest, ok := scanClass(text[1:])
	if !ok {
		return nil
	}

	a := newAnnotation(class)
	scanParams(rest, a)
	return a
}

// scanClass splits s at the first '('. The returned rest starts at that '('.
func scanClass(s string) (class, rest string, ok bool) {
	i := strings.IndexByte(s, openList)
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i:], true
}

// scanParams applies the parameter token rules to s until ')' or the end
// of input. Array nesting is not tracked.
func scanParams(s string, a *Annotation) {
	var (
		buf    strings.Builder
		key    string
		hasKey bool
	)

	flush := func() string {
		v := strings.TrimSpace(buf.String())
		buf.Reset()
		return v
	}

	for _, r := range s {
		switch r {
		case openList, openArray:
		case assign:
			key, hasKey = flush(), true
		case closeArray:
			a.add(key, hasKey, flush())
			key, hasKey = "", false
		case separator:
			a.add(key, hasKey, flush())
		case closeList:
			a.add(key, hasKey, flush())
			return
		default:
			buf.WriteRune(r)
		}
	}
}
