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
package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/probename/annotation"
	"dirpx.dev/probename/formatter"
)

func TestFrontendAppName(t *testing.T) {
	cases := []struct {
		boundary string
		want     string
		ok       bool
	}{
		{"Frontends|Apps|books|URLs|Default", "books", true},
		{"Frontends|Apps|Indra", "Indra", true},
		{"Frontends|Apps|", "", true},
		{"Frontends|Apps", "", false},
		{"Backends|Apps|books", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.boundary, func(t *testing.T) {
			got, ok := formatter.FrontendAppName(tc.boundary)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValue(t *testing.T) {
	a := annotation.Parse("@a.B(value=[/x], method=[GET, POST], empty=[])")

	v, ok := formatter.Value(a, "value")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)

	_, ok = formatter.Value(a, "method")
	assert.False(t, ok, "several values are not a single value")
	_, ok = formatter.Value(a, "empty")
	assert.False(t, ok)
	_, ok = formatter.Value(nil, "value")
	assert.False(t, ok)
}

func TestPath(t *testing.T) {
	books := annotation.Parse("@org.springframework.web.bind.annotation.RestController(value=[/books])")
	noValue := annotation.Parse("@org.springframework.web.bind.annotation.RestController(value=[])")
	byID := annotation.Parse("@org.springframework.web.bind.annotation.RequestMapping(value=[/{id}], method=[GET])")
	relative := annotation.Parse("@javax.ws.rs.Path(value=[{id}])")

	cases := []struct {
		name       string
		app        string
		hasApp     bool
		class, mth *annotation.Annotation
		want       string
	}{
		{"app class method", "books", true, books, byID, "books|/books/{id}"},
		{"class method", "", false, books, byID, "/books/{id}"},
		{"method only", "", false, nil, byID, "/{id}"},
		{"class only", "", false, books, nil, "/books"},
		{"relative method value", "", false, books, relative, "/books/{id}"},
		{"empty class value", "", false, noValue, byID, "/{id}"},
		{"app only", "books", true, nil, nil, formatter.NoPath},
		{"nothing", "", false, nil, nil, formatter.NoPath},
		{"empty app name", "", true, books, nil, "|/books"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatter.Path(tc.app, tc.hasApp, tc.class, tc.mth))
		})
	}
}
