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

package annotation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/probename/annotation"
)

const requestMapping = "org.springframework.web.bind.annotation.RequestMapping"

func TestParse_Absent(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no marker", "not-an-annotation"},
		{"marker only", "@"},
		{"no open paren", "@org.x.Mapping"},
		{"empty class", "@(value=[/x])"},
		{"leading space", " @org.x.Mapping()"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, annotation.Parse(tc.text))
		})
	}
}

func TestParse_Params(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		class string
		want  map[string][]string
		keys  []string
	}{
		{
			name:  "single value",
			text:  "@C(k=[v])",
			class: "C",
			want:  map[string][]string{"k": {"v"}},
			keys:  []string{"k"},
		},
		{
			name:  "empty brackets dropped",
			text:  "@org.x.Mapping(headers=[], value=[/customers], produces=[], method=[], params=[], consumes=[])",
			class: "org.x.Mapping",
			want:  map[string][]string{"value": {"/customers"}},
			keys:  []string{"value"},
		},
		{
			name:  "multi valued",
			text:  "@org.x.Mapping(produces=[application/xml, application/json], method=[GET])",
			class: "org.x.Mapping",
			want: map[string][]string{
				"produces": {"application/xml", "application/json"},
				"method":   {"GET"},
			},
			keys: []string{"produces", "method"},
		},
		{
			name:  "three values keep order",
			text:  "@C(k=[a, b, c])",
			class: "C",
			want:  map[string][]string{"k": {"a", "b", "c"}},
			keys:  []string{"k"},
		},
		{
			name:  "no params",
			text:  "@org.junit.Test()",
			class: "org.junit.Test",
			want:  map[string][]string{},
		},
		{
			name:  "whitespace trimmed",
			text:  "@C(  k  =[  spaced value  ,   other ])",
			class: "C",
			want:  map[string][]string{"k": {"spaced value", "other"}},
			keys:  []string{"k"},
		},
		{
			name:  "trailing text ignored",
			text:  "@C(k=[v]) trailing=[x]",
			class: "C",
			want:  map[string][]string{"k": {"v"}},
			keys:  []string{"k"},
		},
		{
			name:  "unterminated list still records",
			text:  "@C(k=[v",
			class: "C",
			want:  map[string][]string{},
		},
		{
			name:  "empty trailing value dropped",
			text:  "@C(k=[a, ])",
			class: "C",
			want:  map[string][]string{"k": {"a"}},
			keys:  []string{"k"},
		},
		{
			name:  "repeated key appends",
			text:  "@C(k=[a], k=[b])",
			class: "C",
			want:  map[string][]string{"k": {"a", "b"}},
			keys:  []string{"k"},
		},
		{
			name:  "value before any key dropped",
			text:  "@C(orphan, k=[v])",
			class: "C",
			want:  map[string][]string{"k": {"v"}},
			keys:  []string{"k"},
		},
		{
			name:  "spring request mapping",
			text:  "@" + requestMapping + "(headers=[], value=[], produces=[application/xml, application/json], method=[GET], params=[], consumes=[])",
			class: requestMapping,
			want: map[string][]string{
				"produces": {"application/xml", "application/json"},
				"method":   {"GET"},
			},
			keys: []string{"produces", "method"},
		},
		{
			name:  "unicode values",
			text:  "@C(value=[/bücher/ñ])",
			class: "C",
			want:  map[string][]string{"value": {"/bücher/ñ"}},
			keys:  []string{"value"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := annotation.Parse(tc.text)
			require.NotNil(t, a)
			assert.Equal(t, tc.class, a.Class())
			if diff := cmp.Diff(tc.want, a.Params()); diff != "" {
				t.Fatalf("params mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tc.keys), a.Len())
			if len(tc.keys) > 0 {
				assert.Equal(t, tc.keys, a.ParamKeys())
			}
		})
	}
}

func TestParse_Unbracketed(t *testing.T) {
	// A scalar list item keeps its key until the next '=' or ']'.
	a := annotation.Parse("@C(a=1, b=2)")
	require.NotNil(t, a)
	assert.Equal(t, []string{"1"}, a.Param("a"))
	assert.Equal(t, []string{"2"}, a.Param("b"))
}

func TestAnnotation_Accessors(t *testing.T) {
	a := annotation.Parse("@C(value=[/books], produces=[a, b])")
	require.NotNil(t, a)

	v, ok := a.Value("value")
	assert.True(t, ok)
	assert.Equal(t, "/books", v)

	_, ok = a.Value("produces")
	assert.False(t, ok, "several values are not a single value")

	_, ok = a.Value("missing")
	assert.False(t, ok)

	assert.True(t, a.Has("produces"))
	assert.False(t, a.Has("missing"))
	assert.Nil(t, a.Param("missing"))

	// Returned slices are copies.
	p := a.Param("produces")
	p[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, a.Param("produces"))

	keys := a.ParamKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"value", "produces"}, a.ParamKeys())
}

func TestAnnotation_String(t *testing.T) {
	a := annotation.Parse("@org.x.Mapping(headers=[], value=[ /x ], method=[GET,POST])")
	require.NotNil(t, a)
	assert.Equal(t, "@org.x.Mapping(value=[/x], method=[GET, POST])", a.String())

	again := annotation.Parse(a.String())
	require.NotNil(t, again)
	assert.Equal(t, a.Class(), again.Class())
	assert.Equal(t, a.Params(), again.Params())
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"@",
		"@C(k=[v])",
		"@org.x.Mapping(headers=[], value=[/customers], produces=[], method=[], params=[], consumes=[])",
		"@org.x.Mapping(produces=[application/xml, application/json], method=[GET])",
		"@C(a=1, b=2)",
		"@C(((]]]==,,))",
		"@C(k=[a, [b, c]], d=[e])",
		"not-an-annotation",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		a := annotation.Parse(text)
		if a == nil {
			return
		}
		if !strings.HasPrefix(text, "@") {
			t.Fatalf("non-nil result for %q without marker", text)
		}
		if a.Class() == "" {
			t.Fatalf("empty class for %q", text)
		}
		for _, k := range a.ParamKeys() {
			vals := a.Param(k)
			if len(vals) == 0 {
				t.Fatalf("key %q present without values", k)
			}
			for _, v := range vals {
				if v == "" || v != strings.TrimSpace(v) {
					t.Fatalf("value %q of key %q is empty or untrimmed", v, k)
				}
			}
		}

		again := annotation.Parse(a.String())
		if again == nil {
			t.Fatalf("rendering %q does not parse", a.String())
		}
		if again.Class() != a.Class() {
			t.Fatalf("class %q re-parsed as %q", a.Class(), again.Class())
		}
		if diff := cmp.Diff(a.Params(), again.Params()); diff != "" {
			t.Fatalf("round trip mismatch (-first +second):\n%s", diff)
		}
	})
}
