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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/config"
	uref "dirpx.dev/probename/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type PA *A

func TestNormalize_Named(t *testing.T) {
	conf := config.DefaultConfig()
	pa := &A{}

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr-ptr", reflect.TypeOf(&pa), reflect.TypeOf(A{})},
		{"generic", reflect.TypeOf(G[int]{}), reflect.TypeOf(G[int]{})},
		{"builtin", reflect.TypeOf(""), reflect.TypeOf("")},
		{"named-ptr", reflect.TypeOf(PA(nil)), reflect.TypeOf(PA(nil))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_Unnamed(t *testing.T) {
	conf := config.DefaultConfig()

	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"slice", reflect.TypeOf([]A{})},
		{"array", reflect.TypeOf([2]A{})},
		{"map", reflect.TypeOf(map[string]A{})},
		{"func", reflect.TypeOf(func() {})},
		{"anon-struct", reflect.TypeOf(struct{ X int }{})},
		{"ptr-slice", reflect.TypeOf(&[]A{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uref.Normalize(tc.typ, conf)
			if !errors.Is(err, uref.ErrReflectTypeNotNamed) {
				t.Fatalf("Normalize(%v) error = %v, want ErrReflectTypeNotNamed", tc.typ, err)
			}
		})
	}
}

func TestNormalize_NilType(t *testing.T) {
	_, err := uref.Normalize(nil, config.DefaultConfig())
	if !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Normalize(nil) error = %v, want ErrReflectNilType", err)
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	a := &A{}
	aa := &a
	typ := reflect.TypeOf(&aa) // ***A

	if _, err := uref.Normalize(typ, apis.Config{MaxUnwrap: 2}); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize(***A, max=2) error = %v, want ErrReflectTypeNotNamed", err)
	}
	got, err := uref.Normalize(typ, apis.Config{MaxUnwrap: 3})
	if err != nil {
		t.Fatalf("Normalize(***A, max=3) returned error: %v", err)
	}
	if got != reflect.TypeOf(A{}) {
		t.Fatalf("Normalize(***A, max=3) = %v, want A", got)
	}

	// Non-positive MaxUnwrap falls back to the default.
	if _, err := uref.Normalize(typ, apis.Config{}); err != nil {
		t.Fatalf("Normalize(***A, max=0) returned error: %v", err)
	}
}
