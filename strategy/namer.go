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
package strategy

import (
	"reflect"

	"dirpx.dev/probename/apis"
	uref "dirpx.dev/probename/utils/reflect"
)

var namerType = reflect.TypeOf((*apis.ClassNamer)(nil)).Elem()

// NewNamerStrategy creates an apis.Strategy that uses apis.ClassNamer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy asks the type itself: if *T implements apis.ClassNamer, the
// name returned by a zero T wins and stops the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

// TryResolveType calls ClassName on a zero value of the named type behind t.
// An empty ClassName falls through.
func (*namerStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	base, err := uref.Normalize(t, cfg)
	if err != nil || base.Kind() == reflect.Interface {
		return "", false
	}
	if !reflect.PointerTo(base).Implements(namerType) {
		return "", false
	}
	name := reflect.New(base).Interface().(apis.ClassNamer).ClassName()
	if name == "" {
		return "", false
	}
	return name, true
}
