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
	"strings"
	"sync"

	"dirpx.dev/probename/apis"
	uref "dirpx.dev/probename/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives class names from
// Go package paths, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It reports the named type
// behind t as its package path in dot form followed by the type name:
//
//	github.com/acme/shop/model.Book      -> github.com.acme.shop.model.Book
//	github.com/acme/shop/model.Page[int] -> github.com.acme.shop.model.Page
//
// Predeclared types have no package and resolve to "".
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// classNameCache caches resolved class names by (type, config knobs).
var classNameCache sync.Map // key: cacheKey, val: string

// TryResolveType always handles t; the name is "" when t has none.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType resolves the class name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{t: t, maxUnwrap: int16(cfg.MaxUnwrap)}
	if v, ok := classNameCache.Load(key); ok {
		return v.(string)
	}

	name := ""
	if base, err := uref.Normalize(t, cfg); err == nil && base.PkgPath() != "" {
		name = strings.ReplaceAll(base.PkgPath(), "/", ".") + "." + stripTypeParams(base.Name())
	}

	classNameCache.Store(key, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
