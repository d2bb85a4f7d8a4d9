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

// Package catalog is a static host model: classes, their declared methods
// and annotation literals described in data rather than discovered through
// reflection. Catalogs are usually loaded from YAML:
//
//	classes:
//	  - name: com.example.BookService
//	    annotations:
//	      - "@javax.ws.rs.Path(value=[/books])"
//	    methods:
//	      - name: read
//	        returns: com.example.Book
//	        params: [java.util.UUID]
//	        annotations:
//	          - "@javax.ws.rs.Path(value=[{id}])"
package catalog

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"dirpx.dev/probename/apis"
)

var (
	// ErrEmptyClassName is returned when a class spec has no name.
	ErrEmptyClassName = errors.New("probename(catalog): empty class name")
	// ErrEmptyMethodName is returned when a method spec has no name.
	ErrEmptyMethodName = errors.New("probename(catalog): empty method name")
	// ErrDuplicateClass is returned when two class specs share a name.
	ErrDuplicateClass = errors.New("probename(catalog): duplicate class")
)

// Spec is the serialized form of a Catalog.
type Spec struct {
	Classes []ClassSpec `mapstructure:"classes"`
}

// ClassSpec describes one class.
type ClassSpec struct {
	Name        string       `mapstructure:"name"`
	Annotations []string     `mapstructure:"annotations"`
	Methods     []MethodSpec `mapstructure:"methods"`
}

// MethodSpec describes one method. Types use Java source spelling (see
// ParseType). An empty Returns means void.
type MethodSpec struct {
	Name        string   `mapstructure:"name"`
	Returns     string   `mapstructure:"returns"`
	Params      []string `mapstructure:"params"`
	Annotations []string `mapstructure:"annotations"`
}

// Catalog is an ordered, read-only set of classes.
type Catalog struct {
	classes []*Class
	byName  map[string]*Class
}

// New builds a Catalog from already constructed classes.
func New(classes ...*Class) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*Class, len(classes))}
	for _, cl := range classes {
		if cl == nil {
			continue
		}
		if cl.ClassName == "" {
			return nil, ErrEmptyClassName
		}
		if _, ok := c.byName[cl.ClassName]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, cl.ClassName)
		}
		c.byName[cl.ClassName] = cl
		c.classes = append(c.classes, cl)
	}
	return c, nil
}

// Decode builds a Catalog from its serialized form.
func Decode(spec Spec) (*Catalog, error) {
	classes := make([]*Class, 0, len(spec.Classes))
	for _, cs := range spec.Classes {
		cl, err := decodeClass(cs)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return New(classes...)
}

func decodeClass(cs ClassSpec) (*Class, error) {
	if cs.Name == "" {
		return nil, ErrEmptyClassName
	}
	cl := &Class{ClassName: cs.Name, AnnotationTexts: cs.Annotations}
	for _, ms := range cs.Methods {
		m, err := decodeMethod(ms)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cs.Name, err)
		}
		cl.Methods = append(cl.Methods, m)
	}
	return cl, nil
}

func decodeMethod(ms MethodSpec) (*Method, error) {
	if ms.Name == "" {
		return nil, ErrEmptyMethodName
	}
	m := &Method{MethodName: ms.Name, AnnotationTexts: ms.Annotations}
	if ms.Returns != "" {
		t, err := ParseType(ms.Returns)
		if err != nil {
			return nil, fmt.Errorf("method %s return: %w", ms.Name, err)
		}
		m.Return = t
	}
	for i, p := range ms.Params {
		t, err := ParseType(p)
		if err != nil {
			return nil, fmt.Errorf("method %s param %d: %w", ms.Name, i, err)
		}
		m.Params = append(m.Params, t)
	}
	return m, nil
}

// Load reads a catalog file. The format is picked from the file extension
// (yaml, json, toml).
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var spec Spec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog %s: %w", path, err)
	}
	return Decode(spec)
}

// Lookup returns the class named name.
func (c *Catalog) Lookup(name string) (*Class, bool) {
	cl, ok := c.byName[name]
	return cl, ok
}

// Class returns the class named name as an apis.Class, or nil.
func (c *Catalog) Class(name string) apis.Class {
	if cl, ok := c.byName[name]; ok {
		return cl
	}
	return nil
}

// Classes returns the classes in the order they were added.
func (c *Catalog) Classes() []*Class {
	out := make([]*Class, len(c.classes))
	copy(out, c.classes)
	return out
}

// Len returns the number of classes.
func (c *Catalog) Len() int { return len(c.classes) }
