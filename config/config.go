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

package config

import (
	"dirpx.dev/probename/apis"
)

const (
	// DefaultIntAsLong maps Go int to long, matching its 64-bit width on
	// the platforms Go is usually deployed on.
	DefaultIntAsLong = true
	// DefaultStringClass is the class reported for Go string.
	DefaultStringClass = "java.lang.String"
	// DefaultFallbackClass is reported for types with no class name.
	DefaultFallbackClass = "java.lang.Object"
	// DefaultDropErrorResult drops trailing error results, so that
	// func() (T, error) reports T and func() error reports void.
	DefaultDropErrorResult = true
	// DefaultMaxUnwrap bounds pointer unwrapping.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.StringClass == "" {
		cfg.StringClass = DefaultStringClass
	}
	if cfg.FallbackClass == "" {
		cfg.FallbackClass = DefaultFallbackClass
	}
	return cfg
}

// DefaultConfig is the configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IntAsLong:       DefaultIntAsLong,
		StringClass:     DefaultStringClass,
		FallbackClass:   DefaultFallbackClass,
		DropErrorResult: DefaultDropErrorResult,
		MaxUnwrap:       DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIntAsLong sets the IntAsLong option.
func WithIntAsLong(long bool) Option {
	return func(c *apis.Config) {
		c.IntAsLong = long
	}
}

// WithStringClass sets the class reported for Go string.
// An empty name resets to the default.
func WithStringClass(name string) Option {
	return func(c *apis.Config) {
		c.StringClass = name
	}
}

// WithFallbackClass sets the class reported for unnamed types.
// An empty name resets to the default.
func WithFallbackClass(name string) Option {
	return func(c *apis.Config) {
		c.FallbackClass = name
	}
}

// WithDropErrorResult sets the DropErrorResult option.
func WithDropErrorResult(drop bool) Option {
	return func(c *apis.Config) {
		c.DropErrorResult = drop
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		c.MaxUnwrap = max
	}
}
