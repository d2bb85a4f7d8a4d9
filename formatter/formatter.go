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
// Package formatter builds metric names for REST endpoints out of the
// annotations on the invoked class and method.
//
// A name template carries placeholders that are replaced on every call:
//
//	"Backends|REST|{path}|{op}" -> "Backends|REST|books|/books/{id}|GET"
package formatter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"dirpx.dev/probename/annotation"
	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/descriptor"
)

// Template placeholders.
const (
	PathHolder = "{path}"
	OpHolder   = "{op}"
)

// ErrUnknownFormatter is returned by New for an unregistered kind.
var ErrUnknownFormatter = errors.New("probename(formatter): unknown formatter")

// NoOp is substituted for {op} when the method mapping names no single
// request method.
const NoOp = "noop"

// Invocation identifies the probed method.
type Invocation struct {
	// Class is the class of the invoked object.
	Class apis.Class
	// MethodName and MethodDescriptor select the overload.
	MethodName       string
	MethodDescriptor string
	// FrontBoundary is the transaction's front boundary, e.g.
	// "Frontends|Apps|books|URLs|...".
	FrontBoundary string
}

// Formatter rewrites a name template for one invocation.
type Formatter interface {
	Format(ctx context.Context, name string, inv Invocation) string
}

// Option configures a formatter.
type Option func(*options)

type options struct {
	log        *zap.Logger
	meter      metric.Meter
	classAnnos []string
	methodAnno string
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMeter sets the meter used for the formatter counters.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) {
		o.meter = meter
	}
}

// WithClassAnnotations replaces the class annotations tried, in order,
// when looking up the class path.
func WithClassAnnotations(classes ...string) Option {
	return func(o *options) {
		o.classAnnos = classes
	}
}

// rest holds what Spring and JAX-RS formatters share: annotation lookups,
// logging and metrics.
type rest struct {
	kind       string
	classAnnos []string
	methodAnno string
	log        *zap.Logger
	metrics    *metrics
}

func newRest(kind string, classAnnos []string, methodAnno string, opts []Option) (*rest, error) {
	o := options{classAnnos: classAnnos, methodAnno: methodAnno}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.meter == nil {
		o.meter = noop.NewMeterProvider().Meter("dirpx.dev/probename/formatter")
	}

	m, err := newMetrics(o.meter)
	if err != nil {
		return nil, err
	}
	return &rest{
		kind:       kind,
		classAnnos: o.classAnnos,
		methodAnno: o.methodAnno,
		log:        o.log.With(zap.String("formatter", kind)),
		metrics:    m,
	}, nil
}

// classAnnotation parses the first of r.classAnnos present on the class.
func (r *rest) classAnnotation(ctx context.Context, inv Invocation) *annotation.Annotation {
	if inv.Class != nil {
		r.log.Debug("invocation class", zap.String("class", inv.Class.Name()))
	}
	for _, class := range r.classAnnos {
		text, ok := descriptor.ClassAnnotation(inv.Class, class)
		if !ok {
			continue
		}
		r.log.Debug("class annotation", zap.String("annotation", text))
		a := annotation.Parse(text)
		r.metrics.recordLookup(ctx, "class", a != nil)
		return a
	}
	r.metrics.recordLookup(ctx, "class", false)
	return nil
}

// methodAnnotation parses r.methodAnno on the invoked overload.
func (r *rest) methodAnnotation(ctx context.Context, inv Invocation) *annotation.Annotation {
	m := descriptor.FindMethod(inv.Class, inv.MethodName, inv.MethodDescriptor)
	text, ok := descriptor.MethodAnnotation(m, r.methodAnno)
	if !ok {
		r.metrics.recordLookup(ctx, "method", false)
		return nil
	}
	r.log.Debug("method annotation",
		zap.String("method", inv.MethodName),
		zap.String("descriptor", inv.MethodDescriptor),
		zap.String("annotation", text),
	)
	a := annotation.Parse(text)
	r.metrics.recordLookup(ctx, "method", a != nil)
	return a
}

// path resolves {path} for inv and returns it with the method annotation.
func (r *rest) path(ctx context.Context, inv Invocation) (string, *annotation.Annotation) {
	app, hasApp := FrontendAppName(inv.FrontBoundary)
	r.log.Debug("app name", zap.String("app", app), zap.Bool("found", hasApp))

	classAnno := r.classAnnotation(ctx, inv)
	methodAnno := r.methodAnnotation(ctx, inv)
	path := Path(app, hasApp, classAnno, methodAnno)

	result := "path"
	if path == NoPath {
		result = NoPath
	}
	r.metrics.recordFormat(ctx, r.kind, result)
	return path, methodAnno
}

// Spring formats names for Spring MVC controllers. It replaces {path} and
// {op}; {op} is the single "method" value of the RequestMapping, or noop.
type Spring struct {
	*rest
}

// Ensure Spring implements Formatter.
var _ Formatter = (*Spring)(nil)

// NewSpring constructs a Spring formatter.
func NewSpring(opts ...Option) (*Spring, error) {
	r, err := newRest("spring", []string{
		"org.springframework.stereotype.Controller",
		"org.springframework.web.bind.annotation.RestController",
	}, "org.springframework.web.bind.annotation.RequestMapping", opts)
	if err != nil {
		return nil, err
	}
	return &Spring{rest: r}, nil
}

// Format replaces {path} and {op} in name.
func (s *Spring) Format(ctx context.Context, name string, inv Invocation) string {
	path, methodAnno := s.path(ctx, inv)
	name = strings.ReplaceAll(name, PathHolder, path)

	op, ok := Value(methodAnno, "method")
	if !ok {
		op = NoOp
	}
	return strings.ReplaceAll(name, OpHolder, op)
}

// JAXRS formats names for JAX-RS resources, using javax.ws.rs.Path on both
// the class and the method. It replaces {path}.
type JAXRS struct {
	*rest
}

// Ensure JAXRS implements Formatter.
var _ Formatter = (*JAXRS)(nil)

// NewJAXRS constructs a JAX-RS formatter.
func NewJAXRS(opts ...Option) (*JAXRS, error) {
	r, err := newRest("jaxrs", []string{"javax.ws.rs.Path"}, "javax.ws.rs.Path", opts)
	if err != nil {
		return nil, err
	}
	return &JAXRS{rest: r}, nil
}

// Format replaces {path} in name.
func (j *JAXRS) Format(ctx context.Context, name string, inv Invocation) string {
	path, _ := j.path(ctx, inv)
	return strings.ReplaceAll(name, PathHolder, path)
}

// New returns the formatter registered under kind ("spring" or "jaxrs").
func New(kind string, opts ...Option) (Formatter, error) {
	var (
		f   Formatter
		err error
	)
	switch kind {
	case "spring":
		f, err = NewSpring(opts...)
	case "jaxrs":
		f, err = NewJAXRS(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
