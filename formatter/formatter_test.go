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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/catalog"
	"dirpx.dev/probename/formatter"
)

const (
	restController = "@org.springframework.web.bind.annotation.RestController"
	requestMapping = "@org.springframework.web.bind.annotation.RequestMapping"
)

func bookController() *catalog.Class {
	uuid := catalog.Ref("java.util.UUID")
	book := catalog.Ref("com.basaki.model.Book")
	return &catalog.Class{
		ClassName:       "com.basaki.controller.BookController",
		AnnotationTexts: []string{restController + "(value=[/books])"},
		Methods: []*catalog.Method{
			{
				MethodName:      "read",
				Return:          book,
				Params:          []apis.Type{uuid},
				AnnotationTexts: []string{requestMapping + "(headers=[], value=[/{id}], produces=[application/json], method=[GET])"},
			},
			{
				MethodName:      "read",
				Return:          catalog.Ref("java.util.List"),
				Params:          []apis.Type{catalog.String},
				AnnotationTexts: []string{requestMapping + "(value=[], method=[GET, HEAD])"},
			},
			{
				MethodName:      "delete",
				Params:          []apis.Type{uuid},
				AnnotationTexts: []string{requestMapping + "(value=[{id}], method=[DELETE])"},
			},
		},
	}
}

func helloWorldService() *catalog.Class {
	return &catalog.Class{
		ClassName:       "com.basaki.agent.spring.HelloWorldSpringService",
		AnnotationTexts: []string{"@org.springframework.stereotype.Controller(value=)"},
		Methods: []*catalog.Method{{
			MethodName:      "getMessage",
			Return:          catalog.String,
			Params:          []apis.Type{catalog.String},
			AnnotationTexts: []string{requestMapping + "(value=[/hello/{msg}], method=[GET])"},
		}},
	}
}

func TestSpring_Format(t *testing.T) {
	f, err := formatter.NewSpring()
	require.NoError(t, err)
	ctx := context.Background()

	cases := []struct {
		name string
		inv  formatter.Invocation
		want string
	}{
		{
			"hello world",
			formatter.Invocation{
				Class:            helloWorldService(),
				MethodName:       "getMessage",
				MethodDescriptor: "(Ljava/lang/String;)Ljava/lang/String;",
			},
			"REST|Spring|/hello/{msg}|GET",
		},
		{
			"with app",
			formatter.Invocation{
				Class:            bookController(),
				MethodName:       "read",
				MethodDescriptor: "(Ljava/util/UUID;)Lcom/basaki/model/Book;",
				FrontBoundary:    "Frontends|Apps|books|URLs|Default",
			},
			"REST|Spring|books|/books/{id}|GET",
		},
		{
			"several methods",
			formatter.Invocation{
				Class:            bookController(),
				MethodName:       "read",
				MethodDescriptor: "(Ljava/lang/String;)Ljava/util/List;",
			},
			"REST|Spring|/books|noop",
		},
		{
			"relative value",
			formatter.Invocation{
				Class:            bookController(),
				MethodName:       "delete",
				MethodDescriptor: "(Ljava/util/UUID;)V",
			},
			"REST|Spring|/books/{id}|DELETE",
		},
		{
			"unknown overload",
			formatter.Invocation{
				Class:            bookController(),
				MethodName:       "delete",
				MethodDescriptor: "(J)V",
			},
			"REST|Spring|/books|noop",
		},
		{
			"no class",
			formatter.Invocation{FrontBoundary: "Frontends|Apps|books"},
			"REST|Spring|nopath|noop",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(ctx, "REST|Spring|{path}|{op}", tc.inv))
		})
	}
}

func TestSpring_ReplacesEveryPlaceholder(t *testing.T) {
	f, err := formatter.NewSpring()
	require.NoError(t, err)

	got := f.Format(context.Background(), "{op} {path} {op}", formatter.Invocation{
		Class:            bookController(),
		MethodName:       "delete",
		MethodDescriptor: "(Ljava/util/UUID;)V",
	})
	assert.Equal(t, "DELETE /books/{id} DELETE", got)
}

func TestSpring_WithClassAnnotations(t *testing.T) {
	c := bookController()
	c.AnnotationTexts = append(c.AnnotationTexts, requestMapping+"(value=[/v2/books])")

	f, err := formatter.NewSpring(formatter.WithClassAnnotations("org.springframework.web.bind.annotation.RequestMapping"))
	require.NoError(t, err)

	got := f.Format(context.Background(), "{path}", formatter.Invocation{
		Class:            c,
		MethodName:       "read",
		MethodDescriptor: "(Ljava/util/UUID;)Lcom/basaki/model/Book;",
	})
	assert.Equal(t, "/v2/books/{id}", got)
}

func TestJAXRS_Format(t *testing.T) {
	resource := &catalog.Class{
		ClassName:       "com.basaki.agent.jaxrs.HelloWorldJaxrsService",
		AnnotationTexts: []string{"@javax.ws.rs.Path(value=/hello)", "@javax.ws.rs.Produces(value=[text/plain])"},
		Methods: []*catalog.Method{{
			MethodName:      "getMessage",
			Return:          catalog.Ref("javax.ws.rs.core.Response"),
			Params:          []apis.Type{catalog.String},
			AnnotationTexts: []string{"@javax.ws.rs.GET()", "@javax.ws.rs.Path(value={msg})"},
		}},
	}

	f, err := formatter.NewJAXRS()
	require.NoError(t, err)

	got := f.Format(context.Background(), "REST|JAXRS|{path}|{op}", formatter.Invocation{
		Class:            resource,
		MethodName:       "getMessage",
		MethodDescriptor: "(Ljava/lang/String;)Ljavax/ws/rs/core/Response;",
		FrontBoundary:    "Frontends|Apps|Indra",
	})
	assert.Equal(t, "REST|JAXRS|Indra|/hello/{msg}|{op}", got)
}

func TestNew(t *testing.T) {
	f, err := formatter.New("spring")
	require.NoError(t, err)
	assert.IsType(t, &formatter.Spring{}, f)

	f, err = formatter.New("jaxrs")
	require.NoError(t, err)
	assert.IsType(t, &formatter.JAXRS{}, f)

	_, err = formatter.New("struts")
	assert.ErrorIs(t, err, formatter.ErrUnknownFormatter)
}

func TestFormat_Metrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	f, err := formatter.NewSpring(formatter.WithMeter(provider.Meter("test")))
	require.NoError(t, err)

	f.Format(ctx, "{path}", formatter.Invocation{
		Class:            bookController(),
		MethodName:       "read",
		MethodDescriptor: "(Ljava/util/UUID;)Lcom/basaki/model/Book;",
	})
	f.Format(ctx, "{path}", formatter.Invocation{})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	formats := counts(t, rm, "probename_format_total")
	assert.Equal(t, map[string]int64{"spring/path": 1, "spring/nopath": 1}, formats)

	lookups := counts(t, rm, "probename_annotation_lookups_total")
	assert.Equal(t, map[string]int64{
		"class/hit":   1,
		"class/miss":  1,
		"method/hit":  1,
		"method/miss": 1,
	}, lookups)
}

// counts flattens an int64 sum into "first/second attribute" keys, where
// the attributes are (formatter|scope, result).
func counts(t *testing.T, rm metricdata.ResourceMetrics, name string) map[string]int64 {
	t.Helper()
	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				first, ok := dp.Attributes.Value(attribute.Key("formatter"))
				if !ok {
					first, _ = dp.Attributes.Value(attribute.Key("scope"))
				}
				result, _ := dp.Attributes.Value(attribute.Key("result"))
				out[first.AsString()+"/"+result.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestFormat_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f, err := formatter.NewSpring(formatter.WithLogger(zap.New(core)))
	require.NoError(t, err)

	f.Format(context.Background(), "{path}", formatter.Invocation{
		Class:            bookController(),
		MethodName:       "read",
		MethodDescriptor: "(Ljava/util/UUID;)Lcom/basaki/model/Book;",
		FrontBoundary:    "Frontends|Apps|books",
	})

	assert.Equal(t, 1, logs.FilterMessage("class annotation").Len())
	assert.Equal(t, 1, logs.FilterMessage("method annotation").Len())

	app := logs.FilterMessage("app name").All()
	require.Len(t, app, 1)
	assert.Equal(t, "books", app[0].ContextMap()["app"])
	assert.Equal(t, "spring", app[0].ContextMap()["formatter"])
}
