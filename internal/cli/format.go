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
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"dirpx.dev/probename/formatter"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		className, methodName, desc string
		classAnnos                  []string
		printMetrics                bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a metric name for a catalog method",
		Long: `Format replaces {path} (and {op} for Spring) in the template with values
taken from the class and method annotations.`,
		Example: `  probename format --catalog catalog.yaml --formatter spring \
    --class com.basaki.controller.BookController --method read \
    --desc '(Ljava/util/UUID;)Lcom/basaki/model/Book;' \
    --boundary 'Frontends|Apps|books' --template 'REST|{path}|{op}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			c, err := a.class(className)
			if err != nil {
				return err
			}

			opts := []formatter.Option{formatter.WithLogger(a.log)}
			if len(classAnnos) > 0 {
				opts = append(opts, formatter.WithClassAnnotations(classAnnos...))
			}

			var provider *sdkmetric.MeterProvider
			if printMetrics {
				exporter, err := stdoutmetric.New(
					stdoutmetric.WithWriter(cmd.OutOrStdout()),
					stdoutmetric.WithPrettyPrint(),
				)
				if err != nil {
					return fmt.Errorf("failed to create stdout metrics exporter: %w", err)
				}
				provider = sdkmetric.NewMeterProvider(
					sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
				)
				opts = append(opts, formatter.WithMeter(provider.Meter("dirpx.dev/probename")))
			}

			f, err := formatter.New(a.v.GetString(keyFormatter), opts...)
			if err != nil {
				return err
			}

			name := f.Format(ctx, a.v.GetString(keyTemplate), formatter.Invocation{
				Class:            c,
				MethodName:       methodName,
				MethodDescriptor: desc,
				FrontBoundary:    a.v.GetString(keyBoundary),
			})
			a.log.Debug("formatted", zap.String("name", name))
			fmt.Fprintln(cmd.OutOrStdout(), name)

			if provider != nil {
				// Shutdown flushes the periodic reader through the exporter.
				if err := provider.Shutdown(ctx); err != nil {
					return fmt.Errorf("failed to flush metrics: %w", err)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&className, "class", "", "fully-qualified class name")
	flags.StringVar(&methodName, "method", "", "method name")
	flags.StringVar(&desc, "desc", "", "method descriptor")
	flags.String(keyFormatter, "spring", "formatter: spring or jaxrs")
	flags.String(keyTemplate, formatter.PathHolder+"|"+formatter.OpHolder, "name template")
	flags.String(keyBoundary, "", "front boundary, e.g. Frontends|Apps|books")
	flags.StringSliceVar(&classAnnos, "class-annotation", nil, "class annotations to read the class path from, in order")
	flags.BoolVar(&printMetrics, "print-metrics", false, "dump formatter metrics to stdout")
	for _, k := range []string{keyFormatter, keyTemplate, keyBoundary} {
		_ = a.v.BindPFlag(k, flags.Lookup(k))
	}
	for _, f := range []string{"class", "method", "desc"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
