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
package formatter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrFormatter = "formatter"
	attrResult    = "result"
	attrScope     = "scope"
)

// metrics records formatter activity.
type metrics struct {
	formatTotal  metric.Int64Counter
	lookupsTotal metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}

	var err error
	m.formatTotal, err = meter.Int64Counter(
		"probename_format_total",
		metric.WithDescription("Total number of formatted names"),
		metric.WithUnit("{name}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create format counter: %w", err)
	}

	m.lookupsTotal, err = meter.Int64Counter(
		"probename_annotation_lookups_total",
		metric.WithDescription("Total number of annotation lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup counter: %w", err)
	}
	return m, nil
}

// recordFormat counts one Format call; result is "path" or "nopath".
func (m *metrics) recordFormat(ctx context.Context, formatter, result string) {
	m.formatTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrFormatter, formatter),
		attribute.String(attrResult, result),
	))
}

// recordLookup counts one annotation lookup; scope is "class" or "method".
func (m *metrics) recordLookup(ctx context.Context, scope string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookupsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrScope, scope),
		attribute.String(attrResult, result),
	))
}
