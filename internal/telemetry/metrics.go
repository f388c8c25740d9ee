// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry holds the OpenTelemetry instruments shared by the server.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ScopeName is the instrumentation scope of every tracer and meter in the module.
const ScopeName = "github.com/go-mcp/bookmarks"

// DispatchMetrics records task dispatch outcomes.
type DispatchMetrics struct {
	dispatched metric.Int64Counter
	latency    metric.Float64Histogram
}

// NewDispatchMetrics creates the dispatch instruments on m. Instruments
// that fail to register are reported to the global otel error handler and
// replaced with no-ops.
func NewDispatchMetrics(m metric.Meter) *DispatchMetrics {
	dm := new(DispatchMetrics)

	var err error
	dm.dispatched, err = m.Int64Counter("mcp.tasks.dispatched",
		metric.WithDescription("Count of dispatched tasks"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		otel.Handle(err)
		dm.dispatched = noop.Int64Counter{}
	}

	dm.latency, err = m.Float64Histogram("mcp.dispatch.duration",
		metric.WithDescription("Time spent dispatching a task action"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
		dm.latency = noop.Float64Histogram{}
	}

	return dm
}

// Record counts one dispatched task with its action and terminal status.
func (dm *DispatchMetrics) Record(ctx context.Context, action, status string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("mcp.action", action),
		attribute.String("mcp.task.status", status),
	)
	dm.dispatched.Add(ctx, 1, attrs)
	dm.latency.Record(ctx, elapsed.Seconds(), attrs)
}
