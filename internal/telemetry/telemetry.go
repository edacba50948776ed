// SPDX-License-Identifier: MIT

// Package telemetry instruments the search engines with OpenTelemetry spans
// and metrics. Without an installed SDK the global providers are no-ops.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ScopeName is the instrumentation scope of the tracer and meter.
const ScopeName = "lvcontainers.search"

// Package-level tracer and meter for search operations.
var (
	tracer = otel.Tracer(ScopeName)
	meter  = otel.Meter(ScopeName)
)

// Metrics for search operations.
var (
	searchLatency   metric.Float64Histogram
	searchTotal     metric.Int64Counter
	verticesVisited metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of graph searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"search_total",
			metric.WithDescription("Total number of graph searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		verticesVisited, err = meter.Int64Histogram(
			"search_vertices_visited",
			metric.WithDescription("Number of vertices visited per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// Search tracks one running search. Obtain it with StartSearch and finish it
// with End exactly once.
type Search struct {
	ctx   context.Context
	span  trace.Span
	algo  string
	start time.Time
}

// StartSearch opens a span named after algo and starts the latency clock.
// The returned context carries the span.
func StartSearch(ctx context.Context, algo string, src, vertexCount int) (context.Context, *Search) {
	ctx, span := tracer.Start(ctx, "search."+algo,
		trace.WithAttributes(
			attribute.String("search.algorithm", algo),
			attribute.Int("search.source", src),
			attribute.Int("graph.vertex_count", vertexCount),
		),
	)

	return ctx, &Search{ctx: ctx, span: span, algo: algo, start: time.Now()}
}

// End records the outcome on the span and in the metrics, then ends the span.
func (s *Search) End(visited int, err error) {
	s.span.SetAttributes(attribute.Int("search.visited", visited))
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	recordSearchMetrics(s.ctx, s.algo, time.Since(s.start), visited, err == nil)
	s.span.End()
}

// recordSearchMetrics records metrics for a finished search.
func recordSearchMetrics(ctx context.Context, algo string, duration time.Duration, visited int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", algo),
		attribute.Bool("success", success),
	)

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)

	if success {
		verticesVisited.Record(ctx, int64(visited),
			metric.WithAttributes(attribute.String("algorithm", algo)),
		)
	}
}
