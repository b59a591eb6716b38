package serve

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for markout sites.
const defaultTracerName = "markout"

// tracerFor resolves the tracer from the global provider, or nil when
// tracing is disabled. Configure the provider in main() before starting
// the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
func tracerFor(cfg Config) trace.Tracer {
	if !cfg.Tracing {
		return nil
	}
	name := cfg.TracerName
	if name == "" {
		name = defaultTracerName
	}
	return otel.Tracer(name)
}

// recordSpan finishes span bookkeeping for one page render.
func recordSpan(span trace.Span, status, bytes int, err error) {
	span.SetAttributes(
		attribute.Int("markout.status", status),
		attribute.Int("markout.bytes", bytes),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
