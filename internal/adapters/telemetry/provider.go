// Package telemetry adapts OpenTelemetry tracing to the ports.Tracer interface.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/relock/internal/core/ports"
)

// InstrumentationName names the tracer registered with the global provider.
const InstrumentationName = "relock"

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	name string
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
// Spans go to the global tracer provider current at Start, which is a no-op
// unless one is installed.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{
		name: name,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := otel.Tracer(t.name).Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span and marks it failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
