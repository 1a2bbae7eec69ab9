package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/relock/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to report finished spans to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and status at debug level.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	if !s.SpanContext().IsValid() {
		return
	}

	args := []any{
		"span", s.Name(),
		"duration", s.EndTime().Sub(s.StartTime()),
	}
	if s.Status().Code == codes.Error {
		args = append(args, "error", s.Status().Description)
	}
	b.logger.Debug("span finished", args...)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a tracer provider that feeds finished spans to the bridge
// and returns its shutdown function.
func Install(bridge *Bridge) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
