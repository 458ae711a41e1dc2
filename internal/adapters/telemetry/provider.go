package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ember/internal/core/ports"
)

// Setup installs a global tracer provider whose spans are delivered to
// the logger via the Bridge. The returned shutdown function flushes and
// stops the provider.
func Setup(log ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(log)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
