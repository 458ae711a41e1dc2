package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ember/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to surface span completions
// through the logger. Cache operations show up as debug lines with
// their duration, failed spans as warnings.
type Bridge struct {
	log ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{log: log}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.log == nil {
		return
	}

	took := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		b.log.Warn(s.Name(), "took", took, "status", s.Status().Description)
		return
	}
	b.log.Debug(s.Name(), "took", took)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
