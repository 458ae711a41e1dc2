package ports

import "context"

// Span represents an in-progress trace span.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error against the span.
	RecordError(err error)
	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around the coarse phases of a cache run (load,
// build, drain, save). There is no per-task tracing; tasks carry no
// context by contract.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
