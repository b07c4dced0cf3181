package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Tracer opens spans around executed cache tasks.
type Tracer interface {
	// Start opens a span named name as a child of any span in ctx.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is an open trace span.
type Span interface {
	End()
	// RecordError marks the span as failed with err.
	RecordError(err error)
	SetAttribute(key string, value any)
}
