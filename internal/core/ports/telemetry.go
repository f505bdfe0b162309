package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording run phases.
type Tracer interface {
	// Start begins a new span for the named phase.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one phase of a run. Writes are attached to the phase's
// output stream.
type Span interface {
	io.Writer
	// End completes the span successfully.
	End()
	// RecordError completes the span with an error.
	RecordError(err error)
}
