// Package telemetry provides ports.Tracer implementations.
package telemetry

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// Close does nothing.
func (t *NoOpTracer) Close() error { return nil }

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// Write does nothing and reports the full length as written.
func (s *NoOpSpan) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}
