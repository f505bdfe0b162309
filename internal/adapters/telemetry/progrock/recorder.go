// Package progrock provides the Progrock implementation of the
// telemetry adapter.
package progrock

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer using the progrock library, recording
// one vertex per run phase.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex for the named phase.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span wraps a progrock vertex recorder.
type Span struct {
	vertex *progrock.VertexRecorder
}

// Write attaches output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the vertex successfully.
func (s *Span) End() {
	s.vertex.Done(nil)
}

// RecordError completes the vertex with an error.
func (s *Span) RecordError(err error) {
	s.vertex.Done(err)
}
