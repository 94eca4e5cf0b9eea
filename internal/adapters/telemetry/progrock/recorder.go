// Package progrock provides a ports.Tracer backed by the progrock progress
// UI, rendering each span as a vertex on a tape.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/scriptjob/internal/core/ports"
)

// Tracer implements ports.Tracer using the progrock library.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Tracer with a default tape.
func New() *Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex for the span.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder. The vertex
// is completed when End is called, failed if RecordError was called first.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// End completes the vertex.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError stores the failure reported to the vertex on End.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.err = err
}

// SetAttribute renders the attribute into the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// Write streams log output into the vertex.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}
