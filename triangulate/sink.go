package triangulate

import "github.com/mikenye/polytri/polygon"

// Sink is the single-method output capability the triangulator pushes
// triangles through: spec §4.6's "accept one triangle as three
// VertexIds". Expressed as a small interface rather than committing to
// any one concrete destination, matching spec §9's "do not commit to
// dynamic dispatch" guidance — callers that want static dispatch can use
// a concrete sink type directly without going through the interface.
type Sink interface {
	// PushIndices accepts one triangle. u, v, and w are pairwise distinct
	// for non-degenerate input.
	PushIndices(u, v, w polygon.VertexId)
}

// DiscardSink implements Sink by dropping every triangle. Useful when
// only the side effect of running the triangulator (e.g. in a
// monotonicity regression test) matters, not its output.
type DiscardSink struct{}

// PushIndices implements Sink.
func (DiscardSink) PushIndices(u, v, w polygon.VertexId) {}

// SliceSink implements Sink by appending each triangle's three indices,
// in order, to a growable Indices slice.
type SliceSink struct {
	Indices []polygon.VertexId
}

// NewSliceSink returns an empty SliceSink, optionally pre-sized to hold
// capacity/3 triangles.
func NewSliceSink(capacity int) *SliceSink {
	return &SliceSink{Indices: make([]polygon.VertexId, 0, capacity)}
}

// PushIndices implements Sink.
func (s *SliceSink) PushIndices(u, v, w polygon.VertexId) {
	s.Indices = append(s.Indices, u, v, w)
}

// Reset clears the sink for reuse, retaining its backing storage.
func (s *SliceSink) Reset() {
	s.Indices = s.Indices[:0]
}

// FixedBufferSink implements Sink by writing directly into a pre-sized
// index buffer the caller owns, advancing an internal offset by 3 per
// triangle. It never grows the buffer; writing past its end panics, the
// same way an out-of-bounds slice index does.
type FixedBufferSink struct {
	buf    []polygon.VertexId
	offset int
}

// NewFixedBufferSink wraps buf, which must have room for at least
// 3*n indices where n is the number of triangles that will be pushed.
func NewFixedBufferSink(buf []polygon.VertexId) *FixedBufferSink {
	return &FixedBufferSink{buf: buf}
}

// PushIndices implements Sink.
func (s *FixedBufferSink) PushIndices(u, v, w polygon.VertexId) {
	if u == v || v == w || u == w {
		logDebugf("degenerate triangle pushed: (%d, %d, %d)", u, v, w)
	}
	s.buf[s.offset] = u
	s.buf[s.offset+1] = v
	s.buf[s.offset+2] = w
	s.offset += 3
}

// Offset returns the number of indices written so far.
func (s *FixedBufferSink) Offset() int {
	return s.offset
}
