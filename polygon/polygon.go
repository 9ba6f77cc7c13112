// Package polygon defines the complex-polygon container, position table,
// and diagonal set the decomposition and triangulation cores operate on.
//
// This is a deliberately thin stand-in for the half-edge / connectivity
// container that a full rendering pipeline would normally own: a flat
// array-of-rings structure with no boolean-operation machinery, no
// traversal beyond what the sweep and triangulator need. Richer
// connectivity (boolean ops, nested sibling/hole hierarchies) is
// explicitly out of scope for this module.
package polygon

import "github.com/mikenye/polytri/vec2"

// VertexId is a dense integer handle into a PositionTable.
type VertexId int32

// PointId is a handle into a polygon's ring topology. It is distinct from
// VertexId because the same VertexId may appear at multiple PointIds in
// pathological inputs, and because ring adjacency (Next/Previous) is
// defined on points, not vertices.
type PointId int32

// Direction is the traversal direction of a Circulator over a ring.
type Direction uint8

const (
	// Forward advances a Circulator in the ring's stored order.
	Forward Direction = iota
	// Backward advances a Circulator against the ring's stored order.
	Backward
)

// PositionTable is a random-access, read-only mapping from VertexId to
// Vec2. Callers own the backing storage; the decomposer and triangulator
// never mutate it.
type PositionTable interface {
	Vertex(id VertexId) vec2.Vec2
}

// SlicePositionTable is a PositionTable backed by a plain slice, indexed
// directly by VertexId.
type SlicePositionTable []vec2.Vec2

// Vertex returns the position of id. It panics if id is out of range,
// matching the package's treatment of an out-of-bounds handle as caller
// error rather than a reportable condition.
func (t SlicePositionTable) Vertex(id VertexId) vec2.Vec2 {
	return t[id]
}

// Polygon is the traversal contract the decomposer requires of a complex
// polygon: ring enumeration, and point-to-vertex and point-to-point
// adjacency.
type Polygon interface {
	// NumVertices returns the total number of points across all rings.
	NumVertices() int
	// NumRings returns the number of rings, main ring first.
	NumRings() int
	// RingPointIDs returns the PointIds of ring, in ring order.
	RingPointIDs(ring int) []PointId
	// Vertex returns the VertexId at p.
	Vertex(p PointId) VertexId
	// Next returns the next PointId within p's ring.
	Next(p PointId) PointId
	// Previous returns the previous PointId within p's ring.
	Previous(p PointId) PointId
	// RingSignedArea2X returns twice the signed area of ring, used to
	// verify ring winding order.
	RingSignedArea2X(ring int, pos PositionTable) float32
}

// ComplexPolygon is one main (outer) ring plus zero or more hole rings.
//
// Invariants required by the decomposer (unchecked except where noted):
//   - The outer ring is oriented clockwise in a y-down coordinate system;
//     hole rings are oriented counter-clockwise. [ComplexPolygon.RingSignedArea2X]
//     lets callers (and the decomposer's winding check, which returns a
//     WrongWindingOrder error) verify this.
//   - Every ring is closed (implicitly — the last point connects back to
//     the first) and contains at least 3 points.
//   - Rings are simple and non-self-intersecting; this is not checked,
//     and violating it is undefined behavior.
type ComplexPolygon struct {
	vertices  []VertexId
	ringStart []int
	ringOf    []int
}

// New builds a ComplexPolygon from an outer ring and zero or more hole
// rings, each given as a closed sequence of VertexIds (the ring is not
// repeated at the end). The outer ring must be listed first.
func New(outer []VertexId, holes ...[]VertexId) *ComplexPolygon {
	rings := make([][]VertexId, 0, 1+len(holes))
	rings = append(rings, outer)
	rings = append(rings, holes...)

	total := 0
	for _, r := range rings {
		total += len(r)
	}

	p := &ComplexPolygon{
		vertices:  make([]VertexId, 0, total),
		ringStart: make([]int, len(rings)),
		ringOf:    make([]int, 0, total),
	}
	for ringIdx, r := range rings {
		p.ringStart[ringIdx] = len(p.vertices)
		for _, v := range r {
			p.vertices = append(p.vertices, v)
			p.ringOf = append(p.ringOf, ringIdx)
		}
	}
	return p
}

// NumVertices returns the total number of points across all rings.
func (p *ComplexPolygon) NumVertices() int {
	return len(p.vertices)
}

// NumRings returns the number of rings, main ring first.
func (p *ComplexPolygon) NumRings() int {
	return len(p.ringStart)
}

// ringBounds returns the [start, end) PointId range of ring.
func (p *ComplexPolygon) ringBounds(ring int) (start, end int) {
	start = p.ringStart[ring]
	if ring+1 < len(p.ringStart) {
		end = p.ringStart[ring+1]
	} else {
		end = len(p.vertices)
	}
	return start, end
}

// RingPointIDs returns the PointIds of ring, in ring order.
func (p *ComplexPolygon) RingPointIDs(ring int) []PointId {
	start, end := p.ringBounds(ring)
	ids := make([]PointId, 0, end-start)
	for i := start; i < end; i++ {
		ids = append(ids, PointId(i))
	}
	return ids
}

// Vertex returns the VertexId at p.
func (p *ComplexPolygon) Vertex(pt PointId) VertexId {
	return p.vertices[pt]
}

// Next returns the next PointId within pt's ring, wrapping within the
// ring's bounds.
func (p *ComplexPolygon) Next(pt PointId) PointId {
	ring := p.ringOf[pt]
	start, end := p.ringBounds(ring)
	n := end - start
	offset := int(pt) - start
	return PointId(start + (offset+1)%n)
}

// Previous returns the previous PointId within pt's ring, wrapping within
// the ring's bounds.
func (p *ComplexPolygon) Previous(pt PointId) PointId {
	ring := p.ringOf[pt]
	start, end := p.ringBounds(ring)
	n := end - start
	offset := int(pt) - start
	return PointId(start + (offset-1+n)%n)
}

// RingSignedArea2X returns twice the signed area of ring under the
// Shoelace formula, using pos to resolve point positions. A positive
// result (by the standard, y-up convention the Shoelace formula assumes)
// corresponds to a ring that is clockwise when plotted in this package's
// y-down coordinate system — i.e. the orientation the outer ring must
// have. Hole rings must produce a negative result.
func (p *ComplexPolygon) RingSignedArea2X(ring int, pos PositionTable) float32 {
	ids := p.RingPointIDs(ring)
	var sum float32
	n := len(ids)
	for i := 0; i < n; i++ {
		a := pos.Vertex(p.Vertex(ids[i]))
		b := pos.Vertex(p.Vertex(ids[(i+1)%n]))
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}
