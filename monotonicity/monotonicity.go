// Package monotonicity implements the monotone decomposer's debug
// sanity check (spec §4.4): a linear scan confirming a sub-polygon
// contains no Split or Merge vertex, i.e. that it really is y-monotone.
package monotonicity

import (
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/predicate"
)

// ringLike is the subset of the polygon oracle the check needs: ring
// enumeration plus point-to-vertex and point-to-point adjacency. Both
// [polygon.Polygon] and a single-ring view over a [polygon.SubPolygon]
// satisfy it.
type ringLike interface {
	NumVertices() int
	RingPointIDs(ring int) []polygon.PointId
	NumRings() int
	Vertex(p polygon.PointId) polygon.VertexId
	Next(p polygon.PointId) polygon.PointId
	Previous(p polygon.PointId) polygon.PointId
}

// Check reports whether poly is y-monotone: true iff no point classifies
// as Split or Merge under [predicate.ClassifyVertex]. Used by tests and
// as a sanity gate before triangulation; package triangulate does not
// perform this scan itself (see its [triangulate.NotMonotone] doc).
func Check(poly ringLike, pos polygon.PositionTable) bool {
	for ring := 0; ring < poly.NumRings(); ring++ {
		for _, p := range poly.RingPointIDs(ring) {
			prev := poly.Previous(p)
			next := poly.Next(p)
			vt := predicate.ClassifyVertex(
				pos.Vertex(poly.Vertex(prev)),
				pos.Vertex(poly.Vertex(p)),
				pos.Vertex(poly.Vertex(next)),
			)
			if vt == predicate.Split || vt == predicate.Merge {
				return false
			}
		}
	}
	return true
}

// CheckSubPolygon reports whether sp is y-monotone. SubPolygon's
// boundary is a single implicit ring over the points returned by
// [polygon.SubPolygon.Points], so this adapts it to the ringLike
// contract Check requires.
func CheckSubPolygon(sp *polygon.SubPolygon, pos polygon.PositionTable) bool {
	return Check(subPolygonRing{sp}, pos)
}

// subPolygonRing adapts a *polygon.SubPolygon (whose adjacency is
// Advance-based, one implicit ring) to the ringLike contract.
type subPolygonRing struct {
	sp *polygon.SubPolygon
}

func (r subPolygonRing) NumVertices() int { return r.sp.NumVertices() }
func (r subPolygonRing) NumRings() int    { return 1 }
func (r subPolygonRing) RingPointIDs(int) []polygon.PointId {
	return r.sp.Points()
}
func (r subPolygonRing) Vertex(p polygon.PointId) polygon.VertexId { return r.sp.Vertex(p) }
func (r subPolygonRing) Next(p polygon.PointId) polygon.PointId {
	return r.sp.Advance(p, polygon.Forward)
}
func (r subPolygonRing) Previous(p polygon.PointId) polygon.PointId {
	return r.sp.Advance(p, polygon.Backward)
}
