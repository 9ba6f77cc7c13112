package triangulate

import "github.com/mikenye/polytri/polygon"

// MonotonePolygon is the subset of the polygon oracle (spec §6) the
// triangulator needs from a y-monotone sub-polygon: a fixed starting
// point and bidirectional adjacency over its boundary points.
// [polygon.SubPolygon] implements this directly.
type MonotonePolygon interface {
	NumVertices() int
	FirstPoint() polygon.PointId
	Advance(p polygon.PointId, dir polygon.Direction) polygon.PointId
	Vertex(p polygon.PointId) polygon.VertexId
}

// Circulator is a lightweight cursor over a monotone polygon's boundary:
// a point plus the direction it is being walked in. It is a plain value
// type — copy it freely — rather than a stateful iterator, so the main
// triangulation loop can hold several at once (the current walker, the
// opposite-chain walker, the previous value, and the vertex stack).
type Circulator struct {
	Point     polygon.PointId
	Direction polygon.Direction
}

func reverse(d polygon.Direction) polygon.Direction {
	if d == polygon.Forward {
		return polygon.Backward
	}
	return polygon.Forward
}

// next advances c one step in its own direction.
func next(poly MonotonePolygon, c Circulator) Circulator {
	return Circulator{Point: poly.Advance(c.Point, c.Direction), Direction: c.Direction}
}

// previous steps c one step against its own direction.
func previous(poly MonotonePolygon, c Circulator) Circulator {
	return Circulator{Point: poly.Advance(c.Point, reverse(c.Direction)), Direction: c.Direction}
}
