// Package partition turns a complex polygon plus the diagonals a
// decomposition sweep added into it into a sequence of simple,
// y-monotone sub-polygon views.
//
// It is a deliberately minimal stand-in for the half-edge / connectivity
// mesh a full geometry pipeline would normally delegate this to: a
// single face-trace over the polygon's ring edges and diagonals, using
// no connectivity structure beyond what package polygon already
// provides.
package partition

import (
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/predicate"
	"github.com/mikenye/polytri/vec2"
)

// directedEdge is one candidate the face walk can leave a point by: a
// single forward ring edge (p -> next(p)), or one direction of a
// diagonal (p -> other).
type directedEdge struct {
	to polygon.PointId
}

// Partition walks poly's ring edges and diagonals into faces and returns
// one SubPolygon per face. Every forward ring edge p -> next(p) and both
// directions of every diagonal in diagonals are each used as the
// boundary of exactly one face.
//
// It returns a [*Error] with [MissingFace] if the face walk cannot close
// back on its starting point — a diagonal set that does not actually
// decompose poly into simple pieces.
func Partition(poly polygon.Polygon, pos polygon.PositionTable, diagonals *polygon.Diagonals) ([]*polygon.SubPolygon, error) {
	outgoing := buildOutgoing(poly, diagonals)
	ringVisited := make([]bool, poly.NumVertices())
	diagVisited := make(map[[2]polygon.PointId]bool, diagonals.Len()*2)

	var faces []*polygon.SubPolygon

	for ring := 0; ring < poly.NumRings(); ring++ {
		for _, start := range poly.RingPointIDs(ring) {
			if ringVisited[start] {
				continue
			}
			face, err := walkFace(poly, pos, outgoing, start, poly.Next(start), ringVisited, diagVisited)
			if err != nil {
				return nil, err
			}
			faces = append(faces, polygon.NewSubPolygon(face, poly))
		}
	}

	for _, pair := range diagonals.Pairs() {
		for _, dir := range [2][2]polygon.PointId{{pair[0], pair[1]}, {pair[1], pair[0]}} {
			if diagVisited[dir] {
				continue
			}
			face, err := walkFace(poly, pos, outgoing, dir[0], dir[1], ringVisited, diagVisited)
			if err != nil {
				return nil, err
			}
			faces = append(faces, polygon.NewSubPolygon(face, poly))
		}
	}

	return faces, nil
}

// buildOutgoing precomputes, for every point, the set of directed edges
// leaving it: its single forward ring edge plus one entry per diagonal
// incident to it.
func buildOutgoing(poly polygon.Polygon, diagonals *polygon.Diagonals) [][]directedEdge {
	out := make([][]directedEdge, poly.NumVertices())
	for ring := 0; ring < poly.NumRings(); ring++ {
		for _, p := range poly.RingPointIDs(ring) {
			out[p] = append(out[p], directedEdge{to: poly.Next(p)})
		}
	}
	for _, pair := range diagonals.Pairs() {
		out[pair[0]] = append(out[pair[0]], directedEdge{to: pair[1]})
		out[pair[1]] = append(out[pair[1]], directedEdge{to: pair[0]})
	}
	return out
}

// walkFace traces one face boundary starting with the directed edge
// start -> first, marking every directed edge it consumes as visited.
func walkFace(
	poly polygon.Polygon,
	pos polygon.PositionTable,
	outgoing [][]directedEdge,
	start, first polygon.PointId,
	ringVisited []bool,
	diagVisited map[[2]polygon.PointId]bool,
) ([]polygon.PointId, error) {
	markVisited(poly, start, first, ringVisited, diagVisited)

	face := []polygon.PointId{start}
	from, current := start, first

	limit := poly.NumVertices()*2 + 4
	for step := 0; ; step++ {
		if current == start {
			return face, nil
		}
		if step > limit {
			return nil, &Error{Kind: MissingFace, Point: current}
		}
		face = append(face, current)

		next, ok := mostClockwiseOutgoing(poly, pos, outgoing, from, current)
		if !ok {
			return nil, &Error{Kind: MissingFace, Point: current}
		}
		markVisited(poly, current, next, ringVisited, diagVisited)
		from, current = current, next
	}
}

// markVisited records the directed edge from -> to as consumed.
func markVisited(poly polygon.Polygon, from, to polygon.PointId, ringVisited []bool, diagVisited map[[2]polygon.PointId]bool) {
	if poly.Next(from) == to {
		ringVisited[from] = true
		return
	}
	diagVisited[[2]polygon.PointId{from, to}] = true
}

// mostClockwiseOutgoing picks, among current's outgoing edges other than
// the one leading straight back to prev, the one that turns most
// clockwise (in this module's y-down frame) relative to the edge arriving
// from prev — the standard rule for tracing the boundary of the face
// lying to the right of a directed edge.
func mostClockwiseOutgoing(
	poly polygon.Polygon,
	pos polygon.PositionTable,
	outgoing [][]directedEdge,
	prev, current polygon.PointId,
) (polygon.PointId, bool) {
	incoming := pos.Vertex(poly.Vertex(current)).Sub(pos.Vertex(poly.Vertex(prev)))
	reversedIncoming := incoming.Negate()

	best := polygon.PointId(-1)
	bestAngle := 0.0
	found := false

	for _, edge := range outgoing[current] {
		outDir := pos.Vertex(poly.Vertex(edge.to)).Sub(pos.Vertex(poly.Vertex(current)))
		if outDir == (vec2.Vec2{}) || edge.to == prev {
			continue
		}
		angle := predicate.DirectedAngle(reversedIncoming, outDir)
		if !found || angle > bestAngle {
			best, bestAngle, found = edge.to, angle, true
		}
	}

	if !found {
		return 0, false
	}
	return best, true
}
