// Package predicate implements the pure geometric predicates the
// decomposition and triangulation sweeps are built on: a total ordering
// over points, a horizontal-line intersection routine, and vertex
// classification relative to a polygon's winding.
//
// Every point-order comparison elsewhere in the module — the
// decomposer's sweep event order, vertex classification, and the
// triangulator's walker comparisons — goes through [IsBelow] so
// tie-breaking stays consistent end to end. (The sweep status orders
// edges by [IntersectSegmentWithHorizontal] intercepts instead.) Splitting that invariant across two comparison routines is the
// single most common way a monotone decomposition silently corrupts.
package predicate

import (
	"math"

	"github.com/mikenye/polytri/vec2"
)

// VertexType classifies a polygon vertex relative to its two neighbours
// under a clockwise, y-down winding.
type VertexType uint8

const (
	// Start marks a local minimum in y whose interior angle is >= pi:
	// both edges leave downward into the polygon interior.
	Start VertexType = iota
	// End marks a local maximum in y whose interior angle is >= pi.
	End
	// Split marks a local minimum in y whose interior angle is < pi:
	// the vertex must be connected by a diagonal to the helper of the
	// active edge to its right to keep the sweep from splitting the
	// interior into two pieces.
	Split
	// Merge marks a local maximum in y whose interior angle is < pi.
	Merge
	// Left marks a vertex between its neighbours in y, on the left chain.
	Left
	// Right marks a vertex between its neighbours in y, on the right chain.
	Right
)

// String returns a human-readable name for the vertex type.
func (t VertexType) String() string {
	switch t {
	case Start:
		return "Start"
	case End:
		return "End"
	case Split:
		return "Split"
	case Merge:
		return "Merge"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsBelow defines the total order every sweep in this module uses: points
// are ordered by increasing y, ties broken by increasing x. IsBelow
// reports whether a comes strictly after b in that order — i.e. whether a
// sits below b in a y-down coordinate system.
func IsBelow(a, b vec2.Vec2) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	return a.X > b.X
}

// IntersectSegmentWithHorizontal returns the x-coordinate at which the
// segment a-b crosses the horizontal line y = y.
//
// If the segment itself is horizontal (a.Y == b.Y), it returns the
// rightmost of the two endpoint x-coordinates rather than an
// indeterminate value. This is an arbitrary but load-bearing choice: it
// keeps a horizontal active edge from ever producing NaN as the sweep
// passes through it, at the cost of a small, consistent bias. Every
// sweep-status implementation in package sweep must agree with this
// choice or active-edge ordering breaks.
func IntersectSegmentWithHorizontal(a, b vec2.Vec2, y float32) float32 {
	if a.Y == b.Y {
		return max(a.X, b.X)
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return a.X + t*(b.X-a.X)
}

// DirectedAngle returns the angle, in [0, 2*pi), swept counter-clockwise
// from vector u to vector v. Used by ClassifyVertex to measure interior
// angle, by the triangulator's same-chain pop test, and by package
// partition's face walk.
func DirectedAngle(u, v vec2.Vec2) float64 {
	a := math.Atan2(float64(v.Y), float64(v.X)) - math.Atan2(float64(u.Y), float64(u.X))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// ClassifyVertex classifies curr relative to its ring neighbours prev and
// next, assuming a clockwise outer winding in a y-down coordinate system.
//
// theta is the interior angle at curr, measured from the reversed
// incoming edge (curr->prev) to the outgoing edge (curr->next). A zero
// interior angle (prev, curr, and next collinear with curr between them,
// or curr a zero-length spur) is deliberately excluded from the
// Split/Merge cases: treating a zero-area spur as Split or Merge would
// make no monotone decomposition exist for all-collinear rings.
func ClassifyVertex(prev, curr, next vec2.Vec2) VertexType {
	theta := DirectedAngle(prev.Sub(curr), next.Sub(curr))

	switch {
	case IsBelow(curr, prev) && IsBelow(curr, next):
		// curr is a local maximum in y.
		if theta > 0 && theta < math.Pi {
			return Merge
		}
		return End
	case IsBelow(prev, curr) && IsBelow(next, curr):
		// curr is a local minimum in y.
		if theta > 0 && theta < math.Pi {
			return Split
		}
		return Start
	default:
		if prev.Y == next.Y {
			if prev.X < next.X {
				return Right
			}
			return Left
		}
		if prev.Y < next.Y {
			return Right
		}
		return Left
	}
}
