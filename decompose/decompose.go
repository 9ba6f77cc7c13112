// Package decompose implements the monotone decomposer: a plane sweep
// that consumes a complex polygon and emits diagonals which, added to the
// polygon, partition it into y-monotone sub-polygons.
package decompose

import (
	"fmt"

	"github.com/google/btree"

	"github.com/mikenye/polytri/options"
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/predicate"
	"github.com/mikenye/polytri/sweep"
	"github.com/mikenye/polytri/vec2"
)

// PreconditionViolation is the panic payload raised when the sweep status
// cannot locate an edge to the right of a Split, Merge, or Left vertex —
// a structural precondition violation indicating a malformed polygon
// (self-intersecting or otherwise non-simple rings), not a recoverable
// error.
type PreconditionViolation struct {
	Point polygon.PointId
}

func (p PreconditionViolation) Error() string {
	return fmt.Sprintf("decompose: no active edge right of point %d: malformed polygon", p.Point)
}

// helperEntry records, for an active edge, the most recent vertex that
// must be connected to a future Merge vertex by a diagonal.
type helperEntry struct {
	point polygon.PointId
	vtype predicate.VertexType
}

// Context owns the reusable scratch buffers (helper table, sweep status,
// sorted-point scratch slice) a decomposition sweep needs. It is not safe
// for concurrent use; create one Context per worker goroutine.
type Context struct {
	opts   options.ContextOptions
	helper map[polygon.PointId]helperEntry
	status sweep.Status
	sorted []polygon.PointId
}

// NewContext returns a Context ready to decompose polygons, configured by
// opts.
func NewContext(opts ...options.ContextOptionsFunc) *Context {
	o := options.ApplyContextOptions(options.ContextOptions{}, opts...)

	var status sweep.Status
	if o.Status == options.StatusTree {
		status = sweep.NewTreeStatus(o.InitialCapacity)
	} else {
		status = sweep.NewFlatStatus(o.InitialCapacity)
	}

	return &Context{
		opts:   o,
		helper: make(map[polygon.PointId]helperEntry, o.InitialCapacity),
		status: status,
		sorted: make([]polygon.PointId, 0, o.InitialCapacity),
	}
}

// Reset clears the context's scratch buffers for reuse, retaining their
// backing storage.
func (c *Context) Reset() {
	clear(c.helper)
	c.status.Reset()
	c.sorted = c.sorted[:0]
}

// Decompose sweeps poly top to bottom and adds diagonals to diagonals
// such that poly's rings plus those diagonals partition poly's interior
// into y-monotone pieces.
//
// It panics with a [PreconditionViolation] if the polygon is malformed
// such that the sweep status cannot locate a required active edge; see
// spec §7 on precondition violations being fatal rather than recoverable.
func (c *Context) Decompose(poly polygon.Polygon, pos polygon.PositionTable, diagonals *polygon.Diagonals) error {
	c.Reset()

	for ring := 0; ring < poly.NumRings(); ring++ {
		signed := poly.RingSignedArea2X(ring, pos)
		if ring == 0 && signed <= 0 {
			return &Error{Kind: WrongWindingOrder, Ring: ring}
		}
		if ring != 0 && signed >= 0 {
			return &Error{Kind: WrongWindingOrder, Ring: ring}
		}
	}

	c.gatherSorted(poly, pos)

	for _, p := range c.sorted {
		prev := poly.Previous(p)
		next := poly.Next(p)
		vt := predicate.ClassifyVertex(pos.Vertex(poly.Vertex(prev)), pos.Vertex(poly.Vertex(p)), pos.Vertex(poly.Vertex(next)))

		logDebugf("point %d classified as %s", p, vt)

		switch vt {
		case predicate.Start:
			c.insertEdge(poly, pos, p)
			c.helper[p] = helperEntry{point: p, vtype: predicate.Start}

		case predicate.End:
			c.connectIfMergeHelper(diagonals, prev, p)
			c.status.Remove(prev)
			delete(c.helper, prev)

		case predicate.Split:
			ej := c.findRightOfOrPanic(poly, pos, p)
			diagonals.Add(p, c.helper[ej].point)
			c.helper[ej] = helperEntry{point: p, vtype: predicate.Split}
			c.insertEdge(poly, pos, p)
			c.helper[p] = helperEntry{point: p, vtype: predicate.Split}

		case predicate.Merge:
			c.connectIfMergeHelper(diagonals, prev, p)
			c.status.Remove(prev)
			delete(c.helper, prev)
			ej := c.findRightOfOrPanic(poly, pos, p)
			c.connectIfMergeHelper(diagonals, ej, p)
			c.helper[ej] = helperEntry{point: p, vtype: predicate.Merge}

		case predicate.Right:
			c.connectIfMergeHelper(diagonals, prev, p)
			c.status.Remove(prev)
			delete(c.helper, prev)
			c.insertEdge(poly, pos, p)
			c.helper[p] = helperEntry{point: p, vtype: predicate.Right}

		case predicate.Left:
			ej := c.findRightOfOrPanic(poly, pos, p)
			c.connectIfMergeHelper(diagonals, ej, p)
			c.helper[ej] = helperEntry{point: p, vtype: predicate.Left}
		}
	}

	return nil
}

// connectIfMergeHelper adds a diagonal from helper[key].point to p if
// key's helper is currently a Merge vertex.
func (c *Context) connectIfMergeHelper(diagonals *polygon.Diagonals, key, p polygon.PointId) {
	if h, ok := c.helper[key]; ok && h.vtype == predicate.Merge {
		diagonals.Add(h.point, p)
	}
}

// insertEdge inserts p's outgoing edge p->next(p) into the sweep status.
func (c *Context) insertEdge(poly polygon.Polygon, pos polygon.PositionTable, p polygon.PointId) {
	a := pos.Vertex(poly.Vertex(p))
	b := pos.Vertex(poly.Vertex(poly.Next(p)))
	c.status.Insert(p, a, b, a.Y)
}

// findRightOfOrPanic locates the active edge immediately right of p,
// panicking with a PreconditionViolation if none exists.
func (c *Context) findRightOfOrPanic(poly polygon.Polygon, pos polygon.PositionTable, p polygon.PointId) polygon.PointId {
	current := pos.Vertex(poly.Vertex(p))
	ej, ok := c.status.FindRightOf(current)
	if !ok {
		panic(PreconditionViolation{Point: p})
	}
	return ej
}

// gatherSorted collects every PointId across all of poly's rings into
// c.sorted, ordered top to bottom by [predicate.IsBelow].
//
// The sort is performed with a google/btree.BTreeG rather than a plain
// slice sort: the decomposer's sweep order is exactly the total order
// the event queue of a Bentley-Ottmann-style sweep needs, so the B-tree
// event queue idiom applies here unchanged.
func (c *Context) gatherSorted(poly polygon.Polygon, pos polygon.PositionTable) {
	c.sorted = c.sorted[:0]

	position := func(p polygon.PointId) vec2.Vec2 {
		return pos.Vertex(poly.Vertex(p))
	}

	tree := btree.NewG(32, func(a, b polygon.PointId) bool {
		pa, pb := position(a), position(b)
		if pa != pb {
			return predicate.IsBelow(pb, pa)
		}
		return a > b
	})

	for ring := 0; ring < poly.NumRings(); ring++ {
		for _, p := range poly.RingPointIDs(ring) {
			tree.ReplaceOrInsert(p)
		}
	}

	tree.Ascend(func(p polygon.PointId) bool {
		c.sorted = append(c.sorted, p)
		return true
	})
}
