// Package sweep implements the sweep-line active-edge status structure:
// an ordered sequence of edges currently crossing the sweep line, kept
// sorted left to right by their x-intercept at the current sweep y.
//
// Two implementations are provided. [NewFlatStatus] is the baseline the
// decomposer's design calls for: a resorted flat sequence, O(n) per
// query but simple and cache friendly for small and medium polygons.
// [NewTreeStatus] is a red-black-tree backed alternative, a legitimate
// optimisation for larger polygons. Both must agree on tie-breaking with
// [predicate.IntersectSegmentWithHorizontal]: every Status implementation
// computes x-intercepts through the same entry.interceptAt, which calls
// it. Edges with equal intercepts are ordered differently: FlatStatus
// keeps them in insertion order, TreeStatus orders them by PointId.
package sweep

import (
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/predicate"
	"github.com/mikenye/polytri/vec2"
)

// entry is one active edge: the PointId whose outgoing edge p->next(p) is
// currently intersecting the sweep line, plus that edge's endpoints.
type entry struct {
	point polygon.PointId
	a, b  vec2.Vec2
}

func (e entry) interceptAt(y float32) float32 {
	return predicate.IntersectSegmentWithHorizontal(e.a, e.b, y)
}

// Status is the sweep-line active-edge status structure the monotone
// decomposer maintains while it sweeps a polygon top to bottom.
type Status interface {
	// Insert adds p's outgoing edge (a, b) to the status, ordered by
	// intercept at the given sweep y.
	Insert(p polygon.PointId, a, b vec2.Vec2, sweepY float32)
	// Remove deletes p from the status by identity. It is a no-op if p
	// is not present.
	Remove(p polygon.PointId)
	// FindRightOf returns the PointId of the first active edge whose
	// x-intercept at current.Y is >= current.X, and true if one exists.
	// Implementations must scan in increasing order of x-intercept.
	FindRightOf(current vec2.Vec2) (polygon.PointId, bool)
	// Len returns the number of active edges.
	Len() int
	// Reset clears the status for reuse, retaining backing storage where
	// practical.
	Reset()
}

// FlatStatus is a Status backed by a slice resorted on every Insert. It is
// O(n) per Insert/FindRightOf and O(1) extra allocation in steady state
// once its backing array has grown to the working set size.
type FlatStatus struct {
	entries []entry
}

// NewFlatStatus returns an empty FlatStatus, optionally pre-sized to
// capacity.
func NewFlatStatus(capacity int) *FlatStatus {
	return &FlatStatus{entries: make([]entry, 0, capacity)}
}

// Insert implements Status.
func (s *FlatStatus) Insert(p polygon.PointId, a, b vec2.Vec2, sweepY float32) {
	s.entries = append(s.entries, entry{point: p, a: a, b: b})
	sortEntries(s.entries, sweepY)
}

// Remove implements Status.
func (s *FlatStatus) Remove(p polygon.PointId) {
	for i, e := range s.entries {
		if e.point == p {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// FindRightOf implements Status.
func (s *FlatStatus) FindRightOf(current vec2.Vec2) (polygon.PointId, bool) {
	for _, e := range s.entries {
		if e.interceptAt(current.Y) >= current.X {
			return e.point, true
		}
	}
	return 0, false
}

// Len implements Status.
func (s *FlatStatus) Len() int {
	return len(s.entries)
}

// Reset implements Status.
func (s *FlatStatus) Reset() {
	s.entries = s.entries[:0]
}

// sortEntries sorts entries by x-intercept at sweepY, ascending. A simple
// insertion sort is sufficient here: Insert appends one new element to an
// otherwise-sorted slice, so this runs in O(n) amortised despite the
// O(n^2) worst case of repeated inserts into an unsorted sequence.
func sortEntries(entries []entry, sweepY float32) {
	for i := 1; i < len(entries); i++ {
		v := entries[i]
		vx := v.interceptAt(sweepY)
		j := i - 1
		for j >= 0 && entries[j].interceptAt(sweepY) > vx {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = v
	}
}
