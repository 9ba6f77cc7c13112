package sweep

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/vec2"
)

// treeKey orders entries by x-intercept at a fixed sweep y, tie-broken by
// PointId so the tree has a strict total order even when two active
// edges currently share an x-intercept.
type treeKey struct {
	x     float32
	point polygon.PointId
}

func treeKeyComparator(a, b interface{}) int {
	ka, kb := a.(treeKey), b.(treeKey)
	switch {
	case ka.x < kb.x:
		return -1
	case ka.x > kb.x:
		return 1
	case ka.point < kb.point:
		return -1
	case ka.point > kb.point:
		return 1
	default:
		return 0
	}
}

// TreeStatus is a Status backed by a red-black tree, giving FindRightOf
// an O(log n) ceiling search instead of a linear scan. Because the sort
// key (x-intercept) depends on the current sweep y, which changes with
// every vertex, the tree is rebuilt from its retained entry set on every
// Insert and Remove — the same strategy the flat status uses to resort,
// just with a tree as the query structure in between mutations.
type TreeStatus struct {
	retained map[polygon.PointId]entry
	tree     *redblacktree.Tree
	sweepY   float32
}

// NewTreeStatus returns an empty TreeStatus.
func NewTreeStatus(capacity int) *TreeStatus {
	return &TreeStatus{
		retained: make(map[polygon.PointId]entry, capacity),
		tree:     redblacktree.NewWith(treeKeyComparator),
	}
}

func (s *TreeStatus) rebuild(sweepY float32) {
	s.sweepY = sweepY
	s.tree.Clear()
	for p, e := range s.retained {
		s.tree.Put(treeKey{x: e.interceptAt(sweepY), point: p}, e)
	}
}

// Insert implements Status.
func (s *TreeStatus) Insert(p polygon.PointId, a, b vec2.Vec2, sweepY float32) {
	s.retained[p] = entry{point: p, a: a, b: b}
	s.rebuild(sweepY)
}

// Remove implements Status.
func (s *TreeStatus) Remove(p polygon.PointId) {
	if _, ok := s.retained[p]; !ok {
		return
	}
	delete(s.retained, p)
	s.rebuild(s.sweepY)
}

// FindRightOf implements Status.
func (s *TreeStatus) FindRightOf(current vec2.Vec2) (polygon.PointId, bool) {
	if s.sweepY != current.Y {
		s.rebuild(current.Y)
	}
	probe := treeKey{x: current.X, point: math.MinInt32}
	node, ok := s.tree.Ceiling(probe)
	if !ok {
		return 0, false
	}
	k := node.Key.(treeKey)
	return k.point, true
}

// Len implements Status.
func (s *TreeStatus) Len() int {
	return len(s.retained)
}

// Reset implements Status.
func (s *TreeStatus) Reset() {
	for p := range s.retained {
		delete(s.retained, p)
	}
	s.tree.Clear()
}
