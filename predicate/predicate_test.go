package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/polytri/vec2"
)

func TestIsBelow(t *testing.T) {
	tests := map[string]struct {
		a, b     vec2.Vec2
		expected bool
	}{
		"a strictly greater y is below b": {a: vec2.New(0, 5), b: vec2.New(0, 1), expected: true},
		"a strictly lesser y is not below b": {
			a: vec2.New(0, 1), b: vec2.New(0, 5), expected: false,
		},
		"tie broken by x, a greater": {a: vec2.New(5, 1), b: vec2.New(1, 1), expected: true},
		"tie broken by x, a lesser":  {a: vec2.New(1, 1), b: vec2.New(5, 1), expected: false},
		"identical points are not below": {
			a: vec2.New(1, 1), b: vec2.New(1, 1), expected: false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsBelow(tc.a, tc.b))
		})
	}
}

func TestIntersectSegmentWithHorizontal(t *testing.T) {
	t.Run("horizontal segment returns rightmost endpoint", func(t *testing.T) {
		x := IntersectSegmentWithHorizontal(vec2.New(1, 3), vec2.New(5, 3), 3)
		assert.Equal(t, float32(5), x)
	})
	t.Run("horizontal segment is order independent", func(t *testing.T) {
		x := IntersectSegmentWithHorizontal(vec2.New(5, 3), vec2.New(1, 3), 3)
		assert.Equal(t, float32(5), x)
	})
	t.Run("diagonal segment interpolates", func(t *testing.T) {
		x := IntersectSegmentWithHorizontal(vec2.New(0, 0), vec2.New(10, 10), 5)
		assert.Equal(t, float32(5), x)
	})
	t.Run("vertical segment interpolates to constant x", func(t *testing.T) {
		x := IntersectSegmentWithHorizontal(vec2.New(4, 0), vec2.New(4, 10), 7)
		assert.Equal(t, float32(4), x)
	})
}

func TestDirectedAngle(t *testing.T) {
	tests := map[string]struct {
		u, v     vec2.Vec2
		expected float64
	}{
		"same vector":       {u: vec2.New(1, 0), v: vec2.New(1, 0), expected: 0},
		"quarter turn":      {u: vec2.New(1, 0), v: vec2.New(0, 1), expected: math.Pi / 2},
		"half turn":         {u: vec2.New(1, 0), v: vec2.New(-1, 0), expected: math.Pi},
		"three quarter turn": {u: vec2.New(1, 0), v: vec2.New(0, -1), expected: 3 * math.Pi / 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, DirectedAngle(tc.u, tc.v), 1e-9)
		})
	}
}

func TestClassifyVertexLocalMinimum(t *testing.T) {
	curr := vec2.New(0, 0)
	t.Run("narrow interior angle is Split", func(t *testing.T) {
		prev := vec2.New(10, 10)
		next := vec2.New(-10, 10)
		assert.Equal(t, Split, ClassifyVertex(prev, curr, next))
	})
	t.Run("wide interior angle is Start", func(t *testing.T) {
		prev := vec2.New(-10, 10)
		next := vec2.New(10, 10)
		assert.Equal(t, Start, ClassifyVertex(prev, curr, next))
	})
}

func TestClassifyVertexLocalMaximum(t *testing.T) {
	curr := vec2.New(0, 0)
	t.Run("narrow interior angle is Merge", func(t *testing.T) {
		prev := vec2.New(-10, -10)
		next := vec2.New(10, -10)
		assert.Equal(t, Merge, ClassifyVertex(prev, curr, next))
	})
	t.Run("wide interior angle is End", func(t *testing.T) {
		prev := vec2.New(10, -10)
		next := vec2.New(-10, -10)
		assert.Equal(t, End, ClassifyVertex(prev, curr, next))
	})
}

func TestClassifyVertexChain(t *testing.T) {
	curr := vec2.New(0, 0)
	t.Run("equal neighbour y, right when prev left of next", func(t *testing.T) {
		assert.Equal(t, Right, ClassifyVertex(vec2.New(-5, 0), curr, vec2.New(5, 0)))
	})
	t.Run("equal neighbour y, left when prev right of next", func(t *testing.T) {
		assert.Equal(t, Left, ClassifyVertex(vec2.New(5, 0), curr, vec2.New(-5, 0)))
	})
	t.Run("prev above next is right", func(t *testing.T) {
		assert.Equal(t, Right, ClassifyVertex(vec2.New(-5, -5), curr, vec2.New(5, 5)))
	})
	t.Run("prev below next is left", func(t *testing.T) {
		assert.Equal(t, Left, ClassifyVertex(vec2.New(5, 5), curr, vec2.New(-5, -5)))
	})
}

func TestVertexTypeString(t *testing.T) {
	tests := map[VertexType]string{
		Start: "Start", End: "End", Split: "Split",
		Merge: "Merge", Left: "Left", Right: "Right",
		VertexType(255): "Unknown",
	}
	for vt, expected := range tests {
		assert.Equal(t, expected, vt.String())
	}
}
