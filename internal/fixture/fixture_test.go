package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/polytri/vec2"
)

func TestBuildTriangle(t *testing.T) {
	f := Polygon{Outer: [][2]float64{{-10, 5}, {0, -5}, {10, 5}}}

	poly, pos, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, poly.NumRings())
	assert.Equal(t, 3, poly.NumVertices())
	assert.Equal(t, vec2.New(0, -5), pos.Vertex(1))
}

func TestBuildWithHole(t *testing.T) {
	f := Polygon{
		Outer: [][2]float64{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}},
		Holes: [][][2]float64{{{4, 2}, {0, -2}, {-4, 2}}},
	}

	poly, pos, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, poly.NumRings())
	assert.Equal(t, 7, poly.NumVertices())
	assert.Equal(t, vec2.New(-4, 2), pos.Vertex(6))
}

func TestBuildRejectsTooFewOuterPoints(t *testing.T) {
	_, _, err := Polygon{Outer: [][2]float64{{0, 0}, {1, 1}}}.Build()
	assert.Error(t, err)
}

func TestBuildRejectsTooFewHolePoints(t *testing.T) {
	f := Polygon{
		Outer: [][2]float64{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}},
		Holes: [][][2]float64{{{0, 0}, {1, 1}}},
	}
	_, _, err := f.Build()
	assert.Error(t, err)
}

func TestFromPositionsRoundTrips(t *testing.T) {
	outer := []vec2.Vec2{vec2.New(-10, 5), vec2.New(0, -5), vec2.New(10, 5)}
	f := FromPositions(outer, nil)

	poly, pos, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, poly.NumVertices())
	assert.Equal(t, outer[2], pos.Vertex(2))
}
