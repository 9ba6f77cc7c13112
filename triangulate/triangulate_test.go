package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/vec2"
)

func subPolygon(points []polygon.PointId, vertexIds []polygon.VertexId) *polygon.SubPolygon {
	poly := polygon.New(vertexIds)
	return polygon.NewSubPolygon(points, poly)
}

func TestTriangulateTriangleEmitsOneTriangle(t *testing.T) {
	sub := subPolygon(
		[]polygon.PointId{0, 1, 2},
		[]polygon.VertexId{0, 1, 2},
	)
	pos := polygon.SlicePositionTable{
		vec2.New(-10, 5),
		vec2.New(0, -5),
		vec2.New(10, 5),
	}

	c := NewContext()
	sink := NewSliceSink(3)
	require.NoError(t, c.Triangulate(sub, pos, sink))

	require.Len(t, sink.Indices, 3)
	seen := map[polygon.VertexId]bool{}
	for _, id := range sink.Indices {
		seen[id] = true
	}
	assert.Len(t, seen, 3, "triangle's three indices must be pairwise distinct")
	for _, id := range []polygon.VertexId{0, 1, 2} {
		assert.True(t, seen[id], "index %d must appear in the output", id)
	}
}

func TestTriangulateRectangleEmitsTwoTriangles(t *testing.T) {
	sub := subPolygon(
		[]polygon.PointId{0, 1, 2, 3},
		[]polygon.VertexId{0, 1, 2, 3},
	)
	pos := polygon.SlicePositionTable{
		vec2.New(1, 2),
		vec2.New(1.5, 3),
		vec2.New(0, 4),
		vec2.New(-1, 1),
	}

	c := NewContext()
	sink := NewSliceSink(0)
	require.NoError(t, c.Triangulate(sub, pos, sink))

	require.Len(t, sink.Indices, 6)
	covered := map[polygon.VertexId]bool{}
	for i := 0; i < len(sink.Indices); i += 3 {
		tri := sink.Indices[i : i+3]
		assert.NotEqual(t, tri[0], tri[1])
		assert.NotEqual(t, tri[1], tri[2])
		assert.NotEqual(t, tri[0], tri[2])
		for _, id := range tri {
			covered[id] = true
		}
	}
	assert.Len(t, covered, 4, "all four rectangle vertices must be covered")
}

func TestTriangulateInvalidPathTooFewPoints(t *testing.T) {
	sub := subPolygon(
		[]polygon.PointId{0, 1},
		[]polygon.VertexId{0, 1},
	)
	pos := polygon.SlicePositionTable{vec2.New(0, 0), vec2.New(1, 1)}

	c := NewContext()
	err := c.Triangulate(sub, pos, DiscardSink{})

	require.Error(t, err)
	var triErr *Error
	require.ErrorAs(t, err, &triErr)
	assert.Equal(t, InvalidPath, triErr.Kind)
}

func TestFixedBufferSinkAdvancesOffset(t *testing.T) {
	buf := make([]polygon.VertexId, 6)
	sink := NewFixedBufferSink(buf)
	sink.PushIndices(0, 1, 2)
	assert.Equal(t, 3, sink.Offset())
	sink.PushIndices(3, 4, 5)
	assert.Equal(t, 6, sink.Offset())
	assert.Equal(t, []polygon.VertexId{0, 1, 2, 3, 4, 5}, buf)
}

func TestSliceSinkReset(t *testing.T) {
	sink := NewSliceSink(0)
	sink.PushIndices(0, 1, 2)
	sink.Reset()
	assert.Empty(t, sink.Indices)
}

func TestDiscardSinkDropsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		DiscardSink{}.PushIndices(0, 1, 2)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NotMonotone", NotMonotone.String())
	assert.Equal(t, "InvalidPath", InvalidPath.String())
	assert.Equal(t, "MissingFace", MissingFace.String())
}

func TestContextResetClearsStack(t *testing.T) {
	sub := subPolygon(
		[]polygon.PointId{0, 1, 2},
		[]polygon.VertexId{0, 1, 2},
	)
	pos := polygon.SlicePositionTable{
		vec2.New(-10, 5),
		vec2.New(0, -5),
		vec2.New(10, 5),
	}

	c := NewContext()
	require.NoError(t, c.Triangulate(sub, pos, DiscardSink{}))
	c.Reset()
	assert.Len(t, c.stack, 0)
}
