package monotonicity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/vec2"
)

func TestCheckTriangleIsMonotone(t *testing.T) {
	poly := polygon.New([]polygon.VertexId{0, 1, 2})
	pos := polygon.SlicePositionTable{
		vec2.New(-10, 5),
		vec2.New(0, -5),
		vec2.New(10, 5),
	}
	assert.True(t, Check(poly, pos))
}

func TestCheckConcaveArrowIsNotMonotone(t *testing.T) {
	poly := polygon.New([]polygon.VertexId{0, 1, 2, 3, 4, 5, 6})
	pos := polygon.SlicePositionTable{
		vec2.New(0, 0),
		vec2.New(3, 0),
		vec2.New(2, 1),
		vec2.New(3, 2),
		vec2.New(2, 3),
		vec2.New(0, 2),
		vec2.New(1, 1),
	}
	assert.False(t, Check(poly, pos), "the arrow shape has a reflex vertex that must classify as Split or Merge")
}

func TestCheckSubPolygonMonotone(t *testing.T) {
	poly := polygon.New([]polygon.VertexId{0, 1, 2, 3})
	sub := polygon.NewSubPolygon([]polygon.PointId{0, 1, 2, 3}, poly)
	pos := polygon.SlicePositionTable{
		vec2.New(1, 2),
		vec2.New(1.5, 3),
		vec2.New(0, 4),
		vec2.New(-1, 1),
	}
	assert.True(t, CheckSubPolygon(sub, pos))
}
