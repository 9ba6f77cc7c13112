// Package fixture defines the JSON polygon format shared by the
// cmd/polytri-triangulate and cmd/polytri-genfixture CLI front ends: one
// outer ring plus zero or more hole rings, each a list of [x, y] pairs.
//
// This is ambient CLI plumbing, not part of the triangulation core: it
// exists so the core can be exercised end to end from the command line,
// the way cmd/genlinesegments exercises package linesegment in the
// teacher repo. Fixture coordinates are float64 for convenient JSON
// round-tripping; they are narrowed to float32 only when building the
// [polygon.PositionTable] the core actually consumes, matching the
// core's documented single-precision tie-break policy.
package fixture

import (
	"fmt"

	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/vec2"
)

// Polygon is the on-disk JSON representation of a complex polygon: one
// outer ring, oriented clockwise in a y-down frame, plus zero or more
// hole rings, oriented counter-clockwise.
type Polygon struct {
	Outer [][2]float64   `json:"outer"`
	Holes [][][2]float64 `json:"holes,omitempty"`
}

// Build converts f into a [polygon.ComplexPolygon] plus the
// [polygon.SlicePositionTable] backing it. VertexIds are assigned
// densely in ring order: the outer ring first, then each hole in turn.
func (f Polygon) Build() (*polygon.ComplexPolygon, polygon.SlicePositionTable, error) {
	if len(f.Outer) < 3 {
		return nil, nil, fmt.Errorf("fixture: outer ring must have at least 3 points, got %d", len(f.Outer))
	}

	var pos polygon.SlicePositionTable
	outer := make([]polygon.VertexId, 0, len(f.Outer))
	for _, xy := range f.Outer {
		outer = append(outer, polygon.VertexId(len(pos)))
		pos = append(pos, vec2.New(float32(xy[0]), float32(xy[1])))
	}

	holes := make([][]polygon.VertexId, 0, len(f.Holes))
	for i, hole := range f.Holes {
		if len(hole) < 3 {
			return nil, nil, fmt.Errorf("fixture: hole %d must have at least 3 points, got %d", i, len(hole))
		}
		ids := make([]polygon.VertexId, 0, len(hole))
		for _, xy := range hole {
			ids = append(ids, polygon.VertexId(len(pos)))
			pos = append(pos, vec2.New(float32(xy[0]), float32(xy[1])))
		}
		holes = append(holes, ids)
	}

	return polygon.New(outer, holes...), pos, nil
}

// FromPositions builds a Polygon fixture from an already-assembled
// outer ring and hole rings of positions, the inverse of Build. Used by
// cmd/polytri-genfixture to serialize generated polygons.
func FromPositions(outer []vec2.Vec2, holes [][]vec2.Vec2) Polygon {
	f := Polygon{Outer: make([][2]float64, len(outer))}
	for i, v := range outer {
		f.Outer[i] = [2]float64{float64(v.X), float64(v.Y)}
	}
	for _, hole := range holes {
		h := make([][2]float64, len(hole))
		for i, v := range hole {
			h[i] = [2]float64{float64(v.X), float64(v.Y)}
		}
		f.Holes = append(f.Holes, h)
	}
	return f
}
