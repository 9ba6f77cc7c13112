// Package polytri implements a two-phase planar polygon triangulator for
// 2D shapes with holes.
//
// Given a complex polygon — one outer contour plus zero or more inner hole
// contours — the package decomposes it into y-monotone sub-polygons via a
// plane sweep, then triangulates each sub-polygon with a stack-based
// chain-walk. The result is a flat list of vertex-index triples suitable
// for direct rendering.
//
// # Pipeline
//
// The work is split across small packages, each owning one stage:
//
//   - [github.com/mikenye/polytri/predicate]: pure geometric predicates
//     (is-below ordering, horizontal intersection, vertex classification).
//   - [github.com/mikenye/polytri/sweep]: the sweep-line active-edge status.
//   - [github.com/mikenye/polytri/polygon]: the complex polygon container,
//     position table, and diagonal set.
//   - [github.com/mikenye/polytri/decompose]: the monotone decomposer.
//   - [github.com/mikenye/polytri/partition]: splits a polygon-plus-diagonals
//     graph into simple y-monotone sub-polygon views.
//   - [github.com/mikenye/polytri/triangulate]: the monotone triangulator and
//     output sinks.
//   - [github.com/mikenye/polytri/monotonicity]: the monotonicity checker.
//
// # Coordinate System
//
// This package assumes a y-down coordinate system: the outer ring of a
// complex polygon winds clockwise, hole rings wind counter-clockwise.
//
// # Precision
//
// All core predicates operate on float32 ([vec2.Vec2]) by design; this is
// not a stopgap, it is the documented tie-break policy. Do not promote the
// core algorithms to float64 — ambient code (CLI fixture I/O, test
// tolerances) is free to use float64 where it does not affect predicate
// outcomes.
//
// # Acknowledgments
//
// The sweep-based decomposition and Circulator-based triangulation
// algorithms implemented here are classical computational-geometry
// techniques described by Preparata & Shamos and by de Berg et al.
package polytri

import (
	"github.com/mikenye/polytri/decompose"
	"github.com/mikenye/polytri/monotonicity"
	"github.com/mikenye/polytri/options"
	"github.com/mikenye/polytri/partition"
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/triangulate"
)

func init() {
	logDebugf("debug logging enabled")
}

// Pipeline bundles one [decompose.Context] and one [triangulate.Context],
// reused across calls so the whole decompose -> partition -> triangulate
// pipeline (spec §2) can run against many polygons without reallocating
// its scratch buffers. It is not safe for concurrent use; create one
// Pipeline per worker goroutine, per spec §5.
type Pipeline struct {
	decompose   *decompose.Context
	triangulate *triangulate.Context
	diagonals   *polygon.Diagonals
}

// NewPipeline returns a Pipeline ready to triangulate complex polygons,
// configured by opts. The same opts are applied to both the decompose
// and triangulate contexts.
func NewPipeline(opts ...options.ContextOptionsFunc) *Pipeline {
	return &Pipeline{
		decompose:   decompose.NewContext(opts...),
		triangulate: triangulate.NewContext(opts...),
		diagonals:   polygon.NewDiagonals(),
	}
}

// Triangulate decomposes poly into y-monotone pieces, partitions it
// accordingly, and triangulates every piece, pushing every resulting
// triangle's three VertexIds, in order, to sink.
//
// It returns whatever [decompose.Context.Decompose], [partition.Partition],
// or [triangulate.Context.Triangulate] returns on failure. A sub-polygon
// that fails the [monotonicity.Check] sanity gate (which should never
// happen for a correctly decomposed polygon) surfaces as a
// [triangulate.Error] with [triangulate.NotMonotone].
func (p *Pipeline) Triangulate(poly polygon.Polygon, pos polygon.PositionTable, sink triangulate.Sink) error {
	p.diagonals.Reset()

	if err := p.decompose.Decompose(poly, pos, p.diagonals); err != nil {
		return err
	}

	subPolys, err := partition.Partition(poly, pos, p.diagonals)
	if err != nil {
		return err
	}

	for _, sp := range subPolys {
		if !monotonicity.CheckSubPolygon(sp, pos) {
			return &triangulate.Error{Kind: triangulate.NotMonotone, Point: sp.FirstPoint()}
		}
		if err := p.triangulate.Triangulate(sp, pos, sink); err != nil {
			return err
		}
	}
	return nil
}
