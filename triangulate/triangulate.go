// Package triangulate implements the monotone triangulator: given one
// y-monotone simple sub-polygon, it emits n-2 triangles as vertex-index
// triples through a [Sink].
//
// The classical algorithm requires walking the sub-polygon's left and
// right chains top to bottom in merged y order. This implementation
// follows spec §4.5 literally: two [Circulator] walkers, "main" and
// "opposite", share one traversal routine by carrying their own
// direction, so the same code handles both chains without a
// chain-specific code path.
package triangulate

import (
	"math"

	"github.com/mikenye/polytri/options"
	"github.com/mikenye/polytri/polygon"
	"github.com/mikenye/polytri/predicate"
	"github.com/mikenye/polytri/vec2"
)

// Context owns the reusable vertex-stack scratch buffer a triangulation
// call needs. It is not safe for concurrent use; create one Context per
// worker goroutine.
type Context struct {
	opts  options.ContextOptions
	stack []Circulator
}

// NewContext returns a Context ready to triangulate sub-polygons,
// configured by opts.
func NewContext(opts ...options.ContextOptionsFunc) *Context {
	o := options.ApplyContextOptions(options.ContextOptions{}, opts...)
	return &Context{
		opts:  o,
		stack: make([]Circulator, 0, o.InitialCapacity),
	}
}

// Reset clears the context's scratch buffer for reuse, retaining its
// backing storage.
func (c *Context) Reset() {
	c.stack = c.stack[:0]
}

// Triangulate triangulates one y-monotone sub-polygon, pushing n-2
// triangles into sink in no particular order. Callers are responsible
// for having already confirmed poly is y-monotone (package
// monotonicity); Triangulate does not re-derive that here.
//
// It returns a [*Error] with [InvalidPath] if poly has fewer than 3
// points.
func (c *Context) Triangulate(poly MonotonePolygon, pos polygon.PositionTable, sink Sink) error {
	c.Reset()

	n := poly.NumVertices()
	if n < 3 {
		return &Error{Kind: InvalidPath, Point: poly.FirstPoint()}
	}

	at := func(c Circulator) vec2.Vec2 {
		return pos.Vertex(poly.Vertex(c.Point))
	}

	// (a) Find an initial orientation, then the topmost (up) and
	// bottommost (down) vertices.
	up := Circulator{Point: poly.FirstPoint(), Direction: polygon.Forward}
	down := up

	for {
		down = next(poly, down)
		if at(up).Y != at(down).Y {
			break
		}
		if down == up {
			break
		}
	}

	if predicate.IsBelow(at(up), at(down)) {
		up.Direction = polygon.Forward
	} else {
		up.Direction = polygon.Backward
	}
	down.Direction = reverse(up.Direction)

	bigY := at(down)
	guard := down
	for {
		down = next(poly, down)
		newY := at(down)
		if predicate.IsBelow(bigY, newY) {
			down = previous(poly, down)
			break
		}
		bigY = newY
		if down == guard {
			break
		}
	}

	smallY := at(up)
	guard = up
	for {
		up = next(poly, up)
		newY := at(up)
		if predicate.IsBelow(newY, smallY) {
			up = previous(poly, up)
			break
		}
		smallY = newY
		if up == guard {
			break
		}
	}

	// (b) Initialise the dual walkers.
	m := up
	o := up
	m.Direction = polygon.Forward
	o.Direction = polygon.Backward

	m = next(poly, m)
	o = next(poly, o)

	if predicate.IsBelow(at(m), at(o)) {
		m, o = o, m
	}

	m = previous(poly, m)
	p := m

	triangleCount := 0

	// (c) Main loop.
	for i := 0; ; i++ {
		if predicate.IsBelow(at(m), at(o)) || m == down {
			m, o = o, m
		}

		switch {
		case i < 2:
			c.stack = append(c.stack, m)

		case len(c.stack) > 0 && m.Direction != c.stack[len(c.stack)-1].Direction:
			for j := 0; j < len(c.stack)-1; j++ {
				sink.PushIndices(poly.Vertex(m.Point), poly.Vertex(c.stack[j].Point), poly.Vertex(c.stack[j+1].Point))
				triangleCount++
			}
			c.stack = c.stack[:0]
			c.stack = append(c.stack, p, m)

		default:
			lastPopped, ok := c.pop()
			for ok && len(c.stack) > 0 {
				id1 := poly.Vertex(c.stack[len(c.stack)-1].Point)
				id2 := poly.Vertex(lastPopped.Point)
				id3 := poly.Vertex(m.Point)
				if m.Direction == polygon.Backward {
					id1, id3 = id3, id1
				}

				v1 := pos.Vertex(id1)
				v2 := pos.Vertex(id2)
				v3 := pos.Vertex(id3)
				if predicate.DirectedAngle(v1.Sub(v2), v3.Sub(v2)) > math.Pi {
					sink.PushIndices(id1, id2, id3)
					triangleCount++
					lastPopped, ok = c.pop()
				} else {
					break
				}
			}
			if ok {
				c.stack = append(c.stack, lastPopped)
			}
			c.stack = append(c.stack, m)
		}

		if m.Point == down.Point && o.Point == down.Point {
			break
		}

		p = m
		m = next(poly, m)
		if predicate.IsBelow(at(p), at(m)) {
			logDebugf("monotone progression violated at point %d -> %d", p.Point, m.Point)
		}
	}

	logDebugf("emitted %d triangles for %d-point sub-polygon", triangleCount, n)
	return nil
}

// pop removes and returns the top of the vertex stack.
func (c *Context) pop() (Circulator, bool) {
	if len(c.stack) == 0 {
		return Circulator{}, false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return top, true
}
