// Package vec2 defines the foundational geometric primitive used by the
// polytri triangulation core: a single-precision 2D point/vector.
//
// # Overview
//
// Vec2 is intentionally narrow compared to a general-purpose point type:
// single precision only, no epsilon-tolerant equality, no transforms. The
// triangulation core's tie-breaking policy (see [predicate.IsBelow]) is
// only correct if every component that touches a coordinate uses identical
// arithmetic; giving the core a richer, configurable point type would
// invite exactly the kind of float64-vs-float32 or epsilon-vs-exact
// mismatch the design note in the polytri package warns against.
package vec2

import "fmt"

// Vec2 represents a point or vector in 2D space with single-precision
// coordinates.
type Vec2 struct {
	X float32
	Y float32
}

// New returns a new Vec2 with the given coordinates.
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the vector from b to a, i.e. a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a x b = a.X*b.Y - a.Y*b.X
//
// A positive result indicates a counter-clockwise turn, a negative result
// a clockwise turn, and zero indicates collinear vectors.
func (a Vec2) CrossProduct(b Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// DotProduct returns the dot product of two vectors.
func (a Vec2) DotProduct(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Negate returns the vector with both components negated.
func (a Vec2) Negate() Vec2 {
	return Vec2{X: -a.X, Y: -a.Y}
}

// String returns a string representation of the vector in the format
// "(x, y)".
func (a Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
