package triangulate

import (
	"fmt"

	"github.com/mikenye/polytri/polygon"
)

// Kind identifies the category of a triangulation failure.
type Kind uint8

const (
	// NotMonotone is raised when a sub-polygon handed to Triangulate is
	// not y-monotone. Callers are expected to have already checked this
	// via package monotonicity; Triangulate itself does not re-scan for
	// Split/Merge vertices, since doing so would duplicate the O(n) check
	// the caller is expected to have already performed.
	NotMonotone Kind = iota
	// InvalidPath is raised when a sub-polygon's Circulator traversal
	// cannot be completed. Triangulate raises it for a sub-polygon with
	// fewer than 3 points; no other traversal failure is detected.
	InvalidPath
	// MissingFace would indicate a sub-polygon referencing a point the
	// triangulator cannot resolve. Nothing in this module's triangulator
	// raises it; it mirrors the reference
	// algorithm's error taxonomy, which defines but never emits it
	// either.
	MissingFace
)

func (k Kind) String() string {
	switch k {
	case NotMonotone:
		return "NotMonotone"
	case InvalidPath:
		return "InvalidPath"
	case MissingFace:
		return "MissingFace"
	default:
		return "Unknown"
	}
}

// Error reports a triangulation failure.
type Error struct {
	Kind  Kind
	Point polygon.PointId
}

func (e *Error) Error() string {
	return fmt.Sprintf("triangulate: %s (at point %d)", e.Kind, e.Point)
}
