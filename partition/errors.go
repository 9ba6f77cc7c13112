package partition

import (
	"fmt"

	"github.com/mikenye/polytri/polygon"
)

// Kind identifies the category of a partition failure.
type Kind uint8

const (
	// MissingFace is raised when the face walk cannot close back on its
	// starting point: a diagonal or ring edge references a point whose
	// outgoing edges have already been fully consumed by other faces,
	// which only happens against a malformed diagonal set (one that does
	// not actually cut the polygon into simple pieces).
	MissingFace Kind = iota
)

func (k Kind) String() string {
	switch k {
	case MissingFace:
		return "MissingFace"
	default:
		return "Unknown"
	}
}

// Error reports a partition failure.
type Error struct {
	Kind  Kind
	Point polygon.PointId
}

func (e *Error) Error() string {
	return fmt.Sprintf("partition: %s (at point %d)", e.Kind, e.Point)
}
