package vec2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	assert.Equal(t, New(4, 6), a.Add(b))
}

func TestSub(t *testing.T) {
	a := New(5, 7)
	b := New(2, 1)
	assert.Equal(t, New(3, 6), a.Sub(b))
}

func TestCrossProduct(t *testing.T) {
	tests := map[string]struct {
		a, b     Vec2
		expected float32
	}{
		"counter-clockwise pair": {a: New(1, 0), b: New(0, 1), expected: 1},
		"clockwise pair":         {a: New(0, 1), b: New(1, 0), expected: -1},
		"collinear pair":         {a: New(2, 0), b: New(4, 0), expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.CrossProduct(tc.b))
		})
	}
}

func TestDotProduct(t *testing.T) {
	assert.Equal(t, float32(11), New(1, 2).DotProduct(New(3, 4)))
}

func TestNegate(t *testing.T) {
	assert.Equal(t, New(-1, 2), New(1, -2).Negate())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2)", New(1, 2).String())
}
