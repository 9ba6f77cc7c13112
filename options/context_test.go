package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithInitialCapacity(t *testing.T) {
	tests := map[string]struct {
		input    int
		expected int
	}{
		"positive value":           {input: 64, expected: 64},
		"zero value":               {input: 0, expected: 0},
		"negative value clamps to zero": {input: -5, expected: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := ApplyContextOptions(ContextOptions{}, WithInitialCapacity(tc.input))
			assert.Equal(t, tc.expected, opts.InitialCapacity)
		})
	}
}

func TestWithStatusStructure(t *testing.T) {
	opts := ApplyContextOptions(ContextOptions{Status: StatusFlat}, WithStatusStructure(StatusTree))
	assert.Equal(t, StatusTree, opts.Status)
}

func TestApplyContextOptionsDefaults(t *testing.T) {
	opts := ApplyContextOptions(ContextOptions{InitialCapacity: 10, Status: StatusFlat})
	assert.Equal(t, 10, opts.InitialCapacity)
	assert.Equal(t, StatusFlat, opts.Status)
}
