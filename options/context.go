package options

// StatusKind selects which sweep-status implementation a decomposition
// context uses internally.
type StatusKind uint8

const (
	// StatusFlat is the resorted flat sequence mandated as the baseline
	// by the decomposer's design: O(n^2) worst case, but simple and cache
	// friendly for small and medium polygons.
	StatusFlat StatusKind = iota

	// StatusTree is a red-black-tree backed status structure, a legitimate
	// optimisation for larger polygons.
	StatusTree
)

// ContextOptionsFunc is a functional option type used to configure a
// decomposition or triangulation context. Functions that accept a
// ContextOptionsFunc parameter allow callers to customize buffer sizing
// and internal data structure choice without changing the constructor's
// signature.
type ContextOptionsFunc func(*ContextOptions)

// ContextOptions defines the configurable parameters for a context.
type ContextOptions struct {
	// InitialCapacity hints the expected number of points a context will
	// process per call, so its scratch buffers can be pre-sized. A value
	// of 0 leaves buffers to grow on demand.
	InitialCapacity int

	// Status selects the sweep-status implementation used by a
	// decomposition context. Defaults to StatusFlat.
	Status StatusKind
}

// ApplyContextOptions applies a set of functional options to a given
// options struct, starting with a set of default values.
func ApplyContextOptions(defaults ContextOptions, opts ...ContextOptionsFunc) ContextOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithInitialCapacity returns a ContextOptionsFunc that pre-sizes a
// context's scratch buffers for roughly n points. Negative values are
// treated as 0 (no pre-sizing).
func WithInitialCapacity(n int) ContextOptionsFunc {
	return func(opts *ContextOptions) {
		if n < 0 {
			n = 0
		}
		opts.InitialCapacity = n
	}
}

// WithStatusStructure returns a ContextOptionsFunc that selects the
// sweep-status implementation a decomposition context uses.
func WithStatusStructure(kind StatusKind) ContextOptionsFunc {
	return func(opts *ContextOptions) {
		opts.Status = kind
	}
}
