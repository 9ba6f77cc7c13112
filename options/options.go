// Package options provides configurable settings for the decomposition and
// triangulation contexts in the polytri library.
//
// This package defines a functional options pattern, allowing callers to
// tune the behavior of [github.com/mikenye/polytri/decompose.Context] and
// [github.com/mikenye/polytri/triangulate.Context] without changing their
// constructor signatures. Unlike geometric epsilon options in other
// computational-geometry libraries, these options never affect the result
// of a predicate — polytri's core predicates are exact float32 comparisons
// by design — they only affect the reusable scratch buffers each context
// owns: their initial sizing and, for a decomposition context, which
// sweep-status structure it uses.
//
// # Functional Options
//
//   - WithInitialCapacity(n int) ContextOptionsFunc: pre-sizes a context's
//     scratch buffers (helper table, sweep state, vertex stack) so the
//     first call against a polygon of roughly n points does not grow them.
//   - WithStatusStructure(kind StatusKind) ContextOptionsFunc: selects the
//     sweep-status implementation a decomposition context uses.
//
// These options are applied using ApplyContextOptions, which takes a
// default ContextOptions struct and modifies it based on the supplied
// options.
package options
