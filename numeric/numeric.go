// Package numeric provides float64 tolerance helpers for ambient code —
// test assertions, fixture generation, and reporting — that sits outside
// the core triangulation predicates.
//
// # Overview
//
// The core predicates in [github.com/mikenye/polytri/predicate] are
// deliberately exact float32 comparisons; this package is never imported
// by them. It offers epsilon-tolerant float64 comparisons for code around
// the core; no other package in this module currently imports it.
//
// # Features
//
//   - Floating-Point Comparisons: FloatEquals, FloatGreaterThan,
//     FloatLessThan, and their OrEqualTo variants compare float64 values
//     using an epsilon threshold to mitigate precision errors.
//   - Precision Adjustment: SnapToEpsilon rounds a float64 to the nearest
//     whole number when within an acceptable tolerance.
package numeric
