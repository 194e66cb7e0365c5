// Package options provides configurable settings for geometric operations in polyshell.
//
// This package defines a functional options pattern, allowing users to modify the behavior
// of various geometric functions without changing their signatures. The options
// are applied using functional parameters that modify a GeometryOptions struct.
//
// # Key Features
//
//   - Floating-Point Precision Control: The Epsilon parameter allows users to define
//     a tolerance for numerical comparisons, mitigating precision issues in floating-point arithmetic.
//   - Dispatcher Tuning: Workers caps the number of concurrent per-hull-segment reducer
//     workers the dispatcher spawns, and MaxBoundaryNodes bounds the CharShape boundary
//     independently of its edge-length threshold.
//   - Functional Options Pattern: The GeometryOptionsFunc type provides a way to apply
//     optional configurations without requiring additional parameters in function signatures.
//
// # Functional Options
//
// The package provides the following functional options:
//
//   - WithEpsilon(epsilon float64) GeometryOptionsFunc: Sets a small tolerance value for
//     floating-point operations (tolerant point equality, coord.Coord.EqEpsilon).
//   - WithWorkers(n int) GeometryOptionsFunc: Caps dispatcher concurrency; 1 forces serial
//     execution.
//   - WithMaxBoundaryNodes(n int) GeometryOptionsFunc: Bounds the CharShape boundary vertex
//     count.
//
// These options are applied using ApplyGeometryOptions, which takes a default GeometryOptions struct
// and modifies it based on the provided options.
//
// This approach ensures a clean API while allowing flexible configuration for numerical stability
// in geometric computations.
package options
