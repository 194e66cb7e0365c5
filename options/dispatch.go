package options

// WithWorkers returns a [GeometryOptionsFunc] that caps the number of concurrent
// reducer workers the dispatcher spawns when splitting a polygon at its convex-hull
// vertices (one worker per hull segment).
//
// Parameters:
//   - n: The maximum number of concurrent workers. A value <= 0 resets to the default:
//     no cap, one concurrent worker per hull segment.
//
// Behavior:
//   - WithWorkers(1) forces strictly serial reduction, which is semantically
//     equivalent to the concurrent path and useful for reproducible benchmarking
//     or debugging.
//
// Returns:
//   - A [GeometryOptionsFunc] that sets the Workers field in the GeometryOptions struct.
func WithWorkers(n int) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if n < 0 {
			n = 0
		}
		opts.Workers = n
	}
}

// WithMaxBoundaryNodes returns a [GeometryOptionsFunc] that bounds the number of
// boundary vertices the CharShape reducer will accept, independent of its
// edge-length stopping threshold.
//
// Parameters:
//   - n: The maximum number of boundary vertices. A value <= 0 disables the bound.
//
// Returns:
//   - A [GeometryOptionsFunc] that sets the MaxBoundaryNodes field in the GeometryOptions struct.
func WithMaxBoundaryNodes(n int) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if n < 0 {
			n = 0
		}
		opts.MaxBoundaryNodes = n
	}
}
