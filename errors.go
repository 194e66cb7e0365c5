package polyshell

import "errors"

// ErrInvalidPolygon indicates the input polygon is not closed, or has fewer than
// three distinct vertices.
var ErrInvalidPolygon = errors.New("polyshell: polygon is not closed or has fewer than three distinct vertices")

// ErrUnsupportedCombination indicates a combination of mode and method this package
// does not support, such as LENGTH mode with the RDP method.
var ErrUnsupportedCombination = errors.New("polyshell: unsupported mode/method combination")

// ErrConvergenceFailure indicates a reducer could not make progress on well-formed
// input. This must never occur in practice; its presence in a returned error
// indicates a bug in this package rather than in the caller's input.
var ErrConvergenceFailure = errors.New("polyshell: reducer failed to converge")

// ErrUnimplemented indicates a requested mode (currently only AUTO) has no
// implementation. The upstream algorithm this package is based on contains
// experimental adaptive-epsilon logic that was never made reliable; rather than
// guess at its semantics, this package reports it as unimplemented.
var ErrUnimplemented = errors.New("polyshell: mode is reserved and not implemented")
