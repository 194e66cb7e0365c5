package polyshell

import (
	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/hull"
	"github.com/polyshell/polyshell/polyline"
)

// Melkman computes the convex hull of p's vertices using the Melkman algorithm,
// returning it as a closed Polygon traversed counterclockwise.
//
// Returns:
//   - [ErrInvalidPolygon] if p has fewer than three distinct vertices.
func Melkman(p polyline.Polygon) (polyline.Polygon, error) {
	if p.Len() < 3 {
		return polyline.Polygon{}, ErrInvalidPolygon
	}
	hullVerts := hull.Melkman(p.Vertices())
	return polyline.NewPolygon(hullVerts)
}

// MelkmanIndices computes the convex hull of p's vertices and returns the indices, in
// counterclockwise order, of the hull vertices within p (see [polyline.Polygon.At]).
// The first index is not repeated at the end.
//
// Returns:
//   - [ErrInvalidPolygon] if p has fewer than three distinct vertices.
func MelkmanIndices(p polyline.Polygon) ([]int, error) {
	if p.Len() < 3 {
		return nil, ErrInvalidPolygon
	}
	idx := hull.MelkmanIndices(p.Vertices())
	return idx[:len(idx)-1], nil
}

// melkmanIndicesClosed is the internal helper the dispatcher uses: it wants the
// closing repeat so that consecutive pairs directly give each hull segment's
// [start, end] boundary.
func melkmanIndicesClosed(verts []coord.Coord) []int {
	return hull.MelkmanIndices(verts)
}
