// Package hull implements the Melkman algorithm for the convex hull of a simple
// polyline or polygon in linear time.
package hull

import (
	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/types"
)

// Melkman returns the convex hull of vertices as a closed, counterclockwise sequence
// of coordinates, with the first coordinate repeated at the end. Collinear points are
// dropped from the hull. If len(vertices) < 3, Melkman returns vertices unchanged.
func Melkman(vertices []coord.Coord) []coord.Coord {
	indices := MelkmanIndices(vertices)
	out := make([]coord.Coord, len(indices))
	for i, idx := range indices {
		out[i] = vertices[idx]
	}
	return out
}

// MelkmanIndices returns the indices into vertices forming the convex hull in
// counterclockwise order, with the first index repeated at the end. Collinear points
// are dropped. If len(vertices) < 3, MelkmanIndices returns [0, len(vertices)).
func MelkmanIndices(vertices []coord.Coord) []int {
	n := len(vertices)
	if n < 3 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	// deque holds vertex indices; front and back are the two open ends.
	// Capacity 2n+1 is always sufficient: Melkman pushes at most twice per vertex.
	deque := make([]int, 2*n+1)
	bottom, top := n, n+1

	orient := func(i, j, k int) types.PointOrientation {
		return geometry.Orientation(vertices[i], vertices[j], vertices[k])
	}

	// Seed the deque with the first three vertices, ordered so they form a
	// counterclockwise triangle; skip leading collinear triples.
	start := 0
	for start+2 < n && orient(start, start+1, start+2) == types.PointsCollinear {
		start++
	}
	if start+2 >= n {
		// Entire input is collinear: there is no hull, so every index is returned in
		// input order, unclosed.
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	i0, i1, i2 := 0, start+1, start+2
	if orient(i0, i1, i2) == types.PointsClockwise {
		i0, i1 = i1, i0
	}
	deque[bottom] = i2
	deque[bottom+1] = i0
	deque[bottom+2] = i1
	deque[bottom+3] = i2
	bottom, top = bottom, bottom+3

	for i := start + 3; i < n; i++ {
		p := i
		if orient(deque[top-1], deque[top], p) == types.PointsCounterClockwise &&
			orient(p, deque[bottom], deque[bottom+1]) == types.PointsCounterClockwise {
			continue // p lies inside the current hull
		}
		for top-bottom >= 2 && orient(deque[top-1], deque[top], p) != types.PointsCounterClockwise {
			top--
		}
		top++
		deque[top] = p

		for top-bottom >= 2 && orient(p, deque[bottom], deque[bottom+1]) != types.PointsCounterClockwise {
			bottom++
		}
		bottom--
		deque[bottom] = p
	}

	hull := make([]int, 0, top-bottom+1)
	for k := bottom; k <= top; k++ {
		hull = append(hull, deque[k])
	}
	return hull
}
