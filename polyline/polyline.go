// Package polyline defines the vertex-sequence containers every reducer in polyshell
// operates on: Polyline, an open ordered sequence of at least one [coord.Coord], and
// Polygon, a closed Polyline whose first and last vertices coincide and which carries
// at least three distinct vertices (four coordinates counting the repeated closing
// vertex).
//
// # Notes
//
//   - Polygon stores its closing vertex explicitly (len(vertices) == n+1 for an
//     n-vertex polygon), mirroring how the reducers in this module want to walk the
//     boundary as a cyclic sequence of Line segments without special-casing the wrap.
package polyline

import (
	"errors"
	"fmt"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
)

// ErrEmptyPolyline indicates an attempt to construct a Polyline from zero vertices.
var ErrEmptyPolyline = errors.New("polyline: must have at least one vertex")

// ErrTooFewVertices indicates an attempt to construct a Polygon with fewer than three
// distinct vertices.
var ErrTooFewVertices = errors.New("polyline: polygon must have at least three distinct vertices")

// ClosureError indicates an attempt to construct a Polygon whose first and last
// coordinates are not identical.
type ClosureError struct {
	First, Last coord.Coord
}

func (e *ClosureError) Error() string {
	return fmt.Sprintf("polyline: polygon is not closed: first %s, last %s", e.First, e.Last)
}

// SeamError indicates that [Merge] was asked to join two polylines whose shared
// boundary vertices do not coincide.
type SeamError struct {
	Index       int
	Left, Right coord.Coord
}

func (e *SeamError) Error() string {
	return fmt.Sprintf("polyline: seam mismatch at boundary %d: %s vs %s", e.Index, e.Left, e.Right)
}

// Polyline is an ordered, open sequence of vertices.
type Polyline struct {
	vertices []coord.Coord
}

// New creates a Polyline from vertices, copying the slice so later mutation by the
// caller cannot corrupt it.
//
// Returns:
//   - [ErrEmptyPolyline] if vertices is empty.
func New(vertices []coord.Coord) (Polyline, error) {
	if len(vertices) == 0 {
		return Polyline{}, ErrEmptyPolyline
	}
	cp := make([]coord.Coord, len(vertices))
	copy(cp, vertices)
	return Polyline{vertices: cp}, nil
}

// Len returns the number of vertices in p.
func (p Polyline) Len() int {
	return len(p.vertices)
}

// At returns the vertex at index i.
//
// Panics:
//   - If i is out of range [0, p.Len()).
func (p Polyline) At(i int) coord.Coord {
	return p.vertices[i]
}

// Vertices returns a copy of the underlying vertex slice.
func (p Polyline) Vertices() []coord.Coord {
	cp := make([]coord.Coord, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// Slice returns the half-open sub-polyline [i, j).
//
// Panics:
//   - If the range is invalid (i<0, j>p.Len(), i>=j).
func (p Polyline) Slice(i, j int) Polyline {
	if i < 0 || j > len(p.vertices) || i >= j {
		panic(fmt.Sprintf("polyline: invalid slice range [%d,%d) on length %d", i, j, len(p.vertices)))
	}
	cp := make([]coord.Coord, j-i)
	copy(cp, p.vertices[i:j])
	return Polyline{vertices: cp}
}

// Lines returns the n-1 line segments joining adjacent vertices of p, in order.
func (p Polyline) Lines() []geometry.Line {
	lines := make([]geometry.Line, 0, max(0, len(p.vertices)-1))
	for i := 0; i+1 < len(p.vertices); i++ {
		l, err := geometry.NewLine(p.vertices[i], p.vertices[i+1])
		if err != nil {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Triangles returns the consecutive vertex triples (v[i-1], v[i], v[i+1]) of p, in
// order, one per interior vertex.
func (p Polyline) Triangles() []geometry.Triangle {
	if len(p.vertices) < 3 {
		return nil
	}
	tris := make([]geometry.Triangle, 0, len(p.vertices)-2)
	for i := 1; i+1 < len(p.vertices); i++ {
		tris = append(tris, geometry.Triangle{A: p.vertices[i-1], B: p.vertices[i], C: p.vertices[i+1]})
	}
	return tris
}

// String returns a human-readable representation of p's vertices.
func (p Polyline) String() string {
	return fmt.Sprintf("%v", p.vertices)
}

// Polygon is a closed Polyline: its first and last vertices coincide, and it carries
// at least three distinct vertices.
type Polygon struct {
	vertices []coord.Coord // len == n+1, vertices[0] == vertices[n]
}

// NewPolygon creates a Polygon from vertices. If the caller has not already repeated
// the first vertex as the last, NewPolygon treats vertices as the n distinct boundary
// vertices and closes the ring automatically.
//
// Returns:
//   - [ErrTooFewVertices] if fewer than three distinct vertices are supplied.
//   - [*ClosureError] if vertices has more than n+1 entries but its first and last
//     entries do not coincide.
func NewPolygon(vertices []coord.Coord) (Polygon, error) {
	if len(vertices) == 0 {
		return Polygon{}, ErrTooFewVertices
	}
	first, last := vertices[0], vertices[len(vertices)-1]
	closed := first.Eq(last)

	var distinct int
	if closed {
		distinct = len(vertices) - 1
	} else {
		distinct = len(vertices)
	}
	if distinct < 3 {
		return Polygon{}, ErrTooFewVertices
	}

	cp := make([]coord.Coord, 0, distinct+1)
	if closed {
		cp = append(cp, vertices...)
	} else {
		cp = append(cp, vertices...)
		cp = append(cp, vertices[0])
	}
	if !cp[0].Eq(cp[len(cp)-1]) {
		return Polygon{}, &ClosureError{First: cp[0], Last: cp[len(cp)-1]}
	}
	return Polygon{vertices: cp}, nil
}

// Len returns the number of distinct vertices in the polygon (excluding the repeated
// closing vertex).
func (p Polygon) Len() int {
	return len(p.vertices) - 1
}

// At returns the i-th distinct vertex, indices taken modulo [Polygon.Len].
func (p Polygon) At(i int) coord.Coord {
	n := p.Len()
	idx := ((i % n) + n) % n
	return p.vertices[idx]
}

// Vertices returns a copy of the distinct boundary vertices (the closing vertex is
// not repeated).
func (p Polygon) Vertices() []coord.Coord {
	cp := make([]coord.Coord, p.Len())
	copy(cp, p.vertices[:p.Len()])
	return cp
}

// Ring returns a copy of the closed vertex ring, with the first vertex repeated as
// the last.
func (p Polygon) Ring() []coord.Coord {
	cp := make([]coord.Coord, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// Slice returns the boundary chain from index i to index j, inclusive of both
// endpoints, walking forward and crossing the seam (index 0) if j < i.
//
// Panics:
//   - If i or j is out of range [0, p.Len()).
func (p Polygon) Slice(i, j int) Polyline {
	n := p.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("polyline: index out of range for polygon of length %d: i=%d j=%d", n, i, j))
	}
	var out []coord.Coord
	if i <= j {
		out = make([]coord.Coord, 0, j-i+1)
		for k := i; k <= j; k++ {
			out = append(out, p.vertices[k])
		}
	} else {
		out = make([]coord.Coord, 0, n-i+j+1)
		for k := i; k < n; k++ {
			out = append(out, p.vertices[k])
		}
		for k := 0; k <= j; k++ {
			out = append(out, p.vertices[k])
		}
	}
	pl, _ := New(out)
	return pl
}

// Lines returns the n boundary line segments of p, in order, including the closing
// segment from the last distinct vertex back to the first.
func (p Polygon) Lines() []geometry.Line {
	lines := make([]geometry.Line, 0, p.Len())
	for i := 0; i+1 < len(p.vertices); i++ {
		l, err := geometry.NewLine(p.vertices[i], p.vertices[i+1])
		if err != nil {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Triangles returns the n consecutive vertex triples of p, one centred on each
// boundary vertex, wrapping around the seam.
func (p Polygon) Triangles() []geometry.Triangle {
	n := p.Len()
	tris := make([]geometry.Triangle, 0, n)
	for i := 0; i < n; i++ {
		tris = append(tris, geometry.Triangle{A: p.At(i - 1), B: p.At(i), C: p.At(i + 1)})
	}
	return tris
}

// String returns a human-readable representation of p's boundary ring.
func (p Polygon) String() string {
	return fmt.Sprintf("%v", p.vertices)
}

// Merge concatenates polylines end to end into a single Polyline, requiring that each
// polyline's last vertex coincide exactly with the next polyline's first vertex.
//
// Returns:
//   - [ErrEmptyPolyline] if polylines is empty.
//   - [*SeamError] if two consecutive polylines do not share a coinciding boundary
//     vertex.
func Merge(polylines []Polyline) (Polyline, error) {
	if len(polylines) == 0 {
		return Polyline{}, ErrEmptyPolyline
	}
	out := make([]coord.Coord, 0)
	out = append(out, polylines[0].vertices...)
	for i := 1; i < len(polylines); i++ {
		left := out[len(out)-1]
		right := polylines[i].vertices[0]
		if !left.Eq(right) {
			return Polyline{}, &SeamError{Index: i, Left: left, Right: right}
		}
		out = append(out, polylines[i].vertices[1:]...)
	}
	return New(out)
}
