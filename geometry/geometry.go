// Package geometry provides the primitive geometric operations that every reducer in
// polyshell is built on: lines and triangles over [coord.Coord], their cross products
// and signed areas, three-point orientation, segment-segment intersection, and axis-aligned
// bounding boxes.
//
// # Notes
//
//   - The collinear-no-intersection rule in [SegmentsIntersect] (a zero determinant
//     reports no intersection, even though the segments may be collinear and overlapping)
//     is deliberate: every reducer queries the segment index with candidate segments that
//     share an endpoint with their immediate neighbours, and those shared-endpoint cases
//     must not register as crossings. Callers that need to special-case exact endpoint
//     contact do so explicitly with [coord.Coord.Eq], not through this predicate.
package geometry

import (
	"errors"
	"fmt"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/types"
)

// ErrDegenerateLine indicates an attempt to construct a [Line] whose two endpoints are
// identical.
var ErrDegenerateLine = errors.New("geometry: line endpoints must be distinct")

// Line is an ordered pair (P, Q) of distinct [coord.Coord] values. Unlike some line
// segment types, Line does not normalize or reorder its endpoints: P and Q keep the
// order they were constructed with, since reducers rely on that order to express
// directed adjacency along a polyline.
type Line struct {
	P, Q coord.Coord
}

// NewLine creates a Line from p to q.
//
// Returns:
//   - [ErrDegenerateLine] if p and q are identical (exact equality).
func NewLine(p, q coord.Coord) (Line, error) {
	if p.Eq(q) {
		return Line{}, fmt.Errorf("%w: %s", ErrDegenerateLine, p)
	}
	return Line{P: p, Q: q}, nil
}

// Vector returns the displacement vector from l.P to l.Q.
func (l Line) Vector() coord.Coord {
	return l.Q.Sub(l.P)
}

// BBox returns the axis-aligned bounding box of l.
func (l Line) BBox() BBox {
	return bboxOfPoints(l.P, l.Q)
}

// String returns a string representation of l in the format "(x1,y1)->(x2,y2)".
func (l Line) String() string {
	return fmt.Sprintf("%s->%s", l.P, l.Q)
}

// Triangle is an ordered triple (A, B, C) of [coord.Coord] values.
type Triangle struct {
	A, B, C coord.Coord
}

// SignedArea returns the signed area of t:
//
//	S = 1/2 * ((B-A) x (C-B))
//
// The sign indicates traversal direction: positive for counterclockwise, negative for
// clockwise, zero for collinear points.
func (t Triangle) SignedArea() float64 {
	ba := t.B.Sub(t.A)
	cb := t.C.Sub(t.B)
	return 0.5 * ba.CrossProduct(cb)
}

// UnsignedArea returns the absolute value of [Triangle.SignedArea].
func (t Triangle) UnsignedArea() float64 {
	s := t.SignedArea()
	if s < 0 {
		return -s
	}
	return s
}

// BBox returns the axis-aligned bounding box of t.
func (t Triangle) BBox() BBox {
	return bboxOfPoints(t.A, t.B, t.C)
}

// Orientation classifies the turn formed by three points a, b, c using the sign of
//
//	cross2(b-a, b-c)
//
// A positive value is a clockwise turn at b, a negative value a counterclockwise turn,
// and zero means the points are collinear.
//
// Note this is a distinct formula from [Triangle.SignedArea] (different operand order),
// used by the Melkman convex-hull algorithm, which rejects collinear points (sign
// zero) from the hull, and by the Delaunay in-circle test.
func Orientation(a, b, c coord.Coord) types.PointOrientation {
	ba := b.Sub(a)
	bc := b.Sub(c)
	val := ba.CrossProduct(bc)
	switch {
	case val > 0:
		return types.PointsClockwise
	case val < 0:
		return types.PointsCounterClockwise
	default:
		return types.PointsCollinear
	}
}

// SegmentsIntersect reports whether line segments s and t cross, using the standard
// parametric test:
//
//	r = s.Q - s.P, u = t.Q - t.P, d = t.P - s.P, det = cross2(r, u)
//
// If det is zero the segments are parallel or collinear; this predicate reports no
// intersection in that case (see package doc). Otherwise it solves for
// lambda = cross2(d,u)/det and mu = cross2(d,r)/det and reports an intersection iff
// both lie in [0,1]. Endpoint contact (lambda or mu equal to 0 or 1) is reported as
// an intersection; callers that need to exclude shared endpoints filter explicitly.
func SegmentsIntersect(s, t Line) bool {
	r := s.Vector()
	u := t.Vector()
	d := t.P.Sub(s.P)
	det := r.CrossProduct(u)
	if det == 0 {
		return false
	}
	lambda := d.CrossProduct(u) / det
	mu := d.CrossProduct(r) / det
	return lambda >= 0 && lambda <= 1 && mu >= 0 && mu <= 1
}

// SharesEndpoint reports whether lines s and t share an endpoint by exact coordinate
// equality. Reducers use this to exclude adjacent-segment endpoint contact from the
// self-intersection test before calling [SegmentsIntersect].
func SharesEndpoint(s, t Line) bool {
	return s.P.Eq(t.P) || s.P.Eq(t.Q) || s.Q.Eq(t.P) || s.Q.Eq(t.Q)
}
