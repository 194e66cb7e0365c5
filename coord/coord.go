// Package coord defines Coord, the foundational geometric primitive of polyshell.
// Every other geometric type — lines, triangles, polylines, polygons — is built on it.
//
// # Overview
//
// A Coord is an immutable pair (x, y) of finite float64 values. Its primary equality,
// Eq, is exact on both components, as required for the Subset testable property: a
// reduced polygon's vertices must be bit-identical to vertices of the input polygon.
// An epsilon-tolerant overload is also provided for callers comparing coordinates that
// have been through an external serialization round trip.
//
// # Notes
//
//   - Coord carries no global mutable state. Epsilon tolerance, where needed, is passed
//     explicitly via [github.com/polyshell/polyshell/options.WithEpsilon] rather than a
//     package-level setting.
package coord

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/polyshell/polyshell/numeric"
	"github.com/polyshell/polyshell/options"
)

// Coord represents an immutable point in the 2D plane with float64 coordinates.
type Coord struct {
	x float64
	y float64
}

// New creates a new Coord with the specified x and y coordinates.
func New(x, y float64) Coord {
	return Coord{x: x, y: y}
}

// NewFromImagePoint creates a Coord from an [image.Point], useful when interoperating
// with graphics code that produces integer pixel coordinates.
func NewFromImagePoint(p image.Point) Coord {
	return Coord{x: float64(p.X), y: float64(p.Y)}
}

// X returns the x-coordinate.
func (c Coord) X() float64 { return c.x }

// Y returns the y-coordinate.
func (c Coord) Y() float64 { return c.y }

// Coordinates returns the x and y coordinates as separate values.
func (c Coord) Coordinates() (x, y float64) { return c.x, c.y }

// Add returns the component-wise sum of c and d, treating both as vectors.
func (c Coord) Add(d Coord) Coord {
	return Coord{x: c.x + d.x, y: c.y + d.y}
}

// Sub returns the vector from d to c, i.e. c - d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{x: c.x - d.x, y: c.y - d.y}
}

// Negate returns a new Coord with both components negated.
func (c Coord) Negate() Coord {
	return Coord{x: -c.x, y: -c.y}
}

// CrossProduct returns the 2D cross product (determinant) of the vectors c and d:
//
//	c × d = c.x*d.y - c.y*d.x
//
// A positive result indicates d is counterclockwise of c, negative indicates clockwise,
// and zero indicates the vectors are collinear.
func (c Coord) CrossProduct(d Coord) float64 {
	return c.x*d.y - c.y*d.x
}

// DotProduct returns the dot product of the vectors c and d.
func (c Coord) DotProduct(d Coord) float64 {
	return c.x*d.x + c.y*d.y
}

// DistanceSquaredTo returns the squared Euclidean distance between c and d, avoiding
// the square root when only relative comparisons are needed.
func (c Coord) DistanceSquaredTo(d Coord) float64 {
	dx, dy := c.x-d.x, c.y-d.y
	return dx*dx + dy*dy
}

// Eq reports whether c and d have bit-identical x and y components.
//
// This is the equality used by the Subset testable property: a reduced polygon's
// vertices must compare Eq-equal to vertices of the original polygon.
func (c Coord) Eq(d Coord) bool {
	return c.x == d.x && c.y == d.y
}

// EqEpsilon reports whether c and d are equal within the tolerance carried by opts
// (see [options.WithEpsilon]). With no options, this degenerates to Eq.
func (c Coord) EqEpsilon(d Coord, opts ...options.GeometryOptionsFunc) bool {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return numeric.FloatEquals(c.x, d.x, o.Epsilon) && numeric.FloatEquals(c.y, d.y, o.Epsilon)
}

// String returns a string representation of c in the format "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%v,%v)", c.x, c.y)
}

// MarshalJSON serializes Coord as a {"x":...,"y":...} object.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: c.x, Y: c.y})
}

// UnmarshalJSON deserializes a {"x":...,"y":...} object into c.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	c.x, c.y = temp.X, temp.Y
	return nil
}
