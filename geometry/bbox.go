package geometry

import (
	"fmt"

	"github.com/polyshell/polyshell/coord"
)

// BBox is an axis-aligned bounding box, described by its componentwise minimum and
// maximum corners. It is the key type the dynamic segment index (segindex) and the
// VW/RDP self-intersection checks use to prune candidate geometry before an exact
// test.
type BBox struct {
	Min, Max coord.Coord
}

// bboxOfPoints returns the axis-aligned bounding box enclosing all of pts.
//
// Panics:
//   - If pts is empty; every call site supplies at least one point.
func bboxOfPoints(pts ...coord.Coord) BBox {
	minX, minY := pts[0].X(), pts[0].Y()
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}
	return BBox{Min: coord.New(minX, minY), Max: coord.New(maxX, maxY)}
}

// Union returns the smallest BBox enclosing both a and b.
func Union(a, b BBox) BBox {
	return BBox{
		Min: coord.New(min(a.Min.X(), b.Min.X()), min(a.Min.Y(), b.Min.Y())),
		Max: coord.New(max(a.Max.X(), b.Max.X()), max(a.Max.Y(), b.Max.Y())),
	}
}

// Overlaps reports whether b and other share at least one point, treating both as
// closed rectangles (touching edges count as overlapping).
func (b BBox) Overlaps(other BBox) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y()
}

// String returns a string representation of b in the format "[(minX,minY),(maxX,maxY)]".
func (b BBox) String() string {
	return fmt.Sprintf("[%s,%s]", b.Min, b.Max)
}
