// Package segindex implements a dynamic bounding-box multimap over line segments: a
// spatial index supporting insertion, identity-based deletion, and bbox range queries
// that return a superset of the segments actually overlapping the query box.
//
// # Implementation
//
// Index orders entries by the minimum X coordinate of each segment's bounding box,
// backed by [github.com/google/btree]. A query ascends the
// tree from its lowest key, stopping as soon as an entry's minimum X exceeds the
// query box's maximum X, and returns every entry visited whose bbox overlaps the
// query box in both X and Y — a superset of the segments that actually meet the
// query geometry, since a segment's bbox can overlap the box while the segment
// itself does not. Callers re-test candidates against the exact predicate they care
// about (see package geometry).
package segindex

import (
	"github.com/google/btree"
	"github.com/polyshell/polyshell/geometry"
)

// seq disambiguates entries sharing the same minimum X so the backing tree has a
// total order even when many segments share a bbox edge.
type item struct {
	bbox geometry.BBox
	line geometry.Line
	seq  int64
}

func less(a, b item) bool {
	if a.bbox.Min.X() != b.bbox.Min.X() {
		return a.bbox.Min.X() < b.bbox.Min.X()
	}
	return a.seq < b.seq
}

// Index is a dynamic segment index keyed by bounding-box minimum X.
type Index struct {
	tree *btree.BTreeG[item]
	seq  int64
}

// New creates an empty Index.
func New() *Index {
	return &Index{tree: btree.NewG[item](32, less)}
}

// Insert adds line to the index.
func (idx *Index) Insert(line geometry.Line) {
	idx.tree.ReplaceOrInsert(item{bbox: line.BBox(), line: line, seq: idx.seq})
	idx.seq++
}

// Delete removes the first entry whose line is identical (by coordinate equality at
// both endpoints) to line, reporting whether an entry was removed. Because entries
// are identified by their (bbox, line) payload rather than bbox alone, deleting one
// segment never removes an unrelated segment that happens to share a bounding box.
func (idx *Index) Delete(line geometry.Line) bool {
	bbox := line.BBox()
	var found item
	var ok bool
	idx.tree.AscendGreaterOrEqual(item{bbox: geometry.BBox{Min: bbox.Min, Max: bbox.Min}, seq: -1}, func(candidate item) bool {
		if candidate.bbox.Min.X() > bbox.Max.X() {
			return false
		}
		if sameLine(candidate.line, line) {
			found, ok = candidate, true
			return false
		}
		return true
	})
	if !ok {
		return false
	}
	_, removed := idx.tree.Delete(found)
	return removed
}

func sameLine(a, b geometry.Line) bool {
	return a.P.Eq(b.P) && a.Q.Eq(b.Q)
}

// QueryBBox returns every indexed line whose bbox overlaps b. The result may include
// lines whose bbox overlaps b although the line itself does not cross the geometry b
// was taken from; callers re-test with an exact predicate such as
// [geometry.SegmentsIntersect].
func (idx *Index) QueryBBox(b geometry.BBox) []geometry.Line {
	// Ascend from the very start of the tree, not from b's lower bound: an entry with
	// a small bbox.Min.X() can still have a large enough bbox.Max.X() to overlap b, and
	// this index has no max-end augmentation to find such entries any other way.
	var out []geometry.Line
	idx.tree.Ascend(func(candidate item) bool {
		if candidate.bbox.Min.X() > b.Max.X() {
			return false
		}
		if candidate.bbox.Overlaps(b) {
			out = append(out, candidate.line)
		}
		return true
	})
	return out
}

// Len returns the number of segments currently indexed.
func (idx *Index) Len() int {
	return idx.tree.Len()
}
