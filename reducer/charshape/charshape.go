// Package charshape implements the Delaunay-based characteristic-shape polygon
// reduction: triangulate the polygon's vertex set, then repeatedly carve the longest
// boundary edge of the triangulation inward, replacing it with the two shorter edges
// of its incident triangle, until the longest remaining boundary edge is shorter than
// a threshold (or a node-count bound is reached).
//
// Unlike vw and rdp, CharShape operates on the whole polygon in one pass; there is no
// hull split.
package charshape

import (
	"math"
	"sort"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/ipq"
	"github.com/polyshell/polyshell/options"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/reducer"
)

type pending struct {
	u, v, coprime int
	triangle, i   int
	length        float64
}

// Reduce computes the characteristic-shape reduction of p.
//
// epsilon is a lower bound on boundary edge length: the carving loop stops once the
// longest remaining boundary edge is shorter than epsilon. If opts carries
// [options.WithMaxBoundaryNodes] with a positive value, the loop also stops once the
// boundary has grown to that many nodes.
//
// epsilon == 0 is a legitimate threshold: it never stops the carve on its own (all
// boundary edge lengths are non-negative), leaving [options.WithMaxBoundaryNodes] as
// the sole stopping condition. This is how length-mode reduction drives CharShape.
//
// The returned [reducer.Stats] carries the total area carved away (the sum of the
// triangle areas consumed by every accepted carve) and the count of original
// vertices excluded from the final boundary.
//
// Edge cases: p with fewer than 4 distinct vertices, or epsilon < 0, is returned
// unchanged with a zero-value Stats.
func Reduce(p polyline.Polygon, epsilon float64, opts ...options.GeometryOptionsFunc) (polyline.Polygon, reducer.Stats) {
	if p.Len() < 4 || epsilon < 0 {
		return p, reducer.Stats{}
	}
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	verts := p.Vertices()
	n := len(verts)
	tris := triangulate(verts)

	boundary := make(map[int]bool, n)
	queue := ipq.New[int]()
	items := make(map[int]pending)
	nextID := 0

	push := func(u, v, c, triangleIdx, i int) {
		length := distance(verts[u], verts[v])
		id := nextID
		nextID++
		items[id] = pending{u: u, v: v, coprime: c, triangle: triangleIdx, i: i, length: length}
		queue.Push(id, -length) // negate: ipq is min-heap, we want longest first
	}

	for ti, t := range tris {
		for i := 0; i < 3; i++ {
			if t.n[i] != -1 {
				continue
			}
			u, v := t.v[(i+1)%3], t.v[(i+2)%3]
			boundary[u] = true
			boundary[v] = true
			push(u, v, t.v[i], ti, i)
		}
	}

	var loss float64
	for {
		id, negLength, err := queue.Pop()
		if err != nil {
			break
		}
		item := items[id]
		delete(items, id)
		length := -negLength

		if length < epsilon {
			break
		}
		if o.MaxBoundaryNodes > 0 && len(boundary) >= o.MaxBoundaryNodes {
			break
		}

		if boundary[item.coprime] {
			continue // c already on the boundary: reject
		}
		if indexGapIsOne(item.u, item.v, n) {
			continue // e is already an edge of the original polygon: reject
		}

		boundary[item.coprime] = true
		loss += geometry.Triangle{A: verts[item.u], B: verts[item.v], C: verts[item.coprime]}.UnsignedArea()

		t := tris[item.triangle]
		for _, k := range [2]int{(item.i + 1) % 3, (item.i + 2) % 3} {
			nt := t.n[k]
			if nt == -1 {
				continue
			}
			eu, ev := t.v[(k+1)%3], t.v[(k+2)%3]
			j := thirdVertexIndex(tris[nt], eu, ev)
			push(eu, ev, tris[nt].v[j], nt, j)
		}
	}

	kept := make([]int, 0, len(boundary))
	for i := range boundary {
		kept = append(kept, i)
	}
	sort.Ints(kept)

	coords := make([]coord.Coord, len(kept))
	for i, idx := range kept {
		coords[i] = verts[idx]
	}
	result, _ := polyline.NewPolygon(coords)
	return result, reducer.Stats{Loss: loss, Removed: n - len(kept)}
}

func distance(a, b coord.Coord) float64 {
	return math.Sqrt(a.DistanceSquaredTo(b))
}

// indexGapIsOne reports whether u and v are adjacent vertices in the original
// polygon's index order (differ by 1, mod n).
func indexGapIsOne(u, v, n int) bool {
	d := u - v
	if d < 0 {
		d = -d
	}
	return d == 1 || d == n-1
}

// thirdVertexIndex returns the index k such that t.v[k] is neither a nor b.
func thirdVertexIndex(t simplex, a, b int) int {
	for k := 0; k < 3; k++ {
		if t.v[k] != a && t.v[k] != b {
			return k
		}
	}
	panic("charshape: triangle does not contain expected shared edge")
}
