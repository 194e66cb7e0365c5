package charshape

import (
	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/types"
)

// simplex is a Delaunay triangle referencing vertex indices into the point slice
// passed to [triangulate], plus the index of the neighbouring simplex opposite each
// vertex (-1 if that edge lies on the triangulation boundary).
type simplex struct {
	v [3]int
	n [3]int
}

type edgeKey struct{ a, b int }

func canonicalEdge(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// triangulate computes the Delaunay triangulation of points using the Bowyer-Watson
// incremental insertion algorithm: start from a super-triangle enclosing every point,
// insert points one at a time by removing every triangle whose circumcircle contains
// the new point and re-triangulating the resulting cavity, then discard any triangle
// still touching a super-triangle vertex.
//
// Returned simplices reference only indices into the original points slice; neighbour
// links are fully resolved.
func triangulate(points []coord.Coord) []simplex {
	n := len(points)
	work := make([]coord.Coord, n, n+3)
	copy(work, points)

	minX, minY := points[0].X(), points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}
	dx, dy := maxX-minX, maxY-minY
	delta := dx
	if dy > delta {
		delta = dy
	}
	if delta == 0 {
		delta = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	superA := n
	superB := n + 1
	superC := n + 2
	work = append(work,
		coord.New(midX-20*delta, midY-delta),
		coord.New(midX+20*delta, midY-delta),
		coord.New(midX, midY+20*delta),
	)

	tris := []simplex{{v: [3]int{superA, superB, superC}}}

	for pi := 0; pi < n; pi++ {
		p := work[pi]

		var bad []int
		for ti, t := range tris {
			if inCircumcircle(work[t.v[0]], work[t.v[1]], work[t.v[2]], p) {
				bad = append(bad, ti)
			}
		}

		boundary := boundaryOfCavity(tris, bad)

		kept := make([]simplex, 0, len(tris))
		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		for ti, t := range tris {
			if !badSet[ti] {
				kept = append(kept, t)
			}
		}

		for _, e := range boundary {
			kept = append(kept, simplex{v: [3]int{e.a, e.b, pi}})
		}
		tris = kept
	}

	final := make([]simplex, 0, len(tris))
	for _, t := range tris {
		if t.v[0] >= n || t.v[1] >= n || t.v[2] >= n {
			continue
		}
		final = append(final, t)
	}

	linkNeighbors(final)
	return final
}

type cavityEdge struct{ a, b int }

// boundaryOfCavity returns the edges of the bad triangles that are not shared by any
// other bad triangle: the boundary of the polygonal hole left by removing them.
func boundaryOfCavity(tris []simplex, bad []int) []cavityEdge {
	count := make(map[edgeKey]int)
	edgeOf := make(map[edgeKey]cavityEdge)
	for _, ti := range bad {
		t := tris[ti]
		for i := 0; i < 3; i++ {
			a, b := t.v[(i+1)%3], t.v[(i+2)%3]
			k := canonicalEdge(a, b)
			count[k]++
			edgeOf[k] = cavityEdge{a: a, b: b}
		}
	}
	var out []cavityEdge
	for k, c := range count {
		if c == 1 {
			out = append(out, edgeOf[k])
		}
	}
	return out
}

// linkNeighbors fills in each simplex's neighbour array in place.
func linkNeighbors(tris []simplex) {
	owners := make(map[edgeKey][]int)
	for ti, t := range tris {
		for i := 0; i < 3; i++ {
			e := canonicalEdge(t.v[(i+1)%3], t.v[(i+2)%3])
			owners[e] = append(owners[e], ti)
		}
	}
	for ti := range tris {
		for i := 0; i < 3; i++ {
			e := canonicalEdge(tris[ti].v[(i+1)%3], tris[ti].v[(i+2)%3])
			owner := owners[e]
			switch len(owner) {
			case 1:
				tris[ti].n[i] = -1
			case 2:
				if owner[0] == ti {
					tris[ti].n[i] = owner[1]
				} else {
					tris[ti].n[i] = owner[0]
				}
			}
		}
	}
}

// inCircumcircle reports whether d lies strictly inside the circumcircle of a, b, c.
func inCircumcircle(a, b, c, d coord.Coord) bool {
	if geometry.Orientation(a, b, c) == types.PointsClockwise {
		b, c = c, b
	}
	ax, ay := a.Coordinates()
	bx, by := b.Coordinates()
	cx, cy := c.Coordinates()
	dx, dy := d.Coordinates()

	ax0, ay0 := ax-dx, ay-dy
	bx0, by0 := bx-dx, by-dy
	cx0, cy0 := cx-dx, cy-dy

	det := (ax0*ax0+ay0*ay0)*(bx0*cy0-cx0*by0) -
		(bx0*bx0+by0*by0)*(ax0*cy0-cx0*ay0) +
		(cx0*cx0+cy0*cy0)*(ax0*by0-bx0*ay0)
	return det > 0
}
