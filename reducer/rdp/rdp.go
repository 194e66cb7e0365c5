// Package rdp implements the crossing-safe Ramer-Douglas-Peucker polyline reduction:
// recursively simplify a chord, rejecting any simplification that would move the
// boundary past a reflex vertex (breaking containment) or introduce a self-intersection.
//
// Fixed-length reduction is not supported for this strategy; see
// [github.com/polyshell/polyshell] for the dispatcher-level UnsupportedCombination
// error this produces.
package rdp

import (
	"math"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/reducer"
	"github.com/polyshell/polyshell/segindex"
)

// Reduce applies Ramer-Douglas-Peucker reduction to p with threshold epsilon, compared
// against the area of the triangle each intermediate vertex forms with the current
// chord. The returned [reducer.Stats] carries the summed chord-triangle areas of every
// dropped vertex and the count of vertices dropped.
//
// Edge cases: p with fewer than 3 vertices, or epsilon <= 0, is returned unchanged
// with a zero-value Stats.
func Reduce(p polyline.Polyline, epsilon float64) (polyline.Polyline, reducer.Stats) {
	if p.Len() < 3 || epsilon <= 0 {
		return p, reducer.Stats{}
	}

	idx := segindex.New()
	for _, l := range p.Lines() {
		idx.Insert(l)
	}

	kept := make([]bool, p.Len())
	kept[0] = true
	kept[p.Len()-1] = true

	r := &run{p: p, idx: idx, kept: kept, epsilon: epsilon}
	r.simplify(0, p.Len()-1)

	coords := make([]coord.Coord, 0, p.Len())
	for i, k := range kept {
		if k {
			coords = append(coords, p.At(i))
		}
	}
	result, _ := polyline.New(coords)
	return result, reducer.Stats{Loss: r.loss, Removed: p.Len() - result.Len()}
}

type run struct {
	p       polyline.Polyline
	idx     *segindex.Index
	kept    []bool
	epsilon float64
	loss    float64
}

// simplify recursively decides which intermediate vertices in (a, b) survive.
func (r *run) simplify(a, b int) {
	if b-a < 2 {
		return
	}

	type candidate struct {
		index int
		s     float64
	}

	var intermediates []candidate
	for i := a + 1; i < b; i++ {
		s := geometry.Triangle{A: r.p.At(a), B: r.p.At(b), C: r.p.At(i)}.SignedArea()
		intermediates = append(intermediates, candidate{index: i, s: s})
	}

	imax, smax := -1, -1.0
	ikeep, sikeep := -1, math.Inf(1)
	var keep []int
	for _, c := range intermediates {
		if math.Abs(c.s) > smax {
			imax, smax = c.index, math.Abs(c.s)
		}
		// A point with Triangle{chordStart, chordEnd, point}.SignedArea() < 0 lies on
		// the side where the straight chord would cut into the original boundary;
		// dropping it would shrink the polygon below its original extent, so it must
		// survive regardless of epsilon. ikeep tracks the most negative (most
		// critical) of these as the fallback split anchor.
		if c.s < 0 {
			keep = append(keep, c.index)
			if c.s < sikeep {
				ikeep, sikeep = c.index, c.s
			}
		}
	}

	if smax > r.epsilon {
		r.kept[imax] = true
		r.simplify(a, imax)
		r.simplify(imax, b)
		return
	}

	if len(keep) > 1 || r.candidateSelfIntersects(a, b, keep) {
		if ikeep == -1 {
			// no keep candidate at all; fall back to the globally worst point so the
			// recursion still makes progress.
			ikeep = imax
		}
		r.kept[ikeep] = true
		r.simplify(a, ikeep)
		r.simplify(ikeep, b)
		return
	}

	// Accept: a, keep..., b form the simplified chain over [a, b]. Every other
	// intermediate is dropped; its triangle area against the chord is the cost this
	// acceptance spends.
	chain := append([]int{a}, keep...)
	chain = append(chain, b)
	inChain := make(map[int]bool, len(chain))
	for _, i := range chain {
		inChain[i] = true
	}
	for _, c := range intermediates {
		if !inChain[c.index] {
			r.loss += math.Abs(c.s)
		}
	}
	for _, i := range chain {
		r.kept[i] = true
	}
	for j := 0; j+1 < len(chain); j++ {
		l, err := geometry.NewLine(r.p.At(chain[j]), r.p.At(chain[j+1]))
		if err != nil {
			continue
		}
		r.idx.Insert(l)
	}
}

func (r *run) candidateSelfIntersects(a, b int, keep []int) bool {
	chain := append([]int{a}, keep...)
	chain = append(chain, b)
	for j := 0; j+1 < len(chain); j++ {
		candidate, err := geometry.NewLine(r.p.At(chain[j]), r.p.At(chain[j+1]))
		if err != nil {
			continue
		}
		for _, other := range r.idx.QueryBBox(candidate.BBox()) {
			if geometry.SharesEndpoint(candidate, other) {
				continue
			}
			if geometry.SegmentsIntersect(candidate, other) {
				return true
			}
		}
	}
	return false
}
