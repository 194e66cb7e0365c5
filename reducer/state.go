// Package reducer defines the shared per-polyline state every reduction strategy
// (vw, rdp, charshape) is built around: the original vertex sequence, a mutable
// adjacency array describing the currently-linked neighbours of each vertex in the
// reduced boundary, a running accumulated loss, a dynamic segment index seeded with
// the polyline's own segments, and (for VW) an indexed priority queue of removal
// candidates.
//
// Every State is owned exclusively by the single goroutine running its reduction; the
// dispatcher never shares a State across workers.
package reducer

import (
	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/ipq"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/segindex"
)

// Link is the pair of currently-linked neighbours of a vertex in the reduced
// boundary. The zero value, Link{0, 0}, is the sentinel marking a deleted vertex
// (vertex 0 itself, an endpoint, is never deleted, so the sentinel is unambiguous).
type Link struct {
	Left, Right int
}

// Deleted is the sentinel Link value used by [State.Remove] to mark a vertex as no
// longer part of the reduced boundary.
var Deleted = Link{}

// State is the mutable working state of a single polyline reduction.
type State struct {
	Original polyline.Polyline
	Adj      []Link
	Loss     float64
	SegIdx   *segindex.Index
	Queue    *ipq.Queue[int]
}

// NewState builds the initial reducer state for p: adjacency (i-1, i+1) for every
// interior vertex, endpoints linked to themselves as non-removable boundary anchors,
// and a segment index seeded with every segment of p. The indexed priority queue
// starts empty; callers populate it with whatever eligibility rule their strategy
// uses.
func NewState(p polyline.Polyline) *State {
	n := p.Len()
	adj := make([]Link, n)
	for i := 1; i < n-1; i++ {
		adj[i] = Link{Left: i - 1, Right: i + 1}
	}
	if n > 0 {
		adj[0] = Link{Left: 0, Right: 0}
	}
	if n > 1 {
		adj[n-1] = Link{Left: n - 1, Right: n - 1}
	}

	idx := segindex.New()
	for _, l := range p.Lines() {
		idx.Insert(l)
	}

	return &State{
		Original: p,
		Adj:      adj,
		SegIdx:   idx,
		Queue:    ipq.New[int](),
	}
}

// Remove marks vertex k deleted and relinks its former neighbours L and R directly
// to each other, updating the Link each of them carries.
func (s *State) Remove(k int) {
	l, r := s.Adj[k].Left, s.Adj[k].Right
	ll, rr := s.Adj[l].Left, s.Adj[r].Right
	s.Adj[l] = Link{Left: ll, Right: r}
	s.Adj[r] = Link{Left: l, Right: rr}
	s.Adj[k] = Deleted
}

// Live reports whether vertex i is still part of the reduced boundary.
func (s *State) Live(i int) bool {
	if i == 0 || i == s.Original.Len()-1 {
		return true
	}
	return s.Adj[i] != Deleted
}

// Result returns the reduced polyline: every vertex whose Link is not the deleted
// sentinel, in original order.
func (s *State) Result() polyline.Polyline {
	verts := s.Original.Vertices()
	coords := make([]coord.Coord, 0, len(verts))
	for i, v := range verts {
		if s.Live(i) {
			coords = append(coords, v)
		}
	}
	pl, _ := polyline.New(coords)
	return pl
}

// Stats summarizes a completed reduction: the accumulated geometric loss and the
// number of vertices removed from the original polyline. rdp and charshape, which
// don't build on [State], track their own Stats equivalently.
type Stats struct {
	Loss    float64
	Removed int
}

// Stats reports s's accumulated Loss and the count of vertices no longer [State.Live].
func (s *State) Stats() Stats {
	removed := 0
	for i := range s.Adj {
		if !s.Live(i) {
			removed++
		}
	}
	return Stats{Loss: s.Loss, Removed: removed}
}

// CandidateSelfIntersects reports whether replacing the two segments (v[L], v[K]) and
// (v[K], v[R]) with the single segment (v[L], v[R]) would introduce a self-intersection
// with any other indexed segment, using s.SegIdx as the conservative superset source.
func (s *State) CandidateSelfIntersects(candidate geometry.Line) bool {
	for _, other := range s.SegIdx.QueryBBox(candidate.BBox()) {
		if geometry.SharesEndpoint(candidate, other) {
			continue
		}
		if geometry.SegmentsIntersect(candidate, other) {
			return true
		}
	}
	return false
}
