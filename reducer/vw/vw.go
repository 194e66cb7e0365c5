// Package vw implements the crossing-safe Visvalingam-Whyatt polyline reduction:
// repeatedly remove the interior vertex whose removal sweeps the least area, skipping
// any removal that would either violate containment (a reflex vertex) or introduce a
// self-intersection.
package vw

import (
	"errors"
	"math"

	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/ipq"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/reducer"
)

// snapshot records the (left, right) neighbours a candidate was pushed with, so a
// pop can detect whether the adjacency has since changed underneath it.
type snapshot struct {
	left, right int
}

// Reduce applies Visvalingam-Whyatt reduction to p with removal-cost threshold
// epsilon: every vertex whose triangle area is at most epsilon is eligible for
// removal, processed in increasing order of cost. The returned [reducer.Stats]
// carries the accumulated removal cost and the count of vertices dropped.
//
// Edge cases: p with fewer than 3 vertices, or epsilon <= 0, is returned unchanged
// with a zero-value Stats.
func Reduce(p polyline.Polyline, epsilon float64) (polyline.Polyline, reducer.Stats) {
	if p.Len() < 3 || epsilon <= 0 {
		return p, reducer.Stats{}
	}
	return run(p, epsilon, -1)
}

// ReduceToLength applies Visvalingam-Whyatt reduction to p until exactly target
// vertices remain (equivalent to running with epsilon = +Inf and stopping early), or
// until no further vertex can be safely removed.
//
// Edge cases: p with fewer than 3 vertices, or target >= p.Len(), is returned
// unchanged with a zero-value Stats.
func ReduceToLength(p polyline.Polyline, target int) (polyline.Polyline, reducer.Stats) {
	if p.Len() < 3 || target >= p.Len() {
		return p, reducer.Stats{}
	}
	return run(p, math.Inf(1), target)
}

func run(p polyline.Polyline, epsilon float64, targetLen int) (polyline.Polyline, reducer.Stats) {
	st := reducer.NewState(p)
	snapshots := make(map[int]snapshot, p.Len())

	pushCandidate := func(i int) {
		if i <= 0 || i >= p.Len()-1 {
			return
		}
		l, r := st.Adj[i].Left, st.Adj[i].Right
		tri := geometry.Triangle{A: p.At(l), B: p.At(i), C: p.At(r)}
		if tri.SignedArea() > 0 {
			return // reflex vertex: removing it would shrink the polygon, breaking containment
		}
		snapshots[i] = snapshot{left: l, right: r}
		st.Queue.Push(i, tri.UnsignedArea())
	}

	for i := 1; i < p.Len()-1; i++ {
		pushCandidate(i)
	}

	remaining := p.Len()
	for {
		if targetLen > 0 && remaining <= targetLen {
			return st.Result(), st.Stats()
		}
		k, cost, err := st.Queue.Pop()
		if errors.Is(err, ipq.ErrEmptyQueue) {
			return st.Result(), st.Stats()
		}
		if targetLen < 0 && cost > epsilon {
			return st.Result(), st.Stats()
		}

		snap := snapshots[k]
		if st.Adj[k].Left != snap.left || st.Adj[k].Right != snap.right {
			continue // stale entry: adjacency moved since this candidate was pushed
		}

		l, r := st.Adj[k].Left, st.Adj[k].Right
		candidate, err := geometry.NewLine(p.At(l), p.At(r))
		if err != nil {
			continue // degenerate candidate (coincident neighbours): skip, vertex stays
		}
		if st.CandidateSelfIntersects(candidate) {
			continue
		}

		st.Remove(k)
		st.SegIdx.Insert(candidate)
		st.Loss += cost
		remaining--

		pushCandidate(l)
		pushCandidate(r)
	}
}
