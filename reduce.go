// Package polyshell reduces a simple closed polygon to fewer vertices while
// guaranteeing the result contains the original polygon and remains simple
// (non-self-intersecting).
//
// Three reduction strategies are available, selected via [types.Method]:
//
//   - Visvalingam-Whyatt ([types.MethodVW]): iteratively drops the vertex that
//     sweeps the smallest triangular area, skipping removals that would shrink the
//     polygon below its original extent or introduce a crossing.
//   - Ramer-Douglas-Peucker ([types.MethodRDP]): recursively keeps the vertex of
//     greatest perpendicular deviation from a chord and discards the rest.
//   - Characteristic shape ([types.MethodCharShape]): triangulates the polygon and
//     carves away its longest boundary edges until the remainder is compact.
//
// VW and RDP both operate on the convex hull split of the polygon: the hull
// vertices are fixed anchors, and each arc between consecutive hull vertices is
// reduced independently and in parallel, which is what keeps every VW/RDP
// reduction containment-preserving without a global lock. CharShape instead
// operates on the whole polygon in a single pass; see
// [github.com/polyshell/polyshell/reducer/charshape].
package polyshell

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/polyshell/polyshell/options"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/reducer"
	"github.com/polyshell/polyshell/reducer/charshape"
	"github.com/polyshell/polyshell/reducer/rdp"
	"github.com/polyshell/polyshell/reducer/vw"
	"github.com/polyshell/polyshell/types"
)

// Params carries the mode-specific parameters for [Reduce].
type Params struct {
	// Epsilon is the threshold used by [types.ModeEpsilon]: a triangle-area bound for
	// VW and RDP, and the minimum boundary edge length for CharShape.
	Epsilon float64

	// Length is the target vertex count used by [types.ModeLength].
	Length int
}

// Result is the outcome of a reduction: the reduced polygon plus diagnostic
// metadata accumulated from the per-worker reducer state. This is not a new
// geometric capability, just the same bookkeeping every reducer's [reducer.State]
// (or equivalent) already tracks internally, surfaced for a caller that wants to
// report or plot reduction quality (see cmd/plot-reduction).
type Result struct {
	// Polygon is the reduced polygon.
	Polygon polyline.Polygon

	// Loss is the total accumulated simplification cost, summed across every
	// hull-segment worker: VW's summed removal-triangle areas, RDP's summed
	// dropped-vertex chord-triangle areas, or CharShape's summed carved-triangle areas.
	Loss float64

	// RemovedCount is the number of vertices present in the input polygon but not
	// in Polygon.
	RemovedCount int
}

// Reduce reduces p according to mode and method, with p's input parameters carried
// in params.
//
// Returns:
//   - [ErrInvalidPolygon] if p has fewer than three distinct vertices.
//   - [ErrUnsupportedCombination] if mode and method are not a supported pairing
//     (currently: [types.ModeLength] with [types.MethodRDP]).
//   - [ErrUnimplemented] if mode is [types.ModeAuto].
func Reduce(p polyline.Polygon, mode types.Mode, params Params, method types.Method, opts ...options.GeometryOptionsFunc) (Result, error) {
	switch mode {
	case types.ModeEpsilon:
		return ReduceEpsilon(p, params.Epsilon, method, opts...)
	case types.ModeLength:
		return ReduceLength(p, params.Length, method, opts...)
	case types.ModeAuto:
		return Result{}, ErrUnimplemented
	default:
		return Result{}, fmt.Errorf("%w: mode %d", ErrUnsupportedCombination, uint8(mode))
	}
}

// ReduceEpsilon reduces p until no further removal would stay within epsilon of the
// chosen method's loss metric.
//
// Returns:
//   - [ErrInvalidPolygon] if p has fewer than three distinct vertices.
//   - [ErrUnsupportedCombination] if method is not one of [types.MethodVW],
//     [types.MethodRDP] or [types.MethodCharShape].
func ReduceEpsilon(p polyline.Polygon, epsilon float64, method types.Method, opts ...options.GeometryOptionsFunc) (Result, error) {
	if err := validatePolygon(p); err != nil {
		return Result{}, err
	}
	switch method {
	case types.MethodVW:
		return reduceViaHullSplit(p, opts, func(seg polyline.Polyline) (polyline.Polyline, reducer.Stats) {
			return vw.Reduce(seg, epsilon)
		})
	case types.MethodRDP:
		return reduceViaHullSplit(p, opts, func(seg polyline.Polyline) (polyline.Polyline, reducer.Stats) {
			return rdp.Reduce(seg, epsilon)
		})
	case types.MethodCharShape:
		out, stats := charshape.Reduce(p, epsilon, opts...)
		return Result{Polygon: out, Loss: stats.Loss, RemovedCount: stats.Removed}, nil
	default:
		return Result{}, fmt.Errorf("%w: method %d", ErrUnsupportedCombination, uint8(method))
	}
}

// ReduceLength reduces p until at most length vertices remain.
//
// RDP has no notion of a target vertex count (its stopping rule is purely deviation
// based), so [types.MethodRDP] is unsupported in this mode.
//
// For [types.MethodVW], length is distributed across the hull-segment workers
// proportional to each segment's share of the boundary; the merged result's vertex
// count may differ from length by a small amount when the proportional shares don't
// divide evenly, or when length is smaller than the number of hull vertices (hull
// vertices are anchors and are never removed).
//
// For [types.MethodCharShape], length is applied via
// [options.WithMaxBoundaryNodes] with epsilon held at zero, so the carving loop's
// only stopping condition is the node count.
//
// Returns:
//   - [ErrInvalidPolygon] if p has fewer than three distinct vertices.
//   - [ErrUnsupportedCombination] if method is [types.MethodRDP], or is not one of
//     the three defined methods.
func ReduceLength(p polyline.Polygon, length int, method types.Method, opts ...options.GeometryOptionsFunc) (Result, error) {
	if err := validatePolygon(p); err != nil {
		return Result{}, err
	}
	switch method {
	case types.MethodVW:
		return reduceToLengthViaHullSplit(p, length, opts...)
	case types.MethodRDP:
		return Result{}, fmt.Errorf("%w: length mode has no RDP stopping rule", ErrUnsupportedCombination)
	case types.MethodCharShape:
		o := append(append([]options.GeometryOptionsFunc{}, opts...), options.WithMaxBoundaryNodes(length))
		out, stats := charshape.Reduce(p, 0, o...)
		return Result{Polygon: out, Loss: stats.Loss, RemovedCount: stats.Removed}, nil
	default:
		return Result{}, fmt.Errorf("%w: method %d", ErrUnsupportedCombination, uint8(method))
	}
}

func validatePolygon(p polyline.Polygon) error {
	if p.Len() < 3 {
		return ErrInvalidPolygon
	}
	return nil
}

// hullSegments splits p's boundary into the open arcs between consecutive convex-hull
// vertices, in counterclockwise order. Every arc shares its two endpoints with its
// neighbours, so [polyline.Merge] can reassemble them losslessly.
func hullSegments(p polyline.Polygon) []polyline.Polyline {
	closed := melkmanIndicesClosed(p.Vertices())
	segments := make([]polyline.Polyline, 0, len(closed)-1)
	for k := 0; k+1 < len(closed); k++ {
		segments = append(segments, p.Slice(closed[k], closed[k+1]))
	}
	return segments
}

// reduceViaHullSplit runs segmentReduce over each hull segment of p concurrently,
// stitches the results back into a closed polygon, and sums each worker's
// [reducer.Stats] into the returned Result (each segment's removed vertices are
// disjoint from every other's, so the sum double-counts nothing).
func reduceViaHullSplit(p polyline.Polygon, opts []options.GeometryOptionsFunc, segmentReduce func(polyline.Polyline) (polyline.Polyline, reducer.Stats)) (Result, error) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	segments := hullSegments(p)
	results := make([]polyline.Polyline, len(segments))
	stats := make([]reducer.Stats, len(segments))

	g, _ := errgroup.WithContext(context.Background())
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for i, seg := range segments {
		i, seg := i, seg
		g.Go(func() error {
			results[i], stats[i] = segmentReduce(seg)
			return nil
		})
	}
	_ = g.Wait() // segmentReduce never returns an error; workers cannot fail

	merged, err := polyline.Merge(results)
	if err != nil {
		return Result{}, fmt.Errorf("polyshell: %w", err)
	}
	out, err := polyline.NewPolygon(merged.Vertices())
	if err != nil {
		return Result{}, fmt.Errorf("polyshell: %w", err)
	}
	return Result{Polygon: out, Loss: sumLoss(stats), RemovedCount: sumRemoved(stats)}, nil
}

// reduceToLengthViaHullSplit runs VW's length-targeted reduction over each hull
// segment concurrently. The hull vertices themselves are shared between adjacent
// segments and are never removed, so the per-segment budgets are computed against
// length+len(segments) (the total vertex count summed across segments before the
// shared hull vertices are deduplicated by the merge).
func reduceToLengthViaHullSplit(p polyline.Polygon, length int, opts ...options.GeometryOptionsFunc) (Result, error) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	segments := hullSegments(p)
	h := len(segments)
	if length < h {
		length = h
	}
	budget := length + h

	segLens := make([]int, h)
	totalSegVerts := 0
	for i, seg := range segments {
		segLens[i] = seg.Len()
		totalSegVerts += seg.Len()
	}

	targets := make([]int, h)
	sumTargets := 0
	largest := 0
	for i, n := range segLens {
		t := budget * n / totalSegVerts
		if t < 2 {
			t = 2
		}
		if t > n {
			t = n
		}
		targets[i] = t
		sumTargets += t
		if segLens[i] > segLens[largest] {
			largest = i
		}
	}
	targets[largest] += budget - sumTargets
	if targets[largest] > segLens[largest] {
		targets[largest] = segLens[largest]
	}
	if targets[largest] < 2 {
		targets[largest] = 2
	}

	results := make([]polyline.Polyline, h)
	stats := make([]reducer.Stats, h)
	g, _ := errgroup.WithContext(context.Background())
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for i, seg := range segments {
		i, seg, target := i, seg, targets[i]
		g.Go(func() error {
			results[i], stats[i] = vw.ReduceToLength(seg, target)
			return nil
		})
	}
	_ = g.Wait()

	merged, err := polyline.Merge(results)
	if err != nil {
		return Result{}, fmt.Errorf("polyshell: %w", err)
	}
	out, err := polyline.NewPolygon(merged.Vertices())
	if err != nil {
		return Result{}, fmt.Errorf("polyshell: %w", err)
	}
	return Result{Polygon: out, Loss: sumLoss(stats), RemovedCount: sumRemoved(stats)}, nil
}

func sumLoss(stats []reducer.Stats) float64 {
	var total float64
	for _, s := range stats {
		total += s.Loss
	}
	return total
}

func sumRemoved(stats []reducer.Stats) int {
	var total int
	for _, s := range stats {
		total += s.Removed
	}
	return total
}
