package polyshell

import (
	"errors"
	"math"
	"testing"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/geometry"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// densePolygon builds a discretized circle of n points, radius r, which is the shape
// S5/S6 exercise: a convex boundary with one nearly-straight point per step.
func densePolygon(t *testing.T, n int, r float64) polyline.Polygon {
	t.Helper()
	verts := make([]coord.Coord, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = coord.New(r*math.Cos(theta), r*math.Sin(theta))
	}
	p, err := polyline.NewPolygon(verts)
	require.NoError(t, err)
	return p
}

func square(t *testing.T) polyline.Polygon {
	t.Helper()
	p, err := polyline.NewPolygon([]coord.Coord{
		coord.New(0, 0), coord.New(10, 0), coord.New(10, 10), coord.New(0, 10),
	})
	require.NoError(t, err)
	return p
}

func squareWithMidEdgeBump(t *testing.T) polyline.Polygon {
	t.Helper()
	p, err := polyline.NewPolygon([]coord.Coord{
		coord.New(0, 0), coord.New(5, 0.0001), coord.New(10, 0), coord.New(10, 10), coord.New(0, 10),
	})
	require.NoError(t, err)
	return p
}

// interlockingTeethPolygon is the spec's S4 scenario: a narrow channel formed by two
// teeth (one pointing down from the top edge, one pointing up from the bottom edge)
// that overlap in X. A removal that ignores the self-intersection guard would cross
// the channel and produce a non-simple polygon.
func interlockingTeethPolygon(t *testing.T) polyline.Polygon {
	t.Helper()
	p, err := polyline.NewPolygon([]coord.Coord{
		coord.New(0, 0), coord.New(0, 1), coord.New(0.25, 1), coord.New(0.05, 0.9),
		coord.New(0.25, 0.8), coord.New(0.25, 0.25), coord.New(0.75, 0.25), coord.New(0.75, 0.8),
		coord.New(0.15, 0.9), coord.New(0.75, 1), coord.New(1, 1), coord.New(1, 0),
	})
	require.NoError(t, err)
	return p
}

// isSimplePolygon reports whether any two non-adjacent edges of p cross, using the
// same predicate the reducers themselves guard removals with.
func isSimplePolygon(p polyline.Polygon) bool {
	lines := p.Lines()
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if geometry.SharesEndpoint(lines[i], lines[j]) {
				continue
			}
			if geometry.SegmentsIntersect(lines[i], lines[j]) {
				return false
			}
		}
	}
	return true
}

// polygonArea returns the shoelace-formula area enclosed by ring (a closed, first ==
// last vertex sequence).
func polygonArea(ring []coord.Coord) float64 {
	var sum float64
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return math.Abs(sum) / 2
}

// onSegment reports whether pt lies on the closed segment a-b, within tolerance.
func onSegment(pt, a, b coord.Coord) bool {
	cross := (b.X()-a.X())*(pt.Y()-a.Y()) - (b.Y()-a.Y())*(pt.X()-a.X())
	if math.Abs(cross) > 1e-9 {
		return false
	}
	const eps = 1e-9
	return pt.X() >= math.Min(a.X(), b.X())-eps && pt.X() <= math.Max(a.X(), b.X())+eps &&
		pt.Y() >= math.Min(a.Y(), b.Y())-eps && pt.Y() <= math.Max(a.Y(), b.Y())+eps
}

// containsPoint reports whether pt lies in the closed region bounded by ring (a
// closed, first == last vertex sequence): on its boundary, or inside it by the
// standard even-odd ray-casting rule.
func containsPoint(pt coord.Coord, ring []coord.Coord) bool {
	verts := ring
	if len(verts) > 1 && verts[0].Eq(verts[len(verts)-1]) {
		verts = verts[:len(verts)-1]
	}
	n := len(verts)
	for i := 0; i < n; i++ {
		if onSegment(pt, verts[i], verts[(i+1)%n]) {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := verts[i].X(), verts[i].Y()
		xj, yj := verts[j].X(), verts[j].Y()
		if (yi > pt.Y()) != (yj > pt.Y()) {
			xIntersect := xj + (pt.Y()-yj)/(yi-yj)*(xi-xj)
			if pt.X() < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func TestReduceEpsilon_VW_RemovesNearlyCollinearHullEdgePoint(t *testing.T) {
	p := squareWithMidEdgeBump(t)
	result, err := ReduceEpsilon(p, 0.01, types.MethodVW)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Polygon.Len(), p.Len())
	assert.Equal(t, p.Len()-result.Polygon.Len(), result.RemovedCount)
}

func TestReduceEpsilon_InvalidPolygon(t *testing.T) {
	_, err := ReduceEpsilon(polyline.Polygon{}, 0.1, types.MethodVW)
	assert.ErrorIs(t, err, ErrInvalidPolygon)
}

func TestReduceEpsilon_UnknownMethod(t *testing.T) {
	p := square(t)
	_, err := ReduceEpsilon(p, 0.1, types.Method(99))
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestReduceLength_RDPUnsupported(t *testing.T) {
	p := square(t)
	_, err := ReduceLength(p, 4, types.MethodRDP)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestReduceLength_VW_NeverBelowHullSize(t *testing.T) {
	p := square(t)
	result, err := ReduceLength(p, 1, types.MethodVW)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Polygon.Len(), 4) // the square is its own hull
}

func TestReduceLength_CharShape_BoundsNodeCount(t *testing.T) {
	p := densePolygon(t, 40, 10)
	result, err := ReduceLength(p, 10, types.MethodCharShape)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Polygon.Len(), 10)
}

func TestReduce_AutoModeUnimplemented(t *testing.T) {
	p := square(t)
	_, err := Reduce(p, types.ModeAuto, Params{}, types.MethodVW)
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestReduce_DispatchesToEpsilonAndLength(t *testing.T) {
	p := square(t)
	_, err := Reduce(p, types.ModeEpsilon, Params{Epsilon: 0.1}, types.MethodCharShape)
	require.NoError(t, err)
	_, err = Reduce(p, types.ModeLength, Params{Length: 4}, types.MethodCharShape)
	require.NoError(t, err)
}

func TestMelkman_Square(t *testing.T) {
	p := square(t)
	h, err := Melkman(p)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Len())
}

func TestMelkmanIndices_TooFewVertices(t *testing.T) {
	_, err := MelkmanIndices(polyline.Polygon{})
	assert.True(t, errors.Is(err, ErrInvalidPolygon))
}

func TestReduceEpsilon_CharShape_StaysSimpleOnDensePolygon(t *testing.T) {
	p := densePolygon(t, 60, 5)
	result, err := ReduceEpsilon(p, 0.5, types.MethodCharShape)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Polygon.Len(), 3)
	assert.Less(t, result.Polygon.Len(), p.Len())
}

// TestReduceEpsilon_VW_S4_InterlockingTeeth_GuardPreservesSimplicity is spec scenario
// S4: the self-intersection guard must reject any removal that would cross the
// narrow channel between the two teeth, leaving the reduced polygon simple.
func TestReduceEpsilon_VW_S4_InterlockingTeeth_GuardPreservesSimplicity(t *testing.T) {
	p := interlockingTeethPolygon(t)
	result, err := ReduceEpsilon(p, 0.1, types.MethodVW)
	require.NoError(t, err)

	assert.True(t, isSimplePolygon(result.Polygon), "self-intersection guard must prevent the teeth from crossing")
}

// TestReduceEpsilon_VW_S4_Containment checks testable property 4 (Containment) on
// the S4 polygon: every vertex of the input lies in the closed region bounded by the
// reduced polygon, and the enclosed area never shrinks below the input's.
func TestReduceEpsilon_VW_S4_Containment(t *testing.T) {
	p := interlockingTeethPolygon(t)
	result, err := ReduceEpsilon(p, 0.1, types.MethodVW)
	require.NoError(t, err)

	for i, v := range p.Vertices() {
		assert.True(t, containsPoint(v, result.Polygon.Ring()), "input vertex %d must lie in R's closed region", i)
	}
	assert.GreaterOrEqual(t, polygonArea(result.Polygon.Ring()), polygonArea(p.Ring())-1e-9)
}

// TestReduceEpsilon_VW_S5_DenseCircle_Containment is spec scenario S5: a dense
// discretized circle must reduce to fewer vertices while remaining simple and
// containing the original boundary.
func TestReduceEpsilon_VW_S5_DenseCircle_Containment(t *testing.T) {
	p := densePolygon(t, 1000, 1)
	result, err := ReduceEpsilon(p, 1e-4, types.MethodVW)
	require.NoError(t, err)

	assert.Less(t, result.Polygon.Len(), 1000)
	assert.GreaterOrEqual(t, result.Polygon.Len(), 3)
	assert.True(t, isSimplePolygon(result.Polygon))
	for i, v := range p.Vertices() {
		assert.True(t, containsPoint(v, result.Polygon.Ring()), "input vertex %d must lie in R's closed region", i)
	}
	assert.GreaterOrEqual(t, polygonArea(result.Polygon.Ring()), polygonArea(p.Ring())-1e-9)
}
