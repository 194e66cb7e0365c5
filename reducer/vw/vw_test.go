package vw_test

import (
	"testing"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/reducer/vw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_AlreadyMinimal(t *testing.T) {
	p, err := polyline.New([]coord.Coord{
		coord.New(0, 0), coord.New(1, 0), coord.New(1, 1), coord.New(0, 1), coord.New(0, 0),
	})
	require.NoError(t, err)

	r, stats := vw.Reduce(p, 1e-6)
	assert.Equal(t, p.Len(), r.Len())
	assert.Equal(t, 0, stats.Removed)
}

func TestReduce_RemovesMidEdgePoint(t *testing.T) {
	p, err := polyline.New([]coord.Coord{
		coord.New(0, 0), coord.New(0.5, 0.0001), coord.New(1, 0),
		coord.New(1, 1), coord.New(0, 1), coord.New(0, 0),
	})
	require.NoError(t, err)

	r, stats := vw.Reduce(p, 1e-3)
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, 1, stats.Removed)
	assert.Greater(t, stats.Loss, 0.0)
	for i := 0; i < r.Len(); i++ {
		assert.False(t, r.At(i).Eq(coord.New(0.5, 0.0001)))
	}
}

func TestReduce_ReflexVertexNeverRemoved(t *testing.T) {
	p, err := polyline.New([]coord.Coord{
		coord.New(0, 0), coord.New(0.5, -0.0001), coord.New(1, 0),
		coord.New(1, 1), coord.New(0, 1), coord.New(0, 0),
	})
	require.NoError(t, err)

	r, _ := vw.Reduce(p, 1e6)
	found := false
	for i := 0; i < r.Len(); i++ {
		if r.At(i).Eq(coord.New(0.5, -0.0001)) {
			found = true
		}
	}
	assert.True(t, found, "reflex vertex must never be removed regardless of epsilon")
}

func TestReduce_TooFewVertices(t *testing.T) {
	p, err := polyline.New([]coord.Coord{coord.New(0, 0), coord.New(1, 1)})
	require.NoError(t, err)
	r, _ := vw.Reduce(p, 1e6)
	assert.Equal(t, p.Len(), r.Len())
}

func TestReduceToLength(t *testing.T) {
	n := 20
	verts := make([]coord.Coord, 0, n+1)
	for i := 0; i < n; i++ {
		verts = append(verts, coord.New(float64(i), float64(i%2)*0.01))
	}
	verts = append(verts, verts[0])
	p, err := polyline.New(verts)
	require.NoError(t, err)

	r, stats := vw.ReduceToLength(p, 5)
	assert.LessOrEqual(t, r.Len(), p.Len())
	assert.Equal(t, p.Len()-r.Len(), stats.Removed)
}
