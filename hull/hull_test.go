package hull_test

import (
	"testing"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/hull"
	"github.com/stretchr/testify/assert"
)

func TestMelkmanIndices_Square(t *testing.T) {
	square := []coord.Coord{
		coord.New(0, 0),
		coord.New(1, 0),
		coord.New(1, 1),
		coord.New(0, 1),
	}
	indices := hull.MelkmanIndices(square)
	assert.Equal(t, indices[0], indices[len(indices)-1])
	assert.Equal(t, 5, len(indices))
}

func TestMelkmanIndices_TooFewPoints(t *testing.T) {
	pts := []coord.Coord{coord.New(0, 0), coord.New(1, 1)}
	indices := hull.MelkmanIndices(pts)
	assert.Equal(t, []int{0, 1}, indices)
}

func TestMelkman_SquareWithInteriorPoint(t *testing.T) {
	pts := []coord.Coord{
		coord.New(0, 0),
		coord.New(1, 0),
		coord.New(0.5, 0.5), // interior, must not appear on hull
		coord.New(1, 1),
		coord.New(0, 1),
	}
	result := hull.Melkman(pts)
	for _, c := range result {
		assert.False(t, c.Eq(coord.New(0.5, 0.5)), "interior point must not be on hull")
	}
}
