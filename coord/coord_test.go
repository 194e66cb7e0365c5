package coord_test

import (
	"testing"

	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/options"
	"github.com/stretchr/testify/assert"
)

func TestCoord_CrossProduct(t *testing.T) {
	tests := map[string]struct {
		a, b     coord.Coord
		expected float64
	}{
		"counterclockwise": {a: coord.New(1, 0), b: coord.New(0, 1), expected: 1},
		"clockwise":        {a: coord.New(0, 1), b: coord.New(1, 0), expected: -1},
		"collinear":        {a: coord.New(2, 2), b: coord.New(1, 1), expected: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.CrossProduct(tt.b))
		})
	}
}

func TestCoord_Eq(t *testing.T) {
	a := coord.New(1, 2)
	b := coord.New(1, 2)
	c := coord.New(1.0000001, 2)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
	assert.False(t, a.EqEpsilon(c))
	assert.True(t, a.EqEpsilon(c, options.WithEpsilon(1e-6)))
}

func TestCoord_Sub(t *testing.T) {
	a := coord.New(5, 7)
	b := coord.New(2, 3)
	assert.Equal(t, coord.New(3, 4), a.Sub(b))
}

func TestCoord_JSONRoundTrip(t *testing.T) {
	a := coord.New(3.5, -2.25)
	data, err := a.MarshalJSON()
	assert.NoError(t, err)

	var b coord.Coord
	assert.NoError(t, b.UnmarshalJSON(data))
	assert.True(t, a.Eq(b))
}
