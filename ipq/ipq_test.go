package ipq_test

import (
	"testing"

	"github.com/polyshell/polyshell/ipq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PopOrdersByPriority(t *testing.T) {
	q := ipq.New[int]()
	q.Push(1, 5.0)
	q.Push(2, 1.0)
	q.Push(3, 3.0)

	k, p, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, 1.0, p)

	k, _, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	k, _, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	assert.Equal(t, 0, q.Len())
}

func TestQueue_PopEmpty(t *testing.T) {
	q := ipq.New[string]()
	_, _, err := q.Pop()
	require.ErrorIs(t, err, ipq.ErrEmptyQueue)
}

func TestQueue_RepushUpdatesPriority(t *testing.T) {
	q := ipq.New[string]()
	q.Push("a", 10.0)
	q.Push("b", 1.0)
	q.Push("a", 0.5)

	assert.Equal(t, 2, q.Len())

	k, p, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, 0.5, p)
}

func TestQueue_Remove(t *testing.T) {
	q := ipq.New[int]()
	q.Push(1, 1.0)
	q.Push(2, 2.0)

	assert.True(t, q.Remove(1))
	assert.False(t, q.Remove(1))
	assert.False(t, q.Contains(1))

	k, _, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
}

func TestQueue_ContainsAndPriority(t *testing.T) {
	q := ipq.New[int]()
	assert.False(t, q.Contains(1))
	q.Push(1, 4.2)
	assert.True(t, q.Contains(1))
	p, ok := q.Priority(1)
	assert.True(t, ok)
	assert.Equal(t, 4.2, p)
}

func TestQueue_TieBreakIsFIFO(t *testing.T) {
	q := ipq.New[int]()
	q.Push(1, 1.0)
	q.Push(2, 1.0)
	q.Push(3, 1.0)

	k, _, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}
