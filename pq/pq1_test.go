package pq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueue1_PushPeekPop(t *testing.T) {
	q := NewPriorityQueue1[string, int64]()
	q.Push("a", 5)
	q.Push("b", 2)
	q.Push("c", 9)

	k, p, ok := q.PeekMin()
	require.True(t, ok)
	require.Equal(t, "b", k)
	require.Equal(t, int64(2), p)

	k, p, ok = q.PopMin()
	require.True(t, ok)
	require.Equal(t, "b", k)
	require.Equal(t, int64(2), p)
	require.Equal(t, 2, q.Len())
}

func TestPriorityQueue1_Shift(t *testing.T) {
	q := NewPriorityQueue1[string, int64]()
	q.Push("a", 5)
	q.Push("b", 2)

	q.Shift(10) // every priority moves up by 10, relative order unchanged

	k, p, ok := q.PeekMin()
	require.True(t, ok)
	require.Equal(t, "b", k)
	require.Equal(t, int64(12), p)

	q.Shift(-3)
	_, p, ok = q.PeekMin()
	require.True(t, ok)
	require.Equal(t, int64(9), p)
}

func TestPriorityQueue1_RemoveAndOverwrite(t *testing.T) {
	q := NewPriorityQueue1[string, int64]()
	q.Push("a", 5)
	q.Push("b", 2)
	q.Remove("b")
	require.False(t, q.Contains("b"))

	k, _, ok := q.PeekMin()
	require.True(t, ok)
	require.Equal(t, "a", k)

	// Overwriting "a" with a lower priority should replace, not duplicate.
	q.Push("a", 1)
	require.Equal(t, 1, q.Len())
	k, p, ok := q.PopMin()
	require.True(t, ok)
	require.Equal(t, "a", k)
	require.Equal(t, int64(1), p)
	require.Equal(t, 0, q.Len())
}

func TestPriorityQueue1_EmptyPeek(t *testing.T) {
	q := NewPriorityQueue1[string, int64]()
	_, _, ok := q.PeekMin()
	require.False(t, ok)
}
