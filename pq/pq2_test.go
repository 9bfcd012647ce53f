package pq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueue2_MinAcrossGroups(t *testing.T) {
	q := NewPriorityQueue2[string, string, int64]()
	q.Push("blossomA", "e1", 7)
	q.Push("blossomA", "e2", 3)
	q.Push("blossomB", "e3", 5)

	g, k, p, ok := q.Min()
	require.True(t, ok)
	require.Equal(t, "blossomA", g)
	require.Equal(t, "e2", k)
	require.Equal(t, int64(3), p)
}

func TestPriorityQueue2_ShiftGroup(t *testing.T) {
	q := NewPriorityQueue2[string, string, int64]()
	q.Push("blossomA", "e1", 7)
	q.Push("blossomB", "e3", 5)

	q.Shift("blossomB", 10) // blossomB's min becomes 15; blossomA (7) now wins.
	g, _, _, ok := q.Min()
	require.True(t, ok)
	require.Equal(t, "blossomA", g)
}

func TestPriorityQueue2_DropGroup(t *testing.T) {
	q := NewPriorityQueue2[string, string, int64]()
	q.Push("blossomA", "e1", 7)
	q.Push("blossomB", "e3", 5)

	q.DropGroup("blossomB")
	g, k, _, ok := q.Min()
	require.True(t, ok)
	require.Equal(t, "blossomA", g)
	require.Equal(t, "e1", k)
}

func TestPriorityQueue2_EmptyMin(t *testing.T) {
	q := NewPriorityQueue2[string, string, int64]()
	_, _, _, ok := q.Min()
	require.False(t, ok)
}
