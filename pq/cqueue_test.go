package pq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatenableQueue_KeysPreserveOrder(t *testing.T) {
	q, handles := NewConcatenableQueue([]int{1, 2, 3, 4}, 1)
	require.Equal(t, []int{1, 2, 3, 4}, q.Keys())
	require.Len(t, handles, 4)
}

func TestConcatenableQueue_ConcatPreservesOrder(t *testing.T) {
	a, _ := NewConcatenableQueue([]int{1, 2}, 1)
	b, _ := NewConcatenableQueue([]int{3, 4}, 99)
	merged := a.Concat(b)
	require.Equal(t, []int{1, 2, 3, 4}, merged.Keys())
	require.Equal(t, 0, b.Len())
}

func TestConcatenableQueue_SplitRoundTrip(t *testing.T) {
	q, _ := NewConcatenableQueue([]int{1, 2, 3, 4, 5}, 7)
	left, right := q.Split(2)
	require.Equal(t, []int{1, 2}, left.Keys())
	require.Equal(t, []int{3, 4, 5}, right.Keys())
}

func TestConcatenableQueue_FindOwnerAfterMerge(t *testing.T) {
	a, ha := NewConcatenableQueue([]int{1, 2}, 1)
	b, hb := NewConcatenableQueue([]int{3, 4}, 5)
	a.SetOwner("blossomA")
	b.SetOwner("blossomB")

	merged := a.Concat(b)
	merged.SetOwner("blossomAB")

	owner, ok := FindOwner(ha[0])
	require.True(t, ok)
	require.Equal(t, "blossomAB", owner)

	owner, ok = FindOwner(hb[1])
	require.True(t, ok)
	require.Equal(t, "blossomAB", owner)
}

func TestConcatenableQueue_DeterministicAcrossRuns(t *testing.T) {
	q1, _ := NewConcatenableQueue([]int{1, 2, 3, 4, 5, 6, 7}, 42)
	q2, _ := NewConcatenableQueue([]int{1, 2, 3, 4, 5, 6, 7}, 42)
	require.Equal(t, q1.Keys(), q2.Keys())
}
