package pq

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PriorityQueue2 partitions keys into named groups; each group carries its
// own additive offset (shifted independently in O(1) via the group's
// embedded PriorityQueue1), and the overall minimum across all groups is
// reported in O(log g) where g is the number of live groups.
//
// This backs the Micali–Gabow toFree structure: one group per free
// top-level blossom, each holding the edges reaching it from even
// blossoms, so that a blossom turning odd only drops its own group and a
// dual adjustment only shifts groups, never rescans all edges.
type PriorityQueue2[G comparable, K comparable, P constraints.Integer | constraints.Float] struct {
	groups   map[G]*pq2Group[G, K, P]
	outer    pq2OuterHeap[G, K, P]
}

type pq2Group[G comparable, K comparable, P constraints.Integer | constraints.Float] struct {
	name  G
	inner *PriorityQueue1[K, P]
	index int // position in outer heap
}

type pq2OuterHeap[G comparable, K comparable, P constraints.Integer | constraints.Float] []*pq2Group[G, K, P]

func (h pq2OuterHeap[G, K, P]) Len() int { return len(h) }
func (h pq2OuterHeap[G, K, P]) Less(i, j int) bool {
	_, pi, oki := h[i].inner.PeekMin()
	_, pj, okj := h[j].inner.PeekMin()
	if !oki {
		return false // empty groups sort last
	}
	if !okj {
		return true
	}
	return pi < pj
}
func (h pq2OuterHeap[G, K, P]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *pq2OuterHeap[G, K, P]) Push(x interface{}) {
	g := x.(*pq2Group[G, K, P])
	g.index = len(*h)
	*h = append(*h, g)
}
func (h *pq2OuterHeap[G, K, P]) Pop() interface{} {
	old := *h
	n := len(old)
	g := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return g
}

// NewPriorityQueue2 returns an empty grouped queue.
func NewPriorityQueue2[G comparable, K comparable, P constraints.Integer | constraints.Float]() *PriorityQueue2[G, K, P] {
	return &PriorityQueue2[G, K, P]{
		groups: make(map[G]*pq2Group[G, K, P]),
		outer:  make(pq2OuterHeap[G, K, P], 0),
	}
}

// EnsureGroup creates the named group if it does not already exist.
func (q *PriorityQueue2[G, K, P]) EnsureGroup(name G) {
	if _, ok := q.groups[name]; ok {
		return
	}
	g := &pq2Group[G, K, P]{name: name, inner: NewPriorityQueue1[K, P]()}
	q.groups[name] = g
	heap.Push(&q.outer, g)
}

// Push inserts key with the given effective priority into the named group,
// creating the group first if necessary.
func (q *PriorityQueue2[G, K, P]) Push(group G, key K, priority P) {
	q.EnsureGroup(group)
	g := q.groups[group]
	g.inner.Push(key, priority)
	heap.Fix(&q.outer, g.index)
}

// Shift adds delta to every priority in the named group in O(1) plus the
// O(log g) re-heapify needed since the group's relative rank may change.
func (q *PriorityQueue2[G, K, P]) Shift(group G, delta P) {
	g, ok := q.groups[group]
	if !ok {
		return
	}
	g.inner.Shift(delta)
	heap.Fix(&q.outer, g.index)
}

// Remove deletes key from the named group.
func (q *PriorityQueue2[G, K, P]) Remove(group G, key K) {
	g, ok := q.groups[group]
	if !ok {
		return
	}
	g.inner.Remove(key)
	heap.Fix(&q.outer, g.index)
}

// DropGroup removes an entire group (used when a blossom is absorbed or
// expanded and its group's members are re-homed elsewhere by the caller).
func (q *PriorityQueue2[G, K, P]) DropGroup(name G) {
	g, ok := q.groups[name]
	if !ok {
		return
	}
	heap.Remove(&q.outer, g.index)
	delete(q.groups, name)
}

// Group returns the named group's inner PriorityQueue1 for direct access
// (e.g. draining all members during a concatenation into another group).
// Returns nil if the group does not exist.
func (q *PriorityQueue2[G, K, P]) Group(name G) *PriorityQueue1[K, P] {
	g, ok := q.groups[name]
	if !ok {
		return nil
	}
	return g.inner
}

// Min returns the group, key and effective priority of the global minimum
// across all groups. ok is false if every group is empty.
func (q *PriorityQueue2[G, K, P]) Min() (group G, key K, priority P, ok bool) {
	for len(q.outer) > 0 {
		top := q.outer[0]
		k, p, has := top.inner.PeekMin()
		if !has {
			// Empty group floated to top; drop it and retry.
			heap.Pop(&q.outer)
			delete(q.groups, top.name)
			continue
		}
		return top.name, k, p, true
	}
	var zg G
	var zk K
	var zp P
	return zg, zk, zp, false
}
