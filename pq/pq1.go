package pq

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PriorityQueue1 is a min-priority queue over keys K with priorities P,
// supporting a uniform additive shift of every current priority in O(1).
//
// The trick: every entry stores its priority *relative to the queue's
// current offset* at insertion time (raw = effective - offset). Because a
// shift changes the offset uniformly, it never changes the relative order
// of raw priorities already in the heap, so the underlying container/heap
// invariant stays valid without touching a single entry. Reading back an
// effective priority is raw + offset.
//
// Stale entries left behind by re-pushing an existing key or by Remove are
// skipped lazily on PopMin/PeekMin.
type PriorityQueue1[K comparable, P constraints.Integer | constraints.Float] struct {
	offset P
	items  pq1Heap[K, P]
	index  map[K]*pq1Item[K, P] // last live item per key, for Push-overwrite/Remove
}

type pq1Item[K comparable, P constraints.Integer | constraints.Float] struct {
	key   K
	raw   P
	dead  bool
	index int // position in the heap slice, maintained by heap.Interface
}

type pq1Heap[K comparable, P constraints.Integer | constraints.Float] []*pq1Item[K, P]

func (h pq1Heap[K, P]) Len() int            { return len(h) }
func (h pq1Heap[K, P]) Less(i, j int) bool  { return h[i].raw < h[j].raw }
func (h pq1Heap[K, P]) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pq1Heap[K, P]) Push(x interface{}) {
	it := x.(*pq1Item[K, P])
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *pq1Heap[K, P]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// NewPriorityQueue1 returns an empty queue with offset zero.
func NewPriorityQueue1[K comparable, P constraints.Integer | constraints.Float]() *PriorityQueue1[K, P] {
	return &PriorityQueue1[K, P]{
		items: make(pq1Heap[K, P], 0),
		index: make(map[K]*pq1Item[K, P]),
	}
}

// Push inserts key with the given effective priority. If key is already
// present, the old entry is marked dead and the new one takes over —
// callers wanting strict decrease-key semantics should check membership
// first via Contains.
func (q *PriorityQueue1[K, P]) Push(key K, priority P) {
	if old, ok := q.index[key]; ok {
		old.dead = true
	}
	it := &pq1Item[K, P]{key: key, raw: priority - q.offset}
	q.index[key] = it
	heap.Push(&q.items, it)
}

// Shift adds delta to every priority currently and subsequently reported
// by this queue, in O(1).
func (q *PriorityQueue1[K, P]) Shift(delta P) {
	q.offset += delta
}

// Contains reports whether key currently has a live entry.
func (q *PriorityQueue1[K, P]) Contains(key K) bool {
	it, ok := q.index[key]
	return ok && !it.dead
}

// Len returns the number of live entries in O(1); dead heap entries are not
// counted.
func (q *PriorityQueue1[K, P]) Len() int {
	return len(q.index)
}

// PeekMin returns the key and effective priority of the minimum entry
// without removing it. ok is false if the queue is empty.
func (q *PriorityQueue1[K, P]) PeekMin() (key K, priority P, ok bool) {
	q.dropDead()
	if len(q.items) == 0 {
		var zk K
		var zp P
		return zk, zp, false
	}
	top := q.items[0]
	return top.key, top.raw + q.offset, true
}

// PopMin removes and returns the minimum entry.
func (q *PriorityQueue1[K, P]) PopMin() (key K, priority P, ok bool) {
	q.dropDead()
	if len(q.items) == 0 {
		var zk K
		var zp P
		return zk, zp, false
	}
	it := heap.Pop(&q.items).(*pq1Item[K, P])
	delete(q.index, it.key)
	return it.key, it.raw + q.offset, true
}

// Remove deletes key from the queue if present. O(1) amortized (lazy).
func (q *PriorityQueue1[K, P]) Remove(key K) {
	if it, ok := q.index[key]; ok {
		it.dead = true
		delete(q.index, key)
	}
}

// dropDead pops stale heap-top entries left behind by Push-over-existing or Remove.
func (q *PriorityQueue1[K, P]) dropDead() {
	for len(q.items) > 0 && q.items[0].dead {
		heap.Pop(&q.items)
	}
}
