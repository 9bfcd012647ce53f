// Package pq provides the priority-queue primitives used to accelerate the
// Micali–Gabow weighted matching variant in package matching:
//
//   - PriorityQueue1[K,P]: a min-priority queue supporting a uniform
//     additive shift of every stored priority in O(1) — used for the
//     even-vertex duals, the odd-blossom duals and the good_edges queue.
//   - PriorityQueue2[G,K,P]: a min-priority queue partitioned into named
//     groups, each with its own additive offset, overall minimum in
//     O(log n) — used for the edges from even blossoms to free ones (one
//     group per free blossom).
//   - ConcatenableQueue[K]: an ordered sequence supporting O(log n)
//     split/concatenation, answering "which tagged queue holds this key"
//     via root lookup. Package matching does not use it.
//
// None of these types know anything about graphs or matchings; they are
// pure data-structure building blocks kept in a standalone package.
//
// PriorityQueue1 and PriorityQueue2 are generic over key type K (comparable)
// and priority type P (constraints.Integer | constraints.Float from
// golang.org/x/exp), so the same implementation serves both int64 slacks
// and float64 weights; ConcatenableQueue is generic over K only.
package pq
