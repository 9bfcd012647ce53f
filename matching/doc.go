// Package matching computes maximum-weight and maximum-cardinality matchings
// on general (not-necessarily-bipartite) undirected graphs backed by
// core.Graph.
//
// Weighted matching is built around one shared blossom skeleton
// (skeletonRunner) driving a family of interchangeable delta strategies:
//
//   - NewEdmonds  — full scan over vertices/blossoms on every substage.
//   - NewGabow    — per-blossom best-edges tables, merged on blossom
//     creation instead of rescanned.
//   - NewMicaliGabow — the same skeleton backed by the pq package's
//     PriorityQueue1/PriorityQueue2 structures, grouped and shifted
//     incrementally rather than rescanned.
//
// All three produce the same matching (up to tie-breaking among equal-weight
// optima) on the same graph; they differ only in how quickly they locate the
// next dual adjustment.
//
// MaximumCardinalityMatching runs a separate, unweighted engine — levels,
// bridges and blooms — independent of the weighted skeleton, since
// cardinality matching has no duals to maintain.
//
// Internally every dual quantity (vertex and blossom z) is stored at twice
// its textbook value so that half-integer slacks stay exact integers; see
// the comments on slack and applyDelta in skeleton.go.
//
// AI-HINT: mirrors core's pattern of sorted, deterministic iteration
// (Vertices()/Edges()) and builder's functional-options construction
// (NewEdmonds(WithLogger(...)), etc.) — a caller already familiar with
// those two packages should find this one's shape unsurprising.
package matching
