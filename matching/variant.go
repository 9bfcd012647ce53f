package matching

// Variant is the narrow capability abstraction the blossom skeleton
// dispatches to at its per-algorithm decision points, per the source
// design's guidance to prefer "a narrow capability abstraction with
// exactly those hooks as operations" over a deep class hierarchy.
//
// The skeleton (skeleton.go) owns everything common to Edmonds, Gabow and
// Micali–Gabow: the stage loop, the frontier queue that drives the initial
// BFS-style label growth from freshly labelled vertices, backtracking,
// blossom creation and augmentation, and the canonical node/blossom dual
// arrays. A Variant owns everything the hook table names as genuinely
// differing between the three: how it discovers tight edges and the four
// δ candidates, and what auxiliary bookkeeping it must update when a
// blossom is created, absorbed, expanded or relabeled.
//
// initialize_substage/has_useful_edges/get_useful_edge are realized here
// exactly as named — InitializeSubstage, HasUsefulEdges, GetUsefulEdge —
// because tight-edge discovery is precisely where Edmonds (FIFO rescan),
// Gabow (best-edges table) and Micali–Gabow (grouped priority queues) earn
// their distinct complexity bounds; folding them into a single
// skeleton-owned rescan would erase that distinction. get_blossom(v) has
// no per-variant hook because it never differs between variants — the
// skeleton answers it directly via inBlossom. handle_subblossom_shift has
// no current subscriber: none of the three variants keeps state indexed
// by a blossom's cyclic sub-blossom order, so there is nothing to rotate;
// the rotation itself already happens in augmentBlossom when a base moves.
type Variant interface {
	// Name identifies the variant for logging and diagnostics.
	Name() string

	// InitializeStage resets variant-specific scan structures at the start
	// of a stage, after the skeleton has reset all labels.
	InitializeStage(r *skeletonRunner)

	// InitializeSubstage refreshes the variant's tight-edge stream at the
	// start of every substage, after the previous substage's delta
	// adjustment and blossom expansions have landed.
	InitializeSubstage(r *skeletonRunner)

	// HasUsefulEdges reports whether the variant's own structure currently
	// holds at least one edge ready for consider_edge without any further
	// dual adjustment (i.e. already at slack 0).
	HasUsefulEdges(r *skeletonRunner) bool

	// GetUsefulEdge pops the next such edge and the vertex index
	// consider_edge should treat as its origin side.
	GetUsefulEdge(r *skeletonRunner) (vIdx int, e EdgeRef, ok bool)

	// FinishStage tears down / reconciles variant-specific structures once
	// a stage has ended (by augmentation or by proving optimality).
	FinishStage(r *skeletonRunner)

	// LabelOdd is called after the skeleton labels blossom b odd.
	LabelOdd(r *skeletonRunner, b blossomID)

	// LabelEven is called after the skeleton labels blossom b even.
	LabelEven(r *skeletonRunner, b blossomID)

	// HandleNewBlossom is called after the skeleton creates blossom b,
	// merging its sub-blossoms into the top-level set.
	HandleNewBlossom(r *skeletonRunner, b blossomID)

	// HandleOddBlossomExpansion is called after the skeleton expands odd
	// blossom b (z reached 0), right after b's handle is marked inactive;
	// b's subBlossoms are still readable.
	HandleOddBlossomExpansion(r *skeletonRunner, b blossomID)

	// HandleEvenBlossomExpansion is called at stage finish for bookkeeping
	// consistency on even blossoms whose internal matching must be
	// reconciled with their current base.
	HandleEvenBlossomExpansion(r *skeletonRunner, b blossomID)

	// CalcDelta1 returns the minimum node dual over even vertices.
	CalcDelta1(r *skeletonRunner) (delta2x int64, ok bool)

	// CalcDelta2 returns the minimum slack over edges from an even
	// blossom to a free vertex, and the witnessing edge.
	CalcDelta2(r *skeletonRunner) (delta2x int64, ok bool, edge EdgeRef)

	// CalcDelta3 returns the minimum slack over edges between distinct
	// even top-level blossoms (already expressed in doubled-delta units,
	// i.e. equal to the undoubled slack, per skeleton.go's convention),
	// and the witnessing edge.
	CalcDelta3(r *skeletonRunner) (delta2x int64, ok bool, edge EdgeRef)

	// CalcDelta4 returns half the minimum z over odd non-trivial top-level
	// blossoms (in doubled-delta units, i.e. equal to undoubled z), and the
	// witnessing blossom.
	CalcDelta4(r *skeletonRunner) (delta2x int64, ok bool, b blossomID)

	// AdjustByDelta is called after the skeleton has applied a chosen delta
	// to the canonical dual arrays, so the variant can shift its own
	// auxiliary priority structures in step.
	AdjustByDelta(r *skeletonRunner, deltaDoubled int64)
}
