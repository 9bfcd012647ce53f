package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/lvlath-labs/matching/core"
	"github.com/rs/zerolog"
)

// skeletonRunner holds all state shared by every weighted-matching variant:
// the vertex/edge arrays derived from the input graph, the blossom arena,
// node and blossom dual variables, the current matching, and the frontier
// queue driving label growth. Internally every dual quantity is stored
// doubled (2×) so that δ₃/δ₄'s implicit halving stays exact integer
// arithmetic — a well-known trick for this family of algorithms; Weight()
// and the public Matching type undo the doubling nowhere, since matching
// membership (not weight) is the only thing that crosses the doubled
// boundary; total weight is recomputed from the original graph in
// Matching.Weight.
type skeletonRunner struct {
	g   *core.Graph
	cfg config
	log zerolog.Logger

	variant Variant

	nodes []string
	idx   map[string]int
	n     int

	adj [][]EdgeRef // adjacency by vertex index

	mate []int // matched vertex index, or -1

	blossoms []*blossomNode // arena; index 0..n-1 are the trivial per-vertex blossoms
	inBlossom []blossomID   // per-vertex current top-level blossom

	queue  []int  // frontier: vertex indices of even blossoms awaiting edge scan
	queued []bool // dedup flag for queue membership

	stageCount int
}

// newSkeletonRunner builds the shared state from g. Vertex order is g's
// sorted Vertices() order, matching this module's determinism convention.
func newSkeletonRunner(g *core.Graph, cfg config, variant Variant) (*skeletonRunner, error) {
	nodes := g.Vertices()
	n := len(nodes)
	idx := make(map[string]int, n)
	for i, v := range nodes {
		idx[v] = i
	}

	adj := make([][]EdgeRef, n)
	var maxWeight2 int64
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		ui, uok := idx[e.From]
		vi, vok := idx[e.To]
		if !uok || !vok || e.From == e.To {
			continue
		}
		ref := EdgeRef{U: e.From, V: e.To, ID: e.ID, Weight: e.Weight}
		adj[ui] = append(adj[ui], ref)
		adj[vi] = append(adj[vi], ref)
		w2 := 2 * e.Weight
		if w2 > maxWeight2 {
			maxWeight2 = w2
		}
	}

	blossoms := make([]*blossomNode, n)
	mate := make([]int, n)
	inBlossom := make([]blossomID, n)
	for i, v := range nodes {
		blossoms[i] = &blossomNode{
			id: blossomID(i), active: true, isTrivial: true, vertex: v,
			parent: noBlossom, initialBase: v, base: v, lastNode: v,
			label: LabelFree, backtrackFrom: noBlossom, z: maxWeight2,
		}
		mate[i] = -1
		inBlossom[i] = blossomID(i)
	}

	return &skeletonRunner{
		g: g, cfg: cfg, log: cfg.logger, variant: variant,
		nodes: nodes, idx: idx, n: n, adj: adj,
		mate: mate, blossoms: blossoms, inBlossom: inBlossom,
		queued: make([]bool, n),
	}, nil
}

// run executes stages until no augmenting path exists, honoring ctx
// cancellation only at stage boundaries (no suspension points expose
// caller-visible partial state).
func (r *skeletonRunner) run(ctx context.Context) (*Matching, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		default:
		}
		r.stageCount++
		augmented, optimal, err := r.stage()
		if err != nil {
			return nil, err
		}
		if r.cfg.consistencyChecks {
			if cerr := r.checkConsistency(); cerr != nil {
				r.logInconsistency(cerr.Error())
				return nil, cerr
			}
		}
		if optimal {
			break
		}
		if !augmented {
			// Should not happen: stage() reports either augmented or optimal.
			break
		}
	}
	return r.buildMatching(), nil
}

func (r *skeletonRunner) buildMatching() *Matching {
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom {
			r.resolveAll(bn.id)
		}
	}
	m := newMatching()
	for i := 0; i < r.n; i++ {
		if r.mate[i] == -1 {
			continue
		}
		u, v := r.nodes[i], r.nodes[r.mate[i]]
		m.partner[u] = v
	}
	for _, edges := range r.adj {
		for _, e := range edges {
			ui, vi := r.idx[e.U], r.idx[e.V]
			if r.mate[ui] == vi {
				m.inM[e.ID] = true
			}
		}
	}
	return m
}

// stage runs initialize_stage, then substages until augmentation or proof
// of optimality.
func (r *skeletonRunner) stage() (augmented bool, optimal bool, err error) {
	r.initializeStage()
	r.logStage(r.stageCount)

	for {
		augmented, err = r.drainQueue()
		if err != nil {
			return false, false, err
		}
		if augmented {
			r.finishStage()
			return true, false, nil
		}

		r.variant.InitializeSubstage(r)
		augmented, err = r.drainUsefulEdges()
		if err != nil {
			return false, false, err
		}
		if augmented {
			r.finishStage()
			return true, false, nil
		}

		d1, ok1 := r.variant.CalcDelta1(r)
		d2, ok2, _ := r.variant.CalcDelta2(r)
		d3, ok3, _ := r.variant.CalcDelta3(r)
		d4, ok4, _ := r.variant.CalcDelta4(r)

		dstar, kind := pickDelta(d1, ok1, d2, ok2, d3, ok3, d4, ok4)
		if kind == 0 {
			// No candidate at all: nothing left to grow or shrink; treat as optimal.
			r.finishStage()
			return false, true, nil
		}
		r.logDelta(kind, dstar)
		r.applyDelta(dstar)
		r.variant.AdjustByDelta(r, dstar)

		if kind == 1 {
			r.finishStage()
			return false, true, nil
		}

		r.expandZeroOddBlossoms()
	}
}

// pickDelta selects the minimum of the four candidate deltas, breaking
// ties δ₁<δ₂<δ₃<δ₄. kind is
// 0 (none), 1..4 identifying which δ won.
func pickDelta(d1 int64, ok1 bool, d2 int64, ok2 bool, d3 int64, ok3 bool, d4 int64, ok4 bool) (int64, int) {
	best := int64(0)
	kind := 0
	consider := func(v int64, ok bool, k int) {
		if !ok {
			return
		}
		if kind == 0 || v < best {
			best, kind = v, k
		}
	}
	consider(d1, ok1, 1)
	consider(d2, ok2, 2)
	consider(d3, ok3, 3)
	consider(d4, ok4, 4)
	return best, kind
}

func (r *skeletonRunner) initializeStage() {
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom {
			continue
		}
		bn.label = LabelFree
		bn.backtrackEdge = EdgeRef{}
		bn.backtrackFrom = noBlossom
		bn.visited = false
	}
	r.queue = r.queue[:0]
	for i := range r.queued {
		r.queued[i] = false
	}
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom {
			continue
		}
		if r.mate[r.idx[bn.base]] == -1 {
			bn.label = LabelEven
			bn.backtrackFrom = noBlossom
			r.enqueueBlossomVertices(bn.id)
		}
	}
	r.variant.InitializeStage(r)
}

func (r *skeletonRunner) finishStage() {
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom && bn.label == LabelEven && !bn.isTrivial {
			r.variant.HandleEvenBlossomExpansion(r, bn.id)
		}
	}
	r.variant.FinishStage(r)
}

// drainQueue processes the frontier until empty or an augmentation happens.
// The frontier only ever holds vertices that were *just* labelled even —
// their adjacency has never been examined before, so scanning it once here
// is required work, not the redundant rescan drainUsefulEdges replaces.
func (r *skeletonRunner) drainQueue() (bool, error) {
	for len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		r.queued[v] = false
		for _, e := range r.adj[v] {
			augmented, err := r.considerEdge(v, e)
			if err != nil {
				return false, err
			}
			if augmented {
				return true, nil
			}
		}
	}
	return false, nil
}

// drainUsefulEdges pulls tight edges from the active variant's own
// discovered-candidate structure — Edmonds' usefulEdges FIFO, Gabow's
// best-edges table, Micali–Gabow's goodEdges/toFree queues — instead of
// rescanning every even vertex's adjacency. Each variant's
// has_useful_edges/get_useful_edge realization
// determines what "tight" costs to discover; drainUsefulEdges only loops
// until that structure is empty or an augmentation happens.
func (r *skeletonRunner) drainUsefulEdges() (bool, error) {
	for r.variant.HasUsefulEdges(r) {
		vIdx, e, ok := r.variant.GetUsefulEdge(r)
		if !ok {
			break
		}
		augmented, err := r.considerEdge(vIdx, e)
		if err != nil {
			return false, err
		}
		if augmented {
			return true, nil
		}
	}
	return false, nil
}

func (r *skeletonRunner) considerEdge(vIdx int, e EdgeRef) (bool, error) {
	wIdx := r.otherIdx(e, vIdx)
	ub := r.inBlossom[vIdx]
	vb := r.inBlossom[wIdx]
	if ub == vb {
		return false, nil
	}
	bu, bv := r.blossoms[ub], r.blossoms[vb]
	slack := r.slack(e)

	switch {
	case bu.label == LabelEven && bv.label == LabelEven:
		if slack != 0 {
			return false, nil
		}
		lca := r.findCommonAncestor(ub, vb)
		if lca == noBlossom {
			return true, r.augment(ub, vb, e)
		}
		r.createNewBlossom(lca, ub, vb, e)
		return false, nil
	case bu.label == LabelEven && bv.label == LabelFree:
		if slack != 0 {
			return false, nil
		}
		r.growTree(vb, e, ub)
		return false, nil
	case bv.label == LabelEven && bu.label == LabelFree:
		if slack != 0 {
			return false, nil
		}
		r.growTree(ub, e, vb)
		return false, nil
	default:
		return false, nil
	}
}

// slack returns the doubled slack of e: U2(u)+U2(v)-weight2(e). Ancestor
// blossom duals never contribute here because considerEdge only reaches
// edges between distinct top-level blossoms, and no non-trivial blossom
// can contain vertices from two different top-level blossoms (the
// disjointness invariant), so their contribution to π(u,v) is always 0.
func (r *skeletonRunner) slack(e EdgeRef) int64 {
	u, v := r.idx[e.U], r.idx[e.V]
	return r.blossoms[blossomID(u)].z + r.blossoms[blossomID(v)].z - 2*e.Weight
}

func (r *skeletonRunner) dualOfVertex(vIdx int) int64 {
	return r.blossoms[blossomID(vIdx)].z
}

func (r *skeletonRunner) growTree(freeB blossomID, viaEdge EdgeRef, fromEven blossomID) {
	r.labelOdd(freeB, viaEdge, fromEven)
	baseIdx := r.idx[r.blossoms[freeB].base]
	mateIdx := r.mate[baseIdx]
	mateBlossom := r.inBlossom[mateIdx]
	matchEdge := r.matchEdgeOf(baseIdx, mateIdx)
	r.labelEven(mateBlossom, matchEdge, freeB)
}

func (r *skeletonRunner) labelOdd(b blossomID, viaEdge EdgeRef, from blossomID) {
	bn := r.blossoms[b]
	bn.label = LabelOdd
	bn.backtrackEdge = viaEdge
	bn.backtrackFrom = from
	r.variant.LabelOdd(r, b)
}

func (r *skeletonRunner) labelEven(b blossomID, viaEdge EdgeRef, from blossomID) {
	bn := r.blossoms[b]
	bn.label = LabelEven
	bn.backtrackEdge = viaEdge
	bn.backtrackFrom = from
	r.variant.LabelEven(r, b)
	r.enqueueBlossomVertices(b)
}

func (r *skeletonRunner) enqueueBlossomVertices(b blossomID) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		vi := r.idx[bn.vertex]
		if !r.queued[vi] {
			r.queued[vi] = true
			r.queue = append(r.queue, vi)
		}
		return
	}
	for _, se := range bn.subBlossoms {
		r.enqueueBlossomVertices(se.child)
	}
}

// walkVertices invokes fn on every vertex index under blossom b.
func (r *skeletonRunner) walkVertices(b blossomID, fn func(int)) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		fn(r.idx[bn.vertex])
		return
	}
	for _, se := range bn.subBlossoms {
		r.walkVertices(se.child, fn)
	}
}

// collectVertices returns the vertex ids under blossom b, in cycle order.
func (r *skeletonRunner) collectVertices(b blossomID) []string {
	var out []string
	r.walkVertices(b, func(vi int) { out = append(out, r.nodes[vi]) })
	return out
}


// findCommonAncestor returns the lowest blossom common to both a's and b's
// paths to their tree roots (via backtrackFrom), or noBlossom if the two
// paths reach different (exposed) roots.
func (r *skeletonRunner) findCommonAncestor(a, b blossomID) blossomID {
	for x := a; x != noBlossom; x = r.blossoms[x].backtrackFrom {
		r.blossoms[x].visited = true
	}
	result := noBlossom
	for y := b; y != noBlossom; y = r.blossoms[y].backtrackFrom {
		if r.blossoms[y].visited {
			result = y
			break
		}
	}
	for x := a; x != noBlossom; x = r.blossoms[x].backtrackFrom {
		r.blossoms[x].visited = false
	}
	return result
}

// createNewBlossom builds a new top-level blossom from the two backtrack
// paths ub→lca and vb→lca plus the triggering edge.
func (r *skeletonRunner) createNewBlossom(lca, ub, vb blossomID, trigger EdgeRef) {
	var chainA []blossomID // ub .. just-below-lca
	for x := ub; x != lca; x = r.blossoms[x].backtrackFrom {
		chainA = append(chainA, x)
	}
	var chainB []blossomID // vb .. just-below-lca
	for x := vb; x != lca; x = r.blossoms[x].backtrackFrom {
		chainB = append(chainB, x)
	}
	// chainA is currently [ub, ..., just-below-lca]; reverse for [just-below-lca..ub].
	for i, j := 0, len(chainA)-1; i < j; i, j = i+1, j-1 {
		chainA[i], chainA[j] = chainA[j], chainA[i]
	}

	seq := make([]blossomID, 0, 1+len(chainA)+len(chainB))
	seq = append(seq, lca)
	seq = append(seq, chainA...)
	seq = append(seq, chainB...)

	k := len(chainA) // index of ub within seq is k
	subs := make([]subEdge, len(seq))
	for i, node := range seq {
		var edge EdgeRef
		switch {
		case i < k:
			edge = r.blossoms[seq[i+1]].backtrackEdge
		case i == k:
			edge = trigger
		default:
			edge = r.blossoms[node].backtrackEdge
		}
		subs[i] = subEdge{child: node, edge: edge}
	}

	nb := &blossomNode{
		id:            blossomID(len(r.blossoms)),
		active:        true,
		isTrivial:     false,
		parent:        noBlossom,
		initialBase:   r.blossoms[lca].base,
		base:          r.blossoms[lca].base,
		lastNode:      r.blossoms[lca].base,
		subBlossoms:   subs,
		label:         LabelEven,
		backtrackEdge: r.blossoms[lca].backtrackEdge,
		backtrackFrom: r.blossoms[lca].backtrackFrom,
		z:             0,
	}
	r.blossoms = append(r.blossoms, nb)
	for _, se := range subs {
		r.blossoms[se.child].parent = nb.id
	}
	r.setInBlossom(nb.id, nb.id)
	r.variant.HandleNewBlossom(r, nb.id)
	r.enqueueBlossomVertices(nb.id)
}

func (r *skeletonRunner) setInBlossom(b, top blossomID) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		r.inBlossom[r.idx[bn.vertex]] = top
		return
	}
	for _, se := range bn.subBlossoms {
		r.setInBlossom(se.child, top)
	}
}

func (r *skeletonRunner) blossomContains(b blossomID, vertex string) bool {
	bn := r.blossoms[b]
	if bn.isTrivial {
		return bn.vertex == vertex
	}
	for _, se := range bn.subBlossoms {
		if r.blossomContains(se.child, vertex) {
			return true
		}
	}
	return false
}

func (r *skeletonRunner) endpointIn(e EdgeRef, b blossomID) string {
	if r.blossomContains(b, e.U) {
		return e.U
	}
	return e.V
}

func (r *skeletonRunner) otherIdx(e EdgeRef, vIdx int) int {
	if r.idx[e.U] == vIdx {
		return r.idx[e.V]
	}
	return r.idx[e.U]
}

func (r *skeletonRunner) matchEdgeOf(uIdx, vIdx int) EdgeRef {
	for _, e := range r.adj[uIdx] {
		if r.otherIdx(e, uIdx) == vIdx {
			return e
		}
	}
	return EdgeRef{}
}

func (r *skeletonRunner) assignMate(v, w string) {
	vi, wi := r.idx[v], r.idx[w]
	r.mate[vi] = wi
	r.mate[wi] = vi
}

// augmentBlossom rotates b's cyclic sub-blossom sequence so v becomes its
// externally-visible connection point and pairs the children adjacent to
// that entry point via the blossom's own cycle edges. It resolves only b's
// own level: rather than recursing into every affected child immediately
// (cost proportional to b's total nested vertex count, however deep), it
// records each child's new entry point via markDirty and leaves that
// child's own rotation for resolveBlossom/resolveAll to catch up later,
// on demand. This keeps one augmentation's cost proportional to the length
// of the augmenting path through the blossom tree, not to how many
// vertices happen to be nested inside the blossoms it passes through.
func (r *skeletonRunner) augmentBlossom(b blossomID, v string) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		bn.base = v
		return
	}
	bn.dirty = false
	childIdx := -1
	for i, se := range bn.subBlossoms {
		if r.blossomContains(se.child, v) {
			childIdx = i
			break
		}
	}
	if childIdx == -1 {
		return
	}
	n := len(bn.subBlossoms)
	rotated := make([]subEdge, n)
	for i := 0; i < n; i++ {
		rotated[i] = bn.subBlossoms[(childIdx+i)%n]
	}
	bn.subBlossoms = rotated
	bn.base = v

	r.markDirty(rotated[0].child, v)
	for i := 1; i+1 < n; i += 2 {
		left, right := rotated[i], rotated[i+1]
		edge := left.edge
		vLeft := r.endpointIn(edge, left.child)
		vRight := edge.Other(vLeft)
		r.markDirty(left.child, vLeft)
		r.markDirty(right.child, vRight)
		r.assignMate(vLeft, vRight)
	}
}

// markDirty records v as blossom b's pending entry point without resolving
// b's own rotation yet; a trivial blossom has nothing to defer, so its base
// is set immediately.
func (r *skeletonRunner) markDirty(b blossomID, v string) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		bn.base = v
		return
	}
	bn.lastNode = v
	bn.dirty = true
}

// resolveBlossom catches b up to its own last recorded entry point if it
// is dirty, resolving exactly one level (b's own base and immediate
// children), the same amount of work augmentBlossom itself would have done
// eagerly. Children remain dirty until they too are resolved.
func (r *skeletonRunner) resolveBlossom(b blossomID) {
	bn := r.blossoms[b]
	if bn.isTrivial || !bn.dirty {
		return
	}
	r.augmentBlossom(b, bn.lastNode)
}

// resolveAll resolves b and every blossom nested under it, transitively,
// so all per-vertex base/mate state beneath b reflects every deferred
// augmentation. Called before anything needs concrete internal state:
// blossom expansion, final matching extraction, consistency checks.
func (r *skeletonRunner) resolveAll(b blossomID) {
	bn := r.blossoms[b]
	if bn.isTrivial {
		return
	}
	r.resolveBlossom(b)
	for _, se := range bn.subBlossoms {
		r.resolveAll(se.child)
	}
}

// augmentTreePath fixes internal blossom structure from b (containing v,
// already matched by the caller) up to its exposed root, matching each
// tree edge that flips from tight/unmatched to matched along the way.
func (r *skeletonRunner) augmentTreePath(b blossomID, v string) {
	for {
		r.augmentBlossom(b, v)
		bt := r.blossoms[b].backtrackFrom
		if bt == noBlossom {
			return
		}
		bte := r.blossoms[bt].backtrackEdge
		w := r.endpointIn(bte, bt)
		s := bte.Other(w)
		r.augmentBlossom(bt, w)
		r.assignMate(w, s)
		b = r.blossoms[bt].backtrackFrom
		v = s
	}
}

func (r *skeletonRunner) augment(ub, vb blossomID, trigger EdgeRef) error {
	vU := r.endpointIn(trigger, ub)
	vV := trigger.Other(vU)
	r.assignMate(vU, vV)
	r.augmentTreePath(ub, vU)
	r.augmentTreePath(vb, vV)
	r.logAugment(0)
	return nil
}

// applyDelta mutates the canonical doubled dual arrays: U2 decreases by
// delta on even vertices, increases on odd; Z2 increases by 2·delta on
// even top-level blossoms, decreases on odd top-level blossoms.
func (r *skeletonRunner) applyDelta(delta int64) {
	for i := 0; i < r.n; i++ {
		switch r.blossoms[r.inBlossom[i]].label {
		case LabelEven:
			r.blossoms[blossomID(i)].z -= delta
		case LabelOdd:
			r.blossoms[blossomID(i)].z += delta
		}
	}
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom || bn.isTrivial {
			continue
		}
		switch bn.label {
		case LabelEven:
			bn.z += 2 * delta
		case LabelOdd:
			bn.z -= 2 * delta
		}
	}
}

func (r *skeletonRunner) expandZeroOddBlossoms() {
	// Snapshot ids first: expansion appends no new blossoms but flips
	// activity/parentage of existing ones, so iterate over a stable list.
	var toExpand []blossomID
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom && !bn.isTrivial && bn.label == LabelOdd && bn.z == 0 {
			toExpand = append(toExpand, bn.id)
		}
	}
	for _, id := range toExpand {
		r.expandOddBlossom(id)
	}
}

// expandOddBlossom dissolves odd blossom b whose dual has reached 0,
// reattaching its sub-blossoms as top-level and relabeling the segment
// between its entry point and its base.
func (r *skeletonRunner) expandOddBlossom(b blossomID) {
	r.resolveBlossom(b)
	bn := r.blossoms[b]
	n := len(bn.subBlossoms)
	if n == 0 {
		return
	}

	iEntry := 0
	for i, se := range bn.subBlossoms {
		if r.blossomContains(se.child, bn.backtrackEdge.U) || r.blossomContains(se.child, bn.backtrackEdge.V) {
			iEntry = i
			break
		}
	}
	iExit := 0 // base is always subBlossoms[0] by construction

	fwd := (iExit - iEntry + n) % n
	bwd := (iEntry - iExit + n) % n
	forward := fwd <= bwd
	steps := fwd
	if !forward {
		steps = bwd
	}
	segment := make([]int, 0, steps+1)
	for i := 0; i <= steps; i++ {
		if forward {
			segment = append(segment, (iEntry+i)%n)
		} else {
			segment = append(segment, (iEntry-i+n)%n)
		}
	}

	outerParent := bn.parent
	for _, se := range bn.subBlossoms {
		r.blossoms[se.child].parent = outerParent
		// A child promoted to top level (outerParent == noBlossom) must have
		// its own base resolved now: nothing else will call resolveBlossom
		// on it before the next stage reads its base directly.
		if outerParent == noBlossom {
			r.resolveBlossom(se.child)
		}
	}

	inSegment := make(map[int]bool, len(segment))
	for _, s := range segment {
		inSegment[s] = true
	}

	for pos, idx := range segment {
		child := bn.subBlossoms[idx].child
		cn := r.blossoms[child]
		switch {
		case pos == 0:
			cn.label = LabelOdd
			cn.backtrackFrom = bn.backtrackFrom
			cn.backtrackEdge = bn.backtrackEdge
		case pos == len(segment)-1:
			mateIdx := r.mate[r.idx[bn.base]]
			cn.label = LabelEven
			cn.backtrackFrom = r.inBlossom[mateIdx]
			cn.backtrackEdge = r.matchEdgeOf(r.idx[bn.base], mateIdx)
			r.enqueueBlossomVertices(child)
		case pos%2 == 1:
			cn.label = LabelEven
			cn.backtrackFrom = bn.subBlossoms[segment[pos-1]].child
			cn.backtrackEdge = r.segmentEdge(bn, segment, pos-1, forward)
			r.enqueueBlossomVertices(child)
		default:
			cn.label = LabelOdd
			cn.backtrackFrom = bn.subBlossoms[segment[pos-1]].child
			cn.backtrackEdge = r.segmentEdge(bn, segment, pos-1, forward)
		}
	}

	for i, se := range bn.subBlossoms {
		if inSegment[i] {
			continue
		}
		cn := r.blossoms[se.child]
		cn.label = LabelFree
		cn.backtrackFrom = noBlossom
		cn.backtrackEdge = EdgeRef{}
	}

	for _, se := range bn.subBlossoms {
		r.setInBlossom(se.child, se.child)
	}
	bn.active = false
	r.variant.HandleOddBlossomExpansion(r, b)
}

// segmentEdge returns the connecting edge between segment[i] and
// segment[i+1] given the cycle's traversal direction.
func (r *skeletonRunner) segmentEdge(bn *blossomNode, segment []int, i int, forward bool) EdgeRef {
	if forward {
		return bn.subBlossoms[segment[i]].edge
	}
	return bn.subBlossoms[segment[i+1]].edge
}

// checkConsistency verifies the invariants that are cheap to test
// directly against the current arena state.
func (r *skeletonRunner) checkConsistency() error {
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom {
			r.resolveAll(bn.id)
		}
	}
	for i := 0; i < r.n; i++ {
		if r.mate[i] == -1 {
			continue
		}
		if r.mate[r.mate[i]] != i {
			return fmt.Errorf("%w: mate asymmetry at %s", ErrInconsistentState, r.nodes[i])
		}
	}
	for _, bn := range r.blossoms {
		if bn.active && !bn.isTrivial && bn.z < 0 {
			return fmt.Errorf("%w: negative blossom dual on %d", ErrInconsistentState, bn.id)
		}
	}
	for i := 0; i < r.n; i++ {
		if r.blossoms[blossomID(i)].z < 0 {
			return fmt.Errorf("%w: negative node dual on %s", ErrInconsistentState, r.nodes[i])
		}
	}
	return nil
}

// DebugState returns a one-line-per-blossom snapshot for tracing, per
// debug-only print_state/check_consistency routines.
func (r *skeletonRunner) DebugState() string {
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom {
			r.resolveAll(bn.id)
		}
	}
	ids := make([]int, 0, len(r.blossoms))
	for _, bn := range r.blossoms {
		ids = append(ids, int(bn.id))
	}
	sort.Ints(ids)
	out := ""
	for _, id := range ids {
		bn := r.blossoms[blossomID(id)]
		if !bn.active {
			continue
		}
		out += fmt.Sprintf("blossom[%d] label=%s base=%s z=%d trivial=%v top=%v\n",
			bn.id, bn.label, bn.base, bn.z, bn.isTrivial, bn.parent == noBlossom)
	}
	return out
}
