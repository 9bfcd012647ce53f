package matching

// edmondsVariant finds delta2/delta3 candidates over a FIFO of "useful"
// edges (edges with at least one even endpoint whose other endpoint is
// free or even, i.e. every edge that could plausibly ever hit zero slack)
// instead of rescanning every vertex's adjacency on every substage.
// usefulEdges is seeded from the roots InitializeStage sees already
// labelled even, then grown incrementally as LabelEven fires for newly
// grown or newly merged blossoms; entries are re-validated against
// current labels at read time in findDelta2UsefulEdges/
// findDelta3UsefulEdges; since only insertion is incremental, the odd
// side of a later-flipped label can produce a stale entry, which the
// isUseful re-check simply skips over rather than compacting away.
type edmondsVariant struct {
	usefulEdges []EdgeRef
}

// newEdmondsVariant constructs the full-scan Variant used by NewEdmonds.
func newEdmondsVariant() *edmondsVariant {
	return &edmondsVariant{}
}

func (v *edmondsVariant) Name() string { return "edmonds" }

func (v *edmondsVariant) InitializeStage(r *skeletonRunner) {
	v.usefulEdges = v.usefulEdges[:0]
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom && bn.label == LabelEven {
			v.enqueueUsefulEdges(r, bn.id)
		}
	}
}

// InitializeSubstage does nothing extra: usefulEdges is already maintained
// incrementally by LabelEven and HandleOddBlossomExpansion, so there is no
// per-substage reset to perform.
func (v *edmondsVariant) InitializeSubstage(r *skeletonRunner) {}

// HasUsefulEdges/GetUsefulEdge realize the tight-edge iterator over
// usefulEdges: the FIFO holds candidates, not confirmed-tight edges, so
// both walk it looking for the first entry that is still useful under
// current labels (isUseful re-checks live) and currently at slack 0.
func (v *edmondsVariant) HasUsefulEdges(r *skeletonRunner) bool {
	_, _, ok := v.tightUseful(r)
	return ok
}

func (v *edmondsVariant) GetUsefulEdge(r *skeletonRunner) (int, EdgeRef, bool) {
	return v.tightUseful(r)
}

// tightUseful scans the FIFO for the first entry at slack 0, removing it
// once found; entries the current labels no longer consider useful are
// skipped in place rather than compacted away, matching scanUseful.
func (v *edmondsVariant) tightUseful(r *skeletonRunner) (int, EdgeRef, bool) {
	for i, e := range v.usefulEdges {
		if !v.isUseful(r, e) {
			continue
		}
		if r.slack(e) != 0 {
			continue
		}
		v.usefulEdges = append(v.usefulEdges[:i], v.usefulEdges[i+1:]...)
		return r.idx[e.U], e, true
	}
	return 0, EdgeRef{}, false
}

func (v *edmondsVariant) FinishStage(r *skeletonRunner) {}

func (v *edmondsVariant) LabelOdd(r *skeletonRunner, b blossomID) {}

// LabelEven enqueues the newly-even blossom's qualifying incident edges,
// so the next CalcDelta2/CalcDelta3 call sees them without a full rescan.
func (v *edmondsVariant) LabelEven(r *skeletonRunner, b blossomID) { v.enqueueUsefulEdges(r, b) }

func (v *edmondsVariant) enqueueUsefulEdges(r *skeletonRunner, b blossomID) {
	r.walkVertices(b, func(vi int) {
		for _, e := range r.adj[vi] {
			if v.isUseful(r, e) {
				v.usefulEdges = append(v.usefulEdges, e)
			}
		}
	})
}

// isUseful reports whether e has at least one even endpoint whose other
// endpoint is free or even — the only edges that can ever supply a
// delta2 or delta3 candidate.
func (v *edmondsVariant) isUseful(r *skeletonRunner, e EdgeRef) bool {
	ui, vi := r.idx[e.U], r.idx[e.V]
	ub, vb := r.inBlossom[ui], r.inBlossom[vi]
	if ub == vb {
		return false
	}
	lu, lv := r.blossoms[ub].label, r.blossoms[vb].label
	return (lu == LabelEven && lv != LabelOdd) || (lv == LabelEven && lu != LabelOdd)
}

func (v *edmondsVariant) HandleNewBlossom(r *skeletonRunner, b blossomID) {}

// HandleOddBlossomExpansion re-enqueues useful edges for whichever of b's
// children the expansion left even: expandOddBlossom relabels those
// children directly rather than through labelEven, so LabelEven never
// fires for them and usefulEdges would otherwise miss their adjacency.
func (v *edmondsVariant) HandleOddBlossomExpansion(r *skeletonRunner, b blossomID) {
	bn := r.blossoms[b]
	for _, se := range bn.subBlossoms {
		if r.blossoms[se.child].label == LabelEven {
			v.enqueueUsefulEdges(r, se.child)
		}
	}
}

func (v *edmondsVariant) HandleEvenBlossomExpansion(r *skeletonRunner, b blossomID) {}

// CalcDelta1 is the minimum doubled node dual over even-labelled vertices;
// crossing zero would make an individual vertex's dual negative.
func (v *edmondsVariant) CalcDelta1(r *skeletonRunner) (int64, bool) {
	best := int64(0)
	found := false
	for i := 0; i < r.n; i++ {
		if r.blossoms[r.inBlossom[i]].label != LabelEven {
			continue
		}
		z := r.blossoms[blossomID(i)].z
		if !found || z < best {
			best, found = z, true
		}
	}
	if !found {
		return 0, false
	}
	// z already stores 2×U(v); applyDelta's delta parameter is likewise a
	// doubled quantity (it subtracts directly from z), so the cap on delta
	// from a single even vertex's dual reaching 0 is z itself, undivided.
	return best, true
}

// scanUseful walks v.usefulEdges instead of every vertex's adjacency,
// skipping (without removing) entries isUseful no longer considers useful
// (labels moved on since the edge was queued) and returning the minimum-slack survivor
// whose non-even side (or either side, for delta3) satisfies want.
func (v *edmondsVariant) scanUseful(r *skeletonRunner, want func(other Label) bool) (int64, bool, EdgeRef) {
	best := int64(0)
	found := false
	var bestEdge EdgeRef
	for _, e := range v.usefulEdges {
		if !v.isUseful(r, e) {
			continue
		}
		ui, vi := r.idx[e.U], r.idx[e.V]
		ub, vb := r.inBlossom[ui], r.inBlossom[vi]
		lu, lv := r.blossoms[ub].label, r.blossoms[vb].label
		matched := (lu == LabelEven && want(lv)) || (lv == LabelEven && want(lu))
		if !matched {
			continue
		}
		s := r.slack(e)
		if s < 0 {
			continue
		}
		if !found || s < best {
			best, found, bestEdge = s, true, e
		}
	}
	return best, found, bestEdge
}

// findDelta2UsefulEdges is the minimum slack over queued edges from an
// even blossom to a free one.
func (v *edmondsVariant) findDelta2UsefulEdges(r *skeletonRunner) (int64, bool, EdgeRef) {
	return v.scanUseful(r, func(other Label) bool { return other == LabelFree })
}

// findDelta3UsefulEdges is the minimum slack over queued edges between two
// distinct even blossoms.
func (v *edmondsVariant) findDelta3UsefulEdges(r *skeletonRunner) (int64, bool, EdgeRef) {
	best, found, edge := v.scanUseful(r, func(other Label) bool { return other == LabelEven })
	if !found {
		return 0, false, EdgeRef{}
	}
	// Two even endpoints each shed delta on the same edge, so slack falls by
	// 2*delta; delta3 candidate is half the raw slack.
	return best / 2, true, edge
}

// CalcDelta2 is the minimum slack over edges from even blossoms to free ones.
func (v *edmondsVariant) CalcDelta2(r *skeletonRunner) (int64, bool, EdgeRef) {
	return v.findDelta2UsefulEdges(r)
}

// CalcDelta3 is the minimum slack over edges between distinct even blossoms.
func (v *edmondsVariant) CalcDelta3(r *skeletonRunner) (int64, bool, EdgeRef) {
	return v.findDelta3UsefulEdges(r)
}

// CalcDelta4 is the minimum z over odd non-trivial top-level blossoms.
func (v *edmondsVariant) CalcDelta4(r *skeletonRunner) (int64, bool, blossomID) {
	best := int64(0)
	found := false
	var bestID blossomID
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom || bn.isTrivial || bn.label != LabelOdd {
			continue
		}
		if !found || bn.z < best {
			best, found, bestID = bn.z, true, bn.id
		}
	}
	if !found {
		return 0, false, noBlossom
	}
	return best / 2, true, bestID
}

func (v *edmondsVariant) AdjustByDelta(r *skeletonRunner, deltaDoubled int64) {}
