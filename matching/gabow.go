package matching

// gabowVariant amortizes delta discovery via a per-blossom best-edges
// table: rather than rescanning every vertex's adjacency on
// every substage, each blossom keeps the single lowest-slack edge to every
// other blossom it currently has any edge to; new blossoms merge their
// children's tables in HandleNewBlossom instead of rescanning from
// scratch. Tables are rebuilt once per stage in InitializeStage.
type gabowVariant struct {
	best map[blossomID]map[blossomID]EdgeRef
}

func newGabowVariant() *gabowVariant {
	return &gabowVariant{best: make(map[blossomID]map[blossomID]EdgeRef)}
}

func (v *gabowVariant) Name() string { return "gabow" }

func (v *gabowVariant) InitializeStage(r *skeletonRunner) {
	v.best = make(map[blossomID]map[blossomID]EdgeRef, len(r.blossoms))
	for i := 0; i < r.n; i++ {
		top := r.inBlossom[i]
		for _, e := range r.adj[i] {
			j := r.otherIdx(e, i)
			otop := r.inBlossom[j]
			if otop == top {
				continue
			}
			v.considerBest(r, top, otop, e)
		}
	}
}

func (v *gabowVariant) considerBest(r *skeletonRunner, top, otop blossomID, e EdgeRef) {
	m, ok := v.best[top]
	if !ok {
		m = make(map[blossomID]EdgeRef)
		v.best[top] = m
	}
	cur, exists := m[otop]
	if !exists || r.slack(e) < r.slack(cur) {
		m[otop] = e
	}
}

// InitializeSubstage does nothing extra: best is already kept current by
// HandleNewBlossom and HandleOddBlossomExpansion as blossoms come and go.
func (v *gabowVariant) InitializeSubstage(r *skeletonRunner) {}

// HasUsefulEdges/GetUsefulEdge realize the tight-edge iterator over best:
// tightEdge finds the first still-live table entry at slack 0 and removes
// it, since a zero-slack entry consumed by considerEdge always either
// merges its blossom pair or relabels the free side away from free,
// dissolving that pair's identity — nothing is lost by dropping it.
func (v *gabowVariant) HasUsefulEdges(r *skeletonRunner) bool {
	_, _, ok := v.tightEdge(r)
	return ok
}

func (v *gabowVariant) GetUsefulEdge(r *skeletonRunner) (int, EdgeRef, bool) {
	return v.tightEdge(r)
}

func (v *gabowVariant) tightEdge(r *skeletonRunner) (int, EdgeRef, bool) {
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom || bn.label != LabelEven {
			continue
		}
		for otop, e := range v.best[bn.id] {
			ob := r.blossoms[otop]
			if !ob.active || ob.parent != noBlossom || ob.label == LabelOdd {
				continue
			}
			if r.slack(e) == 0 {
				delete(v.best[bn.id], otop)
				return r.idx[e.U], e, true
			}
		}
	}
	return 0, EdgeRef{}, false
}

func (v *gabowVariant) FinishStage(r *skeletonRunner) {}

func (v *gabowVariant) LabelOdd(r *skeletonRunner, b blossomID)  {}
func (v *gabowVariant) LabelEven(r *skeletonRunner, b blossomID) {}

// HandleNewBlossom merges each absorbed sub-blossom's best-edges table into
// the new blossom's table, remapping stale targets that have themselves
// since been absorbed elsewhere by recomputing their current top-level
// blossom from the stored edge's endpoint.
func (v *gabowVariant) HandleNewBlossom(r *skeletonRunner, b blossomID) {
	bn := r.blossoms[b]
	merged := make(map[blossomID]EdgeRef)
	for _, se := range bn.subBlossoms {
		for _, e := range v.best[se.child] {
			top := v.currentTopFor(r, e, se.child)
			if top == b {
				continue
			}
			cur, exists := merged[top]
			if !exists || r.slack(e) < r.slack(cur) {
				merged[top] = e
			}
		}
		delete(v.best, se.child)
	}
	v.best[b] = merged
}

// currentTopFor resolves e's current top-level blossom on the side that is
// not (or no longer) inside from.
func (v *gabowVariant) currentTopFor(r *skeletonRunner, e EdgeRef, from blossomID) blossomID {
	u := r.inBlossom[r.idx[e.U]]
	if u != from && !r.blossomContains(from, e.U) {
		return u
	}
	return r.inBlossom[r.idx[e.V]]
}

// HandleOddBlossomExpansion drops b's merged table and rebuilds a fresh
// one for each child the expansion left even: expandOddBlossom relabels
// those children directly rather than through labelEven, so they'd
// otherwise carry no best-edges table at all until the next stage.
func (v *gabowVariant) HandleOddBlossomExpansion(r *skeletonRunner, b blossomID) {
	bn := r.blossoms[b]
	delete(v.best, b)
	for _, se := range bn.subBlossoms {
		child := se.child
		if r.blossoms[child].label != LabelEven {
			continue
		}
		m := make(map[blossomID]EdgeRef)
		r.walkVertices(child, func(vi int) {
			for _, e := range r.adj[vi] {
				j := r.otherIdx(e, vi)
				otop := r.inBlossom[j]
				if otop == child {
					continue
				}
				cur, exists := m[otop]
				if !exists || r.slack(e) < r.slack(cur) {
					m[otop] = e
				}
			}
		})
		v.best[child] = m
	}
}

func (v *gabowVariant) HandleEvenBlossomExpansion(r *skeletonRunner, b blossomID) {}

func (v *gabowVariant) CalcDelta1(r *skeletonRunner) (int64, bool) {
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
	return best, true
}

func (v *gabowVariant) scan(r *skeletonRunner, want func(Label) bool) (int64, bool, EdgeRef) {
	best := int64(0)
	found := false
	var bestEdge EdgeRef
	for _, bn := range r.blossoms {
		if !bn.active || bn.parent != noBlossom || bn.label != LabelEven {
			continue
		}
		for otop, e := range v.best[bn.id] {
			ob := r.blossoms[otop]
			if !ob.active || ob.parent != noBlossom {
				continue
			}
			if !want(ob.label) {
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
	}
	return best, found, bestEdge
}

func (v *gabowVariant) CalcDelta2(r *skeletonRunner) (int64, bool, EdgeRef) {
	return v.scan(r, func(l Label) bool { return l == LabelFree })
}

func (v *gabowVariant) CalcDelta3(r *skeletonRunner) (int64, bool, EdgeRef) {
	best, found, edge := v.scan(r, func(l Label) bool { return l == LabelEven })
	if !found {
		return 0, false, EdgeRef{}
	}
	return best / 2, true, edge
}

func (v *gabowVariant) CalcDelta4(r *skeletonRunner) (int64, bool, blossomID) {
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

func (v *gabowVariant) AdjustByDelta(r *skeletonRunner, deltaDoubled int64) {}
