package matching

import "github.com/lvlath-labs/matching/pq"

// micaliGabowVariant backs its four delta candidates with the pq package's
// specialized structures: PriorityQueue1 tracks the minimum dual among
// even vertices (delta1) and among odd non-trivial blossoms (delta4), both
// shiftable in O(1) as AdjustByDelta is applied. Delta2/delta3 candidates
// live in two more PriorityQueue1/PriorityQueue2 structures maintained
// incrementally rather than rescanned:
//
//   - goodEdges holds every edge currently seen between two distinct even
//     blossoms, keyed by edge ID, shifted by -2*delta per round since both
//     endpoints shed delta simultaneously.
//   - toFree groups edges from an even blossom to a free one by the free
//     blossom's ID, shifted by -delta per round (only the even side sheds
//     dual) and dropped wholesale when the free blossom turns odd.
//
// Both are populated by scanEven, called from LabelEven and from
// HandleNewBlossom/HandleOddBlossomExpansion for whichever sub-blossoms
// those events newly turn even — mirroring the source design's even_edges
// structure without needing a full adjacency rescan on every substage.
type micaliGabowVariant struct {
	uEven       *pq.PriorityQueue1[int, int64]
	oddBlossoms *pq.PriorityQueue1[blossomID, int64]
	goodEdges   *pq.PriorityQueue1[string, int64]
	toFree      *pq.PriorityQueue2[blossomID, string, int64]

	edgeIndex map[string]EdgeRef
}

func newMicaliGabowVariant() *micaliGabowVariant {
	return &micaliGabowVariant{
		uEven:       pq.NewPriorityQueue1[int, int64](),
		oddBlossoms: pq.NewPriorityQueue1[blossomID, int64](),
		goodEdges:   pq.NewPriorityQueue1[string, int64](),
		toFree:      pq.NewPriorityQueue2[blossomID, string, int64](),
	}
}

func (v *micaliGabowVariant) Name() string { return "micali-gabow" }

func (v *micaliGabowVariant) InitializeStage(r *skeletonRunner) {
	v.uEven = pq.NewPriorityQueue1[int, int64]()
	v.oddBlossoms = pq.NewPriorityQueue1[blossomID, int64]()
	v.goodEdges = pq.NewPriorityQueue1[string, int64]()
	v.toFree = pq.NewPriorityQueue2[blossomID, string, int64]()

	if v.edgeIndex == nil {
		v.edgeIndex = make(map[string]EdgeRef)
		for i := 0; i < r.n; i++ {
			for _, e := range r.adj[i] {
				v.edgeIndex[e.ID] = e
			}
		}
	}

	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom && bn.label == LabelEven {
			r.walkVertices(bn.id, func(vi int) {
				v.uEven.Push(vi, r.blossoms[blossomID(vi)].z)
			})
			v.scanEven(r, bn.id, bn.id)
		}
	}
}

// InitializeSubstage does nothing extra: goodEdges/toFree are already kept
// current incrementally by LabelEven, LabelOdd, HandleNewBlossom and
// HandleOddBlossomExpansion.
func (v *micaliGabowVariant) InitializeSubstage(r *skeletonRunner) {}

func (v *micaliGabowVariant) FinishStage(r *skeletonRunner) {}

// LabelOdd drops b's toFree group: once b stops being free, every queued
// even-to-b candidate is stale, and HandleOddBlossomExpansion re-derives
// whatever is still relevant once b's children re-emerge.
func (v *micaliGabowVariant) LabelOdd(r *skeletonRunner, b blossomID) {
	v.toFree.DropGroup(b)
	if !r.blossoms[b].isTrivial {
		v.oddBlossoms.Push(b, r.blossoms[b].z)
	}
}

func (v *micaliGabowVariant) LabelEven(r *skeletonRunner, b blossomID) {
	r.walkVertices(b, func(vi int) {
		v.uEven.Push(vi, r.blossoms[blossomID(vi)].z)
	})
	v.scanEven(r, b, b)
}

// scanEven walks walkFrom's own vertices (a sub-blossom freshly absorbed
// into self, or self itself) and files each incident edge crossing out of
// self by the far side's current label: even-even edges go into goodEdges,
// even-free edges into their free target's toFree group. Even-odd edges
// are skipped deliberately — their slack is invariant under a delta round
// since one side sheds delta and the other gains it, so nothing is lost by
// re-deriving them fresh once the far side stops being odd.
func (v *micaliGabowVariant) scanEven(r *skeletonRunner, self blossomID, walkFrom blossomID) {
	r.walkVertices(walkFrom, func(vi int) {
		for _, e := range r.adj[vi] {
			j := r.otherIdx(e, vi)
			far := r.inBlossom[j]
			if far == self {
				continue
			}
			switch r.blossoms[far].label {
			case LabelEven:
				v.goodEdges.Push(e.ID, r.slack(e))
			case LabelFree:
				v.toFree.Push(far, e.ID, r.slack(e))
			}
		}
	})
}

// HandleNewBlossom drops any absorbed odd ancestor from the delta4
// candidate queue, and scans each odd child's own vertices into
// goodEdges/toFree now that they belong to the new even blossom b —
// already-even children need no rescan, since both structures key off the
// opposing side and are unaffected by which top-level blossom currently
// owns the near side.
func (v *micaliGabowVariant) HandleNewBlossom(r *skeletonRunner, b blossomID) {
	bn := r.blossoms[b]
	for _, se := range bn.subBlossoms {
		child := se.child
		if r.blossoms[child].label != LabelOdd {
			continue
		}
		if !r.blossoms[child].isTrivial {
			v.oddBlossoms.Remove(child)
		}
		v.scanEven(r, b, child)
	}
}

// HandleOddBlossomExpansion mirrors what labelEven/labelOdd would have
// done for each child, since expandOddBlossom relabels children directly
// rather than through those wrappers: newly-even children get pushed into
// uEven and rescanned locally; newly-odd children rejoin the delta4 queue.
func (v *micaliGabowVariant) HandleOddBlossomExpansion(r *skeletonRunner, b blossomID) {
	bn := r.blossoms[b]
	v.oddBlossoms.Remove(b)
	for _, se := range bn.subBlossoms {
		child := se.child
		switch r.blossoms[child].label {
		case LabelEven:
			r.walkVertices(child, func(vi int) {
				v.uEven.Push(vi, r.blossoms[blossomID(vi)].z)
			})
			v.scanEven(r, child, child)
		case LabelOdd:
			if !r.blossoms[child].isTrivial {
				v.oddBlossoms.Push(child, r.blossoms[child].z)
			}
		}
	}
}

func (v *micaliGabowVariant) HandleEvenBlossomExpansion(r *skeletonRunner, b blossomID) {}

func (v *micaliGabowVariant) CalcDelta1(r *skeletonRunner) (int64, bool) {
	_, z, ok := v.uEven.PeekMin()
	return z, ok
}

// peekGood returns the minimum-slack live entry in goodEdges without
// removing it, permanently dropping entries whose edge no longer connects
// two distinct even blossoms as it scans past them.
func (v *micaliGabowVariant) peekGood(r *skeletonRunner) (int64, EdgeRef, bool) {
	for {
		id, s, ok := v.goodEdges.PeekMin()
		if !ok {
			return 0, EdgeRef{}, false
		}
		e, exists := v.edgeIndex[id]
		if !exists {
			v.goodEdges.Remove(id)
			continue
		}
		ui, vi := r.idx[e.U], r.idx[e.V]
		ub, vb := r.inBlossom[ui], r.inBlossom[vi]
		if ub == vb || r.blossoms[ub].label != LabelEven || r.blossoms[vb].label != LabelEven {
			v.goodEdges.Remove(id)
			continue
		}
		return s, e, true
	}
}

// peekFree returns the minimum-slack live entry across every toFree group
// without removing it, dropping entries whose free target has since moved
// on or whose even side is no longer even.
func (v *micaliGabowVariant) peekFree(r *skeletonRunner) (int64, EdgeRef, blossomID, bool) {
	for {
		group, id, s, ok := v.toFree.Min()
		if !ok {
			return 0, EdgeRef{}, noBlossom, false
		}
		e, exists := v.edgeIndex[id]
		if !exists {
			v.toFree.Remove(group, id)
			continue
		}
		ob := r.blossoms[group]
		if !ob.active || ob.parent != noBlossom || ob.label != LabelFree {
			v.toFree.Remove(group, id)
			continue
		}
		ui, vi := r.idx[e.U], r.idx[e.V]
		ub, vb := r.inBlossom[ui], r.inBlossom[vi]
		even := ub
		if ub == group {
			even = vb
		}
		if r.blossoms[even].label != LabelEven {
			v.toFree.Remove(group, id)
			continue
		}
		return s, e, group, true
	}
}

func (v *micaliGabowVariant) CalcDelta2(r *skeletonRunner) (int64, bool, EdgeRef) {
	s, e, _, ok := v.peekFree(r)
	return s, ok, e
}

func (v *micaliGabowVariant) CalcDelta3(r *skeletonRunner) (int64, bool, EdgeRef) {
	s, e, ok := v.peekGood(r)
	if !ok {
		return 0, false, EdgeRef{}
	}
	return s / 2, true, e
}

func (v *micaliGabowVariant) CalcDelta4(r *skeletonRunner) (int64, bool, blossomID) {
	b, z, ok := v.oddBlossoms.PeekMin()
	if !ok {
		return 0, false, noBlossom
	}
	return z / 2, true, b
}

// HasUsefulEdges/GetUsefulEdge realize the tight-edge iterator over
// goodEdges/toFree: a slack-0 entry from either is ready for considerEdge
// without further dual adjustment; goodEdges is checked first since it
// carries the sharper delta3 bound.
func (v *micaliGabowVariant) HasUsefulEdges(r *skeletonRunner) bool {
	if s, _, ok := v.peekGood(r); ok && s == 0 {
		return true
	}
	if s, _, _, ok := v.peekFree(r); ok && s == 0 {
		return true
	}
	return false
}

func (v *micaliGabowVariant) GetUsefulEdge(r *skeletonRunner) (int, EdgeRef, bool) {
	if s, e, ok := v.peekGood(r); ok && s == 0 {
		v.goodEdges.Remove(e.ID)
		return r.idx[e.U], e, true
	}
	if s, e, group, ok := v.peekFree(r); ok && s == 0 {
		v.toFree.Remove(group, e.ID)
		return r.idx[e.U], e, true
	}
	return 0, EdgeRef{}, false
}

func (v *micaliGabowVariant) AdjustByDelta(r *skeletonRunner, deltaDoubled int64) {
	v.uEven.Shift(-deltaDoubled)
	v.oddBlossoms.Shift(-2 * deltaDoubled)
	v.goodEdges.Shift(-2 * deltaDoubled)
	for _, bn := range r.blossoms {
		if bn.active && bn.parent == noBlossom && bn.label == LabelFree {
			v.toFree.Shift(bn.id, -deltaDoubled)
		}
	}
}
