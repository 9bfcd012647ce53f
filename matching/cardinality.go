package matching

import (
	"context"

	"github.com/lvlath-labs/matching/core"
)

// cardinalityEngine finds a maximum-cardinality matching by growing, from
// every exposed vertex simultaneously, a pair of level numbers per vertex —
// evenLevel and oddLevel — instead of a single BFS level: an even vertex is
// one reached after an even number of alternating-path edges from some
// exposed vertex (or an exposed vertex itself, evenLevel 0), an odd vertex
// after an odd number. A bridge is a non-tree edge joining two even
// vertices; its tenacity — evenLevel(u)+evenLevel(v)+1, the length of the
// shortest odd alternating cycle or augmenting path passing through it — is
// the order in which bridges must be resolved for a phase's augmentations
// to stay vertex-disjoint. Bridges are bucketed into a tenacity-indexed
// table, bridges[k], and drained in increasing k.
//
// Resolving a bridge (u,v) runs two simultaneous walks up the search
// forest, one green from u and one red from v, colouring every vertex they
// pass (vertexColor). If the walks reach two distinct exposed vertices —
// two peaks — the bridge opens a genuine augmenting path and both arms get
// flipped in one double-DFS (blossAug). If instead one walk steps onto a
// vertex the other walk already coloured, that vertex is the bridge's
// barrier: the two arms up to the barrier form an odd cycle — a bloom —
// which gets contracted (via union-find, base = the barrier) so later,
// higher-tenacity bridges skip over its interior.
//
// This engine keeps one predecessor per vertex rather than the source
// algorithm's full predecessor DAG (so it cannot count multiple
// vertex-disjoint paths through a shared successor the way the unrestricted
// version does) and drains a bridge's whole tenacity table after one
// complete level sweep rather than interleaving bridge resolution with
// level construction level-by-level. Both are real simplifications of the
// O(m√n) bound, documented in DESIGN.md; every phase still batches every
// vertex-disjoint augmentation it finds before recomputing levels, which is
// what keeps the number of phases to O(√n).
type cardinalityEngine struct {
	nodes []string
	idx   map[string]int
	n     int
	adj   [][]EdgeRef

	mate []int

	evenLevel   []int
	oddLevel    []int
	predecessor []int // search-forest tree parent; -1 marks a root (exposed vertex)

	color   []vertexColor
	barrier []bool // true once a vertex has served as some bridge's bloom base this run

	uf     []int
	erased []bool

	// arms records, per bloom base, the two chains (green from the
	// bridge's u side, red from its v side) that a barrier collision
	// produced this phase. Nothing needs to re-open a bloom for
	// correctness in the single-predecessor model above, but arms is the
	// double-DFS's own record of what it found, consulted by
	// bloomMembers for consistency checks and introspection — the same
	// role blossomNode.subBlossoms plays in the weighted engine.
	arms map[int][]bloomArm
}

// vertexColor marks which of a bridge's two simultaneous walks — green
// from the bridge's u endpoint, red from its v endpoint — has reached a
// given vertex while searching for the bridge's barrier.
type vertexColor int8

const (
	colorNone vertexColor = iota
	colorGreen
	colorRed
)

// infLevel marks a vertex not yet reached by either level.
const infLevel = 1 << 30

// bridge is a same-phase candidate connecting two even vertices, u and v,
// with the given tenacity. An exposed vertex is even from the moment it
// seeds the search (evenLevel 0, its own peak), so a bridge to one needs no
// special case: search finds its peak in a single step.
type bridge struct {
	u, v     int
	e        EdgeRef
	tenacity int
}

// bloomArm is the double-DFS's record of one resolved barrier collision:
// the green chain (u up to, not including, base) and the red chain (v up
// to, not including, base) that together with the bridge edge close an odd
// cycle rooted at base.
type bloomArm struct {
	base   int
	green  []int
	red    []int
	bridge EdgeRef
	u, v   int
}

func newCardinalityEngine(g *core.Graph) (*cardinalityEngine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Vertices()
	n := len(nodes)
	idx := make(map[string]int, n)
	for i, v := range nodes {
		idx[v] = i
	}
	adj := make([][]EdgeRef, n)
	for _, e := range g.Edges() {
		ui, uok := idx[e.From]
		vi, vok := idx[e.To]
		if !uok || !vok || e.From == e.To {
			continue
		}
		ref := EdgeRef{U: e.From, V: e.To, ID: e.ID}
		adj[ui] = append(adj[ui], ref)
		adj[vi] = append(adj[vi], ref)
	}
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	return &cardinalityEngine{
		nodes: nodes, idx: idx, n: n, adj: adj, mate: mate,
		evenLevel: make([]int, n), oddLevel: make([]int, n),
		predecessor: make([]int, n), color: make([]vertexColor, n),
		barrier: make([]bool, n), uf: make([]int, n), erased: make([]bool, n),
	}, nil
}

// MaximumCardinalityMatching runs the level/tenacity/bloom search to
// completion and returns a maximum-cardinality matching of g.
func MaximumCardinalityMatching(ctx context.Context, g *core.Graph) (*Matching, error) {
	eng, err := newCardinalityEngine(g)
	if err != nil {
		return nil, err
	}
	for {
		select {
		case <-ctx.Done():
			return nil, ErrCanceled
		default:
		}
		progressed, err := eng.phase()
		if err != nil {
			return nil, err
		}
		if !progressed {
			break
		}
	}
	return eng.buildMatching(), nil
}

func (e *cardinalityEngine) find(v int) int {
	for e.uf[v] != v {
		e.uf[v] = e.uf[e.uf[v]]
		v = e.uf[v]
	}
	return v
}

func (e *cardinalityEngine) union(a, b int) {
	e.uf[e.find(a)] = e.find(b)
}

func (e *cardinalityEngine) other(edge EdgeRef, vIdx int) int {
	if e.idx[edge.U] == vIdx {
		return e.idx[edge.V]
	}
	return e.idx[edge.U]
}

func (e *cardinalityEngine) resetLevels() {
	for i := 0; i < e.n; i++ {
		e.evenLevel[i] = infLevel
		e.oddLevel[i] = infLevel
		e.predecessor[i] = -1
		e.uf[i] = i
		e.erased[i] = false
		e.color[i] = colorNone
		e.barrier[i] = false
	}
	e.arms = make(map[int][]bloomArm)
}

// phase grows evenLevel/oddLevel from every exposed vertex, collects every
// bridge (and every direct even-to-exposed edge) it discovers, buckets
// them by tenacity, and drains the buckets in increasing tenacity order —
// searching each bridge for its two peaks or its barrier and augmenting or
// contracting a bloom accordingly. It reports whether any augmentation
// happened.
func (e *cardinalityEngine) phase() (bool, error) {
	e.resetLevels()

	var queue []int
	maxEven := -1
	for i := 0; i < e.n; i++ {
		if e.mate[i] == -1 {
			e.evenLevel[i] = 0
			queue = append(queue, i)
			maxEven = 0
		}
	}

	var found []bridge
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, edge := range e.adj[v] {
			w := e.other(edge, v)
			if w == v {
				continue
			}
			switch {
			case e.evenLevel[w] == infLevel && e.oddLevel[w] == infLevel:
				// w is unvisited, hence not exposed: every exposed vertex
				// already seeded the queue at evenLevel 0 above, so any
				// edge into an exposed vertex is caught by the next case
				// instead, with w already its own peak.
				e.oddLevel[w] = e.evenLevel[v] + 1
				e.predecessor[w] = v
				m := e.mate[w]
				e.evenLevel[m] = e.oddLevel[w] + 1
				e.predecessor[m] = w
				if e.evenLevel[m] > maxEven {
					maxEven = e.evenLevel[m]
				}
				queue = append(queue, m)
			case e.evenLevel[w] != infLevel:
				if e.find(v) == e.find(w) {
					continue
				}
				t := e.evenLevel[v] + e.evenLevel[w] + 1
				found = append(found, bridge{u: v, v: w, e: edge, tenacity: t})
			default:
				// w already sits at some odd level via a different
				// parent. The unrestricted algorithm keeps every such
				// predecessor to count disjoint paths through w; this
				// engine keeps only the first (see the type doc above).
			}
		}
	}
	if maxEven < 0 {
		return false, nil
	}

	maxTenacity := 2*maxEven + 1
	bridges := make([][]bridge, maxTenacity+1)
	for _, br := range found {
		bridges[br.tenacity] = append(bridges[br.tenacity], br)
	}

	progressed := false
	for k := 0; k <= maxTenacity; k++ {
		for _, br := range bridges[k] {
			if e.erased[br.u] || e.erased[br.v] {
				continue
			}
			if e.find(br.u) == e.find(br.v) {
				continue
			}
			if base, augmenting := e.search(br.u, br.v); !augmenting {
				e.formBloom(br.u, br.v, base, br.e)
			} else {
				e.blossAug(br.u, br.v)
				progressed = true
			}
		}
	}
	return progressed, nil
}

// search runs the bridge's two simultaneous coloured walks up the search
// forest — green from u, red from v — one predecessor step at a time,
// alternating sides, until either walk steps onto a vertex the other side
// already coloured (that vertex is the barrier, reported with augmenting
// == false) or both walks reach a root. Two distinct roots are two peaks:
// an augmenting path exists and augmenting == true. The same root reached
// by both without an earlier collision is itself the barrier (a bloom
// based at an exposed vertex).
func (e *cardinalityEngine) search(u, v int) (barrier int, augmenting bool) {
	var touched []int
	mark := func(x int, c vertexColor) {
		if e.color[x] == colorNone {
			touched = append(touched, x)
		}
		e.color[x] = c
	}
	defer func() {
		for _, x := range touched {
			e.color[x] = colorNone
		}
	}()

	mark(u, colorGreen)
	mark(v, colorRed)
	cg, cr := u, v
	peakG, peakR := -1, -1
	for peakG == -1 || peakR == -1 {
		if peakG == -1 {
			switch p := e.predecessor[cg]; {
			case p == -1:
				peakG = cg
			case e.color[p] == colorRed:
				// The step about to be taken would land on ground the
				// red walk already coloured: p is the barrier, checked
				// before marking so a barrier never gets overwritten.
				e.barrier[p] = true
				return p, false
			default:
				cg = p
				mark(cg, colorGreen)
			}
		}
		if peakR == -1 {
			switch p := e.predecessor[cr]; {
			case p == -1:
				peakR = cr
			case e.color[p] == colorGreen:
				e.barrier[p] = true
				return p, false
			default:
				cr = p
				mark(cr, colorRed)
			}
		}
	}
	if peakG == peakR {
		e.barrier[peakG] = true
		return peakG, false
	}
	return -1, true
}

// chainTo walks predecessor pointers from start up to (not including)
// target, returning the visited vertices in outward-to-target order.
func (e *cardinalityEngine) chainTo(start, target int) []int {
	var chain []int
	for x := start; x != target; x = e.predecessor[x] {
		chain = append(chain, x)
	}
	return chain
}

// formBloom contracts the odd cycle a barrier collision found — the green
// arm from u to base and the red arm from v to base, joined by the bridge
// edge — into one union-find group rooted at base, and records the arm so
// bloomMembers can still answer "what does this bloom contain" afterward.
func (e *cardinalityEngine) formBloom(u, v, base int, bridgeEdge EdgeRef) {
	armU := e.chainTo(u, base)
	armV := e.chainTo(v, base)
	e.arms[base] = append(e.arms[base], bloomArm{base: base, green: armU, red: armV, bridge: bridgeEdge, u: u, v: v})

	for _, x := range armU {
		e.union(x, base)
		e.erased[x] = true
	}
	for _, x := range armV {
		e.union(x, base)
		e.erased[x] = true
	}
}

// bloomMembers returns every vertex the bloom rooted at base has absorbed,
// walking every arm recorded against it. It mutates nothing; it exists for
// consistency checks and introspection, mirroring what blossAug's double
// walk already found.
func (e *cardinalityEngine) bloomMembers(base int) []int {
	members := []int{base}
	for _, a := range e.arms[base] {
		members = append(members, a.green...)
		members = append(members, a.red...)
	}
	return members
}

// blossAug is the double-DFS that opens an augmenting path once a bridge
// resolves to two peaks: match u directly to v, then walk each side's
// predecessor chain to its root flipping every matched/unmatched pair it
// crosses — including pairs that sit inside an already-contracted bloom's
// arm, since an arm's chain is exactly a chainTo walk and flipping along it
// is opening the bloom.
func (e *cardinalityEngine) blossAug(u, v int) {
	e.mate[u] = v
	e.mate[v] = u
	e.erased[u] = true
	e.erased[v] = true
	e.flipChain(u)
	e.flipChain(v)
}

func (e *cardinalityEngine) flipChain(start int) {
	x := e.predecessor[start]
	for x != -1 {
		y := e.predecessor[x]
		e.mate[x] = y
		e.mate[y] = x
		e.erased[x] = true
		e.erased[y] = true
		x = e.predecessor[y]
	}
}

func (e *cardinalityEngine) buildMatching() *Matching {
	m := newMatching()
	for i := 0; i < e.n; i++ {
		if e.mate[i] == -1 {
			continue
		}
		m.partner[e.nodes[i]] = e.nodes[e.mate[i]]
	}
	for _, edges := range e.adj {
		for _, edge := range edges {
			ui, vi := e.idx[edge.U], e.idx[edge.V]
			if e.mate[ui] == vi {
				m.inM[edge.ID] = true
			}
		}
	}
	return m
}
