package matching

import (
	"sort"

	"github.com/lvlath-labs/matching/core"
)

// Label is a blossom's position in the current alternating-tree structure.
type Label int8

const (
	// LabelFree marks a blossom outside every alternating tree.
	LabelFree Label = iota
	// LabelEven marks a blossom reached from an exposed vertex by an even
	// number of alternating-path edges (or an exposed blossom itself).
	LabelEven
	// LabelOdd marks a blossom reached by an odd number of edges.
	LabelOdd
)

func (l Label) String() string {
	switch l {
	case LabelEven:
		return "even"
	case LabelOdd:
		return "odd"
	default:
		return "free"
	}
}

// blossomID is a stable arena handle identifying a blossom record. Vertex
// v's trivial (singleton) blossom always has handle blossomID(index of v).
type blossomID int32

// noBlossom is the sentinel "no parent" / "no blossom" handle.
const noBlossom blossomID = -1

// EdgeRef names one edge of the input graph by its endpoints, id and
// weight, so algorithm internals never need to re-query *core.Graph for
// this information once an edge has been read.
type EdgeRef struct {
	U, V   string
	ID     string
	Weight int64
}

// IsZero reports whether e is the zero value, used as the "no edge yet"
// sentinel inside variant bookkeeping (mirrors the dummy_edge_id notion of
// the algorithm this package implements).
func (e EdgeRef) IsZero() bool {
	return e.ID == "" && e.U == "" && e.V == ""
}

// Other returns the endpoint of e that is not v.
func (e EdgeRef) Other(v string) string {
	if e.U == v {
		return e.V
	}
	return e.U
}

// subEdge is one link in a blossom's cyclic sub-blossom sequence: the
// child blossom and the edge connecting it to the next child in the cycle.
type subEdge struct {
	child blossomID
	edge  EdgeRef
}

// blossomNode is one arena record. A trivial blossom (isTrivial == true)
// represents a single vertex and has no sub-blossoms.
type blossomNode struct {
	id     blossomID
	active bool // false once expanded/absorbed; handle may be reused conceptually but never is, for simplicity

	isTrivial bool
	vertex    string // valid iff isTrivial

	parent      blossomID
	initialBase string
	base        string
	subBlossoms []subEdge

	// lastNode and dirty back the lazy-flip accessor: augmentBlossom
	// resolves only its own level immediately (rotate the cycle, pair the
	// two children adjacent to the new entry point) and defers a touched
	// child's own rotation by recording lastNode and setting dirty, rather
	// than recursing into it. resolveBlossom/resolveAll catch a dirty
	// blossom up before anything reads its base or nested mates.
	lastNode string
	dirty    bool

	label         Label
	backtrackEdge EdgeRef
	backtrackFrom blossomID // the blossom this one was labelled from
	visited       bool

	z int64 // dual variable, stored doubled; trivial blossoms start at 2×(max edge weight), new non-trivial ones at 0

	data interface{} // variant-specific auxiliary state, opaque to the skeleton
}

// Matching is the result of a completed Run: a symmetric node-to-node
// mapping plus edge-id membership.
type Matching struct {
	partner map[string]string
	inM     map[string]bool
}

func newMatching() *Matching {
	return &Matching{
		partner: make(map[string]string),
		inM:     make(map[string]bool),
	}
}

// Partner returns v's matched partner, if any.
func (m *Matching) Partner(v string) (string, bool) {
	if m == nil {
		return "", false
	}
	p, ok := m.partner[v]
	return p, ok
}

// Contains reports whether the edge identified by edgeID is part of the
// matching.
func (m *Matching) Contains(edgeID string) bool {
	if m == nil {
		return false
	}
	return m.inM[edgeID]
}

// Pairs returns the matched pairs as (u,v) with u < v lexicographically,
// sorted for deterministic iteration.
func (m *Matching) Pairs() [][2]string {
	if m == nil {
		return nil
	}
	seen := make(map[string]bool, len(m.partner))
	pairs := make([][2]string, 0, len(m.partner)/2)
	// Deterministic order: sort keys first.
	keys := make([]string, 0, len(m.partner))
	for k := range m.partner {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, u := range keys {
		if seen[u] {
			continue
		}
		v := m.partner[u]
		seen[u] = true
		seen[v] = true
		if u < v {
			pairs = append(pairs, [2]string{u, v})
		} else {
			pairs = append(pairs, [2]string{v, u})
		}
	}
	return pairs
}

// Weight sums the weight of every edge of g that is a matched pair,
// looking edges up by endpoint since Matching does not itself retain a
// *core.Graph reference.
func (m *Matching) Weight(g *core.Graph) int64 {
	if m == nil || g == nil {
		return 0
	}
	var total int64
	for _, pair := range m.Pairs() {
		edges, err := g.Neighbors(pair[0])
		if err != nil {
			continue
		}
		for _, e := range edges {
			if (e.From == pair[0] && e.To == pair[1]) || (e.From == pair[1] && e.To == pair[0]) {
				total += e.Weight
				break
			}
		}
	}
	return total
}

// Len returns the number of matched pairs.
func (m *Matching) Len() int {
	if m == nil {
		return 0
	}
	return len(m.partner) / 2
}
