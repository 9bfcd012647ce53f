package matching

import (
	"context"
	"testing"

	"github.com/lvlath-labs/matching/builder"
	"github.com/lvlath-labs/matching/core"
)

func mustGraph(t *testing.T, g *core.Graph, err error) *core.Graph {
	t.Helper()
	if err != nil {
		t.Fatalf("building graph: %v", err)
	}
	return g
}

func TestEdmondsTriangleWeighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"A", "B", "C"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s): %v", v, err)
		}
	}
	if _, err := g.AddEdge("A", "B", 5); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("B", "C", 9); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("C", "A", 3); err != nil {
		t.Fatal(err)
	}

	m, err := NewEdmonds(WithConsistencyChecks()).Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected exactly one matched pair in a triangle, got %d", m.Len())
	}
	if m.Weight(g) != 9 {
		t.Fatalf("expected the heaviest edge (B-C, weight 9) to be chosen, got weight %d", m.Weight(g))
	}
}

func TestEdmondsK4CompleteGraph(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Complete(4),
	)
	g := mustGraph(t, graph, err)

	mm := NewEdmonds()
	m, err := mm.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("K4 should admit a perfect matching of size 2, got %d", m.Len())
	}
	if err := mm.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency: %v", err)
	}
}

func TestEdmondsOddPathLeavesOneExposed(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Path(5),
	)
	g := mustGraph(t, graph, err)

	m, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("P5 has 5 vertices, max matching size is 2, got %d", m.Len())
	}
}

func TestEdmondsRejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	if _, err := g.AddEdge("A", "B", -1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	_, err := NewEdmonds().Run(context.Background(), g)
	if err == nil {
		t.Fatal("expected an error for a negative-weight edge")
	}
}

func TestMatcherGetMatchingBeforeRun(t *testing.T) {
	mm := NewEdmonds()
	if _, err := mm.GetMatching(); err != ErrNotRun {
		t.Fatalf("expected ErrNotRun, got %v", err)
	}
}

func TestMatcherRunNilGraph(t *testing.T) {
	_, err := NewEdmonds().Run(context.Background(), nil)
	if err != ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}
