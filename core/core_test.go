package core

import "testing"

func TestAddVertexIdempotent(t *testing.T) {
	g := NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex (repeat) should be a no-op, got: %v", err)
	}
	if g.VertexCount() != 1 {
		t.Fatalf("expected 1 vertex, got %d", g.VertexCount())
	}
	if err := g.AddVertex(""); err != ErrEmptyVertexID {
		t.Fatalf("expected ErrEmptyVertexID, got %v", err)
	}
}

func TestAddEdgeUndirectedMirrorsAdjacency(t *testing.T) {
	g := NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if eid == "" {
		t.Fatal("expected a non-empty edge id")
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Fatal("undirected edge should be visible from both endpoints")
	}
	neigh, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neigh) != 1 || neigh[0].ID != eid {
		t.Fatalf("expected a's only neighbor edge to be %s, got %+v", eid, neigh)
	}
}

func TestAddEdgeRejectsNonZeroWeightWhenUnweighted(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b", 3); err != ErrBadWeight {
		t.Fatalf("expected ErrBadWeight, got %v", err)
	}
}

func TestAddEdgeRejectsLoopsByDefault(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "a", 0); err != ErrLoopNotAllowed {
		t.Fatalf("expected ErrLoopNotAllowed, got %v", err)
	}
	g2 := NewGraph(WithLoops())
	if _, err := g2.AddEdge("a", "a", 0); err != nil {
		t.Fatalf("AddEdge with WithLoops(): %v", err)
	}
}

func TestAddEdgeRejectsMultiEdgesByDefault(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("a", "b", 0); err != ErrMultiEdgeNotAllowed {
		t.Fatalf("expected ErrMultiEdgeNotAllowed, got %v", err)
	}
	g2 := NewGraph(WithMultiEdges())
	if _, err := g2.AddEdge("a", "b", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := g2.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("expected a second parallel edge to be allowed, got %v", err)
	}
}

func TestVerticesAndEdgesAreSortedDeterministically(t *testing.T) {
	g := NewGraph(WithWeighted())
	for _, v := range []string{"c", "a", "b"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	vs := g.Vertices()
	want := []string{"a", "b", "c"}
	for i, v := range want {
		if vs[i] != v {
			t.Fatalf("Vertices() not sorted: got %v, want %v", vs, want)
		}
	}

	if _, err := g.AddEdge("c", "a", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatal(err)
	}
	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID >= edges[i].ID {
			t.Fatalf("Edges() not sorted by ID: %+v", edges)
		}
	}
}

func TestRemoveVertexClearsIncidentEdges(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveVertex("a"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex("a") {
		t.Fatal("a should be gone")
	}
	if g.HasEdge("b", "a") || g.HasEdge("a", "b") {
		t.Fatal("incident edges should be removed along with the vertex")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph(WithWeighted())
	if _, err := g.AddEdge("a", "b", 7); err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	if _, err := clone.AddEdge("a", "c", 1, WithEdgeDirected(false)); err == nil {
		t.Fatal("expected WithEdgeDirected without mixed mode to fail on the clone too")
	}
	if err := clone.RemoveVertex("b"); err != nil {
		t.Fatalf("RemoveVertex on clone: %v", err)
	}
	if !g.HasVertex("b") {
		t.Fatal("mutating the clone must not affect the original graph")
	}
}

func TestStatsReflectsConfiguration(t *testing.T) {
	g := NewGraph(WithWeighted(), WithLoops())
	if _, err := g.AddEdge("a", "b", 2); err != nil {
		t.Fatal(err)
	}
	stats := g.Stats()
	if !stats.Weighted || !stats.AllowsLoops || stats.AllowsMulti {
		t.Fatalf("unexpected stats flags: %+v", stats)
	}
	if stats.VertexCount != 2 || stats.EdgeCount != 1 {
		t.Fatalf("unexpected stats counts: %+v", stats)
	}
}
