package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lvlath-labs/matching/core"
)

func TestMatcherDebugStateBeforeAndAfterRun(t *testing.T) {
	mm := NewEdmonds()
	if got := mm.DebugState(); got != "" {
		t.Fatalf("expected empty debug state before Run, got %q", got)
	}

	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	if _, err := g.AddEdge("A", "B", 4); err != nil {
		t.Fatal(err)
	}
	if _, err := mm.Run(context.Background(), g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := mm.DebugState(); !strings.Contains(got, "A") {
		t.Fatalf("expected debug state to mention vertex A, got %q", got)
	}
}

func TestMatcherCheckConsistencyBeforeRun(t *testing.T) {
	mm := NewGabow()
	if err := mm.CheckConsistency(); err != ErrNotRun {
		t.Fatalf("expected ErrNotRun, got %v", err)
	}
}

func TestMatcherCanceledContext(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	if _, err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("C", "D", 1); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEdmonds().Run(ctx, g)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestMatchingEmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	m, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run on empty graph: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected an empty matching, got size %d", m.Len())
	}
}

func TestMatchingSingleVertexNoEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("solo")
	m, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("an isolated vertex cannot be matched, got size %d", m.Len())
	}
	if _, ok := m.Partner("solo"); ok {
		t.Fatal("expected solo to be exposed")
	}
}
