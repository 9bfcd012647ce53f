package matching

import (
	"context"
	"testing"

	"github.com/lvlath-labs/matching/builder"
	"github.com/lvlath-labs/matching/core"
)

func TestGabowAgreesWithEdmondsOnWeight(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Complete(6),
	)
	g := mustGraph(t, graph, err)

	we, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("edmonds run: %v", err)
	}
	wg, err := NewGabow(WithConsistencyChecks()).Run(context.Background(), g)
	if err != nil {
		t.Fatalf("gabow run: %v", err)
	}
	if we.Weight(g) != wg.Weight(g) {
		t.Fatalf("edmonds weight %d != gabow weight %d", we.Weight(g), wg.Weight(g))
	}
	if we.Len() != wg.Len() {
		t.Fatalf("edmonds size %d != gabow size %d", we.Len(), wg.Len())
	}
}

func TestGabowAgreesWithEdmondsOnRandomWeights(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithUniformWeight(1, 50),
		},
		builder.Complete(9),
	)
	g := mustGraph(t, graph, err)

	we, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("edmonds run: %v", err)
	}
	wg, err := NewGabow(WithConsistencyChecks()).Run(context.Background(), g)
	if err != nil {
		t.Fatalf("gabow run: %v", err)
	}
	if we.Weight(g) != wg.Weight(g) {
		t.Fatalf("edmonds weight %d != gabow weight %d", we.Weight(g), wg.Weight(g))
	}
	if we.Len() != wg.Len() {
		t.Fatalf("edmonds size %d != gabow size %d", we.Len(), wg.Len())
	}
}

func TestGabowBlossomStress(t *testing.T) {
	// C5 with one pendant vertex attached to vertex "0": forces the
	// skeleton to build and later expand a nontrivial blossom.
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"0", "1", "2", "3", "4", "p"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s): %v", v, err)
		}
	}
	cycle := [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "0"}}
	for _, e := range cycle {
		if _, err := g.AddEdge(e[0], e[1], 2); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.AddEdge("0", "p", 10); err != nil {
		t.Fatal(err)
	}

	mm := NewGabow(WithConsistencyChecks())
	m, err := mm.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The pendant edge (weight 10) dominates; taking it still leaves the
	// rest of the cycle as a 4-vertex path admitting a perfect matching,
	// so all six vertices end up matched.
	if m.Len() != 3 {
		t.Fatalf("expected a matching of size 3, got %d", m.Len())
	}
	if m.Weight(g) != 14 {
		t.Fatalf("expected total weight 14, got %d", m.Weight(g))
	}
	if p, ok := m.Partner("p"); !ok || p != "0" {
		t.Fatalf("expected p matched to 0, got partner=%q ok=%v", p, ok)
	}
}
