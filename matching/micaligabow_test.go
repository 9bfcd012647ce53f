package matching

import (
	"context"
	"testing"

	"github.com/lvlath-labs/matching/builder"
	"github.com/lvlath-labs/matching/core"
)

func TestMicaliGabowAgreesWithEdmondsOnWeight(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Complete(7),
	)
	g := mustGraph(t, graph, err)

	we, err := NewEdmonds().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("edmonds run: %v", err)
	}
	wmg, err := NewMicaliGabow(WithConsistencyChecks()).Run(context.Background(), g)
	if err != nil {
		t.Fatalf("micali-gabow run: %v", err)
	}
	if we.Weight(g) != wmg.Weight(g) {
		t.Fatalf("edmonds weight %d != micali-gabow weight %d", we.Weight(g), wmg.Weight(g))
	}
	if we.Len() != wmg.Len() {
		t.Fatalf("edmonds size %d != micali-gabow size %d", we.Len(), wmg.Len())
	}
}

func TestMicaliGabowDeterministic(t *testing.T) {
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Complete(8),
	)
	g := mustGraph(t, graph, err)

	first, err := NewMicaliGabow().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := NewMicaliGabow().Run(context.Background(), g)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.Weight(g) != second.Weight(g) {
		t.Fatalf("non-deterministic weight: %d vs %d", first.Weight(g), second.Weight(g))
	}
	for _, pair := range first.Pairs() {
		p2, ok := second.Partner(pair[0])
		if !ok || p2 != pair[1] {
			t.Fatalf("non-deterministic pairing for %s: first=%s second=%s", pair[0], pair[1], p2)
		}
	}
}

func TestMicaliGabowBlossomExpansion(t *testing.T) {
	// A 5-cycle plus one chord forces a blossom to be created and then, on
	// a later substage, expanded again as dual adjustments proceed.
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"0", "1", "2", "3", "4"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	edges := [][3]interface{}{
		{"0", "1", int64(1)},
		{"1", "2", int64(1)},
		{"2", "3", int64(1)},
		{"3", "4", int64(1)},
		{"4", "0", int64(1)},
		{"0", "2", int64(1)},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(int64)); err != nil {
			t.Fatal(err)
		}
	}

	mm := NewMicaliGabow(WithConsistencyChecks())
	m, err := mm.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("5 vertices admit a max matching of size 2, got %d", m.Len())
	}
	if err := mm.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency: %v", err)
	}
}
