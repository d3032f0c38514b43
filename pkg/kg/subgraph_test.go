package kg

import (
	"reflect"
	"testing"
)

func buildChain() *Graph {
	g := New()
	_ = g.UpsertNode("a", Attributes{"name": "A"})
	_ = g.UpsertEdge("a", "b", Attributes{"type": "r"})
	_ = g.UpsertEdge("a", "b", Attributes{"type": "s"})
	_ = g.UpsertEdge("b", "c", nil)
	_ = g.UpsertEdge("c", "d", nil)
	_ = g.UpsertEdge("d", "a", nil)
	return g
}

func TestSubgraph(t *testing.T) {
	g := buildChain()
	sub := g.Subgraph([]string{"b", "a", "missing"})

	if got := sub.NodeIDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("NodeIDs = %v, want [a b]", got)
	}
	if sub.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2 parallel edges", sub.EdgeCount())
	}
	if n, _ := sub.Node("a"); n.Name() != "A" {
		t.Errorf("attrs not copied: %v", n.Attrs)
	}

	n, _ := sub.Node("a")
	n.Attrs["name"] = "changed"
	if orig, _ := g.Node("a"); orig.Name() != "A" {
		t.Error("Subgraph shares attribute maps with the source graph")
	}
}

func TestEgo(t *testing.T) {
	g := buildChain()

	tests := []struct {
		name   string
		center string
		radius int
		want   []string
	}{
		{"radius 0", "a", 0, []string{"a"}},
		{"radius 1", "a", 1, []string{"a", "b"}},
		{"radius 2", "a", 2, []string{"a", "b", "c"}},
		{"cycle", "c", 5, []string{"a", "b", "c", "d"}},
		{"missing", "zzz", 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Ego(tt.center, tt.radius).NodeIDs()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ego(%s, %d) = %v, want %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}
