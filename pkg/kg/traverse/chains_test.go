package traverse

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"

	"github.com/crkarthik11/healthcare/pkg/concept"
	kgerrors "github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

func rel(id string) kg.Attributes {
	return kg.Attributes{kg.AttrRelationshipType: id}
}

func TestChainsPostOrder(t *testing.T) {
	g := kg.New()
	_ = g.UpsertEdge("A", "B", rel("r1"))
	_ = g.UpsertEdge("B", "C", rel("r2"))
	lookup := concept.Lookup{"r1": "rel1", "r2": "rel2"}

	chains, err := Chains(g, "A", lookup)
	if err != nil {
		t.Fatalf("Chains: %v", err)
	}
	want := []Chain{
		{Path: []string{"A", "B"}, Relation: "rel2", Target: "C", From: "B", To: "C", RelationID: "r2"},
		{Path: []string{"A"}, Relation: "rel1", Target: "B", From: "A", To: "B", RelationID: "r1"},
	}
	if !reflect.DeepEqual(chains, want) {
		t.Errorf("Chains =\n%v\nwant\n%v", chains, want)
	}
}

func TestChainsVisitOnce(t *testing.T) {
	g := kg.New()
	_ = g.UpsertEdge("A", "B", rel("r"))
	_ = g.UpsertEdge("A", "B", rel("r"))
	_ = g.UpsertEdge("A", "C", rel("r"))
	_ = g.UpsertEdge("C", "B", rel("r"))
	_ = g.UpsertEdge("B", "A", rel("r"))

	chains, err := Chains(g, "A", concept.Lookup{"r": "rel"})
	if err != nil {
		t.Fatalf("Chains: %v", err)
	}
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2: %v", len(chains), chains)
	}
	seen := make(map[string]bool)
	for _, c := range chains {
		if seen[c.To] {
			t.Errorf("node %s reached twice", c.To)
		}
		seen[c.To] = true
	}
}

func TestChainsLabels(t *testing.T) {
	g := kg.New()
	_ = g.UpsertNode("X", kg.Attributes{"name": "Aspirin"})
	_ = g.UpsertNode("Y", kg.Attributes{"name": "CarrierA"})
	_ = g.UpsertEdge("X", "Y", rel("r1"))
	_ = g.UpsertEdge("Y", "Z", rel("r1"))
	lookup := concept.Lookup{"r1": "inhibits", "Z": "DrugB"}

	chains, err := Chains(g, "X", lookup)
	if err != nil {
		t.Fatalf("Chains: %v", err)
	}
	var buf bytes.Buffer
	if err := PrintChains(&buf, chains); err != nil {
		t.Fatal(err)
	}
	want := "Aspirin -> CarrierA [inhibits] DrugB\nAspirin [inhibits] CarrierA\n"
	if buf.String() != want {
		t.Errorf("PrintChains =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestChainsUnresolved(t *testing.T) {
	// A -> B (unresolved) -> D ; A -> C (ok) ; A -> E (missing attribute)
	g := kg.New()
	_ = g.UpsertEdge("A", "B", rel("r9"))
	_ = g.UpsertEdge("B", "D", rel("ok"))
	_ = g.UpsertEdge("A", "C", rel("ok"))
	_ = g.UpsertEdge("A", "E", nil)
	lookup := concept.Lookup{"ok": "fine"}

	t.Run("lenient", func(t *testing.T) {
		chains, err := Chains(g, "A", lookup)
		if !kgerrors.Is(err, kgerrors.ErrCodeUnresolvedRelation) {
			t.Fatalf("err = %v, want UNRESOLVED_RELATION", err)
		}
		if len(chains) != 1 || chains[0].To != "C" {
			t.Errorf("chains = %v, want only A -> C", chains)
		}
		joined, ok := err.(interface{ Unwrap() []error })
		if !ok || len(joined.Unwrap()) != 2 {
			t.Errorf("want 2 joined errors, got %v", err)
		}
	})

	t.Run("strict", func(t *testing.T) {
		chains, err := Chains(g, "A", lookup, WithStrict())
		if !kgerrors.Is(err, kgerrors.ErrCodeUnresolvedRelation) {
			t.Fatalf("err = %v, want UNRESOLVED_RELATION", err)
		}
		if len(chains) != 0 {
			t.Errorf("strict walk emitted %v", chains)
		}
	})
}

func TestChainsMissingStart(t *testing.T) {
	chains, err := Chains(kg.New(), "nope", nil)
	if chains != nil || err != nil {
		t.Errorf("Chains(missing) = (%v, %v), want (nil, nil)", chains, err)
	}
}

func ExampleChains() {
	g := kg.New()
	_ = g.UpsertNode("DB00945", kg.Attributes{"name": "Aspirin"})
	_ = g.UpsertEdge("DB00945", "BE0000048", kg.Attributes{"type": "carrier", "relationship_type": "carrier"})
	lookup := concept.Lookup{"carrier": "carried by", "BE0000048": "Serum albumin"}

	chains, _ := Chains(g, "DB00945", lookup)
	for _, c := range chains {
		fmt.Println(c)
	}
	// Output:
	// Aspirin [carried by] Serum albumin
}
