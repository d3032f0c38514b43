package nodelink

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/render"
)

func scene(t *testing.T) *render.Scene {
	t.Helper()
	g := kg.New()
	_ = g.UpsertNode("DB00945", kg.Attributes{"name": "Aspirin"})
	_ = g.UpsertEdge("DB00945", "BE0000530", kg.Attributes{"relationship_type": "carrier"})
	lookup := concept.Lookup{"BE0000530": "Serum albumin", "carrier": "carried by"}

	s, err := render.Plan(g, lookup,
		render.WithHighlight("DB00945"),
		render.WithLayout("circular"),
		render.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestToDOT(t *testing.T) {
	s := scene(t)
	dot := ToDOT(s)

	aspirin, _ := s.Node("DB00945")
	for _, want := range []string{
		"digraph G {",
		"layout=neato;",
		`"DB00945" [label="Aspirin"`,
		`fillcolor="` + aspirin.Color.Hex() + `"`,
		`"BE0000530" [label="Serum albumin"`,
		`"DB00945" -> "BE0000530" [color="` + s.Edges[0].Color.Hex() + `", label="carried by"`,
		"peripheries=2",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, "!\"") {
		t.Error("node positions are not pinned")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(scene(t)))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "Aspirin") {
		t.Errorf("unexpected SVG output:\n%s", out)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.25 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.25 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("input without viewBox was modified")
	}
}
