package render

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/render/palette"
)

var quiet = WithLogger(log.New(io.Discard))

// aspirin is X -> Y, X -> Z with X labeled through the lookup.
func aspirin() (*kg.Graph, concept.Lookup) {
	g := kg.New()
	_ = g.UpsertNode("X", kg.Attributes{"name": "acetylsalicylic acid", "type": "drug"})
	_ = g.UpsertNode("Y", kg.Attributes{"name": "CarrierA", "type": "carrier"})
	_ = g.UpsertNode("Z", kg.Attributes{"name": "DrugB", "type": "drug"})
	_ = g.UpsertEdge("X", "Y", kg.Attributes{"type": "carrier", "relationship_type": "r1"})
	_ = g.UpsertEdge("X", "Z", kg.Attributes{"type": "interaction", "relationship_type": "r2", "relationship_group": "g1"})
	return g, concept.Lookup{"X": "Aspirin", "r1": "carried by", "g1": "group one"}
}

func TestRenderAspirin(t *testing.T) {
	g, lookup := aspirin()
	out := filepath.Join(t.TempDir(), "aspirin")

	path, err := Render(context.Background(), g, lookup, out, WithHighlight("X"), quiet)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if path != out+".png" {
		t.Errorf("path = %q, want %q", path, out+".png")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 800 {
		t.Errorf("size = %dx%d, want 800x800", cfg.Width, cfg.Height)
	}
}

func TestPlanHighlightLevels(t *testing.T) {
	g, lookup := aspirin()
	_ = g.UpsertNode("W", kg.Attributes{"name": "Isolated"})

	scene, err := Plan(g, lookup, WithHighlight("X", "not-in-subgraph"), quiet)
	if err != nil {
		t.Fatal(err)
	}

	levels := make(map[string]int)
	for _, n := range scene.Nodes {
		levels[n.ID] = n.Level
	}
	want := map[string]int{"X": 0, "Y": 1, "Z": 1, "W": Unreached}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}

	x, _ := scene.Node("X")
	y, _ := scene.Node("Y")
	z, _ := scene.Node("Z")
	w, _ := scene.Node("W")
	if !x.Highlight || x.Color != palette.Accent {
		t.Errorf("X: highlight=%v color=%s, want accent", x.Highlight, x.Color.Hex())
	}
	if y.Color != z.Color {
		t.Errorf("same level, different colors: %s vs %s", y.Color.Hex(), z.Color.Hex())
	}
	if y.Color != palette.Level(1) {
		t.Errorf("Y color = %s, want level 1 color %s", y.Color.Hex(), palette.Level(1).Hex())
	}
	if w.Color != palette.Neutral {
		t.Errorf("unreached color = %s, want neutral", w.Color.Hex())
	}
}

func TestPlanWithoutHighlights(t *testing.T) {
	g, lookup := aspirin()
	scene, err := Plan(g, lookup, quiet)
	if err != nil {
		t.Fatal(err)
	}
	cyclic := palette.Cyclic(3)
	seen := make(map[string]bool)
	for i, n := range scene.Nodes {
		if n.Level != Unreached || n.Highlight {
			t.Errorf("%s: level=%d highlight=%v without highlights", n.ID, n.Level, n.Highlight)
		}
		if n.Color != palette.Invert(cyclic[i]) {
			t.Errorf("%s: color %s, want inverted cyclic %s", n.ID, n.Color.Hex(), palette.Invert(cyclic[i]).Hex())
		}
		seen[n.Color.Hex()] = true
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct colors, want 3", len(seen))
	}
}

func TestPlanEdges(t *testing.T) {
	g, lookup := aspirin()
	scene, err := Plan(g, lookup, WithHighlight("X"), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if len(scene.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(scene.Edges))
	}
	for _, e := range scene.Edges {
		if e.Color != palette.Invert(palette.Accent) {
			t.Errorf("%s->%s color %s, want inverse of source", e.From, e.To, e.Color.Hex())
		}
	}
	if got := scene.Edges[0].Labels; !reflect.DeepEqual(got, []string{"carried by"}) {
		t.Errorf("edge 0 labels = %q", got)
	}
	if got := scene.Edges[1].Labels; !reflect.DeepEqual(got, []string{"r2", "group one"}) {
		t.Errorf("edge 1 labels = %q, want unresolved type as raw id", got)
	}
}

func TestPlanLabels(t *testing.T) {
	g := kg.New()
	_ = g.UpsertNode("22298006", kg.Attributes{"name": "Myocardial infarction", "semantic_tag": "disorder"})
	_ = g.UpsertNode("bare", nil)

	scene, err := Plan(g, nil, WithLayout("circular"), quiet)
	if err != nil {
		t.Fatal(err)
	}
	mi, _ := scene.Node("22298006")
	if want := []string{"Myocardial", "infarction", "(disorder)"}; !reflect.DeepEqual(mi.Lines, want) {
		t.Errorf("lines = %q, want %q", mi.Lines, want)
	}
	bare, _ := scene.Node("bare")
	if !reflect.DeepEqual(bare.Lines, []string{"bare"}) {
		t.Errorf("lines = %q, want raw id", bare.Lines)
	}
	for _, n := range scene.Nodes {
		if n.TextColor != palette.Text(n.Color) {
			t.Errorf("%s: text color %s does not follow fill luminance", n.ID, n.TextColor.Hex())
		}
	}

	wide, _ := Plan(g, nil, WithLayout("circular"), WithWrapWidth(40), quiet)
	if n, _ := wide.Node("22298006"); len(n.Lines) != 2 {
		t.Errorf("width 40: lines = %q, want label on one line", n.Lines)
	}
}

func TestRenderInvalidLayout(t *testing.T) {
	g, lookup := aspirin()
	out := filepath.Join(t.TempDir(), "bad")

	_, err := Render(context.Background(), g, lookup, out, WithLayout("hexagonal"), quiet)
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Fatalf("err = %v, want INVALID_LAYOUT", err)
	}
	if _, statErr := os.Stat(out + ".png"); !os.IsNotExist(statErr) {
		t.Error("file written despite invalid layout")
	}
}

func TestRenderWriteFailure(t *testing.T) {
	g, lookup := aspirin()
	out := filepath.Join(t.TempDir(), "missing", "dir", "graph")

	_, err := Render(context.Background(), g, lookup, out, quiet)
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Fatalf("err = %v, want WRITE_FAILED", err)
	}
}

func TestWritePNGEmptyGraph(t *testing.T) {
	scene, err := Plan(kg.New(), nil, quiet)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := scene.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestCanvasSide(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 800},
		{4, 800},
		{25, 1100},
		{10000, 8000},
	}
	for _, tt := range tests {
		if got := canvasSide(tt.n); got != tt.want {
			t.Errorf("canvasSide(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
