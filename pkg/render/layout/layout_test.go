package layout

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

func build(edges ...[2]string) *kg.Graph {
	g := kg.New()
	for _, e := range edges {
		_ = g.UpsertEdge(e[0], e[1], nil)
	}
	return g
}

func complete(n int) *kg.Graph {
	g := kg.New()
	for i := range n {
		for j := i + 1; j < n; j++ {
			_ = g.UpsertEdge(fmt.Sprint(i), fmt.Sprint(j), nil)
		}
	}
	return g
}

func TestNames(t *testing.T) {
	want := []string{
		"circular", "force-directed", "kamada-kawai", "multipartite", "planar",
		"radial-force", "random", "shell", "spectral", "spiral", "spring",
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if err := Validate(Default); err != nil {
		t.Errorf("Validate(Default) = %v", err)
	}
}

func TestComputeUnknownLayout(t *testing.T) {
	_, err := Compute("hexagonal", build([2]string{"a", "b"}), 1)
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Fatalf("err = %v, want INVALID_LAYOUT", err)
	}
}

func TestComputeAllLayouts(t *testing.T) {
	graphs := map[string]*kg.Graph{
		"single": build([2]string{"a", "a"}),
		"pair":   build([2]string{"a", "b"}),
		"tree": build(
			[2]string{"r", "a"}, [2]string{"r", "b"}, [2]string{"a", "c"},
			[2]string{"a", "d"}, [2]string{"b", "e"},
		),
		"disconnected": build([2]string{"a", "b"}, [2]string{"c", "d"}, [2]string{"e", "e"}),
		"cycle":        build([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}),
	}

	for _, name := range Names() {
		for gname, g := range graphs {
			t.Run(name+"/"+gname, func(t *testing.T) {
				pos, err := Compute(name, g, 7)
				if err != nil {
					t.Fatalf("Compute: %v", err)
				}
				if len(pos) != g.NodeCount() {
					t.Fatalf("got %d positions, want %d", len(pos), g.NodeCount())
				}
				for id, p := range pos {
					if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
						t.Errorf("position of %s is not finite: %v", id, p)
					}
				}
			})
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	pos, err := Compute("spring", kg.New(), 1)
	if err != nil || pos == nil || len(pos) != 0 {
		t.Errorf("Compute(empty) = %v, %v; want empty map", pos, err)
	}
}

func TestComputeDeterministic(t *testing.T) {
	g := build([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"}, [2]string{"a", "d"})
	for _, name := range []string{"spring", "force-directed", "radial-force", "random"} {
		first, _ := Compute(name, g, 42)
		second, _ := Compute(name, g, 42)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: same seed produced different positions", name)
		}
	}
}

func TestPlanarRejectsDenseGraph(t *testing.T) {
	_, err := Compute("planar", complete(5), 1)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("K5: err = %v, want INVALID_INPUT", err)
	}
	if _, err := Compute("planar", complete(4), 1); err != nil {
		t.Fatalf("K4: %v", err)
	}
}

func TestMultipartiteColumns(t *testing.T) {
	g := build([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "d"})
	pos, err := Compute("multipartite", g, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"a": 0, "b": 1, "c": 1, "d": 2}
	for id, x := range want {
		if pos[id].X != x {
			t.Errorf("column of %s = %v, want %v", id, pos[id].X, x)
		}
	}
	if pos["b"].Y == pos["c"].Y {
		t.Error("b and c share a slot in column 1")
	}
}

func TestFit(t *testing.T) {
	pos := map[string]Point{
		"a": {-5, 2},
		"b": {5, 2},
		"c": {0, 4},
	}
	got := Fit(pos, 100, 10)
	for id, p := range got {
		if p.X < 10-1e-9 || p.X > 90+1e-9 || p.Y < 10-1e-9 || p.Y > 90+1e-9 {
			t.Errorf("%s = %v outside margins", id, p)
		}
	}
	if got["a"].X != 10 || got["b"].X != 90 {
		t.Errorf("widest axis not stretched to margins: a=%v b=%v", got["a"], got["b"])
	}
	if got["c"].X != 50 {
		t.Errorf("c.X = %v, want 50", got["c"].X)
	}

	single := Fit(map[string]Point{"x": {3, 3}}, 100, 10)
	if single["x"] != (Point{50, 50}) {
		t.Errorf("single point = %v, want center", single["x"])
	}
}
