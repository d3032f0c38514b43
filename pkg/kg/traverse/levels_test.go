package traverse

import (
	"reflect"
	"testing"

	"github.com/crkarthik11/healthcare/pkg/kg"
)

func graph(edges ...[2]string) *kg.Graph {
	g := kg.New()
	for _, e := range edges {
		_ = g.UpsertEdge(e[0], e[1], nil)
	}
	return g
}

func TestLevels(t *testing.T) {
	// a -> b -> c -> d and a shortcut a -> d; e -> c; f isolated from a.
	g := graph(
		[2]string{"a", "b"},
		[2]string{"b", "c"},
		[2]string{"c", "d"},
		[2]string{"a", "d"},
		[2]string{"e", "c"},
		[2]string{"f", "e"},
	)

	tests := []struct {
		name  string
		roots []string
		want  map[string]int
	}{
		{
			name:  "shortest path wins",
			roots: []string{"a"},
			want:  map[string]int{"a": 0, "b": 1, "d": 1, "c": 2},
		},
		{
			name:  "multiple roots",
			roots: []string{"a", "e"},
			want:  map[string]int{"a": 0, "e": 0, "b": 1, "c": 1, "d": 1},
		},
		{
			name:  "duplicate roots collapse",
			roots: []string{"f", "f"},
			want:  map[string]int{"f": 0, "e": 1, "c": 2, "d": 3},
		},
		{
			name:  "missing root ignored",
			roots: []string{"zzz", "d"},
			want:  map[string]int{"d": 0},
		},
		{
			name:  "no roots",
			roots: nil,
			want:  map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Levels(g, tt.roots)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Levels(%v) = %v, want %v", tt.roots, got, tt.want)
			}
		})
	}
}

func TestLevelsUnreachableAbsent(t *testing.T) {
	g := graph([2]string{"a", "b"}, [2]string{"c", "a"})

	got := Levels(g, []string{"a"})
	if _, ok := got["c"]; ok {
		t.Errorf("predecessor-only node c got level %d", got["c"])
	}
}

func TestLevelsCycle(t *testing.T) {
	g := graph([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})

	got := Levels(g, []string{"b"})
	want := map[string]int{"b": 0, "c": 1, "a": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Levels = %v, want %v", got, want)
	}
}

func TestMaxLevel(t *testing.T) {
	if got := MaxLevel(nil); got != -1 {
		t.Errorf("MaxLevel(nil) = %d, want -1", got)
	}
	if got := MaxLevel(map[string]int{"a": 0, "b": 3, "c": 1}); got != 3 {
		t.Errorf("MaxLevel = %d, want 3", got)
	}
}
