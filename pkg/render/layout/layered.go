package layout

import (
	"math/rand/v2"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// multipartite puts nodes in vertical columns by breadth-first layer along
// edge direction. Sources (in-degree zero) start at layer 0; any node left
// over, for example on a cycle with no source, seeds a further search.
func multipartite(v *view, _ *rand.Rand) ([]Point, error) {
	n := v.n()
	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}

	var roots []int
	for i := range n {
		if v.in[i] == 0 {
			roots = append(roots, i)
		}
	}
	bfs(v.out, layer, roots)
	for i := range n {
		if layer[i] < 0 {
			bfs(v.out, layer, []int{i})
		}
	}
	return columns(layer, false), nil
}

// planar draws rows by undirected breadth-first layer, ordered by discovery
// so that tree edges never cross. Graphs with more than 3n-6 edges cannot
// be planar and are rejected.
func planar(v *view, _ *rand.Rand) ([]Point, error) {
	n := v.n()
	if n >= 3 && len(v.pairs) > 3*n-6 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"planar layout: graph with %d nodes and %d edges is not planar", n, len(v.pairs))
	}

	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}
	for i := range n {
		if layer[i] < 0 {
			bfs(v.adj, layer, []int{i})
		}
	}
	return columns(layer, true), nil
}

// bfs assigns a layer to every node reachable from roots that has none yet.
func bfs(adj [][]int, layer []int, roots []int) {
	queue := make([]int, 0, len(roots))
	for _, r := range roots {
		if layer[r] < 0 {
			layer[r] = 0
			queue = append(queue, r)
		}
	}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, nb := range adj[curr] {
			if layer[nb] >= 0 {
				continue
			}
			layer[nb] = layer[curr] + 1
			queue = append(queue, nb)
		}
	}
}

// columns lays out layers side by side, each centered on the axis. With
// rows set, layers run top to bottom instead.
func columns(layer []int, rows bool) []Point {
	count := make(map[int]int)
	slot := make([]int, len(layer))
	for i, l := range layer {
		slot[i] = count[l]
		count[l]++
	}
	pos := make([]Point, len(layer))
	for i, l := range layer {
		offset := float64(slot[i]) - float64(count[l]-1)/2
		if rows {
			pos[i] = Point{offset, float64(l)}
		} else {
			pos[i] = Point{float64(l), offset}
		}
	}
	return pos
}
