package layout

import "github.com/crkarthik11/healthcare/pkg/kg"

// view is an index-based snapshot of a graph for the layout algorithms.
// Parallel edges and self-loops are collapsed.
type view struct {
	ids   []string
	index map[string]int
	adj   [][]int // undirected neighbors
	out   [][]int // directed successors
	in    []int   // directed in-degree
	pairs [][2]int
}

func newView(g *kg.Graph) *view {
	ids := g.NodeIDs()
	v := &view{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]int, len(ids)),
		out:   make([][]int, len(ids)),
		in:    make([]int, len(ids)),
	}
	for i, id := range ids {
		v.index[id] = i
	}

	undirected := make(map[[2]int]bool)
	directed := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		a, b := v.index[e.From], v.index[e.To]
		if a == b {
			continue
		}
		if !directed[[2]int{a, b}] {
			directed[[2]int{a, b}] = true
			v.out[a] = append(v.out[a], b)
			v.in[b]++
		}
		key := [2]int{min(a, b), max(a, b)}
		if !undirected[key] {
			undirected[key] = true
			v.adj[a] = append(v.adj[a], b)
			v.adj[b] = append(v.adj[b], a)
			v.pairs = append(v.pairs, key)
		}
	}
	return v
}

func (v *view) n() int { return len(v.ids) }

// hops returns all-pairs undirected hop distances. Unreachable pairs get
// one more than the largest finite distance.
func (v *view) hops() [][]float64 {
	n := v.n()
	d := make([][]float64, n)
	longest := 0
	for s := range n {
		row := make([]float64, n)
		for i := range row {
			row[i] = -1
		}
		row[s] = 0
		queue := []int{s}
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			for _, nb := range v.adj[curr] {
				if row[nb] >= 0 {
					continue
				}
				row[nb] = row[curr] + 1
				longest = max(longest, int(row[nb]))
				queue = append(queue, nb)
			}
		}
		d[s] = row
	}
	for _, row := range d {
		for i := range row {
			if row[i] < 0 {
				row[i] = float64(longest + 1)
			}
		}
	}
	return d
}
