package kg

// Subgraph returns a new graph induced by ids: every listed node that exists
// in g (with a copy of its attributes) and every edge of g whose endpoints
// are both listed, parallel edges included. Unknown ids are ignored. Node
// order follows g's insertion order, not the order of ids.
func (g *Graph) Subgraph(ids []string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if g.HasNode(id) {
			keep[id] = true
		}
	}

	sub := New()
	for _, id := range g.order {
		if keep[id] {
			_ = sub.UpsertNode(id, g.nodes[id].Attrs)
		}
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			_ = sub.UpsertEdge(e.From, e.To, e.Attrs)
		}
	}
	return sub
}

// Ego returns the subgraph induced by center and every node reachable from
// it in at most radius forward hops. A missing center yields an empty graph.
func (g *Graph) Ego(center string, radius int) *Graph {
	if !g.HasNode(center) {
		return New()
	}

	dist := map[string]int{center: 0}
	ids := []string{center}
	for queue := []string{center}; len(queue) > 0; {
		curr := queue[0]
		queue = queue[1:]
		if dist[curr] >= radius {
			continue
		}
		for _, next := range g.Successors(curr) {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[curr] + 1
			ids = append(ids, next)
			queue = append(queue, next)
		}
	}
	return g.Subgraph(ids)
}
