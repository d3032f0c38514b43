package traverse

import "github.com/crkarthik11/healthcare/pkg/kg"

// Levels assigns every node reachable from roots its breadth-first distance
// in forward-edge hops from the nearest root.
//
// All roots are enqueued at level 0 before the search starts. A node is
// assigned on first visit and never revisited, so ties between roots at the
// same distance resolve to whichever frontier reaches the node first (root
// order, then edge order); the level value is the same either way.
//
// Roots that are not nodes of g are ignored and duplicate roots collapse.
// The returned map is never nil.
//
// Time complexity is O(V + E) over the reachable part of g.
func Levels(g *kg.Graph, roots []string) map[string]int {
	levels := make(map[string]int)
	queue := make([]string, 0, len(roots))

	for _, r := range roots {
		if !g.HasNode(r) {
			continue
		}
		if _, seen := levels[r]; seen {
			continue
		}
		levels[r] = 0
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		next := levels[curr] + 1
		for _, child := range g.Successors(curr) {
			if _, seen := levels[child]; seen {
				continue
			}
			levels[child] = next
			queue = append(queue, child)
		}
	}
	return levels
}

// MaxLevel returns the largest value in levels, or -1 when levels is empty.
func MaxLevel(levels map[string]int) int {
	maxLevel := -1
	for _, l := range levels {
		maxLevel = max(maxLevel, l)
	}
	return maxLevel
}
