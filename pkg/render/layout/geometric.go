package layout

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
)

func circular(v *view, _ *rand.Rand) ([]Point, error) {
	n := v.n()
	pos := make([]Point, n)
	if n == 1 {
		return pos, nil
	}
	for i := range pos {
		pos[i] = polar(1, 2*math.Pi*float64(i)/float64(n))
	}
	return pos, nil
}

func random(v *view, rng *rand.Rand) ([]Point, error) {
	pos := make([]Point, v.n())
	for i := range pos {
		pos[i] = Point{rng.Float64(), rng.Float64()}
	}
	return pos, nil
}

// shell places the best-connected node at the center and the rest on
// concentric rings of 6, 12, 18... nodes in decreasing degree order.
func shell(v *view, _ *rand.Rand) ([]Point, error) {
	order := make([]int, v.n())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(len(v.adj[b]), len(v.adj[a]))
	})

	pos := make([]Point, v.n())
	ring, start := 0, 0
	for start < len(order) {
		size := max(1, 6*ring)
		end := min(start+size, len(order))
		members := order[start:end]
		for k, idx := range members {
			theta := 2 * math.Pi * float64(k) / float64(len(members))
			pos[idx] = polar(float64(ring), theta)
		}
		ring++
		start = end
	}
	return pos, nil
}

// spiral places nodes along an Archimedean spiral at roughly equal arc
// spacing, in graph order.
func spiral(v *view, _ *rand.Rand) ([]Point, error) {
	const (
		chord = 1.0
		step  = 0.5
	)
	pos := make([]Point, v.n())
	theta := 0.35
	for i := range pos {
		r := step * theta
		pos[i] = polar(r, theta)
		theta += chord / r
	}
	return pos, nil
}
