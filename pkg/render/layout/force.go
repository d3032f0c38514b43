package layout

import (
	"math"
	"math/rand/v2"
)

// fruchtermanReingold runs the Fruchterman-Reingold spring embedder from a
// random start. gravity > 0 adds a pull toward the centroid, which keeps
// disconnected components from drifting apart.
func fruchtermanReingold(v *view, rng *rand.Rand, iterations int, gravity float64) []Point {
	n := v.n()
	pos, _ := random(v, rng)
	if n == 1 {
		return pos
	}

	k := math.Sqrt(1 / float64(n))
	temp := 0.1
	cool := temp / float64(iterations+1)
	disp := make([]Point, n)

	for range iterations {
		clear(disp)
		for i := range n {
			for j := i + 1; j < n; j++ {
				delta := pos[i].sub(pos[j])
				d := max(delta.norm(), 0.01)
				f := delta.scale(k * k / (d * d))
				disp[i] = disp[i].add(f)
				disp[j] = disp[j].sub(f)
			}
		}
		for _, pr := range v.pairs {
			i, j := pr[0], pr[1]
			delta := pos[i].sub(pos[j])
			d := max(delta.norm(), 0.01)
			f := delta.scale(d / k)
			disp[i] = disp[i].sub(f)
			disp[j] = disp[j].add(f)
		}
		if gravity > 0 {
			c := centroid(pos)
			for i := range n {
				disp[i] = disp[i].add(c.sub(pos[i]).scale(gravity * k))
			}
		}
		for i := range n {
			length := disp[i].norm()
			if length == 0 {
				continue
			}
			pos[i] = pos[i].add(disp[i].scale(min(length, temp) / length))
		}
		temp -= cool
	}
	return pos
}

func spring(v *view, rng *rand.Rand) ([]Point, error) {
	return fruchtermanReingold(v, rng, 50, 0), nil
}

func forceDirected(v *view, rng *rand.Rand) ([]Point, error) {
	return fruchtermanReingold(v, rng, 300, 0.5), nil
}

// radialForce moves every node along the sum of an attraction toward all
// other nodes (stronger along edges) and a repulsion of rho/d, until the
// total movement falls below a tolerance.
func radialForce(v *view, rng *rand.Rand) ([]Point, error) {
	const (
		attract  = 1.1 // attraction multiplier along edges
		dt       = 1e-3
		etol     = 1e-6
		maxIters = 1000
	)
	n := v.n()
	pos, _ := random(v, rng)
	if n == 1 {
		return pos, nil
	}

	edge := make([]map[int]bool, n)
	for i := range n {
		edge[i] = make(map[int]bool, len(v.adj[i]))
		for _, j := range v.adj[i] {
			edge[i][j] = true
		}
	}

	rho := math.Sqrt(float64(n))
	change := make([]Point, n)
	for range maxIters {
		clear(change)
		for j := range n {
			for i := range n {
				if i == j {
					continue
				}
				diff := pos[i].sub(pos[j])
				d := diff.norm()
				if d == 0 {
					continue
				}
				k := 1.0
				if edge[j][i] {
					k = attract
				}
				change[j] = change[j].add(diff.scale(k - rho/d))
			}
		}
		total := 0.0
		for j := range n {
			pos[j] = pos[j].add(change[j].scale(dt))
			total += change[j].norm()
		}
		if total < etol {
			break
		}
	}
	return pos, nil
}

func centroid(ps []Point) Point {
	var c Point
	for _, p := range ps {
		c = c.add(p)
	}
	return c.scale(1 / float64(max(len(ps), 1)))
}
