package layout

import "math/rand/v2"

// kamadaKawai minimizes the stress between layout distances and undirected
// hop distances by localized stress majorization, starting from a circle.
func kamadaKawai(v *view, rng *rand.Rand) ([]Point, error) {
	const iterations = 300
	n := v.n()
	pos, _ := circular(v, rng)
	if n <= 2 {
		return pos, nil
	}
	d := v.hops()

	for range iterations {
		for i := range n {
			var num Point
			den := 0.0
			for j := range n {
				if i == j {
					continue
				}
				w := 1 / (d[i][j] * d[i][j])
				delta := pos[i].sub(pos[j])
				dist := delta.norm()
				target := pos[j]
				if dist > 0 {
					target = target.add(delta.scale(d[i][j] / dist))
				}
				num = num.add(target.scale(w))
				den += w
			}
			pos[i] = num.scale(1 / den)
		}
	}
	return pos, nil
}
