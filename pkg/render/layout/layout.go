// Package layout computes 2D node positions for rendering a subgraph.
//
// The set of algorithms is fixed and addressed by name (see [Names]):
//
//   - spring: Fruchterman-Reingold, 50 iterations
//   - force-directed: Fruchterman-Reingold with centering gravity, 300 iterations
//   - radial-force: attractive-repulsive forces between all pairs (default)
//   - kamada-kawai: stress majorization over hop distances
//   - spectral: the two smallest non-trivial Laplacian eigenvectors
//   - circular, shell, spiral, random: geometric placements
//   - multipartite: columns by breadth-first layer from the source nodes
//   - planar: rows by breadth-first layer; rejects graphs that cannot be planar
//
// Positions are in an arbitrary coordinate space; [Fit] maps them onto a
// canvas. Layouts that use randomness are deterministic for a given seed.
// Edge direction is ignored except by multipartite.
package layout

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

// Default is the layout used when none is requested.
const Default = "radial-force"

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) norm() float64         { return math.Hypot(p.X, p.Y) }

func polar(r, theta float64) Point {
	return Point{r * math.Cos(theta), r * math.Sin(theta)}
}

type algorithm func(v *view, rng *rand.Rand) ([]Point, error)

var algorithms = map[string]algorithm{
	"spring":         spring,
	"force-directed": forceDirected,
	"radial-force":   radialForce,
	"kamada-kawai":   kamadaKawai,
	"spectral":       spectral,
	"circular":       circular,
	"shell":          shell,
	"spiral":         spiral,
	"random":         random,
	"multipartite":   multipartite,
	"planar":         planar,
}

// Names returns the supported layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate returns an INVALID_LAYOUT error if name is not a supported layout.
func Validate(name string) error {
	if _, ok := algorithms[name]; !ok {
		return errors.New(errors.ErrCodeInvalidLayout,
			"unknown layout %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return nil
}

// Compute runs the named layout over g and returns one position per node.
// An unknown name fails with INVALID_LAYOUT before any computation.
func Compute(name string, g *kg.Graph, seed int64) (map[string]Point, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}
	v := newView(g)
	pos := make(map[string]Point, len(v.ids))
	if len(v.ids) == 0 {
		return pos, nil
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0x6b67))
	points, err := algorithms[name](v, rng)
	if err != nil {
		return nil, err
	}
	for i, id := range v.ids {
		pos[id] = points[i]
	}
	return pos, nil
}

// Fit scales and translates pos uniformly so that every point lies inside
// the square [margin, side-margin]. The drawing is centered; a single
// point, or points that all coincide, land in the middle.
func Fit(pos map[string]Point, side, margin float64) map[string]Point {
	out := make(map[string]Point, len(pos))
	if len(pos) == 0 {
		return out
	}

	lo := Point{math.Inf(1), math.Inf(1)}
	hi := Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range pos {
		lo = Point{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = Point{max(hi.X, p.X), max(hi.Y, p.Y)}
	}

	mid := Point{side / 2, side / 2}
	extent := max(hi.X-lo.X, hi.Y-lo.Y)
	avail := side - 2*margin
	center := Point{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2}
	for id, p := range pos {
		if extent == 0 {
			out[id] = mid
			continue
		}
		out[id] = p.sub(center).scale(avail / extent).add(mid)
	}
	return out
}
