package layout

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// spectral places each node at its entries in the eigenvectors of the
// second and third smallest eigenvalues of the undirected graph Laplacian.
func spectral(v *view, rng *rand.Rand) ([]Point, error) {
	n := v.n()
	if n < 3 {
		return circular(v, rng)
	}

	lap := mat.NewSymDense(n, nil)
	for i := range n {
		lap.SetSym(i, i, float64(len(v.adj[i])))
	}
	for _, pr := range v.pairs {
		lap.SetSym(pr[0], pr[1], -1)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(lap, true); !ok {
		return nil, errors.New(errors.ErrCodeInternal, "spectral layout: eigendecomposition failed")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{vecs.At(i, 1), vecs.At(i, 2)}
	}
	return pos, nil
}
