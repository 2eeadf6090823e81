package solver

import "math/big"

// ratMatrix is the Classic solver's exact-arithmetic scratch state: a dense
// matrix of *big.Rat, promoted from float64 once at the start of the solve
// and then only ever added to or subtracted from by values already present
// in the matrix. big.Rat guarantees x - δ + δ == x exactly; under float64,
// that cancellation drifts enough on a 100×100 matrix to break the
// solver's zero-equality tests. See DESIGN.md for why this uses
// math/big.Rat directly rather than a hand-rolled rational type.
type ratMatrix struct {
	n      int
	values []*big.Rat // row-major, length n*n
}

func newRatMatrix(n int) *ratMatrix {
	values := make([]*big.Rat, n*n)
	for i := range values {
		values[i] = new(big.Rat)
	}
	return &ratMatrix{n: n, values: values}
}

func (r *ratMatrix) at(i, j int) *big.Rat { return r.values[i*r.n+j] }

func (r *ratMatrix) set(i, j int, v *big.Rat) { r.values[i*r.n+j] = v }
