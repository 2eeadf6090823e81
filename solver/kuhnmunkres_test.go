package solver_test

import (
	"testing"

	"github.com/fleetmatch/assignsolve/core"
	"github.com/fleetmatch/assignsolve/solver"
	"github.com/stretchr/testify/require"
)

func TestKuhnMunkres_MatchesOracle(t *testing.T) {
	m := matrixFrom([][]float64{
		{1, 2, 9},
		{7, 3, 4},
		{5, 8, 2},
	})

	km, err := solver.Solve(m, solver.KuhnMunkres)
	require.NoError(t, err)
	requirePermutation(t, 3, km)
	require.InDelta(t, 24.0, core.Score(m, km), 1e-6)
}
