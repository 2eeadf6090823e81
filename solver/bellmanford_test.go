package solver_test

import (
	"testing"

	"github.com/fleetmatch/assignsolve/core"
	"github.com/fleetmatch/assignsolve/solver"
	"github.com/stretchr/testify/require"
)

func TestBellmanFord_MatchesOracleOnSmallRandom(t *testing.T) {
	m := matrixFrom([][]float64{
		{8, 6, 1, 4},
		{5, 9, 2, 3},
		{7, 2, 6, 5},
		{1, 4, 8, 9},
	})

	bf, err := solver.Solve(m, solver.BellmanFord)
	require.NoError(t, err)
	requirePermutation(t, 4, bf)

	brute, err := solver.Solve(m, solver.BruteForce)
	require.NoError(t, err)
	require.InDelta(t, core.Score(m, brute), core.Score(m, bf), 1e-6)
}
