package core_test

import (
	"math"
	"testing"

	"github.com/fleetmatch/assignsolve/core"
	"github.com/stretchr/testify/require"
)

func TestProfitMatrix_SetAt(t *testing.T) {
	m := core.NewProfitMatrix(3)
	m.Set(0, 2, 9.5)
	m.Set(2, 0, 1.0)

	require.Equal(t, 9.5, m.At(0, 2))
	require.Equal(t, 1.0, m.At(2, 0))
	require.Equal(t, 0.0, m.At(1, 1))
	require.Equal(t, 3, m.N())
}

func TestProfitMatrix_Validate(t *testing.T) {
	m := core.NewProfitMatrix(2)
	require.NoError(t, m.Validate())

	m.Set(0, 1, math.NaN())
	err := m.Validate()
	require.Error(t, err)
	var domErr *core.DomainError
	require.ErrorAs(t, err, &domErr)
	require.Equal(t, 0, domErr.Row)
	require.Equal(t, 1, domErr.Col)
}

func TestProfitMatrix_Empty(t *testing.T) {
	m := core.NewProfitMatrix(0)
	require.Equal(t, 0, m.N())
	require.NoError(t, m.Validate())
}

func TestScore(t *testing.T) {
	m := core.NewProfitMatrix(2)
	m.Set(0, 0, 3)
	m.Set(0, 1, 1)
	m.Set(1, 0, 2)
	m.Set(1, 1, 4)

	require.Equal(t, 7.0, core.Score(m, core.Assignment{0, 1}))
	require.Equal(t, 3.0, core.Score(m, core.Assignment{1, 0}))
}

func TestCostMatrix(t *testing.T) {
	m := core.NewProfitMatrix(2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 9)
	m.Set(1, 0, 7)
	m.Set(1, 1, 3)

	cost, max := core.CostMatrix(m)
	require.Equal(t, 9.0, max)
	require.Equal(t, [][]float64{{8, 0}, {2, 6}}, cost)
}

func TestCostMatrix_Empty(t *testing.T) {
	m := core.NewProfitMatrix(0)
	cost, max := core.CostMatrix(m)
	require.Nil(t, cost)
	require.Equal(t, 0.0, max)
}
