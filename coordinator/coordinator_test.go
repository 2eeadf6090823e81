package coordinator_test

import (
	"context"
	"testing"

	"github.com/fleetmatch/assignsolve/coordinator"
	"github.com/fleetmatch/assignsolve/score"
	"github.com/fleetmatch/assignsolve/solver"
	"github.com/stretchr/testify/require"
)

func TestAssign_SquareInput(t *testing.T) {
	drivers := []string{"Alice", "Bob"}
	shipments := []string{"1 Oak St", "2 Pine St"}

	pairs, err := coordinator.Assign(drivers, shipments)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	seenDrivers := map[string]bool{}
	seenShipments := map[string]bool{}
	for _, p := range pairs {
		seenDrivers[p.Driver] = true
		seenShipments[p.Shipment] = true
		require.Equal(t, score.Score(p.Shipment, p.Driver), p.Score)
	}
	require.Len(t, seenDrivers, 2)
	require.Len(t, seenShipments, 2)
}

func TestAssign_PaddingFiltered(t *testing.T) {
	drivers := []string{"Alice"}
	shipments := []string{"1 Oak St", "2 Pine St", "3 Elm St"}

	pairs, err := coordinator.Assign(drivers, shipments)
	require.NoError(t, err)
	// Only one real driver: padding rows never appear in the result.
	require.Len(t, pairs, 1)
	require.Equal(t, "Alice", pairs[0].Driver)
}

func TestAssign_EmptyInput(t *testing.T) {
	pairs, err := coordinator.Assign(nil, nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestAssign_VariantChoiceAgreesOnTotalScore(t *testing.T) {
	drivers := []string{"Alice", "Bob", "Carol"}
	shipments := []string{"1 Oak St", "2 Pine St Apt 4", "300 Long Winding Rd"}

	variants := []solver.Variant{
		solver.JonkerVolgenant,
		solver.BellmanFord,
		solver.Classic,
		solver.KuhnMunkres,
		solver.BruteForce,
	}

	var totals []float64
	for _, v := range variants {
		pairs, err := coordinator.Assign(drivers, shipments, coordinator.WithVariant(v))
		require.NoError(t, err)
		var total float64
		for _, p := range pairs {
			total += p.Score
		}
		totals = append(totals, total)
	}
	for i := 1; i < len(totals); i++ {
		require.InDelta(t, totals[0], totals[i], 1e-6)
	}
}

func TestAssign_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coordinator.Assign([]string{"Alice"}, []string{"1 Oak St"}, coordinator.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
