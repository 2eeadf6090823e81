package matrixbuilder

import (
	"github.com/fleetmatch/assignsolve/core"
	"github.com/fleetmatch/assignsolve/score"
)

// Build constructs a padded N×N core.ProfitMatrix from drivers and
// shipments, where N = max(len(drivers), len(shipments)).
//
// Complexity: O(N²) score evaluations.
func Build(drivers, shipments []string) *core.ProfitMatrix {
	d := len(drivers)
	s := len(shipments)
	n := d
	if s > n {
		n = s
	}

	m := core.NewProfitMatrix(n)
	for i := 0; i < d; i++ {
		for j := 0; j < s; j++ {
			m.Set(i, j, score.Score(shipments[j], drivers[i]))
		}
	}

	return m
}
