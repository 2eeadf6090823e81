package solver

import (
	"github.com/fleetmatch/assignsolve/bipartite"
	"github.com/fleetmatch/assignsolve/core"
)

// solveKuhnMunkres builds a weighted bipartite graph with N driver-nodes
// and N shipment-nodes, edge (i, j) weighted -profit[i][j] (negated because
// the bipartite primitive minimizes), and delegates to
// bipartite.MinWeightPerfectMatching. The primitive is a black box from
// this solver's point of view: all the logic here is graph assembly and
// result unpacking.
//
// Complexity: ~O(n³), dominated by the primitive.
func solveKuhnMunkres(m *core.ProfitMatrix, cfg *Options) (core.Assignment, error) {
	n := m.N()
	if n == 0 {
		return core.Assignment{}, nil
	}

	g := bipartite.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.SetWeight(i, j, -m.At(i, j))
		}
	}

	matching, err := bipartite.MinWeightPerfectMatching(g)
	if err != nil {
		return nil, &InternalInvariantError{Variant: KuhnMunkres, Stage: "matching-primitive", Detail: err.Error()}
	}

	cfg.report(KuhnMunkres, "matched", "")

	result := make(core.Assignment, n)
	for driver, shipment := range matching {
		result[driver] = shipment
	}

	return result, nil
}
