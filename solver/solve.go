package solver

import "github.com/fleetmatch/assignsolve/core"

// Solve dispatches to the requested Variant and returns an Assignment
// maximizing total profit over m. All five variants return assignments of
// equal total score on the same input; they may differ in which specific
// optimal assignment they return when ties exist. Callers should never
// depend on which particular permutation comes back in a tie.
//
// Solve validates m via core.ProfitMatrix.Validate before dispatching;
// callers that have already validated their matrix pay only the cost of
// that (cheap, O(n²)) re-check.
func Solve(m *core.ProfitMatrix, variant Variant, opts ...Option) (core.Assignment, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch variant {
	case JonkerVolgenant:
		return solveJonkerVolgenant(m, &cfg)
	case BellmanFord:
		return solveBellmanFord(m, &cfg)
	case Classic:
		return solveClassic(m, &cfg)
	case KuhnMunkres:
		return solveKuhnMunkres(m, &cfg)
	case BruteForce:
		return solveBruteForce(m, &cfg)
	default:
		return nil, &InternalInvariantError{Variant: variant, Stage: "dispatch", Detail: "unknown variant"}
	}
}
