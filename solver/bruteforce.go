package solver

import "github.com/fleetmatch/assignsolve/core"

// solveBruteForce enumerates every permutation of [0, N) and keeps the
// argmax. Permutations are explored in lexicographic order (by always
// trying the smallest available column first at each row), so ties are
// broken by keeping the first maximizing permutation encountered — this
// tie-break is not a contract callers may rely on.
//
// N=0 returns the empty assignment. Complexity: O(n!).
func solveBruteForce(m *core.ProfitMatrix, cfg *Options) (core.Assignment, error) {
	n := m.N()
	if n > cfg.bruteForceMaxN {
		return nil, &CapacityError{N: n, Max: cfg.bruteForceMaxN}
	}
	if n == 0 {
		return core.Assignment{}, nil
	}

	used := make([]bool, n)
	current := make([]int, n)
	best := make([]int, n)
	bestScore := negInf

	var recurse func(row int, score float64)
	recurse = func(row int, score float64) {
		if row == n {
			if score > bestScore {
				bestScore = score
				copy(best, current)
			}
			return
		}
		for col := 0; col < n; col++ {
			if used[col] {
				continue
			}
			used[col] = true
			current[row] = col
			recurse(row+1, score+m.At(row, col))
			used[col] = false
		}
	}
	recurse(0, 0)

	cfg.report(BruteForce, "permutation", "")

	result := make(core.Assignment, n)
	copy(result, best)
	return result, nil
}

const negInf = -1.7976931348623157e+308
