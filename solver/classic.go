package solver

import (
	"math/big"

	"github.com/fleetmatch/assignsolve/core"
)

// classicMaxIterations bounds the cover-search/adjust loop as a defensive
// backstop, not a tuning knob: the cover-and-adjust loop strictly shrinks
// the uncovered region's minimum each pass on a finite exact matrix, so
// it terminates well inside this bound. Exceeding it means an invariant
// broke, not that the matrix was "too big".
const classicMaxIterations = 100000

// solveClassic implements the classical matrix-reduction Hungarian
// algorithm over exact rational arithmetic (see exactrat.go): convert
// profit to cost, row- and column-reduce, repeatedly extend a zero-cost
// matching via augmenting paths, and when short of a full matching, run
// the cover search and δ-adjustment before retrying.
//
// Complexity: ~O(n⁴).
func solveClassic(m *core.ProfitMatrix, cfg *Options) (core.Assignment, error) {
	n := m.N()
	if n == 0 {
		return core.Assignment{}, nil
	}

	cost := newRatMatrix(n)
	maxProfit := new(big.Rat).SetFloat64(m.At(0, 0))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := new(big.Rat).SetFloat64(m.At(i, j))
			if v.Cmp(maxProfit) > 0 {
				maxProfit = v
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			profit := new(big.Rat).SetFloat64(m.At(i, j))
			cost.set(i, j, new(big.Rat).Sub(maxProfit, profit))
		}
	}

	// Row-reduce: subtract each row's minimum from every entry in that row.
	for i := 0; i < n; i++ {
		min := cost.at(i, 0)
		for j := 1; j < n; j++ {
			if cost.at(i, j).Cmp(min) < 0 {
				min = cost.at(i, j)
			}
		}
		for j := 0; j < n; j++ {
			cost.set(i, j, new(big.Rat).Sub(cost.at(i, j), min))
		}
	}

	// Column-reduce: subtract each column's minimum.
	for j := 0; j < n; j++ {
		min := cost.at(0, j)
		for i := 1; i < n; i++ {
			if cost.at(i, j).Cmp(min) < 0 {
				min = cost.at(i, j)
			}
		}
		for i := 0; i < n; i++ {
			cost.set(i, j, new(big.Rat).Sub(cost.at(i, j), min))
		}
	}

	rowMatch := make([]int, n) // rowMatch[i] = column matched to row i, or -1
	colMatch := make([]int, n) // colMatch[j] = row matched to column j, or -1
	for i := range rowMatch {
		rowMatch[i] = -1
	}
	for j := range colMatch {
		colMatch[j] = -1
	}
	matched := 0

	for iter := 0; ; iter++ {
		if iter > classicMaxIterations {
			return nil, &InternalInvariantError{Variant: Classic, Stage: "cover-adjust", Detail: "exceeded iteration backstop"}
		}

		// Augmenting-path pass over the zero-cost subgraph (Kuhn's
		// algorithm): extend the existing matching rather than rebuilding
		// it from scratch, since the delta-adjustment below only ever
		// creates new zero edges, never removes matched ones.
		for i := 0; i < n; i++ {
			if rowMatch[i] != -1 {
				continue
			}
			visited := make([]bool, n)
			if classicAugment(cost, i, visited, rowMatch, colMatch) {
				matched++
			}
		}

		if matched == n {
			cfg.report(Classic, "matched", "")
			break
		}

		// Cover search: fixed-point reachability from unmatched rows.
		rowReachable := make([]bool, n)
		colReachable := make([]bool, n)
		for i := 0; i < n; i++ {
			if rowMatch[i] == -1 {
				rowReachable[i] = true
			}
		}
		for {
			changed := false
			for i := 0; i < n; i++ {
				if !rowReachable[i] {
					continue
				}
				for j := 0; j < n; j++ {
					if !colReachable[j] && cost.at(i, j).Sign() == 0 {
						colReachable[j] = true
						changed = true
					}
				}
			}
			for j := 0; j < n; j++ {
				if !colReachable[j] {
					continue
				}
				if owner := colMatch[j]; owner != -1 && !rowReachable[owner] {
					rowReachable[owner] = true
					changed = true
				}
			}
			if !changed {
				break
			}
		}

		// Adjust: δ = min cost over reachable rows and unreachable columns.
		var delta *big.Rat
		for i := 0; i < n; i++ {
			if !rowReachable[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if colReachable[j] {
					continue
				}
				if delta == nil || cost.at(i, j).Cmp(delta) < 0 {
					delta = cost.at(i, j)
				}
			}
		}
		if delta == nil {
			return nil, &InternalInvariantError{Variant: Classic, Stage: "cover-adjust", Detail: "no uncovered cell to compute delta from"}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				switch {
				case rowReachable[i] && !colReachable[j]:
					cost.set(i, j, new(big.Rat).Sub(cost.at(i, j), delta))
				case !rowReachable[i] && colReachable[j]:
					cost.set(i, j, new(big.Rat).Add(cost.at(i, j), delta))
				}
			}
		}

		cfg.report(Classic, "cover-adjust", "")
	}

	result := make(core.Assignment, n)
	for i, j := range rowMatch {
		if j < 0 {
			return nil, &InternalInvariantError{Variant: Classic, Stage: "unpack", Detail: "row left unassigned"}
		}
		result[i] = j
	}

	return result, nil
}

// classicAugment searches for an augmenting path from row i through the
// zero-cost subgraph of cost, extending rowMatch/colMatch in place on
// success. Standard Kuhn's-algorithm recursion: try every unvisited
// zero-cost column, and if it is already matched, recurse into its owner
// row before giving up on it.
func classicAugment(cost *ratMatrix, i int, visited []bool, rowMatch, colMatch []int) bool {
	n := cost.n
	for j := 0; j < n; j++ {
		if visited[j] || cost.at(i, j).Sign() != 0 {
			continue
		}
		visited[j] = true
		if colMatch[j] == -1 || classicAugment(cost, colMatch[j], visited, rowMatch, colMatch) {
			rowMatch[i] = j
			colMatch[j] = i
			return true
		}
	}
	return false
}
