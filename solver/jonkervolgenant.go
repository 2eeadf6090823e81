package solver

import "github.com/fleetmatch/assignsolve/core"

// solveJonkerVolgenant implements the Jonker–Volgenant style successive
// shortest-path algorithm with vertex potentials: 1-indexed arrays of
// length N+1, column 0 as a sentinel unassigned column, one
// Dijkstra-with-potentials stage per row.
//
// Complexity: worst case O(n³).
func solveJonkerVolgenant(m *core.ProfitMatrix, cfg *Options) (core.Assignment, error) {
	n := m.N()
	if n == 0 {
		return core.Assignment{}, nil
	}

	cost, _ := core.CostMatrix(m)

	// cost1[i][j], i,j in 0..N; row/col 0 are the sentinel and stay zero.
	cost1 := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		cost1[i] = make([]float64, n+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cost1[i][j] = cost[i-1][j-1]
		}
	}

	rowPot := make([]float64, n+1)
	colPot := make([]float64, n+1)
	colAssignment := make([]int, n+1) // colAssignment[j] = row owning column j; 0 = unassigned
	prev := make([]int, n+1)          // breadcrumb predecessor column
	cheapest := make([]float64, n+1)
	visited := make([]bool, n+1)

	for r := 1; r <= n; r++ {
		colAssignment[0] = r
		cur := 0
		for j := 0; j <= n; j++ {
			cheapest[j] = posInf
			visited[j] = false
		}

		for {
			visited[cur] = true
			owner := colAssignment[cur]

			delta := posInf
			next := -1
			for j := 0; j <= n; j++ {
				if visited[j] {
					continue
				}
				rc := cost1[owner][j] - rowPot[owner] - colPot[j]
				if rc < cheapest[j] {
					cheapest[j] = rc
					prev[j] = cur
				}
				if cheapest[j] < delta {
					delta = cheapest[j]
					next = j
				}
			}

			if next < 0 {
				return nil, &InternalInvariantError{Variant: JonkerVolgenant, Stage: "stage", Detail: "no unvisited column remains"}
			}

			for j := 0; j <= n; j++ {
				if visited[j] {
					rowPot[colAssignment[j]] += delta
					colPot[j] -= delta
				} else {
					cheapest[j] -= delta
				}
			}

			cur = next
			if colAssignment[cur] != 0 {
				continue
			}
			break
		}

		for cur != 0 {
			colAssignment[cur] = colAssignment[prev[cur]]
			cur = prev[cur]
		}

		cfg.report(JonkerVolgenant, "augment", "")
	}

	result := make(core.Assignment, n)
	for j := 1; j <= n; j++ {
		row := colAssignment[j]
		if row < 1 || row > n {
			return nil, &InternalInvariantError{Variant: JonkerVolgenant, Stage: "unpack", Detail: "column left unassigned"}
		}
		result[row-1] = j - 1
	}

	return result, nil
}

const posInf = 1.7976931348623157e+308
