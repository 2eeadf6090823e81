package bipartite

import "math"

// MinWeightPerfectMatching finds a perfect matching of g's left nodes to
// its right nodes minimizing total edge weight, using the Kuhn–Munkres
// algorithm with row/column potentials: left nodes are added one at a time,
// each growing an alternating path to a free right node over a dense
// weight matrix. The loop has the same shape as the Jonker–Volgenant
// solver variant but works on a Graph, independent of core.ProfitMatrix.
//
// Complexity: O(n³) time, O(n²) space.
func MinWeightPerfectMatching(g *Graph) (Matching, error) {
	n := g.N()
	if n == 0 {
		return Matching{}, ErrEmptyGraph
	}

	const inf = math.MaxFloat64 / 4

	rowPot := make([]float64, n+1)  // potentials over left nodes, 1-indexed
	colPot := make([]float64, n+1)  // potentials over right nodes, 1-indexed
	colOwner := make([]int, n+1)    // colOwner[v] = left node (1-indexed) matched to right node v; 0 = unmatched
	parentCol := make([]int, n+1)   // breadcrumb: previous right node on the current alternating path
	minSlack := make([]float64, n+1)
	visited := make([]bool, n+1)

	for leftNode := 1; leftNode <= n; leftNode++ {
		colOwner[0] = leftNode
		cur := 0

		for v := 1; v <= n; v++ {
			minSlack[v] = inf
			visited[v] = false
		}

		for {
			visited[cur] = true
			owner := colOwner[cur]
			delta := inf
			next := -1

			for v := 1; v <= n; v++ {
				if visited[v] {
					continue
				}
				slack := g.Weight(owner-1, v-1) - rowPot[owner] - colPot[v]
				if slack < minSlack[v] {
					minSlack[v] = slack
					parentCol[v] = cur
				}
				if minSlack[v] < delta {
					delta = minSlack[v]
					next = v
				}
			}

			if next < 0 {
				return nil, &InternalInvariantError{Detail: "no augmenting column found for an unmatched row"}
			}

			for v := 0; v <= n; v++ {
				if visited[v] {
					rowPot[colOwner[v]] += delta
					colPot[v] -= delta
				} else {
					minSlack[v] -= delta
				}
			}

			cur = next
			if colOwner[cur] == 0 {
				break
			}
		}

		for cur != 0 {
			colOwner[cur] = colOwner[parentCol[cur]]
			cur = parentCol[cur]
		}
	}

	matching := make(Matching, n)
	for v := 1; v <= n; v++ {
		matching[colOwner[v]-1] = v - 1
	}

	return matching, nil
}
