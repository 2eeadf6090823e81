package solver

import "github.com/fleetmatch/assignsolve/core"

// bfEdge is a directed weighted edge in the per-stage residual graph built
// by solveBellmanFord. Weights may be negative (reassignment deltas), which
// is exactly why Bellman–Ford rather than Dijkstra drives this variant.
type bfEdge struct {
	from, to int
	weight   float64
}

// solveBellmanFord implements assignment by successive shortest paths:
// process rows in order, and for each row build a fresh directed graph
// (columns 0..N-1 plus a virtual source and sink), run Bellman–Ford from
// source to sink, and interpret the returned path as a chain of
// reassignments.
//
// Node numbering in the per-stage graph: columns keep indices 0..N-1;
// source is N; sink is N+1.
//
// Complexity: ~O(n⁴) — n stages, each an O(n²)-edge Bellman–Ford relaxed
// O(n) times.
func solveBellmanFord(m *core.ProfitMatrix, cfg *Options) (core.Assignment, error) {
	n := m.N()
	if n == 0 {
		return core.Assignment{}, nil
	}

	cost, _ := core.CostMatrix(m)

	source := n
	sink := n + 1
	numNodes := n + 2

	colOwner := make([]int, n) // colOwner[j] = driver row owning column j, or -1
	for j := range colOwner {
		colOwner[j] = -1
	}

	for r := 0; r < n; r++ {
		edges := make([]bfEdge, 0, n+n*n)
		for j := 0; j < n; j++ {
			edges = append(edges, bfEdge{from: source, to: j, weight: cost[r][j]})
		}
		for j := 0; j < n; j++ {
			if owner := colOwner[j]; owner >= 0 {
				for k := 0; k < n; k++ {
					if k == j {
						continue
					}
					edges = append(edges, bfEdge{from: j, to: k, weight: cost[owner][k] - cost[owner][j]})
				}
			} else {
				edges = append(edges, bfEdge{from: j, to: sink, weight: 0})
			}
		}

		pred, err := bellmanFordShortestPath(numNodes, edges, source, sink)
		if err != nil {
			return nil, err
		}

		// Walk sink back to source to recover the column chain c1..ck.
		path := make([]int, 0, n)
		for node := pred[sink]; node != source; node = pred[node] {
			path = append(path, node)
		}
		// path is currently [ck, ck-1, ..., c1]; reverse it in place.
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		if len(path) == 0 {
			return nil, &InternalInvariantError{Variant: BellmanFord, Stage: "augment", Detail: "empty augmenting path"}
		}

		// Apply the chain in reverse order: ck's new owner is read from
		// c(k-1) before c(k-1) itself is overwritten, and so on down to c1,
		// which takes driver r.
		for i := len(path) - 1; i >= 1; i-- {
			colOwner[path[i]] = colOwner[path[i-1]]
		}
		colOwner[path[0]] = r

		cfg.report(BellmanFord, "stage", "")
	}

	result := make(core.Assignment, n)
	for col, row := range colOwner {
		if row < 0 {
			return nil, &InternalInvariantError{Variant: BellmanFord, Stage: "unpack", Detail: "column left unassigned"}
		}
		result[row] = col
	}

	return result, nil
}

// bellmanFordShortestPath runs the standard |V|-1 relaxation rounds from
// source and returns the predecessor array needed to recover the shortest
// path to sink. An unmatched column always provides a zero-weight edge to
// sink, so sink is always reachable; a negative cycle is impossible given
// this successive-shortest-paths residual structure, so no extra
// relaxation round is spent detecting one.
func bellmanFordShortestPath(numNodes int, edges []bfEdge, source, sink int) ([]int, error) {
	dist := make([]float64, numNodes)
	pred := make([]int, numNodes)
	for i := range dist {
		dist[i] = posInf
		pred[i] = -1
	}
	dist[source] = 0

	for i := 0; i < numNodes-1; i++ {
		changed := false
		for _, e := range edges {
			if dist[e.from] == posInf {
				continue
			}
			if cand := dist[e.from] + e.weight; cand < dist[e.to] {
				dist[e.to] = cand
				pred[e.to] = e.from
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if dist[sink] == posInf {
		return nil, &InternalInvariantError{Variant: BellmanFord, Stage: "shortest-path", Detail: "sink unreachable from source"}
	}

	return pred, nil
}
