// Package solver implements five independent algorithms for the maximum
// weight bipartite assignment problem, all returning assignments of equal
// total score on the same input:
//
//   - JonkerVolgenant: successive shortest paths with vertex potentials,
//     the default variant. Worst case ~O(n³).
//   - BellmanFord: successive shortest paths via a per-stage residual
//     graph solved with Bellman–Ford (handles negative reduced-cost edges
//     without potentials). ~O(n⁴).
//   - Classic: matrix-reduction Hungarian with augmenting-path matching
//     and cover-adjustment, using exact rational arithmetic so repeated
//     add/subtract cancels exactly. ~O(n⁴).
//   - KuhnMunkres: builds a bipartite.Graph with negated profit weights and
//     delegates to the bipartite package's matching primitive. ~O(n³).
//   - BruteForce: exhaustive permutation enumeration; the reference oracle
//     for small n, intentionally uninterruptible and resource-unbounded
//     past a capacity ceiling.
//
// Solve is the single dispatch point; each variant is a private function,
// not a type hierarchy. Every variant is a pure function of its input
// matrix: no shared mutable state survives a single call, and two calls
// on the same matrix always return the same Assignment.
package solver
