// Package matrixbuilder builds the square ProfitMatrix that every solver
// variant consumes, from ordered driver and shipment lists.
//
// Given drivers[0..D) and shipments[0..S), it constructs an N×N matrix with
// N = max(D, S), where M[i][j] = score.Score(shipments[j], drivers[i]) for
// i<D and j<S, and 0 for any padding row or column. The coordinator is
// responsible for filtering padding out of the final result; this package
// has no opinion on non-square inputs beyond padding them to square.
package matrixbuilder
