// Package assignsolve is the root of a small, self-contained assignment
// problem solver: given drivers and shipments, it returns an optimal
// one-to-one pairing that maximizes total suitability score.
//
// The interesting engineering lives in the solver subpackage, which
// implements five independent algorithms over the same data model so that
// each can cross-validate the others:
//
//	core/          — ProfitMatrix, Assignment, DriverAssignment, structured errors
//	score/         — suitability scoring for a (driver, shipment) pair
//	matrixbuilder/ — pads driver/shipment lists into a square ProfitMatrix
//	bipartite/     — a reusable weighted-bipartite-matching primitive
//	solver/        — Jonker–Volgenant, Bellman–Ford, Classic Hungarian,
//	                 Kuhn–Munkres, and brute-force variants behind one dispatcher
//	coordinator/   — the single entry point external callers should use
//
// Quick usage:
//
//	pairs, err := coordinator.Assign(
//	    []string{"Alice", "Bob"},
//	    []string{"221B Baker Street", "10 Downing Street"},
//	)
package assignsolve
