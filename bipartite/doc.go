// Package bipartite implements a generic, reusable minimum-weight perfect
// bipartite matching primitive: given an N×N weighted complete bipartite
// graph between a left node set and a right node set, find a perfect
// matching minimizing total edge weight.
//
// The solver package's Kuhn–Munkres variant treats this as a black-box
// dependency — its own code is just edge construction and result
// unpacking. This primitive itself is a Kuhn–Munkres implementation with
// row/column potentials and augmenting columns.
package bipartite
