package solver

import "fmt"

// CapacityError is returned when BruteForce is invoked with a matrix too
// large to complete in practice (implementation-defined threshold,
// overridable via WithBruteForceMaxN).
type CapacityError struct {
	N   int
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("solver: brute-force n=%d exceeds capacity ceiling %d", e.N, e.Max)
}

// InternalInvariantError signals that a solver detected a broken invariant
// (e.g. no augmenting path where one must exist). This is a bug surface:
// it is never expected to occur for a ProfitMatrix satisfying core's
// Validate, and is surfaced as a distinct error rather than swallowed or
// silently producing a wrong Assignment.
type InternalInvariantError struct {
	Variant Variant
	Stage   string
	Detail  string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("solver: %s: internal invariant violated at %s: %s", e.Variant, e.Stage, e.Detail)
}
