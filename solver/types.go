package solver

import "fmt"

// Variant selects which algorithm Solve dispatches to.
type Variant int

const (
	// JonkerVolgenant is the default variant: successive shortest paths
	// with vertex potentials.
	JonkerVolgenant Variant = iota
	// BellmanFord runs successive shortest paths via a per-stage residual
	// graph solved with Bellman–Ford.
	BellmanFord
	// Classic is the matrix-reduction Hungarian algorithm under exact
	// rational arithmetic.
	Classic
	// KuhnMunkres builds a bipartite graph and delegates to the
	// bipartite package's matching primitive.
	KuhnMunkres
	// BruteForce enumerates all permutations; reference oracle for small n.
	BruteForce
)

func (v Variant) String() string {
	switch v {
	case JonkerVolgenant:
		return "jonker-volgenant"
	case BellmanFord:
		return "bellman-ford"
	case Classic:
		return "classic"
	case KuhnMunkres:
		return "kuhn-munkres"
	case BruteForce:
		return "brute-force"
	default:
		return fmt.Sprintf("solver.Variant(%d)", int(v))
	}
}

// StageEvent is reported to an OnStage hook, if configured, at coarse
// algorithm checkpoints. It exists purely for caller-side observability
// (progress bars, tracing) and never affects solver behavior.
type StageEvent struct {
	Variant Variant
	Stage   string // e.g. "augment", "cover-adjust", "permutation"
	Detail  string
}

// Options configures a single Solve call.
type Options struct {
	bruteForceMaxN int
	onStage        func(StageEvent)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithBruteForceMaxN overrides the brute-force capacity ceiling (default
// 12). Solve(BruteForce) on a matrix larger than this returns a
// CapacityError instead of attempting n! enumeration.
func WithBruteForceMaxN(max int) Option {
	return func(o *Options) { o.bruteForceMaxN = max }
}

// WithOnStage installs a stage-observability hook.
func WithOnStage(fn func(StageEvent)) Option {
	return func(o *Options) { o.onStage = fn }
}

func defaultOptions() Options {
	return Options{bruteForceMaxN: 12}
}

func (o *Options) report(variant Variant, stage, detail string) {
	if o.onStage != nil {
		o.onStage(StageEvent{Variant: variant, Stage: stage, Detail: detail})
	}
}
