package coordinator

import (
	"context"

	"github.com/fleetmatch/assignsolve/core"
	"github.com/fleetmatch/assignsolve/matrixbuilder"
	"github.com/fleetmatch/assignsolve/solver"
)

// Options configures a single Assign call.
type Options struct {
	variant    solver.Variant
	solverOpts []solver.Option
	ctx        context.Context
}

// Option is a functional option for Assign.
type Option func(*Options)

// WithVariant selects which solver.Variant to run. Default is
// solver.JonkerVolgenant.
func WithVariant(v solver.Variant) Option {
	return func(o *Options) { o.variant = v }
}

// WithSolverOptions forwards functional options to the underlying
// solver.Solve call (e.g. solver.WithBruteForceMaxN).
func WithSolverOptions(opts ...solver.Option) Option {
	return func(o *Options) { o.solverOpts = append(o.solverOpts, opts...) }
}

// WithContext installs a best-effort pre-solve abort point: if ctx is
// already done before the synchronous solve begins, Assign returns
// ctx.Err() without building a matrix. Solving itself is not cancellable
// mid-flight — this is strictly a check at the boundary, not a
// cancellable solver.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

func defaultOptions() Options {
	return Options{variant: solver.JonkerVolgenant, ctx: context.Background()}
}

// Assign builds a padded profit matrix from drivers and shipments, solves
// it with the configured variant, and returns one DriverAssignment per
// real driver matched to a real shipment, filtering out any pairing that
// touches a padding row or column.
//
// Order is significant: entries follow driver order. When there are more
// drivers than shipments, drivers matched to a padding column have no
// entry, so the slice is shorter than drivers.
func Assign(drivers, shipments []string, opts ...Option) ([]core.DriverAssignment, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.ctx.Err(); err != nil {
		return nil, err
	}

	matrix := matrixbuilder.Build(drivers, shipments)

	assignment, err := solver.Solve(matrix, cfg.variant, cfg.solverOpts...)
	if err != nil {
		return nil, err
	}

	d := len(drivers)
	s := len(shipments)
	result := make([]core.DriverAssignment, 0, d)
	for row, col := range assignment {
		if row >= d || col >= s {
			continue
		}
		result = append(result, core.DriverAssignment{
			Driver:   drivers[row],
			Shipment: shipments[col],
			Score:    matrix.At(row, col),
		})
	}

	return result, nil
}
