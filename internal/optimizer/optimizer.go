package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/deckforge/card-order-optimizer/pkg/core"
	"github.com/deckforge/card-order-optimizer/pkg/milp"
	"github.com/deckforge/card-order-optimizer/pkg/solver"
)

// objectiveTolerance bounds the accepted drift between the solver's reported
// objective and the total recomputed from the extracted allocation.
const objectiveTolerance = 1e-6

// Optimizer runs the build → solve → extract pipeline for purchasing
// problems. It is safe to reuse across runs; each run is independent.
type Optimizer struct {
	solver  solver.Solver
	log     logr.Logger
	metrics *metrics
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger used by the pipeline.
func WithLogger(log logr.Logger) Option {
	return func(o *Optimizer) { o.log = log }
}

// WithRegisterer registers the optimizer's metrics with the given registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Optimizer) { o.metrics = newMetrics(reg) }
}

// New creates an Optimizer using the given solver backend.
func New(s solver.Solver, opts ...Option) (*Optimizer, error) {
	if s == nil {
		return nil, fmt.Errorf("solver cannot be nil")
	}
	o := &Optimizer{solver: s, log: logr.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = newMetrics(nil)
	}
	return o, nil
}

// Optimize solves the problem and returns the minimum-cost allocation.
//
// Errors follow the core taxonomy: ConfigurationError before any solve,
// SolverError when the backend fails, InfeasibleError (with diagnosis) when
// no allocation satisfies the constraints, UnboundedError on an internal
// modeling defect. None are retried internally and no constraint is ever
// relaxed automatically; relaxation is the caller's decision.
func (o *Optimizer) Optimize(ctx context.Context, p *core.Problem) (*core.AllocationResult, error) {
	start := time.Now()

	if err := p.Validate(); err != nil {
		o.metrics.observe("config_error", time.Since(start))
		return nil, err
	}

	model, idx, err := buildModel(p)
	if err != nil {
		o.metrics.observe("config_error", time.Since(start))
		return nil, err
	}
	o.log.V(1).Info("model built",
		"variables", model.NumVars(),
		"constraints", model.NumConstraints(),
		"items", len(p.Items),
		"vendors", len(p.Vendors))

	sol, err := o.solver.Solve(ctx, model)
	if err != nil {
		o.metrics.observe("solver_error", time.Since(start))
		return nil, &core.SolverError{Reason: "solve attempt failed", Err: err}
	}

	switch sol.Status() {
	case milp.StatusOptimal:
		res := extractResult(p, sol, idx)
		if !scalar.EqualWithinAbs(res.Total, sol.Objective(), objectiveTolerance) {
			o.log.Info("extracted total deviates from solver objective",
				"total", res.Total, "objective", sol.Objective())
		}
		o.metrics.observe("optimal", time.Since(start))
		o.metrics.lastCost.Set(res.Total)
		o.log.Info("allocation found",
			"total", res.Total,
			"activeVendors", res.ActiveVendors(),
			"selectedOptional", len(res.SelectedOptional))
		return res, nil

	case milp.StatusInfeasible:
		d := diagnose(p)
		o.metrics.observe("infeasible", time.Since(start))
		o.log.Info("model infeasible", "diagnosis", d.String())
		return nil, &core.InfeasibleError{Diagnosis: d}

	case milp.StatusUnbounded:
		o.metrics.observe("unbounded", time.Since(start))
		return nil, &core.UnboundedError{}

	default:
		o.metrics.observe("solver_error", time.Since(start))
		return nil, &core.SolverError{Reason: fmt.Sprintf("terminal status %s without a solution", sol.Status())}
	}
}
