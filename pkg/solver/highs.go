/*
Copyright 2026 The Deckforge Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package solver

import (
	"context"
	"fmt"
	"math"

	highs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/deckforge/card-order-optimizer/pkg/milp"
)

// HiGHS solves models with the HiGHS solver.
type HiGHS struct {
	opts options
}

var _ Solver = (*HiGHS)(nil)

// NewHiGHS returns a HiGHS-backed solver.
func NewHiGHS(opts ...Option) *HiGHS {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &HiGHS{opts: o}
}

// Solve translates the model and runs HiGHS once. The backend runs to
// completion or its configured time limit; there is no mid-solve
// cancellation, so ctx is only consulted before the solve starts.
func (h *HiGHS) Solve(ctx context.Context, m *milp.Model) (*milp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hm := translate(m)

	solveOpts := []highs.SolveOption{
		highs.WithOutput(h.opts.verbose),
	}
	if h.opts.timeLimit > 0 {
		solveOpts = append(solveOpts, highs.WithTimeLimit(h.opts.timeLimit.Seconds()))
	}
	if h.opts.mipGap > 0 {
		solveOpts = append(solveOpts, highs.WithMIPRelGap(h.opts.mipGap))
	}

	sol, err := hm.Solve(solveOpts...)
	if err != nil {
		return nil, fmt.Errorf("highs solve: %w", err)
	}

	switch {
	case sol.IsOptimal():
		values := make([]float64, m.NumVars())
		for i := range values {
			values[i] = sol.Value(i)
		}
		return milp.NewSolution(milp.StatusOptimal, sol.Objective, values), nil
	case sol.IsInfeasible():
		return milp.NewSolution(milp.StatusInfeasible, 0, nil), nil
	case sol.IsUnbounded():
		return milp.NewSolution(milp.StatusUnbounded, 0, nil), nil
	case sol.IsTimeLimit():
		return nil, fmt.Errorf("highs solve: time limit of %s reached before optimality", h.opts.timeLimit)
	default:
		return nil, fmt.Errorf("highs solve: terminal status %v without a solution", sol.Status)
	}
}

// translate converts the solver-agnostic model into HiGHS column/row form.
func translate(m *milp.Model) *highs.Model {
	n := m.NumVars()
	hm := &highs.Model{
		Maximize: false,
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
		VarTypes: make([]highs.VariableType, n),
	}

	for i := 0; i < n; i++ {
		v := milp.Var(i)
		hm.ColCosts[i] = m.Cost(v)
		hm.ColLower[i], hm.ColUpper[i] = m.Bounds(v)
		switch m.Type(v) {
		case milp.Integer, milp.Binary:
			hm.VarTypes[i] = highs.Integer
		default:
			hm.VarTypes[i] = highs.Continuous
		}
	}

	for _, c := range m.Constraints() {
		cols := make([]int, 0, len(c.Terms))
		vals := make([]float64, 0, len(c.Terms))
		for _, t := range c.Terms {
			cols = append(cols, int(t.Var))
			vals = append(vals, t.Coeff)
		}
		switch c.Sense {
		case milp.LessEqual:
			hm.AddSparseRow(math.Inf(-1), cols, vals, c.RHS)
		case milp.GreaterEqual:
			hm.AddSparseRow(c.RHS, cols, vals, math.Inf(1))
		case milp.Equal:
			hm.AddSparseRow(c.RHS, cols, vals, c.RHS)
		}
	}
	return hm
}
