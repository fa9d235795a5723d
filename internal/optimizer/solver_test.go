package optimizer

import (
	"context"
	"fmt"
	"math"

	"github.com/deckforge/card-order-optimizer/pkg/milp"
	"github.com/deckforge/card-order-optimizer/pkg/solver"
)

const feasibilityTolerance = 1e-9

// exhaustiveSolver enumerates every integer assignment within variable
// bounds and keeps the cheapest feasible one. Test fixtures keep the search
// space tiny; the guard below catches a fixture that would not.
type exhaustiveSolver struct{}

var _ solver.Solver = exhaustiveSolver{}

func (exhaustiveSolver) Solve(_ context.Context, m *milp.Model) (*milp.Solution, error) {
	n := m.NumVars()
	lower := make([]int, n)
	upper := make([]int, n)
	space := 1.0
	for i := 0; i < n; i++ {
		lo, hi := m.Bounds(milp.Var(i))
		lower[i] = int(math.Ceil(lo))
		upper[i] = int(math.Floor(hi))
		space *= float64(upper[i] - lower[i] + 1)
	}
	if space > 1e6 {
		return nil, fmt.Errorf("fixture too large for exhaustive search: %.0f assignments", space)
	}

	assign := make([]int, n)
	best := math.Inf(1)
	var bestValues []float64

	var walk func(i int)
	walk = func(i int) {
		if i == n {
			if !feasible(m, assign) {
				return
			}
			obj := objectiveValue(m, assign)
			if obj < best-feasibilityTolerance {
				best = obj
				bestValues = make([]float64, n)
				for j, v := range assign {
					bestValues[j] = float64(v)
				}
			}
			return
		}
		for v := lower[i]; v <= upper[i]; v++ {
			assign[i] = v
			walk(i + 1)
		}
	}
	walk(0)

	if bestValues == nil {
		return milp.NewSolution(milp.StatusInfeasible, 0, nil), nil
	}
	return milp.NewSolution(milp.StatusOptimal, best, bestValues), nil
}

func feasible(m *milp.Model, assign []int) bool {
	for _, c := range m.Constraints() {
		lhs := 0.0
		for _, term := range c.Terms {
			lhs += term.Coeff * float64(assign[term.Var])
		}
		switch c.Sense {
		case milp.LessEqual:
			if lhs > c.RHS+feasibilityTolerance {
				return false
			}
		case milp.GreaterEqual:
			if lhs < c.RHS-feasibilityTolerance {
				return false
			}
		case milp.Equal:
			if math.Abs(lhs-c.RHS) > feasibilityTolerance {
				return false
			}
		}
	}
	return true
}

func objectiveValue(m *milp.Model, assign []int) float64 {
	obj := 0.0
	for i, v := range assign {
		obj += m.Cost(milp.Var(i)) * float64(v)
	}
	return obj
}

// stubSolver returns a canned solution or error, for exercising the
// pipeline's status handling.
type stubSolver struct {
	sol *milp.Solution
	err error
}

func (s stubSolver) Solve(context.Context, *milp.Model) (*milp.Solution, error) {
	return s.sol, s.err
}
