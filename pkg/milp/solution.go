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

package milp

// Status is the outcome of a solve attempt.
type Status int

const (
	// StatusOptimal means an optimal assignment was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded means the objective can decrease without limit.
	StatusUnbounded
	// StatusError means the solver failed or hit a resource limit before
	// proving optimality. No assignment is available.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusError:
		return "SolverError"
	}
	return "Unknown"
}

// Solution holds the outcome of one solve. Values are populated only when
// Status is StatusOptimal. Values for integer-declared variables may carry
// small floating error and must be rounded, not truncated, by consumers.
type Solution struct {
	status    Status
	objective float64
	values    []float64
}

// NewSolution constructs a solution. Solver adapters are the only intended
// callers; values must be indexed by Var handle.
func NewSolution(status Status, objective float64, values []float64) *Solution {
	return &Solution{status: status, objective: objective, values: values}
}

// Status returns the solve outcome.
func (s *Solution) Status() Status { return s.status }

// Objective returns the objective value at the solution.
func (s *Solution) Objective() float64 { return s.objective }

// Value returns the solved value of the given variable, or 0 if the solution
// carries no assignment.
func (s *Solution) Value(v Var) float64 {
	if int(v) < 0 || int(v) >= len(s.values) {
		return 0
	}
	return s.values[int(v)]
}
