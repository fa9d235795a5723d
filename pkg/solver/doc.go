// Package solver submits MILP models to an external solving backend.
//
// The package defines the Solver contract the optimizer depends on and ships
// one implementation backed by the HiGHS solver. The contract is
// deliberately narrow:
//
//	solution, err := s.Solve(ctx, model)
//
// One solve attempt per call, never retried internally. A solve that
// terminates on a time or resource limit before proving optimality is
// reported as an error, not as a silent partial result. Ties among multiple
// optimal solutions are backend-dependent; the contract does not promise
// solution uniqueness.
package solver
