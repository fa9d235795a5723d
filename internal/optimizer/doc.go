// Package optimizer turns a purchasing problem into a MILP, solves it, and
// interprets the outcome.
//
// The package follows a pipeline pattern:
//
//	Validate → Build Model → Solve → Extract Result
//	                           └─ Infeasible → Diagnose
//
// Model construction:
//
// For every (item, vendor) pair with a price, an integer buy variable bounded
// by the item's quantity decides how many copies to purchase there. A binary
// activation variable per vendor carries that vendor's shipping cost and the
// global vendor penalty in the objective; buy variables are linked to it with
// tight per-item coefficients (the item's own cap, never a global big-M).
// Optional items get a binary selection variable tied to their purchases, and
// aggregate tag constraints bound the number of selected items per tag.
//
// Error handling:
//
//   - Invalid input fails validation with a ConfigurationError before any
//     solver is involved.
//   - A failed or time-limited solve surfaces as a SolverError.
//   - An infeasible model is diagnosed per constraint family and surfaced as
//     an InfeasibleError carrying the diagnosis.
//   - An unbounded model is an internal defect, surfaced as UnboundedError.
//
// One model build, one solve and one extraction per run; no shared mutable
// state across runs.
package optimizer
