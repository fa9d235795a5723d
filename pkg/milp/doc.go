// Package milp provides a minimal, solver-agnostic representation of a
// mixed-integer linear program: variables with bounds and domains, linear
// constraints, and a linear minimize objective.
//
// Models are built incrementally and handed to a solver adapter
// (pkg/solver) for translation into a concrete backend. Variables are
// referenced by opaque handles so callers can map solution values back to
// their own domain without string lookups:
//
//	m := milp.NewModel()
//	x := m.AddVar("buy/card/vendor", milp.Integer, 0, 2, 4.0)
//	a := m.AddBinary("active/vendor", 2.0)
//	m.AddConstraint("link", milp.LessEqual, 0, milp.Term{Var: x, Coeff: 1}, milp.Term{Var: a, Coeff: -2})
//
// The package intentionally supports only what the purchase model needs:
// no quadratic terms, no maximization, no SOS sets.
package milp
