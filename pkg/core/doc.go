// Package core provides the domain model for the card order optimizer.
//
// This package contains the entities and relationships a purchasing problem
// is expressed in, independent of any solver:
//
//   - Item: a card on the shopping list, with quantity, tags and optionality
//   - Vendor: a seller with a flat shipping cost and an optional discount
//   - PriceTable: the sparse (item, vendor) -> unit price snapshot
//   - TagConstraint: aggregate min/max/target bounds over tagged items
//   - Problem: a fully validated optimization input
//   - AllocationResult: the per-vendor purchasing plan produced by a solve
//
// It also defines the error taxonomy shared by every layer:
//
//   - ConfigurationError: invalid input, detected before solving
//   - SolverError: the backend solver failed or hit a resource limit
//   - InfeasibleError: no allocation satisfies the constraints (with diagnosis)
//   - UnboundedError: internal modeling defect
//
// The core package is designed to be:
//   - Immutable where possible (value types)
//   - Independent of the MILP layer (pure domain logic)
//   - The only vocabulary callers need to interpret results
package core
