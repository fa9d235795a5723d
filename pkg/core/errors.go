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

package core

import "fmt"

// ConstraintFamily names a group of constraints for infeasibility diagnosis.
type ConstraintFamily string

const (
	// FamilyAvailability covers required items not sold by any vendor.
	FamilyAvailability ConstraintFamily = "required-item-availability"
	// FamilyTagMinimum covers tag minimums exceeding the candidate pool.
	FamilyTagMinimum ConstraintFamily = "tag-minimum"
	// FamilyTagMaximum covers tag maximums below the non-excludable required count.
	FamilyTagMaximum ConstraintFamily = "tag-maximum"
	// FamilyTagTarget covers unreachable tag targets.
	FamilyTagTarget ConstraintFamily = "tag-target"
	// FamilyOptionalMinimum covers a minimum optional-item count exceeding the pool.
	FamilyOptionalMinimum ConstraintFamily = "optional-minimum"
	// FamilyInteraction is the fallback when no single family explains the
	// infeasibility in isolation.
	FamilyInteraction ConstraintFamily = "interaction"
)

// Diagnosis explains why a model is believed to be infeasible. It is a
// best-effort hint, not a certificate: Certain is false when the failure could
// only be attributed to an interaction of multiple constraint families.
type Diagnosis struct {
	Family  ConstraintFamily
	Subject string
	Detail  string
	Certain bool
}

func (d Diagnosis) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("%s: %s", d.Family, d.Detail)
	}
	return fmt.Sprintf("%s (%s): %s", d.Family, d.Subject, d.Detail)
}

// ConfigurationError reports invalid input detected before solving. It always
// names the offending item, vendor or tag and is never retried.
type ConfigurationError struct {
	// Subject is the item, vendor or tag name the error is about.
	Subject string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Subject, e.Reason)
}

// SolverError reports that the backend solver failed to run or exceeded a
// hard resource limit. One solve attempt per call; never retried internally.
type SolverError struct {
	Reason string
	Err    error
}

func (e *SolverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("solver failed: %s", e.Reason)
}

func (e *SolverError) Unwrap() error { return e.Err }

// InfeasibleError reports that no allocation satisfies the constraints. It is
// not necessarily a bug: an over-constrained configuration is a legitimate
// outcome, surfaced as an actionable report rather than a crash.
type InfeasibleError struct {
	Diagnosis Diagnosis
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible allocation: %s", e.Diagnosis)
}

// UnboundedError reports an unbounded model. Every purchase variable carries
// an upper bound, so this indicates an internal modeling defect.
type UnboundedError struct{}

func (e *UnboundedError) Error() string {
	return "model is unbounded: internal modeling defect (missing variable bound)"
}
