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
	"time"

	"github.com/deckforge/card-order-optimizer/pkg/milp"
)

// Solver solves a MILP model to optimality or a terminal status.
//
// Implementations make exactly one attempt per call. The returned error is
// non-nil only for failures to run the backend at all; infeasible and
// unbounded outcomes are reported through the solution status.
type Solver interface {
	Solve(ctx context.Context, m *milp.Model) (*milp.Solution, error)
}

// Option configures a solver backend.
type Option func(*options)

type options struct {
	timeLimit time.Duration
	mipGap    float64
	verbose   bool
}

func defaultOptions() options {
	return options{
		timeLimit: 60 * time.Second,
	}
}

// WithTimeLimit bounds the solve wall-clock time. A solve cut off by the
// limit before proving optimality is reported as a solver error.
func WithTimeLimit(d time.Duration) Option {
	return func(o *options) { o.timeLimit = d }
}

// WithMIPGap sets the relative optimality gap at which the backend may stop.
func WithMIPGap(gap float64) Option {
	return func(o *options) { o.mipGap = gap }
}

// WithVerbose enables backend log output.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}
