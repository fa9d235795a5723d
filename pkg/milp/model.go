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

import "fmt"

// VarType is the domain of a decision variable.
type VarType int

const (
	// Continuous variables take any value within their bounds.
	Continuous VarType = iota
	// Integer variables are restricted to whole numbers within their bounds.
	Integer
	// Binary variables are integers restricted to {0, 1}.
	Binary
)

// Var is an opaque handle to a variable in a Model.
type Var int

// Sense is the comparison direction of a linear constraint.
type Sense int

const (
	// LessEqual constrains the linear expression to be <= RHS.
	LessEqual Sense = iota
	// GreaterEqual constrains the linear expression to be >= RHS.
	GreaterEqual
	// Equal constrains the linear expression to be == RHS.
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "=="
	}
	return fmt.Sprintf("Sense(%d)", int(s))
}

// Term is one coefficient*variable entry of a linear expression.
type Term struct {
	Var   Var
	Coeff float64
}

// Constraint is a named linear constraint. Terms may be empty, in which case
// the constraint compares the constant 0 against RHS; an unsatisfiable empty
// constraint makes the model infeasible, which is intentional (it lets the
// builder encode bounds on counts that contain no decision variables).
type Constraint struct {
	Name  string
	Sense Sense
	RHS   float64
	Terms []Term
}

type column struct {
	name  string
	typ   VarType
	lower float64
	upper float64
	cost  float64
}

// Model is a linear minimize objective over variables plus a set of linear
// constraints. The zero value is not usable; call NewModel.
type Model struct {
	cols []column
	cons []Constraint
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddVar adds a variable with the given domain, bounds and objective
// coefficient, returning its handle.
func (m *Model) AddVar(name string, typ VarType, lower, upper, cost float64) Var {
	m.cols = append(m.cols, column{name: name, typ: typ, lower: lower, upper: upper, cost: cost})
	return Var(len(m.cols) - 1)
}

// AddBinary adds a {0, 1} variable with the given objective coefficient.
func (m *Model) AddBinary(name string, cost float64) Var {
	return m.AddVar(name, Binary, 0, 1, cost)
}

// AddConstraint adds a named linear constraint over the given terms.
func (m *Model) AddConstraint(name string, sense Sense, rhs float64, terms ...Term) {
	m.cons = append(m.cons, Constraint{Name: name, Sense: sense, RHS: rhs, Terms: terms})
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int { return len(m.cols) }

// NumConstraints returns the number of constraints in the model.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Constraints returns the model's constraints in insertion order.
func (m *Model) Constraints() []Constraint { return m.cons }

// Name returns the variable's name.
func (m *Model) Name(v Var) string { return m.cols[v].name }

// Type returns the variable's domain.
func (m *Model) Type(v Var) VarType { return m.cols[v].typ }

// Bounds returns the variable's lower and upper bound.
func (m *Model) Bounds(v Var) (lower, upper float64) {
	return m.cols[v].lower, m.cols[v].upper
}

// Cost returns the variable's objective coefficient.
func (m *Model) Cost(v Var) float64 { return m.cols[v].cost }
