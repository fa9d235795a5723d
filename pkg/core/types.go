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

// Item is a single entry on the shopping list.
type Item struct {
	// Name identifies the card. Names are matched case-insensitively by the
	// loaders, which normalize them to lower case before building a Problem.
	Name string

	// Quantity is the number of copies to purchase. Required items must have
	// Quantity >= 1. For optional items it is the quantity purchased if the
	// item is selected at all (usually 1).
	Quantity int

	// Optional marks items the optimizer may skip entirely.
	Optional bool

	// Tags are the category labels used by aggregate tag constraints.
	Tags []string
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks the item's own fields.
func (i Item) Validate() error {
	if i.Name == "" {
		return &ConfigurationError{Subject: "(unnamed item)", Reason: "item name must not be empty"}
	}
	if i.Quantity < 1 {
		return &ConfigurationError{
			Subject: i.Name,
			Reason:  fmt.Sprintf("quantity must be >= 1, got %d", i.Quantity),
		}
	}
	return nil
}

// Vendor is a seller items can be purchased from.
type Vendor struct {
	// Name identifies the vendor, matched case-insensitively by the loaders.
	Name string

	// ShippingCost is the flat fee charged once if anything is bought from
	// this vendor.
	ShippingCost float64

	// Discount is a price multiplier in (0, 1] applied to this vendor's unit
	// prices. Zero means no discount configured.
	Discount float64
}

// Validate checks the vendor's own fields.
func (v Vendor) Validate() error {
	if v.Name == "" {
		return &ConfigurationError{Subject: "(unnamed vendor)", Reason: "vendor name must not be empty"}
	}
	if v.ShippingCost < 0 {
		return &ConfigurationError{
			Subject: v.Name,
			Reason:  fmt.Sprintf("shipping cost must be >= 0, got %.2f", v.ShippingCost),
		}
	}
	if v.Discount < 0 || v.Discount > 1 {
		return &ConfigurationError{
			Subject: v.Name,
			Reason:  fmt.Sprintf("discount must be between 0 and 1, got %.2f", v.Discount),
		}
	}
	return nil
}

// TagConstraint bounds the number of items carrying a tag that end up in the
// order. Nil fields are unconstrained. Target, when set, is an equality
// constraint and takes precedence over Min and Max.
type TagConstraint struct {
	Min    *int
	Max    *int
	Target *int
}

// Validate checks internal consistency of the bounds. A target conflicting
// with a stricter min/max is a configuration error, not a solver
// infeasibility.
func (c TagConstraint) Validate(tag string) error {
	for name, b := range map[string]*int{"min": c.Min, "max": c.Max, "target": c.Target} {
		if b != nil && *b < 0 {
			return &ConfigurationError{
				Subject: tag,
				Reason:  fmt.Sprintf("tag %s bound must be >= 0, got %d", name, *b),
			}
		}
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return &ConfigurationError{
			Subject: tag,
			Reason:  fmt.Sprintf("tag minimum %d exceeds maximum %d", *c.Min, *c.Max),
		}
	}
	if c.Target != nil {
		if c.Min != nil && *c.Target < *c.Min {
			return &ConfigurationError{
				Subject: tag,
				Reason:  fmt.Sprintf("tag target %d conflicts with minimum %d", *c.Target, *c.Min),
			}
		}
		if c.Max != nil && *c.Target > *c.Max {
			return &ConfigurationError{
				Subject: tag,
				Reason:  fmt.Sprintf("tag target %d conflicts with maximum %d", *c.Target, *c.Max),
			}
		}
	}
	return nil
}

// IsZero reports whether no bound is set.
func (c TagConstraint) IsZero() bool {
	return c.Min == nil && c.Max == nil && c.Target == nil
}

// String renders the constraint for reports and diagnostics.
func (c TagConstraint) String() string {
	if c.Target != nil {
		return fmt.Sprintf("target=%d", *c.Target)
	}
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("min=%d max=%d", *c.Min, *c.Max)
	case c.Min != nil:
		return fmt.Sprintf("min=%d", *c.Min)
	case c.Max != nil:
		return fmt.Sprintf("max=%d", *c.Max)
	}
	return "unconstrained"
}
