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

import (
	"fmt"
	"sort"
)

// Problem is a fully materialized optimization input: the shopping list, the
// competing vendors, the price snapshot and the aggregate constraints. It is
// the only contract between the loaders and the optimizer.
type Problem struct {
	Items   []Item
	Vendors []Vendor
	Prices  PriceTable

	// Tags maps tag name to its aggregate constraint.
	Tags map[string]TagConstraint

	// VendorPenalty is added to the objective once per activated vendor to
	// discourage splitting the order across many vendors.
	VendorPenalty float64

	// MinOptional is a floor on the number of optional items included in the
	// order. Loaders clamp it to the number of available optional items.
	MinOptional int
}

// Item returns the item with the given name, if present.
func (p *Problem) Item(name string) (Item, bool) {
	for _, it := range p.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// RequiredItems returns the non-optional items in input order.
func (p *Problem) RequiredItems() []Item {
	var out []Item
	for _, it := range p.Items {
		if !it.Optional {
			out = append(out, it)
		}
	}
	return out
}

// OptionalItems returns the optional items in input order.
func (p *Problem) OptionalItems() []Item {
	var out []Item
	for _, it := range p.Items {
		if it.Optional {
			out = append(out, it)
		}
	}
	return out
}

// TagNames returns the constrained tag names in sorted order, for
// deterministic model construction and diagnosis.
func (p *Problem) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for tag := range p.Tags {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

// Validate checks the problem before model construction. Every failure is a
// ConfigurationError naming the offending item, vendor or tag; none of these
// conditions is ever allowed to surface as a solver infeasibility.
func (p *Problem) Validate() error {
	if len(p.Items) == 0 {
		return &ConfigurationError{Subject: "items", Reason: "shopping list is empty"}
	}
	if len(p.Vendors) == 0 {
		return &ConfigurationError{Subject: "vendors", Reason: "no vendors configured"}
	}
	if p.VendorPenalty < 0 {
		return &ConfigurationError{
			Subject: "vendor_penalty",
			Reason:  fmt.Sprintf("must be >= 0, got %.2f", p.VendorPenalty),
		}
	}
	if p.MinOptional < 0 {
		return &ConfigurationError{
			Subject: "min_optional_cards",
			Reason:  fmt.Sprintf("must be >= 0, got %d", p.MinOptional),
		}
	}

	seenItems := make(map[string]bool, len(p.Items))
	for _, it := range p.Items {
		if err := it.Validate(); err != nil {
			return err
		}
		if seenItems[it.Name] {
			return &ConfigurationError{Subject: it.Name, Reason: "duplicate item"}
		}
		seenItems[it.Name] = true
	}

	seenVendors := make(map[string]bool, len(p.Vendors))
	for _, v := range p.Vendors {
		if err := v.Validate(); err != nil {
			return err
		}
		if seenVendors[v.Name] {
			return &ConfigurationError{Subject: v.Name, Reason: "duplicate vendor"}
		}
		seenVendors[v.Name] = true
	}

	for key, price := range p.Prices {
		if price < 0 {
			return &ConfigurationError{
				Subject: key.Item,
				Reason:  fmt.Sprintf("negative price %.2f at vendor %s", price, key.Vendor),
			}
		}
	}

	// A required item no vendor sells can never be allocated; fail fast here
	// instead of letting the solver report an opaque infeasibility.
	for _, it := range p.RequiredItems() {
		if !p.Prices.Sells(it.Name) {
			return &ConfigurationError{
				Subject: it.Name,
				Reason:  "required item is not sold by any vendor",
			}
		}
	}

	for _, tag := range p.TagNames() {
		if err := p.Tags[tag].Validate(tag); err != nil {
			return err
		}
		if !p.tagReferenced(tag) {
			return &ConfigurationError{
				Subject: tag,
				Reason:  "tag constraint references no item on the shopping list",
			}
		}
	}
	return nil
}

func (p *Problem) tagReferenced(tag string) bool {
	for _, it := range p.Items {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}
