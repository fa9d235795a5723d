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

// PurchaseLine is one item bought from one vendor.
type PurchaseLine struct {
	Item      string
	Quantity  int
	UnitPrice float64
	Optional  bool
}

// Cost returns the line total.
func (l PurchaseLine) Cost() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// VendorOrder is everything purchased from a single activated vendor.
type VendorOrder struct {
	Vendor string
	Lines  []PurchaseLine

	// Subtotal is the sum of line costs, excluding shipping.
	Subtotal float64

	// Shipping is the vendor's flat fee, charged exactly once.
	Shipping float64
}

// Total returns subtotal plus shipping for this vendor.
func (o VendorOrder) Total() float64 {
	return o.Subtotal + o.Shipping
}

// TagCount reports the realized count for a constrained tag alongside the
// originally configured bound.
type TagCount struct {
	Tag        string
	Count      int
	Constraint TagConstraint
}

// Satisfied reports whether the realized count respects the bound.
func (t TagCount) Satisfied() bool {
	c := t.Constraint
	if c.Target != nil {
		return t.Count == *c.Target
	}
	if c.Min != nil && t.Count < *c.Min {
		return false
	}
	if c.Max != nil && t.Count > *c.Max {
		return false
	}
	return true
}

// AllocationResult is the purchasing plan produced by one successful solve.
// Produced once per run; callers must treat it as immutable.
type AllocationResult struct {
	// Orders holds one entry per activated vendor, sorted by vendor name.
	Orders []VendorOrder

	// Penalty is vendor_penalty times the number of activated vendors.
	Penalty float64

	// Total is the grand total: item costs + shipping + penalty.
	Total float64

	// Tags reports realized counts for every constrained tag.
	Tags []TagCount

	// SelectedOptional lists optional items included in the order, sorted.
	SelectedOptional []string

	// SkippedOptional lists optional items the optimizer left out, sorted.
	SkippedOptional []string
}

// ActiveVendors returns the number of vendors anything was bought from.
func (r *AllocationResult) ActiveVendors() int {
	return len(r.Orders)
}

// Quantity returns the total purchased quantity of the named item across all
// vendors.
func (r *AllocationResult) Quantity(item string) int {
	total := 0
	for _, o := range r.Orders {
		for _, l := range o.Lines {
			if l.Item == item {
				total += l.Quantity
			}
		}
	}
	return total
}

// Order returns the order placed at the named vendor, if any.
func (r *AllocationResult) Order(vendor string) (VendorOrder, bool) {
	for _, o := range r.Orders {
		if o.Vendor == vendor {
			return o, true
		}
	}
	return VendorOrder{}, false
}
