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

import "sort"

// PriceKey identifies one (item, vendor) offer.
type PriceKey struct {
	Item   string
	Vendor string
}

// PriceTable is the sparse price snapshot the optimizer consumes. A missing
// entry means the vendor does not sell that item. The table is treated as a
// fully materialized, read-only snapshot once a Problem is built.
type PriceTable map[PriceKey]float64

// Price returns the unit price for the given item at the given vendor.
func (t PriceTable) Price(item, vendor string) (float64, bool) {
	p, ok := t[PriceKey{Item: item, Vendor: vendor}]
	return p, ok
}

// Set records an offer.
func (t PriceTable) Set(item, vendor string, price float64) {
	t[PriceKey{Item: item, Vendor: vendor}] = price
}

// Vendors returns the sorted list of vendors selling the given item.
func (t PriceTable) Vendors(item string) []string {
	var vendors []string
	for k := range t {
		if k.Item == item {
			vendors = append(vendors, k.Vendor)
		}
	}
	sort.Strings(vendors)
	return vendors
}

// Sells reports whether any vendor sells the given item.
func (t PriceTable) Sells(item string) bool {
	for k := range t {
		if k.Item == item {
			return true
		}
	}
	return false
}
