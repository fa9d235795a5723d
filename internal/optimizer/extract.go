package optimizer

import (
	"math"
	"sort"

	"github.com/deckforge/card-order-optimizer/pkg/core"
	"github.com/deckforge/card-order-optimizer/pkg/milp"
)

// binaryThreshold interprets floating solver output for binary variables.
const binaryThreshold = 0.5

// extractResult converts an optimal assignment back into domain terms.
// Integer-declared variables may carry small floating error, so quantities
// are rounded to the nearest integer, never truncated.
func extractResult(p *core.Problem, sol *milp.Solution, idx *modelIndex) *core.AllocationResult {
	res := &core.AllocationResult{}

	selected := make(map[string]bool)
	for _, it := range p.OptionalItems() {
		if sol.Value(idx.selected[it.Name]) >= binaryThreshold {
			selected[it.Name] = true
			res.SelectedOptional = append(res.SelectedOptional, it.Name)
		} else {
			res.SkippedOptional = append(res.SkippedOptional, it.Name)
		}
	}
	sort.Strings(res.SelectedOptional)
	sort.Strings(res.SkippedOptional)

	vendors := make([]core.Vendor, len(p.Vendors))
	copy(vendors, p.Vendors)
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].Name < vendors[j].Name })

	for _, v := range vendors {
		if sol.Value(idx.active[v.Name]) < binaryThreshold {
			continue
		}
		order := core.VendorOrder{Vendor: v.Name, Shipping: v.ShippingCost}
		for _, it := range p.Items {
			bv, ok := idx.buy[buyKey{item: it.Name, vendor: v.Name}]
			if !ok {
				continue
			}
			qty := int(math.Round(sol.Value(bv)))
			if qty <= 0 {
				continue
			}
			price, _ := p.Prices.Price(it.Name, v.Name)
			line := core.PurchaseLine{Item: it.Name, Quantity: qty, UnitPrice: price, Optional: it.Optional}
			order.Lines = append(order.Lines, line)
			order.Subtotal += line.Cost()
		}
		if len(order.Lines) == 0 {
			// A costless activation (zero shipping, zero penalty) can appear
			// among tied optima; an empty order carries no information.
			continue
		}
		res.Orders = append(res.Orders, order)
	}

	res.Penalty = p.VendorPenalty * float64(len(res.Orders))
	for _, o := range res.Orders {
		res.Total += o.Subtotal + o.Shipping
	}
	res.Total += res.Penalty

	for _, tag := range p.TagNames() {
		count := 0
		for _, it := range p.Items {
			if !it.HasTag(tag) {
				continue
			}
			if !it.Optional || selected[it.Name] {
				count++
			}
		}
		res.Tags = append(res.Tags, core.TagCount{Tag: tag, Count: count, Constraint: p.Tags[tag]})
	}

	return res
}
