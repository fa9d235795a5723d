package optimizer

import (
	"fmt"

	"github.com/deckforge/card-order-optimizer/pkg/core"
	"github.com/deckforge/card-order-optimizer/pkg/milp"
)

type buyKey struct {
	item   string
	vendor string
}

// modelIndex maps decision variables back to domain terms for extraction.
type modelIndex struct {
	// buy maps (item, vendor) to the integer purchase-quantity variable.
	buy map[buyKey]milp.Var
	// active maps vendor name to its binary activation variable.
	active map[string]milp.Var
	// selected maps optional item name to its binary inclusion variable.
	selected map[string]milp.Var
}

// buildModel converts a validated problem into a MILP instance plus the
// reverse index. The caller is responsible for running Problem.Validate
// first; buildModel only guards invariants validation cannot see.
func buildModel(p *core.Problem) (*milp.Model, *modelIndex, error) {
	m := milp.NewModel()
	idx := &modelIndex{
		buy:      make(map[buyKey]milp.Var),
		active:   make(map[string]milp.Var),
		selected: make(map[string]milp.Var),
	}

	// Activation variables carry shipping and the vendor penalty, so
	// minimization drives them to 0 for unused vendors. Only the upper-bound
	// direction of the activation linkage needs a hard constraint.
	for _, v := range p.Vendors {
		idx.active[v.Name] = m.AddBinary("active/"+v.Name, v.ShippingCost+p.VendorPenalty)
	}

	for _, it := range p.OptionalItems() {
		idx.selected[it.Name] = m.AddBinary("selected/"+it.Name, 0)
	}

	for _, it := range p.Items {
		cap := float64(it.Quantity)
		for _, v := range p.Vendors {
			price, ok := p.Prices.Price(it.Name, v.Name)
			if !ok {
				continue
			}
			bv := m.AddVar(fmt.Sprintf("buy/%s/%s", it.Name, v.Name), milp.Integer, 0, cap, price)
			idx.buy[buyKey{item: it.Name, vendor: v.Name}] = bv

			// buy <= cap * active, with the item's own cap as coefficient to
			// keep the linear relaxation tight.
			m.AddConstraint(
				fmt.Sprintf("link/%s/%s", it.Name, v.Name),
				milp.LessEqual, 0,
				milp.Term{Var: bv, Coeff: 1},
				milp.Term{Var: idx.active[v.Name], Coeff: -cap},
			)
		}
	}

	for _, it := range p.Items {
		var terms []milp.Term
		for _, v := range p.Vendors {
			if bv, ok := idx.buy[buyKey{item: it.Name, vendor: v.Name}]; ok {
				terms = append(terms, milp.Term{Var: bv, Coeff: 1})
			}
		}

		if !it.Optional {
			if len(terms) == 0 {
				// Validate rejects this; re-checked so a misused builder
				// still fails as a configuration error, never a solve.
				return nil, nil, &core.ConfigurationError{
					Subject: it.Name,
					Reason:  "required item is not sold by any vendor",
				}
			}
			m.AddConstraint("demand/"+it.Name, milp.Equal, float64(it.Quantity), terms...)
			continue
		}

		sel := idx.selected[it.Name]
		if len(terms) == 0 {
			// Optional item nobody sells: it can never be included.
			m.AddConstraint("select/"+it.Name, milp.Equal, 0, milp.Term{Var: sel, Coeff: 1})
			continue
		}
		terms = append(terms, milp.Term{Var: sel, Coeff: -float64(it.Quantity)})
		m.AddConstraint("demand/"+it.Name, milp.Equal, 0, terms...)
	}

	for _, tag := range p.TagNames() {
		c := p.Tags[tag]

		// Required items carrying the tag are always included and contribute
		// a constant; only optional selections are decision terms.
		base := 0
		var terms []milp.Term
		for _, it := range p.Items {
			if !it.HasTag(tag) {
				continue
			}
			if it.Optional {
				terms = append(terms, milp.Term{Var: idx.selected[it.Name], Coeff: 1})
			} else {
				base++
			}
		}

		// Target is an equality and overrides independently configured
		// min/max for the same tag.
		if c.Target != nil {
			m.AddConstraint("tag/"+tag+"/target", milp.Equal, float64(*c.Target-base), terms...)
			continue
		}
		if c.Min != nil {
			m.AddConstraint("tag/"+tag+"/min", milp.GreaterEqual, float64(*c.Min-base), terms...)
		}
		if c.Max != nil {
			m.AddConstraint("tag/"+tag+"/max", milp.LessEqual, float64(*c.Max-base), terms...)
		}
	}

	if p.MinOptional > 0 {
		var terms []milp.Term
		for _, it := range p.OptionalItems() {
			terms = append(terms, milp.Term{Var: idx.selected[it.Name], Coeff: 1})
		}
		m.AddConstraint("optional/min", milp.GreaterEqual, float64(p.MinOptional), terms...)
	}

	return m, idx, nil
}
