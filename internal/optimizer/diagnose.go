package optimizer

import (
	"fmt"

	"github.com/deckforge/card-order-optimizer/pkg/core"
)

// diagnose determines which constraint family most likely caused an
// infeasible solve. Each family is checked in isolation, in a fixed order:
// required-item availability, tag minimums, tag maximums, tag targets, then
// the minimum optional-item count. The first family that cannot be satisfied
// on its own wins. When every family passes in isolation the infeasibility
// stems from an interaction of multiple constraints, and the diagnosis says
// so explicitly rather than guessing.
func diagnose(p *core.Problem) core.Diagnosis {
	for _, it := range p.RequiredItems() {
		if !p.Prices.Sells(it.Name) {
			return core.Diagnosis{
				Family:  core.FamilyAvailability,
				Subject: it.Name,
				Detail:  "required item is not sold by any vendor",
				Certain: true,
			}
		}
	}

	for _, tag := range p.TagNames() {
		c := p.Tags[tag]
		if c.Min == nil || c.Target != nil {
			continue
		}
		if pool := tagPool(p, tag); pool < *c.Min {
			return core.Diagnosis{
				Family:  core.FamilyTagMinimum,
				Subject: tag,
				Detail:  fmt.Sprintf("minimum %d exceeds the %d purchasable items carrying the tag", *c.Min, pool),
				Certain: true,
			}
		}
	}

	for _, tag := range p.TagNames() {
		c := p.Tags[tag]
		if c.Max == nil || c.Target != nil {
			continue
		}
		if required := tagRequired(p, tag); required > *c.Max {
			return core.Diagnosis{
				Family:  core.FamilyTagMaximum,
				Subject: tag,
				Detail:  fmt.Sprintf("maximum %d is below the %d required items carrying the tag, which cannot be excluded", *c.Max, required),
				Certain: true,
			}
		}
	}

	for _, tag := range p.TagNames() {
		c := p.Tags[tag]
		if c.Target == nil {
			continue
		}
		required := tagRequired(p, tag)
		pool := tagPool(p, tag)
		if required > *c.Target {
			return core.Diagnosis{
				Family:  core.FamilyTagTarget,
				Subject: tag,
				Detail:  fmt.Sprintf("target %d is below the %d required items carrying the tag", *c.Target, required),
				Certain: true,
			}
		}
		if pool < *c.Target {
			return core.Diagnosis{
				Family:  core.FamilyTagTarget,
				Subject: tag,
				Detail:  fmt.Sprintf("target %d exceeds the %d purchasable items carrying the tag", *c.Target, pool),
				Certain: true,
			}
		}
	}

	if p.MinOptional > 0 {
		pool := 0
		for _, it := range p.OptionalItems() {
			if p.Prices.Sells(it.Name) {
				pool++
			}
		}
		if pool < p.MinOptional {
			return core.Diagnosis{
				Family:  core.FamilyOptionalMinimum,
				Subject: "min_optional_cards",
				Detail:  fmt.Sprintf("minimum of %d optional items exceeds the %d purchasable optional items", p.MinOptional, pool),
				Certain: true,
			}
		}
	}

	return core.Diagnosis{
		Family:  core.FamilyInteraction,
		Detail:  "no single constraint family explains the infeasibility in isolation; an interaction of multiple constraints is the likely cause (best-effort hint, not a proof)",
		Certain: false,
	}
}

// tagRequired counts required items carrying the tag. These are always part
// of the order and can never be excluded to satisfy a maximum.
func tagRequired(p *core.Problem, tag string) int {
	count := 0
	for _, it := range p.RequiredItems() {
		if it.HasTag(tag) {
			count++
		}
	}
	return count
}

// tagPool counts the items carrying the tag that could possibly end up in
// the order: all required items plus the optional ones some vendor sells.
func tagPool(p *core.Problem, tag string) int {
	count := tagRequired(p, tag)
	for _, it := range p.OptionalItems() {
		if it.HasTag(tag) && p.Prices.Sells(it.Name) {
			count++
		}
	}
	return count
}
