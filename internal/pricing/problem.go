package pricing

import (
	"context"
	"fmt"

	"github.com/deckforge/card-order-optimizer/internal/logging"
	"github.com/deckforge/card-order-optimizer/pkg/core"
)

// Inputs bundles the validated configuration the problem is assembled from.
type Inputs struct {
	Items         []core.Item
	Vendors       []core.Vendor
	Tags          map[string]core.TagConstraint
	VendorPenalty float64
	MinOptional   int
}

// BuildProblem fetches the price snapshot and assembles a validated Problem.
//
// Optional cards no vendor sells are dropped from the list with a warning,
// and the minimum optional-card count is clamped to the remaining optional
// pool, matching how an over-ambitious wish list should degrade. A required
// card no vendor sells is a ConfigurationError: the run fails fast instead
// of producing a partial allocation.
func BuildProblem(ctx context.Context, src Source, in Inputs) (*core.Problem, Availability, error) {
	log := logging.FromContext(ctx)

	rows, err := src.Fetch(ctx)
	if err != nil {
		return nil, Availability{}, fmt.Errorf("fetching prices from %s: %w", src.Name(), err)
	}
	table := BuildTable(rows, in.Vendors)
	avail := SplitAvailability(in.Items, table)

	for _, name := range avail.OptionalUnavailable {
		log.Info("optional card not available from any vendor, dropping", "card", name)
	}

	items := make([]core.Item, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Optional && !table.Sells(it.Name) {
			continue
		}
		items = append(items, it)
	}

	// A tag whose cards were all dropped as unavailable stays in the problem
	// and fails validation below, naming the tag. Constraints are never
	// relaxed automatically; loosening bounds is the caller's decision. The
	// one exception is a max-only bound, which an empty pool satisfies
	// trivially.
	tags := make(map[string]core.TagConstraint, len(in.Tags))
	for tag, c := range in.Tags {
		if !referenced(items, tag) && c.Min == nil && c.Target == nil {
			log.Info("tag maximum references no purchasable card, trivially satisfied", "tag", tag)
			continue
		}
		tags[tag] = c
	}

	minOptional := in.MinOptional
	if pool := len(avail.OptionalAvailable); minOptional > pool {
		log.Info("clamping minimum optional cards to available pool",
			"configured", minOptional, "available", pool)
		minOptional = pool
	}

	p := &core.Problem{
		Items:         items,
		Vendors:       in.Vendors,
		Prices:        table,
		Tags:          tags,
		VendorPenalty: in.VendorPenalty,
		MinOptional:   minOptional,
	}
	if err := p.Validate(); err != nil {
		return nil, avail, err
	}
	return p, avail, nil
}

func referenced(items []core.Item, tag string) bool {
	for _, it := range items {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}
