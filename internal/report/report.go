// Package report renders an allocation result as the human-readable
// purchasing plan written next to the configuration.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deckforge/card-order-optimizer/internal/pricing"
	"github.com/deckforge/card-order-optimizer/pkg/core"
)

const divider = "============================================================"

// Write renders the purchasing plan.
func Write(w io.Writer, res *core.AllocationResult, avail pricing.Availability) error {
	var b strings.Builder

	b.WriteString("Status: Optimal\n\n")

	mandatory, optional := 0, 0
	for _, order := range res.Orders {
		fmt.Fprintf(&b, "Use vendor: %s (shipping: $%.2f)\n", order.Vendor, order.Shipping)
		for _, line := range order.Lines {
			qty := ""
			if line.Quantity > 1 {
				qty = fmt.Sprintf("%dx ", line.Quantity)
			}
			suffix := ""
			if line.Optional {
				suffix = " [OPTIONAL]"
				optional += line.Quantity
			} else {
				mandatory += line.Quantity
			}
			fmt.Fprintf(&b, "  Buy %s%s at $%.2f%s\n", qty, line.Item, line.UnitPrice, suffix)
		}
		fmt.Fprintf(&b, "  Subtotal for %s: $%.2f\n\n", order.Vendor, order.Total())
	}

	fmt.Fprintf(&b, "Total cost (including shipping): $%.2f\n", res.Total)
	if res.Penalty > 0 {
		fmt.Fprintf(&b, "  of which vendor penalty (%d vendors): $%.2f\n", res.ActiveVendors(), res.Penalty)
	}
	fmt.Fprintf(&b, "Cards purchased: %d mandatory, %d optional\n", mandatory, optional)

	if len(res.Tags) > 0 {
		b.WriteString("\nTag summary:\n")
		for _, t := range res.Tags {
			state := "satisfied"
			if !t.Satisfied() {
				state = "VIOLATED"
			}
			fmt.Fprintf(&b, "  %s: %d (%s) %s\n", t.Tag, t.Count, t.Constraint, state)
		}
	}

	if len(res.SkippedOptional) > 0 {
		fmt.Fprintf(&b, "\n%s\n", divider)
		fmt.Fprintf(&b, "OPTIONAL CARDS NOT PURCHASED (%d):\n", len(res.SkippedOptional))
		b.WriteString("The following optional cards were available but not selected:\n\n")
		for _, card := range res.SkippedOptional {
			fmt.Fprintf(&b, "  - %s\n", card)
		}
	}

	unavailable := append(append([]string{}, avail.RequiredUnavailable...), avail.OptionalUnavailable...)
	if len(unavailable) > 0 {
		fmt.Fprintf(&b, "\n%s\n", divider)
		fmt.Fprintf(&b, "UNAVAILABLE CARDS (%d):\n", len(unavailable))
		b.WriteString("The following cards were not available from any vendor:\n\n")
		for _, card := range unavailable {
			fmt.Fprintf(&b, "  - %s\n", card)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the purchasing plan to the given path.
func WriteFile(path string, res *core.AllocationResult, avail pricing.Availability) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()
	if err := Write(f, res, avail); err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}
	return f.Sync()
}
