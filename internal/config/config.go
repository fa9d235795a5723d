// Package config loads and validates the optimizer's YAML configuration and
// converts it into the typed domain objects the core consumes.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deckforge/card-order-optimizer/pkg/core"
)

const (
	// DefaultTimeLimit bounds a solve when the config does not set one.
	DefaultTimeLimit = "60s"

	// DefaultResultsFile is where the purchasing plan is written.
	DefaultResultsFile = "results.txt"
)

// TagBounds is the YAML form of a tag constraint. Omitted fields are
// unconstrained; target overrides min/max.
type TagBounds struct {
	Min    *int `yaml:"min,omitempty"`
	Max    *int `yaml:"max,omitempty"`
	Target *int `yaml:"target,omitempty"`
}

// SolverSettings configures the solver backend.
type SolverSettings struct {
	// TimeLimit is a duration string (e.g. "30s", "2m") bounding one solve.
	TimeLimit string `yaml:"time_limit,omitempty"`

	// MIPGap is the relative optimality gap at which the backend may stop.
	MIPGap float64 `yaml:"mip_gap,omitempty"`

	// Verbose enables solver log output.
	Verbose bool `yaml:"verbose,omitempty"`
}

// TimeLimitDuration parses the configured time limit.
func (s SolverSettings) TimeLimitDuration() (time.Duration, error) {
	limit := s.TimeLimit
	if limit == "" {
		limit = DefaultTimeLimit
	}
	d, err := time.ParseDuration(limit)
	if err != nil {
		return 0, fmt.Errorf("invalid solver time_limit %q: %w", s.TimeLimit, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("solver time_limit must be positive, got %q", s.TimeLimit)
	}
	return d, nil
}

// Config mirrors the YAML configuration document.
//
// Card entries use the "Name [tag1, tag2]" syntax and may carry a quantity
// prefix: "2x Ash Barrens [land]". Names and tags are matched
// case-insensitively and normalized to lower case on load.
type Config struct {
	VendorPenalty    float64              `yaml:"vendor_penalty"`
	Vendors          []string             `yaml:"vendors"`
	ShippingCosts    map[string]float64   `yaml:"shipping_costs"`
	VendorDiscounts  map[string]float64   `yaml:"vendor_discounts,omitempty"`
	Cards            []string             `yaml:"cards"`
	OptionalCards    []string             `yaml:"optional_cards,omitempty"`
	MinOptionalCards int                  `yaml:"min_optional_cards,omitempty"`
	TagConstraints   map[string]TagBounds `yaml:"tag_constraints,omitempty"`
	PriceDataFile    string               `yaml:"price_data_file,omitempty"`
	ResultsFile      string               `yaml:"results_file,omitempty"`
	Solver           SolverSettings       `yaml:"solver,omitempty"`
}

// Load reads, strictly decodes and validates the configuration file.
// Unknown fields are rejected so typos surface instead of silently
// disabling a constraint.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.ResultsFile == "" {
		cfg.ResultsFile = DefaultResultsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for invalid configuration values. Domain-level consistency
// (tag bound conflicts, required-item availability) is checked later by
// core.Problem.Validate; this catches malformed documents early.
func (c *Config) Validate() error {
	if len(c.Vendors) == 0 {
		return fmt.Errorf("missing required field 'vendors'")
	}
	if len(c.Cards) == 0 {
		return fmt.Errorf("missing required field 'cards'")
	}
	if c.VendorPenalty < 0 {
		return fmt.Errorf("vendor_penalty must be >= 0, got %.2f", c.VendorPenalty)
	}
	if c.MinOptionalCards < 0 {
		return fmt.Errorf("min_optional_cards must be >= 0, got %d", c.MinOptionalCards)
	}

	known := make(map[string]bool, len(c.Vendors))
	for _, v := range c.Vendors {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("vendors must not contain empty names")
		}
		known[normalize(v)] = true
	}
	for v, cost := range c.ShippingCosts {
		if !known[normalize(v)] {
			return fmt.Errorf("shipping_costs references unknown vendor %q", v)
		}
		if cost < 0 {
			return fmt.Errorf("shipping cost for vendor %q must be >= 0, got %.2f", v, cost)
		}
	}
	for v, discount := range c.VendorDiscounts {
		if !known[normalize(v)] {
			return fmt.Errorf("vendor_discounts references unknown vendor %q", v)
		}
		if discount <= 0 || discount > 1 {
			return fmt.Errorf("discount for vendor %q must be in (0, 1], got %.2f", v, discount)
		}
	}

	for _, entry := range append(append([]string{}, c.Cards...), c.OptionalCards...) {
		if _, _, _, err := ParseCardEntry(entry); err != nil {
			return err
		}
	}

	if _, err := c.Solver.TimeLimitDuration(); err != nil {
		return err
	}
	return nil
}

// cardEntryRe matches "Card Name [tag1, tag2]"; the tag suffix is optional.
var cardEntryRe = regexp.MustCompile(`^(.+?)\s*\[([^\]]+)\]\s*$`)

// quantityRe matches a "2x " quantity prefix.
var quantityRe = regexp.MustCompile(`^(\d+)x\s+(.+)$`)

// ParseCardEntry parses a shopping-list entry of the form
// "2x Carrion Feeder [black, sacrifice]". The quantity prefix and the tag
// suffix are both optional; quantity defaults to 1. Name and tags are
// normalized to lower case.
func ParseCardEntry(entry string) (name string, quantity int, tags []string, err error) {
	s := strings.TrimSpace(entry)
	if s == "" {
		return "", 0, nil, fmt.Errorf("card entry must not be empty")
	}

	quantity = 1
	if m := quantityRe.FindStringSubmatch(s); m != nil {
		quantity, err = strconv.Atoi(m[1])
		if err != nil || quantity < 1 {
			return "", 0, nil, fmt.Errorf("invalid quantity prefix in card entry %q", entry)
		}
		s = m[2]
	}

	if m := cardEntryRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
		for _, t := range strings.Split(m[2], ",") {
			tag := normalize(t)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	name = normalize(s)
	if name == "" {
		return "", 0, nil, fmt.Errorf("card entry %q has no name", entry)
	}
	return name, quantity, tags, nil
}

// Items converts the card lists into domain items.
func (c *Config) Items() ([]core.Item, error) {
	var items []core.Item
	for _, entry := range c.Cards {
		name, qty, tags, err := ParseCardEntry(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, core.Item{Name: name, Quantity: qty, Tags: tags})
	}
	for _, entry := range c.OptionalCards {
		name, qty, tags, err := ParseCardEntry(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, core.Item{Name: name, Quantity: qty, Optional: true, Tags: tags})
	}
	return items, nil
}

// VendorList converts the vendor configuration into domain vendors.
func (c *Config) VendorList() []core.Vendor {
	vendors := make([]core.Vendor, 0, len(c.Vendors))
	for _, v := range c.Vendors {
		name := normalize(v)
		vendors = append(vendors, core.Vendor{
			Name:         name,
			ShippingCost: lookupNormalized(c.ShippingCosts, name),
			Discount:     lookupNormalized(c.VendorDiscounts, name),
		})
	}
	return vendors
}

// TagMap converts the tag constraint configuration into domain constraints.
func (c *Config) TagMap() map[string]core.TagConstraint {
	tags := make(map[string]core.TagConstraint, len(c.TagConstraints))
	for tag, b := range c.TagConstraints {
		tags[normalize(tag)] = core.TagConstraint{Min: b.Min, Max: b.Max, Target: b.Target}
	}
	return tags
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lookupNormalized(m map[string]float64, name string) float64 {
	for k, v := range m {
		if normalize(k) == name {
			return v
		}
	}
	return 0
}
