// Package pricing turns scraped price data into the read-only snapshot the
// optimizer consumes. Price discovery itself (scraping, retries) lives
// outside this repository; this package only loads its output, applies
// vendor discounts and works out which cards are purchasable at all.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/deckforge/card-order-optimizer/pkg/core"
)

// UnavailablePrice is the sentinel the scraper records for cards a vendor
// does not stock. Rows at or above it are treated as "not sold".
const UnavailablePrice = 9999.0

// Row is one scraped price observation.
type Row struct {
	Card   string  `json:"card"`
	Vendor string  `json:"vendor"`
	Price  float64 `json:"price"`
}

// Source supplies a fully materialized price snapshot. The optimizer never
// sees partial or streaming updates; Fetch returns everything at once.
type Source interface {
	// Name identifies the source for logging.
	Name() string

	// Fetch returns all price rows.
	Fetch(ctx context.Context) ([]Row, error)
}

// FileSource reads a snapshot from the scraper's JSON output file.
type FileSource struct {
	Path string
}

var _ Source = (*FileSource)(nil)

// NewFileSource returns a Source reading from the given JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.Path }

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading price data: %w", err)
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing price data %s: %w", s.Path, err)
	}
	return rows, nil
}

// BuildTable converts raw rows into a sparse price table. Rows for vendors
// outside the configured list are dropped, sentinel-priced rows are treated
// as missing, and vendor discounts are applied to the remaining prices.
// Names are normalized to lower case to match the loaders.
func BuildTable(rows []Row, vendors []core.Vendor) core.PriceTable {
	discounts := make(map[string]float64, len(vendors))
	for _, v := range vendors {
		discounts[v.Name] = v.Discount
	}

	table := make(core.PriceTable, len(rows))
	for _, r := range rows {
		vendor := normalize(r.Vendor)
		card := normalize(r.Card)
		discount, known := discounts[vendor]
		if !known || card == "" {
			continue
		}
		if r.Price < 0 || r.Price >= UnavailablePrice {
			continue
		}
		price := r.Price
		if discount > 0 {
			price *= discount
		}
		table.Set(card, vendor, price)
	}
	return table
}

// Availability partitions the shopping list by whether any vendor sells each
// card, for reporting alongside the allocation.
type Availability struct {
	RequiredAvailable   []string
	RequiredUnavailable []string
	OptionalAvailable   []string
	OptionalUnavailable []string
}

// SplitAvailability classifies every item against the price table.
func SplitAvailability(items []core.Item, table core.PriceTable) Availability {
	var a Availability
	for _, it := range items {
		sold := table.Sells(it.Name)
		switch {
		case it.Optional && sold:
			a.OptionalAvailable = append(a.OptionalAvailable, it.Name)
		case it.Optional:
			a.OptionalUnavailable = append(a.OptionalUnavailable, it.Name)
		case sold:
			a.RequiredAvailable = append(a.RequiredAvailable, it.Name)
		default:
			a.RequiredUnavailable = append(a.RequiredUnavailable, it.Name)
		}
	}
	sort.Strings(a.RequiredAvailable)
	sort.Strings(a.RequiredUnavailable)
	sort.Strings(a.OptionalAvailable)
	sort.Strings(a.OptionalUnavailable)
	return a
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
