package core

import (
	"errors"
	"testing"
)

func intp(v int) *int { return &v }

func TestTagConstraintValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       TagConstraint
		wantErr bool
	}{
		{name: "unconstrained", c: TagConstraint{}},
		{name: "min only", c: TagConstraint{Min: intp(1)}},
		{name: "max only", c: TagConstraint{Max: intp(3)}},
		{name: "min below max", c: TagConstraint{Min: intp(1), Max: intp(3)}},
		{name: "min equals max", c: TagConstraint{Min: intp(2), Max: intp(2)}},
		{name: "target within bounds", c: TagConstraint{Min: intp(1), Max: intp(3), Target: intp(2)}},
		{name: "min exceeds max", c: TagConstraint{Min: intp(4), Max: intp(2)}, wantErr: true},
		{name: "negative min", c: TagConstraint{Min: intp(-1)}, wantErr: true},
		{name: "negative target", c: TagConstraint{Target: intp(-2)}, wantErr: true},
		{name: "target below min", c: TagConstraint{Min: intp(3), Target: intp(1)}, wantErr: true},
		{name: "target above max", c: TagConstraint{Max: intp(1), Target: intp(2)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate("black")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("Validate() error type = %T, want *ConfigurationError", err)
				}
				if cfgErr.Subject != "black" {
					t.Errorf("Validate() error subject = %q, want %q", cfgErr.Subject, "black")
				}
			}
		})
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{name: "valid required", item: Item{Name: "carrion feeder", Quantity: 1}},
		{name: "valid multi-copy", item: Item{Name: "ash barrens", Quantity: 4}},
		{name: "zero quantity", item: Item{Name: "ash barrens", Quantity: 0}, wantErr: true},
		{name: "empty name", item: Item{Quantity: 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVendorValidate(t *testing.T) {
	tests := []struct {
		name    string
		vendor  Vendor
		wantErr bool
	}{
		{name: "valid", vendor: Vendor{Name: "cardkingdom", ShippingCost: 3.5}},
		{name: "free shipping", vendor: Vendor{Name: "cardkingdom"}},
		{name: "discounted", vendor: Vendor{Name: "cardkingdom", Discount: 0.9}},
		{name: "negative shipping", vendor: Vendor{Name: "cardkingdom", ShippingCost: -1}, wantErr: true},
		{name: "discount above one", vendor: Vendor{Name: "cardkingdom", Discount: 1.5}, wantErr: true},
		{name: "empty name", vendor: Vendor{ShippingCost: 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.vendor.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItemHasTag(t *testing.T) {
	it := Item{Name: "carrion feeder", Quantity: 1, Tags: []string{"black", "sacrifice"}}
	if !it.HasTag("black") {
		t.Error("HasTag(black) = false, want true")
	}
	if it.HasTag("white") {
		t.Error("HasTag(white) = true, want false")
	}
}

func TestTagCountSatisfied(t *testing.T) {
	tests := []struct {
		name string
		tc   TagCount
		want bool
	}{
		{name: "target met", tc: TagCount{Count: 2, Constraint: TagConstraint{Target: intp(2)}}, want: true},
		{name: "target missed", tc: TagCount{Count: 1, Constraint: TagConstraint{Target: intp(2)}}, want: false},
		{name: "within min max", tc: TagCount{Count: 2, Constraint: TagConstraint{Min: intp(1), Max: intp(3)}}, want: true},
		{name: "below min", tc: TagCount{Count: 0, Constraint: TagConstraint{Min: intp(1)}}, want: false},
		{name: "above max", tc: TagCount{Count: 4, Constraint: TagConstraint{Max: intp(3)}}, want: false},
		{name: "unconstrained", tc: TagCount{Count: 7}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tc.Satisfied(); got != tt.want {
				t.Errorf("Satisfied() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceTable(t *testing.T) {
	table := make(PriceTable)
	table.Set("carrion feeder", "v1", 1.5)
	table.Set("carrion feeder", "v2", 2.0)
	table.Set("ash barrens", "v2", 0.8)

	if p, ok := table.Price("carrion feeder", "v1"); !ok || p != 1.5 {
		t.Errorf("Price() = %v, %v, want 1.5, true", p, ok)
	}
	if _, ok := table.Price("ash barrens", "v1"); ok {
		t.Error("Price() for missing entry reported ok")
	}
	if !table.Sells("ash barrens") {
		t.Error("Sells(ash barrens) = false, want true")
	}
	if table.Sells("swamp") {
		t.Error("Sells(swamp) = true, want false")
	}
	got := table.Vendors("carrion feeder")
	want := []string{"v1", "v2"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Vendors() = %v, want %v", got, want)
	}
}
