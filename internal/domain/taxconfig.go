package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxSlab represents one bracket of the progressive slab table.
// Upper is nil for the final, unbounded slab.
type TaxSlab struct {
	Lower decimal.Decimal  `json:"lower" yaml:"lower"`
	Upper *decimal.Decimal `json:"upper,omitempty" yaml:"upper,omitempty"`
	Rate  decimal.Decimal  `json:"rate" yaml:"rate"`
}

// Unbounded reports whether the slab has no upper bound.
func (s TaxSlab) Unbounded() bool { return s.Upper == nil }

// TaxSlabTable is an ordered sequence of slabs covering [0, inf)
// contiguously. Tables are immutable once validated.
type TaxSlabTable []TaxSlab

// Validate checks that the table is contiguous from zero, has strictly
// increasing bounds, non-negative and non-decreasing rates, and ends
// with exactly one unbounded slab.
func (t TaxSlabTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: slab table is empty", ErrInvalidConfig)
	}
	if !t[0].Lower.IsZero() {
		return fmt.Errorf("%w: slab table must start at 0, got %s", ErrInvalidConfig, t[0].Lower)
	}
	prevRate := decimal.Zero
	for i, slab := range t {
		if slab.Rate.IsNegative() {
			return fmt.Errorf("%w: slab %d has negative rate %s", ErrInvalidConfig, i, slab.Rate)
		}
		if slab.Rate.LessThan(prevRate) {
			return fmt.Errorf("%w: slab %d rate %s is lower than previous rate %s (table must be progressive)", ErrInvalidConfig, i, slab.Rate, prevRate)
		}
		prevRate = slab.Rate

		if slab.Unbounded() {
			if i != len(t)-1 {
				return fmt.Errorf("%w: slab %d is unbounded but is not the last slab", ErrInvalidConfig, i)
			}
			continue
		}
		if slab.Upper.LessThanOrEqual(slab.Lower) {
			return fmt.Errorf("%w: slab %d upper bound %s must exceed lower bound %s", ErrInvalidConfig, i, slab.Upper, slab.Lower)
		}
		if i == len(t)-1 {
			return fmt.Errorf("%w: last slab must be unbounded to cover all income", ErrInvalidConfig)
		}
		if !t[i+1].Lower.Equal(*slab.Upper) {
			return fmt.Errorf("%w: slab %d ends at %s but slab %d starts at %s (table must be contiguous)", ErrInvalidConfig, i, slab.Upper, i+1, t[i+1].Lower)
		}
	}
	return nil
}

// TaxConfig describes one progressive tax regime. Owned by a single
// tax calculator instance and never mutated after construction.
type TaxConfig struct {
	Slabs             TaxSlabTable    `json:"slabs" yaml:"slabs"`
	CessRate          decimal.Decimal `json:"cess_rate" yaml:"cess_rate"`
	StandardDeduction decimal.Decimal `json:"standard_deduction" yaml:"standard_deduction"`
}

// Validate checks the config for a usable slab table and non-negative
// cess rate and standard deduction.
func (tc TaxConfig) Validate() error {
	if err := tc.Slabs.Validate(); err != nil {
		return err
	}
	if tc.CessRate.IsNegative() {
		return fmt.Errorf("%w: cess rate cannot be negative", ErrInvalidConfig)
	}
	if tc.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: standard deduction cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// DefaultTaxConfig returns the FY 2025-26 new-regime slab table:
// six slabs of 400,000 width at 0/5/10/15/20/25%, then 30% above
// 2,400,000, with a 50,000 standard deduction and 4% cess.
func DefaultTaxConfig() TaxConfig {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return TaxConfig{
		Slabs: TaxSlabTable{
			{Lower: decimal.Zero, Upper: bound(400000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(400000), Upper: bound(800000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(800000), Upper: bound(1200000), Rate: decimal.NewFromFloat(0.10)},
			{Lower: decimal.NewFromInt(1200000), Upper: bound(1600000), Rate: decimal.NewFromFloat(0.15)},
			{Lower: decimal.NewFromInt(1600000), Upper: bound(2000000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(2000000), Upper: bound(2400000), Rate: decimal.NewFromFloat(0.25)},
			{Lower: decimal.NewFromInt(2400000), Upper: nil, Rate: decimal.NewFromFloat(0.30)},
		},
		CessRate:          decimal.NewFromFloat(0.04),
		StandardDeduction: decimal.NewFromInt(50000),
	}
}
