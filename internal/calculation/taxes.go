package calculation

import (
	"fmt"

	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slab table: the same table is applied to every projection year.
//    No inflation indexing of slab boundaries across the horizon.
//
// 2. Standard deduction is subtracted from gross before the slab walk;
//    income at or below the deduction is untaxed.
//
// 3. Cess is levied multiplicatively on the slab sum:
//    total = slabTax * (1 + cessRate).

// SlabTaxCalculator computes income tax under a progressive slab
// regime. The config is read-only after construction, so a single
// calculator is safe to share across concurrent projection runs.
type SlabTaxCalculator struct {
	Slabs             domain.TaxSlabTable
	CessRate          decimal.Decimal
	StandardDeduction decimal.Decimal
}

// NewSlabTaxCalculator creates a calculator with the default slab
// table (six 400k-wide slabs at 0-25%, 30% above 2,400,000, 50,000
// standard deduction, 4% cess).
func NewSlabTaxCalculator() *SlabTaxCalculator {
	cfg := domain.DefaultTaxConfig()
	return &SlabTaxCalculator{
		Slabs:             cfg.Slabs,
		CessRate:          cfg.CessRate,
		StandardDeduction: cfg.StandardDeduction,
	}
}

// NewSlabTaxCalculatorWithConfig creates a calculator from a custom
// tax config, validating the slab table first.
func NewSlabTaxCalculatorWithConfig(cfg domain.TaxConfig) (*SlabTaxCalculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SlabTaxCalculator{
		Slabs:             cfg.Slabs,
		CessRate:          cfg.CessRate,
		StandardDeduction: cfg.StandardDeduction,
	}, nil
}

// ComputeTax returns the total tax payable on a gross yearly income,
// including cess. Pure function of the config and input; tax is
// monotonically non-decreasing in grossYearly for a valid table.
func (stc *SlabTaxCalculator) ComputeTax(grossYearly decimal.Decimal) (decimal.Decimal, error) {
	if grossYearly.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: gross yearly income cannot be negative, got %s", domain.ErrInvalidInput, grossYearly)
	}

	taxable := grossYearly.Sub(stc.StandardDeduction)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	var slabTax decimal.Decimal
	for _, slab := range stc.Slabs {
		if taxable.LessThanOrEqual(slab.Lower) {
			break
		}
		upper := taxable
		if !slab.Unbounded() {
			upper = decimal.Min(taxable, *slab.Upper)
		}
		inSlab := upper.Sub(slab.Lower)
		if inSlab.GreaterThan(decimal.Zero) {
			slabTax = slabTax.Add(inSlab.Mul(slab.Rate))
		}
	}

	one := decimal.NewFromInt(1)
	return slabTax.Mul(one.Add(stc.CessRate)), nil
}
