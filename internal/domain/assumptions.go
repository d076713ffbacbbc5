package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectionAssumptions holds the growth assumptions for one projection
// run. All rate fields are fractions (0.12 means 12%); any
// percentage-unit user input is converted once at the CLI boundary.
// Supplied once at projection start and read-only during the run.
type ProjectionAssumptions struct {
	StartingGrossYearly       decimal.Decimal `json:"starting_gross_yearly" yaml:"starting_gross_yearly"`
	HorizonYears              int             `json:"horizon_years" yaml:"horizon_years"`
	StartingMonthlyInvestment decimal.Decimal `json:"starting_monthly_investment" yaml:"starting_monthly_investment"`
	InvestmentHikeRate        decimal.Decimal `json:"investment_hike_rate" yaml:"investment_hike_rate"`
	ExpectedAnnualReturn      decimal.Decimal `json:"expected_annual_return" yaml:"expected_annual_return"`
	OtherMonthlyDeductions    decimal.Decimal `json:"other_monthly_deductions" yaml:"other_monthly_deductions"`
	SalaryHikeRate            decimal.Decimal `json:"salary_hike_rate" yaml:"salary_hike_rate"`

	// Caps are hard ceilings, applied from year one. A zero cap means
	// the corresponding quantity grows uncapped.
	SalaryCap            decimal.Decimal `json:"salary_cap" yaml:"salary_cap"`
	MonthlyInvestmentCap decimal.Decimal `json:"monthly_investment_cap" yaml:"monthly_investment_cap"`
}

// Validate rejects assumptions the projection engine cannot run on.
func (pa ProjectionAssumptions) Validate() error {
	if pa.HorizonYears < 1 {
		return fmt.Errorf("%w: horizon years must be at least 1, got %d", ErrInvalidInput, pa.HorizonYears)
	}
	monetary := []struct {
		name  string
		value decimal.Decimal
	}{
		{"starting gross yearly salary", pa.StartingGrossYearly},
		{"starting monthly investment", pa.StartingMonthlyInvestment},
		{"other monthly deductions", pa.OtherMonthlyDeductions},
		{"salary cap", pa.SalaryCap},
		{"monthly investment cap", pa.MonthlyInvestmentCap},
	}
	for _, m := range monetary {
		if m.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrInvalidInput, m.name, m.value)
		}
	}
	minusOne := decimal.NewFromInt(-1)
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"investment hike rate", pa.InvestmentHikeRate},
		{"expected annual return", pa.ExpectedAnnualReturn},
		{"salary hike rate", pa.SalaryHikeRate},
	}
	for _, r := range rates {
		if r.value.LessThan(minusOne) {
			return fmt.Errorf("%w: %s cannot be below -100%%, got %s", ErrInvalidInput, r.name, r.value)
		}
	}
	return nil
}
