package domain

import (
	"github.com/shopspring/decimal"
)

// YearRecord represents the complete financial picture for a single
// projected year. Records are created once per year, never mutated
// after emission, and form the engine's only externally visible output.
type YearRecord struct {
	Year int `json:"year"`

	// Salary
	GrossYearly  decimal.Decimal `json:"gross_yearly"`
	GrossMonthly decimal.Decimal `json:"gross_monthly"`
	BasicYearly  decimal.Decimal `json:"basic_yearly"`

	// Statutory components. Employer PF is informational only and is
	// not deducted from take-home pay.
	EmployeePFYearly      decimal.Decimal `json:"employee_pf_yearly"`
	EmployerPFYearly      decimal.Decimal `json:"employer_pf_yearly"`
	ProfessionalTaxYearly decimal.Decimal `json:"professional_tax_yearly"`

	// Taxes and net pay
	TaxYearly  decimal.Decimal `json:"tax_yearly"`
	TaxMonthly decimal.Decimal `json:"tax_monthly"`
	NetYearly  decimal.Decimal `json:"net_salary_yearly"`
	NetMonthly decimal.Decimal `json:"net_monthly"`

	// Monthly outflows
	StatutoryDeductionsMonthly decimal.Decimal `json:"statutory_deductions_monthly"`
	OtherDeductionsMonthly     decimal.Decimal `json:"other_deductions_monthly"`

	// Investment actually made after capping and affordability clamping
	TotalInvestYearly decimal.Decimal `json:"total_invest_yearly"`
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	SalaryLeftMonthly decimal.Decimal `json:"salary_left_monthly"`
	InvestPercent     decimal.Decimal `json:"invest_percentage"`
	Remark            string          `json:"remark"`

	// Cumulative state, functions of all prior records
	RunningInvestTotal decimal.Decimal `json:"running_invest_total"`
	CumulativeReturn   decimal.Decimal `json:"cumulative_return"`
	ReturnPercent      decimal.Decimal `json:"return_percentage"`
}

// Profit returns the portfolio gain over invested principal to date.
func (r *YearRecord) Profit() decimal.Decimal {
	return r.CumulativeReturn.Sub(r.RunningInvestTotal)
}

// EffectiveTaxRate returns yearly tax as a percentage of gross salary,
// zero when gross is zero.
func (r *YearRecord) EffectiveTaxRate() decimal.Decimal {
	if r.GrossYearly.IsZero() {
		return decimal.Zero
	}
	return r.TaxYearly.Div(r.GrossYearly).Mul(decimal.NewFromInt(100))
}

// SavingsRate returns the fraction of gross salary left over each year
// after taxes, deductions and investment, zero when gross is zero.
func (r *YearRecord) SavingsRate() decimal.Decimal {
	if r.GrossYearly.IsZero() {
		return decimal.Zero
	}
	return r.SalaryLeftMonthly.Mul(decimal.NewFromInt(12)).Div(r.GrossYearly)
}

// FieldStats holds summary statistics for one YearRecord field across
// the projected horizon.
type FieldStats struct {
	Field string          `json:"field"`
	Count int             `json:"count"`
	Mean  decimal.Decimal `json:"mean"`
	Std   decimal.Decimal `json:"std"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

// Milestones captures notable years in a projection. Year values are
// 1-based; zero means the milestone was never reached.
type Milestones struct {
	BreakEvenYear    int `json:"break_even_year"` // first year portfolio value exceeds invested principal
	MaxNetSalaryYear int `json:"max_net_salary_year"`
	MinNetSalaryYear int `json:"min_net_salary_year"`
}

// ProjectionSummary bundles the derived analytics for one projection.
type ProjectionSummary struct {
	InvestmentCAGR  decimal.Decimal   `json:"investment_cagr"`
	PortfolioCAGR   decimal.Decimal   `json:"portfolio_cagr"`
	Milestones      Milestones        `json:"milestones"`
	FinalInvested   decimal.Decimal   `json:"final_invested"`
	FinalPortfolio  decimal.Decimal   `json:"final_portfolio"`
	YearlyReturns   []decimal.Decimal `json:"yearly_returns"`
	SummaryStats    []FieldStats      `json:"summary_stats"`
	AvgEffectiveTax decimal.Decimal   `json:"avg_effective_tax_rate"`
}

// ProjectionResult is the unit of work handed to report formatters:
// the assumptions used, the ordered per-year records, and the derived
// summary. Formatters read fields only and perform no projection
// arithmetic.
type ProjectionResult struct {
	Assumptions ProjectionAssumptions `json:"assumptions"`
	Records     []YearRecord          `json:"records"`
	Summary     ProjectionSummary     `json:"summary"`
}
