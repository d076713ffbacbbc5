package calculation

import (
	"math"

	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives the analytics bundle for a finished projection:
// CAGR of invested principal and portfolio value, milestone years,
// per-field summary statistics and the year-wise return decomposition.
func Summarize(records []domain.YearRecord) domain.ProjectionSummary {
	if len(records) == 0 {
		return domain.ProjectionSummary{}
	}

	first := records[0]
	last := records[len(records)-1]

	var taxRateSum decimal.Decimal
	for i := range records {
		taxRateSum = taxRateSum.Add(records[i].EffectiveTaxRate())
	}

	return domain.ProjectionSummary{
		InvestmentCAGR:  CAGR(first.RunningInvestTotal, last.RunningInvestTotal, len(records)),
		PortfolioCAGR:   CAGR(first.CumulativeReturn, last.CumulativeReturn, len(records)),
		Milestones:      FindMilestones(records),
		FinalInvested:   last.RunningInvestTotal,
		FinalPortfolio:  last.CumulativeReturn,
		YearlyReturns:   YearlyReturns(records),
		SummaryStats:    SummaryStatistics(records),
		AvgEffectiveTax: taxRateSum.Div(decimal.NewFromInt(int64(len(records)))),
	}
}

// CAGR computes the compound annual growth rate between two values as
// a percentage, zero when either value is non-positive.
func CAGR(start, end decimal.Decimal, years int) decimal.Decimal {
	if years < 1 || !start.IsPositive() || !end.IsPositive() {
		return decimal.Zero
	}
	ratio := end.Div(start).InexactFloat64()
	growth := math.Pow(ratio, 1.0/float64(years)) - 1.0
	return decimal.NewFromFloat(growth * 100)
}

// FindMilestones locates the first year the portfolio value exceeds
// invested principal, plus the peak and trough net salary years.
func FindMilestones(records []domain.YearRecord) domain.Milestones {
	var m domain.Milestones
	if len(records) == 0 {
		return m
	}
	m.MaxNetSalaryYear = records[0].Year
	m.MinNetSalaryYear = records[0].Year
	maxNet := records[0].NetYearly
	minNet := records[0].NetYearly
	for _, r := range records {
		if m.BreakEvenYear == 0 && r.Profit().IsPositive() {
			m.BreakEvenYear = r.Year
		}
		if r.NetYearly.GreaterThan(maxNet) {
			maxNet = r.NetYearly
			m.MaxNetSalaryYear = r.Year
		}
		if r.NetYearly.LessThan(minNet) {
			minNet = r.NetYearly
			m.MinNetSalaryYear = r.Year
		}
	}
	return m
}

// YearlyReturns decomposes portfolio growth into per-year gains: this
// year's portfolio value less the prior value and this year's new
// contributions.
func YearlyReturns(records []domain.YearRecord) []decimal.Decimal {
	returns := make([]decimal.Decimal, len(records))
	prev := decimal.Zero
	for i, r := range records {
		returns[i] = r.CumulativeReturn.Sub(prev).Sub(r.TotalInvestYearly)
		prev = r.CumulativeReturn
	}
	return returns
}

// statField pairs a field name with its accessor for the statistics
// table.
type statField struct {
	name string
	get  func(*domain.YearRecord) decimal.Decimal
}

var statFields = []statField{
	{"gross_yearly", func(r *domain.YearRecord) decimal.Decimal { return r.GrossYearly }},
	{"tax_yearly", func(r *domain.YearRecord) decimal.Decimal { return r.TaxYearly }},
	{"net_salary_yearly", func(r *domain.YearRecord) decimal.Decimal { return r.NetYearly }},
	{"net_monthly", func(r *domain.YearRecord) decimal.Decimal { return r.NetMonthly }},
	{"monthly_investment", func(r *domain.YearRecord) decimal.Decimal { return r.MonthlyInvestment }},
	{"salary_left_monthly", func(r *domain.YearRecord) decimal.Decimal { return r.SalaryLeftMonthly }},
	{"invest_percentage", func(r *domain.YearRecord) decimal.Decimal { return r.InvestPercent }},
	{"running_invest_total", func(r *domain.YearRecord) decimal.Decimal { return r.RunningInvestTotal }},
	{"cumulative_return", func(r *domain.YearRecord) decimal.Decimal { return r.CumulativeReturn }},
	{"return_percentage", func(r *domain.YearRecord) decimal.Decimal { return r.ReturnPercent }},
}

// SummaryStatistics computes count/mean/std/min/max for the key
// numeric fields across the horizon.
func SummaryStatistics(records []domain.YearRecord) []domain.FieldStats {
	if len(records) == 0 {
		return nil
	}
	n := decimal.NewFromInt(int64(len(records)))
	stats := make([]domain.FieldStats, 0, len(statFields))
	for _, f := range statFields {
		min := f.get(&records[0])
		max := min
		var sum decimal.Decimal
		for i := range records {
			v := f.get(&records[i])
			sum = sum.Add(v)
			if v.LessThan(min) {
				min = v
			}
			if v.GreaterThan(max) {
				max = v
			}
		}
		mean := sum.Div(n)

		var variance decimal.Decimal
		for i := range records {
			d := f.get(&records[i]).Sub(mean)
			variance = variance.Add(d.Mul(d))
		}
		variance = variance.Div(n)
		std := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))

		stats = append(stats, domain.FieldStats{
			Field: f.name,
			Count: len(records),
			Mean:  mean,
			Std:   std,
			Min:   min,
			Max:   max,
		})
	}
	return stats
}
