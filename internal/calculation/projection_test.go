package calculation

import (
	"testing"

	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseAssumptions() domain.ProjectionAssumptions {
	return domain.ProjectionAssumptions{
		StartingGrossYearly:       decimal.NewFromInt(1500000),
		HorizonYears:              5,
		StartingMonthlyInvestment: decimal.NewFromInt(50000),
		InvestmentHikeRate:        decimal.NewFromFloat(0.15),
		ExpectedAnnualReturn:      decimal.NewFromFloat(0.12),
		OtherMonthlyDeductions:    decimal.NewFromInt(2000),
		SalaryHikeRate:            decimal.Zero,
		SalaryCap:                 decimal.NewFromInt(5000000),
		MonthlyInvestmentCap:      decimal.NewFromInt(100000),
	}
}

// TestRunProjectionFirstYear pins the complete first-year derivation
// for a hand-computed scenario.
func TestRunProjectionFirstYear(t *testing.T) {
	engine := NewProjectionEngine()

	records, err := engine.RunProjection(baseAssumptions())
	require.NoError(t, err)
	require.Len(t, records, 5)

	r := records[0]
	assert.Equal(t, 1, r.Year)
	assert.True(t, r.GrossYearly.Equal(decimal.NewFromInt(1500000)))
	assert.True(t, r.BasicYearly.Equal(decimal.NewFromInt(600000)), "basic is 40%% of gross")
	assert.True(t, r.EmployeePFYearly.Equal(decimal.NewFromInt(72000)), "employee PF is 12%% of basic")
	assert.True(t, r.EmployerPFYearly.Equal(decimal.NewFromInt(72000)))
	assert.True(t, r.ProfessionalTaxYearly.Equal(decimal.NewFromInt(2400)))

	// Taxable 1,450,000: 20,000 + 40,000 + 37,500 = 97,500 * 1.04
	assert.True(t, r.TaxYearly.Equal(decimal.NewFromInt(101400)), "tax, got %s", r.TaxYearly)

	// Net = gross - tax - employee PF - professional tax
	assert.True(t, r.NetYearly.Equal(decimal.NewFromInt(1324200)), "net yearly, got %s", r.NetYearly)
	assert.True(t, r.NetMonthly.Equal(decimal.NewFromInt(110350)))

	assert.True(t, r.MonthlyInvestment.Equal(decimal.NewFromInt(50000)), "target is affordable, no clamp")
	assert.True(t, r.SalaryLeftMonthly.Equal(decimal.NewFromInt(58350)))

	// Cumulative state after year one
	assert.True(t, r.RunningInvestTotal.Equal(decimal.NewFromInt(600000)))
	assert.True(t, r.CumulativeReturn.Equal(decimal.NewFromInt(672000)), "600,000 * 1.12")
	assert.True(t, r.ReturnPercent.Equal(decimal.NewFromInt(12)))

	// 50,000 of 110,350 is above the 40% threshold
	assert.Equal(t, "High", r.Remark)
	assert.True(t, r.InvestPercent.GreaterThan(decimal.NewFromInt(40)))
}

// TestRunProjectionInvalidInputs covers the fail-fast validation paths.
func TestRunProjectionInvalidInputs(t *testing.T) {
	engine := NewProjectionEngine()

	tests := []struct {
		name   string
		mutate func(*domain.ProjectionAssumptions)
	}{
		{"zero horizon", func(a *domain.ProjectionAssumptions) { a.HorizonYears = 0 }},
		{"negative horizon", func(a *domain.ProjectionAssumptions) { a.HorizonYears = -3 }},
		{"negative gross", func(a *domain.ProjectionAssumptions) { a.StartingGrossYearly = decimal.NewFromInt(-1) }},
		{"negative investment", func(a *domain.ProjectionAssumptions) { a.StartingMonthlyInvestment = decimal.NewFromInt(-500) }},
		{"negative other deductions", func(a *domain.ProjectionAssumptions) { a.OtherMonthlyDeductions = decimal.NewFromInt(-10) }},
		{"salary hike below -100%", func(a *domain.ProjectionAssumptions) { a.SalaryHikeRate = decimal.NewFromFloat(-1.5) }},
		{"return below -100%", func(a *domain.ProjectionAssumptions) { a.ExpectedAnnualReturn = decimal.NewFromFloat(-1.01) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baseAssumptions()
			tt.mutate(&a)
			records, err := engine.RunProjection(a)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, records, "no partial sequence on failure")
		})
	}
}

// TestInvestmentCapIdempotence verifies the hard-cap semantics: once
// the monthly target reaches the cap it stays exactly at the cap.
func TestInvestmentCapIdempotence(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.StartingGrossYearly = decimal.NewFromInt(5000000)
	a.StartingMonthlyInvestment = decimal.NewFromInt(95000)
	a.InvestmentHikeRate = decimal.NewFromFloat(0.10)
	a.MonthlyInvestmentCap = decimal.NewFromInt(100000)
	a.HorizonYears = 4

	records, err := engine.RunProjection(a)
	require.NoError(t, err)

	cap := decimal.NewFromInt(100000)
	assert.True(t, records[0].MonthlyInvestment.Equal(decimal.NewFromInt(95000)))
	// Year 2: min(100,000, 104,500) = 100,000, capped
	assert.True(t, records[1].MonthlyInvestment.Equal(cap), "year 2 capped, got %s", records[1].MonthlyInvestment)
	assert.True(t, records[2].MonthlyInvestment.Equal(cap), "no overshoot in year 3")
	assert.True(t, records[3].MonthlyInvestment.Equal(cap), "no oscillation in year 4")
}

// TestSalaryCapIdempotence verifies the same ceiling semantics for
// salary growth.
func TestSalaryCapIdempotence(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.StartingGrossYearly = decimal.NewFromInt(4800000)
	a.SalaryHikeRate = decimal.NewFromFloat(0.10)
	a.SalaryCap = decimal.NewFromInt(5000000)
	a.HorizonYears = 4

	records, err := engine.RunProjection(a)
	require.NoError(t, err)

	cap := decimal.NewFromInt(5000000)
	assert.True(t, records[0].GrossYearly.Equal(decimal.NewFromInt(4800000)))
	assert.True(t, records[1].GrossYearly.Equal(cap), "year 2: min(5M, 5.28M)")
	assert.True(t, records[2].GrossYearly.Equal(cap))
	assert.True(t, records[3].GrossYearly.Equal(cap))
}

// TestStartingValuesAboveCapsAreClamped: caps are hard ceilings from
// year one, not only during hikes.
func TestStartingValuesAboveCapsAreClamped(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.StartingGrossYearly = decimal.NewFromInt(6000000)
	a.StartingMonthlyInvestment = decimal.NewFromInt(150000)

	records, err := engine.RunProjection(a)
	require.NoError(t, err)
	assert.True(t, records[0].GrossYearly.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, records[0].MonthlyInvestment.Equal(decimal.NewFromInt(100000)))
}

// TestZeroCapMeansUncapped: a zero cap disables the ceiling.
func TestZeroCapMeansUncapped(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.StartingGrossYearly = decimal.NewFromInt(4800000)
	a.SalaryHikeRate = decimal.NewFromFloat(0.10)
	a.SalaryCap = decimal.Zero
	a.HorizonYears = 2

	records, err := engine.RunProjection(a)
	require.NoError(t, err)
	assert.True(t, records[1].GrossYearly.Equal(decimal.NewFromInt(5280000)))
}

// TestAffordabilityClamp verifies the investment target is clamped to
// available cash rather than driving residual cash negative.
func TestAffordabilityClamp(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.StartingGrossYearly = decimal.NewFromInt(600000)
	a.StartingMonthlyInvestment = decimal.NewFromInt(60000)
	a.OtherMonthlyDeductions = decimal.NewFromInt(2000)
	a.HorizonYears = 1

	records, err := engine.RunProjection(a)
	require.NoError(t, err)
	r := records[0]

	// Taxable 550,000 -> 7,500 slab tax -> 7,800 with cess.
	// Net = 600,000 - 7,800 - 28,800 - 2,400 = 561,000 -> 46,750/month.
	assert.True(t, r.NetMonthly.Equal(decimal.NewFromInt(46750)))
	assert.True(t, r.MonthlyInvestment.Equal(decimal.NewFromInt(44750)), "clamped to net - other, got %s", r.MonthlyInvestment)
	assert.True(t, r.SalaryLeftMonthly.IsZero(), "everything left was invested")
	assert.Equal(t, "High", r.Remark)
}

// TestProjectionInvariants checks the engine's core invariants across a
// long horizon: non-negative residual cash, monotone cumulative
// principal, portfolio >= principal for non-negative returns, and the
// remark threshold.
func TestProjectionInvariants(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.HorizonYears = 30
	a.SalaryHikeRate = decimal.NewFromFloat(0.05)

	records, err := engine.RunProjection(a)
	require.NoError(t, err)
	require.Len(t, records, 30)

	threshold := decimal.NewFromInt(40)
	prevInvested := decimal.Zero
	for _, r := range records {
		assert.False(t, r.SalaryLeftMonthly.IsNegative(),
			"year %d residual cash is negative: %s", r.Year, r.SalaryLeftMonthly)
		assert.True(t, r.RunningInvestTotal.GreaterThanOrEqual(prevInvested),
			"year %d invested principal decreased", r.Year)
		assert.True(t, r.CumulativeReturn.GreaterThanOrEqual(r.RunningInvestTotal),
			"year %d portfolio below principal with positive returns", r.Year)
		if r.InvestPercent.GreaterThan(threshold) {
			assert.Equal(t, "High", r.Remark, "year %d", r.Year)
		} else {
			assert.Equal(t, "Good", r.Remark, "year %d", r.Year)
		}
		prevInvested = r.RunningInvestTotal
	}
}

// TestOtherDeductionsFlat: other deductions pass through unchanged,
// never growth-adjusted.
func TestOtherDeductionsFlat(t *testing.T) {
	engine := NewProjectionEngine()

	a := baseAssumptions()
	a.HorizonYears = 10
	a.SalaryHikeRate = decimal.NewFromFloat(0.08)

	records, err := engine.RunProjection(a)
	require.NoError(t, err)
	for _, r := range records {
		assert.True(t, r.OtherDeductionsMonthly.Equal(decimal.NewFromInt(2000)), "year %d", r.Year)
	}
}

// TestConcurrentRunsShareEngine: one engine instance serves parallel
// runs because all per-run state is local to RunProjection.
func TestConcurrentRunsShareEngine(t *testing.T) {
	engine := NewProjectionEngine()
	a := baseAssumptions()

	expected, err := engine.RunProjection(a)
	require.NoError(t, err)

	done := make(chan []domain.YearRecord, 8)
	for i := 0; i < 8; i++ {
		go func() {
			records, err := engine.RunProjection(a)
			assert.NoError(t, err)
			done <- records
		}()
	}
	for i := 0; i < 8; i++ {
		records := <-done
		require.Len(t, records, len(expected))
		for y := range records {
			assert.True(t, records[y].CumulativeReturn.Equal(expected[y].CumulativeReturn),
				"run diverged at year %d", y+1)
		}
	}
}

func TestEngineRunBundlesSummary(t *testing.T) {
	engine := NewProjectionEngine()

	result, err := engine.Run(baseAssumptions())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Records, 5)
	assert.True(t, result.Summary.FinalInvested.Equal(result.Records[4].RunningInvestTotal))
	assert.True(t, result.Summary.FinalPortfolio.Equal(result.Records[4].CumulativeReturn))
}
