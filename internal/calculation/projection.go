package calculation

import (
	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Salary breakdown constants. Basic pay is 40% of gross; both employee
// and employer contribute 12% of basic to the provident fund (employer
// PF is informational only and never deducted from take-home).
// Professional tax is a flat 200/month and does not escalate over the
// horizon.
var (
	basicPayFraction      = decimal.NewFromFloat(0.40)
	providentFundFraction = decimal.NewFromFloat(0.12)
	professionalTaxMonth  = decimal.NewFromInt(200)

	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	highInvestThreshold = decimal.NewFromInt(40)
)

// runningState is the carried accumulator for one projection run,
// mutated once per year and discarded afterwards. Never shared across
// concurrent runs.
type runningState struct {
	grossYearly      decimal.Decimal
	monthlyTarget    decimal.Decimal
	runningInvested  decimal.Decimal
	cumulativeReturn decimal.Decimal
}

// capped clamps v to cap when a positive cap is configured. Caps are
// hard ceilings: once reached, the value stays at the cap even though
// the hike rate would imply further growth.
func capped(v, cap decimal.Decimal) decimal.Decimal {
	if cap.IsPositive() && v.GreaterThan(cap) {
		return cap
	}
	return v
}

// RunProjection produces the ordered YearRecord sequence for the given
// assumptions. It validates all inputs up front and never returns a
// partial sequence on failure.
func (pe *ProjectionEngine) RunProjection(assumptions domain.ProjectionAssumptions) ([]domain.YearRecord, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}

	state := runningState{
		grossYearly:   capped(assumptions.StartingGrossYearly, assumptions.SalaryCap),
		monthlyTarget: capped(assumptions.StartingMonthlyInvestment, assumptions.MonthlyInvestmentCap),
	}

	records := make([]domain.YearRecord, 0, assumptions.HorizonYears)
	for year := 1; year <= assumptions.HorizonYears; year++ {
		if year > 1 {
			state.grossYearly = capped(state.grossYearly.Mul(one.Add(assumptions.SalaryHikeRate)), assumptions.SalaryCap)
			state.monthlyTarget = capped(state.monthlyTarget.Mul(one.Add(assumptions.InvestmentHikeRate)), assumptions.MonthlyInvestmentCap)
		}

		record, err := pe.projectYear(year, &state, assumptions)
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		pe.Logger.Debugf("year %d: gross=%s net/m=%s invest/m=%s portfolio=%s",
			year, record.GrossYearly.StringFixed(0), record.NetMonthly.StringFixed(0),
			record.MonthlyInvestment.StringFixed(0), record.CumulativeReturn.StringFixed(0))
	}

	return records, nil
}

// projectYear derives one year's record from the carried state and
// updates the state's cumulative totals.
func (pe *ProjectionEngine) projectYear(year int, state *runningState, assumptions domain.ProjectionAssumptions) (domain.YearRecord, error) {
	gross := state.grossYearly

	// Salary breakdown
	basic := gross.Mul(basicPayFraction)
	employeePF := basic.Mul(providentFundFraction)
	employerPF := basic.Mul(providentFundFraction)
	profTaxYearly := professionalTaxMonth.Mul(twelve)

	taxYearly, err := pe.TaxCalc.ComputeTax(gross)
	if err != nil {
		return domain.YearRecord{}, err
	}

	// Net take-home: gross less income tax, employee PF and
	// professional tax. Employer PF does not reduce take-home.
	netYearly := gross.Sub(taxYearly).Sub(employeePF).Sub(profTaxYearly)
	netMonthly := netYearly.Div(twelve)

	// Affordability clamp: investment can never drive residual cash
	// negative. Falling short of the target is normal control flow.
	available := netMonthly.Sub(assumptions.OtherMonthlyDeductions)
	if available.IsNegative() {
		available = decimal.Zero
	}
	monthlyInvestment := decimal.Min(state.monthlyTarget, available)
	if monthlyInvestment.LessThan(state.monthlyTarget) {
		pe.Logger.Debugf("year %d: investment target %s clamped to %s by available cash",
			year, state.monthlyTarget.StringFixed(0), monthlyInvestment.StringFixed(0))
	}

	salaryLeftMonth := netMonthly.Sub(assumptions.OtherMonthlyDeductions).Sub(monthlyInvestment)

	investPercent := decimal.Zero
	if netMonthly.IsPositive() {
		investPercent = monthlyInvestment.Div(netMonthly).Mul(hundred)
	}
	remark := "Good"
	if investPercent.GreaterThan(highInvestThreshold) {
		remark = "High"
	}

	// Cumulative state: this year's contributions join the portfolio,
	// then the whole balance compounds once at year end.
	totalInvestYearly := monthlyInvestment.Mul(twelve)
	state.runningInvested = state.runningInvested.Add(totalInvestYearly)
	state.cumulativeReturn = state.cumulativeReturn.Add(totalInvestYearly).Mul(one.Add(assumptions.ExpectedAnnualReturn))

	returnPercent := decimal.Zero
	if state.runningInvested.IsPositive() {
		returnPercent = state.cumulativeReturn.Sub(state.runningInvested).Div(state.runningInvested).Mul(hundred)
	}

	return domain.YearRecord{
		Year:                       year,
		GrossYearly:                gross,
		GrossMonthly:               gross.Div(twelve),
		BasicYearly:                basic,
		EmployeePFYearly:           employeePF,
		EmployerPFYearly:           employerPF,
		ProfessionalTaxYearly:      profTaxYearly,
		TaxYearly:                  taxYearly,
		TaxMonthly:                 taxYearly.Div(twelve),
		NetYearly:                  netYearly,
		NetMonthly:                 netMonthly,
		StatutoryDeductionsMonthly: employeePF.Add(profTaxYearly).Div(twelve),
		OtherDeductionsMonthly:     assumptions.OtherMonthlyDeductions,
		TotalInvestYearly:          totalInvestYearly,
		MonthlyInvestment:          monthlyInvestment,
		SalaryLeftMonthly:          salaryLeftMonth,
		InvestPercent:              investPercent,
		Remark:                     remark,
		RunningInvestTotal:         state.runningInvested,
		CumulativeReturn:           state.cumulativeReturn,
		ReturnPercent:              returnPercent,
	}, nil
}
