package output

import (
	"bytes"
	"fmt"

	"github.com/incomehelper/salary-projector/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ConsoleFormatter produces a short human-readable summary suitable
// for printing straight to the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	a := result.Assumptions
	s := result.Summary

	fmt.Fprintf(buf, "Salary & Investment Projection (%d years)\n", a.HorizonYears)
	fmt.Fprintf(buf, "Starting gross: %s/yr, starting investment: %s/mo\n",
		FormatCurrency(a.StartingGrossYearly), FormatCurrency(a.StartingMonthlyInvestment))
	fmt.Fprintf(buf, "Hikes: salary %s, investment %s; expected return %s\n\n",
		FormatPercentage(a.SalaryHikeRate.Mul(hundred)),
		FormatPercentage(a.InvestmentHikeRate.Mul(hundred)),
		FormatPercentage(a.ExpectedAnnualReturn.Mul(hundred)))

	if n := len(result.Records); n > 0 {
		first := result.Records[0]
		last := result.Records[n-1]
		fmt.Fprintf(buf, "Year 1    net: %s/mo, invested: %s/mo (%s of net, %s)\n",
			FormatCurrency(first.NetMonthly), FormatCurrency(first.MonthlyInvestment),
			FormatPercentage(first.InvestPercent), first.Remark)
		fmt.Fprintf(buf, "Year %-4d net: %s/mo, invested: %s/mo (%s of net, %s)\n\n",
			last.Year, FormatCurrency(last.NetMonthly), FormatCurrency(last.MonthlyInvestment),
			FormatPercentage(last.InvestPercent), last.Remark)
	}

	fmt.Fprintf(buf, "Total invested:  %s\n", FormatCurrency(s.FinalInvested))
	fmt.Fprintf(buf, "Portfolio value: %s (return %s)\n",
		FormatCurrency(s.FinalPortfolio), FormatPercentage(lastReturnPercent(result)))
	fmt.Fprintf(buf, "Investment CAGR: %s, Portfolio CAGR: %s\n",
		FormatPercentage(s.InvestmentCAGR), FormatPercentage(s.PortfolioCAGR))
	if s.Milestones.BreakEvenYear > 0 {
		fmt.Fprintf(buf, "Returns surpassed investments in year %d\n", s.Milestones.BreakEvenYear)
	} else {
		buf.WriteString("Returns have not surpassed investments yet\n")
	}

	return buf.Bytes(), nil
}

func lastReturnPercent(result *domain.ProjectionResult) decimal.Decimal {
	if n := len(result.Records); n > 0 {
		return result.Records[n-1].ReturnPercent
	}
	return decimal.Zero
}
