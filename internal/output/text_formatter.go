package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/incomehelper/salary-projector/internal/domain"
)

// TextFormatter implements the fixed-width plain-text report: a column
// description header followed by one row per projected year.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

// textColumn couples a header, its width and the cell renderer.
type textColumn struct {
	header string
	width  int
	cell   func(*domain.YearRecord) string
}

var textColumns = []textColumn{
	{"Year", 5, func(r *domain.YearRecord) string { return fmt.Sprintf("%d", r.Year) }},
	{"Gross/Y", 10, func(r *domain.YearRecord) string { return FormatAmount(r.GrossYearly) }},
	{"Gross/M", 10, func(r *domain.YearRecord) string { return FormatAmount(r.GrossMonthly) }},
	{"Tax/Y", 9, func(r *domain.YearRecord) string { return FormatAmount(r.TaxYearly) }},
	{"Tax/M", 8, func(r *domain.YearRecord) string { return FormatAmount(r.TaxMonthly) }},
	{"Net/Y", 10, func(r *domain.YearRecord) string { return FormatAmount(r.NetYearly) }},
	{"Net/M", 9, func(r *domain.YearRecord) string { return FormatAmount(r.NetMonthly) }},
	{"Statutory/M", 12, func(r *domain.YearRecord) string { return FormatAmount(r.StatutoryDeductionsMonthly) }},
	{"Other/M", 9, func(r *domain.YearRecord) string { return FormatAmount(r.OtherDeductionsMonthly) }},
	{"Invest/Y", 10, func(r *domain.YearRecord) string { return FormatAmount(r.TotalInvestYearly) }},
	{"Invest/M", 9, func(r *domain.YearRecord) string { return FormatAmount(r.MonthlyInvestment) }},
	{"Invest %", 9, func(r *domain.YearRecord) string { return r.InvestPercent.StringFixed(2) }},
	{"Left/M", 9, func(r *domain.YearRecord) string { return FormatAmount(r.SalaryLeftMonthly) }},
	{"Remark", 7, func(r *domain.YearRecord) string { return r.Remark }},
	{"Invested", 12, func(r *domain.YearRecord) string { return FormatAmount(r.RunningInvestTotal) }},
	{"Portfolio", 13, func(r *domain.YearRecord) string { return FormatAmount(r.CumulativeReturn) }},
	{"Return %", 9, func(r *domain.YearRecord) string { return r.ReturnPercent.StringFixed(2) }},
}

// columnDescriptions explain what each table column represents.
var columnDescriptions = [][2]string{
	{"Gross/Y", "Total salary earned in the year before deductions."},
	{"Gross/M", "Monthly salary before deductions."},
	{"Tax/Y", "Income tax calculated on yearly income, including cess."},
	{"Tax/M", "Income tax applicable per month."},
	{"Net/Y", "Take-home salary after tax, employee PF and professional tax."},
	{"Net/M", "Monthly take-home salary."},
	{"Statutory/M", "Employee PF plus professional tax per month."},
	{"Other/M", "Other fixed deductions you entered (monthly)."},
	{"Invest/Y", "Total amount invested in the year."},
	{"Invest/M", "Monthly investment after capping and affordability."},
	{"Invest %", "Investment as a percentage of monthly take-home."},
	{"Left/M", "Cash remaining each month after all outflows."},
	{"Invested", "Total principal invested so far."},
	{"Portfolio", "Portfolio value including compounded returns."},
	{"Return %", "Percentage gain on total invested principal."},
}

func (t TextFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	buf.WriteString("==== Column Descriptions ====\n")
	for _, d := range columnDescriptions {
		fmt.Fprintf(buf, "%-20s: %s\n", d[0], d[1])
	}
	buf.WriteString("\n")

	var header strings.Builder
	for i, c := range textColumns {
		if i > 0 {
			header.WriteString("|")
		}
		fmt.Fprintf(&header, "%-*s", c.width, c.header)
	}
	buf.WriteString(header.String() + "\n")
	buf.WriteString(strings.Repeat("-", len(header.String())) + "\n")

	for i := range result.Records {
		r := &result.Records[i]
		for j, c := range textColumns {
			if j > 0 {
				buf.WriteString("|")
			}
			fmt.Fprintf(buf, "%-*s", c.width, c.cell(r))
		}
		buf.WriteString("\n")
	}

	s := result.Summary
	buf.WriteString("\n==== Summary ====\n")
	fmt.Fprintf(buf, "Final invested principal : %s\n", FormatCurrency(s.FinalInvested))
	fmt.Fprintf(buf, "Final portfolio value    : %s\n", FormatCurrency(s.FinalPortfolio))
	fmt.Fprintf(buf, "Investment CAGR          : %s\n", FormatPercentage(s.InvestmentCAGR))
	fmt.Fprintf(buf, "Portfolio CAGR           : %s\n", FormatPercentage(s.PortfolioCAGR))
	fmt.Fprintf(buf, "Avg effective tax rate   : %s\n", FormatPercentage(s.AvgEffectiveTax))
	if s.Milestones.BreakEvenYear > 0 {
		fmt.Fprintf(buf, "Returns surpassed investments in year %d\n", s.Milestones.BreakEvenYear)
	} else {
		buf.WriteString("Returns have not surpassed investments yet.\n")
	}
	fmt.Fprintf(buf, "Max net salary year      : %d\n", s.Milestones.MaxNetSalaryYear)
	fmt.Fprintf(buf, "Min net salary year      : %d\n", s.Milestones.MinNetSalaryYear)

	return buf.Bytes(), nil
}
