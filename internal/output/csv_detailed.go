package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/incomehelper/salary-projector/internal/domain"
)

// CSVDetailedExporter writes the full per-year projection table, one
// row per year with every computed column.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv" }

func (c CSVDetailedExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "GrossYearly", "GrossMonthly", "BasicYearly",
		"EmployeePFYearly", "EmployerPFYearly", "ProfessionalTaxYearly",
		"TaxYearly", "TaxMonthly", "NetYearly", "NetMonthly",
		"StatutoryDeductionsMonthly", "OtherDeductionsMonthly",
		"TotalInvestYearly", "MonthlyInvestment", "SalaryLeftMonthly",
		"InvestPercent", "Remark", "RunningInvestTotal",
		"CumulativeReturn", "ReturnPercent",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Records {
		r := &result.Records[i]
		row := []string{
			strconv.Itoa(r.Year),
			r.GrossYearly.StringFixed(2),
			r.GrossMonthly.StringFixed(2),
			r.BasicYearly.StringFixed(2),
			r.EmployeePFYearly.StringFixed(2),
			r.EmployerPFYearly.StringFixed(2),
			r.ProfessionalTaxYearly.StringFixed(2),
			r.TaxYearly.StringFixed(2),
			r.TaxMonthly.StringFixed(2),
			r.NetYearly.StringFixed(2),
			r.NetMonthly.StringFixed(2),
			r.StatutoryDeductionsMonthly.StringFixed(2),
			r.OtherDeductionsMonthly.StringFixed(2),
			r.TotalInvestYearly.StringFixed(2),
			r.MonthlyInvestment.StringFixed(2),
			r.SalaryLeftMonthly.StringFixed(2),
			r.InvestPercent.StringFixed(2),
			r.Remark,
			r.RunningInvestTotal.StringFixed(2),
			r.CumulativeReturn.StringFixed(2),
			r.ReturnPercent.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
