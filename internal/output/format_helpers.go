package output

import (
	"github.com/incomehelper/salary-projector/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with the currency sign.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatAmount formats a decimal as whole rupees without the sign, for
// table cells.
func FormatAmount(amount decimal.Decimal) string {
	return money.FromDecimal(amount).String()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
