package transform

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"restaurant_dashboard/internal/models"
)

const notAvailable = "N/A"

// FormatCurrency renders an amount as pounds sterling, e.g. "£1,234.50" or "-£12.00".
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "£" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercentage renders a percentage with one decimal place, e.g. "42.5%".
func FormatPercentage(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}

// FormatDate renders a date as dd/mm/yyyy in loc. Unreadable input is returned unchanged.
func FormatDate(value string, loc *time.Location) string {
	t, ok := ParseTimestamp(value, loc)
	if !ok {
		return value
	}
	return t.Format("02/01/2006")
}

// FormatFinancialMetrics renders each metric as currency, "N/A" when absent.
func FormatFinancialMetrics(m models.FinancialMetrics) models.FinancialMetricsDisplay {
	return models.FinancialMetricsDisplay{
		TotalRevenue:      formatOptionalCurrency(m.TotalRevenue),
		CostOfGoodsSold:   formatOptionalCurrency(m.CostOfGoodsSold),
		OperatingExpenses: formatOptionalCurrency(m.OperatingExpenses),
		NetProfit:         formatOptionalCurrency(m.NetProfit),
	}
}

func formatOptionalCurrency(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return FormatCurrency(*v)
}
