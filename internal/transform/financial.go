package transform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant_dashboard/internal/models"
)

// fallbackRevenueCategory labels the single entry used when no part of the
// breakdown text could be read.
const fallbackRevenueCategory = "Total Revenue"

// Revenue breakdown shapes, tried in this order:
//
//	"60% dinner"
//	"Dinner: 60%"
//	"60% - Dinner"
var (
	pctThenCategory     = regexp.MustCompile(`(\d+(?:\.\d+)?)%\s+(.*)`)
	categoryThenPct     = regexp.MustCompile(`(.*?):\s*(\d+(?:\.\d+)?)%`)
	pctDashThenCategory = regexp.MustCompile(`(\d+(?:\.\d+)?)%\s*-\s*(.*)`)
)

// CalculateFinancialMetrics projects the headline numbers of one overview.
func CalculateFinancialMetrics(fo models.FinancialOverview) models.FinancialMetrics {
	return models.FinancialMetrics{
		TotalRevenue:      fo.TotalRevenue,
		CostOfGoodsSold:   fo.CostOfGoodsSold,
		OperatingExpenses: fo.OperatingExpenses,
		NetProfit:         fo.NetProfit,
	}
}

// ParseRevenueBreakdown reads comma separated revenue shares. Amounts are left
// at zero. Parts matching none of the known shapes are returned as unmatched.
func ParseRevenueBreakdown(breakdown string) ([]models.RevenueBreakdown, []string) {
	result := []models.RevenueBreakdown{}
	var unmatched []string
	if strings.TrimSpace(breakdown) == "" {
		return result, nil
	}

	for _, part := range strings.Split(breakdown, ",") {
		part = strings.TrimSpace(part)
		pct, category, ok := matchRevenuePart(part)
		if !ok {
			unmatched = append(unmatched, part)
			continue
		}
		result = append(result, models.RevenueBreakdown{
			Category:   category,
			Percentage: pct,
		})
	}
	return result, unmatched
}

func matchRevenuePart(part string) (float64, string, bool) {
	var pctText, category string
	if m := pctThenCategory.FindStringSubmatch(part); m != nil {
		pctText, category = m[1], m[2]
	} else if m := categoryThenPct.FindStringSubmatch(part); m != nil {
		pctText, category = m[2], m[1]
	} else if m := pctDashThenCategory.FindStringSubmatch(part); m != nil {
		pctText, category = m[1], m[2]
	} else {
		return 0, "", false
	}
	pct, err := strconv.ParseFloat(pctText, 64)
	if err != nil {
		return 0, "", false
	}
	return pct, strings.TrimSpace(category), true
}

// CalculateRevenueBreakdown prices each parsed share against the overview's
// total revenue. It returns an empty list when the total or the breakdown text
// is missing, and a single "Total Revenue" entry when nothing parses but the
// total is positive.
func CalculateRevenueBreakdown(fo models.FinancialOverview) ([]models.RevenueBreakdown, []string) {
	if fo.TotalRevenue == nil || fo.RevenueBreakdown == nil || *fo.RevenueBreakdown == "" {
		return []models.RevenueBreakdown{}, nil
	}
	total := *fo.TotalRevenue

	items, unmatched := ParseRevenueBreakdown(*fo.RevenueBreakdown)
	if len(items) == 0 {
		if total > 0 {
			return []models.RevenueBreakdown{{
				Category:   fallbackRevenueCategory,
				Percentage: 100,
				Amount:     total,
			}}, unmatched
		}
		return []models.RevenueBreakdown{}, unmatched
	}

	for i := range items {
		items[i].Amount = total * items[i].Percentage / 100
	}
	return items, unmatched
}

// SumFinancialMetrics totals metrics across days. Absent values count as zero.
func SumFinancialMetrics(metrics []models.FinancialMetrics) models.FinancialMetrics {
	var revenue, cogs, opex, profit decimal.Decimal
	add := func(acc decimal.Decimal, v *float64) decimal.Decimal {
		if v == nil {
			return acc
		}
		return acc.Add(decimal.NewFromFloat(*v))
	}
	for _, m := range metrics {
		revenue = add(revenue, m.TotalRevenue)
		cogs = add(cogs, m.CostOfGoodsSold)
		opex = add(opex, m.OperatingExpenses)
		profit = add(profit, m.NetProfit)
	}
	return models.FinancialMetrics{
		TotalRevenue:      decimalPtr(revenue),
		CostOfGoodsSold:   decimalPtr(cogs),
		OperatingExpenses: decimalPtr(opex),
		NetProfit:         decimalPtr(profit),
	}
}

func decimalPtr(d decimal.Decimal) *float64 {
	f := d.InexactFloat64()
	return &f
}
