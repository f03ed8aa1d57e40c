package models

// FinancialOverview is one day's financial summary.
// Numeric fields are nil when the upstream value is missing or not a number.
type FinancialOverview struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	TotalRevenue      *float64 `json:"totalRevenue"`
	CostOfGoodsSold   *float64 `json:"costOfGoodsSold"`
	OperatingExpenses *float64 `json:"operatingExpenses"`
	NetProfit         *float64 `json:"netProfit"`
	RevenueBreakdown  *string  `json:"revenueBreakdown"`
}

// FinancialMetrics are the four headline numbers of a FinancialOverview.
type FinancialMetrics struct {
	TotalRevenue      *float64 `json:"totalRevenue"`
	CostOfGoodsSold   *float64 `json:"costOfGoodsSold"`
	OperatingExpenses *float64 `json:"operatingExpenses"`
	NetProfit         *float64 `json:"netProfit"`
}

// RevenueBreakdown is one category's share of revenue.
type RevenueBreakdown struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// FinancialMetricsDisplay holds the headline metrics formatted as currency.
// Absent metrics are rendered as "N/A".
type FinancialMetricsDisplay struct {
	TotalRevenue      string `json:"totalRevenue"`
	CostOfGoodsSold   string `json:"costOfGoodsSold"`
	OperatingExpenses string `json:"operatingExpenses"`
	NetProfit         string `json:"netProfit"`
}
