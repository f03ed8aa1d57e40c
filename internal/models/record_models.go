package models

// Upstream table names in the Airtable base.
const (
	TableBookingCapacity   = "Booking Capacity Overview"
	TableCoverTracking     = "Cover Tracking"
	TableFinancialOverview = "Financial Overview"
	TableStaffScheduling   = "Staff Scheduling"
	TableStockInsights     = "Stock Insights"
)

// DashboardTables lists every table the dashboard reads, in fetch order.
var DashboardTables = []string{
	TableBookingCapacity,
	TableCoverTracking,
	TableFinancialOverview,
	TableStaffScheduling,
	TableStockInsights,
}

// RawRecord is one upstream row: an opaque field bag keyed by column name.
type RawRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}
