package models

import "time"

// DashboardData is the full dashboard envelope for one query date.
type DashboardData struct {
	Date                string              `json:"date"`
	BookingCapacities   []BookingCapacity   `json:"bookingCapacities"`
	Occupancy           *OccupancyData      `json:"occupancy"`
	CoverTrackers       []CoverTracker      `json:"coverTrackers"`
	PeakTimeData        []PeakTimeData      `json:"peakTimeData"`
	CoverData           []CoverData         `json:"coverData"`
	FinancialOverviews  []FinancialOverview `json:"financialOverviews"`
	FinancialMetrics    *FinancialMetrics   `json:"financialMetrics"`
	RevenueBreakdown    []RevenueBreakdown  `json:"revenueBreakdown"`
	StockItems          []StockItem         `json:"stockItems"`
	LowStockItems       []StockItem         `json:"lowStockItems"`
	StaffSchedules      []StaffSchedule     `json:"staffSchedules"`
	TotalScheduledHours float64             `json:"totalScheduledHours"`
	StaffingForecast    []StaffingForecast  `json:"staffingForecast"`
	LastUpdated         time.Time           `json:"lastUpdated"`
}

// BookingCapacityView is the booking capacity endpoint payload.
type BookingCapacityView struct {
	BookingCapacities []BookingCapacity `json:"bookingCapacities"`
	OccupancyData     *OccupancyData    `json:"occupancyData"`
}

// CoverTrackerView is the cover tracker endpoint payload.
type CoverTrackerView struct {
	CoverTrackers []CoverTracker `json:"coverTrackers"`
	PeakTimeData  []PeakTimeData `json:"peakTimeData"`
	CoverData     []CoverData    `json:"coverData"`
}

// FinancialOverviewView is the financial overview endpoint payload.
type FinancialOverviewView struct {
	FinancialOverviews []FinancialOverview      `json:"financialOverviews"`
	FinancialMetrics   *FinancialMetrics        `json:"financialMetrics"`
	RevenueBreakdown   []RevenueBreakdown       `json:"revenueBreakdown"`
	PeriodTotals       FinancialMetrics         `json:"periodTotals"`
	Formatted          *FinancialMetricsDisplay `json:"formatted"`
}

// StaffSchedulingView is the staff scheduling endpoint payload.
type StaffSchedulingView struct {
	Date                  string             `json:"date,omitempty"`
	StaffSchedules        []StaffSchedule    `json:"staffSchedules"`
	TotalScheduledHours   float64            `json:"totalScheduledHours"`
	AverageScheduledHours float64            `json:"averageScheduledHours"`
	StaffingForecast      []StaffingForecast `json:"staffingForecast"`
}

// StockInsightView is the stock insight endpoint payload.
// StockItems holds every snapshot; CurrentItems holds the latest snapshot per
// item after any filter is applied.
type StockInsightView struct {
	StockItems     []StockItem  `json:"stockItems"`
	CurrentItems   []StockItem  `json:"currentItems"`
	LowStockAlerts []StockItem  `json:"lowStockAlerts"`
	Summary        StockSummary `json:"summary"`
}
