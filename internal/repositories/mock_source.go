package repositories

import (
	"context"

	"restaurant_dashboard/internal/models"
)

type mockRecordSource struct {
	tables map[string][]models.RawRecord
}

// NewMockRecordSource serves built-in sample data. It stands in for Airtable
// when no credentials are configured.
func NewMockRecordSource() RecordSource {
	return &mockRecordSource{tables: sampleTables()}
}

// NewStaticRecordSource serves the given tables as-is.
func NewStaticRecordSource(tables map[string][]models.RawRecord) RecordSource {
	return &mockRecordSource{tables: tables}
}

// FetchAll returns a copy of the table; unknown tables are empty.
func (s *mockRecordSource) FetchAll(_ context.Context, table string) ([]models.RawRecord, error) {
	src := s.tables[table]
	out := make([]models.RawRecord, 0, len(src))
	for _, r := range src {
		fields := make(map[string]any, len(r.Fields))
		for k, v := range r.Fields {
			fields[k] = v
		}
		out = append(out, models.RawRecord{ID: r.ID, Fields: fields})
	}
	return out, nil
}

func sampleTables() map[string][]models.RawRecord {
	return map[string][]models.RawRecord{
		models.TableBookingCapacity: {
			{ID: "mock1", Fields: map[string]any{"Date": "2023-06-01", "Time Slot": "12:00 PM", "Seats Available": 40.0, "Seats Booked": 80.0, "Average Booking Lead Time": 3.5}},
			{ID: "mock2", Fields: map[string]any{"Date": "2023-06-01", "Time Slot": "6:00 PM", "Seats Available": 10.0, "Seats Booked": 110.0, "Average Booking Lead Time": 6.0}},
			{ID: "mock3", Fields: map[string]any{"Date": "2023-06-02", "Time Slot": "12:00 PM", "Seats Available": 60.0, "Seats Booked": 60.0, "Average Booking Lead Time": 2.0, "Booking Notes": "Private party in the garden room"}},
		},
		models.TableCoverTracking: {
			{ID: "mock1", Fields: map[string]any{"Date": "2023-06-01", "Day of Week": "Thursday", "Total Covers": 190.0, "Peak Time": "7:30 PM", "Dining Trend Notes": "Strong walk-in trade"}},
			{ID: "mock2", Fields: map[string]any{"Date": "2023-06-02", "Day of Week": "Friday", "Total Covers": 175.0, "Peak Time": "8:00 PM"}},
		},
		models.TableFinancialOverview: {
			{ID: "mock1", Fields: map[string]any{"Date": "2023-06-01", "Total Revenue": 8500.0, "Cost of Goods Sold (COGS)": 2550.0, "Operating Expenses": 3100.0, "Net Profit": 2850.0, "Revenue Breakdown": "70% Food, 30% Beverage"}},
			{ID: "mock2", Fields: map[string]any{"Date": "2023-06-02", "Total Revenue": 7800.0, "Cost of Goods Sold (COGS)": 2340.0, "Operating Expenses": 2950.0, "Net Profit": 2510.0, "Revenue Breakdown": "Food: 65%, Beverage: 35%"}},
		},
		models.TableStaffScheduling: {
			{ID: "mock1", Fields: map[string]any{"Staff Name": "Alex Morgan", "Role": "Server", "Shift Start": "2023-06-01T11:00:00.000Z", "Shift End": "2023-06-01T16:00:00.000Z", "Forecasted Covers": 60.0, "Scheduled Hours": 5.0}},
			{ID: "mock2", Fields: map[string]any{"Staff Name": "Jamie Lee", "Role": "Chef", "Shift Start": "2023-06-01T15:00:00.000Z", "Shift End": "2023-06-01T23:00:00.000Z", "Forecasted Covers": 120.0, "Scheduled Hours": 8.0}},
			{ID: "mock3", Fields: map[string]any{"Staff Name": "Robin Park", "Role": "Bartender", "Shift Start": "2023-06-01T20:00:00.000Z", "Shift End": "2023-06-02T01:00:00.000Z", "Forecasted Covers": 50.0, "Scheduled Hours": 5.0}},
		},
		models.TableStockInsights: {
			{ID: "mock1", Fields: map[string]any{"Item Name": "Ribeye Steak", "Category": "Meat", "Current Stock": 45.0, "Reorder Level": 20.0, "Usage Rate (per day)": 6.0, "Last Updated": "2023-06-01"}},
			{ID: "mock2", Fields: map[string]any{"Item Name": "House Red Wine", "Category": "Beverage", "Current Stock": 18.0, "Reorder Level": 15.0, "Usage Rate (per day)": 4.0, "Last Updated": "2023-05-30"}},
			{ID: "mock3", Fields: map[string]any{"Item Name": "House Red Wine", "Category": "Beverage", "Current Stock": 12.0, "Reorder Level": 15.0, "Usage Rate (per day)": 4.0, "Low Stock Alert": "Reorder today", "Last Updated": "2023-06-01"}},
			{ID: "mock4", Fields: map[string]any{"Item Name": "Truffle Oil", "Category": "Pantry", "Current Stock": 0.0, "Reorder Level": 2.0, "Usage Rate (per day)": 0.5, "Last Updated": "2023-06-01"}},
		},
	}
}
