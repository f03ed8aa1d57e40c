package transform

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_dashboard/internal/models"
)

func TestMapBookingCapacitiesRecomputesOccupancy(t *testing.T) {
	records := []models.RawRecord{
		{ID: "rec1", Fields: map[string]any{
			"Date":                      "2025-03-01",
			"Time Slot":                 "19:00",
			"Seats Available":           float64(30),
			"Seats Booked":              "10",
			"Occupancy Rate":            float64(99),
			"Average Booking Lead Time": json.Number("4.5"),
			"Booking Notes":             "Window tables held",
		}},
		{ID: "rec2", Fields: map[string]any{}},
	}

	got := MapBookingCapacities(records)

	require.Len(t, got, 2)
	assert.Equal(t, "rec1", got[0].ID)
	assert.Equal(t, "19:00", got[0].TimeSlot)
	assert.Equal(t, 30, got[0].SeatsAvailable)
	assert.Equal(t, 10, got[0].SeatsBooked)
	assert.Equal(t, 25, got[0].OccupancyRate)
	assert.Equal(t, 4.5, got[0].AverageLeadTime)
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, "Window tables held", *got[0].Notes)

	assert.Equal(t, "rec2", got[1].ID)
	assert.Equal(t, 0, got[1].OccupancyRate)
	assert.Nil(t, got[1].Notes)
}

func TestMapCoverTrackers(t *testing.T) {
	got := MapCoverTrackers([]models.RawRecord{{ID: "c1", Fields: map[string]any{
		"Date":         "2025-03-01",
		"Day of Week":  "Saturday",
		"Total Covers": float64(182),
		"Peak Time":    "7:30 PM",
		"Notes":        "Busy",
	}}})

	require.Len(t, got, 1)
	assert.Equal(t, "Saturday", got[0].DayOfWeek)
	assert.Equal(t, 182, got[0].TotalCovers)
	assert.Equal(t, "7:30 PM", got[0].PeakTime)
	assert.Nil(t, got[0].DiningTrendNotes)
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, "Busy", *got[0].Notes)
}

func TestMapFinancialOverviewsTreatsBadValuesAsAbsent(t *testing.T) {
	got := MapFinancialOverviews([]models.RawRecord{
		{ID: "f1", Fields: map[string]any{
			"Date":                      "2025-03-01",
			"Total Revenue":             float64(5000),
			"Cost of Goods Sold (COGS)": "1500.25",
			"Operating Expenses":        "n/a",
			"Revenue Breakdown":         "60% Dinner, 40% Bar",
		}},
		{ID: "f2", Fields: map[string]any{
			"Revenue Breakdown": map[string]any{"Dinner": 60},
		}},
	})

	require.Len(t, got, 2)
	require.NotNil(t, got[0].TotalRevenue)
	assert.Equal(t, 5000.0, *got[0].TotalRevenue)
	require.NotNil(t, got[0].CostOfGoodsSold)
	assert.Equal(t, 1500.25, *got[0].CostOfGoodsSold)
	assert.Nil(t, got[0].OperatingExpenses)
	assert.Nil(t, got[0].NetProfit)
	require.NotNil(t, got[0].RevenueBreakdown)
	assert.Equal(t, "60% Dinner, 40% Bar", *got[0].RevenueBreakdown)

	assert.Nil(t, got[1].TotalRevenue)
	assert.Nil(t, got[1].RevenueBreakdown)
}

func TestMapStaffSchedulesParsesShiftsInLocation(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	got := MapStaffSchedules([]models.RawRecord{
		{ID: "s1", Fields: map[string]any{
			"Staff Name":        "Sam",
			"Role":              "Server",
			"Shift Start":       "2025-03-01T16:00:00.000Z",
			"Shift End":         "2025-03-01 23:00",
			"Forecasted Covers": float64(40),
			"Scheduled Hours":   float64(7),
		}},
		{ID: "s2", Fields: map[string]any{"Shift Start": "tomorrow"}},
	}, loc)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].ShiftStart)
	assert.Equal(t, 17, got[0].ShiftStart.Hour())
	require.NotNil(t, got[0].ShiftEnd)
	assert.Equal(t, 23, got[0].ShiftEnd.Hour())
	assert.Equal(t, 40.0, got[0].ForecastedCovers)
	assert.Equal(t, 7.0, got[0].ScheduledHours)

	assert.Nil(t, got[1].ShiftStart)
	assert.Nil(t, got[1].ShiftEnd)
}

func TestMapStockItems(t *testing.T) {
	got := MapStockItems([]models.RawRecord{
		{ID: "i1", Fields: map[string]any{
			"Item Name":            "Tomatoes",
			"Category":             "Produce",
			"Current Stock":        float64(4),
			"Reorder Level":        float64(10),
			"Usage Rate (per day)": float64(2),
			"Last Updated":         "2025-03-01",
		}},
		{ID: "i2", Fields: map[string]any{
			"Item Name":     "Flour",
			"Category":      "Dry Goods",
			"Current Stock": float64(50),
			"Reorder Level": float64(10),
			"Notes":         "Bakery",
		}},
		{ID: "i3", Fields: map[string]any{"Item Name": "Saffron"}},
	}, time.UTC)

	require.Len(t, got, 3)
	assert.Equal(t, "Produce", got[0].Category)
	assert.Equal(t, models.StockStatusLowStock, got[0].Status)
	require.NotNil(t, got[0].LastUpdated)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *got[0].LastUpdated)

	assert.Equal(t, "Bakery", got[1].Category)
	assert.Equal(t, models.StockStatusInStock, got[1].Status)
	assert.Nil(t, got[1].LastUpdated)

	assert.Equal(t, models.StockStatusOutOfStock, got[2].Status)
}

func TestMappersKeepLengthAndOrder(t *testing.T) {
	records := []models.RawRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Len(t, MapBookingCapacities(records), 3)
	assert.Len(t, MapCoverTrackers(records), 3)
	assert.Len(t, MapFinancialOverviews(records), 3)
	assert.Len(t, MapStaffSchedules(records, nil), 3)

	items := MapStockItems(records, nil)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestMappersAreEmptyForNoRecords(t *testing.T) {
	assert.Empty(t, MapBookingCapacities(nil))
	assert.NotNil(t, MapStockItems(nil, nil))
}
