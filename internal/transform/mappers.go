package transform

import (
	"time"

	"restaurant_dashboard/internal/models"
)

// Upstream column names.
const (
	fieldDate  = "Date"
	fieldNotes = "Notes"

	fieldTimeSlot        = "Time Slot"
	fieldSeatsAvailable  = "Seats Available"
	fieldSeatsBooked     = "Seats Booked"
	fieldAverageLeadTime = "Average Booking Lead Time"
	fieldBookingNotes    = "Booking Notes"

	fieldDayOfWeek        = "Day of Week"
	fieldTotalCovers      = "Total Covers"
	fieldPeakTime         = "Peak Time"
	fieldDiningTrendNotes = "Dining Trend Notes"

	fieldTotalRevenue      = "Total Revenue"
	fieldCOGS              = "Cost of Goods Sold (COGS)"
	fieldOperatingExpenses = "Operating Expenses"
	fieldNetProfit         = "Net Profit"
	fieldRevenueBreakdown  = "Revenue Breakdown"

	fieldStaffName        = "Staff Name"
	fieldRole             = "Role"
	fieldShiftStart       = "Shift Start"
	fieldShiftEnd         = "Shift End"
	fieldForecastedCovers = "Forecasted Covers"
	fieldScheduledHours   = "Scheduled Hours"

	fieldItemName      = "Item Name"
	fieldCategory      = "Category"
	fieldCurrentStock  = "Current Stock"
	fieldReorderLevel  = "Reorder Level"
	fieldUsageRate     = "Usage Rate (per day)"
	fieldLowStockAlert = "Low Stock Alert"
	fieldLastUpdated   = "Last Updated"
)

// MapBookingCapacities converts Booking Capacity rows. The upstream
// "Occupancy Rate" column is ignored and recomputed from the seat counts.
func MapBookingCapacities(records []models.RawRecord) []models.BookingCapacity {
	out := make([]models.BookingCapacity, 0, len(records))
	for _, r := range records {
		f := fieldBag(r.Fields)
		b := models.BookingCapacity{
			ID:              r.ID,
			Date:            f.str(fieldDate),
			TimeSlot:        f.str(fieldTimeSlot),
			SeatsAvailable:  f.integer(fieldSeatsAvailable),
			SeatsBooked:     f.integer(fieldSeatsBooked),
			AverageLeadTime: f.number(fieldAverageLeadTime),
			Notes:           f.optionalStr(fieldBookingNotes),
		}
		b.OccupancyRate = occupancyRate(b.SeatsAvailable, b.SeatsBooked)
		out = append(out, b)
	}
	return out
}

// MapCoverTrackers converts Cover Tracking rows.
func MapCoverTrackers(records []models.RawRecord) []models.CoverTracker {
	out := make([]models.CoverTracker, 0, len(records))
	for _, r := range records {
		f := fieldBag(r.Fields)
		out = append(out, models.CoverTracker{
			ID:               r.ID,
			Date:             f.str(fieldDate),
			DayOfWeek:        f.str(fieldDayOfWeek),
			TotalCovers:      f.integer(fieldTotalCovers),
			PeakTime:         f.str(fieldPeakTime),
			DiningTrendNotes: f.optionalStr(fieldDiningTrendNotes),
			Notes:            f.optionalStr(fieldNotes),
		})
	}
	return out
}

// MapFinancialOverviews converts Financial Overview rows. The revenue
// breakdown must be free text; structured values are treated as absent.
func MapFinancialOverviews(records []models.RawRecord) []models.FinancialOverview {
	out := make([]models.FinancialOverview, 0, len(records))
	for _, r := range records {
		f := fieldBag(r.Fields)
		out = append(out, models.FinancialOverview{
			ID:                r.ID,
			Date:              f.str(fieldDate),
			TotalRevenue:      f.optionalNumber(fieldTotalRevenue),
			CostOfGoodsSold:   f.optionalNumber(fieldCOGS),
			OperatingExpenses: f.optionalNumber(fieldOperatingExpenses),
			NetProfit:         f.optionalNumber(fieldNetProfit),
			RevenueBreakdown:  f.text(fieldRevenueBreakdown),
		})
	}
	return out
}

// MapStaffSchedules converts Staff Scheduling rows. Shift timestamps are
// expressed in loc; unparsable ones are left nil.
func MapStaffSchedules(records []models.RawRecord, loc *time.Location) []models.StaffSchedule {
	out := make([]models.StaffSchedule, 0, len(records))
	for _, r := range records {
		f := fieldBag(r.Fields)
		out = append(out, models.StaffSchedule{
			ID:               r.ID,
			StaffName:        f.str(fieldStaffName),
			Role:             f.str(fieldRole),
			ShiftStart:       f.timestamp(fieldShiftStart, loc),
			ShiftEnd:         f.timestamp(fieldShiftEnd, loc),
			ForecastedCovers: f.number(fieldForecastedCovers),
			ScheduledHours:   f.number(fieldScheduledHours),
			Notes:            f.optionalStr(fieldNotes),
		})
	}
	return out
}

// MapStockItems converts Stock Insights rows and classifies each one.
// Notes doubles as the display category when present.
func MapStockItems(records []models.RawRecord, loc *time.Location) []models.StockItem {
	out := make([]models.StockItem, 0, len(records))
	for _, r := range records {
		f := fieldBag(r.Fields)
		notes := f.optionalStr(fieldNotes)
		category := f.str(fieldCategory)
		if notes != nil {
			category = *notes
		}
		item := models.StockItem{
			ID:            r.ID,
			Name:          f.str(fieldItemName),
			Category:      category,
			CurrentStock:  f.number(fieldCurrentStock),
			ReorderLevel:  f.number(fieldReorderLevel),
			UsageRate:     f.number(fieldUsageRate),
			LowStockAlert: f.optionalStr(fieldLowStockAlert),
			LastUpdated:   f.timestamp(fieldLastUpdated, loc),
			Notes:         notes,
		}
		item.Status = ClassifyStock(item.CurrentStock, item.ReorderLevel)
		out = append(out, item)
	}
	return out
}
