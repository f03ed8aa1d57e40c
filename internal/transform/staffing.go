package transform

import (
	"math"
	"sort"
	"strings"
	"time"

	"restaurant_dashboard/internal/models"
)

// coversPerStaff is how many forecasted covers one staff member can serve in an hour.
const coversPerStaff = 20

// GenerateStaffingForecast aggregates shifts into per-hour staff counts and
// forecasted covers. Only staffed hours are returned, ordered by hour.
// Schedules without a usable start or end are skipped and their IDs returned.
func GenerateStaffingForecast(schedules []models.StaffSchedule) ([]models.StaffingForecast, []string) {
	var (
		staff   [24]int
		covers  [24]float64
		skipped []string
	)

	for _, s := range schedules {
		if s.ShiftStart == nil || s.ShiftEnd == nil {
			skipped = append(skipped, s.ID)
			continue
		}
		hours := shiftHours(s.ShiftStart.Hour(), s.ShiftEnd.Hour())
		share := s.ForecastedCovers / float64(len(hours))
		for _, h := range hours {
			staff[h]++
			covers[h] += share
		}
	}

	out := []models.StaffingForecast{}
	for h := 0; h < 24; h++ {
		if staff[h] == 0 {
			continue
		}
		forecasted := int(roundHalfUp(covers[h]))
		out = append(out, models.StaffingForecast{
			Hour:             h,
			ForecastedCovers: forecasted,
			ScheduledStaff:   staff[h],
			RecommendedStaff: int(math.Ceil(float64(forecasted) / coversPerStaff)),
		})
	}
	return out, skipped
}

// shiftHours lists the clock hours from start to end inclusive, wrapping past midnight.
func shiftHours(start, end int) []int {
	var hours []int
	if end >= start {
		for h := start; h <= end; h++ {
			hours = append(hours, h)
		}
		return hours
	}
	for h := start; h < 24; h++ {
		hours = append(hours, h)
	}
	for h := 0; h <= end; h++ {
		hours = append(hours, h)
	}
	return hours
}

// CalculateTotalScheduledHours sums the scheduled hours of every shift.
func CalculateTotalScheduledHours(schedules []models.StaffSchedule) float64 {
	var total float64
	for _, s := range schedules {
		total += s.ScheduledHours
	}
	return total
}

// AverageScheduledHours is the mean scheduled hours per shift, rounded to one decimal.
func AverageScheduledHours(schedules []models.StaffSchedule) float64 {
	if len(schedules) == 0 {
		return 0
	}
	avg := CalculateTotalScheduledHours(schedules) / float64(len(schedules))
	return roundHalfUp(avg*10) / 10
}

// SchedulesOnDay keeps shifts that start on the same calendar day as day,
// compared in day's location.
func SchedulesOnDay(schedules []models.StaffSchedule, day time.Time) []models.StaffSchedule {
	y, m, d := day.Date()
	out := []models.StaffSchedule{}
	for _, s := range schedules {
		if s.ShiftStart == nil {
			continue
		}
		sy, sm, sd := s.ShiftStart.In(day.Location()).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}
	return out
}

// SortSchedulesByRole returns a copy ordered alphabetically by role, case-insensitively.
// Shifts sharing a role keep their input order.
func SortSchedulesByRole(schedules []models.StaffSchedule) []models.StaffSchedule {
	out := make([]models.StaffSchedule, len(schedules))
	copy(out, schedules)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Role) < strings.ToLower(out[j].Role)
	})
	return out
}
