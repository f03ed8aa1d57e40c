package models

import "time"

// StaffSchedule represents one staff member's single shift.
// ShiftStart and ShiftEnd are nil when the upstream timestamp could not be parsed.
type StaffSchedule struct {
	ID               string     `json:"id"`
	StaffName        string     `json:"staffName"`
	Role             string     `json:"role"`
	ShiftStart       *time.Time `json:"shiftStart"`
	ShiftEnd         *time.Time `json:"shiftEnd"`
	ForecastedCovers float64    `json:"forecastedCovers"`
	ScheduledHours   float64    `json:"scheduledHours"`
	Notes            *string    `json:"notes,omitempty"`
}

// StaffingForecast is the staffing supply and demand for one clock hour.
type StaffingForecast struct {
	Hour             int `json:"hour"`
	ForecastedCovers int `json:"forecastedCovers"`
	ScheduledStaff   int `json:"scheduledStaff"`
	RecommendedStaff int `json:"recommendedStaff"`
}
