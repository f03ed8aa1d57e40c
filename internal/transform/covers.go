package transform

import (
	"regexp"
	"strconv"
	"strings"

	"restaurant_dashboard/internal/models"
)

// defaultPeakHour is used when the peak time text cannot be parsed.
const defaultPeakHour = 12

var peakTimePattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)

// coverWeights is the fixed hourly profile around the peak, offsets -3..+3.
// It is a heuristic approximation of the day's traffic, not measured data.
var coverWeights = [...]float64{0.2, 0.4, 0.7, 1.0, 0.8, 0.5, 0.3}

const coverWeightOffset = 3

// PeakTimeToHour converts "H:MM AM/PM" text into a 24h clock hour.
func PeakTimeToHour(peakTime string) int {
	m := peakTimePattern.FindStringSubmatch(peakTime)
	if m == nil {
		return defaultPeakHour
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultPeakHour
	}
	isPM := strings.EqualFold(m[3], "PM")
	if isPM && hour != 12 {
		hour += 12
	}
	if !isPM && hour == 12 {
		hour = 0
	}
	return hour
}

// NormalizeHour maps any integer hour into [0,23].
func NormalizeHour(h int) int {
	return ((h % 24) + 24) % 24
}

// GenerateCoverData spreads a day's total covers over seven hours centred on
// the peak hour. Buckets near midnight may share an hour; they are kept as
// separate entries.
func GenerateCoverData(ct models.CoverTracker) []models.CoverData {
	peakHour := PeakTimeToHour(ct.PeakTime)

	var weightSum float64
	for _, w := range coverWeights {
		weightSum += w
	}

	out := make([]models.CoverData, 0, len(coverWeights))
	for i, w := range coverWeights {
		out = append(out, models.CoverData{
			Hour:   NormalizeHour(peakHour + i - coverWeightOffset),
			Covers: int(roundHalfUp(float64(ct.TotalCovers) * w / weightSum)),
		})
	}
	return out
}

// CreatePeakTimeData groups a tracker's cover distribution for display.
func CreatePeakTimeData(ct models.CoverTracker, covers []models.CoverData) models.PeakTimeData {
	return models.PeakTimeData{
		Day:         ct.DayOfWeek,
		Covers:      covers,
		PeakTime:    ct.PeakTime,
		TotalCovers: ct.TotalCovers,
	}
}
