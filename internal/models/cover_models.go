package models

// CoverTracker holds one day's cover count and its reported peak time.
type CoverTracker struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	DayOfWeek        string  `json:"dayOfWeek"`
	TotalCovers      int     `json:"totalCovers"`
	PeakTime         string  `json:"peakTime"` // Free text, e.g. "7:30 PM"
	DiningTrendNotes *string `json:"diningTrendNotes,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// CoverData is the estimated number of covers in one hour bucket.
type CoverData struct {
	Hour   int `json:"hour"`
	Covers int `json:"covers"`
}

// PeakTimeData groups a day's hourly cover distribution.
type PeakTimeData struct {
	Day         string      `json:"day"`
	Covers      []CoverData `json:"covers"`
	PeakTime    string      `json:"peakTime"`
	TotalCovers int         `json:"totalCovers"`
}
