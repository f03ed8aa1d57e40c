package models

// BookingCapacity represents the seat inventory of one time slot.
type BookingCapacity struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	SeatsAvailable  int     `json:"seatsAvailable"`
	SeatsBooked     int     `json:"seatsBooked"`
	OccupancyRate   int     `json:"occupancyRate"` // Always recomputed from the seat counts
	AverageLeadTime float64 `json:"averageLeadTime"`
	Notes           *string `json:"notes,omitempty"`
}

// OccupancyData is the occupancy snapshot derived from one BookingCapacity.
type OccupancyData struct {
	TotalSeats      int     `json:"totalSeats"`
	BookedSeats     int     `json:"bookedSeats"`
	OccupancyRate   int     `json:"occupancyRate"`
	AverageLeadTime float64 `json:"averageLeadTime"`
}
