package transform

import "restaurant_dashboard/internal/models"

// CalculateOccupancy derives the occupancy snapshot for one time slot.
func CalculateOccupancy(b models.BookingCapacity) models.OccupancyData {
	return models.OccupancyData{
		TotalSeats:      b.SeatsAvailable + b.SeatsBooked,
		BookedSeats:     b.SeatsBooked,
		OccupancyRate:   occupancyRate(b.SeatsAvailable, b.SeatsBooked),
		AverageLeadTime: b.AverageLeadTime,
	}
}

// occupancyRate is booked / (available + booked) as a whole percentage, 0 with no seats.
func occupancyRate(available, booked int) int {
	total := available + booked
	if total <= 0 {
		return 0
	}
	return int(roundHalfUp(float64(booked) / float64(total) * 100))
}
