package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restaurant_dashboard/internal/models"
)

func bookingDate(b models.BookingCapacity) string { return b.Date }

func TestSelectLatestByDate(t *testing.T) {
	items := []models.BookingCapacity{
		{ID: "a", Date: "2025-03-01"},
		{ID: "b", Date: "2025-03-04"},
		{ID: "c", Date: "2025-03-02"},
		{ID: "d", Date: "2025-03-04"},
	}

	got, ok := SelectLatestByDate(items, bookingDate, time.UTC)

	assert.True(t, ok)
	assert.Equal(t, "b", got.ID)
}

func TestSelectLatestByDateInvalidDates(t *testing.T) {
	got, ok := SelectLatestByDate([]models.BookingCapacity{
		{ID: "bad", Date: "soon"},
		{ID: "good", Date: "2025-01-01"},
		{ID: "worse", Date: ""},
	}, bookingDate, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "good", got.ID)

	got, ok = SelectLatestByDate([]models.BookingCapacity{{ID: "only", Date: "soon"}}, bookingDate, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, "only", got.ID)
}

func TestSelectLatestByDateEmpty(t *testing.T) {
	_, ok := SelectLatestByDate(nil, bookingDate, time.UTC)
	assert.False(t, ok)
}
