package transform

import "time"

// SelectLatestByDate returns the item whose date is the latest, or false for
// an empty list. Items with an unreadable date lose to any readable one;
// among equal dates the earlier item is kept.
func SelectLatestByDate[T any](items []T, dateOf func(T) string, loc *time.Location) (T, bool) {
	var (
		best     T
		bestTime time.Time
		bestOK   bool
	)
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestTime, bestOK = ParseTimestamp(dateOf(items[0]), loc)
	for _, item := range items[1:] {
		t, ok := ParseTimestamp(dateOf(item), loc)
		if !ok {
			continue
		}
		if !bestOK || t.After(bestTime) {
			best, bestTime, bestOK = item, t, true
		}
	}
	return best, true
}
