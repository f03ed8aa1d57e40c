package transform

import (
	"math"
	"strings"
	"time"

	"restaurant_dashboard/pkg/utils"
)

// fieldBag reads typed values out of an upstream field map.
// Missing or mistyped values come back as zero values or nil, never as errors.
type fieldBag map[string]any

func (f fieldBag) str(key string) string {
	s, _ := utils.ToString(f[key])
	return s
}

func (f fieldBag) optionalStr(key string) *string {
	s, _ := utils.ToString(f[key])
	return utils.NewNullString(s)
}

// text is like optionalStr but accepts only real strings, so structured
// values such as objects or arrays never pass as free text.
func (f fieldBag) text(key string) *string {
	s, ok := f[key].(string)
	if !ok {
		return nil
	}
	return utils.NewNullString(s)
}

func (f fieldBag) number(key string) float64 {
	v, _ := utils.ToFloat64(f[key])
	return v
}

func (f fieldBag) optionalNumber(key string) *float64 {
	v, ok := utils.ToFloat64(f[key])
	if !ok {
		return nil
	}
	return &v
}

func (f fieldBag) integer(key string) int {
	return int(roundHalfUp(f.number(key)))
}

func (f fieldBag) timestamp(key string, loc *time.Location) *time.Time {
	s, ok := f[key].(string)
	if !ok {
		return nil
	}
	t, ok := ParseTimestamp(s, loc)
	if !ok {
		return nil
	}
	return &t
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp shapes the record store emits.
// Values carrying a zone are converted into loc; values without one are read in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// roundHalfUp rounds to the nearest integer with halves going towards +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
