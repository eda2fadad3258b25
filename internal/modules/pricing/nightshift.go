package pricing

import (
	"strconv"
	"strings"
)

// IsNightShift reports whether the start time of timeOfDay falls inside the
// night window. timeOfDay is "HH:MM" or a range "HH:MM - HH:MM"; only the
// start is considered. Malformed input is never an error: it simply reads as
// "not night", since this feeds a price quote rather than a safety check.
func (c Config) IsNightShift(timeOfDay string) bool {
	m, ok := StartMinuteOfDay(timeOfDay)
	if !ok {
		return false
	}
	return m >= c.NightStart || m < c.NightEnd
}

// Surcharge returns the flat night surcharge for timeOfDay, or 0.
func (c Config) Surcharge(timeOfDay string) float64 {
	if c.IsNightShift(timeOfDay) {
		return c.NightSurcharge
	}
	return 0
}

// StartMinuteOfDay extracts the start time of an "HH:MM" or "HH:MM - HH:MM"
// string as minutes from midnight.
func StartMinuteOfDay(timeOfDay string) (int, bool) {
	start := timeOfDay
	if i := strings.Index(start, "-"); i >= 0 {
		start = start[:i]
	}
	start = strings.TrimSpace(start)

	parts := strings.Split(start, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}
