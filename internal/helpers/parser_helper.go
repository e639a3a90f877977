package helpers

import (
	"strconv"
	"time"
)

const timeOfDayLayout = "15:04:05"

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseDate parses a calendar date in YYYY-MM-DD form. Dates are kept
// at UTC midnight so range comparisons stay consistent.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// ParseTimeOfDay validates an HH:MM:SS wall-clock value and returns it
// in canonical form.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(timeOfDayLayout), nil
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
