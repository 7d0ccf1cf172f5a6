package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. Dates are kept as plain
// strings so that lexicographic comparison matches chronological order.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD, got %s", dateStr)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date as a YYYY-MM-DD string.
func Today() string {
	return FormatDate(time.Now())
}
