package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by the dashboard forms.
const DateLayout = "2006-01-02"

// ParseDate accepts "2006-01-02" or a full RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
}
