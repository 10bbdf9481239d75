package models

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// DateRange is the inclusive [From, To] window that selects which view events
// a report considers. A nil side is unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange converts optional date-only strings (YYYY-MM-DD) into an
// inclusive UTC window. "from" becomes the start of that day, "to" the last
// instant of that day (23:59:59.999). Empty strings leave the side unbounded.
// An unparseable value is an error: a malformed bound must not silently widen
// the window into a full-table scan.
func ParseDateRange(from, to string) (DateRange, error) {
	var dateRange DateRange

	if from != "" {
		day, err := time.ParseInLocation(dayLayout, from, time.UTC)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", from)
		}
		dateRange.From = &day
	}

	if to != "" {
		day, err := time.ParseInLocation(dayLayout, to, time.UTC)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", to)
		}
		endOfDay := day.Add(24*time.Hour - time.Millisecond)
		dateRange.To = &endOfDay
	}

	if dateRange.From != nil && dateRange.To != nil && dateRange.From.After(*dateRange.To) {
		return DateRange{}, fmt.Errorf("from date %q is after to date %q", from, to)
	}

	return dateRange, nil
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// IsUnbounded reports whether neither side is set.
func (r DateRange) IsUnbounded() bool {
	return r.From == nil && r.To == nil
}
