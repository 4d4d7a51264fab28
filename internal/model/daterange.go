package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used in configuration.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar dates (UTC midnight).
// Start is not required to precede End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses two ISO 8601 dates.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date %q: %w", end, err)
	}
	return DateRange{Start: s, End: e}, nil
}

// EndExclusive returns the first instant after the range, i.e. midnight of End+1.
// Providers taking a half-open interval are queried up to this instant.
func (r DateRange) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Contains reports whether t falls on a calendar day of the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.EndExclusive())
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
