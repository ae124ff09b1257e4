// Package dateutil provides ISO-8601 date parsing and inclusive
// calendar-window membership, the only two date operations the
// annotation engine needs.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformed is wrapped by every error Parse returns.
var ErrMalformed = errors.New("malformed date")

// MalformedError reports a date string that did not match either
// accepted ISO-8601 layout.
type MalformedError struct {
	Input string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed date: %q", e.Input)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Date is a broken-down calendar date. Only year/month/day are
// significant; any time-of-day component a timestamp carried is dropped
// on parse.
type Date struct {
	Year  int
	Month int
	Day   int
}

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.000Z",
}

// Parse accepts "YYYY-MM-DD" or "YYYY-MM-DDThh:mm:ss(.fff)?Z".
func Parse(s string) (Date, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, &MalformedError{Input: s}
}

// FromTime truncates a time.Time to its year/month/day.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0, or 1 as a is before, equal to, or after b,
// comparing (year, month, day) lexicographically.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	default:
		return sign(a.Day - b.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// DefaultLowerBound is used when a window's lower bound is unspecified.
func DefaultLowerBound() Date {
	return Date{Year: 1000, Month: 1, Day: 1}
}

// DefaultUpperBound is today plus 42 days, guaranteeing the window
// includes "present" even across a slightly stale clock.
func DefaultUpperBound(now time.Time) Date {
	return FromTime(now.AddDate(0, 0, 42))
}

// InWindow reports whether lo <= d <= hi, inclusive on both ends.
func InWindow(d, lo, hi Date) bool {
	return Compare(d, lo) >= 0 && Compare(d, hi) <= 0
}
