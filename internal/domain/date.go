package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// DateOf returns the calendar date of t, read in t's own location, as midnight UTC.
//
// All cycle arithmetic runs on values produced by DateOf so that two dates are
// always a whole number of days apart, regardless of daylight saving changes in
// the caller's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
// Out-of-range days such as 2023-02-29 are rejected rather than normalized.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}

	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayNumber returns the number of days between the Unix epoch and the calendar date of t.
// It is exact for every representable year, unlike time.Time.Sub which saturates.
func DayNumber(t time.Time) int64 {
	return DateOf(t).Unix() / secondsPerDay
}

// DaysBetween returns the signed number of calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return int(DayNumber(to) - DayNumber(from))
}

// AddDays advances the calendar date of t by n days, rolling over month and
// year boundaries (including leap days).
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}
