package domain

import (
	"fmt"
	"time"
)

// Cycle length bounds, in days. The tracker never lets a profile leave this range.
const (
	MinCycleLength     = 21
	MaxCycleLength     = 35
	DefaultCycleLength = 28
)

// CycleProfile is the only user-owned state of the tracker: the start date of
// the most recent period and the expected cycle length.
//
// LastPeriodStart is a calendar date (midnight UTC, see DateOf). The zero value
// means "not yet selected". Selecting a new date replaces the previous one;
// no history is kept.
type CycleProfile struct {
	LastPeriodStart time.Time `json:"last_period_start"`
	CycleLength     int       `json:"cycle_length"`
}

// NewCycleProfile returns the profile of a fresh session: no last period date
// and the default 28 day cycle.
func NewCycleProfile() CycleProfile {
	return CycleProfile{CycleLength: DefaultCycleLength}
}

// HasLastPeriod reports whether a last period start date has been selected.
func (p CycleProfile) HasLastPeriod() bool {
	return !p.LastPeriodStart.IsZero()
}

// Validate checks that the cycle length is within bounds.
func (p CycleProfile) Validate() error {
	if p.CycleLength < MinCycleLength || p.CycleLength > MaxCycleLength {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidCycleLength, p.CycleLength, MinCycleLength, MaxCycleLength)
	}
	return nil
}

// WithLastPeriodStart returns a copy of p with LastPeriodStart set to the
// calendar date of date. Dates after the calendar date of now are rejected
// with ErrLastPeriodInFuture. The receiver is never modified.
func (p CycleProfile) WithLastPeriodStart(date, now time.Time) (CycleProfile, error) {
	if date.IsZero() {
		return p, fmt.Errorf("%w: zero date", ErrInvalidDate)
	}

	d := DateOf(date)
	if DaysBetween(now, d) > 0 {
		return p, fmt.Errorf("%w: %s is after %s",
			ErrLastPeriodInFuture, FormatDate(d), FormatDate(DateOf(now)))
	}

	p.LastPeriodStart = d
	return p, nil
}

// WithCycleLength returns a copy of p with the given cycle length, or an
// error wrapping ErrInvalidCycleLength when n is out of range.
func (p CycleProfile) WithCycleLength(n int) (CycleProfile, error) {
	next := p
	next.CycleLength = n
	if err := next.Validate(); err != nil {
		return p, err
	}
	return next, nil
}
