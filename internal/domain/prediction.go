package domain

import (
	"fmt"
	"time"
)

// PredictionStatus classifies the days-until value for display.
type PredictionStatus string

// Possible prediction statuses. StatusUnknown is used when no last period
// start has been recorded.
const (
	StatusUnknown  PredictionStatus = ""
	StatusUpcoming PredictionStatus = "upcoming"
	StatusDueToday PredictionStatus = "due_today"
	StatusOverdue  PredictionStatus = "overdue"
)

// StatusFor maps a signed day count to its status.
func StatusFor(daysUntil int) PredictionStatus {
	switch {
	case daysUntil > 0:
		return StatusUpcoming
	case daysUntil == 0:
		return StatusDueToday
	default:
		return StatusOverdue
	}
}

// FertileWindow is the estimated fertile interval of the current cycle.
// Start and End are inclusive calendar dates.
type FertileWindow struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Ovulation time.Time `json:"ovulation"`
}

// Contains reports whether the calendar date of t lies inside the window.
func (w FertileWindow) Contains(t time.Time) bool {
	d := DayNumber(t)
	return d >= DayNumber(w.Start) && d <= DayNumber(w.End)
}

// Prediction is the full derived output for a CycleProfile at a given "now".
// When the profile has no last period start every pointer field is nil and
// Phase is PhaseNone.
type Prediction struct {
	NextPeriodStart *time.Time       `json:"next_period_start,omitempty"`
	DaysUntil       *int             `json:"days_until,omitempty"`
	Phase           Phase            `json:"phase,omitempty"`
	Status          PredictionStatus `json:"status,omitempty"`
	FertileWindow   *FertileWindow   `json:"fertile_window,omitempty"`
}

// IsEmpty reports whether the prediction carries no derived values.
func (p *Prediction) IsEmpty() bool {
	return p == nil || p.NextPeriodStart == nil
}

// DaysUntilText renders the countdown the way the tracker screen shows it:
// "N days away", "Today!" or "N days overdue".
func (p *Prediction) DaysUntilText() string {
	if p == nil || p.DaysUntil == nil {
		return ""
	}
	n := *p.DaysUntil
	switch {
	case n > 0:
		return fmt.Sprintf("%d days away", n)
	case n == 0:
		return "Today!"
	default:
		return fmt.Sprintf("%d days overdue", -n)
	}
}
