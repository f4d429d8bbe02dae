package cycle

import (
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/domain"
)

// calculateNextPeriodStart adds the cycle length to the last period start.
//
// The addition is done on calendar dates (time.AddDate on a UTC midnight value),
// so month ends, year ends and leap days roll over the way a wall calendar
// does: 2024-02-20 + 28 days is 2024-03-19, while 2023-02-20 + 28 days is
// 2023-03-20.
//
// Parameters:
//   - lastPeriodStart: a set calendar date
//   - cycleLength: a length already checked against the params bounds
func calculateNextPeriodStart(lastPeriodStart time.Time, cycleLength int) time.Time {
	return domain.AddDays(lastPeriodStart, cycleLength)
}

// calculateDaysUntil returns the ceiling of the day difference from the
// calendar date of now until nextPeriodStart.
//
// A nextPeriodStart at midnight gives an exact whole number of days. Any time
// of day past midnight counts as a further partial day and is rounded up.
// A positive value means the period is upcoming, zero means it is due today
// and a negative value means it is overdue by that many days.
func calculateDaysUntil(nextPeriodStart, now time.Time) int {
	days := domain.DaysBetween(now, nextPeriodStart)
	if hasTimeOfDay(nextPeriodStart) {
		days++
	}
	return days
}

func hasTimeOfDay(t time.Time) bool {
	h, m, s := t.Clock()
	return h != 0 || m != 0 || s != 0 || t.Nanosecond() != 0
}

// calculateDaysSince returns the floor of the day difference between the last
// period start and now. Negative values mean the start lies in the future.
func calculateDaysSince(lastPeriodStart, now time.Time) int {
	return domain.DaysBetween(lastPeriodStart, now)
}

// phaseForDay maps a non-negative day offset to its phase.
//
// The intervals are half-open and evaluated in order, first match wins:
//
//	[0, FollicularStartDay)              Menstrual
//	[FollicularStartDay, OvulatoryStartDay) Follicular
//	[OvulatoryStartDay, LutealStartDay)  Ovulatory
//	[LutealStartDay, ∞)                  Luteal
//
// The boundaries do not scale with cycle length. An overdue cycle therefore
// stays in the luteal phase indefinitely.
func phaseForDay(daysSince int, params *Params) domain.Phase {
	switch {
	case daysSince < params.FollicularStartDay:
		return domain.PhaseMenstrual
	case daysSince < params.OvulatoryStartDay:
		return domain.PhaseFollicular
	case daysSince < params.LutealStartDay:
		return domain.PhaseOvulatory
	default:
		return domain.PhaseLuteal
	}
}

// calculateAdjustedCycleLength applies a single step to the cycle length.
//
// A step that would leave [MinCycleLength, MaxCycleLength] is dropped and the
// current value is returned unchanged. This mirrors a +/- control that is
// disabled at its limits, not an error condition.
func calculateAdjustedCycleLength(current, delta int, params *Params) int {
	candidate := current + delta
	if candidate < params.MinCycleLength || candidate > params.MaxCycleLength {
		return current
	}
	return candidate
}

// calculateFertileWindow estimates ovulation and the fertile window of the
// cycle starting at lastPeriodStart.
//
// Ovulation is placed LutealPhaseDays before the next period start. The window
// opens FertileDaysBeforeOvulation days before ovulation and closes
// FertileDaysAfterOvulation days after it, both ends inclusive.
func calculateFertileWindow(lastPeriodStart time.Time, cycleLength int, params *Params) domain.FertileWindow {
	ovulation := domain.AddDays(lastPeriodStart, cycleLength-params.LutealPhaseDays)
	return domain.FertileWindow{
		Start:     domain.AddDays(ovulation, -params.FertileDaysBeforeOvulation),
		End:       domain.AddDays(ovulation, params.FertileDaysAfterOvulation),
		Ovulation: ovulation,
	}
}
