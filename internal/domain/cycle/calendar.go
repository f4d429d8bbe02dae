package cycle

import (
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/domain"
)

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date                   time.Time    `json:"date"`
	InMonth                bool         `json:"in_month"`
	IsToday                bool         `json:"is_today"`
	IsLastPeriodStart      bool         `json:"is_last_period_start"`
	IsPredictedPeriodStart bool         `json:"is_predicted_period_start"`
	IsFertile              bool         `json:"is_fertile"`
	IsOvulation            bool         `json:"is_ovulation"`
	Phase                  domain.Phase `json:"phase,omitempty"`
}

// Calendar is a month view: whole weeks from the Sunday on or before the
// first of the month to the Saturday on or after its last day.
type Calendar struct {
	Month time.Time     `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// MonthCalendar implements the Service interface.
//
// Phase and fertility markers are only filled for days of the current cycle,
// that is [LastPeriodStart, NextPeriodStart). Days before the last period or
// from the predicted start onwards carry no phase; the engine does not project
// further cycles.
func (s *defaultService) MonthCalendar(profile domain.CycleProfile, month, now time.Time) (*Calendar, error) {
	if err := s.checkCycleLength(profile.CycleLength); err != nil {
		return nil, err
	}

	y, m, _ := month.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	today := domain.DayNumber(now)

	var (
		hasCycle         bool
		cycleStart, next int64
		window           domain.FertileWindow
		ovulationDay     int64
	)
	if profile.HasLastPeriod() {
		hasCycle = true
		nextStart := calculateNextPeriodStart(profile.LastPeriodStart, profile.CycleLength)
		cycleStart = domain.DayNumber(profile.LastPeriodStart)
		next = domain.DayNumber(nextStart)
		window = calculateFertileWindow(profile.LastPeriodStart, profile.CycleLength, s.params)
		ovulationDay = domain.DayNumber(window.Ovulation)
	}

	days := make([]CalendarDay, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		n := domain.DayNumber(day)
		cell := CalendarDay{
			Date:    day,
			InMonth: day.Month() == m,
			IsToday: n == today,
		}

		if hasCycle {
			cell.IsLastPeriodStart = n == cycleStart
			cell.IsPredictedPeriodStart = n == next
			if n >= cycleStart && n < next {
				cell.Phase = phaseForDay(int(n-cycleStart), s.params)
				cell.IsOvulation = n == ovulationDay
				cell.IsFertile = window.Contains(day)
			}
		}

		days = append(days, cell)
	}

	return &Calendar{Month: monthStart, Days: days}, nil
}
