package cycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/domain"
)

// ErrInvalidDelta is returned when a cycle length adjustment is not a single step.
var ErrInvalidDelta = errors.New("cycle length delta must be +1 or -1")

// Service defines the operations of the cycle prediction engine.
//
// Every method is a pure function of its arguments. "now" is always supplied by
// the caller; the engine never reads the wall clock.
type Service interface {
	// PredictNextPeriod returns the expected start of the next period
	PredictNextPeriod(lastPeriodStart time.Time, cycleLength int) (time.Time, error)

	// DaysUntil returns the signed day count from the date of now until
	// nextPeriodStart, rounding a partial day up
	DaysUntil(nextPeriodStart, now time.Time) (int, error)

	// CurrentPhase returns the phase for the calendar date of now.
	// An unset lastPeriodStart yields domain.PhaseNone and no error.
	CurrentPhase(lastPeriodStart, now time.Time) (domain.Phase, error)

	// AdjustCycleLength applies a +1/-1 step, keeping the result in bounds
	AdjustCycleLength(current, delta int) (int, error)

	// FertileWindow estimates the fertile window of the current cycle
	FertileWindow(lastPeriodStart time.Time, cycleLength int) (*domain.FertileWindow, error)

	// Predict composes the operations above for a profile
	Predict(profile domain.CycleProfile, now time.Time) (*domain.Prediction, error)

	// MonthCalendar builds a Sunday-aligned month grid annotated with the profile's cycle
	MonthCalendar(profile domain.CycleProfile, month, now time.Time) (*Calendar, error)

	// Params returns a copy of the engine constants
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new cycle service with default parameters
func NewDefaultService() (Service, error) {
	return NewServiceWithParams(NewDefaultParams())
}

// NewServiceWithParams creates a new cycle service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := *params
	return &defaultService{params: &p}, nil
}

func (s *defaultService) Params() Params {
	return *s.params
}

// PredictNextPeriod implements the Service interface
func (s *defaultService) PredictNextPeriod(lastPeriodStart time.Time, cycleLength int) (time.Time, error) {
	if lastPeriodStart.IsZero() {
		return time.Time{}, domain.ErrLastPeriodUnset
	}
	if err := s.checkCycleLength(cycleLength); err != nil {
		return time.Time{}, err
	}

	return calculateNextPeriodStart(lastPeriodStart, cycleLength), nil
}

// DaysUntil implements the Service interface
func (s *defaultService) DaysUntil(nextPeriodStart, now time.Time) (int, error) {
	if nextPeriodStart.IsZero() {
		return 0, domain.ErrLastPeriodUnset
	}

	return calculateDaysUntil(nextPeriodStart, now), nil
}

// CurrentPhase implements the Service interface
func (s *defaultService) CurrentPhase(lastPeriodStart, now time.Time) (domain.Phase, error) {
	if lastPeriodStart.IsZero() {
		return domain.PhaseNone, nil
	}

	daysSince := calculateDaysSince(lastPeriodStart, now)
	if daysSince < 0 {
		return domain.PhaseNone, fmt.Errorf("%w: starts in %d days", domain.ErrLastPeriodInFuture, -daysSince)
	}

	return phaseForDay(daysSince, s.params), nil
}

// AdjustCycleLength implements the Service interface
func (s *defaultService) AdjustCycleLength(current, delta int) (int, error) {
	if delta != 1 && delta != -1 {
		return current, fmt.Errorf("%w: got %d", ErrInvalidDelta, delta)
	}
	if err := s.checkCycleLength(current); err != nil {
		return current, err
	}

	return calculateAdjustedCycleLength(current, delta, s.params), nil
}

// FertileWindow implements the Service interface
func (s *defaultService) FertileWindow(lastPeriodStart time.Time, cycleLength int) (*domain.FertileWindow, error) {
	if lastPeriodStart.IsZero() {
		return nil, domain.ErrLastPeriodUnset
	}
	if err := s.checkCycleLength(cycleLength); err != nil {
		return nil, err
	}

	w := calculateFertileWindow(lastPeriodStart, cycleLength, s.params)
	return &w, nil
}

// Predict implements the Service interface.
// A profile without a last period start yields an empty prediction.
func (s *defaultService) Predict(profile domain.CycleProfile, now time.Time) (*domain.Prediction, error) {
	if err := s.checkCycleLength(profile.CycleLength); err != nil {
		return nil, err
	}
	if !profile.HasLastPeriod() {
		return &domain.Prediction{}, nil
	}

	phase, err := s.CurrentPhase(profile.LastPeriodStart, now)
	if err != nil {
		return nil, err
	}

	next := calculateNextPeriodStart(profile.LastPeriodStart, profile.CycleLength)
	days := calculateDaysUntil(next, now)
	window := calculateFertileWindow(profile.LastPeriodStart, profile.CycleLength, s.params)

	return &domain.Prediction{
		NextPeriodStart: &next,
		DaysUntil:       &days,
		Phase:           phase,
		Status:          domain.StatusFor(days),
		FertileWindow:   &window,
	}, nil
}

func (s *defaultService) checkCycleLength(n int) error {
	if n < s.params.MinCycleLength || n > s.params.MaxCycleLength {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			domain.ErrInvalidCycleLength, n, s.params.MinCycleLength, s.params.MaxCycleLength)
	}
	return nil
}
