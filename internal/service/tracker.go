package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
	"github.com/sakhisuraksha/sakhi-api/internal/redact"
)

// TrackerView is everything the tracker screen renders for one profile.
type TrackerView struct {
	Profile    domain.CycleProfile `json:"profile"`
	Prediction *domain.Prediction  `json:"prediction"`
	// The +/- controls are disabled at the cycle length bounds
	CanIncrement bool `json:"can_increment"`
	CanDecrement bool `json:"can_decrement"`
}

// TrackerService applies the tracker screen's user actions to a profile.
//
// The profile is owned by the caller (the session); every method returns a new
// value and never keeps a reference to its input.
type TrackerService interface {
	// NewSession returns the profile of a new session
	NewSession() domain.CycleProfile

	// SelectLastPeriodDate replaces the last period start; future dates are rejected
	SelectLastPeriodDate(ctx context.Context, profile domain.CycleProfile, date, now time.Time) (domain.CycleProfile, error)

	// IncrementCycleLength adds one day, staying at the upper bound
	IncrementCycleLength(ctx context.Context, profile domain.CycleProfile) (domain.CycleProfile, error)

	// DecrementCycleLength removes one day, staying at the lower bound
	DecrementCycleLength(ctx context.Context, profile domain.CycleProfile) (domain.CycleProfile, error)

	// Snapshot derives the view for the profile at now
	Snapshot(ctx context.Context, profile domain.CycleProfile, now time.Time) (*TrackerView, error)

	// Calendar builds the month grid around month
	Calendar(ctx context.Context, profile domain.CycleProfile, month, now time.Time) (*cycle.Calendar, error)
}

type trackerServiceImpl struct {
	engine cycle.Service
}

// NewTrackerService creates a TrackerService on top of the prediction engine.
func NewTrackerService(engine cycle.Service) (TrackerService, error) {
	if engine == nil {
		return nil, trackerError("new", ErrNilEngine)
	}
	return &trackerServiceImpl{engine: engine}, nil
}

func (s *trackerServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With(slog.String("component", "tracker_service"))
}

// NewSession implements TrackerService.
func (s *trackerServiceImpl) NewSession() domain.CycleProfile {
	return domain.NewCycleProfile()
}

// SelectLastPeriodDate implements TrackerService.
func (s *trackerServiceImpl) SelectLastPeriodDate(
	ctx context.Context,
	profile domain.CycleProfile,
	date, now time.Time,
) (domain.CycleProfile, error) {
	next, err := profile.WithLastPeriodStart(date, now)
	if err != nil {
		s.log(ctx).Debug("last period date rejected", slog.String("error", redact.Error(err)))
		return profile, trackerError("select_last_period", err)
	}
	return next, nil
}

// IncrementCycleLength implements TrackerService.
func (s *trackerServiceImpl) IncrementCycleLength(
	ctx context.Context,
	profile domain.CycleProfile,
) (domain.CycleProfile, error) {
	return s.adjust(ctx, "increment", profile, 1)
}

// DecrementCycleLength implements TrackerService.
func (s *trackerServiceImpl) DecrementCycleLength(
	ctx context.Context,
	profile domain.CycleProfile,
) (domain.CycleProfile, error) {
	return s.adjust(ctx, "decrement", profile, -1)
}

func (s *trackerServiceImpl) adjust(
	ctx context.Context,
	op string,
	profile domain.CycleProfile,
	delta int,
) (domain.CycleProfile, error) {
	n, err := s.engine.AdjustCycleLength(profile.CycleLength, delta)
	if err != nil {
		return profile, trackerError(op, err)
	}
	if n == profile.CycleLength {
		s.log(ctx).Debug("cycle length at bound, unchanged", slog.Int("cycle_length", n))
	}
	profile.CycleLength = n
	return profile, nil
}

// Snapshot implements TrackerService.
func (s *trackerServiceImpl) Snapshot(
	ctx context.Context,
	profile domain.CycleProfile,
	now time.Time,
) (*TrackerView, error) {
	prediction, err := s.engine.Predict(profile, now)
	if err != nil {
		s.log(ctx).Warn("prediction failed", slog.String("error", redact.Error(err)))
		return nil, trackerError("snapshot", err)
	}

	params := s.engine.Params()
	return &TrackerView{
		Profile:      profile,
		Prediction:   prediction,
		CanIncrement: profile.CycleLength < params.MaxCycleLength,
		CanDecrement: profile.CycleLength > params.MinCycleLength,
	}, nil
}

// Calendar implements TrackerService.
func (s *trackerServiceImpl) Calendar(
	ctx context.Context,
	profile domain.CycleProfile,
	month, now time.Time,
) (*cycle.Calendar, error) {
	cal, err := s.engine.MonthCalendar(profile, month, now)
	if err != nil {
		return nil, trackerError("calendar", err)
	}
	return cal, nil
}
