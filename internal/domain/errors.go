package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidDate is returned when a calendar date is malformed.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidCycleLength is returned when a cycle length is outside [MinCycleLength, MaxCycleLength].
	ErrInvalidCycleLength = errors.New("cycle length out of range")

	// ErrLastPeriodUnset is returned when an operation needs a last period start and none was recorded.
	ErrLastPeriodUnset = errors.New("last period start is not set")

	// ErrLastPeriodInFuture is returned when the last period start lies after today.
	ErrLastPeriodInFuture = errors.New("last period start is in the future")
)
