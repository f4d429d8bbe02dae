package cycle

import (
	"errors"
	"fmt"

	"github.com/sakhisuraksha/sakhi-api/internal/domain"
)

// ErrInvalidParams is returned when a Params value is internally inconsistent.
var ErrInvalidParams = errors.New("invalid cycle params")

// Params defines the constants of the prediction engine
type Params struct {
	// Cycle length bounds (inclusive)
	MinCycleLength int
	MaxCycleLength int

	// Phase boundaries, as days since the last period start.
	// They are fixed and do not scale with the cycle length.
	FollicularStartDay int
	OvulatoryStartDay  int
	LutealStartDay     int

	// Fertile window estimation
	LutealPhaseDays            int
	FertileDaysBeforeOvulation int
	FertileDaysAfterOvulation  int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero fields keep their defaults.
type ParamsConfig struct {
	MinCycleLength int
	MaxCycleLength int

	FollicularStartDay int
	OvulatoryStartDay  int
	LutealStartDay     int

	LutealPhaseDays            int
	FertileDaysBeforeOvulation int
	FertileDaysAfterOvulation  int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinCycleLength: domain.MinCycleLength,
		MaxCycleLength: domain.MaxCycleLength,

		FollicularStartDay: 7,
		OvulatoryStartDay:  14,
		LutealStartDay:     21,

		LutealPhaseDays:            14,
		FertileDaysBeforeOvulation: 4,
		FertileDaysAfterOvulation:  1,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override cycle bounds if provided
	if config.MinCycleLength > 0 {
		params.MinCycleLength = config.MinCycleLength
	}
	if config.MaxCycleLength > 0 {
		params.MaxCycleLength = config.MaxCycleLength
	}

	// Override phase boundaries if provided
	if config.FollicularStartDay > 0 {
		params.FollicularStartDay = config.FollicularStartDay
	}
	if config.OvulatoryStartDay > 0 {
		params.OvulatoryStartDay = config.OvulatoryStartDay
	}
	if config.LutealStartDay > 0 {
		params.LutealStartDay = config.LutealStartDay
	}

	// Override fertile window estimation if provided
	if config.LutealPhaseDays > 0 {
		params.LutealPhaseDays = config.LutealPhaseDays
	}
	if config.FertileDaysBeforeOvulation > 0 {
		params.FertileDaysBeforeOvulation = config.FertileDaysBeforeOvulation
	}
	if config.FertileDaysAfterOvulation > 0 {
		params.FertileDaysAfterOvulation = config.FertileDaysAfterOvulation
	}

	return params
}

// Validate checks that the bounds and phase boundaries are consistent.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil params", ErrInvalidParams)
	}
	if p.MinCycleLength < 1 || p.MinCycleLength >= p.MaxCycleLength {
		return fmt.Errorf("%w: cycle length bounds [%d, %d]",
			ErrInvalidParams, p.MinCycleLength, p.MaxCycleLength)
	}
	if p.FollicularStartDay < 1 ||
		p.OvulatoryStartDay <= p.FollicularStartDay ||
		p.LutealStartDay <= p.OvulatoryStartDay {
		return fmt.Errorf("%w: phase boundaries %d/%d/%d must be strictly increasing",
			ErrInvalidParams, p.FollicularStartDay, p.OvulatoryStartDay, p.LutealStartDay)
	}
	if p.LutealPhaseDays < 1 || p.LutealPhaseDays >= p.MinCycleLength {
		return fmt.Errorf("%w: luteal phase of %d days", ErrInvalidParams, p.LutealPhaseDays)
	}
	if p.FertileDaysBeforeOvulation < 0 || p.FertileDaysAfterOvulation < 0 {
		return fmt.Errorf("%w: negative fertile window offset", ErrInvalidParams)
	}
	return nil
}
