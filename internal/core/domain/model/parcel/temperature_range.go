package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Temperature bounds accepted for refrigerated transport, in degrees Celsius.
const (
	MinTemperature = -30.0
	MaxTemperature = 30.0
)

// TemperatureRange is the value object carried by REFRIGERATED parcels.
// It guarantees min ≤ max and that both ends fall within the supported
// [-30, 30] °C window.
type TemperatureRange struct {
	min float64
	max float64
}

// NewTemperatureRange creates a validated temperature range.
func NewTemperatureRange(minTemp, maxTemp float64) (TemperatureRange, error) {
	if minTemp < MinTemperature || minTemp > MaxTemperature {
		return TemperatureRange{}, errs.NewValueIsOutOfRangeError(
			"minTemperature", minTemp, MinTemperature, MaxTemperature)
	}
	if maxTemp < MinTemperature || maxTemp > MaxTemperature {
		return TemperatureRange{}, errs.NewValueIsOutOfRangeError(
			"maxTemperature", maxTemp, MinTemperature, MaxTemperature)
	}
	if minTemp > maxTemp {
		return TemperatureRange{}, errs.NewValueIsInvalidErrorWithCause("temperatureRange",
			fmt.Errorf("min %.1f is greater than max %.1f", minTemp, maxTemp))
	}

	return TemperatureRange{min: minTemp, max: maxTemp}, nil
}

// Min returns the lower bound in °C.
func (r TemperatureRange) Min() float64 {
	return r.min
}

// Max returns the upper bound in °C.
func (r TemperatureRange) Max() float64 {
	return r.max
}

// Contains reports whether the given temperature falls inside the range.
func (r TemperatureRange) Contains(t float64) bool {
	return t >= r.min && t <= r.max
}
