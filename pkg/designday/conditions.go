// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package designday

import (
	"fmt"

	"github.com/ladybug-tools/ladybug-go/pkg/psychro"
)

// hourlyMultipliers is the default profile of the daily dry bulb range,
// giving the fraction of the range subtracted from the maximum at each hour.
var hourlyMultipliers = [24]float64{
	0.82, 0.88, 0.92, 0.95, 0.98, 1, 0.98, 0.91, 0.74, 0.55, 0.38, 0.23,
	0.13, 0.05, 0, 0, 0.06, 0.14, 0.24, 0.39, 0.5, 0.59, 0.68, 0.75,
}

// DryBulbCondition is the dry bulb temperature profile of a design day.
type DryBulbCondition struct {
	// DryBulbMax is the peak temperature of the day in C.
	DryBulbMax float64 `json:"dry_bulb_max"`
	// DryBulbRange is the difference between the day's minimum and
	// maximum in C.
	DryBulbRange float64 `json:"dry_bulb_range"`
	// ModifierType selects how the range is distributed over the day.
	// Empty means DefaultMultipliers.
	ModifierType     string `json:"modifier_type,omitempty"`
	ModifierSchedule string `json:"modifier_schedule,omitempty"`
}

// NewDryBulbCondition validates the range and returns a condition with the
// default multiplier profile.
func NewDryBulbCondition(dryBulbMax, dryBulbRange float64) (DryBulbCondition, error) {
	if dryBulbRange < 0 {
		return DryBulbCondition{}, fmt.Errorf(
			"dry bulb range must be greater than or equal to zero, got %g", dryBulbRange)
	}
	return DryBulbCondition{
		DryBulbMax:   dryBulbMax,
		DryBulbRange: dryBulbRange,
		ModifierType: "DefaultMultipliers",
	}, nil
}

// HourlyValues returns the temperature at each hour of the design day.
func (c DryBulbCondition) HourlyValues() []float64 {
	values := make([]float64, 24)
	for i, mult := range hourlyMultipliers {
		values[i] = c.DryBulbMax - c.DryBulbRange*mult
	}
	return values
}

// HumidityType selects how a HumidityCondition's value is interpreted.
type HumidityType string

const (
	Wetbulb       HumidityType = "Wetbulb"
	Dewpoint      HumidityType = "Dewpoint"
	HumidityRatio HumidityType = "HumidityRatio"
	Enthalpy      HumidityType = "Enthalpy"
)

func (t HumidityType) validate() error {
	switch t {
	case Wetbulb, Dewpoint, HumidityRatio, Enthalpy:
		return nil
	}
	return fmt.Errorf("humidity type %q is not recognized", string(t))
}

// HumidityCondition is the humidity and precipitation state of a design day.
type HumidityCondition struct {
	Type HumidityType `json:"humidity_type"`
	// Value is interpreted per Type: a wet bulb or dew point temperature
	// in C, a humidity ratio in kg water per kg dry air, or an enthalpy
	// in J/kg.
	Value float64 `json:"humidity_value"`
	// BarometricPressure is in Pa.  Zero means standard sea level
	// pressure.
	BarometricPressure float64 `json:"barometric_pressure,omitempty"`
	Rain               bool    `json:"rain,omitempty"`
	SnowOnGround       bool    `json:"snow_on_ground,omitempty"`
	Schedule           string  `json:"schedule,omitempty"`
	WetBulbRange       string  `json:"wet_bulb_range,omitempty"`
}

// NewHumidityCondition validates the type and returns a condition at the
// given pressure.
func NewHumidityCondition(humidityType HumidityType, value, pressure float64) (HumidityCondition, error) {
	if err := humidityType.validate(); err != nil {
		return HumidityCondition{}, err
	}
	if pressure == 0 {
		pressure = psychro.StandardPressure
	}
	return HumidityCondition{Type: humidityType, Value: value, BarometricPressure: pressure}, nil
}

func (c HumidityCondition) pressure() float64 {
	if c.BarometricPressure == 0 {
		return psychro.StandardPressure
	}
	return c.BarometricPressure
}

// HourlyPressure returns the barometric pressure at each hour of the day.
func (c HumidityCondition) HourlyPressure() []float64 {
	values := make([]float64, 24)
	for i := range values {
		values[i] = c.pressure()
	}
	return values
}

// DewPoint returns the dew point in C implied by the condition at the day's
// maximum dry bulb temperature.  The dew point stays constant through the
// day except where it would exceed the dry bulb.
func (c HumidityCondition) DewPoint(dryBulbMax float64) (float64, error) {
	switch c.Type {
	case Dewpoint:
		return c.Value, nil
	case Wetbulb:
		return psychro.DewPointFromDryBulbWetBulb(dryBulbMax, c.Value, c.pressure()), nil
	case HumidityRatio:
		return psychro.DewPointFromHumidityRatio(c.Value, c.pressure()), nil
	case Enthalpy:
		return psychro.DewPointFromEnthalpy(dryBulbMax, c.Value/1000, c.pressure()), nil
	}
	return 0, fmt.Errorf("humidity type %q is not recognized", string(c.Type))
}

// HourlyDewPointValues returns the dew point in C at each hour of the day,
// clamped to the dry bulb temperature where the air saturates.
func (c HumidityCondition) HourlyDewPointValues(dryBulb DryBulbCondition) ([]float64, error) {
	maxDewPoint, err := c.DewPoint(dryBulb.DryBulbMax)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, 24)
	for _, db := range dryBulb.HourlyValues() {
		if db >= maxDewPoint {
			values = append(values, maxDewPoint)
		} else {
			values = append(values, db)
		}
	}
	return values, nil
}

// WindCondition is the wind state of a design day.
type WindCondition struct {
	// WindSpeed is in m/s.
	WindSpeed float64 `json:"wind_speed"`
	// WindDirection is in degrees, 0 North to 360.
	WindDirection float64 `json:"wind_direction,omitempty"`
}

// NewWindCondition validates the direction.
func NewWindCondition(windSpeed, windDirection float64) (WindCondition, error) {
	if windDirection < 0 || windDirection > 360 {
		return WindCondition{}, fmt.Errorf(
			"wind direction %g is not between 0 and 360", windDirection)
	}
	return WindCondition{WindSpeed: windSpeed, WindDirection: windDirection}, nil
}

// HourlyValues returns the wind speed at each hour of the day.
func (c WindCondition) HourlyValues() []float64 {
	values := make([]float64, 24)
	for i := range values {
		values[i] = c.WindSpeed
	}
	return values
}

// HourlyWindDirs returns the wind direction at each hour of the day.
func (c WindCondition) HourlyWindDirs() []float64 {
	values := make([]float64, 24)
	for i := range values {
		values[i] = c.WindDirection
	}
	return values
}
