// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package epw

import (
	"fmt"
	"math"
)

// NumFields is the column count of a TMY3 EPW data row.
const NumFields = 35

// FieldInfo describes one EPW data column, per chapter 2.9.1 of the
// EnergyPlus Auxiliary Programs documentation.
type FieldInfo struct {
	Name string
	Unit string
	// Missing is the sentinel written when no observation exists.  NaN
	// when the field has no missing convention.
	Missing float64
	Min     float64
	Max     float64
	// MiddleHour marks fields recorded over the hour rather than on it.
	// Radiation and illuminance are integrated over the hour leading up
	// to the timestamp, so their values represent the half-hour mark.
	MiddleHour bool
}

var nan = math.NaN()

// fields is indexed by EPW column number.
var fields = [NumFields]FieldInfo{
	0: {Name: "Year", Missing: nan},
	1: {Name: "Month", Missing: nan},
	2: {Name: "Day", Missing: nan},
	3: {Name: "Hour", Missing: nan},
	4: {Name: "Minute", Missing: nan},
	5: {Name: "Uncertainty Flags", Missing: nan},

	6:  {Name: "Dry Bulb Temperature", Unit: "C", Missing: 99.9, Min: -70, Max: 70},
	7:  {Name: "Dew Point Temperature", Unit: "C", Missing: 99.9, Min: -70, Max: 70},
	8:  {Name: "Relative Humidity", Unit: "%", Missing: 999, Min: 0, Max: 110},
	9:  {Name: "Atmospheric Station Pressure", Unit: "Pa", Missing: 999999, Min: 31000, Max: 120000},
	10: {Name: "Extraterrestrial Horizontal Radiation", Unit: "Wh/m2", Missing: 9999, Min: 0, MiddleHour: true},
	11: {Name: "Extraterrestrial Direct Normal Radiation", Unit: "Wh/m2", Missing: 9999, Min: 0, MiddleHour: true},
	12: {Name: "Horizontal Infrared Radiation Intensity", Unit: "Wh/m2", Missing: 9999, Min: 0},
	13: {Name: "Global Horizontal Radiation", Unit: "Wh/m2", Missing: 9999, Min: 0, MiddleHour: true},
	14: {Name: "Direct Normal Radiation", Unit: "Wh/m2", Missing: 9999, Min: 0, MiddleHour: true},
	15: {Name: "Diffuse Horizontal Radiation", Unit: "Wh/m2", Missing: 9999, Min: 0, MiddleHour: true},
	16: {Name: "Global Horizontal Illuminance", Unit: "lux", Missing: 999999, Min: 0, MiddleHour: true},
	17: {Name: "Direct Normal Illuminance", Unit: "lux", Missing: 999999, Min: 0, MiddleHour: true},
	18: {Name: "Diffuse Horizontal Illuminance", Unit: "lux", Missing: 999999, Min: 0, MiddleHour: true},
	19: {Name: "Zenith Luminance", Unit: "Cd/m2", Missing: 9999, Min: 0, MiddleHour: true},
	20: {Name: "Wind Direction", Unit: "degrees", Missing: 999, Min: 0, Max: 360},
	21: {Name: "Wind Speed", Unit: "m/s", Missing: 999, Min: 0, Max: 40},
	22: {Name: "Total Sky Cover", Missing: 99, Min: 0, Max: 10},
	23: {Name: "Opaque Sky Cover", Missing: 99, Min: 0, Max: 10},
	24: {Name: "Visibility", Unit: "km", Missing: 9999},
	25: {Name: "Ceiling Height", Unit: "m", Missing: 99999},
	26: {Name: "Present Weather Observation", Missing: nan},
	27: {Name: "Present Weather Codes", Missing: nan},
	28: {Name: "Precipitable Water", Unit: "mm", Missing: 999},
	29: {Name: "Aerosol Optical Depth", Unit: "thousandths", Missing: 999},
	30: {Name: "Snow Depth", Unit: "cm", Missing: 999},
	31: {Name: "Days Since Last Snowfall", Missing: 99},
	32: {Name: "Albedo", Missing: 999},
	33: {Name: "Liquid Precipitation Depth", Unit: "mm", Missing: 999},
	34: {Name: "Liquid Precipitation Quantity", Unit: "hr", Missing: 99},
}

// FieldByNumber returns the description of an EPW column.
func FieldByNumber(fieldNumber int) (FieldInfo, error) {
	if fieldNumber < 0 || fieldNumber >= NumFields {
		return FieldInfo{}, fmt.Errorf("field number should be between 0-%d, got %d",
			NumFields-1, fieldNumber)
	}
	return fields[fieldNumber], nil
}
