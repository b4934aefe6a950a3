// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package psychro implements psychrometric relations between dry-bulb
// temperature, humidity, pressure and enthalpy of moist air.
//
// Temperatures are in degrees Celsius, pressures in Pascals, humidity
// ratios in kg water per kg dry air, and enthalpies in kJ/kg unless stated
// otherwise.
package psychro

import (
	"math"
)

// StandardPressure is the barometric pressure at sea level in Pa.
const StandardPressure = 101325.0

// SaturatedVaporPressure returns the saturation vapor pressure in Pa at a
// temperature in Kelvin, using separate formulations above and below the
// freezing point of water.
func SaturatedVaporPressure(tKelvin float64) float64 {
	if tKelvin >= 273 {
		// IAPWS formulation over liquid water
		sigma := 1 - tKelvin/647.096
		sum := -7.85951783*sigma +
			1.84408259*math.Pow(sigma, 1.5) +
			-11.7866487*math.Pow(sigma, 3) +
			22.6807411*math.Pow(sigma, 3.5) +
			-15.9618719*math.Pow(sigma, 4) +
			1.80122502*math.Pow(sigma, 7.5)
		return 22064000 * math.Exp(647.096/tKelvin*sum)
	}
	// over ice
	theta := tKelvin / 273.16
	exponent := -13.928169*(1-math.Pow(theta, -1.5)) +
		34.707823*(1-math.Pow(theta, -1.25))
	return 611.657 * math.Exp(exponent)
}

// HumidityRatio returns the humidity ratio of air at a dry-bulb temperature,
// relative humidity in percent and barometric pressure, along with the
// partial and saturation vapor pressures in Pa.
func HumidityRatio(dryBulb, relHumid, pressure float64) (ratio, partialPressure, saturationPressure float64) {
	saturationPressure = SaturatedVaporPressure(dryBulb + 273)
	partialPressure = relHumid / 100 * saturationPressure
	ratio = 0.621991 * partialPressure / (pressure - partialPressure)
	return ratio, partialPressure, saturationPressure
}

// Enthalpy returns the enthalpy of moist air in kJ/kg at a dry-bulb
// temperature and humidity ratio.  Values below zero clamp to zero.
func Enthalpy(dryBulb, humidityRatio float64) float64 {
	enthalpy := (1.01+1.89*humidityRatio)*dryBulb + 2500*humidityRatio
	if enthalpy < 0 {
		return 0
	}
	return enthalpy
}

// DewPoint returns the dew-point temperature at a dry-bulb temperature and
// relative humidity in percent, by the Magnus-Tetens approximation.
func DewPoint(dryBulb, relHumid float64) float64 {
	es := 6.112 * math.Exp(17.67*dryBulb/(dryBulb+243.5))
	e := es * relHumid / 100
	return 243.5 * math.Log(e/6.112) / (17.67 - math.Log(e/6.112))
}

// WetBulb returns the wet-bulb temperature at a dry-bulb temperature,
// relative humidity in percent and barometric pressure, found by a
// sign-tracking bisection on the psychrometric wet-bulb equation.
func WetBulb(dryBulb, relHumid, pressure float64) float64 {
	es := 6.112 * math.Exp(17.67*dryBulb/(dryBulb+243.5))
	e := es * relHumid / 100

	wetBulb := 0.0
	increment := 10.0
	previousSign := 1.0
	delta := 1.0
	for math.Abs(delta) > 0.005 {
		ewg := 6.112 * math.Exp(17.67*wetBulb/(wetBulb+243.5))
		eg := ewg - pressure/100*(dryBulb-wetBulb)*0.00066*(1+0.00155*wetBulb)
		delta = e - eg
		if delta == 0 {
			break
		}
		sign := 1.0
		if delta < 0 {
			sign = -1
		}
		if sign != previousSign {
			previousSign = sign
			increment /= 10
		}
		wetBulb += increment * previousSign
	}
	return wetBulb
}

// RelHumidFromDewPoint returns the relative humidity in percent at a
// dry-bulb and dew-point temperature.
func RelHumidFromDewPoint(dryBulb, dewPoint float64) float64 {
	pw := vaporPressureAtDewPoint(dewPoint)
	pws := SaturatedVaporPressure(dryBulb + 273)
	rh := pw / pws * 100
	if rh > 100 {
		return 100
	}
	return rh
}

// RelHumidFromHumidityRatio returns the relative humidity in percent at a
// humidity ratio, dry-bulb temperature and barometric pressure.
func RelHumidFromHumidityRatio(humidityRatio, dryBulb, pressure float64) float64 {
	pw := humidityRatio * 1000 * pressure / (621.9907 + humidityRatio*1000)
	pws := SaturatedVaporPressure(dryBulb + 273)
	return pw / pws * 100
}

// DryBulbFromEnthalpy returns the dry-bulb temperature at an enthalpy in
// kJ/kg and humidity ratio.
func DryBulbFromEnthalpy(enthalpy, humidityRatio float64) float64 {
	return (enthalpy - 2.5*humidityRatio*1000) /
		(1.01 + 0.00189*humidityRatio*1000)
}

// DryBulbFromWetBulb returns the dry-bulb temperature and humidity ratio at
// a wet-bulb temperature, relative humidity in percent and pressure.
func DryBulbFromWetBulb(wetBulb, relHumid, pressure float64) (dryBulb, humidityRatio float64) {
	humidityRatio, _, _ = HumidityRatio(wetBulb, relHumid, pressure)
	saturatedRatio, _, _ := HumidityRatio(wetBulb, 100, pressure)
	dryBulb = wetBulb + (saturatedRatio-humidityRatio)*2260000/1005
	return dryBulb, humidityRatio
}

// DewPointFromDryBulbWetBulb returns the dew-point temperature at a dry-bulb
// and wet-bulb temperature and barometric pressure.
func DewPointFromDryBulbWetBulb(dryBulb, wetBulb, pressure float64) float64 {
	saturatedRatio, _, _ := HumidityRatio(wetBulb, 100, pressure)
	ratio := ((2501-2.381*wetBulb)*saturatedRatio - 1.006*(dryBulb-wetBulb)) /
		(2501 + 1.805*dryBulb - 4.186*wetBulb)
	return DewPointFromHumidityRatio(ratio, pressure)
}

// DewPointFromHumidityRatio returns the dew-point temperature at a humidity
// ratio and barometric pressure.
func DewPointFromHumidityRatio(humidityRatio, pressure float64) float64 {
	pw := pressure * humidityRatio / (0.621991 + humidityRatio)
	// invert the Magnus-Tetens vapor pressure curve
	alpha := math.Log(pw / 611.2)
	return 243.5 * alpha / (17.67 - alpha)
}

// DewPointFromEnthalpy returns the dew-point temperature at a dry-bulb
// temperature, enthalpy in kJ/kg and barometric pressure.
func DewPointFromEnthalpy(dryBulb, enthalpy, pressure float64) float64 {
	ratio := (enthalpy - 1.01*dryBulb) / (2500 + 1.89*dryBulb)
	if ratio < 0 {
		ratio = 1e-6
	}
	return DewPointFromHumidityRatio(ratio, pressure)
}

func vaporPressureAtDewPoint(dewPoint float64) float64 {
	const (
		a  = 6.11657
		m  = 7.591386
		tn = 240.7263
	)
	// Magnus curve in hPa, converted to Pa
	return a * math.Pow(10, m*dewPoint/(dewPoint+tn)) * 100
}
