// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package skymodel computes solar radiation for idealized skies.
package skymodel

import "math"

// apparent solar irradiation at air mass 0, by month
var monthlyA = [12]float64{1202, 1187, 1164, 1130, 1106, 1092, 1093, 1107,
	1136, 1166, 1190, 1204}

// atmospheric extinction coefficient, by month
var monthlyB = [12]float64{0.141, 0.142, 0.149, 0.164, 0.177, 0.185, 0.186,
	0.182, 0.165, 0.152, 0.144, 0.141}

// ASHRAEClearSky calculates direct normal and diffuse horizontal radiation
// in W/m2 for the original ASHRAE Clear Sky model.
//
// altitudes are solar altitudes in degrees, month selects the monthly model
// constants and skyClearness scales the output.  Threlkeld and Jordan (1958)
// recommend clearness values from about 0.95 for humid climates to 1.05 for
// dry ones, rarely more than 1.2.
func ASHRAEClearSky(altitudes []float64, month int, skyClearness float64) (dirNorm, difHoriz []float64) {
	dirNorm = make([]float64, len(altitudes))
	difHoriz = make([]float64, len(altitudes))
	for i, alt := range altitudes {
		if alt <= 0 {
			continue // night time
		}
		dn := monthlyA[month-1] /
			math.Exp(monthlyB[month-1]/math.Sin(alt*math.Pi/180))
		if math.IsInf(dn, 0) || math.IsNaN(dn) {
			continue // very small altitude values
		}
		dirNorm[i] = dn * skyClearness
		difHoriz[i] = 0.17 * dn * math.Sin(alt*math.Pi/180) * skyClearness
	}
	return dirNorm, difHoriz
}

// ASHRAERevisedClearSky calculates direct normal and diffuse horizontal
// radiation in W/m2 for the ASHRAE Revised Clear Sky model ("Tau Model").
//
// tb and td are the beam and diffuse optical depths of the sky.
func ASHRAERevisedClearSky(altitudes []float64, tb, td float64) (dirNorm, difHoriz []float64) {
	ab := 1.219 - 0.043*tb - 0.151*td - 0.204*tb*td
	ad := 0.202 + 0.852*tb - 0.007*td - 0.357*tb*td
	return revisedClearSky(altitudes, tb, td, ab, ad)
}

// ASHRAERevisedClearSky2017 is the Tau model with the air mass exponents
// revised in the 2017 ASHRAE Handbook of Fundamentals.
func ASHRAERevisedClearSky2017(altitudes []float64, tb, td float64) (dirNorm, difHoriz []float64) {
	ab := 1.454 - 0.406*tb - 0.268*td + 0.021*tb*td
	ad := 0.507 + 0.205*tb - 0.080*td - 0.190*tb*td
	return revisedClearSky(altitudes, tb, td, ab, ad)
}

func revisedClearSky(altitudes []float64, tb, td, ab, ad float64) (dirNorm, difHoriz []float64) {
	dirNorm = make([]float64, len(altitudes))
	difHoriz = make([]float64, len(altitudes))
	for i, alt := range altitudes {
		if alt <= 0 {
			continue
		}
		airMass := 1 / (math.Sin(alt*math.Pi/180) +
			0.50572*math.Pow(6.07995+alt, -1.6364))
		dirNorm[i] = 1415 * math.Exp(-tb*math.Pow(airMass, ab))
		difHoriz[i] = 1415 * math.Exp(-td*math.Pow(airMass, ad))
	}
	return dirNorm, difHoriz
}

// extraterrestrial solar constant (W/m2)
const irr0 = 1355

// ZhangHuang estimates direct normal and diffuse horizontal radiation in
// W/m2 from common weather observations using the Zhang-Huang model.
//
// altitude is the solar altitude in degrees, cloudCover the sky cloud cover
// in tenths (0 clear to 10 overcast), relativeHumidity in percent,
// dryBulbPresent and dryBulbT3Hrs the dry bulb temperature now and three
// hours earlier in C, and windSpeed in m/s.
func ZhangHuang(altitude, cloudCover, relativeHumidity,
	dryBulbPresent, dryBulbT3Hrs, windSpeed float64) (dirNorm, difHoriz float64) {
	if altitude <= 0 {
		return 0, 0
	}

	// regression constants
	const (
		c0     = 0.5598
		c1     = 0.4982
		c2     = -0.6762
		c3     = 0.02842
		c4     = -0.00317
		c5     = 0.014
		dCoeff = -17.853
		kCoeff = 0.843
	)

	sinAlt := math.Sin(altitude * math.Pi / 180)
	cc := cloudCover / 10

	globIR := (irr0*sinAlt*
		(c0+c1*cc+c2*cc*cc+
			c3*(dryBulbPresent-dryBulbT3Hrs)+
			c4*relativeHumidity+c5*windSpeed) + dCoeff) / kCoeff
	if globIR <= 0 {
		return 0, 0
	}

	// split global into direct and diffuse
	kt := globIR / (irr0 * sinAlt)
	ktc := 0.4268 + 0.1934*sinAlt
	var kds float64
	if kt >= ktc {
		kds = kt - (1.107+0.03569*sinAlt+1.681*sinAlt*sinAlt)*(1-kt)*(1-kt)
	} else {
		kds = (3.996 - 3.862*sinAlt + 1.540*sinAlt*sinAlt) * kt * kt * kt
	}
	difHoriz = (irr0 * sinAlt * (kt - kds)) / (1 - kds)
	dirHoriz := (irr0 * sinAlt * kds * (1 - kt)) / (1 - kds)
	dirNorm = dirHoriz / sinAlt
	return dirNorm, difHoriz
}

// stefan-boltzmann constant
const sigma = 5.6697e-8

// HorizontalInfrared calculates the horizontal infrared radiation intensity
// in W/m2 following the EnergyPlus sky radiation model.
//
// skyCover is the opaque sky cover in tenths (0 clear to 10 overcast), and
// dryBulb and dewPoint are in C.
func HorizontalInfrared(skyCover, dryBulb, dewPoint float64) float64 {
	dbK := dryBulb + 273.15
	dpK := dewPoint + 273.15

	skyEmiss := (0.787 + 0.764*math.Log(dpK/273.15)) *
		(1 + 0.022*skyCover - 0.0035*skyCover*skyCover +
			0.00028*skyCover*skyCover*skyCover)
	return skyEmiss * sigma * math.Pow(dbK, 4)
}

// SkyTemperature converts a horizontal infrared intensity in W/m2 and a dry
// bulb temperature in C to an effective sky temperature in C.
func SkyTemperature(horizIR, dryBulb float64) float64 {
	dbK := dryBulb + 273.15
	return math.Pow(horizIR/sigma, 0.25) - dbK
}
