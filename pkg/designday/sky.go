// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package designday

import (
	"fmt"
	"math"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
	"github.com/ladybug-tools/ladybug-go/pkg/skymodel"
	"github.com/ladybug-tools/ladybug-go/pkg/sunpath"
)

// SkyCondition models the sky over a design day.
type SkyCondition interface {
	// SkyDate is the day of the year the design day occurs on.
	SkyDate() dtime.Date
	// IsDaylightSavings reports whether clocks are shifted an hour
	// forward on the design day.
	IsDaylightSavings() bool
	// HourlySkyCover returns sky cover in tenths for each hour.
	HourlySkyCover() []float64
	// RadiationValues returns direct normal, diffuse horizontal and
	// global horizontal radiation in Wh/m2 for each hour of the day.
	RadiationValues(loc location.Location) (dirNorm, difHoriz, globHoriz []float64)
}

// ASHRAEClearSky is a sky condition driven by the original ASHRAE clear sky
// model.
type ASHRAEClearSky struct {
	Date dtime.Date `json:"date"`
	// Clearness between 0 and 1.2 scales the model's irradiance, to
	// correct for factors like elevation.
	Clearness       float64 `json:"clearness"`
	DaylightSavings bool    `json:"daylight_savings,omitempty"`
}

// NewASHRAEClearSky validates the clearness.
func NewASHRAEClearSky(date dtime.Date, clearness float64) (*ASHRAEClearSky, error) {
	if clearness < 0 || clearness > 1.2 {
		return nil, fmt.Errorf("clearness %g is not between 0 and 1.2", clearness)
	}
	return &ASHRAEClearSky{Date: date, Clearness: clearness}, nil
}

func (s *ASHRAEClearSky) SkyDate() dtime.Date     { return s.Date }
func (s *ASHRAEClearSky) IsDaylightSavings() bool { return s.DaylightSavings }

// HourlySkyCover infers a constant cover from the clearness.
func (s *ASHRAEClearSky) HourlySkyCover() []float64 {
	cover := 0.0
	if s.Clearness <= 1 {
		cover = (1 - s.Clearness) * 10
	}
	values := make([]float64, 24)
	for i := range values {
		values[i] = cover
	}
	return values
}

func (s *ASHRAEClearSky) RadiationValues(loc location.Location) (dirNorm, difHoriz, globHoriz []float64) {
	altitudes := solarAltitudes(loc, s.Date, s.DaylightSavings)
	dirNorm, difHoriz = skymodel.ASHRAEClearSky(altitudes, s.Date.Month, s.Clearness)
	return dirNorm, difHoriz, globalHorizontal(altitudes, dirNorm, difHoriz)
}

// ASHRAETau is a sky condition driven by the ASHRAE revised clear sky
// (Tau) model.
type ASHRAETau struct {
	Date dtime.Date `json:"date"`
	// TauB and TauD are the beam and diffuse optical depths, typically
	// found in .stat files.
	TauB float64 `json:"tau_b"`
	TauD float64 `json:"tau_d"`
	// Use2017 selects the revision of the model published in the 2017
	// ASHRAE Handbook of Fundamentals over the original 2009 one.
	Use2017         bool `json:"use_2017,omitempty"`
	DaylightSavings bool `json:"daylight_savings,omitempty"`
}

func (s *ASHRAETau) SkyDate() dtime.Date     { return s.Date }
func (s *ASHRAETau) IsDaylightSavings() bool { return s.DaylightSavings }

// HourlySkyCover is always clear for a Tau sky.
func (s *ASHRAETau) HourlySkyCover() []float64 {
	return make([]float64, 24)
}

func (s *ASHRAETau) RadiationValues(loc location.Location) (dirNorm, difHoriz, globHoriz []float64) {
	altitudes := solarAltitudes(loc, s.Date, s.DaylightSavings)
	if s.Use2017 {
		dirNorm, difHoriz = skymodel.ASHRAERevisedClearSky2017(altitudes, s.TauB, s.TauD)
	} else {
		dirNorm, difHoriz = skymodel.ASHRAERevisedClearSky(altitudes, s.TauB, s.TauD)
	}
	return dirNorm, difHoriz, globalHorizontal(altitudes, dirNorm, difHoriz)
}

// solarAltitudes returns the sun's altitude at the middle of each hour of
// the day, in standard time.
func solarAltitudes(loc location.Location, date dtime.Date, daylightSavings bool) []float64 {
	sp := sunpath.FromLocation(loc)
	sp.LeapYear = date.LeapYear

	startMOY := (date.DOY() - 1) * 1440
	if daylightSavings {
		// clocks sprang forward, so move the sun back an hour
		startMOY -= 60
	}
	startMOY += 30 // sample the middle of each hour

	yearMinutes := dtime.MinutesPerYear
	if date.LeapYear {
		yearMinutes = dtime.MinutesPerLeapYear
	}

	altitudes := make([]float64, 24)
	for i := range altitudes {
		moy := startMOY + i*60
		moy = ((moy % yearMinutes) + yearMinutes) % yearMinutes
		dt, err := dtime.FromMOY(moy, date.LeapYear)
		if err != nil {
			continue
		}
		altitudes[i] = sp.CalculateSunFromDateTime(dt, false).Altitude
	}
	return altitudes
}

func globalHorizontal(altitudes, dirNorm, difHoriz []float64) []float64 {
	globHoriz := make([]float64, len(altitudes))
	for i, alt := range altitudes {
		globHoriz[i] = difHoriz[i] + dirNorm[i]*math.Sin(alt*math.Pi/180)
	}
	return globHoriz
}
