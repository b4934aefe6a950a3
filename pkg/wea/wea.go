// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wea writes Radiance WEA weather files.
//
// A WEA file carries the radiation values gendaymtx needs to generate a
// sky.  Writing a full year is identical to running epw2wea.
package wea

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/epw"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
)

// Wea is annual radiation data for a location.
type Wea struct {
	Location location.Location
	// DirectNormal and DiffuseHorizontal are radiation values in Wh/m2
	// for every timestep of the year.
	DirectNormal      []float64
	DiffuseHorizontal []float64
	// Timestep is the number of values per hour.
	Timestep int
}

// New validates that the radiation data covers the whole year at the
// timestep.
func New(loc location.Location, directNormal, diffuseHorizontal []float64, timestep int) (*Wea, error) {
	if timestep < 1 {
		timestep = 1
	}
	expected := dtime.HoursPerYear * timestep
	if len(directNormal) != expected || len(diffuseHorizontal) != expected {
		return nil, fmt.Errorf(
			"direct normal and diffuse horizontal radiation data must be annual: "+
				"expected %d values at timestep %d, got %d and %d",
			expected, timestep, len(directNormal), len(diffuseHorizontal))
	}
	return &Wea{
		Location:          loc,
		DirectNormal:      directNormal,
		DiffuseHorizontal: diffuseHorizontal,
		Timestep:          timestep,
	}, nil
}

// FromEPW builds annual WEA data from a parsed EPW file.
func FromEPW(weather *epw.EPW) (*Wea, error) {
	directNormal, err := weather.DirectNormalRadiation()
	if err != nil {
		return nil, err
	}
	diffuseHorizontal, err := weather.DiffuseHorizontalRadiation()
	if err != nil {
		return nil, err
	}
	return New(weather.Location, directNormal.Values, diffuseHorizontal.Values, 1)
}

// RadiationValues returns the direct normal and diffuse horizontal
// radiation at an hour of the year.
func (w *Wea) RadiationValues(hoy float64) (dirNorm, difHoriz float64, err error) {
	i := int(hoy * float64(w.Timestep))
	if i < 0 || i >= len(w.DirectNormal) {
		return 0, 0, fmt.Errorf("hour of year %g is out of range", hoy)
	}
	return w.DirectNormal[i], w.DiffuseHorizontal[i], nil
}

// Header returns the WEA header block.  The sign conventions follow
// Radiance: longitude is positive west of the meridian and the time zone is
// in degrees of longitude.
func (w *Wea) Header() string {
	return fmt.Sprintf("place %s\n", w.Location.City) +
		fmt.Sprintf("latitude %.2f\n", w.Location.Latitude) +
		fmt.Sprintf("longitude %.2f\n", -w.Location.Longitude) +
		fmt.Sprintf("time_zone %d\n", int(-w.Location.TimeZone*15)) +
		fmt.Sprintf("site_elevation %.1f\n", w.Location.Elevation) +
		fmt.Sprintf("weather_data_file_units %d\n", w.Timestep)
}

// WriteTo writes the header and every hour of the year.
func (w *Wea) WriteTo(writer io.Writer) error {
	hoys := make([]float64, dtime.HoursPerYear*w.Timestep)
	for i := range hoys {
		hoys[i] = float64(i) / float64(w.Timestep)
	}
	return w.WriteHOYs(writer, hoys)
}

// WriteHOYs writes the header and the listed hours of the year, for
// analyses that only need part of the year.
func (w *Wea) WriteHOYs(writer io.Writer, hoys []float64) error {
	buffered := bufio.NewWriter(writer)
	if _, err := buffered.WriteString(w.Header()); err != nil {
		return err
	}
	for _, hoy := range hoys {
		dirNorm, difHoriz, err := w.RadiationValues(hoy)
		if err != nil {
			return err
		}
		dt, err := dtime.FromHOY(hoy, false)
		if err != nil {
			return err
		}
		// radiation values are integrated over the hour, so they are
		// stamped at the half hour
		_, err = fmt.Fprintf(buffered, "%d %d %.3f %d %d\n",
			dt.Month, dt.Day, float64(dt.Hour)+0.5, int(dirNorm), int(difHoriz))
		if err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// WriteFile writes the WEA to a path.
func (w *Wea) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
