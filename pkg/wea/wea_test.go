// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package wea_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/epw"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
	"github.com/ladybug-tools/ladybug-go/pkg/wea"
)

func goldenLocation() location.Location {
	return location.Location{
		City:      "Golden",
		State:     "CO",
		Country:   "USA",
		Latitude:  39.74,
		Longitude: -105.18,
		TimeZone:  -7,
		Elevation: 1829,
	}
}

func annualWea(t *testing.T) *wea.Wea {
	t.Helper()
	directNormal := make([]float64, dtime.HoursPerYear)
	diffuseHorizontal := make([]float64, dtime.HoursPerYear)
	for i := range directNormal {
		directNormal[i] = float64(200 + i%24)
		diffuseHorizontal[i] = float64(100 + i%24)
	}
	w, err := wea.New(goldenLocation(), directNormal, diffuseHorizontal, 1)
	require.NoError(t, err)
	return w
}

func TestNewValidatesAnnualData(t *testing.T) {
	t.Parallel()
	short := make([]float64, 100)
	_, err := wea.New(goldenLocation(), short, short, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be annual")

	// a finer timestep needs proportionally more values
	halfHourly := make([]float64, dtime.HoursPerYear*2)
	w, err := wea.New(goldenLocation(), halfHourly, halfHourly, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Timestep)

	_, err = wea.New(goldenLocation(), halfHourly, halfHourly, 1)
	require.Error(t, err)
}

func TestHeader(t *testing.T) {
	t.Parallel()
	w := annualWea(t)
	assert.Equal(t, strings.Join([]string{
		"place Golden",
		"latitude 39.74",
		"longitude 105.18",
		"time_zone 105",
		"site_elevation 1829.0",
		"weather_data_file_units 1",
		"",
	}, "\n"), w.Header())
}

func TestRadiationValues(t *testing.T) {
	t.Parallel()
	w := annualWea(t)

	dirNorm, difHoriz, err := w.RadiationValues(13)
	require.NoError(t, err)
	assert.Equal(t, 213.0, dirNorm)
	assert.Equal(t, 113.0, difHoriz)

	_, _, err = w.RadiationValues(9000)
	require.Error(t, err)
}

func TestWriteTo(t *testing.T) {
	t.Parallel()
	w := annualWea(t)
	var b strings.Builder
	require.NoError(t, w.WriteTo(&b))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 6+dtime.HoursPerYear)
	assert.Equal(t, "place Golden", lines[0])
	assert.Equal(t, "1 1 0.500 200 100", lines[6])
	assert.Equal(t, "1 1 13.500 213 113", lines[6+13])
	assert.Equal(t, "12 31 23.500 223 123", lines[len(lines)-1])
}

func TestWriteHOYs(t *testing.T) {
	t.Parallel()
	w := annualWea(t)
	var b strings.Builder
	require.NoError(t, w.WriteHOYs(&b, []float64{12, 36}))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "1 1 12.500 212 112", lines[6])
	assert.Equal(t, "1 2 12.500 212 112", lines[7])

	require.Error(t, w.WriteHOYs(&strings.Builder{}, []float64{-1}))
}

func TestFromEPW(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString("LOCATION,Golden,CO,USA,TMY3,724666,39.74,-105.18,-7.0,1829.0\n")
	for _, line := range []string{
		"DESIGN CONDITIONS,0",
		"TYPICAL/EXTREME PERIODS,0",
		"GROUND TEMPERATURES,0",
		"HOLIDAYS/DAYLIGHT SAVINGS,No,0,0,0",
		"COMMENTS 1,synthetic data for tests",
		"COMMENTS 2,",
		"DATA PERIODS,1,1,Data,Sunday, 1/ 1,12/31",
	} {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for doy := 1; doy <= 365; doy++ {
		date, err := dtime.DateFromDOY(doy, false)
		require.NoError(t, err)
		for hour := 1; hour <= 24; hour++ {
			fmt.Fprintf(&b,
				"2017,%d,%d,%d,0,?9?9?9?9E0?9?9?9?9?9?9?9?9?9?9?9?9?9?9?9*9*9?9?9?9,"+
					"20.0,15.0,50,101325,0,0,350,300,200,100,0,0,0,0,270,4.0,5,5,"+
					"20.0,2000,9,999999999,30,0.1,0,88,0.2,0.0,0.0\n",
				date.Month, date.Day, hour)
		}
	}
	parsed, err := epw.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)

	w, err := wea.FromEPW(parsed)
	require.NoError(t, err)
	assert.Equal(t, "Golden", w.Location.City)
	assert.Equal(t, 1, w.Timestep)
	require.Len(t, w.DirectNormal, dtime.HoursPerYear)

	dirNorm, difHoriz, err := w.RadiationValues(0)
	require.NoError(t, err)
	assert.Equal(t, 200.0, dirNorm)
	assert.Equal(t, 100.0, difHoriz)
}
