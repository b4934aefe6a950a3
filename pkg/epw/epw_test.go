// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package epw_test

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/designday"
	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/epw"
)

var headerLines = []string{
	"LOCATION,Denver Centennial Golden Nr,CO,USA,TMY3,724666,39.74,-105.18,-7.0,1829.0",
	"DESIGN CONDITIONS,0",
	"TYPICAL/EXTREME PERIODS,0",
	"GROUND TEMPERATURES,0",
	"HOLIDAYS/DAYLIGHT SAVINGS,No,0,0,0",
	"COMMENTS 1,synthetic data for tests",
	"COMMENTS 2,",
	"DATA PERIODS,1,1,Data,Sunday, 1/ 1,12/31",
}

// dryBulbAt gives the synthetic temperature for a day of year and an EPW
// hour (1-24): cold in January, hot in July, peaking mid-afternoon.
func dryBulbAt(doy, hour int) float64 {
	seasonal := 10 - 15*math.Cos(2*math.Pi*float64(doy-15)/365)
	daily := 5 * math.Cos(2*math.Pi*float64(hour-14)/24)
	return seasonal + daily
}

func syntheticEPW(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	for _, line := range headerLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for doy := 1; doy <= 365; doy++ {
		date, err := dtime.DateFromDOY(doy, false)
		require.NoError(t, err)
		for hour := 1; hour <= 24; hour++ {
			db := dryBulbAt(doy, hour)
			fmt.Fprintf(&b,
				"2017,%d,%d,%d,0,?9?9?9?9E0?9?9?9?9?9?9?9?9?9?9?9?9?9?9?9*9*9?9?9?9,"+
					"%.1f,%.1f,50,101325,0,0,350,300,200,100,0,0,0,0,270,4.0,5,5,"+
					"20.0,2000,9,999999999,30,0.1,0,88,0.2,0.0,0.0\n",
				date.Month, date.Day, hour, db, db-5)
		}
	}
	return b.String()
}

func parseSynthetic(t *testing.T) *epw.EPW {
	t.Helper()
	parsed, err := epw.Parse(strings.NewReader(syntheticEPW(t)))
	require.NoError(t, err)
	return parsed
}

func TestParseLocation(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	assert.Equal(t, "Denver Centennial Golden Nr", parsed.Location.City)
	assert.Equal(t, "CO", parsed.Location.State)
	assert.Equal(t, "USA", parsed.Location.Country)
	assert.Equal(t, "TMY3", parsed.Location.Source)
	assert.Equal(t, "724666", parsed.Location.StationID)
	assert.Equal(t, 39.74, parsed.Location.Latitude)
	assert.Equal(t, -105.18, parsed.Location.Longitude)
	assert.Equal(t, -7.0, parsed.Location.TimeZone)
	assert.Equal(t, 1829.0, parsed.Location.Elevation)
	assert.Equal(t, epw.NumFields, parsed.NumFieldsInFile())
	assert.Equal(t, headerLines, parsed.HeaderLines())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	full := syntheticEPW(t)
	testcases := map[string]string{
		"empty":          "",
		"headers-only":   strings.Join(headerLines, "\n") + "\n",
		"short-year":     full[:len(full)/2],
		"bad-location":   strings.Replace(full, "39.74", "not-a-number", 1),
		"not-a-location": strings.Replace(full, "LOCATION,", "STATION,", 1),
		"wrong-latitude": strings.Replace(full, "39.74", "139.74", 1),
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			_, err := epw.Parse(strings.NewReader(tc))
			assert.Error(t, err)
		})
	}
}

func TestParseFileExtension(t *testing.T) {
	t.Parallel()
	_, err := epw.ParseFile(filepath.Join(t.TempDir(), "weather.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an .epw file")

	_, err = epw.ParseFile(filepath.Join(t.TempDir(), "missing.epw"))
	assert.Error(t, err)
}

func TestFieldValuesRotation(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	// on-the-hour fields rotate the last row (Dec 31, 24:00) to index 0
	dryBulb, err := parsed.FieldValues(6)
	require.NoError(t, err)
	require.Len(t, dryBulb, dtime.HoursPerYear)
	assert.InDelta(t, dryBulbAt(365, 24), dryBulb[0], 0.05)
	assert.InDelta(t, dryBulbAt(1, 1), dryBulb[1], 0.05)

	// radiation fields are integrated over the hour and stay put
	dirNorm, err := parsed.FieldValues(14)
	require.NoError(t, err)
	assert.Equal(t, 200.0, dirNorm[0])
}

func TestFieldValuesErrors(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	_, err := parsed.FieldValues(-1)
	assert.Error(t, err)
	_, err = parsed.FieldValues(35)
	assert.Error(t, err)

	corrupted := strings.Replace(syntheticEPW(t), "101325", "1O1325", 1)
	bad, err := epw.Parse(strings.NewReader(corrupted))
	require.NoError(t, err)
	_, err = bad.FieldValues(9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atmospheric Station Pressure")
}

func TestAccessors(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	dryBulb, err := parsed.DryBulbTemperature()
	require.NoError(t, err)
	assert.Equal(t, "Dry Bulb Temperature", dryBulb.Header.DataType)
	assert.Equal(t, "C", dryBulb.Header.Unit)
	assert.Equal(t, dtime.HoursPerYear, dryBulb.Len())
	assert.InDelta(t, 10.0, dryBulb.Average(), 0.5)

	windSpeed, err := parsed.WindSpeed()
	require.NoError(t, err)
	assert.Equal(t, 4.0, windSpeed.Average())

	relHumid, err := parsed.RelativeHumidity()
	require.NoError(t, err)
	assert.Equal(t, 50.0, relHumid.Max())
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()
	original := syntheticEPW(t)
	parsed, err := epw.Parse(strings.NewReader(original))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, parsed.Write(&out))
	assert.Equal(t, original, out.String())
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)
	path := filepath.Join(t.TempDir(), "out.epw")
	require.NoError(t, parsed.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	reparsed, err := epw.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, parsed.Location, reparsed.Location)
}

func TestSkyTemperature(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	skyTemp, err := parsed.SkyTemperature()
	require.NoError(t, err)
	assert.Equal(t, "Sky Temperature", skyTemp.Header.DataType)
	// constant 350 Wh/m2 of infrared means a constant sky temperature
	assert.InDelta(t, 7.2, skyTemp.Values[0], 0.2)
	assert.InDelta(t, skyTemp.Values[0], skyTemp.Values[4000], 1e-9)
}

func TestApproximateDesignDayHeating(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	dd, err := parsed.ApproximateDesignDay("WinterDesignDay", 0)
	require.NoError(t, err)
	assert.Equal(t, "WinterDesignDay", dd.DayType)
	assert.Contains(t, dd.Name, "99.6%")
	// the coldest stretch sits around -10 C at night in early January
	assert.InDelta(t, -9.5, dd.DryBulb.DryBulbMax, 1.5)
	assert.Zero(t, dd.DryBulb.DryBulbRange)
	assert.Equal(t, designday.Wetbulb, dd.Humidity.Type)
	assert.Equal(t, dd.DryBulb.DryBulbMax, dd.Humidity.Value)
	assert.Equal(t, 4.0, dd.Wind.WindSpeed)
	assert.Equal(t, 270.0, dd.Wind.WindDirection)

	sky, ok := dd.Sky.(*designday.ASHRAEClearSky)
	require.True(t, ok)
	assert.Equal(t, 1, sky.Date.Month)
	assert.Equal(t, 21, sky.Date.Day)
	assert.Zero(t, sky.Clearness)
}

func TestApproximateDesignDayCooling(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	dd, err := parsed.ApproximateDesignDay("SummerDesignDay", 0.4)
	require.NoError(t, err)
	assert.Equal(t, "SummerDesignDay", dd.DayType)
	assert.Contains(t, dd.Name, "0.4%")
	// the hottest stretch peaks near 30 C in early July afternoons
	assert.InDelta(t, 29.5, dd.DryBulb.DryBulbMax, 1.0)
	assert.InDelta(t, 10.0, dd.DryBulb.DryBulbRange, 0.5)
	assert.Equal(t, designday.Wetbulb, dd.Humidity.Type)
	assert.Less(t, dd.Humidity.Value, dd.DryBulb.DryBulbMax)

	sky, ok := dd.Sky.(*designday.ASHRAEClearSky)
	require.True(t, ok)
	assert.Equal(t, 7, sky.Date.Month)
	assert.Equal(t, 1.0, sky.Clearness)
}

func TestApproximateDesignDayErrors(t *testing.T) {
	t.Parallel()
	parsed := parseSynthetic(t)

	_, err := parsed.ApproximateDesignDay("SpringDesignDay", 0.4)
	assert.Error(t, err)
	_, err = parsed.ApproximateDesignDay("SummerDesignDay", 60)
	assert.Error(t, err)
}

func TestFieldByNumber(t *testing.T) {
	t.Parallel()
	field, err := epw.FieldByNumber(6)
	require.NoError(t, err)
	assert.Equal(t, "Dry Bulb Temperature", field.Name)
	assert.Equal(t, "C", field.Unit)
	assert.Equal(t, 99.9, field.Missing)
	assert.False(t, field.MiddleHour)

	field, err = epw.FieldByNumber(14)
	require.NoError(t, err)
	assert.True(t, field.MiddleHour)

	_, err = epw.FieldByNumber(35)
	assert.Error(t, err)
}
