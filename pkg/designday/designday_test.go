// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package designday_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/designday"
	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
)

var chicago = location.Location{
	City:      "Chicago Ohare Intl Ap",
	State:     "IL",
	Country:   "USA",
	Latitude:  41.98,
	Longitude: -87.92,
	TimeZone:  -6,
	Elevation: 201,
}

const coolingIDF = `SizingPeriod:DesignDay,
  Chicago Ohare Intl Ap Ann Clg .4% Condns DB=>MWB,           !- Name
  7,                                                          !- Month
  21,                                                         !- Day of Month
  SummerDesignDay,                                            !- Day Type
  33.3,                                                       !- Max Dry-Bulb Temp {C}
  10.5,                                                       !- Daily Dry-Bulb Temp Range {C}
  DefaultMultipliers,                                         !- Dry-Bulb Temp Range Modifier Type
  ,                                                           !- Dry-Bulb Temp Range Modifier Schedule Name
  Wetbulb,                                                    !- Humidity Condition Type
  23.7,                                                       !- Wetbulb/Dewpoint at Max Dry-Bulb {C}
  ,                                                           !- Humidity Indicating Day Schedule Name
  ,                                                           !- Humidity Ratio at Maximum Dry-Bulb {kgWater/kgDryAir}
  ,                                                           !- Enthalpy at Maximum Dry-Bulb {J/kg}
  ,                                                           !- Daily Wet-Bulb Temperature Range {deltaC}
  98934,                                                      !- Barometric Pressure {Pa}
  5.2,                                                        !- Wind Speed {m/s}
  230,                                                        !- Wind Direction {Degrees; N=0, S=180}
  No,                                                         !- Rain {Yes/No}
  No,                                                         !- Snow on ground {Yes/No}
  No,                                                         !- Daylight Savings Time Indicator {Yes/No}
  ASHRAETau,                                                  !- Solar Model Indicator
  ,                                                           !- Beam Solar Day Schedule Name
  ,                                                           !- Diffuse Solar Day Schedule Name
  0.455,                                                      !- ASHRAE Clear Sky Beam Optical Depth (taub)
  1.948;                                                      !- ASHRAE Clear Sky Diffuse Optical Depth (taud)
`

const heatingIDF = `SizingPeriod:DesignDay,
  Chicago Ohare Intl Ap Ann Htg 99.6% Condns DB,              !- Name
  1,                                                          !- Month
  21,                                                         !- Day of Month
  WinterDesignDay,                                            !- Day Type
  -20,                                                        !- Max Dry-Bulb Temp {C}
  0,                                                          !- Daily Dry-Bulb Temp Range {C}
  DefaultMultipliers,                                         !- Dry-Bulb Temp Range Modifier Type
  ,                                                           !- Dry-Bulb Temp Range Modifier Schedule Name
  Wetbulb,                                                    !- Humidity Condition Type
  -20,                                                        !- Wetbulb/Dewpoint at Max Dry-Bulb {C}
  ,                                                           !- Humidity Indicating Day Schedule Name
  ,                                                           !- Humidity Ratio at Maximum Dry-Bulb {kgWater/kgDryAir}
  ,                                                           !- Enthalpy at Maximum Dry-Bulb {J/kg}
  ,                                                           !- Daily Wet-Bulb Temperature Range {deltaC}
  98934,                                                      !- Barometric Pressure {Pa}
  4.9,                                                        !- Wind Speed {m/s}
  270,                                                        !- Wind Direction {Degrees; N=0, S=180}
  No,                                                         !- Rain {Yes/No}
  No,                                                         !- Snow on ground {Yes/No}
  No,                                                         !- Daylight Savings Time Indicator {Yes/No}
  ASHRAEClearSky,                                             !- Solar Model Indicator
  ,                                                           !- Beam Solar Day Schedule Name
  ,                                                           !- Diffuse Solar Day Schedule Name
  ,                                                           !- ASHRAE Clear Sky Beam Optical Depth (taub)
  ,                                                           !- ASHRAE Clear Sky Diffuse Optical Depth (taud)
  0;                                                          !- Clearness (0.0 to 1.2)
`

func TestFromIDFCooling(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	assert.Equal(t, "Chicago Ohare Intl Ap Ann Clg .4% Condns DB=>MWB", dd.Name)
	assert.Equal(t, "SummerDesignDay", dd.DayType)
	assert.Equal(t, 33.3, dd.DryBulb.DryBulbMax)
	assert.Equal(t, 10.5, dd.DryBulb.DryBulbRange)
	assert.Equal(t, designday.Wetbulb, dd.Humidity.Type)
	assert.Equal(t, 23.7, dd.Humidity.Value)
	assert.Equal(t, 98934.0, dd.Humidity.BarometricPressure)
	assert.Equal(t, 5.2, dd.Wind.WindSpeed)
	assert.Equal(t, 230.0, dd.Wind.WindDirection)

	tau, ok := dd.Sky.(*designday.ASHRAETau)
	require.True(t, ok, "expected an ASHRAETau sky, got %T", dd.Sky)
	assert.Equal(t, 7, tau.Date.Month)
	assert.Equal(t, 21, tau.Date.Day)
	assert.Equal(t, 0.455, tau.TauB)
	assert.Equal(t, 1.948, tau.TauD)
	assert.False(t, tau.Use2017)
}

func TestFromIDFHeating(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(heatingIDF, chicago)
	require.NoError(t, err)

	assert.Equal(t, "WinterDesignDay", dd.DayType)
	assert.Equal(t, -20.0, dd.DryBulb.DryBulbMax)
	assert.Zero(t, dd.DryBulb.DryBulbRange)

	clearSky, ok := dd.Sky.(*designday.ASHRAEClearSky)
	require.True(t, ok, "expected an ASHRAEClearSky sky, got %T", dd.Sky)
	assert.Equal(t, 1, clearSky.Date.Month)
	assert.Zero(t, clearSky.Clearness)
}

func TestFromIDFErrors(t *testing.T) {
	t.Parallel()
	testcases := map[string]string{
		"wrong-object": "Site:Location,\n  Somewhere;\n",
		"too-short":    "SizingPeriod:DesignDay,\n  OnlyAName;\n",
		"bad-number": strings.Replace(coolingIDF,
			"  33.3,", "  very-hot,", 1),
		"bad-day-type": strings.Replace(coolingIDF,
			"SummerDesignDay", "BeachDay", 1),
		"bad-solar-model": strings.Replace(coolingIDF,
			"ASHRAETau,", "ZhangHuang,", 1),
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			_, err := designday.FromIDF(tc, chicago)
			assert.Error(t, err)
		})
	}
}

func TestIDFRoundTrip(t *testing.T) {
	t.Parallel()
	for _, idf := range []string{coolingIDF, heatingIDF} {
		orig, err := designday.FromIDF(idf, chicago)
		require.NoError(t, err)
		back, err := designday.FromIDF(orig.ToIDF(), chicago)
		require.NoError(t, err)

		assert.Equal(t, orig.Name, back.Name)
		assert.Equal(t, orig.DayType, back.DayType)
		assert.Equal(t, orig.DryBulb, back.DryBulb)
		assert.Equal(t, orig.Humidity, back.Humidity)
		assert.Equal(t, orig.Wind, back.Wind)
		assert.Equal(t, orig.Sky, back.Sky)
	}
}

func TestHourlyDryBulb(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	dryBulb, err := dd.HourlyDryBulb()
	require.NoError(t, err)
	require.Equal(t, 24, dryBulb.Len())

	// the profile peaks mid-afternoon and bottoms out before dawn
	assert.Equal(t, 33.3, dryBulb.Max())
	assert.InDelta(t, 33.3-10.5, dryBulb.Min(), 1e-9)
	assert.Equal(t, 33.3, dryBulb.Values[14])
	assert.InDelta(t, 22.8, dryBulb.Values[5], 1e-9)
}

func TestHourlyDewPointClamped(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	dryBulb, err := dd.HourlyDryBulb()
	require.NoError(t, err)
	dewPoint, err := dd.HourlyDewPoint()
	require.NoError(t, err)

	for i := range dewPoint.Values {
		assert.LessOrEqual(t, dewPoint.Values[i], dryBulb.Values[i]+1e-9)
	}
	// dew point holds constant at the hottest hour
	assert.Less(t, dewPoint.Values[14], 23.7)
	assert.Greater(t, dewPoint.Values[14], 15.0)
}

func TestHourlyRelativeHumidity(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	relHumid, err := dd.HourlyRelativeHumidity()
	require.NoError(t, err)
	for _, rh := range relHumid.Values {
		assert.Greater(t, rh, 0.0)
		assert.LessOrEqual(t, rh, 100.0)
	}
	// humidity is lowest at the hottest hour
	assert.Equal(t, relHumid.Min(), relHumid.Values[14])
}

func TestHourlySolarRadiation(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	dirNorm, difHoriz, globHoriz, err := dd.HourlySolarRadiation()
	require.NoError(t, err)

	// dark at local midnight, bright at local noon
	assert.Zero(t, dirNorm.Values[0])
	assert.Greater(t, dirNorm.Values[12], 500.0)
	assert.Greater(t, difHoriz.Values[12], 50.0)
	assert.Greater(t, globHoriz.Values[12], dirNorm.Values[12]*0.5)
}

func TestHourlyConstantConditions(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	pressure, err := dd.HourlyBarometricPressure()
	require.NoError(t, err)
	windSpeed, err := dd.HourlyWindSpeed()
	require.NoError(t, err)
	for i := 0; i < 24; i++ {
		assert.Equal(t, 98934.0, pressure.Values[i])
		assert.Equal(t, 5.2, windSpeed.Values[i])
	}
}

func TestHourlyHorizontalInfrared(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	horizIR, err := dd.HourlyHorizontalInfrared()
	require.NoError(t, err)
	for _, ir := range horizIR.Values {
		assert.Greater(t, ir, 200.0)
		assert.Less(t, ir, 600.0)
	}
}

func TestAnalysisPeriod(t *testing.T) {
	t.Parallel()
	dd, err := designday.FromIDF(coolingIDF, chicago)
	require.NoError(t, err)

	period := dd.AnalysisPeriod()
	assert.Equal(t, 7, period.StMonth)
	assert.Equal(t, 21, period.StDay)
	assert.Equal(t, 7, period.EndMonth)
	assert.Equal(t, 21, period.EndDay)
	assert.Equal(t, 24, period.Len())

	datetimes := dd.HourlyDateTimes()
	require.Len(t, datetimes, 24)
	assert.Equal(t, dtime.MustDateTime(7, 21, 0, 0), datetimes[0])
	assert.Equal(t, dtime.MustDateTime(7, 21, 23, 0), datetimes[23])
}

func TestNewRejectsBadDayType(t *testing.T) {
	t.Parallel()
	sky := &designday.ASHRAEClearSky{Date: dtime.MustDate(7, 21), Clearness: 1}
	_, err := designday.New("test", "LaundryDay", chicago,
		designday.DryBulbCondition{DryBulbMax: 30},
		designday.HumidityCondition{Type: designday.Wetbulb, Value: 20},
		designday.WindCondition{WindSpeed: 3}, sky)
	assert.Error(t, err)
}
