// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package epw

import (
	"fmt"
	"math"

	"github.com/ladybug-tools/ladybug-go/pkg/designday"
	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/psychro"
	"github.com/ladybug-tools/ladybug-go/pkg/series"
)

// ApproximateDesignDay derives a design day from percentile analysis of the
// annual data.  This gives a reasonable approximation when no official
// design day record (DDY) exists for the station.
//
// dayType is "WinterDesignDay" or "SummerDesignDay".  percentile is the
// fraction of the year allowed to exceed the design condition: 0.4 gives a
// 99.6% heating design day or a 0.4% cooling one.  Zero means 0.4.
func (e *EPW) ApproximateDesignDay(dayType string, percentile float64) (*designday.DesignDay, error) {
	if percentile == 0 {
		percentile = 0.4
	}
	if percentile < 0 || percentile >= 50 {
		return nil, fmt.Errorf("design day percentile must be between 0 and 50, got %g", percentile)
	}

	dryBulb, err := e.DryBulbTemperature()
	if err != nil {
		return nil, err
	}
	pressureColl, err := e.AtmosphericStationPressure()
	if err != nil {
		return nil, err
	}
	windSpeed, err := e.WindSpeed()
	if err != nil {
		return nil, err
	}
	windDir, err := e.WindDirection()
	if err != nil {
		return nil, err
	}

	pressure := math.Round(pressureColl.Average())
	if missing, _ := FieldByNumber(9); pressure == missing.Missing {
		pressure = psychro.StandardPressure
	}

	switch dayType {
	case "WinterDesignDay":
		return e.heatingDesignDay(dryBulb, windSpeed, windDir, pressure, percentile)
	case "SummerDesignDay":
		return e.coolingDesignDay(dryBulb, windSpeed, windDir, pressure, percentile)
	}
	return nil, fmt.Errorf(`day type must be "WinterDesignDay" or "SummerDesignDay", got %q`, dayType)
}

func (e *EPW) heatingDesignDay(dryBulb, windSpeed, windDir *series.HourlyCollection,
	pressure, percentile float64) (*designday.DesignDay, error) {
	dbTemp, err := dryBulb.Percentile(percentile)
	if err != nil {
		return nil, err
	}
	month := extremeMonth(dryBulb, false)

	dbCond, err := designday.NewDryBulbCondition(dbTemp, 0)
	if err != nil {
		return nil, err
	}
	// cold design conditions are taken as saturated
	huCond, err := designday.NewHumidityCondition(designday.Wetbulb, dbTemp, pressure)
	if err != nil {
		return nil, err
	}
	wind, err := monthlyWindCondition(windSpeed, windDir, month)
	if err != nil {
		return nil, err
	}
	sky := &designday.ASHRAEClearSky{Date: dtime.MustDate(month, 21), Clearness: 0}

	name := fmt.Sprintf("%s Heating Design Day %s%% Condns DB",
		e.Location.City, trimFloat(100-percentile))
	return designday.New(name, "WinterDesignDay", e.Location, dbCond, huCond, wind, sky)
}

func (e *EPW) coolingDesignDay(dryBulb, windSpeed, windDir *series.HourlyCollection,
	pressure, percentile float64) (*designday.DesignDay, error) {
	dbMax, err := dryBulb.Percentile(100 - percentile)
	if err != nil {
		return nil, err
	}
	month := extremeMonth(dryBulb, true)
	dbRange := averageDailyRange(dryBulb, month)

	wetBulb, err := e.wetBulbPercentile(100-percentile, pressure)
	if err != nil {
		return nil, err
	}
	// the coincident wet bulb can never exceed the dry bulb
	if wetBulb > dbMax {
		wetBulb = dbMax
	}

	dbCond, err := designday.NewDryBulbCondition(dbMax, dbRange)
	if err != nil {
		return nil, err
	}
	huCond, err := designday.NewHumidityCondition(designday.Wetbulb, wetBulb, pressure)
	if err != nil {
		return nil, err
	}
	wind, err := monthlyWindCondition(windSpeed, windDir, month)
	if err != nil {
		return nil, err
	}
	sky := &designday.ASHRAEClearSky{Date: dtime.MustDate(month, 21), Clearness: 1}

	name := fmt.Sprintf("%s Cooling Design Day %s%% Condns DB=>MWB",
		e.Location.City, trimFloat(percentile))
	return designday.New(name, "SummerDesignDay", e.Location, dbCond, huCond, wind, sky)
}

// wetBulbPercentile computes the given percentile of the annual wet bulb
// temperature, derived psychrometrically from dry bulb and relative
// humidity.
func (e *EPW) wetBulbPercentile(percentile, pressure float64) (float64, error) {
	dryBulb, err := e.DryBulbTemperature()
	if err != nil {
		return 0, err
	}
	relHumid, err := e.RelativeHumidity()
	if err != nil {
		return 0, err
	}
	values := make([]float64, len(dryBulb.Values))
	for i := range values {
		values[i] = psychro.WetBulb(dryBulb.Values[i], relHumid.Values[i], pressure)
	}
	header := dryBulb.Header
	header.DataType = "Wet Bulb Temperature"
	wetBulb, err := series.NewHourlyCollection(header, values)
	if err != nil {
		return 0, err
	}
	return wetBulb.Percentile(percentile)
}

// extremeMonth returns the month with the highest (or lowest) average value.
func extremeMonth(coll *series.HourlyCollection, hottest bool) int {
	byMonth := coll.GroupByMonth()
	extreme := 0.0
	month := 1
	for m := 1; m <= 12; m++ {
		values := byMonth[m]
		if len(values) == 0 {
			continue
		}
		var total float64
		for _, v := range values {
			total += v
		}
		avg := total / float64(len(values))
		if m == 1 || (hottest && avg > extreme) || (!hottest && avg < extreme) {
			extreme = avg
			month = m
		}
	}
	return month
}

// averageDailyRange returns the mean difference between the daily maximum
// and minimum within a month.
func averageDailyRange(coll *series.HourlyCollection, month int) float64 {
	byDay := map[int][]float64{}
	for i, dt := range coll.DateTimes() {
		if dt.Month == month {
			byDay[dt.Day] = append(byDay[dt.Day], coll.Values[i])
		}
	}
	if len(byDay) == 0 {
		return 0
	}
	var total float64
	for _, values := range byDay {
		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		total += max - min
	}
	return total / float64(len(byDay))
}

// monthlyWindCondition averages the wind speed and finds the prevailing
// direction over one month.
func monthlyWindCondition(windSpeed, windDir *series.HourlyCollection, month int) (designday.WindCondition, error) {
	var speedTotal float64
	var count int
	sectors := make([]int, 8)
	for i, dt := range windSpeed.DateTimes() {
		if dt.Month != month {
			continue
		}
		speedTotal += windSpeed.Values[i]
		count++
		sector := int(math.Mod(windDir.Values[i]+22.5, 360) / 45)
		if sector >= 0 && sector < 8 {
			sectors[sector]++
		}
	}
	if count == 0 {
		return designday.WindCondition{}, fmt.Errorf("no wind observations in month %d", month)
	}
	prevailing := 0
	for s, n := range sectors {
		if n > sectors[prevailing] {
			prevailing = s
		}
	}
	return designday.NewWindCondition(speedTotal/float64(count), float64(prevailing*45))
}

// trimFloat drops a trailing ".0" so names read "99.6" and "1" rather
// than "1.0".
func trimFloat(val float64) string {
	if val == math.Trunc(val) {
		return fmt.Sprintf("%d", int(val))
	}
	return fmt.Sprintf("%g", val)
}
