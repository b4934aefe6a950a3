// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package designday models extreme days used to size heating and cooling
// systems, matching the semantics of the EnergyPlus SizingPeriod:DesignDay
// object.
package designday

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
	"github.com/ladybug-tools/ladybug-go/pkg/psychro"
	"github.com/ladybug-tools/ladybug-go/pkg/series"
	"github.com/ladybug-tools/ladybug-go/pkg/skymodel"
)

// DayTypes are the day classifications EnergyPlus accepts for a design day.
var DayTypes = []string{
	"SummerDesignDay", "WinterDesignDay", "Sunday", "Monday", "Tuesday",
	"Wednesday", "Thursday", "Friday", "Holiday", "CustomDay1", "CustomDay2",
}

// DesignDay is one set of extreme-but-likely weather conditions.
type DesignDay struct {
	Name     string
	DayType  string
	Location location.Location
	DryBulb  DryBulbCondition
	Humidity HumidityCondition
	Wind     WindCondition
	Sky      SkyCondition
}

// New validates the day type and assembles a DesignDay.
func New(name, dayType string, loc location.Location, dryBulb DryBulbCondition,
	humidity HumidityCondition, wind WindCondition, sky SkyCondition) (*DesignDay, error) {
	valid := false
	for _, dt := range DayTypes {
		if dayType == dt {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("day type %q is not one of %s",
			dayType, strings.Join(DayTypes, ", "))
	}
	return &DesignDay{
		Name:     name,
		DayType:  dayType,
		Location: loc,
		DryBulb:  dryBulb,
		Humidity: humidity,
		Wind:     wind,
		Sky:      sky,
	}, nil
}

// AnalysisPeriod returns the single day covered by the design day.
func (d *DesignDay) AnalysisPeriod() dtime.AnalysisPeriod {
	date := d.Sky.SkyDate()
	period, _ := dtime.NewAnalysisPeriod(
		date.Month, date.Day, 0, date.Month, date.Day, 23, 1)
	return period
}

// HourlyDateTimes returns the 24 datetimes of the design day.
func (d *DesignDay) HourlyDateTimes() []dtime.DateTime {
	date := d.Sky.SkyDate()
	startMOY := (date.DOY() - 1) * 1440
	datetimes := make([]dtime.DateTime, 24)
	for i := range datetimes {
		datetimes[i], _ = dtime.FromMOY(startMOY+i*60, date.LeapYear)
	}
	return datetimes
}

func (d *DesignDay) dailyCollection(dataType, unit string, values []float64) (*series.HourlyCollection, error) {
	return series.NewHourlyCollection(series.Header{
		DataType:       dataType,
		Unit:           unit,
		AnalysisPeriod: d.AnalysisPeriod(),
		Metadata: map[string]string{
			"source":  d.Location.Source,
			"country": d.Location.Country,
			"city":    d.Location.City,
		},
	}, values)
}

// HourlyDryBulb returns the dry bulb temperature in C over the day.
func (d *DesignDay) HourlyDryBulb() (*series.HourlyCollection, error) {
	return d.dailyCollection("Dry Bulb Temperature", "C", d.DryBulb.HourlyValues())
}

// HourlyDewPoint returns the dew point temperature in C over the day.
func (d *DesignDay) HourlyDewPoint() (*series.HourlyCollection, error) {
	values, err := d.Humidity.HourlyDewPointValues(d.DryBulb)
	if err != nil {
		return nil, err
	}
	return d.dailyCollection("Dew Point Temperature", "C", values)
}

// HourlyRelativeHumidity returns the relative humidity in percent over the
// day.
func (d *DesignDay) HourlyRelativeHumidity() (*series.HourlyCollection, error) {
	dewPoints, err := d.Humidity.HourlyDewPointValues(d.DryBulb)
	if err != nil {
		return nil, err
	}
	dryBulbs := d.DryBulb.HourlyValues()
	values := make([]float64, len(dryBulbs))
	for i := range values {
		values[i] = psychro.RelHumidFromDewPoint(dryBulbs[i], dewPoints[i])
	}
	return d.dailyCollection("Relative Humidity", "%", values)
}

// HourlyBarometricPressure returns the pressure in Pa over the day.
func (d *DesignDay) HourlyBarometricPressure() (*series.HourlyCollection, error) {
	return d.dailyCollection("Atmospheric Station Pressure", "Pa", d.Humidity.HourlyPressure())
}

// HourlyWindSpeed returns the wind speed in m/s over the day.
func (d *DesignDay) HourlyWindSpeed() (*series.HourlyCollection, error) {
	return d.dailyCollection("Wind Speed", "m/s", d.Wind.HourlyValues())
}

// HourlyWindDirection returns the wind direction in degrees over the day.
func (d *DesignDay) HourlyWindDirection() (*series.HourlyCollection, error) {
	return d.dailyCollection("Wind Direction", "degrees", d.Wind.HourlyWindDirs())
}

// HourlySolarRadiation returns direct normal, diffuse horizontal and global
// horizontal radiation in Wh/m2 over the day.
func (d *DesignDay) HourlySolarRadiation() (dirNorm, difHoriz, globHoriz *series.HourlyCollection, err error) {
	dir, dif, glob := d.Sky.RadiationValues(d.Location)
	if dirNorm, err = d.dailyCollection("Direct Normal Radiation", "Wh/m2", dir); err != nil {
		return nil, nil, nil, err
	}
	if difHoriz, err = d.dailyCollection("Diffuse Horizontal Radiation", "Wh/m2", dif); err != nil {
		return nil, nil, nil, err
	}
	if globHoriz, err = d.dailyCollection("Global Horizontal Radiation", "Wh/m2", glob); err != nil {
		return nil, nil, nil, err
	}
	return dirNorm, difHoriz, globHoriz, nil
}

// HourlySkyCover returns the sky cover in tenths over the day.
func (d *DesignDay) HourlySkyCover() (*series.HourlyCollection, error) {
	return d.dailyCollection("Total Sky Cover", "tenths", d.Sky.HourlySkyCover())
}

// HourlyHorizontalInfrared returns the horizontal infrared radiation
// intensity in W/m2 over the day.
func (d *DesignDay) HourlyHorizontalInfrared() (*series.HourlyCollection, error) {
	skyCover := d.Sky.HourlySkyCover()
	dryBulbs := d.DryBulb.HourlyValues()
	dewPoints, err := d.Humidity.HourlyDewPointValues(d.DryBulb)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(skyCover))
	for i := range values {
		values[i] = skymodel.HorizontalInfrared(skyCover[i], dryBulbs[i], dewPoints[i])
	}
	return d.dailyCollection("Horizontal Infrared Radiation Intensity", "W/m2", values)
}

func (d *DesignDay) String() string {
	return fmt.Sprintf("Design Day - %s [%s]", d.Name, d.DayType)
}

// idfComments annotate each field of the IDF representation, in field order.
var idfComments = []string{
	"!- Name",
	"!- Month",
	"!- Day of Month",
	"!- Day Type",
	"!- Max Dry-Bulb Temp {C}",
	"!- Daily Dry-Bulb Temp Range {C}",
	"!- Dry-Bulb Temp Range Modifier Type",
	"!- Dry-Bulb Temp Range Modifier Schedule Name",
	"!- Humidity Condition Type",
	"!- Wetbulb/Dewpoint at Max Dry-Bulb {C}",
	"!- Humidity Indicating Day Schedule Name",
	"!- Humidity Ratio at Maximum Dry-Bulb {kgWater/kgDryAir}",
	"!- Enthalpy at Maximum Dry-Bulb {J/kg}",
	"!- Daily Wet-Bulb Temperature Range {deltaC}",
	"!- Barometric Pressure {Pa}",
	"!- Wind Speed {m/s}",
	"!- Wind Direction {Degrees; N=0, S=180}",
	"!- Rain {Yes/No}",
	"!- Snow on ground {Yes/No}",
	"!- Daylight Savings Time Indicator {Yes/No}",
	"!- Solar Model Indicator",
	"!- Beam Solar Day Schedule Name",
	"!- Diffuse Solar Day Schedule Name",
	"!- ASHRAE Clear Sky Beam Optical Depth (taub)",
	"!- ASHRAE Clear Sky Diffuse Optical Depth (taud)",
	"!- Clearness (0.0 to 1.2)",
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatNumber(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// ToIDF renders the design day as an EnergyPlus SizingPeriod:DesignDay
// object.
func (d *DesignDay) ToIDF() string {
	date := d.Sky.SkyDate()
	modifierType := d.DryBulb.ModifierType
	if modifierType == "" {
		modifierType = "DefaultMultipliers"
	}
	values := []string{
		d.Name,
		strconv.Itoa(date.Month),
		strconv.Itoa(date.Day),
		d.DayType,
		formatNumber(d.DryBulb.DryBulbMax),
		formatNumber(d.DryBulb.DryBulbRange),
		modifierType,
		d.DryBulb.ModifierSchedule,
		string(d.Humidity.Type),
		"",
		d.Humidity.Schedule,
		"",
		"",
		d.Humidity.WetBulbRange,
		formatNumber(d.Humidity.pressure()),
		formatNumber(d.Wind.WindSpeed),
		formatNumber(d.Wind.WindDirection),
		yesNo(d.Humidity.Rain),
		yesNo(d.Humidity.SnowOnGround),
		yesNo(d.Sky.IsDaylightSavings()),
		"ASHRAEClearSky",
		"",
		"",
		"",
		"",
		"",
	}

	// the humidity value's slot depends on its type
	switch d.Humidity.Type {
	case Wetbulb, Dewpoint:
		values[9] = formatNumber(d.Humidity.Value)
	case HumidityRatio:
		values[11] = formatNumber(d.Humidity.Value)
	case Enthalpy:
		values[12] = formatNumber(d.Humidity.Value)
	}

	switch sky := d.Sky.(type) {
	case *ASHRAEClearSky:
		values[25] = formatNumber(sky.Clearness)
	case *ASHRAETau:
		if sky.Use2017 {
			values[20] = "ASHRAETau2017"
		} else {
			values[20] = "ASHRAETau"
		}
		values[23] = formatNumber(sky.TauB)
		values[24] = formatNumber(sky.TauD)
		values = values[:len(values)-1] // the Tau model has no clearness
	}

	var b strings.Builder
	b.WriteString("SizingPeriod:DesignDay,\n")
	for i, val := range values {
		sep := ","
		if i == len(values)-1 {
			sep = ";"
		}
		pad := 60 - len(val)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(&b, "  %s%s%s%s\n", val, sep, strings.Repeat(" ", pad), idfComments[i])
	}
	b.WriteString("\n")
	return b.String()
}

var idfCommentRe = regexp.MustCompile(`!.*\n`)

// FromIDF reads a design day from an EnergyPlus SizingPeriod:DesignDay
// string.  The location is used to interpret the sky condition over the
// course of the day.
func FromIDF(idfString string, loc location.Location) (*DesignDay, error) {
	idfString = strings.TrimSpace(idfString)
	if !strings.HasPrefix(idfString, "SizingPeriod:DesignDay") {
		return nil, fmt.Errorf(
			"expected SizingPeriod:DesignDay but received a different object: %.60s", idfString)
	}
	idfString = strings.ReplaceAll(idfString, ";", ",")
	idfString = idfCommentRe.ReplaceAllString(idfString, "")
	rawFields := strings.Split(idfString, ",")
	epFields := make([]string, len(rawFields))
	for i, f := range rawFields {
		epFields[i] = strings.TrimSpace(f)
	}
	if len(epFields) < 18 {
		return nil, fmt.Errorf("SizingPeriod:DesignDay has %d fields, at least 18 are required",
			len(epFields))
	}

	parse := func(i int, name string) (float64, error) {
		val, err := strconv.ParseFloat(epFields[i], 64)
		if err != nil {
			return 0, fmt.Errorf("design day %s: %w", name, err)
		}
		return val, nil
	}

	name := epFields[1]
	dayType := epFields[4]

	dbMax, err := parse(5, "max dry bulb")
	if err != nil {
		return nil, err
	}
	dbRange, err := parse(6, "dry bulb range")
	if err != nil {
		return nil, err
	}
	dryBulb, err := NewDryBulbCondition(dbMax, dbRange)
	if err != nil {
		return nil, err
	}
	dryBulb.ModifierType = epFields[7]
	dryBulb.ModifierSchedule = epFields[8]

	humidityType := HumidityType(epFields[9])
	var humidityValue float64
	switch humidityType {
	case HumidityRatio:
		if humidityValue, err = parse(12, "humidity ratio"); err != nil {
			return nil, err
		}
	case Enthalpy:
		if humidityValue, err = parse(13, "enthalpy"); err != nil {
			return nil, err
		}
	default:
		if epFields[10] != "" {
			if humidityValue, err = parse(10, "humidity value"); err != nil {
				return nil, err
			}
		}
	}
	pressure, err := parse(15, "barometric pressure")
	if err != nil {
		return nil, err
	}
	humidity, err := NewHumidityCondition(humidityType, humidityValue, pressure)
	if err != nil {
		return nil, err
	}
	humidity.Schedule = epFields[11]
	humidity.Rain = len(epFields) > 18 && strings.EqualFold(epFields[18], "yes")
	humidity.SnowOnGround = len(epFields) > 19 && strings.EqualFold(epFields[19], "yes")

	windSpeed, err := parse(16, "wind speed")
	if err != nil {
		return nil, err
	}
	windDir, err := parse(17, "wind direction")
	if err != nil {
		return nil, err
	}
	wind, err := NewWindCondition(windSpeed, windDir)
	if err != nil {
		return nil, err
	}

	month, err := parse(2, "month")
	if err != nil {
		return nil, err
	}
	day, err := parse(3, "day")
	if err != nil {
		return nil, err
	}
	date, err := dtime.NewDate(int(month), int(day), false)
	if err != nil {
		return nil, fmt.Errorf("design day date: %w", err)
	}

	dlSave := len(epFields) > 20 && strings.EqualFold(epFields[20], "yes")
	var sky SkyCondition
	if len(epFields) > 21 {
		switch model := epFields[21]; model {
		case "ASHRAEClearSky":
			clearness := 0.0
			if len(epFields) > 26 && epFields[26] != "" {
				if clearness, err = parse(26, "clearness"); err != nil {
					return nil, err
				}
			}
			sky = &ASHRAEClearSky{Date: date, Clearness: clearness, DaylightSavings: dlSave}
		case "ASHRAETau", "ASHRAETau2017":
			var taub, taud float64
			if len(epFields) > 24 && epFields[24] != "" {
				if taub, err = parse(24, "beam optical depth"); err != nil {
					return nil, err
				}
			}
			if len(epFields) > 25 && epFields[25] != "" {
				if taud, err = parse(25, "diffuse optical depth"); err != nil {
					return nil, err
				}
			}
			sky = &ASHRAETau{
				Date: date, TauB: taub, TauD: taud,
				Use2017:         strings.HasSuffix(model, "2017"),
				DaylightSavings: dlSave,
			}
		default:
			return nil, fmt.Errorf("unsupported solar model %q", model)
		}
	} else {
		sky = &ASHRAEClearSky{Date: date, Clearness: 0, DaylightSavings: dlSave}
	}

	return New(name, dayType, loc, dryBulb, humidity, wind, sky)
}
