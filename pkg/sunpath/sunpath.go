// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sunpath computes solar positions for a location on the weather
// year, using the NOAA solar calculator's geometry.
package sunpath

import (
	"fmt"
	"math"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
)

// Sunpath computes Sun positions for a fixed observer.
type Sunpath struct {
	// Latitude is in degrees, -90 (South Pole) to 90 (North Pole).
	Latitude float64
	// Longitude is in degrees, -180 (West) to 180 (East).
	Longitude float64
	// TimeZone is in hours offset from UTC following the EPW convention.
	// A non-integer value can be used to model location-exact solar time.
	TimeZone float64
	// NorthAngle rotates the output azimuths counterclockwise, for sites
	// where project North differs from true North.  Degrees.
	NorthAngle float64
	// LeapYear selects the 8784-hour year.
	LeapYear bool
}

// New validates the coordinates and returns a Sunpath.
func New(latitude, longitude, timeZone float64) (*Sunpath, error) {
	loc := location.Location{Latitude: latitude, Longitude: longitude, TimeZone: timeZone}
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("sunpath: %w", err)
	}
	return &Sunpath{Latitude: latitude, Longitude: longitude, TimeZone: timeZone}, nil
}

// FromLocation returns a Sunpath for a Location.
func FromLocation(loc location.Location) *Sunpath {
	return &Sunpath{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		TimeZone:  loc.TimeZone,
	}
}

// Sun is a solar position at one moment.
type Sun struct {
	DateTime dtime.DateTime
	// Altitude is in degrees above the horizon; negative below it.
	Altitude float64
	// Azimuth is in degrees clockwise from North (North=0, East=90).
	Azimuth     float64
	IsSolarTime bool
}

// IsDuringDay reports whether any part of the solar disk is above the
// horizon (the disk subtends 0.5334 degrees).
func (s Sun) IsDuringDay() bool {
	return s.Altitude > -0.5334
}

// Vector returns the unit direction of the sun's rays, X East, Y North,
// Z up.  It points from the sun toward the ground.
func (s Sun) Vector() (x, y, z float64) {
	altRad := s.Altitude * math.Pi / 180
	azRad := s.Azimuth * math.Pi / 180
	return -math.Sin(azRad) * math.Cos(altRad),
		-math.Cos(azRad) * math.Cos(altRad),
		-math.Sin(altRad)
}

// CalculateSun returns the solar position for a month, day and float hour
// (e.g. 12.5 for half past noon).
func (sp *Sunpath) CalculateSun(month, day int, hour float64) (Sun, error) {
	h, m := dtime.HourAndMinute(hour)
	dt, err := dtime.NewDateTime(month, day, h, m, sp.LeapYear)
	if err != nil {
		return Sun{}, err
	}
	return sp.CalculateSunFromDateTime(dt, false), nil
}

// CalculateSunFromHOY returns the solar position for an hour of the year.
func (sp *Sunpath) CalculateSunFromHOY(hoy float64) (Sun, error) {
	dt, err := dtime.FromHOY(hoy, sp.LeapYear)
	if err != nil {
		return Sun{}, err
	}
	return sp.CalculateSunFromDateTime(dt, false), nil
}

// CalculateSunFromDateTime returns the solar position at a datetime.  When
// isSolarTime is set the datetime's hour is taken to already be in solar
// time rather than zone standard time.
func (sp *Sunpath) CalculateSunFromDateTime(dt dtime.DateTime, isSolarTime bool) Sun {
	solDec, eqOfTime := sp.solarGeometry(dt)

	solTime := sp.solarTime(dt.FloatHour(), eqOfTime, isSolarTime) * 60

	// degrees between solar noon and the current time
	var hourAngle float64
	if solTime < 0 {
		hourAngle = solTime/4 + 180
	} else {
		hourAngle = solTime/4 - 180
	}

	latRad := sp.latRad()
	zenith := math.Acos(math.Sin(latRad)*math.Sin(solDec) +
		math.Cos(latRad)*math.Cos(solDec)*math.Cos(hourAngle*math.Pi/180))
	altitude := 90 - zenith*180/math.Pi
	altitude += refractionCorrection(altitude)

	azInit := (math.Sin(latRad)*math.Cos(zenith) - math.Sin(solDec)) /
		(math.Cos(latRad) * math.Sin(zenith))
	if math.IsNaN(azInit) {
		azInit = 2 // force the solar-noon fallback
	}
	var azimuth float64
	switch {
	case azInit > 1 || azInit < -1:
		// perfect solar noon puts acos out of domain
		azimuth = 180
	case hourAngle > 0:
		azimuth = math.Mod(math.Acos(azInit)*180/math.Pi+180, 360)
	default:
		azimuth = math.Mod(540-math.Acos(azInit)*180/math.Pi, 360)
	}
	azimuth = math.Mod(azimuth+sp.NorthAngle+360, 360)

	return Sun{DateTime: dt, Altitude: altitude, Azimuth: azimuth, IsSolarTime: isSolarTime}
}

// latRad returns the latitude in radians, nudged off the exact poles to
// keep the zenith and azimuth equations in domain.
func (sp *Sunpath) latRad() float64 {
	lat := sp.Latitude * math.Pi / 180
	if lat >= math.Pi/2 {
		lat = math.Pi/2 - 1e-9
	} else if lat <= -math.Pi/2 {
		lat = -math.Pi/2 + 1e-9
	}
	return lat
}

// refractionCorrection returns the approximate atmospheric refraction in
// degrees to add to a geometric altitude.
func refractionCorrection(altitude float64) float64 {
	var arcSeconds float64
	switch {
	case altitude > 85:
		arcSeconds = 0
	case altitude > 5:
		tanAlt := math.Tan(altitude * math.Pi / 180)
		arcSeconds = 58.1/tanAlt - 0.07/math.Pow(tanAlt, 3) + 0.000086/math.Pow(tanAlt, 5)
	case altitude > -0.575:
		arcSeconds = 1735 + altitude*
			(-518.2+altitude*(103.4+altitude*(-12.79+altitude*0.711)))
	default:
		arcSeconds = -20.772 / math.Tan(altitude*math.Pi/180)
	}
	return arcSeconds / 3600
}

// SunriseSunset holds the key moments of one day.  Sunrise and Sunset are
// nil when the sun never crosses the horizon (polar day or night).
type SunriseSunset struct {
	Sunrise *dtime.DateTime
	Noon    dtime.DateTime
	Sunset  *dtime.DateTime
}

// CalculateSunriseSunset returns sunrise, solar noon and sunset for a day.
//
// depression is the angle in degrees below the horizon at which the sun is
// still considered up: 0.5334 (the solar diameter) gives actual
// sunrise/sunset, 0.833 the apparent ones accounting for refraction, and 6,
// 12 or 18 the civil, nautical and astronomical twilights.
func (sp *Sunpath) CalculateSunriseSunset(month, day int, depression float64) (SunriseSunset, error) {
	dt, err := dtime.NewDateTime(month, day, 12, 0, sp.LeapYear)
	if err != nil {
		return SunriseSunset{}, err
	}
	return sp.calculateSunriseSunsetFromDateTime(dt, depression), nil
}

func (sp *Sunpath) calculateSunriseSunsetFromDateTime(dt dtime.DateTime, depression float64) SunriseSunset {
	solDec, eqOfTime := sp.solarGeometry(dt)

	noonFrac := (720 - 4*sp.Longitude - eqOfTime + sp.TimeZone*60) / 1440

	hourAngle, ok := sunriseHourAngle(sp.latRad(), solDec, depression*math.Pi/180)
	if !ok {
		// no sunrise or sunset today (polar day or night)
		h, m := dtime.HourAndMinute(wrapDayHour(24 * noonFrac))
		noon, _ := dtime.NewDateTime(dt.Month, dt.Day, h, m, sp.LeapYear)
		return SunriseSunset{Noon: noon}
	}

	mk := func(dayFrac float64) *dtime.DateTime {
		h, m := dtime.HourAndMinute(wrapDayHour(24 * dayFrac))
		out, err := dtime.NewDateTime(dt.Month, dt.Day, h, m, sp.LeapYear)
		if err != nil {
			return nil
		}
		return &out
	}

	sunrise := mk(noonFrac - hourAngle*4/1440)
	noon := mk(noonFrac)
	sunset := mk(noonFrac + hourAngle*4/1440)
	out := SunriseSunset{Sunrise: sunrise, Sunset: sunset}
	if noon != nil {
		out.Noon = *noon
	}
	return out
}

// wrapDayHour folds an hour-of-day into [0, 24).
func wrapDayHour(hour float64) float64 {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}
	return hour
}

// sunriseHourAngle returns the hour angle of sunrise in degrees, or false
// when the sun never crosses the depression angle on this day.
func sunriseHourAngle(latRad, solDec, depression float64) (float64, bool) {
	arg := math.Cos(math.Pi/2+depression)/(math.Cos(latRad)*math.Cos(solDec)) -
		math.Tan(latRad)*math.Tan(solDec)
	if arg < -1 || arg > 1 {
		return 0, false
	}
	return math.Acos(arg) * 180 / math.Pi, true
}

// solarGeometry returns the solar declination in radians and the equation
// of time in minutes for a datetime, per the NOAA solar calculator.
func (sp *Sunpath) solarGeometry(dt dtime.DateTime) (solDec, eqOfTime float64) {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	julianDay := float64(daysFrom1900(dt)) + 2415018.5 +
		math.Round(float64(dt.Minute+dt.Hour*60)/1440*100)/100 -
		sp.TimeZone/24
	julianCentury := (julianDay - 2451545) / 36525

	geomMeanLongSun := math.Mod(280.46646+julianCentury*
		(36000.76983+julianCentury*0.0003032), 360)
	geomMeanAnomSun := 357.52911 + julianCentury*
		(35999.05029-0.0001537*julianCentury)
	eccentOrbit := 0.016708634 - julianCentury*
		(0.000042037+0.0000001267*julianCentury)

	sunEqOfCtr := math.Sin(rad(geomMeanAnomSun))*
		(1.914602-julianCentury*(0.004817+0.000014*julianCentury)) +
		math.Sin(rad(2*geomMeanAnomSun))*(0.019993-0.000101*julianCentury) +
		math.Sin(rad(3*geomMeanAnomSun))*0.000289

	sunTrueLong := geomMeanLongSun + sunEqOfCtr
	sunAppLong := sunTrueLong - 0.00569 -
		0.00478*math.Sin(rad(125.04-1934.136*julianCentury))

	meanObliqEcliptic := 23 + (26+(21.448-julianCentury*
		(46.815+julianCentury*(0.00059-julianCentury*0.001813)))/60)/60
	obliqueCorr := meanObliqEcliptic +
		0.00256*math.Cos(rad(125.04-1934.136*julianCentury))

	solDec = math.Asin(math.Sin(rad(obliqueCorr)) * math.Sin(rad(sunAppLong)))

	varY := math.Tan(rad(obliqueCorr/2)) * math.Tan(rad(obliqueCorr/2))
	eqOfTime = 4 * (180 / math.Pi) *
		(varY*math.Sin(2*rad(geomMeanLongSun)) -
			2*eccentOrbit*math.Sin(rad(geomMeanAnomSun)) +
			4*eccentOrbit*varY*math.Sin(rad(geomMeanAnomSun))*
				math.Cos(2*rad(geomMeanLongSun)) -
			0.5*varY*varY*math.Sin(4*rad(geomMeanLongSun)) -
			1.25*eccentOrbit*eccentOrbit*math.Sin(2*rad(geomMeanAnomSun)))

	return solDec, eqOfTime
}

// solarTime converts a zone-standard hour of the day to solar time in hours.
func (sp *Sunpath) solarTime(hour, eqOfTime float64, isSolarTime bool) float64 {
	if isSolarTime {
		return hour
	}
	return math.Mod(hour*60+eqOfTime+4*sp.Longitude-60*sp.TimeZone+1440, 1440) / 60
}

// daysFrom1900 counts days from 1900-01-01 to the datetime's date on the
// reference weather year (2017, or 2016 when leap).
func daysFrom1900(dt dtime.DateTime) int {
	days := 42734 // days in 1900..2016
	if dt.LeapYear {
		days = 42368 // days in 1900..2015
	}
	return days + dt.DOY() + 1
}
