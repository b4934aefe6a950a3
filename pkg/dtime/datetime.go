// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dtime deals with dates and times on the canonical weather year.
//
// Weather data formats such as EPW describe a year that is not any year in
// particular: 8760 hours (8784 on a leap year) identified only by month, day,
// hour and minute.  The types here index into that year, with conversions
// between calendar form and the flat hour-of-year (HOY) / minute-of-year
// (MOY) forms that hourly collections are keyed on.
package dtime

import (
	"fmt"
	"strings"
)

// MinutesPerYear is the number of minutes in a common weather year.
const MinutesPerYear = 525600

// MinutesPerLeapYear is the number of minutes in a leap weather year.
const MinutesPerLeapYear = 527040

// HoursPerYear is the number of hours in a common weather year.
const HoursPerYear = 8760

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DaysInMonth returns the number of days in a month of the weather year.
func DaysInMonth(month int, leapYear bool) int {
	if month == 2 && leapYear {
		return 29
	}
	return daysPerMonth[month-1]
}

// Date is a day of the weather year.
type Date struct {
	Month    int  `json:"month"`
	Day      int  `json:"day"`
	LeapYear bool `json:"leap_year,omitempty"`
}

// NewDate validates the month and day and returns a Date.
func NewDate(month, day int, leapYear bool) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if day < 1 || day > DaysInMonth(month, leapYear) {
		return Date{}, fmt.Errorf("day must be between 1 and %d for month %d, got %d",
			DaysInMonth(month, leapYear), month, day)
	}
	return Date{Month: month, Day: day, LeapYear: leapYear}, nil
}

// MustDate is like NewDate but panics on invalid input.  For use with
// constants and tests.
func MustDate(month, day int) Date {
	d, err := NewDate(month, day, false)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromDOY converts a day of the year (1-365, or 1-366 on a leap year)
// to a Date.
func DateFromDOY(doy int, leapYear bool) (Date, error) {
	if doy < 1 {
		return Date{}, fmt.Errorf("day of year must be positive, got %d", doy)
	}
	rem := doy
	for month := 1; month <= 12; month++ {
		n := DaysInMonth(month, leapYear)
		if rem <= n {
			return Date{Month: month, Day: rem, LeapYear: leapYear}, nil
		}
		rem -= n
	}
	return Date{}, fmt.Errorf("day of year must be at most %d, got %d",
		daysInYear(leapYear), doy)
}

func daysInYear(leapYear bool) int {
	if leapYear {
		return 366
	}
	return 365
}

// DOY returns the day of the year, starting at 1 for January 1st.
func (d Date) DOY() int {
	doy := d.Day
	for month := 1; month < d.Month; month++ {
		doy += DaysInMonth(month, d.LeapYear)
	}
	return doy
}

// String formats the date as "21 Jun".
func (d Date) String() string {
	return fmt.Sprintf("%d %s", d.Day, monthNames[d.Month-1])
}

// DateTime is a moment of the weather year with minute precision.
type DateTime struct {
	Date
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewDateTime validates all of its fields and returns a DateTime.
func NewDateTime(month, day, hour, minute int, leapYear bool) (DateTime, error) {
	date, err := NewDate(month, day, leapYear)
	if err != nil {
		return DateTime{}, err
	}
	if hour < 0 || hour > 23 {
		return DateTime{}, fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return DateTime{}, fmt.Errorf("minute must be between 0 and 59, got %d", minute)
	}
	return DateTime{Date: date, Hour: hour, Minute: minute}, nil
}

// MustDateTime is like NewDateTime but panics on invalid input.
func MustDateTime(month, day, hour, minute int) DateTime {
	dt, err := NewDateTime(month, day, hour, minute, false)
	if err != nil {
		panic(err)
	}
	return dt
}

// FromMOY converts a minute of the year (0 <= moy < 525600, or 527040 on a
// leap year) to a DateTime.
func FromMOY(moy int, leapYear bool) (DateTime, error) {
	if moy < 0 || moy >= minutesInYear(leapYear) {
		return DateTime{}, fmt.Errorf(
			"minute of year must be between 0 and %d, got %d",
			minutesInYear(leapYear)-1, moy)
	}
	date, err := DateFromDOY(moy/1440+1, leapYear)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Date:   date,
		Hour:   (moy / 60) % 24,
		Minute: moy % 60,
	}, nil
}

// FromHOY converts an hour of the year to a DateTime.  Fractional hours are
// rounded to the nearest minute.
func FromHOY(hoy float64, leapYear bool) (DateTime, error) {
	return FromMOY(int(hoy*60+0.5), leapYear)
}

func minutesInYear(leapYear bool) int {
	if leapYear {
		return MinutesPerLeapYear
	}
	return MinutesPerYear
}

// Parse reads a DateTime from its string form, "21 Jun 12:00".
func Parse(str string) (DateTime, error) {
	var (
		day, hour, minute int
		monthName         string
	)
	if _, err := fmt.Sscanf(strings.TrimSpace(str), "%d %s %d:%d",
		&day, &monthName, &hour, &minute); err != nil {
		return DateTime{}, fmt.Errorf("parse datetime %q: %w", str, err)
	}
	month := 0
	for i, name := range monthNames {
		if strings.EqualFold(name, monthName) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return DateTime{}, fmt.Errorf("parse datetime %q: unknown month %q", str, monthName)
	}
	dt, err := NewDateTime(month, day, hour, minute, false)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse datetime %q: %w", str, err)
	}
	return dt, nil
}

// DOY returns the day of the year, starting at 1 for January 1st.
func (dt DateTime) DOY() int { return dt.Date.DOY() }

// MOY returns the minute of the year, starting at 0 for midnight January 1st.
func (dt DateTime) MOY() int {
	return (dt.DOY()-1)*1440 + dt.Hour*60 + dt.Minute
}

// HOY returns the hour of the year as a float, with minutes as the
// fractional part (e.g. 6.25 for 6:15 on January 1st).
func (dt DateTime) HOY() float64 {
	return float64(dt.DOY()-1)*24 + dt.FloatHour()
}

// IntHOY returns the hour of the year ignoring minutes.
func (dt DateTime) IntHOY() int {
	return (dt.DOY()-1)*24 + dt.Hour
}

// FloatHour returns the hour of the day with minutes as the fractional part.
func (dt DateTime) FloatHour() float64 {
	return float64(dt.Hour) + float64(dt.Minute)/60
}

// AddMinutes returns a new DateTime the given number of minutes later,
// wrapping around the end of the year.  Negative values go backward.
func (dt DateTime) AddMinutes(minutes int) DateTime {
	moy := (dt.MOY() + minutes) % minutesInYear(dt.LeapYear)
	if moy < 0 {
		moy += minutesInYear(dt.LeapYear)
	}
	out, _ := FromMOY(moy, dt.LeapYear)
	return out
}

// AddHours returns a new DateTime the given number of hours later, wrapping
// around the end of the year.  Fractional hours are rounded to the minute.
func (dt DateTime) AddHours(hours float64) DateTime {
	return dt.AddMinutes(int(hours * 60))
}

// String formats the datetime as "21 Jun 12:00".
func (dt DateTime) String() string {
	return fmt.Sprintf("%d %s %02d:%02d",
		dt.Day, monthNames[dt.Month-1], dt.Hour, dt.Minute)
}

// HourAndMinute splits a float hour (e.g. 6.25) into integer hour and minute
// parts, carrying rounded-up minutes into the hour.
func HourAndMinute(floatHour float64) (hour, minute int) {
	hour = int(floatHour)
	minute = int((floatHour-float64(hour))*60 + 0.5)
	if minute == 60 {
		return hour + 1, 0
	}
	return hour, minute
}
