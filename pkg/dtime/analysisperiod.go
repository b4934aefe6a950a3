// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package dtime

import (
	"fmt"
)

// validTimesteps maps each accepted number of timesteps per hour to the
// minute interval between them.
var validTimesteps = map[int]int{
	1: 60, 2: 30, 3: 20, 4: 15, 5: 12, 6: 10,
	10: 6, 12: 5, 15: 4, 20: 3, 30: 2, 60: 1,
}

// AnalysisPeriod is a continuous period of the weather year between two days,
// restricted to a range of hours within each day.
//
// A period whose start month/day comes after its end (e.g. Dec 1 to Jun 30)
// is "reversed" and wraps around the end of the year.  A period whose start
// hour comes after its end hour (e.g. 21 to 3) is "overnight" and each day's
// segment spans midnight.
type AnalysisPeriod struct {
	StMonth  int `json:"st_month"`
	StDay    int `json:"st_day"`
	StHour   int `json:"st_hour"`
	EndMonth int `json:"end_month"`
	EndDay   int `json:"end_day"`
	EndHour  int `json:"end_hour"`
	Timestep int `json:"timestep"`
}

// Annual returns the default whole-year hourly analysis period.
func Annual() AnalysisPeriod {
	return AnalysisPeriod{
		StMonth: 1, StDay: 1, StHour: 0,
		EndMonth: 12, EndDay: 31, EndHour: 23,
		Timestep: 1,
	}
}

// NewAnalysisPeriod validates the bounds and returns an AnalysisPeriod.  An
// end day past the end of the end month is clamped to the month's last day.
func NewAnalysisPeriod(stMonth, stDay, stHour, endMonth, endDay, endHour, timestep int) (AnalysisPeriod, error) {
	if _, err := NewDateTime(stMonth, stDay, stHour, 0, false); err != nil {
		return AnalysisPeriod{}, fmt.Errorf("analysis period start: %w", err)
	}
	if endDay > DaysInMonth(endMonth, false) {
		endDay = DaysInMonth(endMonth, false)
	}
	if _, err := NewDateTime(endMonth, endDay, endHour, 0, false); err != nil {
		return AnalysisPeriod{}, fmt.Errorf("analysis period end: %w", err)
	}
	if _, ok := validTimesteps[timestep]; !ok {
		return AnalysisPeriod{}, fmt.Errorf(
			"invalid timestep %d: valid values are 1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30 and 60",
			timestep)
	}
	return AnalysisPeriod{
		StMonth: stMonth, StDay: stDay, StHour: stHour,
		EndMonth: endMonth, EndDay: endDay, EndHour: endHour,
		Timestep: timestep,
	}, nil
}

// ParseAnalysisPeriod reads an AnalysisPeriod from its string form,
// "1/1 to 12/31 between 0 and 23 @1".
func ParseAnalysisPeriod(str string) (AnalysisPeriod, error) {
	var stMonth, stDay, stHour, endMonth, endDay, endHour, timestep int
	_, err := fmt.Sscanf(str, "%d/%d to %d/%d between %d and %d @%d",
		&stMonth, &stDay, &endMonth, &endDay, &stHour, &endHour, &timestep)
	if err != nil {
		return AnalysisPeriod{}, fmt.Errorf("parse analysis period %q: %w", str, err)
	}
	ap, err := NewAnalysisPeriod(stMonth, stDay, stHour, endMonth, endDay, endHour, timestep)
	if err != nil {
		return AnalysisPeriod{}, fmt.Errorf("parse analysis period %q: %w", str, err)
	}
	return ap, nil
}

// StTime returns the first moment of the period.
func (ap AnalysisPeriod) StTime() DateTime {
	return DateTime{Date: Date{Month: ap.StMonth, Day: ap.StDay}, Hour: ap.StHour}
}

// EndTime returns the last on-the-hour moment of the period.
func (ap AnalysisPeriod) EndTime() DateTime {
	return DateTime{Date: Date{Month: ap.EndMonth, Day: ap.EndDay}, Hour: ap.EndHour}
}

// Reversed reports whether the period wraps around the end of the year.
func (ap AnalysisPeriod) Reversed() bool {
	return ap.StTime().HOY() > ap.EndTime().HOY()
}

// Overnight reports whether each day's hour range spans midnight.
func (ap AnalysisPeriod) Overnight() bool {
	return ap.StHour > ap.EndHour
}

// IsPossibleHour reports whether an hour of the day can occur in this period.
func (ap AnalysisPeriod) IsPossibleHour(hour int) bool {
	if !ap.Overnight() {
		return ap.StHour <= hour && hour <= ap.EndHour
	}
	return hour >= ap.StHour || hour <= ap.EndHour
}

// MOYs returns the sorted minutes of the year in this period.
func (ap AnalysisPeriod) MOYs() []int {
	var moys []int
	if !ap.Reversed() {
		moys = ap.appendMOYs(moys, ap.StTime().MOY(), ap.EndTime().MOY())
	} else {
		moys = ap.appendMOYs(moys, ap.StTime().MOY(), MinutesPerYear-60)
		moys = ap.appendMOYs(moys, 0, ap.EndTime().MOY())
	}
	return moys
}

func (ap AnalysisPeriod) appendMOYs(moys []int, start, end int) []int {
	// every included hour contributes Timestep stamps
	step := validTimesteps[ap.Timestep]
	for hourMOY := start; hourMOY <= end; hourMOY += 60 {
		if !ap.IsPossibleHour((hourMOY / 60) % 24) {
			continue
		}
		for sub := 0; sub < 60; sub += step {
			moys = append(moys, hourMOY+sub)
		}
	}
	return moys
}

// HOYs returns the sorted hours of the year in this period as floats.
func (ap AnalysisPeriod) HOYs() []float64 {
	moys := ap.MOYs()
	hoys := make([]float64, len(moys))
	for i, moy := range moys {
		hoys[i] = float64(moy) / 60
	}
	return hoys
}

// DateTimes returns the sorted datetimes in this period.
func (ap AnalysisPeriod) DateTimes() []DateTime {
	moys := ap.MOYs()
	dts := make([]DateTime, len(moys))
	for i, moy := range moys {
		dts[i], _ = FromMOY(moy, false)
	}
	return dts
}

// Len returns the number of timestamps in this period without materializing
// them.
func (ap AnalysisPeriod) Len() int {
	return len(ap.MOYs())
}

// IsAnnual reports whether this period covers every hour of the year.
func (ap AnalysisPeriod) IsAnnual() bool {
	return ap.Len()/ap.Timestep == HoursPerYear
}

// IsTimeIncluded reports whether the datetime falls on one of this period's
// timestamps.  Note that the hour range applies to every day of the period:
// "2/20 to 2/22 between 9 and 17" means hours 9-17 on each of the three days.
func (ap AnalysisPeriod) IsTimeIncluded(dt DateTime) bool {
	moy := dt.MOY()
	for _, m := range ap.MOYs() {
		if m == moy {
			return true
		}
	}
	return false
}

// String formats the period as "1/1 to 12/31 between 0 and 23 @1".
func (ap AnalysisPeriod) String() string {
	return fmt.Sprintf("%d/%d to %d/%d between %d and %d @%d",
		ap.StMonth, ap.StDay, ap.EndMonth, ap.EndDay,
		ap.StHour, ap.EndHour, ap.Timestep)
}
