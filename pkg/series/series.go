// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package series holds aligned collections of timeseries weather data.
package series

import (
	"fmt"
	"math"
	"sort"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
)

// Header describes what a collection's values measure.
type Header struct {
	// DataType names the quantity, e.g. "Dry Bulb Temperature".
	DataType string `json:"data_type"`
	// Unit is the unit of every value, e.g. "C".
	Unit string `json:"unit"`
	// AnalysisPeriod is the stretch of the year the values are aligned to.
	AnalysisPeriod dtime.AnalysisPeriod `json:"analysis_period"`
	// Metadata carries optional tags such as the source city.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// HourlyCollection is a list of values aligned with the timestamps of an
// analysis period.
type HourlyCollection struct {
	Header Header    `json:"header"`
	Values []float64 `json:"values"`
}

// NewHourlyCollection validates that values line up with the header's
// analysis period.
func NewHourlyCollection(header Header, values []float64) (*HourlyCollection, error) {
	if expected := header.AnalysisPeriod.Len(); len(values) != expected {
		return nil, fmt.Errorf("%d values do not match the %d timestamps of %q",
			len(values), expected, header.AnalysisPeriod)
	}
	return &HourlyCollection{Header: header, Values: values}, nil
}

// DateTimes returns the timestamp for each value.
func (c *HourlyCollection) DateTimes() []dtime.DateTime {
	return c.Header.AnalysisPeriod.DateTimes()
}

// HOYs returns the hour of the year for each value.
func (c *HourlyCollection) HOYs() []float64 {
	return c.Header.AnalysisPeriod.HOYs()
}

func (c *HourlyCollection) Len() int { return len(c.Values) }

// Average returns the mean of the values.
func (c *HourlyCollection) Average() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	var total float64
	for _, v := range c.Values {
		total += v
	}
	return total / float64(len(c.Values))
}

// Min returns the smallest value.
func (c *HourlyCollection) Min() float64 {
	min := math.Inf(1)
	for _, v := range c.Values {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value.
func (c *HourlyCollection) Max() float64 {
	max := math.Inf(-1)
	for _, v := range c.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Percentile returns the value at a percentile between 0 and 100, using
// linear interpolation between closest ranks.
func (c *HourlyCollection) Percentile(percentile float64) (float64, error) {
	if percentile < 0 || percentile > 100 {
		return 0, fmt.Errorf("percentile must be between 0 and 100, got %g", percentile)
	}
	if len(c.Values) == 0 {
		return 0, fmt.Errorf("cannot take a percentile of an empty collection")
	}
	sorted := append([]float64(nil), c.Values...)
	sort.Float64s(sorted)

	rank := percentile / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// FilterByAnalysisPeriod returns a new collection with only the values
// whose timestamps fall inside the period.
func (c *HourlyCollection) FilterByAnalysisPeriod(period dtime.AnalysisPeriod) (*HourlyCollection, error) {
	if period.Timestep != c.Header.AnalysisPeriod.Timestep {
		return nil, fmt.Errorf("filter timestep %d does not match collection timestep %d",
			period.Timestep, c.Header.AnalysisPeriod.Timestep)
	}
	filtered, err := c.FilterByMOYs(period.MOYs())
	if err != nil {
		return nil, err
	}
	filtered.Header.AnalysisPeriod = period
	return filtered, nil
}

// FilterByHOYs returns a new collection with only the values at the given
// hours of the year, in the order requested.  The result keeps the original
// header; its values are no longer aligned with the header's period.
func (c *HourlyCollection) FilterByHOYs(hoys []float64) (*HourlyCollection, error) {
	moys := make([]int, len(hoys))
	for i, hoy := range hoys {
		moys[i] = int(math.Round(hoy * 60))
	}
	return c.FilterByMOYs(moys)
}

// FilterByMOYs returns a new collection with only the values at the given
// minutes of the year, in the order requested.
func (c *HourlyCollection) FilterByMOYs(moys []int) (*HourlyCollection, error) {
	index := make(map[int]int, len(c.Values))
	for i, moy := range c.Header.AnalysisPeriod.MOYs() {
		index[moy] = i
	}

	values := make([]float64, 0, len(moys))
	for _, moy := range moys {
		i, ok := index[moy]
		if !ok {
			return nil, fmt.Errorf("minute of year %d is not in the collection period %q",
				moy, c.Header.AnalysisPeriod)
		}
		values = append(values, c.Values[i])
	}
	out := *c
	out.Values = values
	return &out, nil
}

// GroupByDay buckets the values by day of year (1-365, or 366 on leap
// years).  Only days with values appear in the map.
func (c *HourlyCollection) GroupByDay() map[int][]float64 {
	out := map[int][]float64{}
	for i, dt := range c.DateTimes() {
		doy := dt.DOY()
		out[doy] = append(out[doy], c.Values[i])
	}
	return out
}

// GroupByMonth buckets the values by month (1-12).  Only months with values
// appear in the map.
func (c *HourlyCollection) GroupByMonth() map[int][]float64 {
	out := map[int][]float64{}
	for i, dt := range c.DateTimes() {
		out[dt.Month] = append(out[dt.Month], c.Values[i])
	}
	return out
}
