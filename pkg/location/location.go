// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package location identifies a point on the globe the way EnergyPlus does.
package location

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a named site with the coordinates needed for solar and
// weather-file calculations.
type Location struct {
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// TimeZone is in hours offset from UTC, following the EPW convention:
	// positive East of Greenwich, negative West.
	TimeZone  float64 `json:"time_zone"`
	Elevation float64 `json:"elevation"`
	StationID string  `json:"station_id,omitempty"`
	Source    string  `json:"source,omitempty"`
}

// Validate checks the coordinate bounds.
func (loc Location) Validate() error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %g", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %g", loc.Longitude)
	}
	if loc.TimeZone < -12 || loc.TimeZone > 14 {
		return fmt.Errorf("time zone must be between -12 and 14, got %g", loc.TimeZone)
	}
	return nil
}

// Meridian returns the standard meridian of the location's time zone in
// degrees West of Greenwich.
func (loc Location) Meridian() float64 {
	return -15 * loc.TimeZone
}

// ParseIDF reads a Location from an EnergyPlus "Site:Location" IDF block,
// such as the one found at the top of every .ddy file:
//
//	Site:Location,
//	  Chicago Ohare Intl Ap_IL_USA Design_Conditions,     !- Location Name
//	  41.98,     !- Latitude {N+ S-}
//	  -87.92,    !- Longitude {W- E+}
//	  -6.00,     !- Time Zone Relative to GMT {GMT+/-}
//	  201.00;    !- Elevation {m}
func ParseIDF(idf string) (Location, error) {
	fields, err := IDFFields(idf, "Site:Location", 5)
	if err != nil {
		return Location{}, err
	}
	var loc Location
	loc.City = fields[0]
	nums := make([]float64, 4)
	names := [4]string{"latitude", "longitude", "time zone", "elevation"}
	for i, raw := range fields[1:5] {
		nums[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return Location{}, fmt.Errorf("parse Site:Location %s: %w", names[i], err)
		}
	}
	loc.Latitude, loc.Longitude, loc.TimeZone, loc.Elevation =
		nums[0], nums[1], nums[2], nums[3]
	if err := loc.Validate(); err != nil {
		return Location{}, fmt.Errorf("parse Site:Location: %w", err)
	}
	return loc, nil
}

// ToIDF emits the Location as an EnergyPlus "Site:Location" IDF block.
func (loc Location) ToIDF() string {
	var b strings.Builder
	b.WriteString("Site:Location,\n")
	WriteIDFField(&b, loc.City, "Location Name", false)
	WriteIDFField(&b, fmt.Sprintf("%.2f", loc.Latitude), "Latitude {N+ S-}", false)
	WriteIDFField(&b, fmt.Sprintf("%.2f", loc.Longitude), "Longitude {W- E+}", false)
	WriteIDFField(&b, fmt.Sprintf("%.2f", loc.TimeZone), "Time Zone Relative to GMT {GMT+/-}", false)
	WriteIDFField(&b, fmt.Sprintf("%.2f", loc.Elevation), "Elevation {m}", true)
	return b.String()
}

// String formats the location as "Chicago, lat:41.98, lon:-87.92, tz:-6.0,
// elev:201.00".
func (loc Location) String() string {
	return fmt.Sprintf("%s, lat:%.2f, lon:%.2f, tz:%.1f, elev:%.2f",
		loc.City, loc.Latitude, loc.Longitude, loc.TimeZone, loc.Elevation)
}

// IDFFields strips comments from an IDF object block, checks its type
// keyword, and returns its comma-separated value fields.  Shared with the
// design-day parser.
func IDFFields(idf, keyword string, minFields int) ([]string, error) {
	idf = strings.TrimSpace(idf)
	// strip "!- ..." comments line by line
	var stripped []string
	for _, line := range strings.Split(idf, "\n") {
		if i := strings.Index(line, "!"); i >= 0 {
			line = line[:i]
		}
		stripped = append(stripped, line)
	}
	body := strings.Join(stripped, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	fields := strings.Split(body, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] != keyword {
		return nil, fmt.Errorf("expected a %s IDF object, got %q", keyword, fields[0])
	}
	if len(fields) < minFields+1 {
		return nil, fmt.Errorf("%s IDF object has %d fields, need at least %d",
			keyword, len(fields)-1, minFields)
	}
	return fields[1:], nil
}

// WriteIDFField appends one "  value,    !- comment" line of an IDF object
// to b, terminating the object with a semicolon when last is set.
func WriteIDFField(b *strings.Builder, val, comment string, last bool) {
	sep := ","
	if last {
		sep = ";"
	}
	pad := 60 - len(val) - len(sep)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(b, "  %s%s%s!- %s\n", val, sep, strings.Repeat(" ", pad), comment)
}
