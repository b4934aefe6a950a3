// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package epw reads and writes EnergyPlus weather files.
//
// An EPW file starts with eight header lines (LOCATION, DESIGN CONDITIONS,
// TYPICAL/EXTREME PERIODS, GROUND TEMPERATURES, HOLIDAYS/DAYLIGHT SAVINGS,
// two COMMENTS lines and DATA PERIODS) followed by 8760 comma-separated
// hourly data rows.
package epw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
	"github.com/ladybug-tools/ladybug-go/pkg/series"
	"github.com/ladybug-tools/ladybug-go/pkg/skymodel"
)

const headerLineCount = 8

// EPW is a parsed EnergyPlus weather file.
type EPW struct {
	Location location.Location

	// headerLines are the raw header lines, kept verbatim so a write
	// round-trips the original file.
	headerLines []string
	// rows are the raw comma-split data rows, in file order.
	rows [][]string
	// numFields is the column count of the first data row, capped at
	// NumFields.
	numFields int
}

// ParseFile reads an EPW file from disk.
func ParseFile(path string) (*EPW, error) {
	if strings.ToLower(filepath.Ext(path)) != ".epw" {
		return nil, fmt.Errorf("%q is not an .epw file", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	parsed, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// Parse reads an EPW file.
func Parse(reader io.Reader) (*EPW, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := &EPW{}
	for len(out.headerLines) < headerLineCount {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("file ended after %d of %d header lines",
				len(out.headerLines), headerLineCount)
		}
		out.headerLines = append(out.headerLines, scanner.Text())
	}

	loc, err := parseLocationLine(out.headerLines[0])
	if err != nil {
		return nil, err
	}
	out.Location = loc

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := strings.Split(line, ",")
		if out.numFields == 0 {
			out.numFields = len(row)
			if out.numFields > NumFields {
				out.numFields = NumFields
			}
		}
		if len(row) < out.numFields {
			return nil, fmt.Errorf("data row %d has %d fields, expected %d",
				len(out.rows)+1, len(row), out.numFields)
		}
		out.rows = append(out.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out.rows) != dtime.HoursPerYear {
		return nil, fmt.Errorf("found %d data rows, an EPW file must have %d",
			len(out.rows), dtime.HoursPerYear)
	}
	return out, nil
}

// parseLocationLine converts an EPW LOCATION header line, e.g.
//
//	LOCATION,Denver Centennial,CO,USA,TMY3,724666,39.74,-105.18,-7.0,1829.0
func parseLocationLine(line string) (location.Location, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 10 || strings.ToUpper(parts[0]) != "LOCATION" {
		return location.Location{}, fmt.Errorf("invalid LOCATION header line %q", line)
	}
	loc := location.Location{
		City:      strings.NewReplacer("\\", " ", "/", " ").Replace(parts[1]),
		State:     parts[2],
		Country:   parts[3],
		Source:    parts[4],
		StationID: parts[5],
	}
	numbers := []struct {
		name string
		dst  *float64
	}{
		{"latitude", &loc.Latitude},
		{"longitude", &loc.Longitude},
		{"time zone", &loc.TimeZone},
		{"elevation", &loc.Elevation},
	}
	for i, num := range numbers {
		val, err := strconv.ParseFloat(strings.TrimSpace(parts[6+i]), 64)
		if err != nil {
			return location.Location{}, fmt.Errorf("invalid %s in LOCATION line: %w", num.name, err)
		}
		*num.dst = val
	}
	if err := loc.Validate(); err != nil {
		return location.Location{}, err
	}
	return loc, nil
}

// HeaderLines returns the eight raw header lines.
func (e *EPW) HeaderLines() []string {
	return append([]string(nil), e.headerLines...)
}

// NumFieldsInFile returns how many columns the data rows carry.
func (e *EPW) NumFieldsInFile() int { return e.numFields }

// Write writes the EPW back out, headers verbatim.
func (e *EPW) Write(writer io.Writer) error {
	buffered := bufio.NewWriter(writer)
	for _, line := range e.headerLines {
		if _, err := fmt.Fprintln(buffered, line); err != nil {
			return err
		}
	}
	for _, row := range e.rows {
		if _, err := fmt.Fprintln(buffered, strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// WriteFile writes the EPW to a path.
func (e *EPW) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// FieldValues returns the parsed numeric values of a column, aligned so
// index 0 is the first hour of the year.
//
// EPW rows are stamped 1:00 through 24:00.  Fields recorded on the hour get
// the final row rotated to the front so index i means hour i; fields
// integrated over the hour (radiation, illuminance) are kept in file order
// so index i covers the hour ending at i+1.
func (e *EPW) FieldValues(fieldNumber int) ([]float64, error) {
	field, err := FieldByNumber(fieldNumber)
	if err != nil {
		return nil, err
	}
	if fieldNumber >= e.numFields {
		return nil, fmt.Errorf("field %d (%s) is not in this %d-column file",
			fieldNumber, field.Name, e.numFields)
	}

	values := make([]float64, len(e.rows))
	for i, row := range e.rows {
		val, err := strconv.ParseFloat(strings.TrimSpace(row[fieldNumber]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d field %d (%s): %w", i+1, fieldNumber, field.Name, err)
		}
		values[i] = val
	}
	if !field.MiddleHour {
		rotated := make([]float64, len(values))
		rotated[0] = values[len(values)-1]
		copy(rotated[1:], values[:len(values)-1])
		values = rotated
	}
	return values, nil
}

// fieldCollection wraps a column in an annual hourly collection.
func (e *EPW) fieldCollection(fieldNumber int) (*series.HourlyCollection, error) {
	values, err := e.FieldValues(fieldNumber)
	if err != nil {
		return nil, err
	}
	field, _ := FieldByNumber(fieldNumber)
	return series.NewHourlyCollection(series.Header{
		DataType:       field.Name,
		Unit:           field.Unit,
		AnalysisPeriod: dtime.Annual(),
		Metadata:       map[string]string{"city": e.Location.City},
	}, values)
}

// Years returns the year recorded on each data row.
func (e *EPW) Years() (*series.HourlyCollection, error) { return e.fieldCollection(0) }

// DryBulbTemperature returns the annual dry bulb temperature in C.
func (e *EPW) DryBulbTemperature() (*series.HourlyCollection, error) { return e.fieldCollection(6) }

// DewPointTemperature returns the annual dew point temperature in C.
func (e *EPW) DewPointTemperature() (*series.HourlyCollection, error) { return e.fieldCollection(7) }

// RelativeHumidity returns the annual relative humidity in percent.
func (e *EPW) RelativeHumidity() (*series.HourlyCollection, error) { return e.fieldCollection(8) }

// AtmosphericStationPressure returns the annual pressure in Pa.
func (e *EPW) AtmosphericStationPressure() (*series.HourlyCollection, error) {
	return e.fieldCollection(9)
}

func (e *EPW) ExtraterrestrialHorizontalRadiation() (*series.HourlyCollection, error) {
	return e.fieldCollection(10)
}

func (e *EPW) ExtraterrestrialDirectNormalRadiation() (*series.HourlyCollection, error) {
	return e.fieldCollection(11)
}

// HorizontalInfraredRadiationIntensity returns the annual horizontal
// infrared radiation intensity in Wh/m2.
func (e *EPW) HorizontalInfraredRadiationIntensity() (*series.HourlyCollection, error) {
	return e.fieldCollection(12)
}

func (e *EPW) GlobalHorizontalRadiation() (*series.HourlyCollection, error) {
	return e.fieldCollection(13)
}

// DirectNormalRadiation returns the annual direct normal radiation in Wh/m2.
func (e *EPW) DirectNormalRadiation() (*series.HourlyCollection, error) {
	return e.fieldCollection(14)
}

// DiffuseHorizontalRadiation returns the annual diffuse horizontal
// radiation in Wh/m2.
func (e *EPW) DiffuseHorizontalRadiation() (*series.HourlyCollection, error) {
	return e.fieldCollection(15)
}

func (e *EPW) GlobalHorizontalIlluminance() (*series.HourlyCollection, error) {
	return e.fieldCollection(16)
}

func (e *EPW) DirectNormalIlluminance() (*series.HourlyCollection, error) {
	return e.fieldCollection(17)
}

func (e *EPW) DiffuseHorizontalIlluminance() (*series.HourlyCollection, error) {
	return e.fieldCollection(18)
}

func (e *EPW) ZenithLuminance() (*series.HourlyCollection, error) { return e.fieldCollection(19) }

// WindDirection returns the annual wind direction in degrees.
func (e *EPW) WindDirection() (*series.HourlyCollection, error) { return e.fieldCollection(20) }

// WindSpeed returns the annual wind speed in m/s.
func (e *EPW) WindSpeed() (*series.HourlyCollection, error) { return e.fieldCollection(21) }

// TotalSkyCover returns the annual total sky cover in tenths.
func (e *EPW) TotalSkyCover() (*series.HourlyCollection, error) { return e.fieldCollection(22) }

// OpaqueSkyCover returns the annual opaque sky cover in tenths.
func (e *EPW) OpaqueSkyCover() (*series.HourlyCollection, error) { return e.fieldCollection(23) }

func (e *EPW) Visibility() (*series.HourlyCollection, error) { return e.fieldCollection(24) }

func (e *EPW) CeilingHeight() (*series.HourlyCollection, error) { return e.fieldCollection(25) }

func (e *EPW) PresentWeatherObservation() (*series.HourlyCollection, error) {
	return e.fieldCollection(26)
}

func (e *EPW) PresentWeatherCodes() (*series.HourlyCollection, error) {
	return e.fieldCollection(27)
}

func (e *EPW) PrecipitableWater() (*series.HourlyCollection, error) { return e.fieldCollection(28) }

func (e *EPW) AerosolOpticalDepth() (*series.HourlyCollection, error) { return e.fieldCollection(29) }

// SnowDepth returns the annual snow depth in cm.
func (e *EPW) SnowDepth() (*series.HourlyCollection, error) { return e.fieldCollection(30) }

func (e *EPW) DaysSinceLastSnowfall() (*series.HourlyCollection, error) {
	return e.fieldCollection(31)
}

func (e *EPW) Albedo() (*series.HourlyCollection, error) { return e.fieldCollection(32) }

// LiquidPrecipitationDepth returns the annual precipitation depth in mm.
func (e *EPW) LiquidPrecipitationDepth() (*series.HourlyCollection, error) {
	return e.fieldCollection(33)
}

func (e *EPW) LiquidPrecipitationQuantity() (*series.HourlyCollection, error) {
	return e.fieldCollection(34)
}

// SkyTemperature derives the annual long wave radiant temperature of the
// sky in C from the horizontal infrared radiation intensity, following the
// EnergyPlus sky temperature calculation.
func (e *EPW) SkyTemperature() (*series.HourlyCollection, error) {
	horizIR, err := e.HorizontalInfraredRadiationIntensity()
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(horizIR.Values))
	for i, ir := range horizIR.Values {
		// relative to absolute zero rather than the dry bulb
		values[i] = skymodel.SkyTemperature(ir, 0)
	}
	header := horizIR.Header
	header.DataType = "Sky Temperature"
	header.Unit = "C"
	return series.NewHourlyCollection(header, values)
}
