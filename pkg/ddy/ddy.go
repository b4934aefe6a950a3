// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ddy reads and writes EnergyPlus .ddy design day files.
package ddy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ladybug-tools/ladybug-go/pkg/designday"
	"github.com/ladybug-tools/ladybug-go/pkg/location"
)

// A .ddy file is loose IDF: objects end at a semicolon, which may be
// followed by a trailing comment.
var (
	locationRe  = regexp.MustCompile(`(?s)Site:Location,.*?;[ \t]*(!|\n)`)
	designDayRe = regexp.MustCompile(`(?s)SizingPeriod:DesignDay,.*?;[ \t]*(!|\n)`)
)

// DDY holds the contents of a .ddy file: a site location and the design
// days defined for it.
type DDY struct {
	Location   location.Location
	DesignDays []*designday.DesignDay
}

// New builds a DDY, stamping the location onto every design day.
func New(loc location.Location, days []*designday.DesignDay) (*DDY, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	for _, day := range days {
		day.Location = loc
	}
	return &DDY{Location: loc, DesignDays: days}, nil
}

// FromDesignDay wraps a single design day in a DDY at the day's location.
func FromDesignDay(day *designday.DesignDay) (*DDY, error) {
	return New(day.Location, []*designday.DesignDay{day})
}

// Parse reads .ddy file contents.
func Parse(reader io.Reader) (*DDY, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	text := string(raw)

	locMatch := locationRe.FindString(text)
	if locMatch == "" {
		return nil, fmt.Errorf("no Site:Location objects found in .ddy contents")
	}
	dayMatches := designDayRe.FindAllString(text, -1)
	if len(dayMatches) == 0 {
		return nil, fmt.Errorf("no SizingPeriod:DesignDay objects found in .ddy contents")
	}

	loc, err := location.ParseIDF(locMatch)
	if err != nil {
		return nil, err
	}
	days := make([]*designday.DesignDay, 0, len(dayMatches))
	for _, match := range dayMatches {
		day, err := designday.FromIDF(match, loc)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return New(loc, days)
}

// ParseFile reads a .ddy file from a path.
func ParseFile(path string) (*DDY, error) {
	if strings.ToLower(filepath.Ext(path)) != ".ddy" {
		return nil, fmt.Errorf("file does not have a .ddy extension: %q", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// FilterByKeyword returns the design days whose names contain the keyword.
// Useful for pulling, say, the .4% cooling days out of a full ASHRAE set.
func (d *DDY) FilterByKeyword(keyword string) []*designday.DesignDay {
	var filtered []*designday.DesignDay
	for _, day := range d.DesignDays {
		if strings.Contains(day.Name, keyword) {
			filtered = append(filtered, day)
		}
	}
	return filtered
}

// String returns the full .ddy file contents.
func (d *DDY) String() string {
	var b strings.Builder
	b.WriteString(d.Location.ToIDF())
	b.WriteString("\n\n")
	for _, day := range d.DesignDays {
		b.WriteString(day.ToIDF())
		b.WriteString("\n\n")
	}
	return b.String()
}

// WriteTo writes the .ddy file contents.
func (d *DDY) WriteTo(writer io.Writer) error {
	_, err := io.WriteString(writer, d.String())
	return err
}

// WriteFile writes the DDY to a path, appending the .ddy extension if it
// is missing.
func (d *DDY) WriteFile(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".ddy" {
		path += ".ddy"
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
