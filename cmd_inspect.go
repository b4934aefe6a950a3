package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ladybug-tools/ladybug-go/pkg/cliutil"
	"github.com/ladybug-tools/ladybug-go/pkg/ddy"
	"github.com/ladybug-tools/ladybug-go/pkg/epw"
)

var argparserInspect = &cobra.Command{
	Use:   "inspect {[flags]|SUBCOMMAND...}",
	Short: "Summarize the contents of weather files",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserInspect)
}

func locationSummary(city, country string, lat, lon, tz, elev float64) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "city", Value: city},
		{Key: "country", Value: country},
		{Key: "latitude", Value: lat},
		{Key: "longitude", Value: lon},
		{Key: "time_zone", Value: tz},
		{Key: "elevation", Value: elev},
	}
}

func init() {
	cmd := &cobra.Command{
		Use:   "epw [flags] IN_EPWFILE",
		Short: "Dump a YAML summary of an EPW weather file",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			weather, err := epw.ParseFile(args[0])
			if err != nil {
				return err
			}

			var fieldSummaries yaml.MapSlice
			for fieldNumber := 6; fieldNumber < weather.NumFieldsInFile(); fieldNumber++ {
				info, err := epw.FieldByNumber(fieldNumber)
				if err != nil {
					return err
				}
				values, err := weather.FieldValues(fieldNumber)
				if err != nil {
					return err
				}
				min, max := values[0], values[0]
				sum := 0.0
				for _, v := range values {
					if v < min {
						min = v
					}
					if v > max {
						max = v
					}
					sum += v
				}
				fieldSummaries = append(fieldSummaries, yaml.MapItem{
					Key: info.Name,
					Value: yaml.MapSlice{
						{Key: "unit", Value: info.Unit},
						{Key: "min", Value: min},
						{Key: "average", Value: round2(sum / float64(len(values)))},
						{Key: "max", Value: max},
					},
				})
			}

			loc := weather.Location
			summary := yaml.MapSlice{
				{Key: "location", Value: locationSummary(
					loc.City, loc.Country,
					loc.Latitude, loc.Longitude, loc.TimeZone, loc.Elevation)},
				{Key: "fields", Value: fieldSummaries},
			}
			bs, err := yaml.Marshal(summary)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(bs)
			return err
		},
	}
	argparserInspect.AddCommand(cmd)
}

func init() {
	cmd := &cobra.Command{
		Use:   "ddy [flags] IN_DDYFILE",
		Short: "Dump a YAML summary of a DDY design day file",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ddy.ParseFile(args[0])
			if err != nil {
				return err
			}

			var daySummaries []yaml.MapSlice
			for _, day := range parsed.DesignDays {
				date := day.Sky.SkyDate()
				daySummaries = append(daySummaries, yaml.MapSlice{
					{Key: "name", Value: day.Name},
					{Key: "day_type", Value: day.DayType},
					{Key: "date", Value: fmt.Sprintf("%d/%d", date.Month, date.Day)},
					{Key: "dry_bulb_max", Value: day.DryBulb.DryBulbMax},
					{Key: "dry_bulb_range", Value: day.DryBulb.DryBulbRange},
					{Key: "humidity_type", Value: string(day.Humidity.Type)},
					{Key: "humidity_value", Value: day.Humidity.Value},
					{Key: "wind_speed", Value: day.Wind.WindSpeed},
					{Key: "wind_direction", Value: day.Wind.WindDirection},
				})
			}

			loc := parsed.Location
			summary := yaml.MapSlice{
				{Key: "location", Value: locationSummary(
					loc.City, loc.Country,
					loc.Latitude, loc.Longitude, loc.TimeZone, loc.Elevation)},
				{Key: "design_days", Value: daySummaries},
			}
			bs, err := yaml.Marshal(summary)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(bs)
			return err
		},
	}
	argparserInspect.AddCommand(cmd)
}
