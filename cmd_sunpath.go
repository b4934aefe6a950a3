package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/ladybug-tools/ladybug-go/pkg/cliutil"
	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/sunpath"
)

// datetimeValue is a pflag.Value holding a "21 Jun 12:00" moment.
type datetimeValue dtime.DateTime

var _ pflag.Value = (*datetimeValue)(nil)

func (v *datetimeValue) String() string { return dtime.DateTime(*v).String() }
func (v *datetimeValue) Type() string   { return "datetime" }

func (v *datetimeValue) Set(str string) error {
	dt, err := dtime.Parse(str)
	if err != nil {
		return err
	}
	*v = datetimeValue(dt)
	return nil
}

var argparserSunpath = &cobra.Command{
	Use:   "sunpath {[flags]|SUBCOMMAND...}",
	Short: "Compute solar positions",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserSunpath)
}

func parseLatLon(args []string) (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude: %w", err)
	}
	return lat, lon, nil
}

func init() {
	var flags struct {
		TimeZone  float64
		North     float64
		DateTime  datetimeValue
		SolarTime bool
	}
	flags.DateTime = datetimeValue(dtime.MustDateTime(6, 21, 12, 0))
	cmd := &cobra.Command{
		Use:   "position [flags] LATITUDE LONGITUDE",
		Short: "Compute the sun's altitude and azimuth at a moment",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := parseLatLon(args)
			if err != nil {
				return err
			}
			sp, err := sunpath.New(lat, lon, flags.TimeZone)
			if err != nil {
				return err
			}
			sp.NorthAngle = flags.North

			sun := sp.CalculateSunFromDateTime(dtime.DateTime(flags.DateTime), flags.SolarTime)

			x, y, z := sun.Vector()
			bs, err := yaml.Marshal(yaml.MapSlice{
				{Key: "datetime", Value: sun.DateTime.String()},
				{Key: "altitude", Value: round2(sun.Altitude)},
				{Key: "azimuth", Value: round2(sun.Azimuth)},
				{Key: "is_during_day", Value: sun.IsDuringDay()},
				{Key: "vector", Value: []float64{round2(x), round2(y), round2(z)}},
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bs)
			return err
		},
	}
	cmd.Flags().Float64Var(&flags.TimeZone, "tz", 0,
		"Time zone of the hour being computed, in `HOURS` offset from UTC")
	cmd.Flags().Float64Var(&flags.North, "north", 0,
		"Counterclockwise `DEGREES` difference between true North and the Y axis")
	cmd.Flags().Var(&flags.DateTime, "datetime",
		"The moment to compute, as `\"21 Jun 12:00\"`")
	cmd.Flags().BoolVar(&flags.SolarTime, "solar-time", false,
		"Treat the datetime as solar time rather than zone time")

	argparserSunpath.AddCommand(cmd)
}

func init() {
	var flags struct {
		TimeZone   float64
		Month      int
		Day        int
		Depression float64
	}
	cmd := &cobra.Command{
		Use:   "sunrise-sunset [flags] LATITUDE LONGITUDE",
		Short: "Compute sunrise, solar noon, and sunset for a day",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := parseLatLon(args)
			if err != nil {
				return err
			}
			sp, err := sunpath.New(lat, lon, flags.TimeZone)
			if err != nil {
				return err
			}

			result, err := sp.CalculateSunriseSunset(flags.Month, flags.Day, flags.Depression)
			if err != nil {
				return err
			}
			format := func(dt *dtime.DateTime) interface{} {
				// nil inside the polar circles
				if dt == nil {
					return nil
				}
				return dt.String()
			}
			bs, err := yaml.Marshal(yaml.MapSlice{
				{Key: "sunrise", Value: format(result.Sunrise)},
				{Key: "noon", Value: result.Noon.String()},
				{Key: "sunset", Value: format(result.Sunset)},
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bs)
			return err
		},
	}
	cmd.Flags().Float64Var(&flags.TimeZone, "tz", 0,
		"Time zone of the returned times, in `HOURS` offset from UTC")
	cmd.Flags().IntVar(&flags.Month, "month", 6, "`MONTH` of the day to compute")
	cmd.Flags().IntVar(&flags.Day, "day", 21, "`DAY` of the month to compute")
	cmd.Flags().Float64Var(&flags.Depression, "depression", 0.5334,
		"Solar `DEGREES` below the horizon that count as rise/set (0.833 "+
			"gives the apparent horizon, 6/12/18 give the twilights)")

	argparserSunpath.AddCommand(cmd)
}
