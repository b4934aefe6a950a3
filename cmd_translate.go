package main

import (
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/ladybug-tools/ladybug-go/pkg/cliutil"
	"github.com/ladybug-tools/ladybug-go/pkg/ddy"
	"github.com/ladybug-tools/ladybug-go/pkg/designday"
	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/epw"
	"github.com/ladybug-tools/ladybug-go/pkg/wea"
)

var argparserTranslate = &cobra.Command{
	Use:   "translate {[flags]|SUBCOMMAND...}",
	Short: "Translate between weather file formats",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserTranslate)
}

func init() {
	var flags struct {
		AnalysisPeriod string
		Output         string
	}
	cmd := &cobra.Command{
		Use:   "epw-to-wea [flags] IN_EPWFILE >OUT_WEAFILE",
		Short: "Translate an EPW weather file to a Radiance WEA file",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			weather, err := epw.ParseFile(args[0])
			if err != nil {
				return err
			}
			w, err := wea.FromEPW(weather)
			if err != nil {
				return err
			}

			out := os.Stdout
			if flags.Output != "" {
				out, err = os.Create(flags.Output)
				if err != nil {
					return err
				}
				defer out.Close()
			}

			if flags.AnalysisPeriod == "" {
				return w.WriteTo(out)
			}
			var period dtime.AnalysisPeriod
			if err := yaml.Unmarshal([]byte(flags.AnalysisPeriod), &period,
				yaml.DisallowUnknownFields); err != nil {
				return err
			}
			period, err = dtime.NewAnalysisPeriod(
				period.StMonth, period.StDay, period.StHour,
				period.EndMonth, period.EndDay, period.EndHour, period.Timestep)
			if err != nil {
				return err
			}
			return w.WriteHOYs(out, period.HOYs())
		},
	}
	cmd.Flags().StringVar(&flags.AnalysisPeriod, "analysis-period", "",
		"Only write the hours of `JSON_PERIOD` "+
			`(e.g. '{"st_month":6,"st_day":21,"st_hour":0,`+
			`"end_month":9,"end_day":21,"end_hour":23,"timestep":1}')`)
	cmd.Flags().StringVarP(&flags.Output, "output", "f", "",
		"Write to `OUT_WEAFILE` instead of stdout")

	argparserTranslate.AddCommand(cmd)
}

func init() {
	var flags struct {
		Percentile float64
		Output     string
	}
	cmd := &cobra.Command{
		Use:   "epw-to-ddy [flags] IN_EPWFILE >OUT_DDYFILE",
		Short: "Produce a DDY file with design days derived from an EPW",
		Long: "Derive an annual heating and an annual cooling design day from the " +
			"extreme conditions recorded in an EPW weather file, and write them as " +
			"a .ddy file.  Note that the values are approximated from one year of " +
			"data rather than computed from multi-year ASHRAE records.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			weather, err := epw.ParseFile(args[0])
			if err != nil {
				return err
			}
			heating, err := weather.ApproximateDesignDay("WinterDesignDay", flags.Percentile)
			if err != nil {
				return err
			}
			cooling, err := weather.ApproximateDesignDay("SummerDesignDay", flags.Percentile)
			if err != nil {
				return err
			}
			d, err := ddy.New(weather.Location, []*designday.DesignDay{heating, cooling})
			if err != nil {
				return err
			}

			if flags.Output != "" {
				return d.WriteFile(flags.Output)
			}
			return d.WriteTo(os.Stdout)
		},
	}
	cmd.Flags().Float64Var(&flags.Percentile, "percentile", 0.4,
		"Extreme-condition `PCT` for the design days (0.4 gives 99.6% heating and 0.4% cooling)")
	cmd.Flags().StringVarP(&flags.Output, "output", "f", "",
		"Write to `OUT_DDYFILE` instead of stdout")

	argparserTranslate.AddCommand(cmd)
}
