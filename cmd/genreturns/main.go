package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retsim/genreturns/internal/calculation"
	"github.com/retsim/genreturns/internal/config"
	"github.com/retsim/genreturns/internal/domain"
	"github.com/retsim/genreturns/internal/logging"
	"github.com/retsim/genreturns/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "genreturns:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts       config.Options
		configFile string
		scenario   string
		format     string
		outPath    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "genreturns",
		Short: "Generate a synthetic time series of financial returns",
		Long: `genreturns produces a sequence of statistically independent per-interval
returns, or a compounded value path derived from them, for backtesting and
Monte Carlo studies. Values are written one per line to stdout unless a
different format or output file is selected.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts.TotalSet = flags.Changed("total-seconds")
			opts.IntervalSet = flags.Changed("interval-seconds")
			opts.SeedSet = flags.Changed("seed")
			opts.ContinuousSet = flags.Changed("continuous-leverage")
			opts.PointwiseSet = flags.Changed("pointwise-leverage")
			opts.InitialSet = flags.Changed("initial-leverage")

			req, err := buildRequest(opts, configFile, scenario)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.Logger = logging.Adapter{L: logging.New(verbose)}

			result, err := engine.Generate(req)
			if err != nil {
				return err
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return domain.NewConfigError("unknown format %q (available: %s)",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			return output.WriteFormatted(f, result, outPath)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.NumPoints, "num-points", "n", 0, "how many data points to generate (equally spaced in time)")
	flags.Float64VarP(&opts.TotalSeconds, "total-seconds", "t", 0, "simulation time in seconds, first point to last (mutually exclusive with --interval-seconds)")
	flags.Float64VarP(&opts.IntervalSeconds, "interval-seconds", "i", 0, "time between data points in seconds (mutually exclusive with --total-seconds)")
	flags.BoolVarP(&opts.Accumulate, "accumulate", "a", false, "emit the compounded value path instead of raw returns")
	flags.Float64Var(&opts.StartValue, "start-value", 1.0, "value to begin accumulating from at t=0")
	flags.Float64Var(&opts.YearlyMean, "yearly-mean", 1.0, "target yearly geometric mean return as a growth factor")
	flags.Float64Var(&opts.YearlyStddev, "yearly-stddev", 0.0, "target yearly standard deviation of returns")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for reproducible random number generation")
	flags.Float64Var(&opts.ContinuousLeverage, "continuous-leverage", 0, "constant leverage, releveraged continuously between points")
	flags.Float64Var(&opts.PointwiseLeverage, "pointwise-leverage", 0, "constant leverage, releveraged discretely at every point")
	flags.Float64Var(&opts.InitialLeverage, "initial-leverage", 0, "leverage applied at t=0 and never releveraged")
	flags.StringVar(&configFile, "config", "", "YAML scenario file to load the request from")
	flags.StringVar(&scenario, "scenario", "", "name of the scenario to run from --config")
	flags.StringVarP(&format, "format", "f", "plain", "output format: plain, csv, json, chart")
	flags.StringVarP(&outPath, "output", "o", "", "write output to a file instead of stdout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics on stderr")

	return cmd
}

// buildRequest resolves the request from either a scenario file or the
// bare flags.
func buildRequest(opts config.Options, configFile, scenario string) (*domain.GenerationRequest, error) {
	if configFile == "" {
		if scenario != "" {
			return nil, domain.NewConfigError("--scenario requires --config")
		}
		return config.BuildRequest(opts)
	}
	if scenario == "" {
		return nil, domain.NewConfigError("--config requires --scenario to pick one entry")
	}
	sf, err := config.LoadScenarioFile(configFile)
	if err != nil {
		return nil, err
	}
	sc, err := sf.Find(scenario)
	if err != nil {
		return nil, err
	}
	return sc.Request()
}
