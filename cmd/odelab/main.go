package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
)

// runOptions holds flag values for the commands that build a run config.
type runOptions struct {
	model       string
	preset      string
	configFile  string
	r           float64
	k           float64
	y0          float64
	start       float64
	end         float64
	steps       int
	curvePoints int
	includeEnd  bool
	alignStart  bool
}

var (
	dataDir  string
	logLevel string
	opts     runOptions
)

// main registers the odelab commands and executes the root command with a
// context canceled on interrupt. It exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "RK4 integration against closed-form ODE solutions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(
		newSolveCmd(),
		newConvergeCmd(),
		newExploreCmd(),
		newListCmd(),
		newShowCmd(),
		newExportCSVCmd(),
		newExportJSONCmd(),
		newExportPNGCmd(),
		newPresetsCmd(),
		newModelsCmd(),
	)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&opts.model, "model", config.DefaultModel, "model (logistic, exponential)")
	f.StringVar(&opts.preset, "preset", "", "use preset configuration")
	f.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	f.Float64Var(&opts.r, "r", config.DefaultR, "growth rate")
	f.Float64Var(&opts.k, "k", config.DefaultK, "carrying capacity (logistic)")
	f.Float64Var(&opts.y0, "y0", config.DefaultY0, "initial value at interval start")
	f.Float64Var(&opts.start, "start", config.DefaultStart, "interval start")
	f.Float64Var(&opts.end, "end", config.DefaultEnd, "interval end")
	f.IntVarP(&opts.steps, "steps", "n", config.DefaultSteps, "number of RK4 steps")
	f.IntVar(&opts.curvePoints, "points", 1000, "analytic curve samples")
	f.BoolVar(&opts.includeEnd, "include-end", false, "append the sample at the interval end")
	f.BoolVar(&opts.alignStart, "align-start", false, "measure the closed form from the interval start")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	flags := cmd.Flags()

	if opts.preset != "" {
		p := config.GetPreset(opts.model, opts.preset)
		if p == nil {
			return nil, fmt.Errorf("preset %s/%s: %w (available: %s)", opts.model, opts.preset,
				dynamo.ErrParameterBounds, strings.Join(config.ListPresets(opts.model), ", "))
		}
		cfg = p
		logrus.Debugf("applied preset %s/%s", opts.model, opts.preset)
	}

	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logrus.Debugf("loaded config %s", opts.configFile)
	}

	if flags.Changed("model") || (opts.preset == "" && opts.configFile == "") {
		cfg.Model = opts.model
	}
	if flags.Changed("r") {
		cfg.Params.R = opts.r
	}
	if flags.Changed("k") {
		cfg.Params.K = opts.k
	}
	if flags.Changed("y0") {
		cfg.Y0 = opts.y0
	}
	if flags.Changed("start") {
		cfg.Interval.Start = opts.start
	}
	if flags.Changed("end") {
		cfg.Interval.End = opts.end
	}
	if flags.Changed("steps") {
		cfg.Steps = opts.steps
	}
	if flags.Changed("points") {
		cfg.CurvePoints = opts.curvePoints
	}
	if flags.Changed("include-end") {
		cfg.IncludeEnd = opts.includeEnd
	}
	if flags.Changed("align-start") {
		cfg.AlignStart = opts.alignStart
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Interval.Start > cfg.Interval.End {
		logrus.Warnf("interval %v runs backward; step size is negative", cfg.Interval)
	}
	return cfg, nil
}
