package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

type solveOptions struct {
	noSave  bool
	table   bool
	svgOut  string
	pngOut  string
	height  int
	width   int
	showErr bool
}

var solveOpts solveOptions

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "integrate with RK4 and compare against the closed form",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	addRunFlags(cmd)
	cmd.Flags().BoolVar(&solveOpts.noSave, "no-save", false, "do not persist the run")
	cmd.Flags().BoolVar(&solveOpts.table, "table", false, "print every numeric sample")
	cmd.Flags().StringVar(&solveOpts.svgOut, "svg", "", "write an svg comparison to this path")
	cmd.Flags().StringVar(&solveOpts.pngOut, "png", "", "write a png comparison to this path")
	cmd.Flags().IntVar(&solveOpts.height, "height", 15, "plot height")
	cmd.Flags().IntVar(&solveOpts.width, "width", 80, "plot width")
	cmd.Flags().BoolVar(&solveOpts.showErr, "errors", false, "also plot the pointwise error")
	return cmd
}

type solution struct {
	numeric     dynamo.Trajectory
	analytic    dynamo.Trajectory
	report      analysis.Report
	evaluations int
	elapsed     time.Duration
}

func solve(cfg *config.Config) (*solution, error) {
	m, err := cfg.BuildModel()
	if err != nil {
		return nil, err
	}

	rk4 := integrators.NewRK4()
	rk4.IncludeEnd = cfg.IncludeEnd

	start := time.Now()
	numeric := rk4.Integrate(m.Func(), cfg.Y0, cfg.Interval, cfg.Steps)
	sol := &solution{
		numeric:     numeric,
		analytic:    models.Curve(m, cfg.Y0, cfg.Interval, cfg.CurvePoints),
		evaluations: rk4.Evaluations(),
		elapsed:     time.Since(start),
	}
	logrus.Infof("integrated %s over %v with %d steps (%d evaluations) in %v",
		cfg.Model, cfg.Interval, cfg.Steps, sol.evaluations, sol.elapsed)

	if len(numeric) == 0 {
		logrus.Warnf("steps=%d: empty trajectory", cfg.Steps)
		return sol, nil
	}
	if idx, err := analysis.Finite(numeric); err != nil {
		logrus.Warnf("%v at sample %d (x=%g)", err, idx, numeric[idx].X)
	}

	sol.report, err = analysis.Compare(numeric, models.Exact(m, cfg.Y0))
	if err != nil {
		return nil, err
	}
	return sol, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sol, err := solve(cfg)
	if err != nil {
		return err
	}

	metrics := map[string]float64{"evaluations": float64(sol.evaluations)}
	if sol.report.Samples > 0 {
		for k, v := range sol.report.Metrics() {
			metrics[k] = v
		}
	}

	stats := []viz.Stat{
		viz.Statf("model", "%s %v", cfg.Model, cfg.ModelParams()),
		viz.Statf("interval", "%v", cfg.Interval),
		viz.Statf("steps", "%d", cfg.Steps),
		viz.Statf("samples", "%d", len(sol.numeric)),
		viz.Statf("evaluations", "%d", sol.evaluations),
		viz.Statf("elapsed", "%v", sol.elapsed),
	}
	if sol.report.Samples > 0 {
		stats = append(stats,
			viz.Statf("max |err|", "%.6g at x=%.4g", sol.report.MaxAbs, sol.report.WorstX),
			viz.Statf("mean |err|", "%.6g", sol.report.MeanAbs),
			viz.Statf("rms", "%.6g", sol.report.RMS),
		)
	}

	if !solveOpts.noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, sol.numeric, sol.analytic, metrics)
		if err != nil {
			return err
		}
		stats = append(stats, viz.Statf("run id", "%s", runID))
	}

	fmt.Println(viz.Panel("rk4 vs closed form", stats))
	fmt.Println()
	fmt.Println(viz.PlotComparison(sol.numeric, sol.analytic, solveOpts.height, solveOpts.width,
		fmt.Sprintf("%s: numeric (rk4) vs analytic", cfg.Model)))

	if solveOpts.showErr && sol.report.Samples > 0 {
		fmt.Println()
		fmt.Println(viz.PlotErrors(sol.report.Errors, solveOpts.height/2+1, solveOpts.width))
	}

	if solveOpts.table {
		fmt.Println()
		if err := printSamples(sol); err != nil {
			return err
		}
	}

	if solveOpts.svgOut != "" {
		if err := os.WriteFile(solveOpts.svgOut, []byte(export.SVG(sol.numeric, sol.analytic, 1000, 500)), 0644); err != nil {
			return err
		}
		logrus.Infof("wrote %s", solveOpts.svgOut)
	}

	if solveOpts.pngOut != "" {
		if err := export.SavePNG(solveOpts.pngOut, sol.numeric, sol.analytic, export.DefaultPlotOptions()); err != nil {
			return err
		}
		logrus.Infof("wrote %s", solveOpts.pngOut)
	}

	return nil
}

func printSamples(sol *solution) error {
	table := viz.NewTable(os.Stdout, "i", "x", "numeric", "error")
	for i, s := range sol.numeric {
		errAbs := 0.0
		if i < len(sol.report.Errors) {
			errAbs = sol.report.Errors[i]
		}
		table.AddRow(strconv.Itoa(i), fmt.Sprintf("%.6f", s.X), fmt.Sprintf("%.6f", s.Y), fmt.Sprintf("%.3e", errAbs))
	}
	return table.Render()
}
