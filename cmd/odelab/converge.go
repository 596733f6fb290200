package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	sweepSteps   []int
	sweepWorkers int
)

func newConvergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converge",
		Short: "measure error and convergence order across step counts",
		Args:  cobra.NoArgs,
		RunE:  runConverge,
	}
	addRunFlags(cmd)
	cmd.Flags().IntSliceVar(&sweepSteps, "ns", analysis.DefaultSweep, "step counts to sweep")
	cmd.Flags().IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "concurrent integrations")
	return cmd
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := cfg.BuildModel()
	if err != nil {
		return err
	}

	points, err := analysis.Sweep(cmd.Context(), m, cfg.Y0, cfg.Interval, sweepSteps, sweepWorkers)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("convergence: %s over %v (closed form anchored at start)", cfg.Model, cfg.Interval)))
	table := viz.NewTable(os.Stdout, "n", "h", "max_abs", "rms", "order")
	for _, p := range points {
		order := "-"
		if p.Order != 0 {
			order = fmt.Sprintf("%.3f", p.Order)
		}
		table.AddRow(strconv.Itoa(p.N), fmt.Sprintf("%.6g", p.H),
			fmt.Sprintf("%.3e", p.MaxAbs), fmt.Sprintf("%.3e", p.RMS), order)
	}
	return table.Render()
}
