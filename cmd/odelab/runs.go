package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	csvKind string
	pngOut  string
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
}

func newExportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	cmd.Flags().StringVar(&csvKind, "kind", storage.Numeric, "trajectory (numeric, analytic)")
	return cmd
}

func newExportJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and trajectories to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
}

func newExportPNGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render a saved run as a png figure",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	cmd.Flags().StringVarP(&pngOut, "out", "o", "", "output path (default <run_id>.png)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := models.NewRegistry().List()
			if len(args) == 1 {
				names = args
			}
			for _, name := range names {
				presets := config.ListPresets(name)
				if len(presets) == 0 {
					fmt.Printf("no presets for model: %s\n", name)
					continue
				}
				fmt.Printf("presets for %s:\n", name)
				for _, p := range presets {
					c := config.GetPreset(name, p)
					fmt.Printf("  %-10s y0=%g interval=%v steps=%d params=%v\n", p, c.Y0, c.Interval, c.Steps, c.ModelParams())
				}
			}
			return nil
		},
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range models.NewRegistry().List() {
				fmt.Println(name)
			}
		},
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	table := viz.NewTable(os.Stdout, "id", "model", "time", "interval", "steps", "max_err")
	for _, run := range runs {
		table.AddRow(
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Interval.String(),
			strconv.Itoa(run.Steps),
			metricCell(run.Metrics, "max_abs_error"),
		)
	}

	return table.Render()
}

// metricCell formats a stored metric, or "-" when the run has none.
func metricCell(metrics map[string]float64, key string) string {
	v, ok := metrics[key]
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.3e", v)
}

func loadRun(runID string) (*storage.RunMetadata, dynamo.Trajectory, dynamo.Trajectory, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	numeric, err := st.LoadTrajectory(runID, storage.Numeric)
	if err != nil {
		return nil, nil, nil, err
	}
	analytic, err := st.LoadTrajectory(runID, storage.Analytic)
	if err != nil {
		return nil, nil, nil, err
	}
	return meta, numeric, analytic, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, numeric, analytic, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(numeric) == 0 && len(analytic) == 0 {
		return fmt.Errorf("run %s: %w", meta.ID, dynamo.ErrEmptyTrajectory)
	}

	stats := []viz.Stat{
		viz.Statf("run", "%s", meta.ID),
		viz.Statf("model", "%s %v", meta.Model, meta.Params),
		viz.Statf("interval", "%v", meta.Interval),
		viz.Statf("steps", "%d", meta.Steps),
		viz.Statf("samples", "%d numeric, %d analytic", len(numeric), len(analytic)),
	}
	if v, ok := meta.Metrics["max_abs_error"]; ok {
		stats = append(stats, viz.Statf("max |err|", "%.6g", v))
	}
	fmt.Println(viz.Panel("saved run", stats))
	fmt.Println()
	fmt.Println(viz.PlotComparison(numeric, analytic, 15, 80, meta.Model+": numeric (rk4) vs analytic"))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	traj, err := storage.New(dataDir).LoadTrajectory(args[0], csvKind)
	if err != nil {
		return err
	}

	return storage.WriteTrajectory(os.Stdout, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, numeric, analytic, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, meta, numeric, analytic)
}

func exportPNG(cmd *cobra.Command, args []string) error {
	meta, numeric, analytic, err := loadRun(args[0])
	if err != nil {
		return err
	}

	out := pngOut
	if out == "" {
		out = meta.ID + ".png"
	}
	if err := export.SavePNG(out, numeric, analytic, export.DefaultPlotOptions()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
