package export

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/odelab/internal/dynamo"
)

// xys implements plotter.XYer over a trajectory.
type xys dynamo.Trajectory

func (t xys) Len() int { return len(t) }

func (t xys) XY(i int) (float64, float64) { return t[i].X, t[i].Y }

type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Logistic Differential Equation Solution",
		XLabel: "Time (hours)",
		YLabel: "Population density (g/cm^3)",
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
		DPI:    96,
	}
}

// NewPlot builds the comparison figure: numeric samples as a blue line with
// circle markers, the analytic curve as a red line. Empty trajectories are
// left out of the figure.
func NewPlot(numeric, analytic dynamo.Trajectory, opts PlotOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	if len(numeric) > 0 {
		line, points, err := plotter.NewLinePoints(xys(numeric))
		if err != nil {
			return nil, fmt.Errorf("numeric series: %w", err)
		}
		blue := color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
		line.Color = blue
		points.Shape = draw.CircleGlyph{}
		points.Color = blue
		p.Add(line, points)
		p.Legend.Add("Numerical Solution (Runge-Kutta)", line, points)
	}

	if len(analytic) > 0 {
		line, err := plotter.NewLine(xys(analytic))
		if err != nil {
			return nil, fmt.Errorf("analytic series: %w", err)
		}
		line.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("Analytical Solution", line)
	}

	return p, nil
}

// PNG renders the comparison figure to w.
func PNG(w io.Writer, numeric, analytic dynamo.Trajectory, opts PlotOptions) error {
	p, err := NewPlot(numeric, analytic, opts)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func SavePNG(path string, numeric, analytic dynamo.Trajectory, opts PlotOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PNG(f, numeric, analytic, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
