package viz

import (
	"slices"
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/dynamo"
)

// Resample linearly interpolates curve at xs. curve must be monotonic in x and
// may run in either direction; values outside its range are clamped to the
// nearest end.
func Resample(curve dynamo.Trajectory, xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(curve) == 0 {
		return out
	}
	if curve[0].X > curve[len(curve)-1].X {
		curve = curve.Clone()
		slices.Reverse(curve)
	}

	for i, x := range xs {
		j := sort.Search(len(curve), func(k int) bool { return curve[k].X >= x })
		switch {
		case j == 0:
			out[i] = curve[0].Y
		case j == len(curve):
			out[i] = curve[len(curve)-1].Y
		default:
			a, b := curve[j-1], curve[j]
			t := (x - a.X) / (b.X - a.X)
			out[i] = a.Y + t*(b.Y-a.Y)
		}
	}
	return out
}

// PlotComparison overlays the numeric trajectory and the analytic curve,
// resampled at the numeric x values, on one asciigraph chart. With no numeric
// samples only the analytic curve is drawn; with neither it returns "".
func PlotComparison(numeric, analytic dynamo.Trajectory, height, width int, caption string) string {
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.Precision(2),
	}

	switch {
	case len(numeric) > 0 && len(analytic) > 0:
		series := [][]float64{numeric.Ys(), Resample(analytic, numeric.Xs())}
		opts = append(opts,
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.SeriesLegends("numeric (rk4)", "analytic"),
		)
		return asciigraph.PlotMany(series, opts...)
	case len(numeric) > 0:
		return asciigraph.Plot(numeric.Ys(), opts...)
	case len(analytic) > 0:
		return asciigraph.Plot(analytic.Ys(), opts...)
	}
	return ""
}

// PlotErrors charts the pointwise absolute error.
func PlotErrors(errs []float64, height, width int) string {
	if len(errs) == 0 {
		return ""
	}
	return asciigraph.Plot(errs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("absolute error |numeric - analytic|"),
		asciigraph.Precision(4),
	)
}
