package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/models"
)

// SweepPoint is the error of one step count. Order is the observed convergence
// order relative to the previous point and 0 for the first.
type SweepPoint struct {
	N      int     `json:"n"`
	H      float64 `json:"h"`
	MaxAbs float64 `json:"max_abs"`
	RMS    float64 `json:"rms"`
	Order  float64 `json:"order"`
}

// DefaultSweep doubles the step count from 10 to 640.
var DefaultSweep = []int{10, 20, 40, 80, 160, 320, 640}

// Sweep integrates m over iv once per step count, with at most workers runs in
// flight, and measures each against m's closed form anchored at iv.Start.
func Sweep(ctx context.Context, m models.Model, y0 float64, iv dynamo.Interval, ns []int, workers int) ([]SweepPoint, error) {
	if workers < 1 {
		workers = 1
	}

	exact := models.Exact(models.Anchored(m, iv.Start), y0)
	points := make([]SweepPoint, len(ns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if n <= 0 {
				return fmt.Errorf("sweep n=%d: %w", n, dynamo.ErrParameterBounds)
			}

			traj := integrators.NewRK4().Integrate(m.Func(), y0, iv, n)
			rep, err := Compare(traj, exact)
			if err != nil {
				return fmt.Errorf("sweep n=%d: %w", n, err)
			}

			points[i] = SweepPoint{N: n, H: iv.StepSize(n), MaxAbs: rep.MaxAbs, RMS: rep.RMS}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(points, func(a, b int) bool { return points[a].N < points[b].N })
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if prev.MaxAbs > 0 && cur.MaxAbs > 0 && prev.H != cur.H {
			points[i].Order = math.Log(prev.MaxAbs/cur.MaxAbs) / math.Log(prev.H/cur.H)
		}
	}

	return points, nil
}
