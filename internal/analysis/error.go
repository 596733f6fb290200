package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/odelab/internal/dynamo"
)

// Report summarises the absolute error of a trajectory against an exact
// solution.
type Report struct {
	Errors  []float64 `json:"-"`
	Samples int       `json:"samples"`
	MaxAbs  float64   `json:"max_abs"`
	MeanAbs float64   `json:"mean_abs"`
	RMS     float64   `json:"rms"`
	WorstX  float64   `json:"worst_x"`
}

// Metrics flattens the report for run metadata.
func (r Report) Metrics() map[string]float64 {
	return map[string]float64{
		"max_abs_error":  r.MaxAbs,
		"mean_abs_error": r.MeanAbs,
		"rms_error":      r.RMS,
		"worst_x":        r.WorstX,
	}
}

func Compare(numeric dynamo.Trajectory, exact func(x float64) float64) (Report, error) {
	if len(numeric) == 0 {
		return Report{}, dynamo.ErrEmptyTrajectory
	}

	errs := make([]float64, len(numeric))
	for i, s := range numeric {
		errs[i] = math.Abs(s.Y - exact(s.X))
	}

	n := float64(len(errs))
	worst := floats.MaxIdx(errs)
	return Report{
		Errors:  errs,
		Samples: len(errs),
		MaxAbs:  errs[worst],
		MeanAbs: floats.Sum(errs) / n,
		RMS:     floats.Norm(errs, 2) / math.Sqrt(n),
		WorstX:  numeric[worst].X,
	}, nil
}

// Finite returns the index of the first non-finite sample as a SampleError, or
// -1 and nil when every sample is finite.
func Finite(traj dynamo.Trajectory) (int, error) {
	for i, s := range traj {
		if !s.IsFinite() {
			return i, &dynamo.SampleError{Index: i, Sample: s, Wrapped: dynamo.ErrInvalidState}
		}
	}
	return -1, nil
}
