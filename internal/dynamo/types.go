package dynamo

import (
	"fmt"
	"math"
)

// Func is the derivative dy/dx of a scalar first-order ODE.
type Func func(x, y float64) float64

// Sample is one point on an approximated solution curve.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s Sample) IsFinite() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) && !math.IsNaN(s.Y) && !math.IsInf(s.Y, 0)
}

// Trajectory is an ordered sequence of samples, increasing in x.
type Trajectory []Sample

func (t Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(t))
	copy(c, t)
	return c
}

func (t Trajectory) Xs() []float64 {
	xs := make([]float64, len(t))
	for i, s := range t {
		xs[i] = s.X
	}
	return xs
}

func (t Trajectory) Ys() []float64 {
	ys := make([]float64, len(t))
	for i, s := range t {
		ys[i] = s.Y
	}
	return ys
}

// IsValid reports whether every sample is finite.
func (t Trajectory) IsValid() bool {
	for _, s := range t {
		if !s.IsFinite() {
			return false
		}
	}
	return true
}

// Last returns the final sample. It returns ErrEmptyTrajectory when t is empty.
func (t Trajectory) Last() (Sample, error) {
	if len(t) == 0 {
		return Sample{}, ErrEmptyTrajectory
	}
	return t[len(t)-1], nil
}

// Interval is the integration domain. Start <= End is assumed.
type Interval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// StepSize returns (End-Start)/n. n must be positive.
func (iv Interval) StepSize(n int) float64 {
	return (iv.End - iv.Start) / float64(n)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Start, iv.End)
}
