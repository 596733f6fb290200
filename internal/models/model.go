package models

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/odelab/internal/dynamo"
)

// DefaultCurvePoints is the number of analytic samples drawn over an interval.
const DefaultCurvePoints = 1000

var ErrUnknownModel = errors.New("models: unknown model")

// Model is a scalar ODE with a closed-form solution.
type Model interface {
	Name() string
	Func() dynamo.Func
	// Solution evaluates the closed form at x, with y0 the value at x = 0.
	Solution(y0, x float64) float64
	Params() map[string]float64
	Validate() error
}

// Curve samples m's closed form at points evenly spaced x values covering iv,
// both ends included.
func Curve(m Model, y0 float64, iv dynamo.Interval, points int) dynamo.Trajectory {
	switch {
	case points <= 0:
		return dynamo.Trajectory{}
	case points == 1:
		return dynamo.Trajectory{{X: iv.Start, Y: m.Solution(y0, iv.Start)}}
	}

	xs := floats.Span(make([]float64, points), iv.Start, iv.End)
	curve := make(dynamo.Trajectory, points)
	for i, x := range xs {
		curve[i] = dynamo.Sample{X: x, Y: m.Solution(y0, x)}
	}
	return curve
}

// Exact returns m's closed form as a function of x alone.
func Exact(m Model, y0 float64) func(x float64) float64 {
	return func(x float64) float64 { return m.Solution(y0, x) }
}

type Registry struct {
	models map[string]func(params map[string]float64) Model
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func(map[string]float64) Model),
	}

	r.models["logistic"] = func(params map[string]float64) Model {
		rate, ok := params["r"]
		if !ok {
			rate = DefaultLogisticRate
		}
		capacity, ok := params["k"]
		if !ok {
			capacity = DefaultLogisticCapacity
		}
		return NewLogistic(rate, capacity)
	}
	r.models["exponential"] = func(params map[string]float64) Model {
		rate, ok := params["r"]
		if !ok {
			rate = 1
		}
		return NewExponential(rate)
	}

	return r
}

// Get builds the named model and validates its parameters.
func (r *Registry) Get(name string, params map[string]float64) (Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	m := fn(params)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.models[name]
	return ok
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// anchored shifts a model's closed form so y0 is the value at x0 rather than at
// x = 0. Valid for autonomous equations, which both registered models are.
type anchored struct {
	Model
	x0 float64
}

// Anchored returns m with its closed form measured from x0. Anchoring an
// already anchored model replaces its shift rather than adding to it.
func Anchored(m Model, x0 float64) Model {
	if a, ok := m.(*anchored); ok {
		m = a.Model
	}
	if x0 == 0 {
		return m
	}
	return &anchored{Model: m, x0: x0}
}

func (a *anchored) Solution(y0, x float64) float64 {
	return a.Model.Solution(y0, x-a.x0)
}
