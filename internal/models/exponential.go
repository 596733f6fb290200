package models

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/dynamo"
)

// Exponential is dy/dx = R*y.
type Exponential struct {
	R float64
}

func NewExponential(r float64) *Exponential {
	return &Exponential{R: r}
}

func (e *Exponential) Name() string { return "exponential" }

func (e *Exponential) Func() dynamo.Func {
	r := e.R
	return func(x, y float64) float64 { return r * y }
}

func (e *Exponential) Solution(y0, x float64) float64 {
	return y0 * math.Exp(e.R*x)
}

func (e *Exponential) Params() map[string]float64 {
	return map[string]float64{"r": e.R}
}

func (e *Exponential) Validate() error {
	if math.IsNaN(e.R) || math.IsInf(e.R, 0) {
		return fmt.Errorf("exponential r=%g: %w", e.R, dynamo.ErrParameterBounds)
	}
	return nil
}
