package models

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/dynamo"
)

const (
	DefaultLogisticRate     = 0.01
	DefaultLogisticCapacity = 100.0
)

// Logistic is dy/dx = R*y*(1 - y/K): growth at intrinsic rate R bounded by the
// carrying capacity K.
type Logistic struct {
	R float64
	K float64
}

func NewLogistic(r, k float64) *Logistic {
	return &Logistic{R: r, K: k}
}

func (l *Logistic) Name() string { return "logistic" }

// Derive ignores x; the equation is autonomous.
func (l *Logistic) Derive(x, y float64) float64 {
	return l.R * y * (1 - y/l.K)
}

func (l *Logistic) Func() dynamo.Func {
	r, k := l.R, l.K
	return func(x, y float64) float64 {
		return r * y * (1 - y/k)
	}
}

func (l *Logistic) Solution(y0, x float64) float64 {
	return y0 * l.K / (y0 + (l.K-y0)*math.Exp(-l.R*x))
}

func (l *Logistic) Params() map[string]float64 {
	return map[string]float64{"r": l.R, "k": l.K}
}

func (l *Logistic) Validate() error {
	if l.K == 0 || math.IsNaN(l.K) || math.IsInf(l.K, 0) {
		return fmt.Errorf("logistic k=%g: %w", l.K, dynamo.ErrParameterBounds)
	}
	if math.IsNaN(l.R) || math.IsInf(l.R, 0) {
		return fmt.Errorf("logistic r=%g: %w", l.R, dynamo.ErrParameterBounds)
	}
	return nil
}
