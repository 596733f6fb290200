package models

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/dynamo"
)

func TestLogisticGrowthSign(t *testing.T) {
	l := NewLogistic(0.1, 50)

	if d := l.Derive(0, 10); d <= 0 {
		t.Errorf("expected positive growth below capacity, got %f", d)
	}
	if d := l.Derive(0, 100); d >= 0 {
		t.Errorf("expected negative growth above capacity, got %f", d)
	}
}

func TestLogisticEquilibrium(t *testing.T) {
	l := NewLogistic(0.1, 50)

	for _, y := range []float64{0, l.K} {
		if d := l.Derive(0, y); math.Abs(d) > 1e-12 {
			t.Errorf("expected equilibrium at y=%f, got derivative %e", y, d)
		}
	}
}

func TestLogisticFuncMatchesDerive(t *testing.T) {
	l := NewLogistic(0.3, 12)
	f := l.Func()

	for _, y := range []float64{-1, 0, 3, 12, 20} {
		if got, want := f(5, y), l.Derive(5, y); got != want {
			t.Errorf("y=%f: closure %f != derive %f", y, got, want)
		}
	}
}

func TestLogisticFuncCapturesParams(t *testing.T) {
	l := NewLogistic(0.1, 50)
	f := l.Func()
	l.R = 10

	if got := f(0, 10); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("closure should keep r=0.1, got derivative %f", got)
	}
}

func TestLogisticSolutionInitialCondition(t *testing.T) {
	l := NewLogistic(0.1, 100)
	curve := Curve(l, 5, dynamo.Interval{Start: 0, End: 10}, DefaultCurvePoints)

	if curve[0].X != 0 {
		t.Errorf("expected first x=0, got %f", curve[0].X)
	}
	if math.Abs(curve[0].Y-5) > 1e-9 {
		t.Errorf("expected y0=5, got %f", curve[0].Y)
	}
}

func TestLogisticSolutionAsymptote(t *testing.T) {
	l := NewLogistic(0.1, 100)
	curve := Curve(l, 5, dynamo.Interval{Start: 0, End: 100}, DefaultCurvePoints)

	last := curve[len(curve)-1]
	if math.Abs(last.Y-100) > 0.1 {
		t.Errorf("expected solution near capacity 100, got %f", last.Y)
	}
}

func TestLogisticSolutionMonotonic(t *testing.T) {
	l := NewLogistic(0.1, 100)
	curve := Curve(l, 5, dynamo.Interval{Start: 0, End: 10}, DefaultCurvePoints)

	for i := 1; i < len(curve); i++ {
		if curve[i].Y < curve[i-1].Y {
			t.Fatalf("solution decreased at x=%f: %f < %f", curve[i].X, curve[i].Y, curve[i-1].Y)
		}
	}
}

func TestCurveSampling(t *testing.T) {
	l := NewLogistic(0.1, 40)
	iv := dynamo.Interval{Start: 1, End: 200}
	curve := Curve(l, 1, iv, DefaultCurvePoints)

	if len(curve) != DefaultCurvePoints {
		t.Fatalf("expected %d samples, got %d", DefaultCurvePoints, len(curve))
	}
	if curve[0].X != iv.Start || math.Abs(curve[len(curve)-1].X-iv.End) > 1e-9 {
		t.Errorf("expected curve to span %v, got [%f, %f]", iv, curve[0].X, curve[len(curve)-1].X)
	}

	step := iv.Length() / float64(DefaultCurvePoints-1)
	for i := 1; i < len(curve); i++ {
		if d := curve[i].X - curve[i-1].X; math.Abs(d-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %f", i, d)
		}
	}
}

func TestCurveDegeneratePoints(t *testing.T) {
	l := NewLogistic(0.1, 40)
	iv := dynamo.Interval{Start: 0, End: 1}

	if c := Curve(l, 1, iv, 0); len(c) != 0 {
		t.Errorf("expected empty curve, got %d samples", len(c))
	}
	if c := Curve(l, 1, iv, 1); len(c) != 1 || c[0].X != 0 {
		t.Errorf("expected single sample at start, got %v", c)
	}
}

func TestLogisticValidate(t *testing.T) {
	if err := NewLogistic(0.1, 0).Validate(); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for k=0, got %v", err)
	}
	if err := NewLogistic(math.NaN(), 10).Validate(); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for r=NaN, got %v", err)
	}
	if err := NewLogistic(0.1, 40).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
