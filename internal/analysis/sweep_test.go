package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/models"
)

func TestSweepFourthOrder(t *testing.T) {
	m := models.NewExponential(1)
	iv := dynamo.Interval{Start: 0, End: 1}

	points, err := Sweep(context.Background(), m, 1, iv, []int{80, 10, 40, 20}, 2)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	for i, want := range []int{10, 20, 40, 80} {
		if points[i].N != want {
			t.Errorf("point %d: expected n=%d, got %d", i, want, points[i].N)
		}
	}

	if points[0].Order != 0 {
		t.Errorf("expected no order for first point, got %f", points[0].Order)
	}
	for _, p := range points[1:] {
		if p.Order < 3.5 || p.Order > 4.5 {
			t.Errorf("n=%d: expected order ~4, got %f", p.N, p.Order)
		}
	}
	for i := 1; i < len(points); i++ {
		if points[i].MaxAbs >= points[i-1].MaxAbs {
			t.Errorf("error did not shrink from n=%d to n=%d", points[i-1].N, points[i].N)
		}
	}
}

func TestSweepLogisticAnchored(t *testing.T) {
	m := models.NewLogistic(0.1, 40)
	iv := dynamo.Interval{Start: 1, End: 200}

	points, err := Sweep(context.Background(), m, 1, iv, []int{50, 100}, 1)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for _, p := range points {
		if p.MaxAbs > 0.05 {
			t.Errorf("n=%d: error against anchored solution too large: %f", p.N, p.MaxAbs)
		}
	}
}

func TestSweepAlignedConfig(t *testing.T) {
	for _, align := range []bool{false, true} {
		cfg := config.GetPreset("logistic", "reference")
		cfg.Interval.Start = 20
		cfg.AlignStart = align

		m, err := cfg.BuildModel()
		if err != nil {
			t.Fatalf("align=%t: build model: %v", align, err)
		}
		points, err := Sweep(context.Background(), m, cfg.Y0, cfg.Interval, []int{50, 100}, 2)
		if err != nil {
			t.Fatalf("align=%t: sweep failed: %v", align, err)
		}
		if points[0].MaxAbs > 0.05 {
			t.Errorf("align=%t: n=50 error too large: %f", align, points[0].MaxAbs)
		}
		if order := points[1].Order; order < 3.5 || order > 4.5 {
			t.Errorf("align=%t: expected order near 4, got %f", align, order)
		}
	}
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, models.NewExponential(1), 1, dynamo.Interval{Start: 0, End: 1}, DefaultSweep, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSweepInvalidStepCount(t *testing.T) {
	_, err := Sweep(context.Background(), models.NewExponential(1), 1, dynamo.Interval{Start: 0, End: 1}, []int{10, 0}, 1)
	if !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}
