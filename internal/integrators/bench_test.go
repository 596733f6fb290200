package integrators

import (
	"testing"

	"github.com/san-kum/odelab/internal/dynamo"
)

func logistic(x, y float64) float64 { return 0.1 * y * (1 - y/40) }

func BenchmarkRK4Step(b *testing.B) {
	integrator := NewRK4()
	y := 1.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = integrator.Step(logistic, 0, y, 0.01)
	}
}

func BenchmarkRK4Integrate50(b *testing.B) {
	integrator := NewRK4()
	iv := dynamo.Interval{Start: 1, End: 200}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integrator.Integrate(logistic, 1, iv, 50)
	}
}

func BenchmarkRK4Integrate10000(b *testing.B) {
	integrator := NewRK4()
	iv := dynamo.Interval{Start: 1, End: 200}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integrator.Integrate(logistic, 1, iv, 10000)
	}
}
