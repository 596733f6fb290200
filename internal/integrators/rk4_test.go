package integrators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
)

func growth(x, y float64) float64 { return y }

var _ = Describe("RK4", func() {
	var rk4 *integrators.RK4
	unit := dynamo.Interval{Start: 0, End: 1}

	BeforeEach(func() {
		rk4 = integrators.NewRK4()
	})

	DescribeTable("returns exactly n samples",
		func(n int) {
			Expect(rk4.Integrate(growth, 1, unit, n)).To(HaveLen(n))
		},
		Entry("one step", 1),
		Entry("ten steps", 10),
		Entry("201 steps", 201),
		Entry("1000 steps", 1000),
	)

	It("starts exactly at the initial condition regardless of f", func() {
		wild := func(x, y float64) float64 { return math.Sin(x*y) * 1e6 }
		traj := rk4.Integrate(wild, 3.25, dynamo.Interval{Start: -2, End: 7}, 13)

		Expect(traj[0]).To(Equal(dynamo.Sample{X: -2, Y: 3.25}))
	})

	It("approximates e^x within 0.01 with ten steps", func() {
		for _, s := range rk4.Integrate(growth, 1, unit, 10) {
			Expect(s.Y).To(BeNumerically("~", math.Exp(s.X), 0.01))
		}
	})

	It("approximates e^x at every one of 201 samples", func() {
		traj := rk4.Integrate(growth, 1, unit, 201)

		Expect(traj).To(HaveLen(201))
		for _, s := range traj {
			Expect(math.Abs(s.Y - math.Exp(s.X))).To(BeNumerically("<", 0.01))
		}
	})

	It("never records the sample at the interval end", func() {
		n := 10
		h := unit.StepSize(n)
		traj := rk4.Integrate(growth, 1, unit, n)

		last := traj[len(traj)-1]
		Expect(last.X).To(BeNumerically("~", unit.Start+float64(n-1)*h, 1e-12))
		for _, s := range traj {
			Expect(s.X).NotTo(BeNumerically("~", unit.End, 1e-9))
		}
	})

	It("places sample i at start + i*h", func() {
		iv := dynamo.Interval{Start: 1, End: 200}
		traj := rk4.Integrate(growth, 1, iv, 50)
		h := iv.StepSize(50)

		for i, s := range traj {
			Expect(s.X).To(BeNumerically("~", iv.Start+float64(i)*h, 1e-9))
		}
	})

	It("returns an empty trajectory for non-positive step counts", func() {
		calls := 0
		f := func(x, y float64) float64 { calls++; return y }

		Expect(rk4.Integrate(f, 1, unit, 0)).To(BeEmpty())
		Expect(rk4.Integrate(f, 1, unit, -4)).To(BeEmpty())
		Expect(rk4.Integrate(f, 1, unit, 0)).NotTo(BeNil())
		Expect(calls).To(BeZero())
	})

	It("calls f exactly four times per step", func() {
		calls := 0
		f := func(x, y float64) float64 { calls++; return -y }

		rk4.Integrate(f, 1, unit, 25)
		Expect(calls).To(Equal(100))
		Expect(rk4.Evaluations()).To(Equal(100))
	})

	It("evaluates f at the RK4 abscissae", func() {
		var xs []float64
		f := func(x, y float64) float64 { xs = append(xs, x); return 0 }

		rk4.Integrate(f, 0, dynamo.Interval{Start: 0, End: 2}, 1)
		Expect(xs).To(Equal([]float64{0, 1, 1, 2}))
	})

	It("propagates non-finite derivatives without detection", func() {
		f := func(x, y float64) float64 { return math.NaN() }
		traj := rk4.Integrate(f, 1, unit, 3)

		Expect(traj).To(HaveLen(3))
		Expect(traj[0].Y).To(Equal(1.0))
		Expect(math.IsNaN(traj[1].Y)).To(BeTrue())
		Expect(traj.IsValid()).To(BeFalse())
	})

	It("is exact for linear solutions", func() {
		f := func(x, y float64) float64 { return 2 }
		for _, s := range rk4.Integrate(f, 1, unit, 8) {
			Expect(s.Y).To(BeNumerically("~", 1+2*s.X, 1e-12))
		}
	})

	Context("with IncludeEnd", func() {
		BeforeEach(func() {
			rk4.IncludeEnd = true
		})

		It("appends the final updated sample at the interval end", func() {
			traj := rk4.Integrate(growth, 1, unit, 10)

			Expect(traj).To(HaveLen(11))
			last := traj[len(traj)-1]
			Expect(last.X).To(Equal(unit.End))
			Expect(last.Y).To(BeNumerically("~", math.E, 1e-5))
		})

		It("still returns nothing for zero steps", func() {
			Expect(rk4.Integrate(growth, 1, unit, 0)).To(BeEmpty())
		})
	})

	Describe("Final", func() {
		It("matches the value appended by IncludeEnd", func() {
			final := rk4.Final(growth, 1, unit, 20)

			rk4.IncludeEnd = true
			traj := rk4.Integrate(growth, 1, unit, 20)
			Expect(traj[len(traj)-1].Y).To(Equal(final))
		})

		It("returns y0 for zero steps", func() {
			Expect(rk4.Final(growth, 7, unit, 0)).To(Equal(7.0))
		})
	})

	Describe("Step", func() {
		It("agrees with the Taylor expansion of e^h", func() {
			h := 0.1
			y := rk4.Step(growth, 0, 1, h)
			taylor := 1 + h + h*h/2 + h*h*h/6 + h*h*h*h/24

			Expect(y).To(BeNumerically("~", taylor, 1e-15))
		})
	})
})
