package integrators

import "github.com/san-kum/odelab/internal/dynamo"

// RK4 is the classical fixed-step fourth-order Runge-Kutta integrator for
// scalar ODEs. An RK4 is not safe for concurrent use; it keeps a derivative
// evaluation counter for the last Integrate call.
type RK4 struct {
	// IncludeEnd appends the sample at x = End after the last update. By default
	// the trajectory holds exactly n samples and the final updated y is dropped.
	IncludeEnd bool

	evals int
}

func NewRK4() *RK4 {
	return &RK4{}
}

// Step advances y by one step of size h from x and returns the new y.
func (r *RK4) Step(f dynamo.Func, x, y, h float64) float64 {
	half := h * 0.5

	k1 := h * f(x, y)
	k2 := h * f(x+half, y+k1*0.5)
	k3 := h * f(x+half, y+k2*0.5)
	k4 := h * f(x+h, y+k3)
	r.evals += 4

	return y + (k1+2*k2+2*k3+k4)/6.0
}

// Integrate samples the solution of dy/dx = f(x, y), y(iv.Start) = y0, over iv
// using n equal steps. Each sample records the state at the start of its step,
// so the result has exactly n samples and none at x = iv.End unless IncludeEnd
// is set. n <= 0 yields an empty trajectory.
//
// Non-finite values returned by f are propagated, not detected.
func (r *RK4) Integrate(f dynamo.Func, y0 float64, iv dynamo.Interval, n int) dynamo.Trajectory {
	r.evals = 0
	if n <= 0 {
		return dynamo.Trajectory{}
	}

	size := n
	if r.IncludeEnd {
		size++
	}
	traj := make(dynamo.Trajectory, 0, size)

	h := iv.StepSize(n)
	x, y := iv.Start, y0
	for i := 0; i < n; i++ {
		next := r.Step(f, x, y, h)
		traj = append(traj, dynamo.Sample{X: x, Y: y})
		y = next
		x += h
	}

	if r.IncludeEnd {
		traj = append(traj, dynamo.Sample{X: iv.End, Y: y})
	}

	return traj
}

// Final returns y after all n updates, the value Integrate drops by default.
// n <= 0 returns y0.
func (r *RK4) Final(f dynamo.Func, y0 float64, iv dynamo.Interval, n int) float64 {
	r.evals = 0
	if n <= 0 {
		return y0
	}

	h := iv.StepSize(n)
	x, y := iv.Start, y0
	for i := 0; i < n; i++ {
		y = r.Step(f, x, y, h)
		x += h
	}
	return y
}

// Evaluations returns the number of derivative calls made by the last
// Integrate or Final call, plus any Step calls since.
func (r *RK4) Evaluations() int {
	return r.evals
}
