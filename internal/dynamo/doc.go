// Package dynamo provides the core value types shared by the integrator and
// its consumers.
//
//   - [Func]: right-hand side of a scalar first-order ODE, dy/dx = f(x, y)
//   - [Sample]: one (x, y) point of an approximated solution
//   - [Trajectory]: ordered samples, increasing in x
//   - [Interval]: the integration domain [Start, End]
//
// # Example
//
//	f := models.NewLogistic(0.1, 40).Func()
//	traj := integrators.NewRK4().Integrate(f, 1, dynamo.Interval{Start: 1, End: 200}, 50)
//
// Values in this package carry no behaviour beyond small helpers; none of them
// guard against NaN or Inf. Use [Trajectory.IsValid] after the fact.
package dynamo
