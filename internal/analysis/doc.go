// Package analysis measures how well an RK4 trajectory tracks a closed-form
// solution.
//
//   - [Compare]: pointwise absolute error against an exact solution
//   - [Sweep]: maximum error and observed convergence order across step counts
//   - [Finite]: locate the first NaN or Inf sample
//
// The integrator never checks its own output; the functions here are the
// after-the-fact check.
package analysis
