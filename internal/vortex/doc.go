// Package vortex implements the 2D vortex-dynamics material: analytic
// vortex models sampled onto grids, vorticity via the curl operator, the
// streamfunction Poisson solve, and N-point-vortex motion as an ODE system.
//
//   - [Potential], [Rankine], [LambOseen]: analytic induced-velocity models
//   - [Superpose], [Vorticity]: grid sampling and curl
//   - [Streamfunction]: sparse 5-point Laplacian inverted by conjugate gradient
//   - [Motion]: N point vortices advected by mutual induction, with the
//     Kirchhoff-Routh invariant for drift checks
package vortex
