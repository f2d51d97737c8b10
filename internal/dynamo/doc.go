// Package dynamo provides the ODE primitives behind the lab's time-dependent
// computations: point-vortex motion and atmosphere profile integration.
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step stepper interface
//   - [Simulator]: runs a system, collecting trajectory and diagnostics
//
// Systems that implement [Conserved] get an invariant-drift figure in the
// run result (point vortices conserve circulation exactly, so drift there
// measures integrator error).
package dynamo
