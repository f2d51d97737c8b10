// Package hydro covers the hydrostatics of the lessons: pressure at depth,
// manometer chains, resultant forces and centers of pressure on submerged
// plane surfaces, buoyancy and barge stability, and the standard-atmosphere
// profile integrated as an ODE.
package hydro
