// Package lesson holds the built-in teaching sequences, ordered cells of
// prose and computation modeled on a notebook:
//
//   - units: unit-tagged quantities and parsing
//   - gas-properties: ideal-gas state, viscosity, isentropic ratios
//   - hydrostatics: depth pressure, manometers, plane surfaces
//   - standard-atmosphere: hydrostatic integration through ISA layers
//   - pipe-flow: Colebrook friction and the energy-equation solve
//   - vortex-streamfunction: vorticity, Poisson solve, streamlines
//
// A Runner renders cells to a writer with lipgloss prose, asciigraph series
// plots, and braille-canvas fields.
package lesson
