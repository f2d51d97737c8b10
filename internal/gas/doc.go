// Package gas evaluates ideal-gas and isentropic-flow properties for a small
// catalog of named gases.
//
//   - [Gas]: gamma, specific gas constant, Sutherland viscosity reference
//   - [Gas.Density]: ideal gas law
//   - [Gas.SoundSpeed], [Gas.Viscosity], [Gas.Cp], [Gas.Cv]
//   - [Gas.Isentropic], [Gas.MachFromAreaRatio]: compressible-flow ratios
//
// Retrieve catalog entries with [Lookup] ("air", "helium", "co2", ...).
package gas
