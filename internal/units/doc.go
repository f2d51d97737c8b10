// Package units provides unit-tagged scalar quantities for fluid mechanics.
//
// Every quantity type stores its value in the SI default unit and converts
// on construction and on readout:
//
//   - [Length], [Area], [Volume]: m, m², m³
//   - [Velocity]: m/s
//   - [Pressure]: Pa
//   - [Temperature]: K
//   - [Density], [SpecificWeight]: kg/m³, N/m³
//   - [DynamicViscosity], [KinematicViscosity]: Pa·s, m²/s
//   - [VolumeFlow], [MassFlow]: m³/s, kg/s
//   - [Force]: N
//   - [Head]: m of fluid column
//
// Constructors accept the non-SI units common in teaching problems (psi, atm,
// ft, °C, °F, gpm, ...) and accessors convert back out. String renders the SI
// value with its unit symbol.
package units
