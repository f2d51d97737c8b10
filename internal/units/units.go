package units

import "fmt"

// Conversion factors to SI.
const (
	footToMeter    = 0.3048
	inchToMeter    = 0.0254
	mileToMeter    = 1609.344
	psiToPascal    = 6894.757293168
	atmToPascal    = 101325.0
	barToPascal    = 1.0e5
	mmHgToPascal   = 133.322387415
	gallonToCubicM = 3.785411784e-3
	lbfToNewton    = 4.4482216152605
	slugToKg       = 14.59390294
)

// Length in metres.
type Length float64

func LengthFromMeters(v float64) Length      { return Length(v) }
func LengthFromMillimeters(v float64) Length { return Length(v / 1000) }
func LengthFromFeet(v float64) Length        { return Length(v * footToMeter) }
func LengthFromInches(v float64) Length      { return Length(v * inchToMeter) }
func LengthFromKilometers(v float64) Length  { return Length(v * 1000) }

func (l Length) Meters() float64      { return float64(l) }
func (l Length) Millimeters() float64 { return float64(l) * 1000 }
func (l Length) Feet() float64        { return float64(l) / footToMeter }
func (l Length) Inches() float64      { return float64(l) / inchToMeter }
func (l Length) Kilometers() float64  { return float64(l) / 1000 }
func (l Length) String() string       { return fmt.Sprintf("%g m", float64(l)) }

// Area in square metres.
type Area float64

func AreaFromSquareMeters(v float64) Area { return Area(v) }
func AreaFromSquareFeet(v float64) Area   { return Area(v * footToMeter * footToMeter) }

func (a Area) SquareMeters() float64 { return float64(a) }
func (a Area) SquareFeet() float64   { return float64(a) / (footToMeter * footToMeter) }
func (a Area) String() string        { return fmt.Sprintf("%g m²", float64(a)) }

// Volume in cubic metres.
type Volume float64

func VolumeFromCubicMeters(v float64) Volume { return Volume(v) }
func VolumeFromLiters(v float64) Volume      { return Volume(v / 1000) }
func VolumeFromGallons(v float64) Volume     { return Volume(v * gallonToCubicM) }

func (v Volume) CubicMeters() float64 { return float64(v) }
func (v Volume) Liters() float64      { return float64(v) * 1000 }
func (v Volume) Gallons() float64     { return float64(v) / gallonToCubicM }
func (v Volume) String() string       { return fmt.Sprintf("%g m³", float64(v)) }

// Velocity in metres per second.
type Velocity float64

func VelocityFromMetersPerSecond(v float64) Velocity { return Velocity(v) }
func VelocityFromFeetPerSecond(v float64) Velocity   { return Velocity(v * footToMeter) }
func VelocityFromKmPerHour(v float64) Velocity       { return Velocity(v / 3.6) }
func VelocityFromMilesPerHour(v float64) Velocity    { return Velocity(v * mileToMeter / 3600) }

func (v Velocity) MetersPerSecond() float64 { return float64(v) }
func (v Velocity) FeetPerSecond() float64   { return float64(v) / footToMeter }
func (v Velocity) KmPerHour() float64       { return float64(v) * 3.6 }
func (v Velocity) String() string           { return fmt.Sprintf("%g m/s", float64(v)) }

// Pressure in pascals. Values are gauge or absolute by convention of the
// caller; the type does not track the datum.
type Pressure float64

func PressureFromPascals(v float64) Pressure     { return Pressure(v) }
func PressureFromKilopascals(v float64) Pressure { return Pressure(v * 1000) }
func PressureFromPSI(v float64) Pressure         { return Pressure(v * psiToPascal) }
func PressureFromAtm(v float64) Pressure         { return Pressure(v * atmToPascal) }
func PressureFromBar(v float64) Pressure         { return Pressure(v * barToPascal) }
func PressureFromMmHg(v float64) Pressure        { return Pressure(v * mmHgToPascal) }

func (p Pressure) Pascals() float64     { return float64(p) }
func (p Pressure) Kilopascals() float64 { return float64(p) / 1000 }
func (p Pressure) PSI() float64         { return float64(p) / psiToPascal }
func (p Pressure) Atm() float64         { return float64(p) / atmToPascal }
func (p Pressure) Bar() float64         { return float64(p) / barToPascal }
func (p Pressure) MmHg() float64        { return float64(p) / mmHgToPascal }
func (p Pressure) String() string       { return fmt.Sprintf("%g Pa", float64(p)) }

// Temperature in kelvins.
type Temperature float64

func TemperatureFromKelvin(v float64) Temperature     { return Temperature(v) }
func TemperatureFromCelsius(v float64) Temperature    { return Temperature(v + 273.15) }
func TemperatureFromFahrenheit(v float64) Temperature { return Temperature((v-32)/1.8 + 273.15) }
func TemperatureFromRankine(v float64) Temperature    { return Temperature(v / 1.8) }

func (t Temperature) Kelvin() float64     { return float64(t) }
func (t Temperature) Celsius() float64    { return float64(t) - 273.15 }
func (t Temperature) Fahrenheit() float64 { return (float64(t)-273.15)*1.8 + 32 }
func (t Temperature) Rankine() float64    { return float64(t) * 1.8 }
func (t Temperature) String() string      { return fmt.Sprintf("%g K", float64(t)) }

// Density in kilograms per cubic metre.
type Density float64

func DensityFromKgPerCubicMeter(v float64) Density   { return Density(v) }
func DensityFromSlugPerCubicFoot(v float64) Density  { return Density(v * slugToKg / (footToMeter * footToMeter * footToMeter)) }
func DensityFromGramsPerCubicCm(v float64) Density   { return Density(v * 1000) }

func (d Density) KgPerCubicMeter() float64  { return float64(d) }
func (d Density) SlugPerCubicFoot() float64 { return float64(d) * (footToMeter * footToMeter * footToMeter) / slugToKg }
func (d Density) String() string            { return fmt.Sprintf("%g kg/m³", float64(d)) }

// SpecificWeight in newtons per cubic metre.
type SpecificWeight float64

func SpecificWeightFromNPerCubicMeter(v float64) SpecificWeight { return SpecificWeight(v) }
func SpecificWeightFromLbfPerCubicFoot(v float64) SpecificWeight {
	return SpecificWeight(v * lbfToNewton / (footToMeter * footToMeter * footToMeter))
}

func (w SpecificWeight) NPerCubicMeter() float64 { return float64(w) }
func (w SpecificWeight) LbfPerCubicFoot() float64 {
	return float64(w) * (footToMeter * footToMeter * footToMeter) / lbfToNewton
}
func (w SpecificWeight) String() string { return fmt.Sprintf("%g N/m³", float64(w)) }

// DynamicViscosity in pascal-seconds.
type DynamicViscosity float64

func DynamicViscosityFromPascalSeconds(v float64) DynamicViscosity { return DynamicViscosity(v) }
func DynamicViscosityFromPoise(v float64) DynamicViscosity         { return DynamicViscosity(v / 10) }
func DynamicViscosityFromCentipoise(v float64) DynamicViscosity    { return DynamicViscosity(v / 1000) }

func (m DynamicViscosity) PascalSeconds() float64 { return float64(m) }
func (m DynamicViscosity) Poise() float64         { return float64(m) * 10 }
func (m DynamicViscosity) Centipoise() float64    { return float64(m) * 1000 }
func (m DynamicViscosity) String() string         { return fmt.Sprintf("%g Pa·s", float64(m)) }

// KinematicViscosity in square metres per second.
type KinematicViscosity float64

func KinematicViscosityFromSquareMetersPerSecond(v float64) KinematicViscosity {
	return KinematicViscosity(v)
}
func KinematicViscosityFromStokes(v float64) KinematicViscosity {
	return KinematicViscosity(v / 1.0e4)
}
func KinematicViscosityFromCentistokes(v float64) KinematicViscosity {
	return KinematicViscosity(v / 1.0e6)
}

func (n KinematicViscosity) SquareMetersPerSecond() float64 { return float64(n) }
func (n KinematicViscosity) Stokes() float64                { return float64(n) * 1.0e4 }
func (n KinematicViscosity) Centistokes() float64           { return float64(n) * 1.0e6 }
func (n KinematicViscosity) String() string                 { return fmt.Sprintf("%g m²/s", float64(n)) }

// VolumeFlow in cubic metres per second.
type VolumeFlow float64

func VolumeFlowFromCubicMetersPerSecond(v float64) VolumeFlow { return VolumeFlow(v) }
func VolumeFlowFromLitersPerSecond(v float64) VolumeFlow      { return VolumeFlow(v / 1000) }
func VolumeFlowFromGPM(v float64) VolumeFlow                  { return VolumeFlow(v * gallonToCubicM / 60) }
func VolumeFlowFromCFS(v float64) VolumeFlow {
	return VolumeFlow(v * footToMeter * footToMeter * footToMeter)
}

func (q VolumeFlow) CubicMetersPerSecond() float64 { return float64(q) }
func (q VolumeFlow) LitersPerSecond() float64      { return float64(q) * 1000 }
func (q VolumeFlow) GPM() float64                  { return float64(q) * 60 / gallonToCubicM }
func (q VolumeFlow) CFS() float64 {
	return float64(q) / (footToMeter * footToMeter * footToMeter)
}
func (q VolumeFlow) String() string { return fmt.Sprintf("%g m³/s", float64(q)) }

// MassFlow in kilograms per second.
type MassFlow float64

func MassFlowFromKgPerSecond(v float64) MassFlow  { return MassFlow(v) }
func MassFlowFromLbmPerSecond(v float64) MassFlow { return MassFlow(v * 0.45359237) }

func (m MassFlow) KgPerSecond() float64  { return float64(m) }
func (m MassFlow) LbmPerSecond() float64 { return float64(m) / 0.45359237 }
func (m MassFlow) String() string        { return fmt.Sprintf("%g kg/s", float64(m)) }

// Force in newtons.
type Force float64

func ForceFromNewtons(v float64) Force     { return Force(v) }
func ForceFromKilonewtons(v float64) Force { return Force(v * 1000) }
func ForceFromLbf(v float64) Force         { return Force(v * lbfToNewton) }

func (f Force) Newtons() float64     { return float64(f) }
func (f Force) Kilonewtons() float64 { return float64(f) / 1000 }
func (f Force) Lbf() float64         { return float64(f) / lbfToNewton }
func (f Force) String() string       { return fmt.Sprintf("%g N", float64(f)) }

// Head is an energy per unit weight, expressed as metres of fluid column.
type Head float64

func HeadFromMeters(v float64) Head { return Head(v) }
func HeadFromFeet(v float64) Head   { return Head(v * footToMeter) }

func (h Head) Meters() float64 { return float64(h) }
func (h Head) Feet() float64   { return float64(h) / footToMeter }
func (h Head) String() string  { return fmt.Sprintf("%g m", float64(h)) }
