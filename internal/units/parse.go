package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownUnit indicates a unit symbol with no registered conversion.
var ErrUnknownUnit = errors.New("units: unknown unit symbol")

func splitQuantity(s string) (float64, string, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("units: empty quantity")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("units: bad value %q: %w", fields[0], err)
	}
	if len(fields) == 1 {
		return v, "", nil
	}
	return v, strings.Join(fields[1:], ""), nil
}

// ParsePressure parses strings like "101.325 kPa" or "14.7 psi".
// A bare number is taken as pascals.
func ParsePressure(s string) (Pressure, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(unit) {
	case "", "pa":
		return PressureFromPascals(v), nil
	case "kpa":
		return PressureFromKilopascals(v), nil
	case "psi":
		return PressureFromPSI(v), nil
	case "atm":
		return PressureFromAtm(v), nil
	case "bar":
		return PressureFromBar(v), nil
	case "mmhg":
		return PressureFromMmHg(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// ParseLength parses strings like "2.5 m", "10 ft", "150 mm".
func ParseLength(s string) (Length, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(unit) {
	case "", "m":
		return LengthFromMeters(v), nil
	case "mm":
		return LengthFromMillimeters(v), nil
	case "km":
		return LengthFromKilometers(v), nil
	case "ft":
		return LengthFromFeet(v), nil
	case "in":
		return LengthFromInches(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// ParseTemperature parses strings like "20 C", "293.15 K", "68 F".
func ParseTemperature(s string) (Temperature, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch strings.ToUpper(strings.TrimPrefix(unit, "°")) {
	case "", "K":
		return TemperatureFromKelvin(v), nil
	case "C":
		return TemperatureFromCelsius(v), nil
	case "F":
		return TemperatureFromFahrenheit(v), nil
	case "R":
		return TemperatureFromRankine(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// ParseVolumeFlow parses strings like "0.05 m3/s", "300 gpm", "12 L/s".
func ParseVolumeFlow(s string) (VolumeFlow, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(unit) {
	case "", "m3/s", "m^3/s":
		return VolumeFlowFromCubicMetersPerSecond(v), nil
	case "l/s":
		return VolumeFlowFromLitersPerSecond(v), nil
	case "gpm":
		return VolumeFlowFromGPM(v), nil
	case "cfs", "ft3/s":
		return VolumeFlowFromCFS(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}
