package hydro

import (
	"math"
	"testing"

	"github.com/san-kum/flowlab/internal/units"
)

func TestISATemperature(t *testing.T) {
	tests := []struct {
		z    float64 // m
		want float64 // K
	}{
		{0, 288.15},
		{5000, 255.65},
		{11000, 216.65},
		{15000, 216.65}, // isothermal stratosphere
		{25000, 221.65},
	}
	for _, tt := range tests {
		got := ISATemperature(units.LengthFromMeters(tt.z)).Kelvin()
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("T(%g m) = %f K, want %f", tt.z, got, tt.want)
		}
	}
}

func TestAtmosphereProfileTropopause(t *testing.T) {
	points, err := AtmosphereProfile(units.LengthFromKilometers(11), units.LengthFromMeters(100))
	if err != nil {
		t.Fatalf("AtmosphereProfile: %v", err)
	}
	last := points[len(points)-1]
	if math.Abs(last.Altitude.Meters()-11000) > 1e-9 {
		t.Fatalf("profile should end at 11 km, got %f", last.Altitude.Meters())
	}
	// Published ISA tropopause pressure: 22632 Pa.
	if math.Abs(last.Pressure.Pascals()-22632) > 50 {
		t.Errorf("p(11 km) should be about 22632 Pa, got %f", last.Pressure.Pascals())
	}
	if math.Abs(last.Density.KgPerCubicMeter()-0.3639) > 0.002 {
		t.Errorf("rho(11 km) should be about 0.364 kg/m3, got %f", last.Density.KgPerCubicMeter())
	}
}

func TestAtmosphereProfileMonotonic(t *testing.T) {
	points, err := AtmosphereProfile(units.LengthFromKilometers(20), units.LengthFromMeters(200))
	if err != nil {
		t.Fatalf("AtmosphereProfile: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Pressure.Pascals() >= points[i-1].Pressure.Pascals() {
			t.Fatalf("pressure must decrease with altitude (row %d)", i)
		}
	}
}

func TestAtmosphereProfileBadArgs(t *testing.T) {
	if _, err := AtmosphereProfile(units.LengthFromMeters(1000), units.LengthFromMeters(0)); err == nil {
		t.Error("expected error for zero step")
	}
	if _, err := AtmosphereProfile(units.LengthFromKilometers(90), units.LengthFromMeters(100)); err == nil {
		t.Error("expected error above modelled layers")
	}
}
