package liquid

import (
	"math"
	"testing"

	"github.com/san-kum/flowlab/internal/units"
)

func TestWaterAt20C(t *testing.T) {
	w := Water(units.TemperatureFromCelsius(20))
	if math.Abs(w.Density.KgPerCubicMeter()-998.2) > 0.1 {
		t.Errorf("water density at 20 C should be 998.2 kg/m3, got %f", w.Density.KgPerCubicMeter())
	}
	if math.Abs(w.Viscosity.PascalSeconds()-1.002e-3) > 1e-6 {
		t.Errorf("water viscosity at 20 C should be 1.002e-3 Pa s, got %e", w.Viscosity.PascalSeconds())
	}
}

func TestWaterInterpolation(t *testing.T) {
	// 35 C sits between the 30 and 40 C table rows.
	w := Water(units.TemperatureFromCelsius(35))
	if w.Density.KgPerCubicMeter() >= 995.7 || w.Density.KgPerCubicMeter() <= 992.2 {
		t.Errorf("interpolated density out of bracket: %f", w.Density.KgPerCubicMeter())
	}
}

func TestWaterClamped(t *testing.T) {
	cold := Water(units.TemperatureFromCelsius(-10))
	if cold.Density.KgPerCubicMeter() != 999.9 {
		t.Errorf("below-range temperature should clamp to 0 C row, got %f", cold.Density.KgPerCubicMeter())
	}
	hot := Water(units.TemperatureFromCelsius(150))
	if hot.Density.KgPerCubicMeter() != 958.4 {
		t.Errorf("above-range temperature should clamp to 100 C row, got %f", hot.Density.KgPerCubicMeter())
	}
}

func TestLookup(t *testing.T) {
	hg, err := Lookup("mercury")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if math.Abs(hg.SpecificGravity()-13.546) > 1e-3 {
		t.Errorf("mercury SG should be 13.546, got %f", hg.SpecificGravity())
	}
	if _, err := Lookup("ambrosia"); err == nil {
		t.Error("expected error for unknown liquid")
	}
}

func TestDerivedProperties(t *testing.T) {
	w := Water(units.TemperatureFromCelsius(20))
	nu := w.KinematicViscosity().SquareMetersPerSecond()
	if math.Abs(nu-1.004e-6) > 1e-8 {
		t.Errorf("water nu at 20 C should be about 1.004e-6 m2/s, got %e", nu)
	}
	gamma := w.SpecificWeight().NPerCubicMeter()
	if math.Abs(gamma-9789) > 5 {
		t.Errorf("water specific weight should be about 9789 N/m3, got %f", gamma)
	}
}
