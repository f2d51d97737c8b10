package pipeflow

import (
	"math"
	"testing"

	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/units"
)

func TestReynolds(t *testing.T) {
	re := Reynolds(
		units.VelocityFromMetersPerSecond(2),
		units.LengthFromMeters(0.05),
		units.KinematicViscosityFromSquareMetersPerSecond(1e-6),
	)
	if math.Abs(re-1e5) > 1e-6 {
		t.Errorf("expected Re=1e5, got %f", re)
	}
}

func TestColebrookPublishedValue(t *testing.T) {
	f, iters, err := Colebrook(1e-3, 1e5)
	if err != nil {
		t.Fatalf("Colebrook: %v", err)
	}
	// Moody chart: f ~ 0.0222 at Re=1e5, eps/D=1e-3.
	if math.Abs(f-0.0222) > 5e-4 {
		t.Errorf("expected f about 0.0222, got %f", f)
	}
	if iters == 0 || iters >= frictionMaxIter {
		t.Errorf("suspicious iteration count %d", iters)
	}
}

func TestColebrookSelfConsistent(t *testing.T) {
	// The converged f must satisfy the Colebrook equation itself.
	relRough, re := 2e-4, 5e6
	f, _, err := Colebrook(relRough, re)
	if err != nil {
		t.Fatalf("Colebrook: %v", err)
	}
	lhs := 1 / math.Sqrt(f)
	rhs := -2 * math.Log10(relRough/3.7+2.51/(re*math.Sqrt(f)))
	if math.Abs(lhs-rhs) > 1e-6 {
		t.Errorf("Colebrook residual too large: %e", lhs-rhs)
	}
}

func TestColebrookRejectsLaminar(t *testing.T) {
	if _, _, err := Colebrook(1e-3, 1500); err == nil {
		t.Error("expected error for laminar Re")
	}
}

func TestExplicitApproximations(t *testing.T) {
	cases := []struct{ rr, re float64 }{
		{1e-3, 1e5},
		{1e-4, 1e6},
		{5e-3, 5e4},
	}
	for _, c := range cases {
		f, _, err := Colebrook(c.rr, c.re)
		if err != nil {
			t.Fatalf("Colebrook(%g, %g): %v", c.rr, c.re, err)
		}
		sj := SwameeJain(c.rr, c.re)
		ha := Haaland(c.rr, c.re)
		if math.Abs(sj-f)/f > 0.03 {
			t.Errorf("Swamee-Jain off by more than 3%%: %f vs %f", sj, f)
		}
		if math.Abs(ha-f)/f > 0.03 {
			t.Errorf("Haaland off by more than 3%%: %f vs %f", ha, f)
		}
	}
}

func TestFrictionFactorLaminar(t *testing.T) {
	f, err := FrictionFactor(1e-3, 1000)
	if err != nil {
		t.Fatalf("FrictionFactor: %v", err)
	}
	if math.Abs(f-0.064) > 1e-12 {
		t.Errorf("laminar f should be 64/Re = 0.064, got %f", f)
	}
	if _, err := FrictionFactor(1e-3, -5); err == nil {
		t.Error("expected error for negative Re")
	}
}

func TestDarcyHeadLoss(t *testing.T) {
	p := Pipe{
		Length:   units.LengthFromMeters(100),
		Diameter: units.LengthFromMeters(0.1),
	}
	h := DarcyHeadLoss(0.02, p, units.VelocityFromMetersPerSecond(2))
	want := 0.02 * 1000 * 4 / (2 * gravity)
	if math.Abs(h.Meters()-want) > 1e-9 {
		t.Errorf("head loss: got %f, want %f", h.Meters(), want)
	}
}

func TestTotalHeadLoss(t *testing.T) {
	w := liquid.Water(units.TemperatureFromCelsius(20))
	p := Pipe{
		Length:    units.LengthFromMeters(50),
		Diameter:  units.LengthFromMeters(0.08),
		Roughness: units.LengthFromMillimeters(0.15),
	}
	q := units.VolumeFlowFromLitersPerSecond(10)

	bare, err := TotalHeadLoss(w, p, q, nil)
	if err != nil {
		t.Fatalf("TotalHeadLoss: %v", err)
	}
	withFittings, err := TotalHeadLoss(w, p, q, []string{"entrance-sharp", "elbow-90", "exit"})
	if err != nil {
		t.Fatalf("TotalHeadLoss with fittings: %v", err)
	}
	if withFittings.Meters() <= bare.Meters() {
		t.Error("fittings must add head loss")
	}

	if _, err := TotalHeadLoss(w, p, q, []string{"warp-drive"}); err == nil {
		t.Error("expected error for unknown fitting")
	}
}

func TestSolveDiameter(t *testing.T) {
	w := liquid.Water(units.TemperatureFromCelsius(20))
	length := units.LengthFromMeters(200)
	rough := units.LengthFromMillimeters(0.26)
	q := units.VolumeFlowFromLitersPerSecond(40)
	allowed := units.HeadFromMeters(8)

	d, err := SolveDiameter(w, length, rough, q, allowed)
	if err != nil {
		t.Fatalf("SolveDiameter: %v", err)
	}
	// The resulting diameter must reproduce the allowed loss.
	p := Pipe{Length: length, Diameter: d, Roughness: rough}
	hf, err := TotalHeadLoss(w, p, q, nil)
	if err != nil {
		t.Fatalf("TotalHeadLoss: %v", err)
	}
	if math.Abs(hf.Meters()-8) > 0.01 {
		t.Errorf("diameter %f m gives loss %f m, want 8", d.Meters(), hf.Meters())
	}
}

func TestPumpPower(t *testing.T) {
	w := liquid.Water(units.TemperatureFromCelsius(20))
	pwr, err := PumpPower(w, units.VolumeFlowFromLitersPerSecond(20), units.HeadFromMeters(15), 0.75)
	if err != nil {
		t.Fatalf("PumpPower: %v", err)
	}
	want := 998.2 * gravity * 0.020 * 15 / 0.75
	if math.Abs(pwr-want) > 1 {
		t.Errorf("pump power: got %f W, want %f", pwr, want)
	}
	if _, err := PumpPower(w, 0.02, 15, 0); err == nil {
		t.Error("expected error for zero efficiency")
	}
}
