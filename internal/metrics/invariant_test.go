package metrics

import (
	"testing"

	"github.com/san-kum/flowlab/internal/dynamo"
)

// Fixed-invariant system for drift checks.
type circleSystem struct{}

func (c *circleSystem) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{-x[1], x[0]}
}
func (c *circleSystem) StateDim() int { return 2 }
func (c *circleSystem) Invariant(x dynamo.State) float64 {
	return x[0]*x[0] + x[1]*x[1]
}

func TestInvariantDrift(t *testing.T) {
	sys := &circleSystem{}
	m := NewInvariantDrift(sys)

	m.Observe(dynamo.State{1, 0}, 0)
	m.Observe(dynamo.State{0, 1}, 1) // same radius, no drift
	if m.Value() != 0 {
		t.Errorf("expected zero drift, got %f", m.Value())
	}

	m.Observe(dynamo.State{1.1, 0}, 2) // radius grew by 21%
	if m.Value() < 0.2 {
		t.Errorf("expected drift above 0.2, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear drift")
	}
}

func TestImpulseDrift(t *testing.T) {
	// Counter-rotating pair: Px = G*(x0 - x1), Py = G*(y0 - y1).
	m := NewImpulseDrift([]float64{1, -1})

	m.Observe(dynamo.State{0, 0.25, 0, -0.25}, 0)
	m.Observe(dynamo.State{0.1, 0.25, 0.1, -0.25}, 1) // pure translation
	if m.Value() > 1e-12 {
		t.Errorf("translation should not change impulse, got %g", m.Value())
	}

	m.Observe(dynamo.State{0.2, 0.30, 0.2, -0.25}, 2) // separation grew
	if m.Value() < 0.04 {
		t.Errorf("expected drift near 0.05, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear drift")
	}
}

func TestExcursion(t *testing.T) {
	m := NewExcursion(2.0)

	m.Observe(dynamo.State{0.5, 1.0}, 0)
	m.Observe(dynamo.State{3.0, 0}, 1)
	m.Observe(dynamo.State{1.0, 1.0}, 2)

	want := 1.0 - 1.0/3.0
	if diff := m.Value() - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("excursion fraction: got %f, want %f", m.Value(), want)
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Error("reset metric with no samples should report 1.0")
	}
}
