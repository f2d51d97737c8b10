package metrics

import (
	"math"

	"github.com/san-kum/flowlab/internal/dynamo"
)

// ImpulseDrift tracks the worst absolute drift of the circulation-weighted
// centroid (Px, Py) of a point-vortex state [x0 y0 x1 y1 ...]. Strengths are
// the vortex circulations in state order.
type ImpulseDrift struct {
	name      string
	strengths []float64
	initPx    float64
	initPy    float64
	maxDrift  float64
	samples   int
}

func NewImpulseDrift(strengths []float64) *ImpulseDrift {
	return &ImpulseDrift{
		name:      "impulse_drift",
		strengths: strengths,
	}
}

func (d *ImpulseDrift) Name() string { return d.name }

func (d *ImpulseDrift) Observe(x dynamo.State, t float64) {
	if len(x) < 2*len(d.strengths) {
		return
	}

	px, py := 0.0, 0.0
	for i, g := range d.strengths {
		px += g * x[2*i]
		py += g * x[2*i+1]
	}

	if d.samples == 0 {
		d.initPx = px
		d.initPy = py
	}
	d.samples++

	drift := math.Hypot(px-d.initPx, py-d.initPy)
	d.maxDrift = math.Max(d.maxDrift, drift)
}

func (d *ImpulseDrift) Value() float64 {
	return d.maxDrift
}

func (d *ImpulseDrift) Reset() {
	d.initPx = 0
	d.initPy = 0
	d.maxDrift = 0
	d.samples = 0
}
