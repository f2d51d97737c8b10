// Package metrics provides run diagnostics observed during ODE integration:
// conserved-quantity drift and state excursion. Each type implements
// [dynamo.Metric].
package metrics

import (
	"math"

	"github.com/san-kum/flowlab/internal/dynamo"
)

// InvariantDrift tracks the worst relative drift of a system's conserved
// quantity over a run.
type InvariantDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
	dyn      dynamo.System
}

func NewInvariantDrift(dyn dynamo.System) *InvariantDrift {
	return &InvariantDrift{
		name: "invariant_drift",
		dyn:  dyn,
	}
}

func (d *InvariantDrift) Name() string { return d.name }

func (d *InvariantDrift) Observe(x dynamo.State, t float64) {
	c, ok := d.dyn.(dynamo.Conserved)
	if !ok {
		return
	}

	value := c.Invariant(x)

	if d.samples == 0 {
		d.initial = value
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(value-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *InvariantDrift) Value() float64 {
	return d.maxDrift
}

func (d *InvariantDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}

// Excursion reports the fraction of observed steps whose state stayed
// inside a bounding radius, a cheap blow-up detector for vortex clouds.
type Excursion struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewExcursion(radius float64) *Excursion {
	return &Excursion{
		name:   "excursion",
		radius: radius,
	}
}

func (e *Excursion) Name() string { return e.name }

func (e *Excursion) Observe(x dynamo.State, t float64) {
	e.samples++
	for _, val := range x {
		if math.Abs(val) > e.radius {
			e.violations++
			break
		}
	}
}

func (e *Excursion) Value() float64 {
	if e.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(e.violations)/float64(e.samples)
}

func (e *Excursion) Reset() {
	e.violations = 0
	e.samples = 0
}
