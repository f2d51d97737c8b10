package pipeflow_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/pipeflow"
	"github.com/san-kum/flowlab/internal/units"
)

func TestEnergyEquation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Energy Equation Suite")
}

var _ = Describe("SolveVelocity", func() {
	var (
		water liquid.Liquid
		pipe  pipeflow.Pipe
	)

	BeforeEach(func() {
		water = liquid.Water(units.TemperatureFromCelsius(20))
		pipe = pipeflow.Pipe{
			Length:    units.LengthFromMeters(100),
			Diameter:  units.LengthFromMeters(0.1),
			Roughness: units.LengthFromMillimeters(0.26),
		}
	})

	It("satisfies the energy equation at convergence", func() {
		head := units.HeadFromMeters(5)
		sumK := 1.5

		sol, err := pipeflow.SolveVelocity(water, pipe, head, sumK)
		Expect(err).NotTo(HaveOccurred())

		// H = (f L/D + sum K) V^2 / 2g must hold for the returned triple.
		v := sol.Velocity.MetersPerSecond()
		ld := pipe.Length.Meters() / pipe.Diameter.Meters()
		recovered := (sol.FrictionFactor*ld + sumK) * v * v / (2 * 9.80665)
		Expect(recovered).To(BeNumerically("~", 5.0, 1e-3))
	})

	It("returns a friction factor consistent with Colebrook", func() {
		sol, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(5), 1.5)
		Expect(err).NotTo(HaveOccurred())

		f, _, err := pipeflow.Colebrook(pipe.RelativeRoughness(), sol.Reynolds)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.FrictionFactor).To(BeNumerically("~", f, 1e-5))
	})

	It("converges in a handful of iterations", func() {
		sol, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(5), 1.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Iterations).To(BeNumerically("<", 20))
	})

	It("moves more flow under more head", func() {
		low, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(2), 1.5)
		Expect(err).NotTo(HaveOccurred())
		high, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(8), 1.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(high.Flow.CubicMetersPerSecond()).To(BeNumerically(">", low.Flow.CubicMetersPerSecond()))
	})

	It("rejects a non-positive head", func() {
		_, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(0), 1.5)
		Expect(err).To(HaveOccurred())
	})

	It("reports flow consistent with velocity and area", func() {
		sol, err := pipeflow.SolveVelocity(water, pipe, units.HeadFromMeters(5), 1.5)
		Expect(err).NotTo(HaveOccurred())

		area := math.Pi * 0.1 * 0.1 / 4
		Expect(sol.Flow.CubicMetersPerSecond()).To(
			BeNumerically("~", sol.Velocity.MetersPerSecond()*area, 1e-9))
	})
})

var _ = Describe("PumpHead", func() {
	It("adds static lift and line losses", func() {
		water := liquid.Water(units.TemperatureFromCelsius(20))
		pipe := pipeflow.Pipe{
			Length:    units.LengthFromMeters(60),
			Diameter:  units.LengthFromMeters(0.08),
			Roughness: units.LengthFromMillimeters(0.15),
		}
		q := units.VolumeFlowFromLitersPerSecond(12)

		hf, err := pipeflow.TotalHeadLoss(water, pipe, q, []string{"entrance-sharp", "exit"})
		Expect(err).NotTo(HaveOccurred())

		h, err := pipeflow.PumpHead(water, pipe, q, units.HeadFromMeters(10), []string{"entrance-sharp", "exit"})
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Meters()).To(BeNumerically("~", 10+hf.Meters(), 1e-9))
	})
})
