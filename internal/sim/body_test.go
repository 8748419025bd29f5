package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/flow"
	"github.com/san-kum/deformsim/internal/integrators"
	"github.com/san-kum/deformsim/internal/sim"
)

type countingStepper struct {
	calls int
	times []float64
}

func (c *countingStepper) Step(f flow.Func, v, t, h float64) float64 {
	c.calls++
	c.times = append(c.times, t)
	return v + 1
}

var _ = Describe("CircleBody", func() {
	It("places four points at quarter turns of the unit circle", func() {
		body := sim.CircleBody(0, 0, 1, 4)
		Expect(body.Points).To(HaveLen(4))

		angles := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
		for i, p := range body.Points {
			Expect(p.ID).To(Equal(i))
			Expect(p.X).To(BeNumerically("~", math.Cos(angles[i]), 1e-12))
			Expect(p.Y).To(BeNumerically("~", math.Sin(angles[i]), 1e-12))
			Expect(p.X0).To(Equal(p.X))
			Expect(p.Y0).To(Equal(p.Y))
			Expect(p.T).To(BeZero())
		}
	})

	It("offsets points by the center and evaluates velocity at t = 0", func() {
		body := sim.CircleBody(2, -2, 1, 100)
		Expect(body.Len()).To(Equal(100))

		p := body.Points[0]
		Expect(p.X).To(Equal(3.0))
		Expect(p.Y).To(Equal(-2.0))
		Expect(p.VX).To(BeZero())
		Expect(p.VY).To(BeZero())
	})

	It("satisfies the body identifier invariant", func() {
		body := sim.CircleBody(1, 1, 1, 17)
		_, err := continuum.NewMaterialBody(body.Points)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("TrackBody", func() {
	It("produces one trajectory of steps+2 samples per point", func() {
		body := sim.CircleBody(2, -2, 1, 7)
		traj := sim.TrackBody(1, 0.1, body)

		Expect(traj.Len()).To(Equal(7))
		for i, p := range traj.Points {
			Expect(p.X).To(HaveLen(12))
			Expect(p.Y).To(HaveLen(12))
			Expect(p.Point).To(Equal(body.Points[i]))
		}
		Expect(traj.Body.Points).To(Equal(body.Points))
	})

	It("seeds every trajectory with the initial position", func() {
		body := sim.CircleBody(2, -2, 1, 5)
		traj := sim.TrackBody(1, 0.1, body)

		for i, p := range traj.Points {
			Expect(p.X[0]).To(Equal(body.Points[i].X0))
			Expect(p.Y[0]).To(Equal(body.Points[i].Y0))
		}
	})

	It("keeps a point at the origin exactly still", func() {
		body, err := continuum.NewMaterialBody([]continuum.MaterialPoint{{ID: 0}})
		Expect(err).NotTo(HaveOccurred())

		traj := sim.TrackBody(2, 0.05, body)
		for k := range traj.Points[0].X {
			Expect(traj.Points[0].X[k]).To(BeZero())
			Expect(traj.Points[0].Y[k]).To(BeZero())
		}
	})

	It("runs one step more than fits in the duration, starting at t = 0", func() {
		stepper := &countingStepper{}
		body := sim.CircleBody(0, 0, 1, 1)

		traj := sim.NewTracker(stepper).Track(0.5, 0.25, body)

		Expect(stepper.calls).To(Equal(2 * 3))
		Expect(stepper.times).To(Equal([]float64{0, 0, 0.25, 0.25, 0.5, 0.5}))
		Expect(traj.Points[0].X).To(Equal([]float64{1, 2, 3, 4}))
	})

	It("yields only the seed and one step for zero duration", func() {
		traj := sim.TrackBody(0, 0.1, sim.CircleBody(0, 0, 1, 3))
		for _, p := range traj.Points {
			Expect(p.Len()).To(Equal(2))
		}
	})

	It("matches the exact solution of the y motion", func() {
		body, _ := continuum.NewMaterialBody([]continuum.MaterialPoint{{ID: 0, X0: 1, Y0: 1}})
		h := 0.01
		traj := sim.TrackBody(1, h, body)

		n := traj.Points[0].Len() - 1
		tEnd := float64(n) * h
		_, y := traj.Points[0].Final()
		Expect(y).To(BeNumerically("~", math.Exp(tEnd*tEnd/2), 1e-5))
	})

	It("contracts x and stretches y for a point off the axes", func() {
		body, _ := continuum.NewMaterialBody([]continuum.MaterialPoint{{ID: 0, X0: 1, Y0: 1}})
		traj := sim.TrackBody(1, 0.1, body)

		x, y := traj.Points[0].Final()
		Expect(x).To(BeNumerically("<", 1))
		Expect(y).To(BeNumerically(">", 1))
	})

	It("is bit-identical across repeated runs", func() {
		body := sim.CircleBody(2, -2, 1, 50)
		a := sim.TrackBody(1, 0.1, body)
		b := sim.TrackBody(1, 0.1, body)
		Expect(a).To(Equal(b))
	})

	It("uses the injected stepper for both axes", func() {
		body := sim.CircleBody(0, 0, 1, 2)
		direct := sim.NewTracker(integrators.NewRK3()).Track(1, 0.1, body)
		Expect(direct).To(Equal(sim.TrackBody(1, 0.1, body)))
	})
})
