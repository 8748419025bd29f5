package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/deformsim/internal/flow"
	"github.com/san-kum/deformsim/internal/sim"
)

var _ = Describe("SampleField", func() {
	It("produces steps+1 snapshots of the full grid", func() {
		fields := sim.SampleField(1, 0.5, 1)

		Expect(fields).To(HaveLen(3))
		for _, g := range fields {
			Expect(g.Points).To(HaveLen(9))
			Expect(g.Side).To(Equal(3))
		}
		Expect(fields.Times()).To(Equal([]float64{0.5, 1.0, 1.5}))
	})

	It("numbers cells across the whole run without repeats", func() {
		fields := sim.SampleField(1, 0.5, 1)

		next := 0
		for _, g := range fields {
			for _, p := range g.Points {
				Expect(p.ID).To(Equal(next))
				next++
			}
		}
		Expect(next).To(Equal(27))
	})

	It("enumerates rows of constant y with x running across columns", func() {
		g := sim.SampleField(1, 0.5, 1)[0]

		Expect(g.At(0, 0).X).To(Equal(-1.0))
		Expect(g.At(0, 0).Y).To(Equal(-1.0))
		Expect(g.At(0, 2).X).To(Equal(1.0))
		Expect(g.At(0, 2).Y).To(Equal(-1.0))
		Expect(g.At(2, 0).X).To(Equal(-1.0))
		Expect(g.At(2, 0).Y).To(Equal(1.0))
		Expect(g.At(1, 1).X).To(BeZero())
		Expect(g.At(1, 1).Y).To(BeZero())
	})

	It("evaluates the field at each snapshot time", func() {
		for _, g := range sim.SampleField(2, 0.25, 2) {
			t := g.Time()
			for _, p := range g.Points {
				Expect(p.T).To(Equal(t))
				Expect(p.VX).To(Equal(flow.VelocityX(t, p.X)))
				Expect(p.VY).To(Equal(flow.VelocityY(t, p.Y)))
			}
		}
	})

	It("gives a single-cell grid for zero extent", func() {
		fields := sim.SampleField(1, 0.1, 0)
		Expect(fields).To(HaveLen(11))
		for _, g := range fields {
			Expect(g.Points).To(HaveLen(1))
			Expect(g.Points[0].VX).To(BeZero())
			Expect(g.Points[0].VY).To(BeZero())
		}
	})

	It("is bit-identical across repeated runs", func() {
		Expect(sim.SampleField(1, 0.1, 5)).To(Equal(sim.SampleField(1, 0.1, 5)))
	})
})

var _ = Describe("Sampler", func() {
	It("continues identifiers across calls", func() {
		var s sim.Sampler
		first := s.Sample(1, 0.5, 1)
		second := s.Sample(1, 0.5, 1)

		Expect(first[0].Points[0].ID).To(Equal(0))
		Expect(second[0].Points[0].ID).To(Equal(27))
		Expect(s.NextID).To(Equal(54))
	})

	It("starts from a caller-chosen identifier", func() {
		s := sim.Sampler{NextID: 100}
		fields := s.Sample(0, 1, 1)
		Expect(fields[0].Points[0].ID).To(Equal(100))
		Expect(s.NextID).To(Equal(109))
	})
})

var _ = Describe("StepCount", func() {
	DescribeTable("truncates duration/h",
		func(duration, h float64, expected int) {
			Expect(sim.StepCount(duration, h)).To(Equal(expected))
		},
		Entry("tenths", 1.0, 0.1, 10),
		Entry("halves", 1.0, 0.5, 2),
		Entry("partial step", 1.0, 0.3, 3),
		Entry("zero duration", 0.0, 0.1, 0),
	)
})
