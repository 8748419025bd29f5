package sim

import (
	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/flow"
)

// Sampler evaluates the velocity field on a fixed square grid. NextID is the
// identifier given to the next sampled cell; it keeps increasing across
// snapshots and across calls to Sample.
type Sampler struct {
	NextID int
}

// Sample returns StepCount(duration, h)+1 snapshots of the grid with
// integer coordinates -extent..extent on both axes. The first snapshot is
// taken at t = h and each following one h later. Cells are enumerated row
// by row: y is fixed per row and x runs over the columns.
func (s *Sampler) Sample(duration, h float64, extent int) continuum.VelocityFields {
	side := 2*extent + 1
	axis := gridAxis(extent)
	steps := StepCount(duration, h)

	fields := make(continuum.VelocityFields, 0, steps+1)
	t := h
	for n := 0; n <= steps; n++ {
		points := make([]continuum.SpacePoint, 0, side*side)
		for _, y := range axis {
			for _, x := range axis {
				points = append(points, continuum.SpacePoint{
					ID: s.NextID,
					X:  x, Y: y,
					VX: flow.VelocityX(t, x),
					VY: flow.VelocityY(t, y),
					T:  t,
				})
				s.NextID++
			}
		}
		fields = append(fields, continuum.SpaceGrid{Points: points, Side: side})
		t += h
	}
	return fields
}

// SampleField samples with identifiers starting at 0.
func SampleField(duration, h float64, extent int) continuum.VelocityFields {
	var s Sampler
	return s.Sample(duration, h, extent)
}

func gridAxis(extent int) []float64 {
	axis := make([]float64, 2*extent+1)
	for i := range axis {
		axis[i] = float64(i - extent)
	}
	return axis
}
