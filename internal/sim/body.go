package sim

import (
	"math"

	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/flow"
	"github.com/san-kum/deformsim/internal/integrators"
)

// Tracker integrates material points with a scalar stepper applied to each
// axis separately.
type Tracker struct {
	stepper integrators.Stepper
}

func NewTracker(stepper integrators.Stepper) *Tracker {
	return &Tracker{stepper: stepper}
}

// Track produces one trajectory per body point. Each trajectory holds
// StepCount(duration, h)+2 samples: the seed plus StepCount+1 steps, so the
// last sample sits one step past duration. h must be positive.
func (tr *Tracker) Track(duration, h float64, body continuum.MaterialBody) continuum.BodyTrajectory {
	steps := StepCount(duration, h)
	points := make([]continuum.PointTrajectory, len(body.Points))
	for i, p := range body.Points {
		points[i] = tr.trackPoint(p, steps, h)
	}
	return continuum.BodyTrajectory{Points: points, Body: body}
}

func (tr *Tracker) trackPoint(p continuum.MaterialPoint, steps int, h float64) continuum.PointTrajectory {
	xs := make([]float64, 1, steps+2)
	ys := make([]float64, 1, steps+2)
	xs[0], ys[0] = p.X0, p.Y0

	t := 0.0
	for n := 0; n <= steps; n++ {
		xs = append(xs, tr.stepper.Step(flow.VelocityX, xs[n], t, h))
		ys = append(ys, tr.stepper.Step(flow.VelocityY, ys[n], t, h))
		t += h
	}
	return continuum.PointTrajectory{Point: p, X: xs, Y: ys}
}

// TrackBody integrates body with the third-order scalar rule.
func TrackBody(duration, h float64, body continuum.MaterialBody) continuum.BodyTrajectory {
	return NewTracker(integrators.NewRK3()).Track(duration, h, body)
}

// CircleBody places n points around (xc, yc). Point i sits at angle
// i*radius*2π/n on the unit circle about the center; radius scales the
// angular spacing, not the distance. Velocities are taken at t = 0.
func CircleBody(xc, yc, radius float64, n int) continuum.MaterialBody {
	const t = 0.0
	points := make([]continuum.MaterialPoint, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * radius * 2 * math.Pi / float64(n)
		x := xc + math.Cos(angle)
		y := yc + math.Sin(angle)
		vx, vy := flow.Velocity(t, x, y)
		points[i] = continuum.MaterialPoint{
			ID: i,
			X:  x, Y: y,
			VX: vx, VY: vy,
			X0: x, Y0: y,
			T: t,
		}
	}
	return continuum.MaterialBody{Points: points}
}
