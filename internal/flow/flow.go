// Package flow holds the prescribed velocity field driving the deformation.
//
// Each component depends only on time and its own coordinate, so the x and
// y motions decouple and can be integrated as two scalar problems.
package flow

import "math"

// Func gives one velocity component from time and the matching coordinate.
type Func func(t, v float64) float64

// VelocityX is the horizontal component -ln(3t+1)*x. It requires 3t+1 > 0,
// which holds for every t >= 0.
func VelocityX(t, x float64) float64 {
	return -math.Log(3*t+1) * x
}

// VelocityY is the vertical component t*y.
func VelocityY(t, y float64) float64 {
	return t * y
}

// Velocity evaluates both components at (x, y).
func Velocity(t, x, y float64) (vx, vy float64) {
	return VelocityX(t, x), VelocityY(t, y)
}
