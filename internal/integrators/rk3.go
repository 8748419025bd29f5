package integrators

import "github.com/san-kum/deformsim/internal/flow"

// Stepper advances one scalar coordinate by a single fixed step.
type Stepper interface {
	Step(f flow.Func, v, t, h float64) float64
}

// RK3 is a three-stage explicit third-order rule. The third stage is taken
// at v - h*k1 + 2h*k2 and the stages are weighted 1:4:1.
type RK3 struct{}

func NewRK3() *RK3 {
	return &RK3{}
}

func (RK3) Step(f flow.Func, v, t, h float64) float64 {
	k1 := f(t, v)
	k2 := f(t+h*0.5, v+h*0.5*k1)
	k3 := f(t+h, v-h*k1+2*h*k2)
	return v + h/6*(k1+4*k2+k3)
}
