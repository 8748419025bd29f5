package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/flow"
	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateField is returned when the horizontal velocity vanishes
// identically, which happens at t = 0, and the streamline exponent is
// undefined.
var ErrDegenerateField = errors.New("analysis: horizontal velocity vanishes, streamline exponent undefined")

const (
	// StreamlineCount is the number of integration constants traced per
	// snapshot.
	StreamlineCount = 20
	// StreamlineSamples is the number of points per branch.
	StreamlineSamples = 100
	// StreamlineGap keeps branches away from the singular axis x = 0.
	StreamlineGap = 0.1
)

// Curve is one branch of a streamline.
type Curve struct {
	C    float64
	X, Y []float64
}

// Exponent is p in the streamline family y = C|x|^p at time t, the ratio of
// the vertical to the horizontal growth rate.
func Exponent(t float64) (float64, error) {
	den := flow.VelocityX(t, 1)
	if den == 0 {
		return 0, ErrDegenerateField
	}
	return flow.VelocityY(t, 1) / den, nil
}

// Streamlines traces the curves y = -c|x|^p for c = 0..count-1 over
// [-extent, -StreamlineGap] and [StreamlineGap, extent]. Each constant
// contributes a left and a right branch, in that order.
func Streamlines(t, extent float64, count, samples int) ([]Curve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("streamline samples %d: %w", samples, continuum.ErrInvalidCount)
	}
	p, err := Exponent(t)
	if err != nil {
		return nil, err
	}

	left := floats.Span(make([]float64, samples), -extent, -StreamlineGap)
	right := floats.Span(make([]float64, samples), StreamlineGap, extent)

	curves := make([]Curve, 0, 2*count)
	for i := 0; i < count; i++ {
		c := -float64(i)
		curves = append(curves, branch(c, p, left), branch(c, p, right))
	}
	return curves, nil
}

func branch(c, p float64, xs []float64) Curve {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c * math.Pow(math.Abs(x), p)
	}
	xc := make([]float64, len(xs))
	copy(xc, xs)
	return Curve{C: c, X: xc, Y: ys}
}
