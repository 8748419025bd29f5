package metrics

import (
	"math"

	"github.com/san-kum/deformsim/internal/continuum"
)

// AreaRatio reports the enclosed area of the last frame over that of the
// first one. For a body under a linear flow this equals det F.
type AreaRatio struct {
	initial, current float64
	samples          int
}

func NewAreaRatio() *AreaRatio { return &AreaRatio{} }

func (a *AreaRatio) Name() string { return "area_ratio" }

func (a *AreaRatio) Observe(xs, ys []float64, t float64) {
	area := math.Abs(PolygonArea(xs, ys))
	if a.samples == 0 {
		a.initial = area
	}
	a.current = area
	a.samples++
}

func (a *AreaRatio) Value() float64 {
	if a.samples == 0 || a.initial == 0 {
		return 0
	}
	return a.current / a.initial
}

func (a *AreaRatio) Reset() { *a = AreaRatio{} }

// CentroidDrift is the largest distance the centroid moves away from its
// initial position.
type CentroidDrift struct {
	x0, y0  float64
	max     float64
	samples int
}

func NewCentroidDrift() *CentroidDrift { return &CentroidDrift{} }

func (c *CentroidDrift) Name() string { return "centroid_drift" }

func (c *CentroidDrift) Observe(xs, ys []float64, t float64) {
	cx, cy := Centroid(xs, ys)
	if c.samples == 0 {
		c.x0, c.y0 = cx, cy
	}
	c.max = math.Max(c.max, math.Hypot(cx-c.x0, cy-c.y0))
	c.samples++
}

func (c *CentroidDrift) Value() float64 { return c.max }

func (c *CentroidDrift) Reset() { *c = CentroidDrift{} }

// MaxStretch is the peak ratio of the body's outer radius to its initial
// value.
type MaxStretch struct {
	r0, max float64
	samples int
}

func NewMaxStretch() *MaxStretch { return &MaxStretch{} }

func (m *MaxStretch) Name() string { return "max_stretch" }

func (m *MaxStretch) Observe(xs, ys []float64, t float64) {
	r := MaxRadius(xs, ys)
	if m.samples == 0 {
		m.r0 = r
	}
	if m.r0 > 0 {
		m.max = math.Max(m.max, r/m.r0)
	}
	m.samples++
}

func (m *MaxStretch) Value() float64 { return m.max }

func (m *MaxStretch) Reset() { *m = MaxStretch{} }

// History returns the enclosed area at every sample.
func History(traj continuum.BodyTrajectory) []float64 {
	areas := make([]float64, traj.Samples())
	for k := range areas {
		xs, ys := traj.Frame(k)
		areas[k] = math.Abs(PolygonArea(xs, ys))
	}
	return areas
}
