package continuum

import "math"

// MaterialPoint is a Lagrangian tracer of the body at its creation time.
type MaterialPoint struct {
	ID     int
	X, Y   float64
	VX, VY float64
	X0, Y0 float64
	T      float64
}

// MaterialBody is the ordered set of points sharing one run.
type MaterialBody struct {
	Points []MaterialPoint
}

// NewMaterialBody checks that every point's ID equals its index.
func NewMaterialBody(points []MaterialPoint) (MaterialBody, error) {
	for i, p := range points {
		if p.ID != i {
			return MaterialBody{}, &IDError{Index: i, ID: p.ID}
		}
	}
	ps := make([]MaterialPoint, len(points))
	copy(ps, points)
	return MaterialBody{Points: ps}, nil
}

func (b MaterialBody) Len() int { return len(b.Points) }

// PointTrajectory holds the sampled path of one point, initial sample
// included. X and Y always have the same length.
type PointTrajectory struct {
	Point MaterialPoint
	X, Y  []float64
}

func (p PointTrajectory) Len() int { return len(p.X) }

// Final returns the last sampled position.
func (p PointTrajectory) Final() (x, y float64) {
	n := len(p.X) - 1
	return p.X[n], p.Y[n]
}

// At returns the position at sample i.
func (p PointTrajectory) At(i int) (x, y float64) {
	return p.X[i], p.Y[i]
}

// BodyTrajectory is aligned index for index with Body.Points.
type BodyTrajectory struct {
	Points []PointTrajectory
	Body   MaterialBody
}

func (b BodyTrajectory) Len() int { return len(b.Points) }

// Samples returns the number of time samples per point, or 0 for an empty
// body.
func (b BodyTrajectory) Samples() int {
	if len(b.Points) == 0 {
		return 0
	}
	return b.Points[0].Len()
}

// Frame returns every point's position at sample i, in body order.
func (b BodyTrajectory) Frame(i int) (xs, ys []float64) {
	xs = make([]float64, len(b.Points))
	ys = make([]float64, len(b.Points))
	for k, p := range b.Points {
		xs[k], ys[k] = p.At(i)
	}
	return xs, ys
}

// SpacePoint is the velocity observed at a fixed grid location at time T.
type SpacePoint struct {
	ID     int
	X, Y   float64
	VX, VY float64
	T      float64
}

// SpaceGrid is one row-major snapshot of the grid at a single instant.
type SpaceGrid struct {
	Points []SpacePoint
	Side   int
}

// Time returns the snapshot instant, or 0 for an empty grid.
func (g SpaceGrid) Time() float64 {
	if len(g.Points) == 0 {
		return 0
	}
	return g.Points[0].T
}

// At returns the cell in the given row and column.
func (g SpaceGrid) At(row, col int) SpacePoint {
	return g.Points[row*g.Side+col]
}

// MaxSpeed returns the largest velocity magnitude in the grid.
func (g SpaceGrid) MaxSpeed() float64 {
	max := 0.0
	for _, p := range g.Points {
		if s := math.Hypot(p.VX, p.VY); s > max {
			max = s
		}
	}
	return max
}

// VelocityFields is the sequence of snapshots ordered by increasing time.
type VelocityFields []SpaceGrid

// Times lists the snapshot instants in order.
func (f VelocityFields) Times() []float64 {
	ts := make([]float64, len(f))
	for i, g := range f {
		ts[i] = g.Time()
	}
	return ts
}
