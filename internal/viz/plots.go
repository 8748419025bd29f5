package viz

import (
	"math"

	"github.com/san-kum/deformsim/internal/analysis"
	"github.com/san-kum/deformsim/internal/continuum"
)

// TrajectoryCanvas draws every point's path, its initial position and its
// final position.
func TrajectoryCanvas(traj continuum.BodyTrajectory, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if traj.Len() == 0 {
		return c
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range traj.Points {
		for i := range p.X {
			minX, maxX = math.Min(minX, p.X[i]), math.Max(maxX, p.X[i])
			minY, maxY = math.Min(minY, p.Y[i]), math.Max(maxY, p.Y[i])
		}
	}
	v := NewViewport(c, minX, maxX, minY, maxY, 0.05)

	for _, p := range traj.Points {
		v.Polyline(p.X, p.Y, LayerPath)
	}
	for _, p := range traj.Points {
		x0, y0 := p.At(0)
		v.Plot(x0, y0, LayerStart)
		x1, y1 := p.Final()
		v.Plot(x1, y1, LayerEnd)
	}
	return c
}

// FieldCanvas draws one snapshot as a quiver plot. Arrows are scaled so the
// fastest cell spans most of a grid spacing. Curves, if any, are drawn
// underneath as guides.
func FieldCanvas(g continuum.SpaceGrid, curves []analysis.Curve, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(g.Points) == 0 {
		return c
	}

	extent := 0.0
	for _, p := range g.Points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	v := NewViewport(c, -extent, extent, -extent, extent, 0.1)

	for _, cv := range curves {
		v.Polyline(cv.X, cv.Y, LayerGuide)
	}

	scale := 0.0
	if s := g.MaxSpeed(); s > 0 {
		scale = 0.8 / s
	}
	for _, p := range g.Points {
		tx, ty := p.X+p.VX*scale, p.Y+p.VY*scale
		v.Line(p.X, p.Y, tx, ty, LayerArrow)
		v.Plot(p.X, p.Y, LayerPath)
		if scale > 0 && (p.VX != 0 || p.VY != 0) {
			v.Plot(tx, ty, LayerEnd)
		}
	}
	return c
}
