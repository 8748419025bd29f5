package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/deformsim/internal/analysis"
	"github.com/san-kum/deformsim/internal/continuum"
)

// frame maps world coordinates onto an SVG canvas with y up.
type frame struct {
	minX, minY, rangeX, rangeY float64
	width, height              int
}

func newFrame(minX, maxX, minY, maxY float64, width, height int) frame {
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	return frame{
		minX:   minX,
		minY:   minY,
		rangeX: rangeX * 1.2,
		rangeY: rangeY * 1.2,
		width:  width,
		height: height,
	}
}

func (f frame) point(x, y float64) (float64, float64) {
	px := (x - f.minX) / f.rangeX * float64(f.width)
	py := float64(f.height) - (y-f.minY)/f.rangeY*float64(f.height)
	return px, py
}

func header(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))
}

// TrajectorySVG writes every point's path in black with its initial
// position in red and its final position in green.
func TrajectorySVG(w io.Writer, traj continuum.BodyTrajectory, width, height int) error {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range traj.Points {
		for i := range p.X {
			minX, maxX = math.Min(minX, p.X[i]), math.Max(maxX, p.X[i])
			minY, maxY = math.Min(minY, p.Y[i]), math.Max(maxY, p.Y[i])
		}
	}
	if traj.Len() == 0 {
		minX, maxX, minY, maxY = 0, 1, 0, 1
	}
	f := newFrame(minX, maxX, minY, maxY, width, height)

	var sb strings.Builder
	header(&sb, width, height)

	sb.WriteString(`<g fill="none" stroke="#000000" stroke-width="0.5">` + "\n")
	for _, p := range traj.Points {
		sb.WriteString(`<path d="`)
		for i := range p.X {
			x, y := f.point(p.X[i], p.Y[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.2f,%.2f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.2f,%.2f", x, y))
			}
		}
		sb.WriteString(`"/>` + "\n")
	}
	sb.WriteString("</g>\n")

	writeDots(&sb, traj, f, "#ff0000", func(p continuum.PointTrajectory) (float64, float64) { return p.At(0) })
	writeDots(&sb, traj, f, "#00aa00", func(p continuum.PointTrajectory) (float64, float64) { return p.Final() })

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDots(sb *strings.Builder, traj continuum.BodyTrajectory, f frame, color string, at func(continuum.PointTrajectory) (float64, float64)) {
	sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", color))
	for _, p := range traj.Points {
		x, y := f.point(at(p))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="2"/>`+"\n", x, y))
	}
	sb.WriteString("</g>\n")
}

// FieldSVG writes one snapshot as arrows scaled to the fastest cell, with
// optional streamline curves clipped to the grid square.
func FieldSVG(w io.Writer, g continuum.SpaceGrid, curves []analysis.Curve, width, height int) error {
	extent := 0.0
	for _, p := range g.Points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	f := newFrame(-extent, extent, -extent, extent, width, height)

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" font-family="monospace" font-size="12">current time: %g</text>`+"\n", g.Time()))

	if len(curves) > 0 {
		cx, cy, cw, ch := f.clipRect(extent)
		sb.WriteString(fmt.Sprintf(`<clipPath id="grid"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n", cx, cy, cw, ch))
		sb.WriteString(`<g fill="none" stroke="#bbbbbb" stroke-width="0.75" clip-path="url(#grid)">` + "\n")
		for _, c := range curves {
			sb.WriteString(`<polyline points="`)
			for i := range c.X {
				if math.IsInf(c.Y[i], 0) || math.IsNaN(c.Y[i]) {
					continue
				}
				// keep coordinates printable; the clip path hides the rest
				y := math.Max(-1e6, math.Min(1e6, c.Y[i]))
				px, py := f.point(c.X[i], y)
				sb.WriteString(fmt.Sprintf("%.2f,%.2f ", px, py))
			}
			sb.WriteString(`"/>` + "\n")
		}
		sb.WriteString("</g>\n")
	}

	scale := 0.0
	if s := g.MaxSpeed(); s > 0 {
		scale = 0.8 / s
	}
	sb.WriteString(`<g stroke="#0055aa" stroke-width="1.2" fill="#0055aa">` + "\n")
	for _, p := range g.Points {
		x0, y0 := f.point(p.X, p.Y)
		x1, y1 := f.point(p.X+p.VX*scale, p.Y+p.VY*scale)
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, x0, y0, x1, y1))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="1.5"/>`+"\n", x1, y1))
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f frame) clipRect(extent float64) (x, y, w, h float64) {
	x0, y0 := f.point(-extent, extent)
	x1, y1 := f.point(extent, -extent)
	return x0, y0, x1 - x0, y1 - y0
}
