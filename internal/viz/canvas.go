package viz

import (
	"math"
	"strings"
)

// Braille dot bits, indexed [row][col] within a cell:
// 1 4
// 2 5
// 3 6
// 7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Layer tags what was drawn into a cell.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerGuide
	LayerPath
	LayerArrow
	LayerStart
	LayerEnd
)

// Canvas is a grid of braille cells. Dot coordinates run from the top left,
// (Width*2) x (Height*4) dots in total.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// Set turns on the dot at (x, y) and tags its cell with layer. Cells keep
// the highest layer drawn into them. Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dotBits[y%4][x%2]
	if layer > c.Layers[row][col] {
		c.Layers[row][col] = layer
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = LayerNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, layer Layer) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render joins the rows, passing every cell through paint with its layer.
func (c *Canvas) Render(paint func(Layer, string) string) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			b.WriteString(paint(c.Layers[i][j], string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps world coordinates onto the dots of a canvas, y up.
type Viewport struct {
	MinX, MaxX, MinY, MaxY float64
	canvas                 *Canvas
}

// NewViewport fits the bounds onto c, padding them by pad of their span.
// Degenerate spans are widened to 1.
func NewViewport(c *Canvas, minX, maxX, minY, maxY, pad float64) *Viewport {
	rx, ry := maxX-minX, maxY-minY
	if rx == 0 {
		rx = 1
		minX -= 0.5
		maxX += 0.5
	}
	if ry == 0 {
		ry = 1
		minY -= 0.5
		maxY += 0.5
	}
	return &Viewport{
		MinX:   minX - rx*pad,
		MaxX:   maxX + rx*pad,
		MinY:   minY - ry*pad,
		MaxY:   maxY + ry*pad,
		canvas: c,
	}
}

// Dot converts a world point into dot coordinates.
func (v *Viewport) Dot(x, y float64) (int, int) {
	w := float64(v.canvas.Width*2 - 1)
	h := float64(v.canvas.Height*4 - 1)
	px := (x - v.MinX) / (v.MaxX - v.MinX) * w
	py := h - (y-v.MinY)/(v.MaxY-v.MinY)*h
	return int(math.Round(px)), int(math.Round(py))
}

func (v *Viewport) Plot(x, y float64, layer Layer) {
	if !finite(x) || !finite(y) || x < v.MinX || x > v.MaxX || y < v.MinY || y > v.MaxY {
		return
	}
	px, py := v.Dot(x, y)
	v.canvas.Set(px, py, layer)
}

func (v *Viewport) Line(x0, y0, x1, y1 float64, layer Layer) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	x0, y0, x1, y1, ok := v.clip(x0, y0, x1, y1)
	if !ok {
		return
	}
	ax, ay := v.Dot(x0, y0)
	bx, by := v.Dot(x1, y1)
	v.canvas.DrawLine(ax, ay, bx, by, layer)
}

// Polyline draws consecutive segments through the points.
func (v *Viewport) Polyline(xs, ys []float64, layer Layer) {
	if len(xs) == 1 {
		v.Plot(xs[0], ys[0], layer)
		return
	}
	for i := 1; i < len(xs); i++ {
		v.Line(xs[i-1], ys[i-1], xs[i], ys[i], layer)
	}
}

// clip trims the segment to the viewport (Liang-Barsky).
func (v *Viewport) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - v.MinX},
		{dx, v.MaxX - x0},
		{-dy, y0 - v.MinY},
		{dy, v.MaxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
