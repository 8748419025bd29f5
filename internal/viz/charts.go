package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/deformsim/internal/continuum"
)

// CoordinateChart plots x(t) and y(t) of one point against the sample index.
func CoordinateChart(p continuum.PointTrajectory, width, height int) string {
	if p.Len() == 0 {
		return ""
	}
	return asciigraph.PlotMany([][]float64{p.X, p.Y},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
		asciigraph.Caption(fmt.Sprintf("point %d: x (red), y (green)", p.Point.ID)),
	)
}

// SeriesChart plots one series with a caption.
func SeriesChart(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// SpeedHistory returns the peak speed of each snapshot.
func SpeedHistory(fields continuum.VelocityFields) []float64 {
	out := make([]float64, len(fields))
	for i, g := range fields {
		out[i] = g.MaxSpeed()
	}
	return out
}
