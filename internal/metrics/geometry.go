package metrics

import "math"

// PolygonArea is the signed shoelace area of the closed polygon through the
// points in order. Counter-clockwise polygons are positive.
func PolygonArea(xs, ys []float64) float64 {
	n := len(xs)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += xs[i]*ys[j] - xs[j]*ys[i]
	}
	return sum / 2
}

func Centroid(xs, ys []float64) (cx, cy float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for i := range xs {
		cx += xs[i]
		cy += ys[i]
	}
	n := float64(len(xs))
	return cx / n, cy / n
}

// MaxRadius is the largest distance from the centroid to any point.
func MaxRadius(xs, ys []float64) float64 {
	cx, cy := Centroid(xs, ys)
	r := 0.0
	for i := range xs {
		r = math.Max(r, math.Hypot(xs[i]-cx, ys[i]-cy))
	}
	return r
}
