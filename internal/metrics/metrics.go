package metrics

import (
	"sort"

	"github.com/san-kum/deformsim/internal/continuum"
)

// Metric accumulates a scalar diagnostic over the frames of a body
// trajectory. A frame is every point's position at one sample.
type Metric interface {
	Name() string
	Observe(xs, ys []float64, t float64)
	Value() float64
	Reset()
}

// Evaluate feeds every frame of traj to the metrics and collects their
// values. Sample k is taken to lie at time k*h.
func Evaluate(traj continuum.BodyTrajectory, h float64, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for k := 0; k < traj.Samples(); k++ {
		xs, ys := traj.Frame(k)
		t := float64(k) * h
		for _, m := range ms {
			m.Observe(xs, ys, t)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default is the metric set reported for every body run.
func Default() []Metric {
	return []Metric{NewAreaRatio(), NewCentroidDrift(), NewMaxStretch()}
}

// Names returns the keys of a result map in sorted order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
