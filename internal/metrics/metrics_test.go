package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/sim"
)

// affineTrajectory moves a square through two frames: identity, then
// x' = F x + c.
func affineTrajectory(f [4]float64, c [2]float64) continuum.BodyTrajectory {
	corners := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	pts := make([]continuum.PointTrajectory, len(corners))
	for i, p := range corners {
		x := f[0]*p[0] + f[1]*p[1] + c[0]
		y := f[2]*p[0] + f[3]*p[1] + c[1]
		pts[i] = continuum.PointTrajectory{
			Point: continuum.MaterialPoint{ID: i, X0: p[0], Y0: p[1]},
			X:     []float64{p[0], x},
			Y:     []float64{p[1], y},
		}
	}
	return continuum.BodyTrajectory{Points: pts}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name     string
		xs, ys   []float64
		expected float64
	}{
		{"unit square ccw", []float64{0, 1, 1, 0}, []float64{0, 0, 1, 1}, 1},
		{"unit square cw", []float64{0, 0, 1, 1}, []float64{0, 1, 1, 0}, -1},
		{"triangle", []float64{0, 4, 0}, []float64{0, 0, 3}, 6},
		{"degenerate", []float64{0, 1}, []float64{0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonArea(tt.xs, tt.ys); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("PolygonArea = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCircleBodyArea(t *testing.T) {
	body := sim.CircleBody(0, 0, 1, 400)
	xs := make([]float64, body.Len())
	ys := make([]float64, body.Len())
	for i, p := range body.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	if got := PolygonArea(xs, ys); math.Abs(got-math.Pi) > 1e-3 {
		t.Errorf("area of 400-gon = %v, want ~π", got)
	}
	if got := MaxRadius(xs, ys); math.Abs(got-1) > 1e-9 {
		t.Errorf("MaxRadius = %v, want 1", got)
	}
}

func TestEvaluate(t *testing.T) {
	traj := affineTrajectory([4]float64{2, 0, 0, 3}, [2]float64{1, -1})
	values := Evaluate(traj, 0.1, Default()...)

	if got := values["area_ratio"]; math.Abs(got-6) > 1e-12 {
		t.Errorf("area_ratio = %v, want 6", got)
	}
	// centroid moves from (0.5, 0.5) to (2, 0.5)
	if got := values["centroid_drift"]; math.Abs(got-1.5) > 1e-12 {
		t.Errorf("centroid_drift = %v, want 1.5", got)
	}
	if got := values["max_stretch"]; math.Abs(got-math.Sqrt(13)/math.Sqrt(2)) > 1e-12 {
		t.Errorf("max_stretch = %v", got)
	}

	names := Names(values)
	if len(names) != 3 || names[0] != "area_ratio" {
		t.Errorf("Names = %v", names)
	}
}

func TestMetricReset(t *testing.T) {
	for _, m := range Default() {
		m.Observe([]float64{0, 1, 0}, []float64{0, 0, 1}, 0)
		m.Observe([]float64{0, 2, 0}, []float64{0, 0, 2}, 0.1)
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: expected 0 after reset, got %v", m.Name(), m.Value())
		}
	}
}

func TestDeformationGradient(t *testing.T) {
	f := [4]float64{1.5, 0.3, -0.2, 0.8}
	traj := affineTrajectory(f, [2]float64{0.5, 2})

	aff, err := DeformationGradient(traj, 1)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := aff.F.At(i, j); math.Abs(got-f[2*i+j]) > 1e-10 {
				t.Errorf("F[%d][%d] = %v, want %v", i, j, got, f[2*i+j])
			}
		}
	}
	if math.Abs(aff.C[0]-0.5) > 1e-10 || math.Abs(aff.C[1]-2) > 1e-10 {
		t.Errorf("C = %v, want [0.5 2]", aff.C)
	}
	if math.Abs(aff.Det()-(1.5*0.8+0.3*0.2)) > 1e-10 {
		t.Errorf("Det = %v", aff.Det())
	}
}

func TestDeformationGradient_Identity(t *testing.T) {
	traj := affineTrajectory([4]float64{1, 0, 0, 1}, [2]float64{})
	aff, err := DeformationGradient(traj, 0)
	if err != nil {
		t.Fatal(err)
	}
	e := aff.Strain()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(e.At(i, j)) > 1e-12 {
				t.Errorf("strain[%d][%d] = %v, want 0", i, j, e.At(i, j))
			}
		}
	}
}

func TestDeformationGradient_Errors(t *testing.T) {
	traj := affineTrajectory([4]float64{1, 0, 0, 1}, [2]float64{})

	if _, err := DeformationGradient(traj, 5); !errors.Is(err, continuum.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount for bad sample, got %v", err)
	}

	traj.Points = traj.Points[:2]
	if _, err := DeformationGradient(traj, 1); !errors.Is(err, continuum.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount for two points, got %v", err)
	}
}

func TestTrackedBodyIsAffine(t *testing.T) {
	traj := sim.TrackBody(1, 0.1, sim.CircleBody(2, -2, 1, 60))
	last := traj.Samples() - 1

	aff, err := DeformationGradient(traj, last)
	if err != nil {
		t.Fatal(err)
	}

	// the flow is diagonal and linear, so F is diagonal with no translation
	if math.Abs(aff.F.At(0, 1)) > 1e-9 || math.Abs(aff.F.At(1, 0)) > 1e-9 {
		t.Errorf("off-diagonal F = %v, %v", aff.F.At(0, 1), aff.F.At(1, 0))
	}
	if math.Abs(aff.C[0]) > 1e-9 || math.Abs(aff.C[1]) > 1e-9 {
		t.Errorf("translation = %v", aff.C)
	}

	ratio := Evaluate(traj, 0.1, NewAreaRatio())["area_ratio"]
	if math.Abs(ratio-aff.Det()) > 1e-9 {
		t.Errorf("area ratio %v != det F %v", ratio, aff.Det())
	}

	if h := History(traj); len(h) != traj.Samples() {
		t.Errorf("history length %d, want %d", len(h), traj.Samples())
	}
}
