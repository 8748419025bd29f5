package continuum

import (
	"errors"
	"testing"
)

func TestNewMaterialBody(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		wantErr bool
	}{
		{"empty", nil, false},
		{"sequential", []int{0, 1, 2}, false},
		{"offset", []int{1, 2, 3}, true},
		{"duplicate", []int{0, 0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]MaterialPoint, len(tt.ids))
			for i, id := range tt.ids {
				points[i] = MaterialPoint{ID: id}
			}
			body, err := NewMaterialBody(points)
			if tt.wantErr {
				if !errors.Is(err, ErrNonSequentialID) {
					t.Fatalf("expected ErrNonSequentialID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.Len() != len(tt.ids) {
				t.Errorf("expected %d points, got %d", len(tt.ids), body.Len())
			}
		})
	}
}

func TestNewMaterialBody_Copies(t *testing.T) {
	points := []MaterialPoint{{ID: 0, X: 1}}
	body, err := NewMaterialBody(points)
	if err != nil {
		t.Fatal(err)
	}
	points[0].X = 99
	if body.Points[0].X != 1 {
		t.Error("body shares storage with caller slice")
	}
}

func TestIDError(t *testing.T) {
	points := []MaterialPoint{{ID: 0}, {ID: 5}}
	_, err := NewMaterialBody(points)

	var idErr *IDError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected *IDError, got %T", err)
	}
	if idErr.Index != 1 || idErr.ID != 5 {
		t.Errorf("got index %d id %d", idErr.Index, idErr.ID)
	}
}

func TestPointTrajectory_Final(t *testing.T) {
	p := PointTrajectory{X: []float64{1, 2, 3}, Y: []float64{4, 5, 6}}
	x, y := p.Final()
	if x != 3 || y != 6 {
		t.Errorf("Final() = (%v, %v), want (3, 6)", x, y)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestBodyTrajectory_Frame(t *testing.T) {
	bt := BodyTrajectory{Points: []PointTrajectory{
		{X: []float64{0, 1}, Y: []float64{0, 2}},
		{X: []float64{5, 6}, Y: []float64{7, 8}},
	}}

	xs, ys := bt.Frame(1)
	if xs[0] != 1 || xs[1] != 6 || ys[0] != 2 || ys[1] != 8 {
		t.Errorf("Frame(1) = %v %v", xs, ys)
	}
	if bt.Samples() != 2 {
		t.Errorf("Samples() = %d, want 2", bt.Samples())
	}
	if (BodyTrajectory{}).Samples() != 0 {
		t.Error("empty trajectory should report 0 samples")
	}
}

func TestSpaceGrid(t *testing.T) {
	g := SpaceGrid{Side: 2, Points: []SpacePoint{
		{ID: 0, T: 0.5},
		{ID: 1, T: 0.5, VX: 3, VY: 4},
		{ID: 2, T: 0.5},
		{ID: 3, T: 0.5, VX: 1},
	}}

	if g.At(1, 0).ID != 2 {
		t.Errorf("At(1, 0) = %d, want 2", g.At(1, 0).ID)
	}
	if g.Time() != 0.5 {
		t.Errorf("Time() = %v, want 0.5", g.Time())
	}
	if g.MaxSpeed() != 5 {
		t.Errorf("MaxSpeed() = %v, want 5", g.MaxSpeed())
	}

	fields := VelocityFields{g, {Points: []SpacePoint{{T: 1.0}}, Side: 1}}
	ts := fields.Times()
	if len(ts) != 2 || ts[0] != 0.5 || ts[1] != 1.0 {
		t.Errorf("Times() = %v", ts)
	}
}
