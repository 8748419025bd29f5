package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/deformsim/internal/continuum"
)

type pointJSON struct {
	ID int       `json:"id"`
	X0 float64   `json:"x0"`
	Y0 float64   `json:"y0"`
	X  []float64 `json:"x"`
	Y  []float64 `json:"y"`
}

type trajectoryJSON struct {
	Time    float64            `json:"time"`
	Step    float64            `json:"step"`
	Samples int                `json:"samples"`
	Points  []pointJSON        `json:"points"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

type cellJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type gridJSON struct {
	T     float64    `json:"t"`
	Side  int        `json:"side"`
	Cells []cellJSON `json:"cells"`
}

// TrajectoryJSON writes the run parameters, every trajectory and optional
// metric values.
func TrajectoryJSON(w io.Writer, duration, h float64, traj continuum.BodyTrajectory, metrics map[string]float64) error {
	data := trajectoryJSON{
		Time:    duration,
		Step:    h,
		Samples: traj.Samples(),
		Points:  make([]pointJSON, len(traj.Points)),
		Metrics: metrics,
	}
	for i, p := range traj.Points {
		data.Points[i] = pointJSON{ID: p.Point.ID, X0: p.Point.X0, Y0: p.Point.Y0, X: p.X, Y: p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// FieldJSON writes every snapshot in time order.
func FieldJSON(w io.Writer, fields continuum.VelocityFields) error {
	data := make([]gridJSON, len(fields))
	for i, g := range fields {
		cells := make([]cellJSON, len(g.Points))
		for k, p := range g.Points {
			cells[k] = cellJSON{ID: p.ID, X: p.X, Y: p.Y, VX: p.VX, VY: p.VY}
		}
		data[i] = gridJSON{T: g.Time(), Side: g.Side, Cells: cells}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
