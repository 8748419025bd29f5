package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/deformsim/internal/continuum"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// TrajectoryCSV writes one row per point and sample: point,step,x,y.
func TrajectoryCSV(w io.Writer, traj continuum.BodyTrajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"point", "step", "x", "y"}); err != nil {
		return err
	}
	for _, p := range traj.Points {
		id := strconv.Itoa(p.Point.ID)
		for k := range p.X {
			row := []string{id, strconv.Itoa(k), formatFloat(p.X[k]), formatFloat(p.Y[k])}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// FieldCSV writes one row per sampled cell across all snapshots:
// id,t,x,y,vx,vy.
func FieldCSV(w io.Writer, fields continuum.VelocityFields) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "t", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for _, g := range fields {
		for _, p := range g.Points {
			row := []string{
				strconv.Itoa(p.ID),
				formatFloat(p.T),
				formatFloat(p.X),
				formatFloat(p.Y),
				formatFloat(p.VX),
				formatFloat(p.VY),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
