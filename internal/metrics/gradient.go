package metrics

import (
	"fmt"

	"github.com/san-kum/deformsim/internal/continuum"
	"gonum.org/v1/gonum/mat"
)

// Affine is the map x -> F x + c fitted between two configurations.
type Affine struct {
	F *mat.Dense // 2x2 deformation gradient
	C [2]float64
}

// Det is the local area change of the map.
func (a Affine) Det() float64 {
	return mat.Det(a.F)
}

// Strain is the Green-Lagrange strain E = (FᵀF - I)/2.
func (a Affine) Strain() *mat.Dense {
	var e mat.Dense
	e.Mul(a.F.T(), a.F)
	for i := 0; i < 2; i++ {
		e.Set(i, i, e.At(i, i)-1)
	}
	e.Scale(0.5, &e)
	return &e
}

// DeformationGradient fits the affine map carrying the initial frame of traj
// onto frame k in the least-squares sense. It needs at least three points
// that are not collinear.
func DeformationGradient(traj continuum.BodyTrajectory, k int) (Affine, error) {
	n := traj.Len()
	if n < 3 {
		return Affine{}, fmt.Errorf("deformation gradient needs 3 points, got %d: %w", n, continuum.ErrInvalidCount)
	}
	if k < 0 || k >= traj.Samples() {
		return Affine{}, fmt.Errorf("sample %d out of range [0, %d): %w", k, traj.Samples(), continuum.ErrInvalidCount)
	}

	x0, y0 := traj.Frame(0)
	xk, yk := traj.Frame(k)

	a := mat.NewDense(n, 3, nil)
	b := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		a.SetRow(i, []float64{x0[i], y0[i], 1})
		b.SetRow(i, []float64{xk[i], yk[i]})
	}

	var sol mat.Dense
	if err := sol.Solve(a, b); err != nil {
		return Affine{}, fmt.Errorf("fit deformation gradient: %w", err)
	}

	f := mat.NewDense(2, 2, []float64{
		sol.At(0, 0), sol.At(1, 0),
		sol.At(0, 1), sol.At(1, 1),
	})
	return Affine{F: f, C: [2]float64{sol.At(2, 0), sol.At(2, 1)}}, nil
}
