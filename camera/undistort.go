package camera

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	// undistortIterations is the fixed Newton-Raphson iteration count. There is
	// no convergence check; cost stays predictable for every batch.
	undistortIterations = 17
	// undistortRelStep scales the central-difference step per coordinate.
	undistortRelStep = 1e-6
)

var machineEpsilon = math.Nextafter(1, 2) - 1

// UndistortPoints inverts the camera's distortion model for points on the
// distorted camera plane, using only forward evaluations of DistortPoints:
// a Newton-Raphson iteration with a numerically estimated 2x2 Jacobian per
// point. A point whose estimated Jacobian becomes singular keeps its current
// estimate for that iteration rather than failing the batch.
func (intr *Intrinsics) UndistortPoints(distorted []r2.Point) ([]r2.Point, error) {
	x := append([]r2.Point(nil), distorted...)
	n := len(x)
	if n == 0 {
		return x, nil
	}

	probe := make([]r2.Point, n)
	eval := func(pts []r2.Point) ([]r2.Point, error) {
		return intr.DistortPoints(pts)
	}

	for iter := 0; iter < undistortIterations; iter++ {
		step0 := make([]float64, n)
		step1 := make([]float64, n)
		for i, pt := range x {
			step0[i] = math.Max(machineEpsilon, undistortRelStep*pt.X)
			step1[i] = math.Max(machineEpsilon, undistortRelStep*pt.Y)
		}

		dx, err := eval(x)
		if err != nil {
			return nil, err
		}
		for i, pt := range x {
			probe[i] = r2.Point{X: pt.X - step0[i], Y: pt.Y}
		}
		dx0b, err := eval(probe)
		if err != nil {
			return nil, err
		}
		for i, pt := range x {
			probe[i] = r2.Point{X: pt.X + step0[i], Y: pt.Y}
		}
		dx0f, err := eval(probe)
		if err != nil {
			return nil, err
		}
		for i, pt := range x {
			probe[i] = r2.Point{X: pt.X, Y: pt.Y - step1[i]}
		}
		dx1b, err := eval(probe)
		if err != nil {
			return nil, err
		}
		for i, pt := range x {
			probe[i] = r2.Point{X: pt.X, Y: pt.Y + step1[i]}
		}
		dx1f, err := eval(probe)
		if err != nil {
			return nil, err
		}

		for i := range x {
			j00 := 1 + (dx0f[i].X-dx0b[i].X)/(2*step0[i])
			j01 := (dx1f[i].X - dx1b[i].X) / (2 * step1[i])
			j10 := (dx0f[i].Y - dx0b[i].Y) / (2 * step0[i])
			j11 := 1 + (dx1f[i].Y-dx1b[i].Y)/(2*step1[i])

			det := j00*j11 - j01*j10
			if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
				continue
			}

			rx := dx[i].X - distorted[i].X
			ry := dx[i].Y - distorted[i].Y
			x[i].X -= (j11*rx - j01*ry) / det
			x[i].Y -= (-j10*rx + j00*ry) / det
		}
	}
	return x, nil
}
