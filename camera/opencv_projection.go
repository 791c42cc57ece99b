package camera

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// The OpenCV model family distorts during projection, so 3D points go straight
// to distorted camera-plane points in one step. These mirror OpenCV's
// projectPoints and fisheye projectPoints with zero rotation, zero translation,
// and an identity camera matrix.

// projectBrownConrady projects 3D points through the plain (4 or 5 coefficient)
// or rational (8 coefficient) Brown-Conrady model. Coefficient order is
// k1, k2, p1, p2 [, k3 [, k4, k5, k6]].
func projectBrownConrady(pts []r3.Vector, distortion []float64) []r2.Point {
	var k [6]float64
	var p1, p2 float64
	k[0], k[1] = distortion[0], distortion[1]
	p1, p2 = distortion[2], distortion[3]
	if len(distortion) > 4 {
		k[2] = distortion[4]
	}
	if len(distortion) > 5 {
		k[3], k[4], k[5] = distortion[5], distortion[6], distortion[7]
	}

	out := make([]r2.Point, len(pts))
	for i, pt := range pts {
		z := math.Max(pt.Z, depthEpsilon)
		x := pt.X / z
		y := pt.Y / z

		x2 := x * x
		y2 := y * y
		xy := x * y
		r2sq := x2 + y2
		r4 := r2sq * r2sq
		r6 := r2sq * r4
		radial := (1 + k[0]*r2sq + k[1]*r4 + k[2]*r6) / (1 + k[3]*r2sq + k[4]*r4 + k[5]*r6)
		out[i] = r2.Point{
			X: x*radial + 2*p1*xy + p2*(r2sq+2*x2),
			Y: y*radial + p1*(r2sq+2*y2) + 2*p2*xy,
		}
	}
	return out
}

// projectFisheye projects 3D points through the OpenCV equidistant fisheye
// model with coefficients k1..k4.
func projectFisheye(pts []r3.Vector, distortion []float64) []r2.Point {
	k1, k2, k3, k4 := distortion[0], distortion[1], distortion[2], distortion[3]

	out := make([]r2.Point, len(pts))
	for i, pt := range pts {
		z := math.Max(pt.Z, depthEpsilon)
		x := pt.X / z
		y := pt.Y / z

		r := math.Hypot(x, y)
		scale := 1.0
		if r > 1e-8 {
			theta := math.Atan(r)
			theta2 := theta * theta
			theta4 := theta2 * theta2
			theta6 := theta2 * theta4
			theta8 := theta4 * theta4
			thetaD := theta * (1 + k1*theta2 + k2*theta4 + k3*theta6 + k4*theta8)
			scale = thetaD / r
		}
		out[i] = r2.Point{X: scale * x, Y: scale * y}
	}
	return out
}

// projectWithDistortion dispatches a coupled-projection model to its combined
// project-and-distort routine.
func projectWithDistortion(model Model, pts []r3.Vector, distortion []float64) ([]r2.Point, error) {
	switch model {
	case OpenCV, FullOpenCV:
		return projectBrownConrady(pts, distortion), nil
	case OpenCVFisheye:
		return projectFisheye(pts, distortion), nil
	default:
		return nil, NewUnsupportedModelError(model)
	}
}
