package camera

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// depthEpsilon is the smallest depth treated as being in front of the camera.
const depthEpsilon = 1e-3

// ProjectPoints perspective-projects 3D camera-frame points onto the
// normalized camera plane. It returns the 2D points, the disparities (inverse
// depth, clamped so output stays finite), and a mask marking points whose
// depth exceeds depthEpsilon.
func (intr *Intrinsics) ProjectPoints(pts []r3.Vector) ([]r2.Point, []float64, []bool) {
	projected := make([]r2.Point, len(pts))
	disparity := make([]float64, len(pts))
	valid := make([]bool, len(pts))
	for i, pt := range pts {
		valid[i] = pt.Z > depthEpsilon
		d := 1 / math.Max(pt.Z, depthEpsilon)
		disparity[i] = d
		projected[i] = r2.Point{X: pt.X * d, Y: pt.Y * d}
	}
	return projected, disparity, valid
}

// ProjectAndDistortPoints projects 3D camera-frame points to distorted points
// on the camera plane. The OpenCV family projects and distorts in one step
// directly from the 3D points; all other models distort the projected points.
// Disparity and validity come from ProjectPoints either way.
func (intr *Intrinsics) ProjectAndDistortPoints(pts []r3.Vector) ([]r2.Point, []float64, []bool, error) {
	undistorted, disparity, valid := intr.ProjectPoints(pts)

	var distorted []r2.Point
	var err error
	if intr.spec().coupledProjection {
		distorted, err = projectWithDistortion(intr.model, pts, intr.distortion)
	} else {
		distorted, err = intr.DistortPoints(undistorted)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return distorted, disparity, valid, nil
}

// CameraToImagePoints runs the full forward pipeline: 3D camera-frame points
// to distorted pixel coordinates. Callers should check the validity mask
// before trusting the corresponding pixels.
func (intr *Intrinsics) CameraToImagePoints(pts []r3.Vector) ([]r2.Point, []float64, []bool, error) {
	distorted, disparity, valid, err := intr.ProjectAndDistortPoints(pts)
	if err != nil {
		return nil, nil, nil, err
	}
	return intr.ToImagePoints(distorted), disparity, valid, nil
}

// ToImagePoints maps camera-plane points to pixel coordinates through the
// camera matrix.
func (intr *Intrinsics) ToImagePoints(pts []r2.Point) []r2.Point {
	var pix mat.Dense
	pix.Mul(ToHomogeneous(pts), intr.k3.T())
	return FromHomogeneous(&pix)
}

// ImageToCameraPoints maps pixel coordinates to points on the camera plane
// through the inverse camera matrix. Distortion is not removed; the result is
// on the distorted camera plane.
func (intr *Intrinsics) ImageToCameraPoints(pix []r2.Point) []r2.Point {
	var pts mat.Dense
	pts.Mul(ToHomogeneous(pix), intr.k3Inv.T())
	return FromHomogeneous(&pts)
}
