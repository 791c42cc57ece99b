package camera

import "github.com/golang/geo/r2"

// DistortPoints applies the camera's distortion model to undistorted points on
// the normalized camera plane. A camera with no distortion coefficients is the
// identity. Models whose distortion is inseparable from projection (the OpenCV
// family) reject 2D input; use ProjectAndDistortPoints with 3D points instead.
func (intr *Intrinsics) DistortPoints(undistorted []r2.Point) ([]r2.Point, error) {
	if len(intr.distortion) == 0 {
		return append([]r2.Point(nil), undistorted...), nil
	}
	if intr.spec().coupledProjection {
		return nil, NewUnsupportedOperationError(intr.model)
	}

	out := make([]r2.Point, len(undistorted))
	switch intr.model {
	case SimpleRadial:
		k1 := intr.distortion[0]
		for i, pt := range undistorted {
			r2sq := pt.X*pt.X + pt.Y*pt.Y
			a := 1 + k1*r2sq
			out[i] = r2.Point{X: a * pt.X, Y: a * pt.Y}
		}
	case Radial:
		k1, k2 := intr.distortion[0], intr.distortion[1]
		for i, pt := range undistorted {
			r2sq := pt.X*pt.X + pt.Y*pt.Y
			a := 1 + k1*r2sq + k2*r2sq*r2sq
			out[i] = r2.Point{X: a * pt.X, Y: a * pt.Y}
		}
	case OpenCV5:
		k1, k2 := intr.distortion[0], intr.distortion[1]
		p1, p2 := intr.distortion[2], intr.distortion[3]
		k3 := intr.distortion[4]
		for i, pt := range undistorted {
			x2 := pt.X * pt.X
			y2 := pt.Y * pt.Y
			xy := pt.X * pt.Y
			r2sq := x2 + y2
			r4 := r2sq * r2sq
			r6 := r2sq * r4
			a := 1 + k1*r2sq + k2*r4 + k3*r6
			out[i] = r2.Point{
				X: a*pt.X + 2*p1*xy + p2*(r2sq+2*x2),
				Y: a*pt.Y + p1*(r2sq+2*y2) + 2*p2*xy,
			}
		}
	default:
		return nil, NewUnsupportedModelError(intr.model)
	}
	return out, nil
}
