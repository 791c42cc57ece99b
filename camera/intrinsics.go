package camera

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/camforge/mvgeom/utils"
)

// Intrinsics describes the internal geometry of one calibrated camera: image
// size, camera matrix coefficients, and the distortion coefficients of its
// model. It is immutable once constructed; every transform returns a new
// instance. The camera matrix and its inverses are derived up front.
type Intrinsics struct {
	model  Model
	width  int
	height int

	fx, fy, cx, cy float64
	distortion     []float64

	k, kInv   *mat.Dense // 4x4 homogeneous camera matrix and its inverse
	k3, k3Inv *mat.Dense // 3x3 camera matrix and its inverse
}

// NewIntrinsics builds an Intrinsics from a model name, image size in pixels,
// and the model's ordered parameter list (COLMAP conventions). The camera
// matrix parameters always lead; the remaining entries are the distortion
// coefficients in model order.
func NewIntrinsics(model Model, width, height int, params []float64) (*Intrinsics, error) {
	spec, ok := modelTable[model]
	if !ok {
		return nil, NewInvalidModelError(model)
	}
	if len(params) != len(spec.paramNames) {
		return nil, NewParameterCountError(model, len(spec.paramNames), len(params))
	}

	intr := &Intrinsics{model: model, width: width, height: height}
	switch {
	case len(params) == 0:
	case spec.singleFocal:
		intr.fx, intr.fy = params[0], params[0]
		intr.cx, intr.cy = params[1], params[2]
		intr.distortion = append([]float64(nil), params[3:]...)
	default:
		intr.fx, intr.fy = params[0], params[1]
		intr.cx, intr.cy = params[2], params[3]
		intr.distortion = append([]float64(nil), params[4:]...)
	}
	intr.deriveMatrices()
	return intr, nil
}

// NewPinholeIntrinsics builds a distortion-free camera from camera matrix
// coefficients, collapsing to SIMPLE_PINHOLE when the focal lengths agree.
func NewPinholeIntrinsics(fx, fy, cx, cy float64, width, height int) (*Intrinsics, error) {
	if fx == fy {
		return NewIntrinsics(SimplePinhole, width, height, []float64{fx, cx, cy})
	}
	return NewIntrinsics(Pinhole, width, height, []float64{fx, fy, cx, cy})
}

// NewIntrinsicsFromOpenCV builds a camera from a 3x3 OpenCV camera matrix and
// an OpenCV distortion vector. The distortion length picks the model: 4 is
// OPENCV, 5 is OPENCV5, and 8 is FULL_OPENCV.
func NewIntrinsicsFromOpenCV(k mat.Matrix, distortion []float64, width, height int) (*Intrinsics, error) {
	r, c := k.Dims()
	if r != 3 || c != 3 {
		return nil, errors.Errorf("expected a 3x3 camera matrix but got %dx%d", r, c)
	}
	var model Model
	switch len(distortion) {
	case 4:
		model = OpenCV
	case 5:
		model = OpenCV5
	case 8:
		model = FullOpenCV
	default:
		return nil, errors.Errorf("no OpenCV camera model has %d distortion coefficients", len(distortion))
	}
	params := append([]float64{k.At(0, 0), k.At(1, 1), k.At(0, 2), k.At(1, 2)}, distortion...)
	return NewIntrinsics(model, width, height, params)
}

// NewIntrinsicsFromOpenCVFisheye builds an OPENCV_FISHEYE camera from a 3x3
// camera matrix and the four coefficients of the OpenCV fisheye model.
func NewIntrinsicsFromOpenCVFisheye(k mat.Matrix, distortion []float64, width, height int) (*Intrinsics, error) {
	r, c := k.Dims()
	if r != 3 || c != 3 {
		return nil, errors.Errorf("expected a 3x3 camera matrix but got %dx%d", r, c)
	}
	if len(distortion) != 4 {
		return nil, errors.Errorf("the OpenCV fisheye model has 4 distortion coefficients but got %d", len(distortion))
	}
	params := append([]float64{k.At(0, 0), k.At(1, 1), k.At(0, 2), k.At(1, 2)}, distortion...)
	return NewIntrinsics(OpenCVFisheye, width, height, params)
}

func (intr *Intrinsics) deriveMatrices() {
	intr.k = mat.NewDense(4, 4, []float64{
		intr.fx, 0, intr.cx, 0,
		0, intr.fy, intr.cy, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	intr.k3 = mat.NewDense(3, 3, []float64{
		intr.fx, 0, intr.cx,
		0, intr.fy, intr.cy,
		0, 0, 1,
	})
	intr.kInv = mat.NewDense(4, 4, nil)
	intr.k3Inv = mat.NewDense(3, 3, nil)
	// A camera with no parameters (UNKNOWN) has a singular K; its inverses
	// stay zero and are never meaningful.
	if err := intr.kInv.Inverse(intr.k); err != nil {
		intr.kInv.Zero()
	}
	if err := intr.k3Inv.Inverse(intr.k3); err != nil {
		intr.k3Inv.Zero()
	}
}

func (intr *Intrinsics) spec() modelSpec {
	return modelTable[intr.model]
}

// Model returns the name of the camera model.
func (intr *Intrinsics) Model() Model {
	return intr.model
}

// Width returns the width in pixels of the image this camera describes.
func (intr *Intrinsics) Width() int {
	return intr.width
}

// Height returns the height in pixels of the image this camera describes.
func (intr *Intrinsics) Height() int {
	return intr.height
}

// Fx returns the focal length along x, in pixels.
func (intr *Intrinsics) Fx() float64 {
	return intr.fx
}

// Fy returns the focal length along y, in pixels.
func (intr *Intrinsics) Fy() float64 {
	return intr.fy
}

// Cx returns the x coordinate of the principal point, in pixels.
func (intr *Intrinsics) Cx() float64 {
	return intr.cx
}

// Cy returns the y coordinate of the principal point, in pixels.
func (intr *Intrinsics) Cy() float64 {
	return intr.cy
}

// SingleFocalLength reports whether the model carries one shared focal length.
func (intr *Intrinsics) SingleFocalLength() bool {
	return intr.spec().singleFocal
}

// Distortion returns a copy of the distortion coefficient vector.
func (intr *Intrinsics) Distortion() []float64 {
	return append([]float64(nil), intr.distortion...)
}

// K returns a copy of the 4x4 homogeneous camera matrix.
func (intr *Intrinsics) K() *mat.Dense {
	return mat.DenseCopyOf(intr.k)
}

// KInv returns a copy of the inverse of the 4x4 homogeneous camera matrix.
func (intr *Intrinsics) KInv() *mat.Dense {
	return mat.DenseCopyOf(intr.kInv)
}

// K3 returns a copy of the 3x3 camera matrix.
func (intr *Intrinsics) K3() *mat.Dense {
	return mat.DenseCopyOf(intr.k3)
}

// K3Inv returns a copy of the inverse of the 3x3 camera matrix.
func (intr *Intrinsics) K3Inv() *mat.Dense {
	return mat.DenseCopyOf(intr.k3Inv)
}

// Params reconstructs the constructor parameter list from the camera matrix
// coefficients and the distortion vector. Single-focal models emit
// [f, cx, cy, ...]; all others emit [fx, fy, cx, cy, ...].
func (intr *Intrinsics) Params() []float64 {
	return intr.paramsWith(intr.fx, intr.fy, intr.cx, intr.cy)
}

func (intr *Intrinsics) paramsWith(fx, fy, cx, cy float64) []float64 {
	var p []float64
	if intr.model == Unknown {
		return p
	}
	if intr.SingleFocalLength() {
		p = []float64{fx, cx, cy}
	} else {
		p = []float64{fx, fy, cx, cy}
	}
	return append(p, intr.distortion...)
}

// FieldOfView returns the horizontal and vertical field of view in degrees.
func (intr *Intrinsics) FieldOfView() (float64, float64) {
	fovx := 2 * utils.RadToDeg(math.Atan2(float64(intr.width), 2*intr.fx))
	fovy := 2 * utils.RadToDeg(math.Atan2(float64(intr.height), 2*intr.fy))
	return fovx, fovy
}
