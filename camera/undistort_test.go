package camera

import (
	"errors"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

var undistortTestPoints = []r2.Point{
	{X: 0, Y: 0},
	{X: 0.3, Y: -0.2},
	{X: -0.5, Y: 0.25},
	{X: 0.6, Y: 0.45},
	{X: -0.35, Y: -0.55},
}

func testDistortUndistortRoundTrip(t *testing.T, intr *Intrinsics) {
	t.Helper()
	distorted, err := intr.DistortPoints(undistortTestPoints)
	test.That(t, err, test.ShouldBeNil)
	recovered, err := intr.UndistortPoints(distorted)
	test.That(t, err, test.ShouldBeNil)
	for i := range undistortTestPoints {
		test.That(t, recovered[i].X, test.ShouldAlmostEqual, undistortTestPoints[i].X, 1e-6)
		test.That(t, recovered[i].Y, test.ShouldAlmostEqual, undistortTestPoints[i].Y, 1e-6)
	}
}

func TestUndistortSimpleRadial(t *testing.T) {
	intr, err := NewIntrinsics(SimpleRadial, 640, 480, []float64{500, 320, 240, 0.05})
	test.That(t, err, test.ShouldBeNil)
	testDistortUndistortRoundTrip(t, intr)
}

func TestUndistortRadial(t *testing.T) {
	intr, err := NewIntrinsics(Radial, 640, 480, []float64{500, 320, 240, 0.1, 0.01})
	test.That(t, err, test.ShouldBeNil)
	testDistortUndistortRoundTrip(t, intr)
}

func TestUndistortOpenCV5(t *testing.T) {
	intr, err := NewIntrinsics(OpenCV5, 640, 480,
		[]float64{500, 500, 320, 240, 0.05, 0.01, 0.001, -0.001, 0.005})
	test.That(t, err, test.ShouldBeNil)
	testDistortUndistortRoundTrip(t, intr)
}

func TestUndistortNoDistortionIsIdentity(t *testing.T) {
	intr, err := NewIntrinsics(Pinhole, 640, 480, []float64{500, 500, 320, 240})
	test.That(t, err, test.ShouldBeNil)
	out, err := intr.UndistortPoints(undistortTestPoints)
	test.That(t, err, test.ShouldBeNil)
	for i := range undistortTestPoints {
		test.That(t, out[i].X, test.ShouldAlmostEqual, undistortTestPoints[i].X, 1e-12)
		test.That(t, out[i].Y, test.ShouldAlmostEqual, undistortTestPoints[i].Y, 1e-12)
	}
}

func TestUndistortEmptyBatch(t *testing.T) {
	intr, err := NewIntrinsics(Radial, 640, 480, []float64{500, 320, 240, 0.1, 0})
	test.That(t, err, test.ShouldBeNil)
	out, err := intr.UndistortPoints(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(out), test.ShouldEqual, 0)
}

func TestUndistortCoupledModelErrors(t *testing.T) {
	intr, err := NewIntrinsics(OpenCV, 640, 480, []float64{500, 500, 320, 240, 0.1, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	_, err = intr.UndistortPoints(undistortTestPoints)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrUnsupportedOperation), test.ShouldBeTrue)
}
