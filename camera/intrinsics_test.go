package camera

import (
	"errors"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestParamsRoundTrip(t *testing.T) {
	for _, model := range Models() {
		n, err := model.NumParams()
		test.That(t, err, test.ShouldBeNil)
		params := make([]float64, n)
		for i := range params {
			params[i] = float64(i + 1)
		}
		intr, err := NewIntrinsics(model, 640, 480, params)
		test.That(t, err, test.ShouldBeNil)
		if n == 0 {
			test.That(t, len(intr.Params()), test.ShouldEqual, 0)
			continue
		}
		test.That(t, intr.Params(), test.ShouldResemble, params)
	}
}

func TestConstructorFailures(t *testing.T) {
	_, err := NewIntrinsics(Model("BOGUS"), 640, 480, []float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidModel), test.ShouldBeTrue)

	_, err = NewIntrinsics(Pinhole, 640, 480, []float64{500, 320, 240})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrParameterCount), test.ShouldBeTrue)

	_, err = NewIntrinsics(SimpleRadial, 640, 480, []float64{500, 320, 240, 0.1, 0.2})
	test.That(t, errors.Is(err, ErrParameterCount), test.ShouldBeTrue)
}

func TestSingleFocalLayout(t *testing.T) {
	intr, err := NewIntrinsics(SimpleRadial, 640, 480, []float64{500, 320, 240, 0.1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.SingleFocalLength(), test.ShouldBeTrue)
	test.That(t, intr.Fx(), test.ShouldEqual, 500.0)
	test.That(t, intr.Fy(), test.ShouldEqual, 500.0)
	test.That(t, intr.Cx(), test.ShouldEqual, 320.0)
	test.That(t, intr.Cy(), test.ShouldEqual, 240.0)
	test.That(t, intr.Distortion(), test.ShouldResemble, []float64{0.1})

	intr, err = NewIntrinsics(OpenCV5, 640, 480, []float64{500, 510, 320, 240, 0.1, 0.2, 0.3, 0.4, 0.5})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.SingleFocalLength(), test.ShouldBeFalse)
	test.That(t, intr.Fy(), test.ShouldEqual, 510.0)
	test.That(t, intr.Distortion(), test.ShouldResemble, []float64{0.1, 0.2, 0.3, 0.4, 0.5})
}

func TestCameraMatrices(t *testing.T) {
	intr, err := NewIntrinsics(Pinhole, 640, 480, []float64{500, 510, 320, 240})
	test.That(t, err, test.ShouldBeNil)

	k3 := intr.K3()
	test.That(t, k3.At(0, 0), test.ShouldEqual, 500.0)
	test.That(t, k3.At(1, 1), test.ShouldEqual, 510.0)
	test.That(t, k3.At(0, 2), test.ShouldEqual, 320.0)
	test.That(t, k3.At(1, 2), test.ShouldEqual, 240.0)
	test.That(t, k3.At(2, 2), test.ShouldEqual, 1.0)

	k := intr.K()
	test.That(t, k.At(3, 3), test.ShouldEqual, 1.0)
	test.That(t, k.At(0, 3), test.ShouldEqual, 0.0)

	// K * K^-1 should be the identity, for both sizes
	var prod mat.Dense
	prod.Mul(intr.K3(), intr.K3Inv())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			test.That(t, prod.At(i, j), test.ShouldAlmostEqual, want, 1e-12)
		}
	}
	var prod4 mat.Dense
	prod4.Mul(intr.K(), intr.KInv())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			test.That(t, prod4.At(i, j), test.ShouldAlmostEqual, want, 1e-12)
		}
	}
}

func TestFieldOfView(t *testing.T) {
	intr, err := NewIntrinsics(Pinhole, 640, 480, []float64{500, 500, 320, 240})
	test.That(t, err, test.ShouldBeNil)
	fovx, fovy := intr.FieldOfView()
	test.That(t, fovx, test.ShouldAlmostEqual, 65.238, 0.01)
	test.That(t, fovy, test.ShouldAlmostEqual, 51.282, 0.01)
}

func TestNewPinholeIntrinsics(t *testing.T) {
	intr, err := NewPinholeIntrinsics(500, 500, 320, 240, 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, SimplePinhole)
	test.That(t, intr.Params(), test.ShouldResemble, []float64{500, 320, 240})

	intr, err = NewPinholeIntrinsics(500, 510, 320, 240, 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, Pinhole)
	test.That(t, intr.Params(), test.ShouldResemble, []float64{500, 510, 320, 240})
}

func TestNewIntrinsicsFromOpenCV(t *testing.T) {
	k := mat.NewDense(3, 3, []float64{
		535.9, 0, 342.3,
		0, 535.9, 235.6,
		0, 0, 1,
	})
	dist5 := []float64{-0.266, -0.0386, 0.00178, -0.00028, 0.238}

	intr, err := NewIntrinsicsFromOpenCV(k, dist5, 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, OpenCV5)
	test.That(t, intr.Fx(), test.ShouldEqual, 535.9)
	test.That(t, intr.Cy(), test.ShouldEqual, 235.6)
	test.That(t, intr.Distortion(), test.ShouldResemble, dist5)

	intr, err = NewIntrinsicsFromOpenCV(k, dist5[:4], 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, OpenCV)

	intr, err = NewIntrinsicsFromOpenCV(k, make([]float64, 8), 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, FullOpenCV)

	_, err = NewIntrinsicsFromOpenCV(k, make([]float64, 6), 640, 480)
	test.That(t, err, test.ShouldNotBeNil)

	intr, err = NewIntrinsicsFromOpenCVFisheye(k, []float64{0.01, -0.002, 0.0003, 0}, 640, 480)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, intr.Model(), test.ShouldEqual, OpenCVFisheye)

	_, err = NewIntrinsicsFromOpenCVFisheye(k, make([]float64, 5), 640, 480)
	test.That(t, err, test.ShouldNotBeNil)
}
