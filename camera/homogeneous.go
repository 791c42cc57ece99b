package camera

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// ToHomogeneous converts 2D points to an Nx3 block of homogeneous coordinates,
// padding the last column with ones.
func ToHomogeneous(pts []r2.Point) *mat.Dense {
	out := mat.NewDense(len(pts), 3, nil)
	for i, pt := range pts {
		out.Set(i, 0, pt.X)
		out.Set(i, 1, pt.Y)
		out.Set(i, 2, 1)
	}
	return out
}

// FromHomogeneous removes the homogeneous dimension of an Nx3 block, dividing
// each row by its last coordinate.
func FromHomogeneous(m *mat.Dense) []r2.Point {
	n, _ := m.Dims()
	out := make([]r2.Point, n)
	for i := 0; i < n; i++ {
		w := m.At(i, 2)
		out[i] = r2.Point{X: m.At(i, 0) / w, Y: m.At(i, 1) / w}
	}
	return out
}
