package utils

import "gonum.org/v1/gonum/mat"

// Grid2D generates a dense grid from the given x and y coordinate values.
// The result has len(xs)*len(ys) rows and two columns (x, y), in row-major
// order: row iy*len(xs)+ix holds the point (xs[ix], ys[iy]).
func Grid2D(xs, ys []float64) *mat.Dense {
	out := mat.NewDense(len(xs)*len(ys), 2, nil)
	k := 0
	for _, y := range ys {
		for _, x := range xs {
			out.Set(k, 0, x)
			out.Set(k, 1, y)
			k++
		}
	}
	return out
}
