package camera

import (
	"context"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"

	"github.com/camforge/mvgeom/utils"
)

// rectGridSize is the per-axis sample count of the rectification grid.
const rectGridSize = 9

type rectangle struct {
	x, y          float64
	width, height float64
}

// rectangles samples a 9x9 pixel grid over the image, undistorts it on the
// camera plane, and returns the outer bounding box of every sample and the
// largest rectangle guaranteed to contain only valid undistorted content. The
// inner edges come from the border rows and columns of the grid: the left edge
// is the rightmost undistorted x of the left column, and so on.
func (intr *Intrinsics) rectangles() (rectangle, rectangle, error) {
	xs := utils.Linspace(0, float64(intr.width-1), rectGridSize)
	ys := utils.Linspace(0, float64(intr.height-1), rectGridSize)
	grid := utils.Grid2D(xs, ys)

	pix := make([]r2.Point, rectGridSize*rectGridSize)
	for i := range pix {
		pix[i] = r2.Point{X: grid.At(i, 0), Y: grid.At(i, 1)}
	}

	undistorted, err := intr.UndistortPoints(intr.ImageToCameraPoints(pix))
	if err != nil {
		return rectangle{}, rectangle{}, err
	}

	outMinX, outMaxX := math.Inf(1), math.Inf(-1)
	outMinY, outMaxY := math.Inf(1), math.Inf(-1)
	inLeft, inRight := math.Inf(-1), math.Inf(1)
	inTop, inBottom := math.Inf(-1), math.Inf(1)
	for iy := 0; iy < rectGridSize; iy++ {
		for ix := 0; ix < rectGridSize; ix++ {
			pt := undistorted[iy*rectGridSize+ix]
			outMinX = math.Min(outMinX, pt.X)
			outMaxX = math.Max(outMaxX, pt.X)
			outMinY = math.Min(outMinY, pt.Y)
			outMaxY = math.Max(outMaxY, pt.Y)
			if ix == 0 {
				inLeft = math.Max(inLeft, pt.X)
			}
			if ix == rectGridSize-1 {
				inRight = math.Min(inRight, pt.X)
			}
			if iy == 0 {
				inTop = math.Max(inTop, pt.Y)
			}
			if iy == rectGridSize-1 {
				inBottom = math.Min(inBottom, pt.Y)
			}
		}
	}

	outer := rectangle{x: outMinX, y: outMinY, width: outMaxX - outMinX, height: outMaxY - outMinY}
	inner := rectangle{x: inLeft, y: inTop, width: inRight - inLeft, height: inBottom - inTop}
	return outer, inner, nil
}

// UndistortCamera returns the PINHOLE camera best representing the undistorted
// image. alpha trades retained content for validity: 0 crops to all-valid
// pixels, 1 keeps every source pixel, possibly with invalid border pixels. The
// two candidate projections map the inner and outer rectangles to the
// viewport; the result interpolates between them by alpha.
func (intr *Intrinsics) UndistortCamera(alpha float64) (*Intrinsics, error) {
	outer, inner, err := intr.rectangles()
	if err != nil {
		return nil, err
	}
	if inner.width <= 0 || inner.height <= 0 {
		return nil, NewDegenerateRectificationError(inner.width, inner.height)
	}

	w := float64(intr.width)
	h := float64(intr.height)

	fx0 := (w - 1) / inner.width
	fy0 := (h - 1) / inner.height
	cx0 := -fx0 * inner.x
	cy0 := -fy0 * inner.y

	fx1 := (w - 1) / outer.width
	fy1 := (h - 1) / outer.height
	cx1 := -fx1 * outer.x
	cy1 := -fy1 * outer.y

	fx := fx0*(1-alpha) + fx1*alpha
	fy := fy0*(1-alpha) + fy1*alpha
	cx := cx0*(1-alpha) + cx1*alpha
	cy := cy0*(1-alpha) + cy1*alpha

	return NewIntrinsics(Pinhole, intr.width, intr.height, []float64{fx, fy, cx, cy})
}

// RectifyMap is the output of rectification planning: the PINHOLE camera of
// the undistorted image, and per-pixel coordinates into the original image.
// MapX and MapY have one row per output image row; entry (v, u) is the
// fractional source pixel to sample for output pixel (u, v). Resampling
// intensities from the maps is up to the caller.
type RectifyMap struct {
	Camera *Intrinsics
	MapX   *mat.Dense
	MapY   *mat.Dense
}

// UndistortRectifyMap plans the rectification of this camera's image for the
// given alpha. Every output pixel is unprojected through the new pinhole
// camera, re-distorted with this camera's model, and mapped back to this
// camera's pixels. Rows are processed in parallel; no pixel depends on
// another.
func (intr *Intrinsics) UndistortRectifyMap(ctx context.Context, alpha float64) (*RectifyMap, error) {
	pinhole, err := intr.UndistortCamera(alpha)
	if err != nil {
		return nil, err
	}

	w := pinhole.Width()
	h := pinhole.Height()
	mapX := mat.NewDense(h, w, nil)
	mapY := mat.NewDense(h, w, nil)

	err = utils.GroupWorkParallel(ctx, h, func(_, from, to int) error {
		row := make([]r2.Point, w)
		for v := from; v < to; v++ {
			for u := 0; u < w; u++ {
				row[u] = r2.Point{X: float64(u), Y: float64(v)}
			}
			distorted, err := intr.DistortPoints(pinhole.ImageToCameraPoints(row))
			if err != nil {
				return err
			}
			pix := intr.ToImagePoints(distorted)
			for u := 0; u < w; u++ {
				mapX.Set(v, u, pix[u].X)
				mapY.Set(v, u, pix[u].Y)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RectifyMap{Camera: pinhole, MapX: mapX, MapY: mapY}, nil
}
