package camera

import (
	"github.com/golang/geo/r2"

	"github.com/camforge/mvgeom/utils"
)

// Scale returns the intrinsics of the camera producing the same image scaled
// by (scaleX, scaleY). Focal lengths and the principal point scale with the
// image; distortion coefficients are unchanged.
func (intr *Intrinsics) Scale(scaleX, scaleY float64) (*Intrinsics, error) {
	newWidth := utils.RoundHalfUp(float64(intr.width) * scaleX)
	newHeight := utils.RoundHalfUp(float64(intr.height) * scaleY)

	fx := intr.fx * scaleX
	fy := intr.fy * scaleY
	cx := intr.cx * scaleX
	cy := intr.cy * scaleY

	return NewIntrinsics(intr.model, newWidth, newHeight, intr.paramsWith(fx, fy, cx, cy))
}

// Resize returns the intrinsics of the camera producing the same image resized
// to newWidth x newHeight pixels.
func (intr *Intrinsics) Resize(newWidth, newHeight int) (*Intrinsics, error) {
	scaleX := float64(newWidth) / float64(intr.width)
	scaleY := float64(newHeight) / float64(intr.height)
	return intr.Scale(scaleX, scaleY)
}

// Crop returns the intrinsics of the camera producing the crop of the image
// starting at topLeft with the given size. The principal point shifts by
// -topLeft; focal lengths and distortion coefficients are unchanged.
func (intr *Intrinsics) Crop(topLeft r2.Point, cropWidth, cropHeight int) (*Intrinsics, error) {
	cx := intr.cx - topLeft.X
	cy := intr.cy - topLeft.Y
	return NewIntrinsics(intr.model, cropWidth, cropHeight, intr.paramsWith(intr.fx, intr.fy, cx, cy))
}
