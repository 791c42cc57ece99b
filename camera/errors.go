package camera

import "github.com/pkg/errors"

var (
	// ErrInvalidModel is when a camera model name is not recognized.
	ErrInvalidModel = errors.New("camera model not recognized")
	// ErrParameterCount is when the parameter list has the wrong length for the model.
	ErrParameterCount = errors.New("wrong number of parameters for camera model")
	// ErrUnsupportedOperation is when 2D-only distortion is requested from a model
	// that projects and distorts 3D points in a single step.
	ErrUnsupportedOperation = errors.New("camera model couples projection and distortion, needs 3D points")
	// ErrUnsupportedModel is when distortion is requested for a model with no
	// implemented distortion function.
	ErrUnsupportedModel = errors.New("no distortion implemented for camera model")
	// ErrSingularJacobian is when the numerically estimated distortion Jacobian
	// cannot be inverted for a point.
	ErrSingularJacobian = errors.New("estimated distortion jacobian is singular")
	// ErrDegenerateRectification is when distortion is too severe for any fully
	// valid undistorted interior rectangle to exist.
	ErrDegenerateRectification = errors.New("no valid undistorted interior rectangle")
)

// NewInvalidModelError is used when a model name is not in the model table.
func NewInvalidModelError(model Model) error {
	return errors.Wrapf(ErrInvalidModel, "model %q", model)
}

// NewParameterCountError is used when params do not match the model's arity.
func NewParameterCountError(model Model, want, got int) error {
	return errors.Wrapf(ErrParameterCount, "model %q expects %d parameters but got %d", model, want, got)
}

// NewUnsupportedOperationError is used when DistortPoints is called on a model
// whose distortion is inseparable from projection.
func NewUnsupportedOperationError(model Model) error {
	return errors.Wrapf(ErrUnsupportedOperation, "model %q", model)
}

// NewUnsupportedModelError is used when no distortion function exists for a model.
func NewUnsupportedModelError(model Model) error {
	return errors.Wrapf(ErrUnsupportedModel, "model %q", model)
}

// NewDegenerateRectificationError is used when the inner valid rectangle has
// non-positive extent.
func NewDegenerateRectificationError(width, height float64) error {
	return errors.Wrapf(ErrDegenerateRectification, "inner rectangle is %gx%g", width, height)
}
