// Package camera models the intrinsic geometry of a calibrated camera:
// projection between 3D camera-frame points and pixels, parametric lens
// distortion, numerical undistortion, and rectification planning.
package camera

// Model is the name of a parametric camera model family, COLMAP naming.
type Model string

const (
	// SimplePinhole is a distortion-free model with one shared focal length.
	SimplePinhole = Model("SIMPLE_PINHOLE")
	// Pinhole is a distortion-free model with separate focal lengths.
	Pinhole = Model("PINHOLE")
	// SimpleRadial has one shared focal length and one radial coefficient.
	SimpleRadial = Model("SIMPLE_RADIAL")
	// Radial has one shared focal length and two radial coefficients.
	Radial = Model("RADIAL")
	// OpenCV is the 4-coefficient OpenCV model (k1, k2, p1, p2).
	OpenCV = Model("OPENCV")
	// OpenCVFisheye is the OpenCV equidistant fisheye model (k1..k4).
	OpenCVFisheye = Model("OPENCV_FISHEYE")
	// FullOpenCV is the 8-coefficient rational OpenCV model.
	FullOpenCV = Model("FULL_OPENCV")
	// FOV is the field-of-view model of Devernay and Faugeras.
	FOV = Model("FOV")
	// OpenCV5 is the 5-coefficient OpenCV model (k1, k2, p1, p2, k3).
	OpenCV5 = Model("OPENCV5")
	// Unknown is a camera with no parameters at all.
	Unknown = Model("UNKNOWN")
)

// modelSpec is the static layout descriptor for one camera model: the ordered
// parameter names and its capabilities. Parameter names are drawn from
// {f, fx, fy, cx, cy} for the camera matrix; everything else is a distortion
// coefficient, kept in declaration order.
type modelSpec struct {
	paramNames []string
	// singleFocal means the layout carries one shared focal length "f".
	singleFocal bool
	// coupledProjection means distortion cannot be applied to 2D points on
	// their own; the model projects and distorts 3D points in one step.
	coupledProjection bool
}

var modelTable = map[Model]modelSpec{
	SimplePinhole: {paramNames: []string{"f", "cx", "cy"}, singleFocal: true},
	Pinhole:       {paramNames: []string{"fx", "fy", "cx", "cy"}},
	SimpleRadial:  {paramNames: []string{"f", "cx", "cy", "k"}, singleFocal: true},
	Radial:        {paramNames: []string{"f", "cx", "cy", "k1", "k2"}, singleFocal: true},
	OpenCV: {
		paramNames:        []string{"fx", "fy", "cx", "cy", "k1", "k2", "p1", "p2"},
		coupledProjection: true,
	},
	OpenCVFisheye: {
		paramNames:        []string{"fx", "fy", "cx", "cy", "k1", "k2", "k3", "k4"},
		coupledProjection: true,
	},
	FullOpenCV: {
		paramNames:        []string{"fx", "fy", "cx", "cy", "k1", "k2", "p1", "p2", "k3", "k4", "k5", "k6"},
		coupledProjection: true,
	},
	FOV:     {paramNames: []string{"fx", "fy", "cx", "cy", "omega"}},
	OpenCV5: {paramNames: []string{"fx", "fy", "cx", "cy", "k1", "k2", "p1", "p2", "k3"}},
	Unknown: {},
}

// Models returns the names of all supported camera models.
func Models() []Model {
	out := make([]Model, 0, len(modelTable))
	for m := range modelTable {
		out = append(out, m)
	}
	return out
}

// NumParams returns the number of parameters the given model expects.
func (m Model) NumParams() (int, error) {
	spec, ok := modelTable[m]
	if !ok {
		return 0, NewInvalidModelError(m)
	}
	return len(spec.paramNames), nil
}

// ParamNames returns the ordered parameter names of the given model.
func (m Model) ParamNames() ([]string, error) {
	spec, ok := modelTable[m]
	if !ok {
		return nil, NewInvalidModelError(m)
	}
	return append([]string(nil), spec.paramNames...), nil
}
