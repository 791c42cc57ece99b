package camera

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// IntrinsicsConfig is the plain-record form of an Intrinsics, suitable for
// persistence and exchange.
type IntrinsicsConfig struct {
	Width  int       `json:"width_px"`
	Height int       `json:"height_px"`
	Model  Model     `json:"camera_model"`
	Params []float64 `json:"params"`
}

// Config returns the plain-record form of the camera.
func (intr *Intrinsics) Config() *IntrinsicsConfig {
	return &IntrinsicsConfig{
		Width:  intr.width,
		Height: intr.height,
		Model:  intr.model,
		Params: intr.Params(),
	}
}

// NewIntrinsicsFromConfig builds an Intrinsics back from its plain-record form.
func NewIntrinsicsFromConfig(cfg *IntrinsicsConfig) (*Intrinsics, error) {
	if cfg == nil {
		return nil, errors.New("no intrinsics config provided")
	}
	return NewIntrinsics(cfg.Model, cfg.Width, cfg.Height, cfg.Params)
}

// NewIntrinsicsFromJSONFile reads an IntrinsicsConfig from a JSON file and
// builds the camera it describes.
func NewIntrinsicsFromJSONFile(jsonPath string) (*Intrinsics, error) {
	//nolint:gosec
	jsonFile, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening JSON file")
	}
	defer goutils.UncheckedErrorFunc(jsonFile.Close)
	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON data")
	}
	cfg := &IntrinsicsConfig{}
	if err := json.Unmarshal(byteValue, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON string")
	}
	return NewIntrinsicsFromConfig(cfg)
}
