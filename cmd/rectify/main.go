// Command rectify loads a camera intrinsics JSON record and reports the
// field of view and the optimal undistorted pinhole camera for a given alpha.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/camforge/mvgeom/camera"
)

var logger = golog.NewDevelopmentLogger("rectify")

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
}

func realMain(args []string) error {
	flags := flag.NewFlagSet("rectify", flag.ContinueOnError)
	alpha := flags.Float64("alpha", 0, "trade-off between valid-only pixels (0) and full field of view (1)")
	withMap := flags.Bool("map", false, "also compute the per-pixel resampling map")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return errors.New("rectify needs <intrinsics json>")
	}

	intr, err := camera.NewIntrinsicsFromJSONFile(flags.Arg(0))
	if err != nil {
		return err
	}
	fovx, fovy := intr.FieldOfView()
	logger.Infof("model %s, %dx%d, fov %.1f x %.1f degrees",
		intr.Model(), intr.Width(), intr.Height(), fovx, fovy)

	pinhole, err := intr.UndistortCamera(*alpha)
	if err != nil {
		return err
	}
	logger.Infof("undistort camera at alpha=%.2f: fx=%.3f fy=%.3f cx=%.3f cy=%.3f",
		*alpha, pinhole.Fx(), pinhole.Fy(), pinhole.Cx(), pinhole.Cy())

	if *withMap {
		plan, err := intr.UndistortRectifyMap(context.Background(), *alpha)
		if err != nil {
			return err
		}
		rows, cols := plan.MapX.Dims()
		logger.Infof("resampling map is %dx%d", rows, cols)
	}
	return nil
}
