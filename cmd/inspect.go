package cmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// Inspect parses and builds a scene and reports its statistics without rendering.
func Inspect(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := scene.LoadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	t := tracer.New(sc)
	logger.Noticef("scene statistics\n%s", sceneStatsTable(sc, t.BVH().Stats()))
	return nil
}
