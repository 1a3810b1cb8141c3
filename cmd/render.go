package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "workers, w",
		Value: 0,
		Usage: "number of render workers (0 = logical CPU count)",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: renderer.DefaultConfig().TileSize,
		Usage: "edge length of render tiles in samples",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "output image file; the format follows the extension (default: name from the scene header)",
	},
	cli.Float64Flag{
		Name:  "exposure",
		Usage: "override the scene exposure (0 disables tone mapping)",
	},
	cli.IntFlag{
		Name:  "bounces",
		Usage: "override the scene reflection depth",
	},
	cli.IntFlag{
		Name:  "aa",
		Usage: "override the scene supersampling factor",
	},
}

// Render a scene file to an image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := scene.LoadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	filename, format, err := applyOverrides(ctx, &sc.Options)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.Workers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile-size")

	r, err := renderer.New(sc, config)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.RenderImage(runCtx)
	if err != nil {
		return err
	}

	if err := output.Save(filename, img, format); err != nil {
		return err
	}

	logger.Noticef("render statistics\n%s", renderStatsTable(stats))
	logger.Noticef("saved %s", filename)
	return nil
}

// applyOverrides applies command line overrides to the scene options and
// returns the output file name and format.
func applyOverrides(ctx *cli.Context, opts *scene.Options) (string, string, error) {
	if ctx.IsSet("exposure") {
		opts.Exposure = ctx.Float64("exposure")
	}
	if ctx.IsSet("bounces") {
		opts.MaxBounces = ctx.Int("bounces")
	}
	if ctx.IsSet("aa") {
		opts.Supersample = ctx.Int("aa")
	}

	filename := ctx.String("out")
	if filename == "" {
		return opts.OutputName, opts.Format, nil
	}

	format, err := output.FormatFromName(filename)
	if err != nil {
		return "", "", err
	}
	opts.OutputName = filename
	opts.Format = format
	return filename, format, nil
}
