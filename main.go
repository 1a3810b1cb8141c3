package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scene files with Whitted-style ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringSliceFlag{
			Name:  "debug",
			Usage: "enable debug logging for one package (scene, tracer, renderer, server); repeatable",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene file",
			Description: `
Parse a scene file, build an octree BVH over its bounded objects and trace one
ray per supersample. Shading combines Lambertian lighting with hard shadows and
recursive mirror reflection. The image is written to the file named in the
scene header unless --out is given.`,
			ArgsUsage: "scene.txt",
			Flags:     cmd.RenderFlags,
			Action:    cmd.RenderScene,
		},
		{
			Name:      "inspect",
			Usage:     "print scene and BVH statistics without rendering",
			ArgsUsage: "scene.txt",
			Action:    cmd.Inspect,
		},
		{
			Name:  "serve",
			Usage: "serve the render and inspect API over HTTP",
			Description: `
POST a scene file to /api/render to receive the encoded image as JSON, or to
/api/inspect?x=&y= to trace a single pixel.`,
			Flags:  cmd.ServeFlags,
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
