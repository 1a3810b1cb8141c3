package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/web/server"
)

// ServeFlags are the flags accepted by the serve command
var ServeFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "port, p",
		Value: 8080,
		Usage: "port to listen on",
	},
}

// Serve the render API until interrupted.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.NewServer(ctx.Int("port")).Start(runCtx)
}
