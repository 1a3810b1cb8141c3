package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

var logger = log.New("whitted")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	for _, module := range ctx.GlobalStringSlice("debug") {
		log.SetModuleLevel(module, log.Debug)
	}
}
