package cmd

import (
	"github.com/urfave/cli"

	"github.com/prismrt/bandtracer/log"
)

var logger = log.New("bandtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
