package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/prismrt/bandtracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bandtracer"
	app.Usage = "render scenes using path tracing"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Trace one of the built-in scenes into a PPM or PNG image. The image is split
into horizontal bands rendered concurrently; output is written to the file
given by --out, or streamed to stdout as PPM when --out is "-".`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 300,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 10,
					Usage: "path recursion depth",
				},
				cli.IntFlag{
					Name:  "threads",
					Value: 4,
					Usage: "concurrent render workers",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "cover",
					Usage: "scene to render (see the scenes command)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene construction randomness",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output image filename, or - for PPM on stdout",
				},
				cli.BoolFlag{
					Name:  "preview",
					Usage: "also write a half-size PNG preview",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
