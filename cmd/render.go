package cmd

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/renderer"
	"github.com/prismrt/bandtracer/pkg/scene"
	"github.com/prismrt/bandtracer/pkg/writer"
)

// RenderScene traces the selected scene and writes the result to a file or
// to stdout.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	out := ctx.String("out")

	random := rand.New(rand.NewSource(ctx.Int64("seed")))
	sc, err := scene.ByName(ctx.String("scene"), float64(width)/float64(height), random)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	opts := renderer.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      ctx.Int("threads"),
		Background:      sc.Background,
	}

	logger.Noticef("rendering scene %q", sc.Name)
	buffer, stats, err := renderer.Render(sc.World, sc.Camera, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	printWorkerStats(stats)

	if err := writeOutput(buffer, out, opts); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if ctx.Bool("preview") {
		if err := writePreview(buffer, out, opts); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}
	return nil
}

// printWorkerStats renders a per-band timing table to stderr, keeping
// stdout free for piped image data.
func printWorkerStats(stats *renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Band", "Rows", "Pixels", "Time"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.Band),
			fmt.Sprintf("%d", ws.Rows),
			fmt.Sprintf("%d", ws.Pixels),
			ws.Duration.String(),
		})
	}
	table.SetFooter([]string{"total", "", fmt.Sprintf("%d", stats.TotalPixels), stats.Elapsed.String()})
	table.Render()
}

// writeOutput encodes the buffer to the named file, or as PPM on stdout
// when out is "-" or empty.
func writeOutput(buffer []core.Vec3, out string, opts renderer.Options) error {
	if out == "" || out == "-" {
		return (&writer.PPMWriter{}).WriteTo(os.Stdout, buffer, opts.Width, opts.Height, opts.SamplesPerPixel)
	}

	imageWriter, err := writer.GuessOutputFormat(filepath.Ext(out))
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	defer f.Close()

	if err := imageWriter.WriteTo(f, buffer, opts.Width, opts.Height, opts.SamplesPerPixel); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)
	return nil
}

// writePreview saves a half-size PNG next to the main output
func writePreview(buffer []core.Vec3, out string, opts renderer.Options) error {
	if out == "" || out == "-" {
		return errors.New("preview requires a file output")
	}

	full := writer.ToImage(buffer, opts.Width, opts.Height, opts.SamplesPerPixel)
	half := resize.Resize(uint(opts.Width/2), 0, full, resize.Lanczos3)

	previewPath := strings.TrimSuffix(out, filepath.Ext(out)) + ".preview.png"
	f, err := os.Create(previewPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", previewPath)
	}
	defer f.Close()

	if err := png.Encode(f, half); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	logger.Noticef("wrote %s", previewPath)
	return nil
}
