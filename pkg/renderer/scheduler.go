// Package renderer drives parallel band-based rendering of a scene into a
// raw color buffer.
package renderer

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/prismrt/bandtracer/log"
	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
)

var logger = log.New("renderer")

// Options configures a render pass
type Options struct {
	Width           int       // Output width in pixels
	Height          int       // Output height in pixels
	SamplesPerPixel int       // Jittered samples per pixel
	MaxDepth        int       // Path recursion budget
	NumWorkers      int       // Concurrent band workers
	Background      core.Vec3 // Radiance for rays that escape the scene
}

// Validate rejects configurations the render loop cannot run with. Widths
// and heights below 2 would degenerate the pixel-to-viewport mapping.
func (o Options) Validate() error {
	if o.Width < 2 || o.Height < 2 {
		return errors.Errorf("image dimensions must be at least 2x2, got %dx%d", o.Width, o.Height)
	}
	if o.SamplesPerPixel < 1 {
		return errors.Errorf("samples per pixel must be positive, got %d", o.SamplesPerPixel)
	}
	if o.MaxDepth < 1 {
		return errors.Errorf("max depth must be positive, got %d", o.MaxDepth)
	}
	if o.NumWorkers < 1 {
		return errors.Errorf("worker count must be positive, got %d", o.NumWorkers)
	}
	return nil
}

// Render traces the scene into a row-major buffer of Width*Height raw color
// sums, one band per worker. Each worker owns a seeded generator and a
// private buffer; buffers are merged only after every worker has finished,
// so the output is deterministic for a fixed configuration. A panicking
// worker aborts the whole render and surfaces as an error.
func Render(world geometry.Hittable, camera *Camera, opts Options) ([]core.Vec3, *RenderStats, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	bands := SliceVertically(opts.Width, opts.Height, opts.NumWorkers)
	logger.Infof("rendering %dx%d at %d spp across %d bands",
		opts.Width, opts.Height, opts.SamplesPerPixel, len(bands))

	start := time.Now()
	buffers := make([][]core.Vec3, len(bands))
	workerStats := make([]WorkerStats, len(bands))

	var group errgroup.Group
	for i, band := range bands {
		i, band := i, band
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("render worker %d panicked: %v", i, r)
				}
			}()

			random := rand.New(rand.NewSource(int64(i)))
			bandStart := time.Now()
			buffers[i] = RenderTile(world, camera, band, opts, random)
			workerStats[i] = WorkerStats{
				Band:     i,
				Rows:     band.Height,
				Pixels:   band.Area(),
				Duration: time.Since(bandStart),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "render aborted")
	}

	// Join then merge: bands are disjoint and stacked, so the image is the
	// concatenation of the band buffers in band order.
	image := make([]core.Vec3, 0, opts.Width*opts.Height)
	for _, buffer := range buffers {
		image = append(image, buffer...)
	}

	stats := &RenderStats{
		Workers:      workerStats,
		TotalPixels:  opts.Width * opts.Height,
		TotalSamples: opts.Width * opts.Height * opts.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	logger.Noticef("render finished in %v", stats.Elapsed)
	return image, stats, nil
}
