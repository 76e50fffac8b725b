// Package writer encodes raw render buffers into image files. Buffers hold
// un-averaged per-pixel color sums; averaging and gamma correction happen
// here.
package writer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/prismrt/bandtracer/pkg/core"
)

// ImageWriter encodes a raw color buffer to an output stream
type ImageWriter interface {
	WriteTo(w io.Writer, data []core.Vec3, width, height, samples int) error
}

// GuessOutputFormat picks a writer from a file extension. The empty
// extension defaults to PPM for streaming to stdout.
func GuessOutputFormat(ext string) (ImageWriter, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "", "ppm":
		return &PPMWriter{}, nil
	case "png":
		return &PNGWriter{}, nil
	default:
		return nil, errors.Errorf("unsupported output format %q", ext)
	}
}

// PPMWriter emits plain-text P3 portable pixmaps
type PPMWriter struct{}

// WriteTo encodes the buffer as a P3 pixmap
func (p *PPMWriter) WriteTo(w io.Writer, data []core.Vec3, width, height, samples int) error {
	if err := validateBuffer(data, width, height, samples); err != nil {
		return err
	}

	buffered := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", width, height); err != nil {
		return errors.Wrap(err, "writing PPM header")
	}

	for _, sum := range data {
		r, g, b := resolvePixel(sum, samples)
		if _, err := fmt.Fprintf(buffered, "%d %d %d\n", r, g, b); err != nil {
			return errors.Wrap(err, "writing PPM pixel")
		}
	}
	return errors.Wrap(buffered.Flush(), "flushing PPM output")
}

// PNGWriter emits 8-bit RGBA PNG images
type PNGWriter struct{}

// WriteTo encodes the buffer as a PNG
func (p *PNGWriter) WriteTo(w io.Writer, data []core.Vec3, width, height, samples int) error {
	if err := validateBuffer(data, width, height, samples); err != nil {
		return err
	}

	img := ToImage(data, width, height, samples)
	return errors.Wrap(png.Encode(w, img), "encoding PNG")
}

// ToImage resolves a raw buffer into a displayable image
func ToImage(data []core.Vec3, width, height, samples int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := resolvePixel(data[y*width+x], samples)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func validateBuffer(data []core.Vec3, width, height, samples int) error {
	if len(data) != width*height {
		return errors.Errorf("buffer holds %d pixels for a %dx%d image", len(data), width, height)
	}
	if samples < 1 {
		return errors.Errorf("sample count must be positive, got %d", samples)
	}
	return nil
}
