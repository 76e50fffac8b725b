package renderer

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
	"github.com/prismrt/bandtracer/pkg/integrator"
)

// Subregion is a rectangular slice of the output image, addressed in full
// image coordinates with (X, Y) at its top-left corner.
type Subregion struct {
	X, Y          int
	Width, Height int
}

// Area returns the pixel count of the subregion
func (s Subregion) Area() int {
	return s.Width * s.Height
}

// GridCell maps subregion-local coordinates to an index into a row-major
// buffer of Area() elements.
func (s Subregion) GridCell(x, y int) int {
	return y*s.Width + x
}

// SliceVertically cuts an image into count full-width horizontal bands,
// stacked top to bottom. The last band absorbs the remainder rows when the
// height does not divide evenly.
func SliceVertically(width, height, count int) []Subregion {
	if count > height {
		count = height
	}
	rowsPerBand := height / count

	bands := make([]Subregion, count)
	for i := range bands {
		bands[i] = Subregion{
			X:      0,
			Y:      i * rowsPerBand,
			Width:  width,
			Height: rowsPerBand,
		}
	}
	bands[count-1].Height = height - bands[count-1].Y
	return bands
}

// RenderTile traces every pixel of the subregion and returns a private
// buffer of raw per-pixel color sums. Averaging over the sample count is
// deferred to the output stage.
func RenderTile(world geometry.Hittable, camera *Camera, tile Subregion, opts Options, random *rand.Rand) []core.Vec3 {
	buffer := make([]core.Vec3, tile.Area())

	for y := 0; y < tile.Height; y++ {
		yAbs := tile.Y + y
		for x := 0; x < tile.Width; x++ {
			xAbs := tile.X + x

			var sum core.Vec3
			for sample := 0; sample < opts.SamplesPerPixel; sample++ {
				s := (random.Float64() + float64(xAbs)) / float64(opts.Width-1)
				t := 1.0 - (random.Float64()+float64(yAbs))/float64(opts.Height-1)

				ray := camera.GetRay(s, t, random)
				sum = sum.Add(integrator.RayColor(ray, opts.Background, world, opts.MaxDepth, random))
			}
			buffer[tile.GridCell(x, y)] = sum
		}
	}

	return buffer
}
