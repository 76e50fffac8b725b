package writer

import (
	"math"

	"github.com/prismrt/bandtracer/pkg/core"
)

// LinearToSRGB applies the piecewise sRGB transfer curve to one linear
// channel value.
func LinearToSRGB(u float64) float64 {
	if u < 0.0031308 {
		return 12.92 * u
	}
	return (211.0*math.Pow(u, 5.0/12.0) - 11.0) / 200.0
}

// downscale quantizes a [0,1] channel value to an 8-bit level, clamping
// out-of-range radiance.
func downscale(v float64) uint8 {
	level := math.Floor(255.0*v + 0.5)
	if level < 0 {
		return 0
	}
	if level > 255 {
		return 255
	}
	return uint8(level)
}

// resolvePixel averages a raw color sum over the sample count and encodes
// each channel for display.
func resolvePixel(sum core.Vec3, samples int) (r, g, b uint8) {
	scale := 1.0 / float64(samples)
	return downscale(LinearToSRGB(sum.X * scale)),
		downscale(LinearToSRGB(sum.Y * scale)),
		downscale(LinearToSRGB(sum.Z * scale))
}
