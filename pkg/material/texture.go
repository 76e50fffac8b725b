package material

import (
	"image"
	"math"

	"github.com/prismrt/bandtracer/pkg/core"
)

// SolidColor is a texture with a single uniform color
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(r, g, b float64) *SolidColor {
	return &SolidColor{Albedo: core.NewVec3(r, g, b)}
}

// Value returns the solid color regardless of position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Albedo
}

// Checkerboard alternates between two textures based on world position
type Checkerboard struct {
	Odd  Texture
	Even Texture
}

// NewCheckerboard creates a checker of two solid colors
func NewCheckerboard(odd, even core.Vec3) *Checkerboard {
	return &Checkerboard{
		Odd:  &SolidColor{Albedo: odd},
		Even: &SolidColor{Albedo: even},
	}
}

// Value selects the odd or even texture by the sign of a sine product
func (c *Checkerboard) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10.0*p.X) * math.Sin(10.0*p.Y) * math.Sin(10.0*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// ImageTexture samples colors from a decoded image by UV coordinates
type ImageTexture struct {
	img    image.Image
	width  int
	height int
}

// NewImageTexture creates a texture backed by a decoded image
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	return &ImageTexture{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// Value looks up the image color at (u, v), clamped to the image bounds.
// V is flipped so v=0 maps to the bottom row.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.img == nil || t.width == 0 || t.height == 0 {
		// Solid cyan to make missing texture data obvious
		return core.NewVec3(0, 1, 1)
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(t.width))
	j := int(v * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
	const colorScale = 1.0 / 65535.0
	return core.NewVec3(float64(r)*colorScale, float64(g)*colorScale, float64(b)*colorScale)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
