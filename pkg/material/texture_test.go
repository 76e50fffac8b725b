package material

import (
	"image"
	"image/color"
	"testing"

	"github.com/prismrt/bandtracer/pkg/core"
)

func TestSolidColorIgnoresCoordinates(t *testing.T) {
	tex := NewSolidColor(0.1, 0.2, 0.3)
	want := core.NewVec3(0.1, 0.2, 0.3)

	if got := tex.Value(0, 0, core.Vec3{}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := tex.Value(0.9, 0.1, core.NewVec3(100, -50, 3)); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	checker := &Checkerboard{
		Odd:  NewSolidColor(1, 0, 0),
		Even: NewSolidColor(0, 1, 0),
	}

	// sin(10 * 0.157) ≈ sin(π/2) = 1 for all axes: even
	evenPoint := core.NewVec3(0.157, 0.157, 0.157)
	if got := checker.Value(0, 0, evenPoint); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected even color at %v, got %v", evenPoint, got)
	}

	// Flip one axis sign: product becomes negative, odd
	oddPoint := core.NewVec3(-0.157, 0.157, 0.157)
	if got := checker.Value(0, 0, oddPoint); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected odd color at %v, got %v", oddPoint, got)
	}
}

func TestImageTextureLookup(t *testing.T) {
	// 2x2 image: top row red/green, bottom row blue/white
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	tex := NewImageTexture(img)

	// v=1 maps to the top row after the flip
	topLeft := tex.Value(0, 1, core.Vec3{})
	if topLeft.X < 0.99 || topLeft.Y > 0.01 {
		t.Errorf("Expected red at (0,1), got %v", topLeft)
	}

	bottomLeft := tex.Value(0, 0, core.Vec3{})
	if bottomLeft.Z < 0.99 || bottomLeft.X > 0.01 {
		t.Errorf("Expected blue at (0,0), got %v", bottomLeft)
	}

	// Out-of-range UVs clamp instead of wrapping
	clamped := tex.Value(2.5, -1, core.Vec3{})
	if clamped.X < 0.99 || clamped.Y < 0.99 || clamped.Z < 0.99 {
		t.Errorf("Expected clamped white at (2.5,-1), got %v", clamped)
	}
}

func TestImageTextureMissingData(t *testing.T) {
	tex := &ImageTexture{}
	if got := tex.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan placeholder, got %v", got)
	}
}
