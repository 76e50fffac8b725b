// Package scene provides the built-in scene library. Each builder returns a
// fully assembled world behind a BVH together with a matching camera and
// background.
package scene

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
	"github.com/prismrt/bandtracer/pkg/renderer"
)

// Scene bundles everything a render pass needs besides image dimensions
type Scene struct {
	Name       string
	World      geometry.Hittable
	Camera     *renderer.Camera
	Background core.Vec3
}

// Builder constructs a scene for a given output aspect ratio. Builders that
// place objects randomly draw from the supplied generator, so a seeded
// generator reproduces the same scene.
type Builder func(aspectRatio float64, random *rand.Rand) *Scene

var builders = []struct {
	name        string
	description string
	build       Builder
}{
	{"cornell", "Cornell box with two blocks and an area light", NewCornellScene},
	{"wave", "Bouncing spheres with motion blur over a checkered ground", NewWaveScene},
	{"cover", "Random sphere field with glass, metal and an emissive sun", NewCoverScene},
}

// Names lists the available scenes in registration order
func Names() []string {
	names := make([]string, len(builders))
	for i, b := range builders {
		names[i] = b.name
	}
	return names
}

// Describe returns the one-line description for a scene name
func Describe(name string) string {
	for _, b := range builders {
		if b.name == name {
			return b.description
		}
	}
	return ""
}

// ByName builds the named scene
func ByName(name string, aspectRatio float64, random *rand.Rand) (*Scene, error) {
	for _, b := range builders {
		if b.name == name {
			return b.build(aspectRatio, random), nil
		}
	}
	return nil, errors.Errorf("unknown scene %q", name)
}
