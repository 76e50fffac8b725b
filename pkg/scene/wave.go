package scene

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
	"github.com/prismrt/bandtracer/pkg/material"
	"github.com/prismrt/bandtracer/pkg/renderer"
)

// NewWaveScene creates a grid of small spheres bouncing upward over a
// checkered ground plane. The shutter stays open over [0, 1], so the motion
// shows up as blur.
func NewWaveScene(aspectRatio float64, random *rand.Rand) *Scene {
	checker := material.NewCheckerboard(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	// A grid of bouncers with random hop heights. The bounce phase follows
	// the grid diagonal, which reads as a wave front in the blur.
	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			hop := core.NewVec3(0, 0.3+random.Float64()*0.4, 0)

			albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
			objects = append(objects, geometry.NewMovingSphere(
				center, center.Add(hop), 0, 1, 0.2,
				material.NewLambertian(albedo),
			))
		}
	}

	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0.1, 10, 0, 1,
	)

	return &Scene{
		Name:       "wave",
		World:      geometry.NewBVH(objects, 0, 1, random),
		Camera:     camera,
		Background: core.NewVec3(0.7, 0.8, 1.0),
	}
}
