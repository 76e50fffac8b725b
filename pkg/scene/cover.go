package scene

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
	"github.com/prismrt/bandtracer/pkg/material"
	"github.com/prismrt/bandtracer/pkg/renderer"
)

// NewCoverScene creates a large random field of small spheres around three
// showcase spheres: a hollow glass shell, a matte sphere and a polished
// metal one, plus an emissive sun overhead.
func NewCoverScene(aspectRatio float64, random *rand.Rand) *Scene {
	ground := material.NewTexturedLambertian(material.NewCheckerboard(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch choice := random.Float64(); {
			case choice < 0.75:
				// Matte, with a vertical drift for motion blur
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				drift := core.NewVec3(0, random.Float64()*0.5, 0)
				objects = append(objects, geometry.NewMovingSphere(
					center, center.Add(drift), 0, 1, 0.2,
					material.NewLambertian(albedo),
				))
			case choice < 0.9:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				roughness := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, roughness)))
			case choice < 0.95:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			default:
				// Small glowing spheres scattered through the field
				emission := core.NewVec3(
					2+2*random.Float64(),
					2+2*random.Float64(),
					2+2*random.Float64(),
				)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDiffuseLight(emission)))
			}
		}
	}

	// The hollow shell: an inner sphere with negative radius flips its
	// normals, turning the pair into a thin glass bubble.
	glass := material.NewDielectric(1.5)
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(0, 1, 0), -0.8, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 2.0, material.NewDiffuseLight(core.NewVec3(5, 5, 5))),
	)

	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0.1, 10, 0, 1,
	)

	// All illumination comes from the sun and the glowing spheres
	return &Scene{
		Name:       "cover",
		World:      geometry.NewBVH(objects, 0, 1, random),
		Camera:     camera,
		Background: core.NewVec3(0, 0, 0),
	}
}
