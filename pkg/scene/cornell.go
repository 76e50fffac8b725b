package scene

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
	"github.com/prismrt/bandtracer/pkg/material"
	"github.com/prismrt/bandtracer/pkg/renderer"
)

// NewCornellScene creates the classic Cornell box: five matte walls, an
// area light in the ceiling and two white blocks. The background is black,
// so all illumination comes from the light.
func NewCornellScene(aspectRatio float64, random *rand.Rand) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	const boxSize = 555.0

	objects := []geometry.Hittable{
		// Left wall (green) and right wall (red)
		&geometry.YZRect{Min: core.NewVec2(0, 0), Max: core.NewVec2(boxSize, boxSize), K: boxSize, Material: green},
		&geometry.YZRect{Min: core.NewVec2(0, 0), Max: core.NewVec2(boxSize, boxSize), K: 0, Material: red},
		// Ceiling light panel, slightly below the ceiling
		&geometry.XZRect{Min: core.NewVec2(213, 227), Max: core.NewVec2(343, 332), K: 554, Material: light},
		// Floor, ceiling and back wall
		&geometry.XZRect{Min: core.NewVec2(0, 0), Max: core.NewVec2(boxSize, boxSize), K: 0, Material: white},
		&geometry.XZRect{Min: core.NewVec2(0, 0), Max: core.NewVec2(boxSize, boxSize), K: boxSize, Material: white},
		&geometry.XYRect{Min: core.NewVec2(0, 0), Max: core.NewVec2(boxSize, boxSize), K: boxSize, Material: white},
		// Two blocks on the floor
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white, 0, 1, random),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white, 0, 1, random),
	}

	camera := renderer.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, aspectRatio, 0, 800, 0, 1,
	)

	return &Scene{
		Name:       "cornell",
		World:      geometry.NewBVH(objects, 0, 1, random),
		Camera:     camera,
		Background: core.NewVec3(0, 0, 0),
	}
}
