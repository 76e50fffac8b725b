// Package integrator evaluates light transport along camera rays.
package integrator

import (
	"math"
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/geometry"
)

// Surface intersections closer than this are treated as self-intersection
// noise and skipped.
const minHitDistance = 0.01

// RayColor returns the radiance arriving along ray by recursive path
// tracing. Rays that exhaust the depth budget contribute black; rays that
// escape the scene pick up the uniform background. At each bounce the
// material's emission is added and the scattered contribution is filtered
// through its attenuation.
func RayColor(ray core.Ray, background core.Vec3, world geometry.Hittable, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, ok := world.Hit(ray, minHitDistance, math.Inf(1))
	if !ok {
		return background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
	scattered, attenuation, ok := hit.Material.Scatter(ray, hit, random)
	if !ok {
		return emitted
	}

	return emitted.Add(RayColor(scattered, background, world, depth-1, random).MultiplyVec(attenuation))
}
