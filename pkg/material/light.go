package material

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// DiffuseLight is a self-luminous material. It never scatters.
type DiffuseLight struct {
	Emissive Texture // Radiance color source
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emissive: &SolidColor{Albedo: emission}}
}

// Scatter always declines; incoming rays are absorbed
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (core.Ray, core.Vec3, bool) {
	return core.Ray{}, core.Vec3{}, false
}

// Emitted returns the radiance regardless of hit geometry
func (dl *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return dl.Emissive.Value(u, v, p)
}
