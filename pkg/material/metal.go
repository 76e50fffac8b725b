package material

import (
	"math"
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// Placeholder index of refraction for the metal Fresnel blend.
// TODO make this a per-material parameter instead of a constant.
const metalIOR = 2.5

// Metal represents a reflective material with adjustable roughness
type Metal struct {
	Albedo    Texture // Metal color
	Roughness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material with a solid color
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	return &Metal{Albedo: &SolidColor{Albedo: albedo}, Roughness: roughness}
}

// Scatter implements the Material interface for metal scattering.
// The reflection direction is perturbed by roughness and renormalized;
// rays that end up pointing into the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (core.Ray, core.Vec3, bool) {
	unitDirection := rayIn.Direction.Normalize()

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / metalIOR
	} else {
		refractionRatio = metalIOR
	}
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	// Blend albedo toward white by the Schlick reflectance term
	albedo := m.Albedo.Value(hit.U, hit.V, hit.Point)
	attenuation := albedo.Lerp(core.NewVec3(1, 1, 1), reflectance(cosTheta, refractionRatio))

	reflected := reflect(unitDirection, hit.Normal)
	perturbation := core.RandomUnitVector(random).Multiply(m.Roughness)
	direction := reflected.Add(perturbation).Normalize()

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) > 0 {
		return scattered, attenuation, true
	}
	return core.Ray{}, core.Vec3{}, false
}

// Emitted returns black; metal surfaces never emit
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflect calculates the mirror reflection of v about the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
