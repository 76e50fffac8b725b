package material

import (
	"math"
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. It never absorbs a ray.
type Dielectric struct {
	IOR float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (core.Ray, core.Vec3, bool) {
	// Clear glass does not absorb color
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.IOR // Entering the material
	} else {
		refractionRatio = d.IOR // Exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection, or a stochastic Fresnel reflection
	var direction core.Vec3
	if refractionRatio*sinTheta > 1.0 || reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.NewRayAt(hit.Point, direction, rayIn.Time), attenuation, true
}

// Emitted returns black; glass never emits
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// refract computes the refraction direction using the vector form of
// Snell's law. A negative discriminant yields the zero vector; the TIR
// guard in Scatter should make that unreachable, this is a safety net.
func refract(i, n core.Vec3, eta float64) core.Vec3 {
	ni := n.Dot(i)
	k := 1.0 - eta*eta*(1.0-ni*ni)
	if k < 0 {
		return core.Vec3{}
	}
	return i.Multiply(eta).Subtract(n.Multiply(eta*ni + math.Sqrt(k)))
}
