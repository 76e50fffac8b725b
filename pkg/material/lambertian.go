package material

import (
	"math"
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (solid or textured)
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: &SolidColor{Albedo: albedo}}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (core.Ray, core.Vec3, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The sphere sample can cancel the normal almost exactly, leaving a
	// degenerate near-zero direction. Fall back to the bare normal.
	if nearZero(scatterDirection) {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAt(hit.Point, scatterDirection, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)
	return scattered, attenuation, true
}

// Emitted returns black; lambertian surfaces never emit
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// nearZero reports whether every component is within 1e-8 of zero
func nearZero(v core.Vec3) bool {
	const epsilon = 1e-8
	return math.Abs(v.X) < epsilon && math.Abs(v.Y) < epsilon && math.Abs(v.Z) < epsilon
}
