package material

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// Material interface for surfaces that can scatter and emit light
type Material interface {
	// Scatter produces an outgoing ray and an attenuation color for an
	// incoming ray at a hit point. It returns false when the ray is
	// absorbed (no outgoing ray).
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (core.Ray, core.Vec3, bool)

	// Emitted returns the self-emission of the surface at the hit point.
	// Non-emissive materials return black.
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// Texture is the color source sampled by materials at a hit point
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, oriented against the incoming ray
	FrontFace bool      // Whether the unflipped outward normal opposed the ray
	U, V      float64   // Surface parameterization for texture lookup
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
