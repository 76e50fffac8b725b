package geometry

import (
	"math"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius flips the outward
// normal inward, which is the convention for hollow glass shells.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	root, ok := raySphereIntersection(s.Center, s.Radius, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(root)
	// Dividing by the signed radius keeps the normal sign-sensitive for
	// hollow (negative radius) spheres.
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &material.HitRecord{
		T:        root,
		Point:    point,
		U:        u,
		V:        v,
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
// The corners are normalized so min <= max holds for negative radii.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// raySphereIntersection solves the ray-sphere quadratic and returns the
// smaller root within [tMin, tMax], falling back to the larger one.
func raySphereIntersection(center core.Vec3, radius float64, ray core.Ray, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}
	return root, true
}

// sphereUV maps a point on the unit sphere to latitude/longitude coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
