package geometry

import (
	"math"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly between two points
// over its own active time window
type MovingSphere struct {
	CenterBegin core.Vec3
	CenterEnd   core.Vec3
	TimeBegin   float64
	TimeEnd     float64
	Radius      float64
	Material    material.Material
}

// NewMovingSphere creates a sphere moving from begin to end over [t0, t1]
func NewMovingSphere(centerBegin, centerEnd core.Vec3, t0, t1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		CenterBegin: centerBegin,
		CenterEnd:   centerEnd,
		TimeBegin:   t0,
		TimeEnd:     t1,
		Radius:      radius,
		Material:    mat,
	}
}

// centerAt returns the interpolated center at shutter time t
func (s *MovingSphere) centerAt(t float64) core.Vec3 {
	ratio := (t - s.TimeBegin) / (s.TimeEnd - s.TimeBegin)
	return s.CenterBegin.Lerp(s.CenterEnd, ratio)
}

// Hit tests the ray against the sphere at its instantaneous center
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	root, ok := raySphereIntersection(center, s.Radius, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
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

// BoundingBox returns the union of the boxes at the begin and end positions
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	boxBegin := core.NewAABB(s.CenterBegin.Subtract(radius), s.CenterBegin.Add(radius))
	boxEnd := core.NewAABB(s.CenterEnd.Subtract(radius), s.CenterEnd.Add(radius))
	return boxBegin.Union(boxEnd), true
}
