package geometry

import (
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// Box is a compound axis-aligned box assembled from six rectangles behind
// an inner BVH. The outer bounding box uses the exact corners rather than
// the union of the padded faces, for a tight fit.
type Box struct {
	Min, Max core.Vec3
	sides    *BVHNode
}

// NewBox creates a box spanning the corners min and max. The time interval
// and generator are forwarded to the inner BVH build.
func NewBox(min, max core.Vec3, mat material.Material, t0, t1 float64, random *rand.Rand) *Box {
	sides := []Hittable{
		&XYRect{Min: core.NewVec2(min.X, min.Y), Max: core.NewVec2(max.X, max.Y), K: max.Z, Material: mat},
		&XYRect{Min: core.NewVec2(min.X, min.Y), Max: core.NewVec2(max.X, max.Y), K: min.Z, Material: mat},
		&XZRect{Min: core.NewVec2(min.X, min.Z), Max: core.NewVec2(max.X, max.Z), K: max.Y, Material: mat},
		&XZRect{Min: core.NewVec2(min.X, min.Z), Max: core.NewVec2(max.X, max.Z), K: min.Y, Material: mat},
		&YZRect{Min: core.NewVec2(min.Y, min.Z), Max: core.NewVec2(max.Y, max.Z), K: max.X, Material: mat},
		&YZRect{Min: core.NewVec2(min.Y, min.Z), Max: core.NewVec2(max.Y, max.Z), K: min.X, Material: mat},
	}

	return &Box{
		Min:   min,
		Max:   max,
		sides: NewBVH(sides, t0, t1, random),
	}
}

// Hit forwards to the inner hierarchy of faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the exact corner box
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
