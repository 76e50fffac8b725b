package geometry

import (
	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// Axis-aligned rectangles, one per dropped axis. The bounding box is padded
// along the dropped axis so the slab test never sees a zero-thickness box.
const rectPadding = 0.0001

// XYRect is a rectangle in the z = K plane
type XYRect struct {
	Min, Max core.Vec2 // (x, y) bounds
	K        float64   // z coordinate of the plane
	Material material.Material
}

// Hit solves for the plane crossing and rejects points outside the bounds
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.Min.X || x > r.Max.X || y < r.Min.Y || y > r.Max.Y {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.Min.X) / (r.Max.X - r.Min.X),
		V:        (y - r.Min.Y) / (r.Max.Y - r.Min.Y),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

// BoundingBox returns the rectangle extruded slightly along z
func (r *XYRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.Min.X, r.Min.Y, r.K-rectPadding),
		core.NewVec3(r.Max.X, r.Max.Y, r.K+rectPadding),
	), true
}

// XZRect is a rectangle in the y = K plane
type XZRect struct {
	Min, Max core.Vec2 // (x, z) bounds
	K        float64   // y coordinate of the plane
	Material material.Material
}

// Hit solves for the plane crossing and rejects points outside the bounds
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.Min.X || x > r.Max.X || z < r.Min.Y || z > r.Max.Y {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.Min.X) / (r.Max.X - r.Min.X),
		V:        (z - r.Min.Y) / (r.Max.Y - r.Min.Y),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

// BoundingBox returns the rectangle extruded slightly along y
func (r *XZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.Min.X, r.K-rectPadding, r.Min.Y),
		core.NewVec3(r.Max.X, r.K+rectPadding, r.Max.Y),
	), true
}

// YZRect is a rectangle in the x = K plane
type YZRect struct {
	Min, Max core.Vec2 // (y, z) bounds
	K        float64   // x coordinate of the plane
	Material material.Material
}

// Hit solves for the plane crossing and rejects points outside the bounds
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Min.X || y > r.Max.X || z < r.Min.Y || z > r.Max.Y {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (y - r.Min.X) / (r.Max.X - r.Min.X),
		V:        (z - r.Min.Y) / (r.Max.Y - r.Min.Y),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox returns the rectangle extruded slightly along x
func (r *YZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Min.X, r.Min.Y),
		core.NewVec3(r.K+rectPadding, r.Max.X, r.Max.Y),
	), true
}
