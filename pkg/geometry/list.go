package geometry

import (
	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// HittableList is a linear aggregate of objects. Intersection cost grows
// with the object count; large scenes should be wrapped in a BVH instead.
type HittableList []Hittable

// Hit scans every object and returns the closest intersection
func (l HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes. It reports false for
// an empty list or when any member cannot provide a box.
func (l HittableList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l {
		objectBox, ok := object.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}
