package geometry

import (
	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

// Hittable is implemented by every object a ray can intersect
type Hittable interface {
	// Hit returns the closest intersection within [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box containing the object over the time
	// interval [t0, t1]. It returns false when the object cannot provide
	// a finite box.
	BoundingBox(t0, t1 float64) (core.AABB, bool)
}
