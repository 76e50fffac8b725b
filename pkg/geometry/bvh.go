package geometry

import (
	"math/rand"
	"sort"

	"github.com/prismrt/bandtracer/log"
	"github.com/prismrt/bandtracer/pkg/core"
	"github.com/prismrt/bandtracer/pkg/material"
)

var bvhLogger = log.New("bvh")

// BVHNode is a binary bounding-volume hierarchy node. Each node holds
// exactly two children (possibly the same object, for the single-primitive
// case) and a box covering both, valid for the time interval it was built
// with. Nodes are read-only after construction and safe to share across
// render workers.
type BVHNode struct {
	left    Hittable
	right   Hittable
	nodeBox core.AABB
}

// NewBVH builds a hierarchy from a snapshot of the object slice over the
// time interval [t0, t1]. The input slice is not modified. Axis selection
// consumes randomness from the supplied generator, so tree shape is
// reproducible for a seeded generator.
func NewBVH(objects []Hittable, t0, t1 float64, random *rand.Rand) *BVHNode {
	span := len(objects)
	switch span {
	case 0:
		panic("geometry: cannot build a BVH from zero objects")
	case 1:
		// Degenerate node: both children reference the same object
		return &BVHNode{
			left:    objects[0],
			right:   objects[0],
			nodeBox: boundingBoxOrZero(objects[0], t0, t1),
		}
	case 2:
		boxLeft := boundingBoxOrZero(objects[0], t0, t1)
		boxRight := boundingBoxOrZero(objects[1], t0, t1)
		return &BVHNode{
			left:    objects[0],
			right:   objects[1],
			nodeBox: boxLeft.Union(boxRight),
		}
	}

	copied := make([]Hittable, span)
	copy(copied, objects)

	axis := random.Intn(3)
	sort.SliceStable(copied, func(i, j int) bool {
		boxI := boundingBoxOrZero(copied[i], 0, 0)
		boxJ := boundingBoxOrZero(copied[j], 0, 0)
		return boxI.Min.Axis(axis) < boxJ.Min.Axis(axis)
	})

	mid := span / 2
	left := NewBVH(copied[:mid], t0, t1, random)
	right := NewBVH(copied[mid:], t0, t1, random)
	return &BVHNode{
		left:    left,
		right:   right,
		nodeBox: left.nodeBox.Union(right.nodeBox),
	}
}

// boundingBoxOrZero substitutes a zero-sized box at the origin for objects
// that cannot provide one. This keeps construction total but biases the
// sort order for such objects; see the warning it logs.
func boundingBoxOrZero(object Hittable, t0, t1 float64) core.AABB {
	box, ok := object.BoundingBox(t0, t1)
	if !ok {
		bvhLogger.Warning("object without a bounding box in BVH constructor, substituting zero box")
		return core.AABB{}
	}
	return box
}

// Hit tests the ray against the node box first and, on a hit, queries both
// subtrees. When the left subtree hits, the right subtree is constrained to
// tMax = left hit t, so the closer of two overlapping hits always wins.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.nodeBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if hitLeft, ok := n.left.Hit(ray, tMin, tMax); ok {
		if hitRight, ok := n.right.Hit(ray, tMin, hitLeft.T); ok {
			return hitRight, true
		}
		return hitLeft, true
	}
	return n.right.Hit(ray, tMin, tMax)
}

// BoundingBox returns the cached node box, which already covers the whole
// subtree for the interval the tree was built with.
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.nodeBox, true
}
