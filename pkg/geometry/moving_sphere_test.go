package geometry

import (
	"math"
	"testing"

	"github.com/prismrt/bandtracer/pkg/core"
)

func TestMovingSphereCenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0),
		0.0, 1.0, 1.0, testMaterial(),
	)

	if got := sphere.centerAt(0.0); got != core.NewVec3(0, 0, 0) {
		t.Errorf("centerAt(0): expected origin, got %v", got)
	}
	if got := sphere.centerAt(0.5); got != core.NewVec3(5, 0, 0) {
		t.Errorf("centerAt(0.5): expected (5,0,0), got %v", got)
	}
	if got := sphere.centerAt(1.0); got != core.NewVec3(10, 0, 0) {
		t.Errorf("centerAt(1): expected (10,0,0), got %v", got)
	}
}

func TestMovingSphereNormalizesAgainstOwnWindow(t *testing.T) {
	// A sphere active over [2, 4] sampled at time 3 sits at the midpoint
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0),
		2.0, 4.0, 1.0, testMaterial(),
	)
	if got := sphere.centerAt(3.0); got != core.NewVec3(2, 0, 0) {
		t.Errorf("centerAt(3): expected (2,0,0), got %v", got)
	}
}

func TestMovingSphereHitDependsOnRayTime(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -5), core.NewVec3(10, 0, -5),
		0.0, 1.0, 1.0, testMaterial(),
	)

	// At time 0 the sphere sits on the ray's axis
	early := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0.0)
	if _, ok := sphere.Hit(early, 0.001, 1000.0); !ok {
		t.Error("Expected hit at time 0")
	}

	// At time 1 it has moved 10 units away
	late := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1.0)
	if _, ok := sphere.Hit(late, 0.001, 1000.0); ok {
		t.Error("Expected miss at time 1")
	}

	hit, ok := sphere.Hit(early, 0.001, 1000.0)
	if !ok || math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected near-surface hit at t=4.0, got %+v ok=%v", hit, ok)
	}
}

func TestMovingSphereBoundingBoxCoversPath(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0),
		0.0, 1.0, 1.0, testMaterial(),
	)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if box.Min != core.NewVec3(-1, -1, -1) || box.Max != core.NewVec3(11, 1, 1) {
		t.Errorf("Expected box covering both endpoints, got min=%v max=%v", box.Min, box.Max)
	}
}
