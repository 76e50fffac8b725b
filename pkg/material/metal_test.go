package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/prismrt/bandtracer/pkg/core"
)

func TestMetalPerfectMirror(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scattered, _, ok := metal.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("Expected mirror reflection to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, scattered.Direction)
	}
	if math.Abs(scattered.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected renormalized direction, got length %v", scattered.Direction.Length())
	}
}

func TestMetalAbsorbsBelowHorizon(t *testing.T) {
	// A normal that does not oppose the incoming ray produces a reflection
	// pointing into the surface; the energy-conservation cutoff absorbs it.
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0),
		FrontFace: false,
	}
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	if _, _, ok := metal.Scatter(rayIn, hit, random); ok {
		t.Error("Expected absorption when reflection points into the surface")
	}
}

func TestMetalRoughnessPerturbation(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	mirror := core.NewVec3(0, 1, 0)

	perturbed := false
	for i := 0; i < 100; i++ {
		scattered, _, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			continue // roughness can push the ray below the horizon
		}
		if math.Abs(scattered.Direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %v", scattered.Direction.Length())
		}
		if scattered.Direction.Subtract(mirror).Length() > 1e-6 {
			perturbed = true
		}
	}
	if !perturbed {
		t.Error("Expected roughness to perturb the mirror direction")
	}
}

func TestMetalAttenuationBlendsTowardWhite(t *testing.T) {
	// At grazing incidence Schlick reflectance approaches 1 and the
	// attenuation approaches white, regardless of albedo.
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.2, 0.1, 0.05), 0.0)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	// Nearly tangent to the surface
	rayIn := core.NewRay(core.NewVec3(-10, 0.01, 0), core.NewVec3(1, -0.001, 0))

	_, attenuation, ok := metal.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("Expected scatter at grazing incidence")
	}
	if attenuation.X < 0.9 || attenuation.Y < 0.9 || attenuation.Z < 0.9 {
		t.Errorf("Expected near-white attenuation at grazing angle, got %v", attenuation)
	}
}
