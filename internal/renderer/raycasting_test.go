package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRayNormalizesDirection(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	if math.Abs(float64(ray.Direction.Len())-1.0) > 1e-5 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Len())
	}
}

func TestRayIntersectSphereHit(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})

	hit, dist, point := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 1)

	if !hit {
		t.Fatal("Expected ray to hit sphere")
	}
	if math.Abs(float64(dist)-9.0) > 1e-4 {
		t.Errorf("Expected distance 9, got %f", dist)
	}
	if point.Sub(mgl32.Vec3{0, 0, 1}).Len() > 1e-4 {
		t.Errorf("Expected hit point (0,0,1), got %v", point)
	}
}

func TestRayIntersectSphereMiss(t *testing.T) {
	ray := NewRay(mgl32.Vec3{5, 0, 10}, mgl32.Vec3{0, 0, -1})

	if hit, _, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 1); hit {
		t.Error("Ray offset by 5 units should miss a unit sphere")
	}
}

func TestRayIntersectSphereBehind(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 1})

	if hit, _, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 1); hit {
		t.Error("Sphere behind the ray origin should not be hit")
	}
}

func TestRayIntersectSphereFromInside(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})

	hit, dist, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 2)

	if !hit {
		t.Fatal("Ray starting inside a sphere should hit its far side")
	}
	if math.Abs(float64(dist)-2.0) > 1e-4 {
		t.Errorf("Expected distance 2, got %f", dist)
	}
}

func TestRayIntersectTriangle(t *testing.T) {
	v0 := mgl32.Vec3{-1, -1, 0}
	v1 := mgl32.Vec3{1, -1, 0}
	v2 := mgl32.Vec3{0, 1, 0}

	hit, dist, _ := RayIntersectTriangle(NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}), v0, v1, v2)
	if !hit {
		t.Fatal("Expected ray to hit triangle")
	}
	if math.Abs(float64(dist)-5.0) > 1e-4 {
		t.Errorf("Expected distance 5, got %f", dist)
	}

	if hit, _, _ := RayIntersectTriangle(NewRay(mgl32.Vec3{3, 3, 5}, mgl32.Vec3{0, 0, -1}), v0, v1, v2); hit {
		t.Error("Ray outside the triangle should miss")
	}

	if hit, _, _ := RayIntersectTriangle(NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 0, 0}), v0, v1, v2); hit {
		t.Error("Parallel ray should miss")
	}
}
