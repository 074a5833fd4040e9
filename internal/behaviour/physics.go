package behaviour

import (
	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// RaycastHit describes the nearest collider a ray cast found
type RaycastHit struct {
	Collider   Collider
	GameObject *GameObject
	Distance   float32
	Point      mgl32.Vec3
}

// Raycast returns the nearest enabled collider on an object active in the
// hierarchy hit by ray within maxDistance
func (cm *ComponentManager) Raycast(ray renderer.Ray, maxDistance float32) (RaycastHit, bool) {
	ray = renderer.NewRay(ray.Origin, ray.Direction)

	var best RaycastHit
	found := false
	for _, obj := range cm.gameObjects {
		if !obj.ActiveInHierarchy() {
			continue
		}
		for _, comp := range obj.Components {
			col, ok := comp.(Collider)
			if !ok || !col.GetEnabled() {
				continue
			}
			hit, dist, point := col.IntersectRay(ray)
			if !hit || dist > maxDistance {
				continue
			}
			if !found || dist < best.Distance {
				best = RaycastHit{Collider: col, GameObject: obj, Distance: dist, Point: point}
				found = true
			}
		}
	}
	return best, found
}
