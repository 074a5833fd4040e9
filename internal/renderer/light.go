package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType int

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

type Light struct {
	Position        mgl32.Vec3
	Direction       mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
	Range           float32
	Type            LightType // "static", "dynamic"
	Mode            string    // "directional", "point", "spot"
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0.0, 10.0, 0.0},
		Direction:       mgl32.Vec3{0, -1, 0},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.1,
		Range:           100.0,
		Mode:            "point",
	}
}

// CreatePointLight creates a point light
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32, range_ float32) *Light {
	light := CreateLight()
	light.Position = position
	light.Color = color
	light.Intensity = intensity
	light.Range = range_
	light.Type = DYNAMIC_LIGHT
	return light
}

// CreateDirectionalLight creates a directional light (like the moon)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = "directional"
	light.Direction = direction.Normalize()
	light.Color = color
	light.Intensity = intensity
	return light
}

func (l *Light) GetIntensity() float32 {
	return l.Intensity
}

func (l *Light) SetIntensity(intensity float32) {
	l.Intensity = intensity
}
