package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Surface is any material instance a renderer draws with
type Surface interface {
	MaterialName() string
}

// ColorProperty is implemented by materials whose shader exposes a base
// color with an alpha channel
type ColorProperty interface {
	Surface
	Color() mgl32.Vec4
	SetColor(mgl32.Vec4)
}

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Roughness:     0.5,
	Alpha:         1.0,
}

// Material is a lit material with a tintable diffuse color
type Material struct {
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Metallic      float32    // 0.0 = dielectric, 1.0 = metallic
	Roughness     float32    // 0.0 = mirror, 1.0 = completely rough
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)

	Name        string
	TexturePath string
}

// NewMaterial returns a copy of DefaultMaterial with the given name and color
func NewMaterial(name string, diffuse [3]float32) *Material {
	m := DefaultMaterial
	m.Name = name
	m.DiffuseColor = diffuse
	return &m
}

func (m *Material) MaterialName() string {
	return m.Name
}

func (m *Material) Color() mgl32.Vec4 {
	return mgl32.Vec4{m.DiffuseColor[0], m.DiffuseColor[1], m.DiffuseColor[2], m.Alpha}
}

func (m *Material) SetColor(c mgl32.Vec4) {
	m.DiffuseColor = [3]float32{c[0], c[1], c[2]}
	m.Alpha = c[3]
}

// UnlitMaterial draws a texture as-is. It has no color property.
type UnlitMaterial struct {
	Name        string
	TexturePath string
}

func (m *UnlitMaterial) MaterialName() string {
	return m.Name
}
