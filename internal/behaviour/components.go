package behaviour

import (
	"Haunt3D/internal/audio"
	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript   ComponentType = "Script"
	ComponentTypeRenderer ComponentType = "Renderer"
	ComponentTypeCollider ComponentType = "Collider"
	ComponentTypeAudio    ComponentType = "Audio"
	ComponentTypeLight    ComponentType = "Light"
	ComponentTypeCamera   ComponentType = "Camera"
	ComponentTypeCustom   ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// MeshRendererComponent draws the object with one or more materials
type MeshRendererComponent struct {
	BaseComponent
	MeshPath  string
	Materials []renderer.Surface
}

func NewMeshRendererComponent(materials ...renderer.Surface) *MeshRendererComponent {
	return &MeshRendererComponent{Materials: materials}
}

func (m *MeshRendererComponent) GetComponentType() ComponentType {
	return ComponentTypeRenderer
}

func (m *MeshRendererComponent) GetTypeName() string {
	return "MeshRendererComponent"
}

// Visible reports whether the renderer would be drawn this frame
func (m *MeshRendererComponent) Visible() bool {
	obj := m.GetGameObject()
	return m.GetEnabled() && (obj == nil || obj.ActiveInHierarchy())
}

// Collider is a component the scene ray cast can hit
type Collider interface {
	Component
	IntersectRay(ray renderer.Ray) (bool, float32, mgl32.Vec3)
}

// SphereColliderComponent is a sphere in the object's local space
type SphereColliderComponent struct {
	BaseComponent
	Center mgl32.Vec3
	Radius float32
}

func NewSphereColliderComponent() *SphereColliderComponent {
	return &SphereColliderComponent{Radius: 0.5}
}

func (s *SphereColliderComponent) GetComponentType() ComponentType {
	return ComponentTypeCollider
}

func (s *SphereColliderComponent) GetTypeName() string {
	return "SphereColliderComponent"
}

func (s *SphereColliderComponent) IntersectRay(ray renderer.Ray) (bool, float32, mgl32.Vec3) {
	center, radius := s.Center, s.Radius
	if obj := s.GetGameObject(); obj != nil {
		center = obj.Transform.TransformPoint(s.Center)
		ws := obj.Transform.WorldScale()
		radius *= mgl32.Abs(maxComponent(ws))
	}
	return renderer.RayIntersectSphere(ray, center, radius)
}

func maxComponent(v mgl32.Vec3) float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

// MeshColliderComponent is a triangle soup in the object's local space,
// three vertices per triangle
type MeshColliderComponent struct {
	BaseComponent
	Vertices []mgl32.Vec3
}

func (m *MeshColliderComponent) GetComponentType() ComponentType {
	return ComponentTypeCollider
}

func (m *MeshColliderComponent) GetTypeName() string {
	return "MeshColliderComponent"
}

func (m *MeshColliderComponent) IntersectRay(ray renderer.Ray) (bool, float32, mgl32.Vec3) {
	obj := m.GetGameObject()
	world := func(v mgl32.Vec3) mgl32.Vec3 {
		if obj == nil {
			return v
		}
		return obj.Transform.TransformPoint(v)
	}

	hit, best, point := false, float32(0), mgl32.Vec3{}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		ok, dist, p := renderer.RayIntersectTriangle(ray, world(m.Vertices[i]), world(m.Vertices[i+1]), world(m.Vertices[i+2]))
		if ok && (!hit || dist < best) {
			hit, best, point = true, dist, p
		}
	}
	return hit, best, point
}

// QuadCollider returns a mesh collider for an axis-aligned quad of the given
// size facing +Z
func QuadCollider(width, height float32) *MeshColliderComponent {
	w, h := width/2, height/2
	return &MeshColliderComponent{Vertices: []mgl32.Vec3{
		{-w, -h, 0}, {w, -h, 0}, {w, h, 0},
		{-w, -h, 0}, {w, h, 0}, {-w, h, 0},
	}}
}

// AudioSourceComponent plays clips through a mixer
type AudioSourceComponent struct {
	BaseComponent
	Volume float64
	Output *audio.Mixer
}

func NewAudioSourceComponent(output *audio.Mixer) *AudioSourceComponent {
	return &AudioSourceComponent{Volume: 1.0, Output: output}
}

func (a *AudioSourceComponent) GetComponentType() ComponentType {
	return ComponentTypeAudio
}

func (a *AudioSourceComponent) GetTypeName() string {
	return "AudioSourceComponent"
}

// PlayOneShot starts clip without tracking it. Nil clips and sources
// without an output are ignored.
func (a *AudioSourceComponent) PlayOneShot(clip *audio.Clip) {
	if clip == nil || a.Output == nil || !a.GetEnabled() {
		return
	}
	a.Output.PlayOneShot(clip, a.Volume)
}

// LightComponent holds light data
type LightComponent struct {
	BaseComponent
	LightMode       string // "directional", "point", "spot"
	Color           [3]float32
	Intensity       float32
	Range           float32
	AmbientStrength float32
	Direction       mgl32.Vec3

	// Runtime reference, kept in sync with Intensity
	LightData *renderer.Light
}

func NewLightComponent() *LightComponent {
	return &LightComponent{
		LightMode:       "point",
		Color:           [3]float32{1.0, 1.0, 1.0},
		Intensity:       1.0,
		Range:           100.0,
		AmbientStrength: 0.1,
		Direction:       mgl32.Vec3{0, -1, 0},
	}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return "LightComponent"
}

// Awake creates the renderer light if none was attached
func (l *LightComponent) Awake() {
	if l.LightData != nil {
		return
	}
	color := mgl32.Vec3{l.Color[0], l.Color[1], l.Color[2]}
	if l.LightMode == "directional" {
		l.LightData = renderer.CreateDirectionalLight(l.Direction, color, l.Intensity)
	} else {
		l.LightData = renderer.CreatePointLight(mgl32.Vec3{}, color, l.Intensity, l.Range)
	}
	l.LightData.AmbientStrength = l.AmbientStrength
}

// Update keeps the renderer light on the object's position
func (l *LightComponent) Update(float32) {
	if l.LightData != nil && l.GetGameObject() != nil {
		l.LightData.Position = l.GetGameObject().Transform.WorldPosition()
	}
}

func (l *LightComponent) GetIntensity() float32 {
	return l.Intensity
}

func (l *LightComponent) SetIntensity(intensity float32) {
	l.Intensity = intensity
	if l.LightData != nil {
		l.LightData.SetIntensity(intensity)
	}
}

// CameraComponent holds camera data
type CameraComponent struct {
	BaseComponent
	FOV    float32
	Near   float32
	Far    float32
	IsMain bool // Is this the main game camera?
}

func NewCameraComponent() *CameraComponent {
	return &CameraComponent{
		FOV:    45.0,
		Near:   0.1,
		Far:    10000.0,
		IsMain: false,
	}
}

func (c *CameraComponent) GetComponentType() ComponentType {
	return ComponentTypeCamera
}

func (c *CameraComponent) GetTypeName() string {
	return "CameraComponent"
}

// Ray returns the view ray through the center of the screen
func (c *CameraComponent) Ray() renderer.Ray {
	t := c.GetGameObject().Transform
	return renderer.NewRay(t.WorldPosition(), t.Forward())
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update(deltaTime float32) {
	if s.Script != nil && s.Script.GetEnabled() {
		s.Script.Update(deltaTime)
	}
}

func (s *ScriptComponent) FixedUpdate(deltaTime float32) {
	if s.Script != nil && s.Script.GetEnabled() {
		s.Script.FixedUpdate(deltaTime)
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// BuiltInComponents returns a list of built-in component types that can be added
func BuiltInComponents() []string {
	return []string{
		"AudioSourceComponent",
		"CameraComponent",
		"LightComponent",
		"MeshColliderComponent",
		"MeshRendererComponent",
		"SphereColliderComponent",
	}
}

// CreateBuiltInComponent creates a built-in component by name
func CreateBuiltInComponent(name string) Component {
	switch name {
	case "AudioSourceComponent":
		return NewAudioSourceComponent(nil)
	case "CameraComponent":
		return NewCameraComponent()
	case "LightComponent":
		return NewLightComponent()
	case "MeshColliderComponent":
		return &MeshColliderComponent{}
	case "MeshRendererComponent":
		return NewMeshRendererComponent()
	case "SphereColliderComponent":
		return NewSphereColliderComponent()
	default:
		return nil
	}
}
