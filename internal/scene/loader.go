package scene

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"Haunt3D/internal/audio"
	"Haunt3D/internal/behaviour"
	"Haunt3D/internal/config"
	"Haunt3D/internal/loader"
	"Haunt3D/internal/logger"
	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

// Scene is a built, registered scene ready to be ticked
type Scene struct {
	Name    string
	Manager *behaviour.ComponentManager
	Mixer   *audio.Mixer
	Clips   map[string]*audio.Clip

	cfg    *config.Scene
	meshes map[string]*loader.Mesh
}

// FindGameObject satisfies behaviour.References
func (s *Scene) FindGameObject(name string) *behaviour.GameObject {
	return s.Manager.FindGameObject(name)
}

// Clip satisfies behaviour.References
func (s *Scene) Clip(name string) *audio.Clip {
	return s.Clips[name]
}

// Build creates every clip, object and component described by cfg,
// registers the objects with a new manager and binds name references
func Build(cfg *config.Scene) (*Scene, error) {
	format := audio.DefaultFormat
	format.SampleRate = beep.SampleRate(cfg.Audio.SampleRate)

	s := &Scene{
		Name:    cfg.Name,
		Manager: behaviour.NewComponentManager(),
		Mixer:   audio.NewMixer(format),
		Clips:   make(map[string]*audio.Clip, len(cfg.Audio.Clips)),
		cfg:     cfg,
		meshes:  make(map[string]*loader.Mesh),
	}

	for _, c := range cfg.Audio.Clips {
		clip, err := loadClip(cfg, c, format)
		if err != nil {
			return nil, err
		}
		s.Clips[c.Name] = clip
	}

	objects := make(map[string]*behaviour.GameObject, len(cfg.Objects))
	for _, o := range cfg.Objects {
		obj, err := s.buildObject(o)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		objects[o.Name] = obj
	}

	for _, o := range cfg.Objects {
		if o.Parent != "" {
			objects[o.Parent].AddChild(objects[o.Name])
		}
	}
	for _, o := range cfg.Objects {
		s.Manager.RegisterGameObject(objects[o.Name])
	}

	for _, obj := range s.Manager.GetAllGameObjects() {
		for _, comp := range obj.Components {
			if r, ok := unwrapScript(comp).(behaviour.ReferenceResolver); ok {
				r.ResolveReferences(s)
			}
		}
	}

	logger.Log.Info("Scene built",
		zap.String("scene", cfg.Name),
		zap.Int("objects", len(objects)),
		zap.Int("clips", len(s.Clips)))
	return s, nil
}

func loadClip(cfg *config.Scene, c config.ClipConfig, format beep.Format) (*audio.Clip, error) {
	if c.Tone != nil {
		d := time.Duration(c.Tone.Duration * float64(time.Second))
		return audio.ToneClip(c.Name, format, c.Tone.Frequency, d)
	}
	return audio.LoadClip(c.Name, cfg.ClipPath(c))
}

func (s *Scene) buildObject(o config.ObjectConfig) (*behaviour.GameObject, error) {
	obj := behaviour.NewGameObject(o.Name)
	obj.Tag = o.Tag
	if o.Active != nil {
		obj.Active = *o.Active
	}
	obj.Transform.Position = mgl32.Vec3(o.Position)
	obj.Transform.SetEulerDegrees(o.Rotation[0], o.Rotation[1], o.Rotation[2])
	if o.Scale != nil {
		obj.Transform.Scale = mgl32.Vec3(*o.Scale)
	}

	for _, c := range o.Components {
		comp, err := s.buildComponent(c)
		if err != nil {
			return nil, err
		}
		obj.AddComponent(comp)
	}
	return obj, nil
}

func (s *Scene) buildComponent(c config.ComponentConfig) (behaviour.Component, error) {
	props := behaviour.Properties(c.Properties)

	if comp := behaviour.CreateBuiltInComponent(c.Type); comp != nil {
		if err := s.configureBuiltIn(comp, props, c.Materials); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Type, err)
		}
		return comp, nil
	}
	if script := behaviour.CreateScript(c.Type, props); script != nil {
		return behaviour.NewScriptComponent(c.Type, script), nil
	}
	return nil, fmt.Errorf("unknown component type %q", c.Type)
}

// configureBuiltIn runs before AddComponent so Awake sees final values
func (s *Scene) configureBuiltIn(comp behaviour.Component, props behaviour.Properties, materials []config.MaterialConfig) error {
	switch c := comp.(type) {
	case *behaviour.CameraComponent:
		c.IsMain = props.Bool("is_main", c.IsMain)
		c.FOV = props.Float32("fov", c.FOV)
		c.Near = props.Float32("near", c.Near)
		c.Far = props.Float32("far", c.Far)
	case *behaviour.LightComponent:
		c.LightMode = props.String("mode", c.LightMode)
		c.Color = props.Vec3("color", c.Color)
		c.Intensity = props.Float32("intensity", c.Intensity)
		c.Range = props.Float32("range", c.Range)
		c.AmbientStrength = props.Float32("ambient_strength", c.AmbientStrength)
		c.Direction = mgl32.Vec3(props.Vec3("direction", c.Direction))
	case *behaviour.SphereColliderComponent:
		c.Center = mgl32.Vec3(props.Vec3("center", c.Center))
		c.Radius = props.Float32("radius", c.Radius)
	case *behaviour.MeshColliderComponent:
		if path := props.String("mesh", ""); path != "" {
			mesh, err := s.mesh(path)
			if err != nil {
				return err
			}
			c.Vertices = mesh.Triangles
			break
		}
		quad := behaviour.QuadCollider(props.Float32("width", 1), props.Float32("height", 1))
		c.Vertices = quad.Vertices
	case *behaviour.AudioSourceComponent:
		c.Output = s.Mixer
		c.Volume = float64(props.Float32("volume", float32(c.Volume)))
	case *behaviour.MeshRendererComponent:
		c.MeshPath = props.String("mesh", c.MeshPath)
		for _, m := range materials {
			c.Materials = append(c.Materials, buildMaterial(m))
		}
		// Without explicit materials an OBJ mesh brings its own
		if len(c.Materials) == 0 && strings.EqualFold(filepath.Ext(c.MeshPath), ".obj") {
			mesh, err := s.mesh(c.MeshPath)
			if err != nil {
				return err
			}
			c.Materials = mesh.MaterialList()
		}
	}
	return nil
}

// mesh loads an OBJ file once per scene
func (s *Scene) mesh(path string) (*loader.Mesh, error) {
	path = s.cfg.Resolve(path)
	if mesh, ok := s.meshes[path]; ok {
		return mesh, nil
	}
	mesh, err := loader.LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	s.meshes[path] = mesh
	return mesh, nil
}

func buildMaterial(m config.MaterialConfig) renderer.Surface {
	if m.Unlit {
		return &renderer.UnlitMaterial{Name: m.Name, TexturePath: m.Texture}
	}
	mat := renderer.NewMaterial(m.Name, renderer.DefaultMaterial.DiffuseColor)
	if m.Color != nil {
		mat.DiffuseColor = *m.Color
	}
	if m.Alpha != nil {
		mat.Alpha = *m.Alpha
	}
	mat.TexturePath = m.Texture
	return mat
}

func unwrapScript(comp behaviour.Component) behaviour.Component {
	if sc, ok := comp.(*behaviour.ScriptComponent); ok && sc.Script != nil {
		return sc.Script
	}
	return comp
}
