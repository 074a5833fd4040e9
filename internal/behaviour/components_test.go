package behaviour

import (
	"testing"
	"time"

	"Haunt3D/internal/audio"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLightComponentMirrorsIntensity(t *testing.T) {
	obj := NewGameObject("Lamp")
	light := NewLightComponent()
	obj.AddComponent(light)

	if light.LightData == nil {
		t.Fatal("Awake should create renderer light data")
	}

	light.SetIntensity(0.25)

	if light.GetIntensity() != 0.25 || light.LightData.Intensity != 0.25 {
		t.Errorf("Expected intensity 0.25 on both, got %f and %f", light.Intensity, light.LightData.Intensity)
	}
}

func TestLightComponentFollowsTransform(t *testing.T) {
	obj := NewGameObject("Lamp")
	light := NewLightComponent()
	obj.AddComponent(light)
	obj.Transform.Position = mgl32.Vec3{1, 2, 3}

	light.Update(0.016)

	if light.LightData.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected light at (1,2,3), got %v", light.LightData.Position)
	}
}

func TestAudioSourcePlayOneShot(t *testing.T) {
	mixer := audio.NewMixer(audio.DefaultFormat)
	obj := NewGameObject("Ghost")
	src := NewAudioSourceComponent(mixer)
	obj.AddComponent(src)
	clip, err := audio.ToneClip("sting", audio.DefaultFormat, 330, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("ToneClip failed: %v", err)
	}

	src.PlayOneShot(clip)
	src.PlayOneShot(nil)

	if mixer.Active() != 1 {
		t.Errorf("Expected 1 active clip, got %d", mixer.Active())
	}

	src.SetEnabled(false)
	src.PlayOneShot(clip)
	if mixer.Active() != 1 {
		t.Error("Disabled audio source should stay silent")
	}
}

func TestCameraRay(t *testing.T) {
	obj := NewGameObject("Cam")
	obj.Transform.Position = mgl32.Vec3{0, 1.7, 0}
	cam := NewCameraComponent()
	obj.AddComponent(cam)

	ray := cam.Ray()

	if ray.Origin != (mgl32.Vec3{0, 1.7, 0}) {
		t.Errorf("Expected origin at camera position, got %v", ray.Origin)
	}
	if !vec3Near(ray.Direction, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected forward -Z, got %v", ray.Direction)
	}
}

func TestCreateBuiltInComponent(t *testing.T) {
	for _, name := range BuiltInComponents() {
		comp := CreateBuiltInComponent(name)
		if comp == nil {
			t.Errorf("Expected built-in %s to be creatable", name)
			continue
		}
		if GetComponentTypeName(comp) != name {
			t.Errorf("Expected type name %s, got %s", name, GetComponentTypeName(comp))
		}
	}

	if CreateBuiltInComponent("Nope") != nil {
		t.Error("Unknown built-in should return nil")
	}
}

func TestMeshRendererVisibleFollowsHierarchy(t *testing.T) {
	parent := NewGameObject("Ghost")
	child := NewGameObject("Eyes")
	mr := NewMeshRendererComponent()
	child.AddComponent(mr)
	parent.AddChild(child)

	if !mr.Visible() {
		t.Error("Expected renderer to be visible")
	}
	parent.Active = false
	if mr.Visible() {
		t.Error("Renderer under an inactive parent should not be visible")
	}
	parent.Active = true
	mr.SetEnabled(false)
	if mr.Visible() {
		t.Error("Disabled renderer should not be visible")
	}
}
