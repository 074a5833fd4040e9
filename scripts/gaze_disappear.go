package scripts

import (
	"Haunt3D/internal/audio"
	"Haunt3D/internal/behaviour"
	"Haunt3D/internal/logger"
	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	DefaultLookTimeToDisappear = float32(3.0)
	DefaultFadeTime            = float32(0.3)
	DefaultMaxGazeDistance     = float32(100)
	DefaultPlayerTag           = "Player"
)

// Scene is the part of the host scene the gaze check needs
type Scene interface {
	FindGameObjectWithTag(tag string) *behaviour.GameObject
	MainCamera() *behaviour.CameraComponent
	Raycast(ray renderer.Ray, maxDistance float32) (behaviour.RaycastHit, bool)
}

type oneShotPlayer interface {
	PlayOneShot(clip *audio.Clip)
}

// GazeDisappear hides its object once the player has kept looking at it
// for LookTimeToDisappear seconds. Looking away resets the timer. The
// disappearance plays DisappearClip, optionally fades every material out
// and finally disables all renderers and colliders below the object.
// It happens at most once.
type GazeDisappear struct {
	behaviour.BaseComponent

	LookTimeToDisappear float32
	DisappearClip       *audio.Clip
	FadeOnDisappear     bool
	FadeTime            float32
	MaxGazeDistance     float32
	PlayerTag           string

	// Resolved in Start when left nil
	Player *behaviour.Transform
	Camera *behaviour.CameraComponent
	Scene  Scene

	clipName    string
	renderers   []*behaviour.MeshRendererComponent
	colliders   []behaviour.Collider
	audioSource oneShotPlayer

	hasDisappeared bool
	lookTimer      float32
	fading         *fadeTask
}

func init() {
	behaviour.RegisterScript("GazeDisappear", func(props behaviour.Properties) behaviour.Component {
		g := NewGazeDisappear()
		g.LookTimeToDisappear = props.Float32("look_time_to_disappear", g.LookTimeToDisappear)
		g.FadeOnDisappear = props.Bool("fade_on_disappear", g.FadeOnDisappear)
		g.FadeTime = props.Float32("fade_time", g.FadeTime)
		g.MaxGazeDistance = props.Float32("max_gaze_distance", g.MaxGazeDistance)
		g.PlayerTag = props.String("player_tag", g.PlayerTag)
		g.clipName = props.String("disappear_clip", "")
		return g
	})
}

func NewGazeDisappear() *GazeDisappear {
	return &GazeDisappear{
		LookTimeToDisappear: DefaultLookTimeToDisappear,
		FadeTime:            DefaultFadeTime,
		MaxGazeDistance:     DefaultMaxGazeDistance,
		PlayerTag:           DefaultPlayerTag,
	}
}

func (g *GazeDisappear) ResolveReferences(refs behaviour.References) {
	if g.clipName == "" || g.DisappearClip != nil {
		return
	}
	g.DisappearClip = refs.Clip(g.clipName)
	if g.DisappearClip == nil {
		logger.Log.Warn("GazeDisappear: clip not found, disappearing silently",
			zap.String("object", g.GetGameObject().Name),
			zap.String("clip", g.clipName))
	}
}

func (g *GazeDisappear) Start() {
	obj := g.GetGameObject()

	if g.Scene == nil {
		if cm := obj.Manager(); cm != nil {
			g.Scene = cm
		}
	}
	if g.Scene != nil {
		if g.Player == nil {
			if p := g.Scene.FindGameObjectWithTag(g.PlayerTag); p != nil {
				g.Player = p.Transform
			}
		}
		if g.Camera == nil {
			g.Camera = g.Scene.MainCamera()
		}
	}

	g.renderers = behaviour.GetComponentsInChildren[*behaviour.MeshRendererComponent](obj)
	g.colliders = behaviour.GetComponentsInChildren[behaviour.Collider](obj)
	if src, ok := behaviour.GetComponent[*behaviour.AudioSourceComponent](obj); ok {
		g.audioSource = src
	}

	if g.Player == nil || g.Camera == nil || g.Scene == nil {
		logger.Log.Warn("GazeDisappear: player, camera or scene not found",
			zap.String("object", obj.Name),
			zap.Bool("player", g.Player != nil),
			zap.Bool("camera", g.Camera != nil),
			zap.Bool("scene", g.Scene != nil))
	}
}

func (g *GazeDisappear) Update(deltaTime float32) {
	if g.hasDisappeared {
		return
	}

	if !g.isPlayerLooking() {
		g.lookTimer = 0
		return
	}

	g.lookTimer += deltaTime
	if g.lookTimer >= g.LookTimeToDisappear {
		g.hasDisappeared = true
		logger.Log.Info("GazeDisappear: disappearing",
			zap.String("object", g.GetGameObject().Name),
			zap.Float32("lookTime", g.lookTimer),
			zap.Bool("fade", g.FadeOnDisappear))
		g.GetGameObject().StartCoroutine(g.disappear())
	}
}

// LookTimer returns how long the current gaze has lasted
func (g *GazeDisappear) LookTimer() float32 {
	return g.lookTimer
}

// HasDisappeared reports whether the disappearance has been triggered
func (g *GazeDisappear) HasDisappeared() bool {
	return g.hasDisappeared
}

// FadeAlpha returns the alpha last written by the fade, 1 before any fade
func (g *GazeDisappear) FadeAlpha() float32 {
	if g.fading == nil {
		return 1
	}
	return g.fading.alpha
}

func (g *GazeDisappear) isPlayerLooking() bool {
	if g.Player == nil || g.Camera == nil || g.Scene == nil || g.Camera.GetGameObject() == nil {
		return false
	}

	hit, ok := g.Scene.Raycast(g.Camera.Ray(), g.MaxGazeDistance)
	if !ok || hit.GameObject == nil {
		return false
	}
	return hit.GameObject.Transform.IsChildOf(g.GetGameObject().Transform)
}

func (g *GazeDisappear) disappear() behaviour.Coroutine {
	steps := []behaviour.Coroutine{behaviour.Do(func() { g.playClip(g.DisappearClip) })}
	if g.FadeOnDisappear {
		g.fading = &fadeTask{owner: g, duration: g.FadeTime, alpha: 1}
		steps = append(steps, g.fading)
	}
	steps = append(steps, behaviour.Do(func() { g.setVisible(false) }))
	return behaviour.Sequence(steps...)
}

func (g *GazeDisappear) setVisible(visible bool) {
	for _, r := range g.renderers {
		r.SetEnabled(visible)
	}
	for _, c := range g.colliders {
		c.SetEnabled(visible)
	}
}

func (g *GazeDisappear) playClip(clip *audio.Clip) {
	if clip != nil && g.audioSource != nil {
		g.audioSource.PlayOneShot(clip)
	}
}

func (g *GazeDisappear) materials() []renderer.ColorProperty {
	var mats []renderer.ColorProperty
	for _, r := range g.renderers {
		for _, s := range r.Materials {
			if m, ok := s.(renderer.ColorProperty); ok {
				mats = append(mats, m)
			}
		}
	}
	return mats
}

// fadeTask lowers material alpha linearly from 1 to 0 over duration,
// suspending once per frame
type fadeTask struct {
	owner     *GazeDisappear
	duration  float32
	elapsed   float32
	alpha     float32
	materials []renderer.ColorProperty
	started   bool
}

func (f *fadeTask) Resume(deltaTime float32) bool {
	if !f.started {
		f.started = true
		f.materials = f.owner.materials()
	}

	if f.elapsed < f.duration {
		f.elapsed += deltaTime
		f.setAlpha(1 - mgl32.Clamp(f.elapsed/f.duration, 0, 1))
		return true
	}

	f.setAlpha(0)
	return false
}

func (f *fadeTask) setAlpha(alpha float32) {
	f.alpha = alpha
	for _, m := range f.materials {
		c := m.Color()
		c[3] = alpha
		m.SetColor(c)
	}
}
