package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()                        // Called when component is first created
	Start()                        // Called before first Update
	Update(deltaTime float32)      // Called every frame
	FixedUpdate(deltaTime float32) // Called at fixed time intervals
	OnDestroy()                    // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
	started    bool
}

func (c *BaseComponent) Awake()              {}
func (c *BaseComponent) Start()              {}
func (c *BaseComponent) Update(float32)      {}
func (c *BaseComponent) FixedUpdate(float32) {}
func (c *BaseComponent) OnDestroy()          {}

// markStarted reports whether this is the first Start for the component
func (c *BaseComponent) markStarted() bool {
	first := !c.started
	c.started = true
	return first
}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// starter is satisfied by every component embedding BaseComponent
type starter interface {
	markStarted() bool
}

// GameObject represents an object in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component

	manager    *ComponentManager
	coroutines []Coroutine
	pending    []Coroutine
	frameDelta float32
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// Manager returns the manager the object is registered with, or nil
func (obj *GameObject) Manager() *ComponentManager {
	return obj.manager
}

// AddChild parents child under obj
func (obj *GameObject) AddChild(child *GameObject) {
	child.Transform.SetParent(obj.Transform)
}

// Children returns the direct child objects
func (obj *GameObject) Children() []*GameObject {
	result := make([]*GameObject, 0, len(obj.Transform.Children))
	for _, t := range obj.Transform.Children {
		if child := t.GetGameObject(); child != nil {
			result = append(result, child)
		}
	}
	return result
}

// ActiveInHierarchy reports whether obj and every ancestor are active
func (obj *GameObject) ActiveInHierarchy() bool {
	for t := obj.Transform; t != nil; t = t.Parent {
		if o := t.GetGameObject(); o != nil && !o.Active {
			return false
		}
	}
	return obj.Active
}

// unwrap sees through script wrappers to the user script
func unwrap(comp Component) Component {
	if sc, ok := comp.(*ScriptComponent); ok && sc.Script != nil {
		return sc.Script
	}
	return comp
}

// GetComponent returns the first component on obj of type T
func GetComponent[T Component](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if typed, ok := unwrap(comp).(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// GetComponentsInChildren returns every component of type T on obj and its
// descendants, depth first
func GetComponentsInChildren[T Component](obj *GameObject) []T {
	var result []T
	if obj == nil {
		return result
	}
	for _, comp := range obj.Components {
		if typed, ok := unwrap(comp).(T); ok {
			result = append(result, typed)
		}
	}
	for _, child := range obj.Children() {
		result = append(result, GetComponentsInChildren[T](child)...)
	}
	return result
}

// StartCoroutine runs co until its first suspension right away, using the
// current frame's delta, and resumes it once per frame after that until it
// reports completion.
func (obj *GameObject) StartCoroutine(co Coroutine) {
	if co == nil {
		return
	}
	if co.Resume(obj.frameDelta) {
		obj.pending = append(obj.pending, co)
	}
}

// RunningCoroutines returns how many coroutines are still suspended
func (obj *GameObject) RunningCoroutines() int {
	return len(obj.coroutines) + len(obj.pending)
}

func (obj *GameObject) internalUpdate(deltaTime float32) {
	if !obj.ActiveInHierarchy() {
		return
	}
	obj.frameDelta = deltaTime

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(deltaTime)
		}
	}

	// Coroutines started this frame already ran their first step.
	running := obj.coroutines[:0]
	for _, co := range obj.coroutines {
		if co.Resume(deltaTime) {
			running = append(running, co)
		}
	}
	obj.coroutines = append(running, obj.pending...)
	obj.pending = nil
}

func (obj *GameObject) internalFixedUpdate(deltaTime float32) {
	if !obj.ActiveInHierarchy() {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(deltaTime)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.ActiveInHierarchy() {
		return
	}

	for _, comp := range obj.Components {
		if !comp.GetEnabled() {
			continue
		}
		if s, ok := comp.(starter); ok && !s.markStarted() {
			continue
		}
		comp.Start()
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.coroutines = nil
	obj.pending = nil
	obj.Active = false
}
