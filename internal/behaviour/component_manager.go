package behaviour

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// RegisterGameObject adds obj and every descendant not yet registered.
// Components are started lazily before their first Update.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	if obj.manager == cm {
		return
	}
	obj.manager = cm
	cm.gameObjects = append(cm.gameObjects, obj)
	for _, child := range obj.Children() {
		cm.RegisterGameObject(child)
	}
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.manager = nil
			obj.Destroy()
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// FindGameObjectWithTag returns the first active object carrying tag
func (cm *ComponentManager) FindGameObjectWithTag(tag string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag && obj.ActiveInHierarchy() {
			return obj
		}
	}
	return nil
}

// MainCamera returns the first enabled camera flagged IsMain, or nil
func (cm *ComponentManager) MainCamera() *CameraComponent {
	for _, obj := range cm.gameObjects {
		if !obj.ActiveInHierarchy() {
			continue
		}
		if cam, ok := GetComponent[*CameraComponent](obj); ok && cam.IsMain && cam.GetEnabled() {
			return cam
		}
	}
	return nil
}

// StartAll runs Start on every component that has not started yet
func (cm *ComponentManager) StartAll() {
	for _, obj := range cm.gameObjects {
		obj.internalStart()
	}
}

// UpdateAll advances every active GameObject by one frame
func (cm *ComponentManager) UpdateAll(deltaTime float32) {
	// Process destroyed objects
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	cm.StartAll()

	for _, obj := range cm.gameObjects {
		if obj.ActiveInHierarchy() {
			obj.internalUpdate(deltaTime)
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll(deltaTime float32) {
	cm.StartAll()

	for _, obj := range cm.gameObjects {
		if obj.ActiveInHierarchy() {
			obj.internalFixedUpdate(deltaTime)
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.manager = nil
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
}
