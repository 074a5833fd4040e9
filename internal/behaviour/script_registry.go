package behaviour

import (
	"sort"

	"Haunt3D/internal/audio"
)

// ScriptConstructor builds a script from its serialized properties. Unknown
// or missing properties fall back to the script's defaults.
type ScriptConstructor func(props Properties) Component

// References lets scripts look up scene objects and assets by name once the
// whole scene exists
type References interface {
	FindGameObject(name string) *GameObject
	Clip(name string) *audio.Clip
}

// ReferenceResolver is implemented by scripts holding name references that
// can only be bound after every object is created
type ReferenceResolver interface {
	ResolveReferences(refs References)
}

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript returns nil when no script is registered under name
func CreateScript(name string, props Properties) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(props)
	}
	return nil
}
