package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultSampleRate = 44100

// Scene is the on-disk description of a scene
//
// File format: YAML, see cmd/haunt/scene.yaml for an example.
type Scene struct {
	Name    string         `yaml:"name"`
	Audio   AudioConfig    `yaml:"audio"`
	Objects []ObjectConfig `yaml:"objects"`

	// BaseDir is the directory relative clip paths are resolved against
	BaseDir string `yaml:"-"`
}

// AudioConfig configures the mixer and the clips scripts can refer to
type AudioConfig struct {
	SampleRate int          `yaml:"sample_rate"`
	Clips      []ClipConfig `yaml:"clips"`
}

// ClipConfig names a sound loaded from a WAV file or synthesized as a tone
type ClipConfig struct {
	Name string      `yaml:"name"`
	Path string      `yaml:"path,omitempty"`
	Tone *ToneConfig `yaml:"tone,omitempty"`
}

type ToneConfig struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"` // seconds
}

// ObjectConfig is one GameObject. Parent refers to another object by name.
type ObjectConfig struct {
	Name       string            `yaml:"name"`
	Tag        string            `yaml:"tag,omitempty"`
	Active     *bool             `yaml:"active,omitempty"`
	Parent     string            `yaml:"parent,omitempty"`
	Position   [3]float32        `yaml:"position"`
	Rotation   [3]float32        `yaml:"rotation"` // euler degrees
	Scale      *[3]float32       `yaml:"scale,omitempty"`
	Components []ComponentConfig `yaml:"components,omitempty"`
}

// ComponentConfig is either a built-in component or a registered script,
// chosen by Type
type ComponentConfig struct {
	Type       string                 `yaml:"type"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
	Materials  []MaterialConfig       `yaml:"materials,omitempty"`
}

// MaterialConfig describes a renderer material. Unlit materials carry no
// color and are never faded.
type MaterialConfig struct {
	Name    string      `yaml:"name"`
	Color   *[3]float32 `yaml:"color,omitempty"`
	Alpha   *float32    `yaml:"alpha,omitempty"`
	Texture string      `yaml:"texture,omitempty"`
	Unlit   bool        `yaml:"unlit,omitempty"`
}

// LoadScene reads, defaults and validates a scene file
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	scene, err := ParseScene(data)
	if err != nil {
		return nil, err
	}
	scene.BaseDir = filepath.Dir(path)
	return scene, nil
}

// ParseScene decodes, defaults and validates scene YAML
func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	scene.ApplyDefaults()
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &scene, nil
}

// ApplyDefaults fills in everything a scene file may leave out
func (s *Scene) ApplyDefaults() {
	if s.Audio.SampleRate == 0 {
		s.Audio.SampleRate = DefaultSampleRate
	}
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Active == nil {
			active := true
			o.Active = &active
		}
		if o.Scale == nil {
			o.Scale = &[3]float32{1, 1, 1}
		}
	}
}

// ClipPath resolves a clip path against the scene directory
func (s *Scene) ClipPath(c ClipConfig) string {
	return s.Resolve(c.Path)
}

// Resolve makes a path from the scene file relative to the scene directory
func (s *Scene) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.BaseDir == "" {
		return path
	}
	return filepath.Join(s.BaseDir, path)
}
