package config

import (
	"errors"
	"fmt"
)

// Validate checks cross references and value ranges
func (s *Scene) Validate() error {
	if s.Audio.SampleRate < 0 {
		return fmt.Errorf("audio sample_rate must be positive, got %d", s.Audio.SampleRate)
	}

	clips := make(map[string]bool, len(s.Audio.Clips))
	for _, c := range s.Audio.Clips {
		if c.Name == "" {
			return errors.New("clip without a name")
		}
		if clips[c.Name] {
			return fmt.Errorf("duplicate clip %q", c.Name)
		}
		clips[c.Name] = true
		if (c.Path == "") == (c.Tone == nil) {
			return fmt.Errorf("clip %q needs exactly one of path or tone", c.Name)
		}
		if c.Tone != nil && (c.Tone.Frequency <= 0 || c.Tone.Duration <= 0) {
			return fmt.Errorf("clip %q tone needs a positive frequency and duration", c.Name)
		}
	}

	parents := make(map[string]string, len(s.Objects))
	for _, o := range s.Objects {
		if o.Name == "" {
			return errors.New("object without a name")
		}
		if _, dup := parents[o.Name]; dup {
			return fmt.Errorf("duplicate object %q", o.Name)
		}
		parents[o.Name] = o.Parent
	}

	for _, o := range s.Objects {
		if o.Parent != "" {
			if _, ok := parents[o.Parent]; !ok {
				return fmt.Errorf("object %q has unknown parent %q", o.Name, o.Parent)
			}
		}
		// Walking up more than len(objects) steps means a cycle
		cur, steps := o.Name, 0
		for parents[cur] != "" {
			cur = parents[cur]
			steps++
			if steps > len(parents) {
				return fmt.Errorf("object %q is part of a parent cycle", o.Name)
			}
		}

		for _, c := range o.Components {
			if err := validateComponent(c, clips); err != nil {
				return fmt.Errorf("object %q: %w", o.Name, err)
			}
		}
	}
	return nil
}

func validateComponent(c ComponentConfig, clips map[string]bool) error {
	if c.Type == "" {
		return errors.New("component without a type")
	}

	for _, key := range []string{"look_time_to_disappear", "fade_time", "flicker_speed", "max_gaze_distance"} {
		if v, ok := number(c.Properties[key]); ok && v < 0 {
			return fmt.Errorf("%s: %s must not be negative", c.Type, key)
		}
	}

	minV, hasMin := number(c.Properties["min_intensity"])
	maxV, hasMax := number(c.Properties["max_intensity"])
	if hasMin && hasMax && minV > maxV {
		return fmt.Errorf("%s: min_intensity %g is above max_intensity %g", c.Type, minV, maxV)
	}

	if name, ok := c.Properties["disappear_clip"].(string); ok && name != "" && !clips[name] {
		return fmt.Errorf("%s: unknown clip %q", c.Type, name)
	}
	return nil
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
