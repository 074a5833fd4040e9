package scripts

import (
	"time"

	"Haunt3D/internal/behaviour"
	"Haunt3D/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultMinIntensity = float32(0.5)
	DefaultMaxIntensity = float32(1.5)
	DefaultFlickerSpeed = float32(0.1)
)

// Dimmable is a light whose intensity can be driven
type Dimmable interface {
	GetIntensity() float32
	SetIntensity(intensity float32)
}

// LightFlicker picks a new random intensity for LightToFlicker every
// FlickerSpeed seconds. Lower FlickerSpeed flickers faster.
type LightFlicker struct {
	behaviour.BaseComponent
	LightToFlicker Dimmable
	MinIntensity   float32
	MaxIntensity   float32
	FlickerSpeed   float32
	Random         RandomSource

	lightName string
	timer     float32
}

func init() {
	behaviour.RegisterScript("LightFlicker", func(props behaviour.Properties) behaviour.Component {
		f := NewLightFlicker()
		f.MinIntensity = props.Float32("min_intensity", f.MinIntensity)
		f.MaxIntensity = props.Float32("max_intensity", f.MaxIntensity)
		f.FlickerSpeed = props.Float32("flicker_speed", f.FlickerSpeed)
		f.lightName = props.String("light_to_flicker", "")

		seed := props.Int64("seed", time.Now().UnixNano())
		if props.String("mode", "random") == "noise" {
			f.Random = NewNoiseSource(seed)
		} else {
			f.Random = NewUniformSource(seed)
		}
		return f
	})
}

func NewLightFlicker() *LightFlicker {
	return &LightFlicker{
		MinIntensity: DefaultMinIntensity,
		MaxIntensity: DefaultMaxIntensity,
		FlickerSpeed: DefaultFlickerSpeed,
	}
}

func (f *LightFlicker) ResolveReferences(refs behaviour.References) {
	if f.lightName == "" || f.LightToFlicker != nil {
		return
	}
	if light, ok := behaviour.GetComponent[*behaviour.LightComponent](refs.FindGameObject(f.lightName)); ok {
		f.LightToFlicker = light
	}
}

func (f *LightFlicker) Start() {
	if f.LightToFlicker == nil && f.lightName != "" {
		logger.Log.Warn("LightFlicker: named light not found",
			zap.String("object", f.GetGameObject().Name),
			zap.String("light", f.lightName))
	}
	if f.LightToFlicker == nil {
		if light, ok := behaviour.GetComponent[*behaviour.LightComponent](f.GetGameObject()); ok {
			f.LightToFlicker = light
		}
	}
	if f.LightToFlicker == nil {
		logger.Log.Warn("LightFlicker: no light to flicker",
			zap.String("object", f.GetGameObject().Name),
			zap.String("light", f.lightName))
	}
	if f.Random == nil {
		f.Random = NewUniformSource(time.Now().UnixNano())
	}
}

func (f *LightFlicker) Update(deltaTime float32) {
	if f.LightToFlicker == nil {
		return
	}

	f.timer += deltaTime
	if f.timer >= f.FlickerSpeed {
		if f.Random == nil {
			f.Random = NewUniformSource(time.Now().UnixNano())
		}
		f.LightToFlicker.SetIntensity(RandomRange(f.Random, f.MinIntensity, f.MaxIntensity))
		f.timer = 0
	}
}

// Timer returns the time accumulated since the last flicker
func (f *LightFlicker) Timer() float32 {
	return f.timer
}
