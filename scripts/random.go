package scripts

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// RandomSource yields numbers in [0, 1]. *rand.Rand satisfies it.
type RandomSource interface {
	Float32() float32
}

// NewUniformSource returns a seeded uniform source
func NewUniformSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NoiseSource walks a 1D Perlin curve, so successive samples drift instead
// of jumping. Good for candles and failing bulbs.
type NoiseSource struct {
	Step  float64
	noise *perlin.Perlin
	x     float64
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{
		Step:  0.35,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (n *NoiseSource) Float32() float32 {
	v := n.noise.Noise1D(n.x)
	n.x += n.Step
	return mgl32.Clamp(float32((v+1)/2), 0, 1)
}

// RandomRange maps a sample from src into [min, max]
func RandomRange(src RandomSource, min, max float32) float32 {
	v := min + src.Float32()*(max-min)
	if min <= max {
		return mgl32.Clamp(v, min, max)
	}
	return mgl32.Clamp(v, max, min)
}
