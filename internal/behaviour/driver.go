package behaviour

import (
	"time"
)

const (
	// DefaultFixedDeltaTime matches a 50Hz physics step
	DefaultFixedDeltaTime = float32(0.02)
	// DefaultMaxDeltaTime keeps a long stall from being replayed as one huge frame
	DefaultMaxDeltaTime = float32(1.0 / 3.0)
)

// FrameDriver turns wall clock time into frame updates for a manager.
// Update runs once per Tick; FixedUpdate runs zero or more times per Tick
// in FixedDeltaTime steps.
type FrameDriver struct {
	Manager        *ComponentManager
	TimeScale      float32
	FixedDeltaTime float32
	MaxDeltaTime   float32

	fixedAccumulator float32
	frameCount       int
	elapsed          float32
}

func NewFrameDriver(manager *ComponentManager) *FrameDriver {
	return &FrameDriver{
		Manager:        manager,
		TimeScale:      1.0,
		FixedDeltaTime: DefaultFixedDeltaTime,
		MaxDeltaTime:   DefaultMaxDeltaTime,
	}
}

// Tick advances the scene by real elapsed time
func (d *FrameDriver) Tick(elapsed time.Duration) {
	d.Step(float32(elapsed.Seconds()))
}

// Step advances the scene by dt seconds of unscaled time
func (d *FrameDriver) Step(dt float32) {
	if dt < 0 {
		dt = 0
	}
	if d.MaxDeltaTime > 0 && dt > d.MaxDeltaTime {
		dt = d.MaxDeltaTime
	}
	dt *= d.TimeScale

	if d.FixedDeltaTime > 0 {
		d.fixedAccumulator += dt
		for d.fixedAccumulator >= d.FixedDeltaTime {
			d.Manager.FixedUpdateAll(d.FixedDeltaTime)
			d.fixedAccumulator -= d.FixedDeltaTime
		}
	}

	d.Manager.UpdateAll(dt)
	d.frameCount++
	d.elapsed += dt
}

// FrameCount returns how many frames have been stepped
func (d *FrameDriver) FrameCount() int {
	return d.frameCount
}

// Time returns the scaled time stepped so far, in seconds
func (d *FrameDriver) Time() float32 {
	return d.elapsed
}
