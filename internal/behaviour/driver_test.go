package behaviour

import (
	"testing"
	"time"
)

func TestFrameDriverStep(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)
	d := NewFrameDriver(cm)

	d.Tick(50 * time.Millisecond)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}
	if !comp.fixedCalled {
		t.Error("50ms should cover at least one fixed step")
	}
	if d.FrameCount() != 1 {
		t.Errorf("Expected frame count 1, got %d", d.FrameCount())
	}
}

func TestFrameDriverClampsAndScales(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)
	d := NewFrameDriver(cm)
	d.TimeScale = 0.5

	d.Step(5)

	expected := DefaultMaxDeltaTime * 0.5
	if comp.lastDelta != expected {
		t.Errorf("Expected clamped and scaled delta %f, got %f", expected, comp.lastDelta)
	}

	d.Step(-1)
	if comp.lastDelta != 0 {
		t.Errorf("Negative elapsed time should step 0, got %f", comp.lastDelta)
	}
}
