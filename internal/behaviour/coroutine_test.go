package behaviour

import (
	"testing"
)

// counter suspends n times before finishing
type counter struct {
	left    int
	resumes int
	deltas  []float32
}

func (c *counter) Resume(deltaTime float32) bool {
	c.resumes++
	c.deltas = append(c.deltas, deltaTime)
	if c.left == 0 {
		return false
	}
	c.left--
	return true
}

// starterComponent launches a coroutine on its first Update
type starterComponent struct {
	BaseComponent
	co       Coroutine
	launched bool
}

func (s *starterComponent) Update(float32) {
	if !s.launched {
		s.launched = true
		s.GetGameObject().StartCoroutine(s.co)
	}
}

func TestCoroutineFirstStepRunsImmediately(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	co := &counter{left: 2}
	obj.AddComponent(&starterComponent{co: co})
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.1)
	if co.resumes != 1 {
		t.Fatalf("Expected 1 resume in the starting frame, got %d", co.resumes)
	}
	if co.deltas[0] != 0.1 {
		t.Errorf("First step should see the frame delta, got %f", co.deltas[0])
	}

	cm.UpdateAll(0.2)
	cm.UpdateAll(0.3)
	if co.resumes != 3 {
		t.Errorf("Expected 3 resumes, got %d", co.resumes)
	}
	if obj.RunningCoroutines() != 0 {
		t.Errorf("Finished coroutine should be dropped, got %d running", obj.RunningCoroutines())
	}

	cm.UpdateAll(0.1)
	if co.resumes != 3 {
		t.Errorf("Finished coroutine should not resume again, got %d", co.resumes)
	}
}

func TestCoroutineFinishingImmediately(t *testing.T) {
	obj := NewGameObject("Test")
	co := &counter{}

	obj.StartCoroutine(co)

	if obj.RunningCoroutines() != 0 {
		t.Error("A coroutine that never suspends should not be kept")
	}
}

func TestCoroutinePausedOnInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	cm.RegisterGameObject(obj)
	co := &counter{left: 5}
	obj.StartCoroutine(co)

	obj.Active = false
	cm.UpdateAll(0.1)

	if co.resumes != 1 {
		t.Errorf("Inactive object should not resume coroutines, got %d resumes", co.resumes)
	}
}

func TestSequence(t *testing.T) {
	var order []string
	first := &counter{left: 1}
	seq := Sequence(
		Do(func() { order = append(order, "a") }),
		first,
		Do(func() { order = append(order, "b") }),
	)

	if !seq.Resume(0.1) {
		t.Fatal("Sequence should suspend while the counter suspends")
	}
	if len(order) != 1 {
		t.Fatalf("Expected only the first action, got %v", order)
	}

	if seq.Resume(0.1) {
		t.Error("Sequence should finish once the counter finishes")
	}
	if len(order) != 2 || order[1] != "b" {
		t.Errorf("Expected [a b], got %v", order)
	}
}
