package behaviour

// Coroutine is a task that spans several frames. Resume advances it by one
// frame and reports whether it wants to be resumed again.
type Coroutine interface {
	Resume(deltaTime float32) bool
}

// CoroutineFunc adapts a plain function to Coroutine
type CoroutineFunc func(deltaTime float32) bool

func (f CoroutineFunc) Resume(deltaTime float32) bool {
	return f(deltaTime)
}

// Sequence runs coroutines one after another. When one finishes the next
// one starts in the same frame.
func Sequence(steps ...Coroutine) Coroutine {
	i := 0
	return CoroutineFunc(func(deltaTime float32) bool {
		for i < len(steps) {
			if steps[i] != nil && steps[i].Resume(deltaTime) {
				return true
			}
			i++
		}
		return false
	})
}

// Do wraps a one-off action as a coroutine that finishes immediately
func Do(action func()) Coroutine {
	return CoroutineFunc(func(float32) bool {
		action()
		return false
	})
}
