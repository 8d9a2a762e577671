// Package emitter provides a small typed listener registry.
//
// Emitters are not safe for concurrent use; they are driven from the host's
// single UI goroutine like the rest of the editor.
package emitter

// Emitter delivers values of type T to registered listeners in
// registration order.
type Emitter[T any] struct {
	next      int
	listeners []entry[T]
}

type entry[T any] struct {
	id int
	fn func(T)
}

// On registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (e *Emitter[T]) On(fn func(T)) (off func()) {
	if fn == nil {
		return func() {}
	}
	e.next++
	id := e.next
	e.listeners = append(e.listeners, entry[T]{id: id, fn: fn})
	return func() { e.off(id) }
}

func (e *Emitter[T]) off(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Clear removes every listener.
func (e *Emitter[T]) Clear() {
	e.listeners = nil
}

// Len reports the number of registered listeners.
func (e *Emitter[T]) Len() int { return len(e.listeners) }

// Emit calls every listener with v. Listeners added or removed during Emit
// take effect on the next call.
func (e *Emitter[T]) Emit(v T) {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := append([]entry[T](nil), e.listeners...)
	for _, l := range snapshot {
		l.fn(v)
	}
}
