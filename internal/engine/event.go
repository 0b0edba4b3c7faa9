package engine

// Subscription identifies a listener so it can be removed later.
// The zero value removes nothing.
type Subscription uint64

// Event is a Unity-style multi-cast event system.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	listeners []listener[struct{}]
	nextID    Subscription
}

type listener[T any] struct {
	id Subscription
	fn func(T)
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) Subscription {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[struct{}]{id: e.nextID, fn: func(struct{}) { callback() }})
	return e.nextID
}

// RemoveListener removes the listener registered under id.
func (e *Event) RemoveListener(id Subscription) {
	e.listeners = removeListener(e.listeners, id)
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in subscription order
func (e *Event) Invoke() {
	for _, l := range snapshot(e.listeners) {
		l.fn(struct{}{})
	}
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    Subscription
}

func (e *EventWithArg[T]) AddListener(callback func(T)) Subscription {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id Subscription) {
	e.listeners = removeListener(e.listeners, id)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range snapshot(e.listeners) {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

func removeListener[T any](ls []listener[T], id Subscription) []listener[T] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// snapshot lets listeners unsubscribe themselves while the event is firing.
func snapshot[T any](ls []listener[T]) []listener[T] {
	if len(ls) == 0 {
		return nil
	}
	out := make([]listener[T], len(ls))
	copy(out, ls)
	return out
}
