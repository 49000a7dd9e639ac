package signals

import (
	"reflect"
	"unsafe"
)

// Slot is a single listener registration on a Signal.
type Slot[T any] struct {
	id       any
	listener Listener[T]
	signal   *Signal[T]
	once     bool
	fired    bool
}

// NewSlot binds listener to signal without registering it.
// Registered slots are created by Signal.Add and Signal.AddOnce.
func NewSlot[T any](listener Listener[T], signal *Signal[T], once bool) *Slot[T] {
	return newSlot(makeID(listener), listener, signal, once)
}

func newSlot[T any](id any, listener Listener[T], signal *Signal[T], once bool) *Slot[T] {
	return &Slot[T]{
		id:       id,
		listener: listener,
		signal:   signal,
		once:     once,
	}
}

// Remove detaches the slot from its signal. Calling it on a detached slot is a no-op.
// The back-reference is kept when the signal does not hold this slot.
func (s *Slot[T]) Remove() *Slot[T] {
	if s.signal == nil {
		return s
	}
	if s.signal.detach(s) {
		s.signal = nil
	}
	return s
}

// Dispose implements disposable.Disposable.
func (s *Slot[T]) Dispose() {
	s.Remove()
}

// Once reports whether the slot detaches after its first dispatch.
func (s *Slot[T]) Once() bool {
	return s.once
}

// IsBound reports whether the slot is still linked to a signal.
func (s *Slot[T]) IsBound() bool {
	return s.signal != nil
}

func (s *Slot[T]) invoke(values []T) {
	if !s.once {
		s.listener(values...)
		return
	}
	// A nested dispatch must not fire the slot again while its listener runs.
	s.fired = true
	completed := false
	defer func() {
		if completed {
			s.Remove()
		} else {
			s.fired = false
		}
	}()
	s.listener(values...)
	completed = true
}

func resolveID[T any](listener Listener[T], listenerID []any) any {
	if len(listenerID) > 0 {
		return listenerID[0]
	}
	return makeID(listener)
}

// makeID returns the address of the function value, so distinct closures
// and method values of distinct receivers are distinct listeners.
func makeID[T any](listener Listener[T]) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&listener))
}

func isComparableID(id any) bool {
	t := reflect.TypeOf(id)
	return t == nil || t.Comparable()
}
