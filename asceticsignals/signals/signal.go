package signals

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkg/errors"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Signal holds the values of its last dispatch and notifies its listeners
// synchronously, in registration order.
//
// Signal is not safe for concurrent use. Listeners may re-enter the signal
// (Add, Remove, Dispatch) while it is dispatching.
type Signal[T any] struct {
	values []T
	slots  []*Slot[T]
	log    *slog.Logger
}

// NewSignal creates a Signal whose state is initialised to values.
func NewSignal[T any](values ...T) *Signal[T] {
	return &Signal[T]{
		values: append([]T{}, values...),
		log:    discardLogger,
	}
}

// WithLogger sets the logger used for debug tracing and returns the signal.
func (s *Signal[T]) WithLogger(log *slog.Logger) *Signal[T] {
	if log == nil {
		log = discardLogger
	}
	s.log = log
	return s
}

// Add registers listener and returns its slot.
//
// If a listener with the same identity is already registered, Add returns
// a nil slot and leaves the signal unchanged. Identity is the function
// value itself unless WithID is given: a method value or closure has to be
// kept in a variable to be recognised again.
func (s *Signal[T]) Add(listener Listener[T], opts ...AddOption) (*Slot[T], error) {
	if listener == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "listener is a required param of Add() and should be a callable")
	}
	o := newAddOptions(opts)
	if len(o.listenerID) > 0 && !isComparableID(o.listenerID[0]) {
		return nil, errors.Wrapf(ErrInvalidArgument, "listener id of type %T is not comparable", o.listenerID[0])
	}
	id := resolveID(listener, o.listenerID)

	var slot *Slot[T]
	if s.indexOf(id) < 0 {
		slot = newSlot(id, listener, s, o.once)
		s.slots = append(s.slots, slot)
	}
	if o.immediate {
		listener(slices.Clone(s.values)...)
	}
	return slot, nil
}

// AddOnce is Add with the Once option.
func (s *Signal[T]) AddOnce(listener Listener[T], opts ...AddOption) (*Slot[T], error) {
	return s.Add(listener, append([]AddOption{Once()}, opts...)...)
}

// Clear detaches every slot. The state is left untouched.
func (s *Signal[T]) Clear() *Signal[T] {
	for _, slot := range s.slots {
		slot.signal = nil
	}
	s.log.Debug("Cleared signal", "listeners", len(s.slots))
	s.slots = nil
	return s
}

// Dispatch replaces the state with values and invokes the listeners that
// were registered when the dispatch started. Slots detached by an earlier
// listener of the same pass are skipped. Once slots are detached right after
// their listener returns. Every listener gets its own copy of values.
func (s *Signal[T]) Dispatch(values ...T) *Signal[T] {
	current := append([]T{}, values...)
	s.values = current
	snapshot := slices.Clone(s.slots)

	s.log.Debug("Dispatching signal", "listeners", len(snapshot), "values", len(current))

	for _, slot := range snapshot {
		if slot.signal != s || slot.fired {
			continue
		}
		slot.invoke(slices.Clone(current))
	}
	return s
}

// Has reports whether a listener with the same identity is registered.
// An explicit listenerID takes precedence over the listener.
func (s *Signal[T]) Has(listener Listener[T], listenerID ...any) bool {
	if len(listenerID) > 0 {
		if !isComparableID(listenerID[0]) {
			return false
		}
	} else if listener == nil {
		return false
	}
	return s.indexOf(resolveID(listener, listenerID)) >= 0
}

// Len returns the number of registered slots.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// State returns the values of the last dispatch. Callers must not modify it.
func (s *Signal[T]) State() []T {
	return s.values
}

// Value returns the single stored value, or the whole state when it holds
// zero or several values.
func (s *Signal[T]) Value() any {
	if len(s.values) == 1 {
		return s.values[0]
	}
	return s.values
}

func (s *Signal[T]) String() string {
	return fmt.Sprint(s.Value())
}

func (s *Signal[T]) indexOf(id any) int {
	for i, slot := range s.slots {
		if slot.id == id {
			return i
		}
	}
	return -1
}

func (s *Signal[T]) detach(slot *Slot[T]) bool {
	i := slices.Index(s.slots, slot)
	if i < 0 {
		return false
	}
	s.slots = slices.Delete(s.slots, i, i+1)
	s.log.Debug("Detached slot", "once", slot.once, "listeners", len(s.slots))
	return true
}
