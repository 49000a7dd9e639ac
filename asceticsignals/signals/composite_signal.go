package signals

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
)

// CompositeSignal forwards every operation to its delegates in order.
type CompositeSignal[T any] struct {
	delegates []*Signal[T]
}

func NewCompositeSignal[T any](delegates ...*Signal[T]) *CompositeSignal[T] {
	return &CompositeSignal[T]{delegates: delegates}
}

// Add registers listener on every delegate. The returned disposable removes
// each slot that was created; delegate failures are aggregated.
func (s *CompositeSignal[T]) Add(listener Listener[T], opts ...AddOption) (disposable.Disposable, error) {
	var result error
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for i, delegate := range s.delegates {
		slot, err := delegate.Add(listener, opts...)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "delegate %d", i))
			continue
		}
		if slot != nil {
			disposables = append(disposables, slot)
		}
	}
	return disposable.NewCompositeDisposable(disposables...), result
}

func (s *CompositeSignal[T]) AddOnce(listener Listener[T], opts ...AddOption) (disposable.Disposable, error) {
	return s.Add(listener, append([]AddOption{Once()}, opts...)...)
}

func (s *CompositeSignal[T]) Dispatch(values ...T) *CompositeSignal[T] {
	for _, delegate := range s.delegates {
		delegate.Dispatch(values...)
	}
	return s
}

func (s *CompositeSignal[T]) Clear() *CompositeSignal[T] {
	for _, delegate := range s.delegates {
		delegate.Clear()
	}
	return s
}

// Has reports whether every delegate holds the listener.
func (s *CompositeSignal[T]) Has(listener Listener[T], listenerID ...any) bool {
	if len(s.delegates) == 0 {
		return false
	}
	for _, delegate := range s.delegates {
		if !delegate.Has(listener, listenerID...) {
			return false
		}
	}
	return true
}

// Len returns the number of slots across all delegates.
func (s *CompositeSignal[T]) Len() int {
	n := 0
	for _, delegate := range s.delegates {
		n += delegate.Len()
	}
	return n
}
