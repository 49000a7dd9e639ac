package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_RunsCallback(t *testing.T) {
	called := 0
	d := NewDisposable(func() { called++ })
	d.Dispose()
	assert.Equal(t, 1, called)
}

func TestDisposable_RunsCallbackOnlyOnce(t *testing.T) {
	called := 0
	d := NewDisposable(func() { called++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, called)
}

func TestDisposable_NilCallback(t *testing.T) {
	d := NewDisposable(nil)
	d.Dispose() // should not panic
}

func TestCompositeDisposable_DisposesAllInOrder(t *testing.T) {
	var order []int
	d := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
	)
	d.Dispose()
	assert.Equal(t, []int{1, 2}, order)
}

func TestCompositeDisposable_Empty(t *testing.T) {
	d := NewCompositeDisposable()
	d.Dispose() // should not panic
}

func TestCompositeDisposable_IsDisposable(t *testing.T) {
	var d Disposable = NewCompositeDisposable(NewDisposable(func() {}))
	assert.NotNil(t, d)
}
