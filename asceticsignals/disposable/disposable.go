package disposable

type CallbackDisposable struct {
	callback func()
	disposed bool
}

// NewDisposable wraps callback so that it runs on the first Dispose only.
func NewDisposable(callback func()) *CallbackDisposable {
	return &CallbackDisposable{callback: callback}
}

func (d *CallbackDisposable) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

type CompositeDisposable struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposable {
	return &CompositeDisposable{delegates: delegates}
}

func (d *CompositeDisposable) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
