package disposable

// Disposable releases a registration. Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}
