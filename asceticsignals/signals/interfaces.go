package signals

// Listener receives the values of a dispatch as positional arguments.
type Listener[T any] func(values ...T)

type AddOption func(*addOptions)

type addOptions struct {
	once       bool
	immediate  bool
	listenerID []any
}

// Once detaches the slot right after its first dispatch.
func Once() AddOption {
	return func(o *addOptions) {
		o.once = true
	}
}

// Immediate invokes the listener with the current state before Add returns.
func Immediate() AddOption {
	return func(o *addOptions) {
		o.immediate = true
	}
}

// WithID overrides the listener identity used for de-duplication.
// Add rejects ids that are not comparable.
func WithID(id any) AddOption {
	return func(o *addOptions) {
		o.listenerID = []any{id}
	}
}

func newAddOptions(opts []AddOption) addOptions {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
