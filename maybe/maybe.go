package maybe

// Maybe is an option type for values of type T. Its zero value is Nothing.
//
// We use it throughout the module to model DOM attribute values, where the
// absence of an attribute has to be distinguishable from an attribute set
// to the empty string.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Present returns true if m holds a value.
func (m Maybe[T]) Present() bool {
	return m.ok
}

// Value unwraps m, with an ok-flag in the manner of a map access.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.ok
}

// WithDefault unwraps m, substituting def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to a present value and is a no-op on Nothing.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if !m.ok {
		return Nothing[S]()
	}
	return Just(f(m.value))
}
