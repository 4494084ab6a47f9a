// Package fx provides the two algebraic containers the rest of the core
// composes with: Maybe for optional values and Either for fallible
// computations. Both are immutable values; no operation on either ever
// panics, whichever variant it is applied to.
package fx

// Maybe holds either one value (Just) or no value (Nothing).
// The zero value is Nothing. For comparable T, == is structural equality:
// all Nothing values compare equal, Just values compare by payload.
type Maybe[T any] struct {
	value   T
	present bool
}

// JustOf wraps a value in a present Maybe.
func JustOf[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// NothingOf returns the absent Maybe.
func NothingOf[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr lifts a possibly-nil pointer: nil → Nothing, else Just(*p).
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Maybe[T]{}
	}
	return JustOf(*p)
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.present }

// IsNothing reports whether the container is empty.
func (m Maybe[T]) IsNothing() bool { return !m.present }

// Get returns the held value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.present }

// OrElse returns the held value, or def when Nothing.
func (m Maybe[T]) OrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

// Map applies fn to the held value if present; Nothing passes through
// untouched and fn is never called. Type-changing maps live in the
// package-level Map, since Go methods cannot add type parameters.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	if !m.present {
		return m
	}
	return JustOf(fn(m.value))
}

// Map applies fn to a present value, producing a Maybe of the result type.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if v, ok := m.Get(); ok {
		return JustOf(fn(v))
	}
	return Maybe[U]{}
}

// Bind chains a function that itself returns a Maybe; Nothing propagates
// without calling fn, so containers never nest.
func Bind[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if v, ok := m.Get(); ok {
		return fn(v)
	}
	return Maybe[U]{}
}
