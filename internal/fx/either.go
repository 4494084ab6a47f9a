package fx

// Either holds either a success value (Right) or a failure value (Left).
// The failure side is ordinary data (an error map, a message), never a
// raised fault. For comparable E and T, == is structural equality.
type Either[E, T any] struct {
	left    E
	right   T
	isRight bool
}

// RightOf wraps a success value.
func RightOf[E, T any](v T) Either[E, T] {
	return Either[E, T]{right: v, isRight: true}
}

// LeftOf wraps a failure value.
func LeftOf[E, T any](e E) Either[E, T] {
	return Either[E, T]{left: e}
}

// IsRight reports whether the computation succeeded.
func (e Either[E, T]) IsRight() bool { return e.isRight }

// IsLeft reports whether the computation failed.
func (e Either[E, T]) IsLeft() bool { return !e.isRight }

// Get returns the success value and whether it is present.
func (e Either[E, T]) Get() (T, bool) { return e.right, e.isRight }

// Err returns the failure value and whether the container is Left.
func (e Either[E, T]) Err() (E, bool) { return e.left, !e.isRight }

// OrElse returns the success value, or def when Left.
func (e Either[E, T]) OrElse(def T) T {
	if e.isRight {
		return e.right
	}
	return def
}

// Map applies fn to the success value only; a Left passes through with its
// failure payload intact.
func (e Either[E, T]) Map(fn func(T) T) Either[E, T] {
	if !e.isRight {
		return e
	}
	return RightOf[E](fn(e.right))
}

// MapEither applies fn to a success value, producing an Either of the
// result type. The failure type is carried across unchanged.
func MapEither[E, T, U any](e Either[E, T], fn func(T) U) Either[E, U] {
	if v, ok := e.Get(); ok {
		return RightOf[E](fn(v))
	}
	return Either[E, U]{left: e.left}
}

// BindEither chains a function returning another Either, short-circuiting
// on Left: the first failure in a chain is the one surfaced.
func BindEither[E, T, U any](e Either[E, T], fn func(T) Either[E, U]) Either[E, U] {
	if v, ok := e.Get(); ok {
		return fn(v)
	}
	return Either[E, U]{left: e.left}
}
