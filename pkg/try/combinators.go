package try

import "runtime/debug"

// DespatchHandler handles both variants of a Try. Pass one to Despatch.
type DespatchHandler[T, R any] interface {
	OnSuccess(s Succeeded[T]) R
	OnFailure(f Failed[T]) R
}

// With calls fn once. A returned error or a panic becomes the cause of a
// Failure; nothing is rethrown.
func With[T any](fn func() (T, error)) (res Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()

	v, err := fn()
	return Of(v, err)
}

// WithValue is With for functions that can only fail by panicking.
func WithValue[T any](fn func() T) Try[T] {
	return With(func() (T, error) {
		return fn(), nil
	})
}

func WithRunnable(fn func() error) Try[Unit] {
	return With(func() (Unit, error) {
		return Unit{}, fn()
	})
}

// Fold calls exactly one of onSuccess or onFailure and returns its result.
func Fold[T, R any](t Try[T], onSuccess func(v T) R, onFailure func(cause error) R) R {
	if t.ok {
		return onSuccess(t.value)
	}
	return onFailure(t.Err())
}

func Despatch[T, R any](t Try[T], h DespatchHandler[T, R]) R {
	return Fold(t,
		func(v T) R { return h.OnSuccess(Succeeded[T]{value: v}) },
		func(c error) R { return h.OnFailure(Failed[T]{cause: c}) })
}

// Map applies f to a successful value. A panic in f yields a Failure.
// A Failure passes through with the same cause and f is not called.
func Map[T, R any](t Try[T], f func(v T) R) Try[R] {
	return Fold(t,
		func(v T) Try[R] {
			return WithValue(func() R { return f(v) })
		},
		Failure[R])
}

// TryMap is Map for functions that return an error.
func TryMap[T, R any](t Try[T], f func(v T) (R, error)) Try[R] {
	return Fold(t,
		func(v T) Try[R] {
			return With(func() (R, error) { return f(v) })
		},
		Failure[R])
}

// FlatMap returns f(v) for a successful value. A panic in f is captured
// as a Failure, the same as Map. A Failure passes through unchanged.
func FlatMap[T, R any](t Try[T], f func(v T) Try[R]) Try[R] {
	return Fold(t,
		func(v T) Try[R] {
			outer := WithValue(func() Try[R] { return f(v) })
			if outer.IsFailure() {
				return Failure[R](outer.cause)
			}
			return outer.value
		},
		Failure[R])
}

// Recover turns a Failure into Success(f(cause)). A panic in f is not
// captured.
func (t Try[T]) Recover(f func(cause error) T) Try[T] {
	return Fold(t,
		func(T) Try[T] { return t },
		func(c error) Try[T] { return Success(f(c)) })
}

// RecoverWith replaces a Failure with f(cause). A panic in f is not
// captured.
func (t Try[T]) RecoverWith(f func(cause error) Try[T]) Try[T] {
	return Fold(t,
		func(T) Try[T] { return t },
		f)
}

func (t Try[T]) OnSuccess(fn func(v T)) Try[T] {
	return t.OnComplete(func(v T, cause error) {
		if cause == nil {
			fn(v)
		}
	})
}

func (t Try[T]) OnFailure(fn func(cause error)) Try[T] {
	return t.OnComplete(func(_ T, cause error) {
		if cause != nil {
			fn(cause)
		}
	})
}

// OnComplete calls fn with (value, nil) on Success and (zero, cause) on
// Failure.
func (t Try[T]) OnComplete(fn func(v T, cause error)) Try[T] {
	Fold(t,
		func(v T) Unit {
			fn(v, nil)
			return Unit{}
		},
		func(c error) Unit {
			var zero T
			fn(zero, c)
			return Unit{}
		})
	return t
}
