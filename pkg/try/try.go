package try

import "fmt"

// Unit is the success payload of computations that produce no value.
type Unit struct{}

// Try holds the outcome of a computation: either a value or the cause
// that stopped it. Build one with Success, Failure, Of or With.
type Try[T any] struct {
	value T
	cause error
	ok    bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value: v,
		ok:    true,
	}
}

// Failure wraps cause. A nil cause is replaced by ErrNilCause so that a
// Failure always carries something to inspect.
func Failure[T any](cause error) Try[T] {
	if cause == nil {
		cause = ErrNilCause
	}
	return Try[T]{
		cause: cause,
		ok:    false,
	}
}

// Of converts a Go (value, error) pair.
func Of[T any](v T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func (t Try[T]) IsSuccess() bool {
	return t.ok
}

func (t Try[T]) IsFailure() bool {
	return !t.ok
}

// Get returns the value, or the zero value and the cause.
func (t Try[T]) Get() (T, error) {
	return t.value, t.Err()
}

// Err returns the cause, nil on Success.
func (t Try[T]) Err() error {
	if t.ok {
		return nil
	}
	if t.cause == nil {
		// zero Try
		return ErrNilCause
	}
	return t.cause
}

func (t Try[T]) OrElse(def T) T {
	if t.ok {
		return t.value
	}
	return def
}

func (t Try[T]) ToOptional() Option[T] {
	return Fold(t,
		func(v T) Option[T] { return Some(v) },
		func(error) Option[T] { return None[T]() })
}

// ToSuccess narrows t to its success view. It panics with an
// *IllegalStateError when t is a Failure.
func (t Try[T]) ToSuccess() Succeeded[T] {
	s, ok := t.AsSuccess()
	if !ok {
		panic(&IllegalStateError{Op: "ToSuccess", Cause: t.Err()})
	}
	return s
}

// ToFailure narrows t to its failure view. It panics with an
// *IllegalStateError when t is a Success.
func (t Try[T]) ToFailure() Failed[T] {
	f, ok := t.AsFailure()
	if !ok {
		panic(&IllegalStateError{Op: "ToFailure"})
	}
	return f
}

func (t Try[T]) AsSuccess() (Succeeded[T], bool) {
	if !t.ok {
		return Succeeded[T]{}, false
	}
	return Succeeded[T]{value: t.value}, true
}

func (t Try[T]) AsFailure() (Failed[T], bool) {
	if t.ok {
		return Failed[T]{}, false
	}
	return Failed[T]{cause: t.Err()}, true
}

func (t Try[T]) String() string {
	if t.ok {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}

// Succeeded is the narrowed view of a successful Try.
type Succeeded[T any] struct {
	value T
}

func (s Succeeded[T]) Value() T {
	return s.value
}

// Try widens s back to a Try.
func (s Succeeded[T]) Try() Try[T] {
	return Success(s.value)
}

// Failed is the narrowed view of a failed Try. It is itself an error.
type Failed[T any] struct {
	cause error
}

func (f Failed[T]) Cause() error {
	return f.cause
}

func (f Failed[T]) Error() string {
	return f.cause.Error()
}

func (f Failed[T]) Unwrap() error {
	return f.cause
}

func (f Failed[T]) Try() Try[T] {
	return Failure[T](f.cause)
}
