package catch

import "errors"

// Handler decides what a failed call returns. It receives the *Incident
// that was logged; errors.Is and errors.As see through it to the cause.
// Returning a non-nil error propagates the failure.
type Handler[T any] func(cause error) (T, error)

// Rethrow propagates the incident itself. It is the default Handler.
func Rethrow[T any]() Handler[T] {
	return func(cause error) (T, error) {
		var zero T
		return zero, cause
	}
}

// Raw propagates the original cause without the *Incident wrapper.
func Raw[T any]() Handler[T] {
	return func(cause error) (T, error) {
		var zero T
		var inc *Incident
		if errors.As(cause, &inc) {
			return zero, inc.Cause
		}
		return zero, cause
	}
}

// Default swallows the failure and returns v.
func Default[T any](v T) Handler[T] {
	return func(error) (T, error) {
		return v, nil
	}
}

// Ignore swallows the failure and returns the zero value.
func Ignore[T any]() Handler[T] {
	var zero T
	return Default(zero)
}
