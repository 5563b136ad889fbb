package fn

import (
	"github.com/ib-77/trycatch/pkg/try"
	"github.com/ib-77/trycatch/pkg/try/catch"
)

type (
	// Function maps an A to a V.
	Function[A, V any] func(a A) V

	// BiFunction maps an A and a B to a V.
	BiFunction[A, B, V any] func(a A, b B) V

	// BiPredicate tests an A and a B.
	BiPredicate[A, B any] func(a A, b B) bool
)

// Peek returns an identity function that first passes its argument to c.
func Peek[T any](c func(T)) func(T) T {
	return func(t T) T {
		c(t)
		return t
	}
}

// PeekSupplier returns a function that ignores its argument and returns s().
func PeekSupplier[T any](s func() T) func(T) T {
	return func(T) T {
		return s()
	}
}

// PeekRun returns an identity function that first calls r.
func PeekRun[T any](r func()) func(T) T {
	return func(t T) T {
		r()
		return t
	}
}

// Supply returns a function that ignores its argument and returns s().
func Supply[T, R any](s func() R) func(T) R {
	return func(T) R {
		return s()
	}
}

func Curry[A, B, V any](f BiFunction[A, B, V]) func(A) func(B) V {
	return func(a A) func(B) V {
		return func(b B) V {
			return f(a, b)
		}
	}
}

func CurryPredicate[A, B any](p BiPredicate[A, B]) func(A) func(B) bool {
	return Curry(BiFunction[A, B, bool](p))
}

// LeftCurry fixes the first argument first. It is the same as Curry.
func LeftCurry[A, B, V any](f BiFunction[A, B, V]) func(A) func(B) V {
	return Curry(f)
}

// RightCurry fixes the second argument first.
func RightCurry[A, B, V any](f BiFunction[A, B, V]) func(B) func(A) V {
	return func(b B) func(A) V {
		return func(a A) V {
			return f(a, b)
		}
	}
}

// Consume turns a consumer into a function, for use with try.Map.
func Consume[T any](c func(T)) func(T) try.Unit {
	return func(t T) try.Unit {
		c(t)
		return try.Unit{}
	}
}

// Discard drops f's result.
func Discard[T, R any](f Function[T, R]) func(T) {
	return func(t T) {
		f(t)
	}
}

// Constant returns a function that always returns r.
func Constant[T, R any](r R) func(T) R {
	return func(T) R {
		return r
	}
}

// MustSupplier returns a supplier that calls fn through catch.Call and
// panics with the returned *catch.Incident when it fails.
func MustSupplier[T any](fn func() (T, error), opts ...catch.Option) func() T {
	return func() T {
		v, err := catch.Call(fn, opts...)
		if err != nil {
			panic(err)
		}
		return v
	}
}
