package try

import "fmt"

// Option is a value that may be absent. A present Option can hold a nil
// pointer or interface; presence and nil-ness are separate questions.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// IfPresent calls fn with the value when there is one.
func (o Option[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
