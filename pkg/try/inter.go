package try

// Outcome is anything that reports a value or an error, such as a Try or
// a result type from another package.
type Outcome[T any] interface {
	// Get returns the value, or the error if the operation failed
	Get() (T, error)
}

// Checked extends Outcome with variant checks.
type Checked[T any] interface {
	Outcome[T]
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if operation failed
	Err() error
}

var _ Checked[int] = Try[int]{}

// FromOutcome converts any Outcome into a Try.
func FromOutcome[T any](o Outcome[T]) Try[T] {
	if t, ok := o.(Try[T]); ok {
		return t
	}
	return With(o.Get)
}
