package try

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState is matched by every *IllegalStateError.
	ErrIllegalState = errors.New("try: illegal state")

	// ErrNilCause replaces a nil cause given to Failure.
	ErrNilCause = errors.New("try: failure without cause")
)

// PanicError is the cause recorded when a computation panics instead of
// returning an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error, so that a
// runtime.Error raised by the computation can be found with errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IllegalStateError reports a narrowing call made on the wrong variant.
type IllegalStateError struct {
	Op    string
	Cause error
}

func (e *IllegalStateError) Error() string {
	switch e.Op {
	case "ToSuccess":
		return fmt.Sprintf("try: cannot convert Failure(%v) to Success, use Recover instead", e.Cause)
	case "ToFailure":
		return "try: cannot convert Success to Failure"
	}
	return "try: illegal state in " + e.Op
}

func (e *IllegalStateError) Unwrap() error {
	return e.Cause
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

// IsPanic reports whether err was produced by a recovered panic.
func IsPanic(err error) bool {
	var p *PanicError
	return errors.As(err, &p)
}
