package catch

import (
	"context"

	"github.com/ib-77/trycatch/pkg/try"
)

// Call runs fn and, on failure, logs and returns the *Incident.
func Call[T any](fn func() (T, error), opts ...Option) (T, error) {
	return CallWith(fn, Rethrow[T](), opts...)
}

// CallWith runs fn. On failure the incident is logged and handler decides
// the result. A nil handler means Rethrow.
func CallWith[T any](fn func() (T, error), handler Handler[T], opts ...Option) (T, error) {
	cfg := newConfig(Nop, opts)
	defer cfg.cleanup()

	return invoke(try.With(fn), handler, cfg)
}

// CallOrDefault runs fn and returns def if it fails.
func CallOrDefault[T any](fn func() (T, error), def T, opts ...Option) T {
	v, _ := CallWith(fn, Default(def), opts...)
	return v
}

// CallContext is CallWith for context-aware functions. The sink comes
// from ctx unless WithSink is given. If ctx is already done, fn is not
// called and ctx.Err() is handled as its failure.
func CallContext[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	handler Handler[T], opts ...Option) (T, error) {

	cfg := newConfig(SinkFrom(ctx, Nop), opts)
	defer cfg.cleanup()

	if err := ctx.Err(); err != nil {
		return invoke(try.Failure[T](err), handler, cfg)
	}

	return invoke(try.With(func() (T, error) { return fn(ctx) }), handler, cfg)
}

// Run is Call for functions without a result.
func Run(fn func() error, opts ...Option) error {
	_, err := Call(unit(fn), opts...)
	return err
}

// RunIgnore runs fn, logging and swallowing any failure.
func RunIgnore(fn func() error, opts ...Option) {
	_, _ = CallWith(unit(fn), Ignore[try.Unit](), opts...)
}

// Logged wraps fn so that every call goes through Call.
func Logged[T any](fn func() (T, error), opts ...Option) func() (T, error) {
	return func() (T, error) {
		return Call(fn, opts...)
	}
}

// LoggedRun wraps fn so that every call goes through Run.
func LoggedRun(fn func() error, opts ...Option) func() error {
	return func() error {
		return Run(fn, opts...)
	}
}

func invoke[T any](res try.Try[T], handler Handler[T], cfg *config) (T, error) {
	if s, ok := res.AsSuccess(); ok {
		return s.Value(), nil
	}

	cause := res.Err()
	inc := newIncident(cause)
	cfg.sink(cause.Error(), inc)

	if handler == nil {
		handler = Rethrow[T]()
	}
	return handler(inc)
}

func unit(fn func() error) func() (try.Unit, error) {
	return func() (try.Unit, error) {
		return try.Unit{}, fn()
	}
}
