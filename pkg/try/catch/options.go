package catch

import "context"

type OptionKey string

const SinkOptionKey OptionKey = "sink_options"

// Sink receives one entry per failed call: the cause's message and an
// *Incident wrapping the cause.
type Sink func(msg string, cause error)

// Nop discards every entry.
func Nop(string, error) {}

// Tee sends every entry to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	return func(msg string, cause error) {
		for _, s := range sinks {
			if s != nil {
				s(msg, cause)
			}
		}
	}
}

type sinkOptions struct {
	Sink Sink
}

// ContextWithSink attaches s to ctx for CallContext.
func ContextWithSink(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, SinkOptionKey, sinkOptions{Sink: s})
}

// SinkFrom returns the sink attached to ctx, or def.
func SinkFrom(ctx context.Context, def Sink) Sink {
	options, ok := ctx.Value(SinkOptionKey).(sinkOptions)
	if ok && options.Sink != nil {
		return options.Sink
	}
	return def
}

// Option configures a single call.
type Option func(*config)

type config struct {
	sink     Sink
	cleanups []func()
}

func newConfig(def Sink, opts []Option) *config {
	c := &config{sink: def}
	for _, opt := range opts {
		opt(c)
	}
	if c.sink == nil {
		c.sink = Nop
	}
	return c
}

// WithSink sets where failures are logged. It overrides a sink taken
// from the context.
func WithSink(s Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

// WithCleanup registers fn to run after the call and its handler, on
// every exit path. Cleanups run in the order they were given.
func WithCleanup(fn func()) Option {
	return func(c *config) {
		if fn != nil {
			c.cleanups = append(c.cleanups, fn)
		}
	}
}

func (c *config) cleanup() {
	for _, fn := range c.cleanups {
		fn()
	}
}
