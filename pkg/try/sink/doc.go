// Package sink adapts logging, tracing and metrics libraries to
// catch.Sink.
//
// - Logr: write each failure as a logr error entry, with incident id and panic stack
// - Span: record each failure on the OpenTelemetry span of a context
// - Metrics: count failures by kind in a Prometheus counter
// - Throttle: drop entries beyond a rate.Limiter's budget
//
// Sinks compose with catch.Tee.
package sink
