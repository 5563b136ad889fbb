// Package catch runs fallible functions with the log, handle and clean up
// plumbing that would otherwise be repeated around every call site.
//
// Every helper follows the same steps:
// - the function is called once through try.With, so a returned error and a panic are treated alike
// - on failure the cause is wrapped in an *Incident with a fresh id and passed to the Sink, exactly once
// - the Handler turns the incident into a substitute value or an error to return
// - cleanup functions registered with WithCleanup run on every exit path
//
// The default Handler is Rethrow, so Call and Run log and then return the
// *Incident. CallOrDefault and RunIgnore log and swallow.
//
// The default Sink is Nop. Pass one with WithSink, or attach one to a
// context with ContextWithSink and use CallContext. Adapters for logr,
// OpenTelemetry and Prometheus live in package sink.
package catch
