// Package try provides Try[T], a value holding either the result of a
// computation or the error that stopped it.
//
// Highlights:
// - Success/Failure/Of: construct Try[T]
// - With/WithValue/WithRunnable: call a function, capturing a returned error or a panic
// - Map/TryMap/FlatMap: transform successful values; failures pass through untouched
// - Recover/RecoverWith: turn a Failure back into a Success
// - Fold/Despatch: handle both variants, exactly one handler is called
// - OnSuccess/OnFailure/OnComplete: side-effect helpers
// - ToSuccess/ToFailure/AsSuccess/AsFailure/ToOptional: narrow to one variant
//
// Nothing in this package logs or rethrows. Combinators are built on Fold,
// and Map, TryMap and FlatMap capture a panicking function as a Failure
// holding a *PanicError. Recover and RecoverWith do not: a panicking
// recovery function propagates to the caller.
//
// Try values are immutable and safe to share between goroutines.
package try
