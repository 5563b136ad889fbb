// Package fn holds small adapters for plugging plain functions into Try
// combinators and catch helpers: peeking, supplying constants, currying
// and changing a function's shape.
package fn
