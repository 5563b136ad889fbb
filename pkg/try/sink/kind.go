package sink

import (
	"github.com/ib-77/trycatch/pkg/try"
	"github.com/ib-77/trycatch/pkg/try/catch"
)

const (
	KindError  = "error"
	KindPanic  = "panic"
	KindCancel = "cancel"
)

// Kind classifies a failure as KindPanic, KindCancel or KindError.
func Kind(cause error) string {
	switch {
	case try.IsPanic(cause):
		return KindPanic
	case catch.IsCancellation(cause):
		return KindCancel
	default:
		return KindError
	}
}
