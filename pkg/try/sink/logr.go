package sink

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/ib-77/trycatch/pkg/try"
	"github.com/ib-77/trycatch/pkg/try/catch"
)

// Logr logs each failure with l.Error. The entry carries the incident id,
// the failure kind and, for panics, the captured stack.
func Logr(l logr.Logger) catch.Sink {
	return func(msg string, cause error) {
		kv := []any{"kind", Kind(cause)}
		if id, ok := catch.IncidentID(cause); ok {
			kv = append(kv, "incident", id.String())
		}

		var p *try.PanicError
		if errors.As(cause, &p) {
			kv = append(kv, "stack", string(p.Stack))
		}

		l.Error(cause, msg, kv...)
	}
}
