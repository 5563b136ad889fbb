package sink

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/ib-77/trycatch/pkg/try/catch"
)

// Throttled forwards entries to a sink while its limiter allows them and
// counts the ones it drops.
type Throttled struct {
	next    catch.Sink
	limiter *rate.Limiter
	dropped atomic.Int64
}

// Throttle limits next to the rate of limiter. A nil next is treated as
// catch.Nop.
func Throttle(next catch.Sink, limiter *rate.Limiter) *Throttled {
	if next == nil {
		next = catch.Nop
	}
	return &Throttled{next: next, limiter: limiter}
}

func (t *Throttled) Sink() catch.Sink {
	return func(msg string, cause error) {
		if !t.limiter.Allow() {
			t.dropped.Add(1)
			return
		}
		t.next(msg, cause)
	}
}

// Dropped returns how many entries were discarded so far.
func (t *Throttled) Dropped() int64 {
	return t.dropped.Load()
}
