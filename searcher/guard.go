package searcher

import (
	"context"
	"math"
	"time"
)

// TimeLeft reports the time remaining for the current move.
type TimeLeft func() time.Duration

// Unlimited never runs out.
func Unlimited() TimeLeft {
	return func() time.Duration {
		return math.MaxInt64
	}
}

// Deadline counts down to t.
func Deadline(t time.Time) TimeLeft {
	return func() time.Duration {
		return time.Until(t)
	}
}

// FromContext counts down to the context's deadline and reports no time left
// once the context is done.
func FromContext(ctx context.Context) TimeLeft {
	deadline, ok := ctx.Deadline()
	return func() time.Duration {
		if ctx.Err() != nil {
			return 0
		}
		if !ok {
			return math.MaxInt64
		}
		return time.Until(deadline)
	}
}

type guard struct {
	timeLeft  TimeLeft
	threshold time.Duration
}

// check must run on entry to every search call.
func (g guard) check() error {
	if g.timeLeft() < g.threshold {
		return ErrSearchTimeout
	}
	return nil
}
