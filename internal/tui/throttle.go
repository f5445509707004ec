package tui

import (
	"time"

	"gosplice/internal/clock"
	"gosplice/internal/fsx"
)

// Throttle forwards at most one progress report per interval. The first
// report and the one completing the operation are always forwarded.
// It is not safe for concurrent use.
type Throttle struct {
	clock    clock.Clock
	interval time.Duration
	next     fsx.ProgressFunc
	last     time.Time
	started  bool
}

// NewThrottle wraps next. A nil clock uses the real time.
func NewThrottle(c clock.Clock, interval time.Duration, next fsx.ProgressFunc) *Throttle {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Throttle{clock: c, interval: interval, next: next}
}

// Report is an fsx.ProgressFunc.
func (t *Throttle) Report(tp fsx.TransitProcess) {
	final := tp.TotalBytes > 0 && tp.CopiedBytes >= tp.TotalBytes
	if t.started && !final && t.clock.Since(t.last) < t.interval {
		return
	}
	t.started = true
	t.last = t.clock.Now()
	t.next(tp)
}
