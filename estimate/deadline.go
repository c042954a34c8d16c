package estimate

import "time"

// Deadline is an explicit wall-clock budget threaded through the
// optimization call chain and polled at checkpoints. Cancellation is
// advisory: work returns control cooperatively at its next check. A nil
// Deadline never expires.
type Deadline struct {
	at  time.Time
	now func() time.Time
}

// NewDeadline starts a budget measured from now.
func NewDeadline(budget time.Duration) *Deadline {
	return &Deadline{at: time.Now().Add(budget), now: time.Now}
}

// NewDeadlineAt fixes the expiry instant against an injectable clock;
// clock may be nil for the wall clock.
func NewDeadlineAt(at time.Time, clock func() time.Time) *Deadline {
	if clock == nil {
		clock = time.Now
	}
	return &Deadline{at: at, now: clock}
}

// Exceeded reports whether the budget has elapsed.
func (d *Deadline) Exceeded() bool {
	if d == nil {
		return false
	}
	return !d.now().Before(d.at)
}

// Remaining returns the time left, never negative.
func (d *Deadline) Remaining() time.Duration {
	if d == nil {
		return time.Duration(1<<63 - 1)
	}
	if r := d.at.Sub(d.now()); r > 0 {
		return r
	}
	return 0
}
