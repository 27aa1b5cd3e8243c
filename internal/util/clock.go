package util

import "time"

// Timer is a wall-clock deadline measured on the monotonic clock.
type Timer struct {
	start time.Time
	limit time.Duration
}

func NewTimer(limit time.Duration) *Timer {
	return &Timer{start: time.Now(), limit: limit}
}

func (t *Timer) Expired() bool          { return time.Since(t.start) >= t.limit }
func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

// Ratio is the share of the budget already used, clamped to [0,1].
func (t *Timer) Ratio() float64 {
	if t.limit <= 0 {
		return 1
	}
	r := float64(t.Elapsed()) / float64(t.limit)
	if r > 1 {
		return 1
	}
	return r
}

// PollDeadline expires after a fixed number of Expired calls and reports a
// synthetic elapsed time of Step per call. It makes runs reproducible.
type PollDeadline struct {
	Polls int
	Step  time.Duration
	calls int
}

func (d *PollDeadline) Expired() bool {
	expired := d.calls >= d.Polls
	d.calls++
	return expired
}

func (d *PollDeadline) Elapsed() time.Duration { return time.Duration(d.calls) * d.Step }
