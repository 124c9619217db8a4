package loop

import "time"

// Driver gates a periodic action to a minimum interval. It does not sleep; the
// caller polls it and re-polls later when nothing is due.
type Driver struct {
	interval time.Duration
	last     time.Time
}

// NewDriver creates a driver whose first interval starts at now.
func NewDriver(interval time.Duration, now time.Time) *Driver {
	return &Driver{interval: interval, last: now}
}

// Poll reports whether more than the interval has passed since the last accepted
// poll. When it has, the elapsed time is returned and now becomes the new reference.
// Otherwise elapsed is zero and the reference is kept.
func (d *Driver) Poll(now time.Time) (elapsed time.Duration, due bool) {
	elapsed = now.Sub(d.last)
	if elapsed <= d.interval {
		return 0, false
	}
	d.last = now
	return elapsed, true
}

// Remaining returns how long until the next poll can be due (zero if it already is).
func (d *Driver) Remaining(now time.Time) time.Duration {
	return max(d.interval-now.Sub(d.last), 0)
}

// Reset makes now the reference without reporting an interval.
func (d *Driver) Reset(now time.Time) {
	d.last = now
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}
